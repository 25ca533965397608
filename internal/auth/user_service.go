package auth

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"

	"watchthis/sharing/internal/metrics"
	"watchthis/sharing/pkg/jwt"
)

// Mode selects which credential is forwarded to the user service.
type Mode string

const (
	// ModeSession forwards the Cookie header to GET /api/v1/session.
	ModeSession Mode = "session"

	// ModeBearer forwards the Authorization header to GET /api/v1/auth/me.
	ModeBearer Mode = "bearer"
)

const (
	sessionPath = "/api/v1/session"
	mePath      = "/api/v1/auth/me"

	// DefaultTimeout bounds a single lookup.
	DefaultTimeout = 5 * time.Second

	maxBodyBytes = 1 << 20
)

// Lookup outcomes reported to metrics.
const (
	outcomeAuthenticated = "authenticated"
	outcomeAnonymous     = "anonymous"
	outcomeRejected      = "rejected"
	outcomeError         = "error"
)

// UserServiceConfig configures UserServiceResolver.
type UserServiceConfig struct {
	BaseURL string
	Mode    Mode
	Timeout time.Duration
}

// UserServiceResolver asks the external user service who the caller is.
// Any failure, including a timeout, leaves the request anonymous.
type UserServiceResolver struct {
	baseURL string
	mode    Mode
	timeout time.Duration
	client  *http.Client
	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewUserServiceResolver validates cfg and returns a resolver.
// client may be nil, in which case a dedicated client is used.
func NewUserServiceResolver(cfg UserServiceConfig, client *http.Client, logger *zap.Logger, m *metrics.Metrics) (*UserServiceResolver, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("user service URL is required")
	}
	switch cfg.Mode {
	case ModeSession, ModeBearer:
	default:
		return nil, fmt.Errorf("unsupported auth mode: %q", cfg.Mode)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if client == nil {
		client = &http.Client{}
	}

	return &UserServiceResolver{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		mode:    cfg.Mode,
		timeout: cfg.Timeout,
		client:  client,
		logger:  logger.With(zap.String("component", "user_service_resolver"), zap.String("mode", string(cfg.Mode))),
		metrics: m,
		now:     time.Now,
	}, nil
}

// sessionResponse is the body of GET /api/v1/session.
type sessionResponse struct {
	User struct {
		MongoID  string `json:"_id"`
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
}

// meResponse is the body of GET /api/v1/auth/me.
type meResponse struct {
	Success bool `json:"success"`
	Data    struct {
		User struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	} `json:"data"`
}

// Resolve implements Resolver.
func (r *UserServiceResolver) Resolve(ctx context.Context, req *http.Request) (*Identity, bool) {
	var (
		path       string
		header     string
		credential string
	)

	switch r.mode {
	case ModeSession:
		credential = req.Header.Get("Cookie")
		path, header = sessionPath, "Cookie"
	case ModeBearer:
		authHeader := req.Header.Get("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return nil, false
		}
		if jwt.LooksLikeJWT(token) {
			if _, err := jwt.Inspect(token, r.now()); err != nil {
				r.logger.Debug("Bearer token rejected before lookup",
					zap.String("credential_fp", fingerprint(token)),
					zap.Error(err))
				r.metrics.AuthLookup(outcomeRejected)
				return nil, false
			}
		}
		credential = authHeader
		path, header = mePath, "Authorization"
	}

	if credential == "" {
		return nil, false
	}

	id, err := r.lookup(ctx, path, header, credential)
	if err != nil {
		r.logger.Warn("Identity lookup failed",
			zap.String("credential_fp", fingerprint(credential)),
			zap.Error(err))
		r.metrics.AuthLookup(outcomeError)
		return nil, false
	}
	if id == nil {
		r.metrics.AuthLookup(outcomeAnonymous)
		return nil, false
	}

	r.metrics.AuthLookup(outcomeAuthenticated)
	return id, true
}

// lookup performs one bounded request. A non-2xx answer yields (nil, nil).
func (r *UserServiceResolver) lookup(ctx context.Context, path, header, credential string) (*Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(header, credential)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.logger.Warn("Identity lookup rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("credential_fp", fingerprint(credential)))
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, nil
	}

	body := io.LimitReader(resp.Body, maxBodyBytes)
	var id Identity
	switch r.mode {
	case ModeSession:
		var payload sessionResponse
		if err := json.NewDecoder(body).Decode(&payload); err != nil {
			return nil, fmt.Errorf("decode session response: %w", err)
		}
		id.ID = payload.User.ID
		if id.ID == "" {
			id.ID = payload.User.MongoID
		}
		id.Username = payload.User.Username
	case ModeBearer:
		var payload meResponse
		if err := json.NewDecoder(body).Decode(&payload); err != nil {
			return nil, fmt.Errorf("decode auth response: %w", err)
		}
		id.ID = payload.Data.User.ID
		id.Username = payload.Data.User.Username
	}

	if id.ID == "" {
		return nil, errors.New("user service returned no user id")
	}
	return &id, nil
}

// fingerprint identifies a credential in logs without revealing it.
func fingerprint(credential string) string {
	sum := blake2b.Sum256([]byte(credential))
	return hex.EncodeToString(sum[:8])
}
