// Package jwt inspects bearer tokens before they are sent to the user service.
// Signatures are never checked here; the user service owns the signing key.
package jwt

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformed is returned for tokens that look like JWTs but do not parse.
	ErrMalformed = errors.New("malformed token")

	// ErrExpired is returned for tokens whose exp claim is in the past.
	ErrExpired = errors.New("token expired")
)

// LooksLikeJWT reports whether token has the three dot-separated segments of
// a compact JWS. Opaque tokens are passed to the user service untouched.
func LooksLikeJWT(token string) bool {
	return strings.Count(token, ".") == 2
}

// Inspect decodes the registered claims of token without verifying its
// signature and rejects tokens that have already expired at now.
func Inspect(token string, now time.Time) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Join(ErrMalformed, err)
	}

	if claims.ExpiresAt != nil && !now.Before(claims.ExpiresAt.Time) {
		return claims, ErrExpired
	}
	return claims, nil
}

// GenerateToken signs a token for subject. The user service issues real
// tokens; this is used to stand in for it.
func GenerateToken(subject string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
