package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"watchthis/sharing/internal/auth"
	"watchthis/sharing/internal/metrics"
	"watchthis/sharing/internal/models"
	"watchthis/sharing/internal/store"
)

// Store is the persistence ShareService depends on.
type Store interface {
	Create(ctx context.Context, in store.NewShare) (*models.Share, error)
	FindByID(ctx context.Context, id string) (*models.Share, error)
	Update(ctx context.Context, id string, upd store.ShareUpdate) (*models.Share, error)
	Delete(ctx context.Context, id string) error
	ListByField(ctx context.Context, field store.Field, value string, opts store.ListOptions) (*store.Page[models.Share], error)
	StatsByField(ctx context.Context, field store.Field, value string) (store.StatusCounts, error)
}

// CreateInput is the client-supplied part of a new share.
type CreateInput struct {
	MediaID  string
	ToUserID string
	Message  string
}

// ListInput filters and windows ListSent and ListReceived.
// Status "" and "all" both mean every status.
type ListInput struct {
	Status string
	Page   int
	Limit  int
}

// Stats tallies a caller's shares on both sides.
type Stats struct {
	Sent     store.StatusCounts `json:"sent"`
	Received store.StatusCounts `json:"received"`
}

// ShareService applies the request-level rules around the share store.
type ShareService struct {
	store   Store
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewShareService returns a service over st. m may be nil.
func NewShareService(st Store, logger *zap.Logger, m *metrics.Metrics) *ShareService {
	return &ShareService{
		store:   st,
		logger:  logger.With(zap.String("component", "share_service")),
		metrics: m,
	}
}

func requireCaller(caller *auth.Identity) error {
	if caller == nil || caller.ID == "" {
		return errAuthRequired
	}
	return nil
}

// mapStoreError converts store failures into service errors.
func mapStoreError(err error) error {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		return &Error{Kind: KindValidation, Message: verr.Error(), Err: err}
	case errors.Is(err, store.ErrInvalidID):
		return errInvalidID
	case errors.Is(err, store.ErrNotFound):
		return errNotFound
	case errors.Is(err, store.ErrConflict):
		return errDuplicate
	case errors.Is(err, store.ErrInvalidTransition):
		return &Error{Kind: KindInvalidStatus, Message: "Status cannot be changed in that direction", Err: err}
	}
	return internalError(err)
}

// Create shares a media item from caller to in.ToUserID.
func (s *ShareService) Create(ctx context.Context, caller *auth.Identity, in CreateInput) (*models.Share, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.MediaID) == "" || strings.TrimSpace(in.ToUserID) == "" {
		return nil, errMissingFields
	}
	if strings.TrimSpace(in.ToUserID) == caller.ID {
		return nil, errSelfShare
	}

	// TODO: check mediaId against the media service once it exposes a lookup.
	share, err := s.store.Create(ctx, store.NewShare{
		MediaID:    in.MediaID,
		FromUserID: caller.ID,
		ToUserID:   in.ToUserID,
		Message:    in.Message,
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	s.metrics.ShareCreated()
	s.logger.Info("Share created",
		zap.String("share_id", share.ID),
		zap.String("from_user_id", share.FromUserID),
		zap.String("to_user_id", share.ToUserID))
	return share, nil
}

func parseStatusFilter(raw string) (models.ShareStatus, error) {
	if raw == "" || raw == "all" {
		return "", nil
	}
	status := models.ShareStatus(raw)
	if !status.Valid() {
		return "", errInvalidFilter
	}
	return status, nil
}

func (s *ShareService) list(ctx context.Context, caller *auth.Identity, field store.Field, in ListInput) (*store.Page[models.Share], error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	status, err := parseStatusFilter(in.Status)
	if err != nil {
		return nil, err
	}

	page, err := s.store.ListByField(ctx, field, caller.ID, store.ListOptions{
		Status: status,
		Page:   in.Page,
		Limit:  in.Limit,
	})
	if err != nil {
		return nil, mapStoreError(err)
	}
	return page, nil
}

// ListSent lists shares the caller has sent, newest first.
func (s *ShareService) ListSent(ctx context.Context, caller *auth.Identity, in ListInput) (*store.Page[models.Share], error) {
	return s.list(ctx, caller, store.FieldFromUser, in)
}

// ListReceived lists shares the caller has received, newest first.
func (s *ShareService) ListReceived(ctx context.Context, caller *auth.Identity, in ListInput) (*store.Page[models.Share], error) {
	return s.list(ctx, caller, store.FieldToUser, in)
}

// Stats counts the caller's sent and received shares by status.
func (s *ShareService) Stats(ctx context.Context, caller *auth.Identity) (*Stats, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	sent, err := s.store.StatsByField(ctx, store.FieldFromUser, caller.ID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	received, err := s.store.StatsByField(ctx, store.FieldToUser, caller.ID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return &Stats{Sent: sent, Received: received}, nil
}

// load fetches a share after checking the id format.
func (s *ShareService) load(ctx context.Context, id string) (*models.Share, error) {
	if !store.ValidID(id) {
		return nil, errInvalidID
	}
	share, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return share, nil
}

// GetByID returns a share visible to the caller.
func (s *ShareService) GetByID(ctx context.Context, caller *auth.Identity, id string) (*models.Share, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	share, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !share.IsParty(caller.ID) {
		return nil, errForbidView
	}
	return share, nil
}

// UpdateStatus moves a share to status. Only the recipient may mark a share
// watched; either party may archive it. A nil or empty status changes nothing.
func (s *ShareService) UpdateStatus(ctx context.Context, caller *auth.Identity, id string, status *string) (*models.Share, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if !store.ValidID(id) {
		return nil, errInvalidID
	}

	var next *models.ShareStatus
	if status != nil && *status != "" {
		st := models.ShareStatus(*status)
		if st != models.StatusWatched && st != models.StatusArchived {
			return nil, errInvalidStatus
		}
		next = &st
	}

	share, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case next == nil:
		if !share.IsParty(caller.ID) {
			return nil, errForbidModify
		}
		return share, nil
	case *next == models.StatusWatched && !share.IsRecipient(caller.ID):
		return nil, errForbidWatch
	case *next == models.StatusArchived && !share.IsParty(caller.ID):
		return nil, errForbidModify
	}

	updated, err := s.store.Update(ctx, id, store.ShareUpdate{Status: next})
	if err != nil {
		return nil, mapStoreError(err)
	}

	s.metrics.StatusUpdated(string(*next))
	s.logger.Info("Share status updated",
		zap.String("share_id", id),
		zap.String("user_id", caller.ID),
		zap.String("from", string(share.Status)),
		zap.String("to", string(updated.Status)))
	return updated, nil
}

// Delete permanently removes a share the caller is party to.
func (s *ShareService) Delete(ctx context.Context, caller *auth.Identity, id string) error {
	if err := requireCaller(caller); err != nil {
		return err
	}
	share, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !share.IsParty(caller.ID) {
		return errForbidDelete
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return mapStoreError(err)
	}

	s.metrics.ShareDeleted()
	s.logger.Info("Share deleted", zap.String("share_id", id), zap.String("user_id", caller.ID))
	return nil
}
