package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"watchthis/sharing/internal/models"
)

const (
	// MaxMessageLength is the longest message a share may carry, in characters.
	MaxMessageLength = 500

	// MaxReferenceLength bounds media and user references.
	MaxReferenceLength = 64
)

// Field selects which party a list or stats query filters on.
type Field string

const (
	FieldFromUser Field = "from_user_id"
	FieldToUser   Field = "to_user_id"
)

func (f Field) valid() bool {
	return f == FieldFromUser || f == FieldToUser
}

// NewShare holds the input for Create.
type NewShare struct {
	MediaID    string
	FromUserID string
	ToUserID   string
	Message    string
}

// ShareUpdate holds the mutable fields of a share. Nil fields are left alone.
type ShareUpdate struct {
	Status *models.ShareStatus
}

// ListOptions narrows and windows a list query.
// An empty Status matches every status.
type ListOptions struct {
	Status models.ShareStatus
	Page   int
	Limit  int
}

// StatusCounts is a per-status tally for one party.
type StatusCounts struct {
	Pending  int64 `json:"pending"`
	Watched  int64 `json:"watched"`
	Archived int64 `json:"archived"`
	Total    int64 `json:"total"`
}

// ShareStore persists shares through GORM.
type ShareStore struct {
	db  *gorm.DB
	now func() time.Time
}

// Option configures a ShareStore.
type Option func(*ShareStore)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *ShareStore) {
		s.now = now
	}
}

// NewShareStore returns a store backed by db.
func NewShareStore(db *gorm.DB, opts ...Option) *ShareStore {
	s := &ShareStore{
		db:  db,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidID reports whether id has the canonical UUID form used for share ids.
func ValidID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

func normalizeReference(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &ValidationError{Field: field, Reason: "is required"}
	}
	if utf8.RuneCountInString(value) > MaxReferenceLength {
		return "", &ValidationError{Field: field, Reason: fmt.Sprintf("must be at most %d characters", MaxReferenceLength)}
	}
	return value, nil
}

func normalizeMessage(message string) (*string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return nil, &ValidationError{Field: "message", Reason: fmt.Sprintf("must be at most %d characters", MaxMessageLength)}
	}
	return &message, nil
}

// Create validates in and inserts a new pending share.
func (s *ShareStore) Create(ctx context.Context, in NewShare) (*models.Share, error) {
	mediaID, err := normalizeReference("mediaId", in.MediaID)
	if err != nil {
		return nil, err
	}
	fromUserID, err := normalizeReference("fromUserId", in.FromUserID)
	if err != nil {
		return nil, err
	}
	toUserID, err := normalizeReference("toUserId", in.ToUserID)
	if err != nil {
		return nil, err
	}
	message, err := normalizeMessage(in.Message)
	if err != nil {
		return nil, err
	}

	now := s.now()
	share := &models.Share{
		ID:         uuid.NewString(),
		MediaID:    mediaID,
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Message:    message,
		Status:     models.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.db.WithContext(ctx).Create(share).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create share: %w", err)
	}
	return share, nil
}

// FindByID loads a share. It returns ErrInvalidID for malformed ids and
// ErrNotFound when no row matches.
func (s *ShareStore) FindByID(ctx context.Context, id string) (*models.Share, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}

	var share models.Share
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&share).Error; err != nil {
		if err = convertNotFoundError(err); errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load share %s: %w", id, err)
	}
	return &share, nil
}

// applyStatusTransition moves share to next. The first move to watched
// stamps WatchedAt; later moves never touch it.
func applyStatusTransition(share *models.Share, next models.ShareStatus, now time.Time) error {
	if !next.Valid() || !share.Status.CanTransition(next) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, share.Status, next)
	}
	if next == models.StatusWatched && share.WatchedAt == nil {
		watchedAt := now
		share.WatchedAt = &watchedAt
	}
	share.Status = next
	return nil
}

// Update applies upd to the share with the given id and returns the result.
func (s *ShareStore) Update(ctx context.Context, id string, upd ShareUpdate) (*models.Share, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}

	var share models.Share
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&share).Error; err != nil {
			return convertNotFoundError(err)
		}
		if upd.Status == nil {
			return nil
		}

		now := s.now()
		if err := applyStatusTransition(&share, *upd.Status, now); err != nil {
			return err
		}
		share.UpdatedAt = now

		return tx.Model(&share).Updates(map[string]any{
			"status":     share.Status,
			"watched_at": share.WatchedAt,
			"updated_at": share.UpdatedAt,
		}).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidTransition) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update share %s: %w", id, err)
	}
	return &share, nil
}

// Delete permanently removes a share.
func (s *ShareStore) Delete(ctx context.Context, id string) error {
	if !ValidID(id) {
		return ErrInvalidID
	}

	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Share{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete share %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByField lists shares where field equals value, newest first.
func (s *ShareStore) ListByField(ctx context.Context, field Field, value string, opts ListOptions) (*Page[models.Share], error) {
	if !field.valid() {
		return nil, fmt.Errorf("unsupported list field %q", field)
	}

	q := s.db.WithContext(ctx).Model(&models.Share{}).Where(string(field)+" = ?", value)
	if opts.Status != "" {
		q = q.Where("status = ?", opts.Status)
	}

	page, err := paginate[models.Share](q, "created_at DESC, id DESC", opts.Page, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares by %s: %w", field, err)
	}
	return page, nil
}

// StatsByField counts shares where field equals value, grouped by status.
func (s *ShareStore) StatsByField(ctx context.Context, field Field, value string) (StatusCounts, error) {
	var counts StatusCounts
	if !field.valid() {
		return counts, fmt.Errorf("unsupported stats field %q", field)
	}

	var rows []struct {
		Status models.ShareStatus
		Count  int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Share{}).
		Select("status, COUNT(*) AS count").
		Where(string(field)+" = ?", value).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return counts, fmt.Errorf("failed to count shares by %s: %w", field, err)
	}

	for _, row := range rows {
		switch row.Status {
		case models.StatusPending:
			counts.Pending = row.Count
		case models.StatusWatched:
			counts.Watched = row.Count
		case models.StatusArchived:
			counts.Archived = row.Count
		}
		counts.Total += row.Count
	}
	return counts, nil
}

// Ping checks that the database answers.
func (s *ShareStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
