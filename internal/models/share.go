package models

import "time"

// ShareStatus defines where a share is in its lifecycle.
type ShareStatus string

const (
	// StatusPending means the recipient has not acted on the share yet.
	StatusPending ShareStatus = "pending"

	// StatusWatched means the recipient has watched the shared media.
	StatusWatched ShareStatus = "watched"

	// StatusArchived means either party has put the share away.
	// An archived share still exists; deletion is a separate, permanent action.
	StatusArchived ShareStatus = "archived"
)

// AllStatuses lists every status in display order.
var AllStatuses = []ShareStatus{StatusPending, StatusWatched, StatusArchived}

// Valid reports whether s is one of the known statuses.
func (s ShareStatus) Valid() bool {
	switch s {
	case StatusPending, StatusWatched, StatusArchived:
		return true
	}
	return false
}

// CanTransition reports whether a share may move from s to next.
// Repeating the current status is allowed and leaves the share unchanged.
func (s ShareStatus) CanTransition(next ShareStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusWatched || next == StatusArchived
	case StatusWatched:
		return next == StatusArchived
	}
	return false
}

// Share represents one user recommending one media item to another.
type Share struct {
	ID         string      `gorm:"primaryKey;size:36" json:"id"`
	MediaID    string      `gorm:"size:64;not null;index" json:"mediaId"`
	FromUserID string      `gorm:"size:64;not null;index:idx_shares_from_created,priority:1;index:idx_shares_from_status,priority:1" json:"fromUserId"`
	ToUserID   string      `gorm:"size:64;not null;index:idx_shares_to_status_created,priority:1" json:"toUserId"`
	Message    *string     `gorm:"size:500" json:"message,omitempty"`
	Status     ShareStatus `gorm:"size:20;not null;default:'pending';index:idx_shares_from_status,priority:2;index:idx_shares_to_status_created,priority:2" json:"status"`
	WatchedAt  *time.Time  `json:"watchedAt,omitempty"`
	CreatedAt  time.Time   `gorm:"index:idx_shares_from_created,priority:2,sort:desc;index:idx_shares_to_status_created,priority:3,sort:desc" json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// IsParty reports whether userID is the sender or the recipient.
func (s *Share) IsParty(userID string) bool {
	return userID == s.FromUserID || userID == s.ToUserID
}

// IsRecipient reports whether userID is the recipient.
func (s *Share) IsRecipient(userID string) bool {
	return userID == s.ToUserID
}

// AllModels returns every model managed by AutoMigrate.
func AllModels() []any {
	return []any{&Share{}}
}
