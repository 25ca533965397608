package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no share matches a well-formed id.
	ErrNotFound = errors.New("share not found")

	// ErrInvalidID is returned when an id is not a canonical UUID.
	ErrInvalidID = errors.New("invalid share id")

	// ErrInvalidTransition is returned when a status change is not allowed,
	// for example moving an archived share back to watched.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrConflict is returned on unique constraint violations.
	ErrConflict = errors.New("share already exists")
)

// ValidationError reports a field that failed the entity constraints.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// isUniqueConstraintError checks for SQLite and PostgreSQL unique violations.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

func convertNotFoundError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
