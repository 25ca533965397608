package service

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure.
type Kind int

const (
	KindInternal Kind = iota
	KindMissingFields
	KindInvalidShare
	KindInvalidID
	KindInvalidStatus
	KindValidation
	KindAuthenticationRequired
	KindForbidden
	KindNotFound
	KindConflict
)

var kindCodes = map[Kind]string{
	KindInternal:               "INTERNAL_ERROR",
	KindMissingFields:          "MISSING_FIELDS",
	KindInvalidShare:           "INVALID_SHARE",
	KindInvalidID:              "INVALID_ID",
	KindInvalidStatus:          "INVALID_STATUS",
	KindValidation:             "VALIDATION_ERROR",
	KindAuthenticationRequired: "AUTHENTICATION_REQUIRED",
	KindForbidden:              "FORBIDDEN",
	KindNotFound:               "SHARE_NOT_FOUND",
	KindConflict:               "DUPLICATE_RESOURCE",
}

// Code is the wire error code for k.
func (k Kind) Code() string {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return kindCodes[KindInternal]
}

// Error is returned by every ShareService operation.
// Message is safe to show to clients; Err carries the cause, if any.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind.Code(), e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind.Code(), e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func internalError(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// KindOf returns the Kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Kind
	}
	return KindInternal
}

var (
	errAuthRequired  = newError(KindAuthenticationRequired, "Authentication required. Please log in.")
	errMissingFields = newError(KindMissingFields, "mediaId and toUserId are required")
	errSelfShare     = newError(KindInvalidShare, "You cannot share media with yourself")
	errInvalidID     = newError(KindInvalidID, "Invalid share ID format")
	errNotFound      = newError(KindNotFound, "Share not found")
	errInvalidStatus = newError(KindInvalidStatus, "Status must be one of: watched, archived")
	errInvalidFilter = newError(KindInvalidStatus, "Status filter must be one of: all, pending, watched, archived")
	errForbidView    = newError(KindForbidden, "You don't have permission to view this share")
	errForbidWatch   = newError(KindForbidden, "Only the recipient can mark a share as watched")
	errForbidModify  = newError(KindForbidden, "You don't have permission to modify this share")
	errForbidDelete  = newError(KindForbidden, "You don't have permission to delete this share")
	errDuplicate     = newError(KindConflict, "Resource already exists")
)
