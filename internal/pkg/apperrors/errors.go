package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors grouping every failure mode the API can surface. Handlers
// never inspect storage errors directly; repositories translate them into one
// of these and the error middleware maps them to HTTP statuses.
var (
	// Resource errors
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource already exists")

	// A write referenced a row that does not exist, or a delete would orphan
	// dependent rows. Both are constraint violations from the storage engine.
	ErrInvalidReference = errors.New("invalid reference")
	ErrHasDependents    = errors.New("record has dependent data")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Authentication / authorization errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")
)

// Error carries a sentinel plus a client-facing message.
type Error struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap makes the sentinel visible to errors.Is.
func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound builds the standard "<Entity> not found" error for an entity name.
func NotFound(entity string) error {
	return &Error{Err: ErrNotFound, Message: entity + " not found"}
}

// Conflict reports a unique-constraint violation with a client-facing message.
func Conflict(message string) error {
	return &Error{Err: ErrConflict, Message: message}
}

// InvalidReference reports a foreign-key violation on insert or update.
func InvalidReference(message string) error {
	return &Error{Err: ErrInvalidReference, Message: message}
}

// HasDependents reports a restricted delete: children still reference the row.
func HasDependents(message string) error {
	return &Error{Err: ErrHasDependents, Message: message}
}

// Validation reports an input validation failure for a named field.
func Validation(field, reason string) error {
	return &Error{Err: ErrValidationFailed, Message: fmt.Sprintf("%s: %s", field, reason)}
}
