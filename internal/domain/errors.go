package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Study session errors.
var (
	// ErrEmptyDeck means no cards are available for a session, even after fallback.
	ErrEmptyDeck = errors.New("empty deck")
	// ErrInvalidState means an operation was invoked in a session state that forbids it.
	ErrInvalidState = errors.New("invalid session state")
	// ErrSourceUnavailable means the card deck provider could not be reached.
	ErrSourceUnavailable = errors.New("card source unavailable")
	// ErrSyncFailure means an XP award could not be delivered to the sync sink.
	ErrSyncFailure = errors.New("xp sync failure")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// StateError reports a session operation rejected by the current status.
type StateError struct {
	Op     string
	Status SessionStatus
	Reason string
}

func (e *StateError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: not allowed in %s state: %s", e.Op, e.Status, e.Reason)
	}
	return fmt.Sprintf("%s: not allowed in %s state", e.Op, e.Status)
}

func (e *StateError) Unwrap() error { return ErrInvalidState }

// NewStateError creates a StateError for op attempted in status.
func NewStateError(op string, status SessionStatus) *StateError {
	return &StateError{Op: op, Status: status}
}
