package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrValidation          = errors.New("validation error")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrConflict            = errors.New("conflict")
	ErrStateConflict       = errors.New("state conflict")
	ErrConcurrencyConflict = errors.New("concurrency conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
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

// StateConflictError is returned when a mutation is not allowed in the
// plan group's current status.
type StateConflictError struct {
	Status PlanStatus
	Action string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("cannot %s plan group in status %s", e.Action, e.Status)
}

func (e *StateConflictError) Unwrap() error { return ErrStateConflict }

// NewStateConflict creates a StateConflictError.
func NewStateConflict(status PlanStatus, action string) *StateConflictError {
	return &StateConflictError{Status: status, Action: action}
}

// ConcurrencyError reports a conflicting concurrent operation. Retryable
// conflicts clear once the in-flight work finishes; the rest never do.
type ConcurrencyError struct {
	Reason    string
	Retryable bool
}

func (e *ConcurrencyError) Error() string {
	if e.Retryable {
		return fmt.Sprintf("concurrency conflict (retry later): %s", e.Reason)
	}
	return fmt.Sprintf("concurrency conflict: %s", e.Reason)
}

func (e *ConcurrencyError) Unwrap() error { return ErrConcurrencyConflict }
