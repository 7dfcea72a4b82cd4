package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by store and service functions when the requested
// record does not exist in its collection.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when a client payload is missing a required field
// or carries a value that cannot be coerced to the field's type.
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")

// ErrIO is returned when the storage medium cannot be read or written, or when
// a stored collection exists but cannot be decoded.
// Handlers should map this to HTTP 500.
var ErrIO = errors.New("storage failure")

// ValidationError names the first field of a payload that failed validation.
// It unwraps to ErrValidation so callers can match it with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements error, e.g. "validation error: lat: required field is missing".
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Missing builds the ValidationError for an absent required field.
func Missing(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "required field is missing"}
}

// Malformed builds the ValidationError for a field whose value cannot be coerced.
func Malformed(field, want string) *ValidationError {
	return &ValidationError{Field: field, Reason: "must be " + want}
}
