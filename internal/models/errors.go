package models

import (
	"errors"
	"fmt"
)

// Validation sentinels. A ValidationError always unwraps to one of these so
// callers can branch with errors.Is.
var (
	// ErrEmptyName indicates a product without a name
	ErrEmptyName = errors.New("product name is required")

	// ErrInvalidQuantity indicates a quantity that is zero or negative
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrMalformedNumber indicates numeric input that could not be parsed
	ErrMalformedNumber = errors.New("malformed numeric value")

	// ErrInvalidID indicates an identifier that cannot reference a stored row
	ErrInvalidID = errors.New("invalid id")
)

// ValidationError reports input rejected before any statement is issued.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError builds a ValidationError for field wrapping cause
func NewValidationError(field, value string, cause error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Err: cause}
}

// IsValidation reports whether err carries a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
