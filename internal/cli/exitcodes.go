package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/stockbox/internal/database"
	"github.com/thenoetrevino/stockbox/internal/models"
	boxservice "github.com/thenoetrevino/stockbox/internal/services/box"
	productservice "github.com/thenoetrevino/stockbox/internal/services/product"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, failed transactions, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Unknown product or box IDs, or a box name that does not exist
	// when --create-box was not given.
	ExitNotFound = 3

	// ExitDataErr indicates the store could not be reached or opened.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty names, non-positive quantities, malformed numbers.
	ExitValidation = 5
)

// CodedError carries the exit code a failed command should terminate with
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string { return e.Err.Error() }

func (e *CodedError) Unwrap() error { return e.Err }

// UsageError marks an error caused by missing or conflicting flags
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// Usagef builds a UsageError
func Usagef(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

var validationErrors = []error{
	productservice.ErrInvalidProductID,
	productservice.ErrNoProductsSelected,
	productservice.ErrNoChanges,
	boxservice.ErrEmptyName,
	boxservice.ErrInvalidBoxID,
	boxservice.ErrBoxExists,
}

// ExitCodeFor classifies err into one of the exit codes
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}
	if models.IsValidation(err) {
		return ExitValidation
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return ExitValidation
		}
	}
	if errors.Is(err, database.ErrProductNotFound) || errors.Is(err, database.ErrBoxNotFound) {
		return ExitNotFound
	}
	var connErr *database.ConnectionError
	if errors.As(err, &connErr) {
		return ExitDataErr
	}
	return ExitError
}

// ErrorCode returns the machine-readable code reported in JSON errors
func ErrorCode(err error) string {
	switch ExitCodeFor(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitNotFound:
		if errors.Is(err, database.ErrBoxNotFound) {
			return "BOX_NOT_FOUND"
		}
		return "PRODUCT_NOT_FOUND"
	case ExitDataErr:
		return "CONNECTION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// HintError attaches a suggestion for the user to an error
type HintError struct {
	Err  error
	Hint string
}

func (e *HintError) Error() string { return e.Err.Error() }

func (e *HintError) Unwrap() error { return e.Err }

// WithHint wraps err with a suggestion; a nil err stays nil
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return &HintError{Err: err, Hint: hint}
}

// Suggestion returns the hint attached to err, if any
func Suggestion(err error) string {
	var hintErr *HintError
	if errors.As(err, &hintErr) {
		return hintErr.Hint
	}
	return ""
}
