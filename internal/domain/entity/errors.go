package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrInvalidVariant indicates that a template name is neither "article" nor "default".
	ErrInvalidVariant = errors.New("invalid image variant")

	// ErrInvalidDimensions indicates that an image does not have the fixed OG size.
	ErrInvalidDimensions = errors.New("invalid image dimensions")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap returns the sentinel error that classifies this validation failure.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
