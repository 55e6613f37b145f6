package validators

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed is wrapped by every *FieldError.
	ErrValidationFailed = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownRule     = errors.New("unknown rule group for validation")
)

// FieldError describes the first violated rule of a submission.
type FieldError struct {
	// Field is the id of the offending field, or "fields" for rules about
	// the list as a whole.
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidationFailed, e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return ErrValidationFailed
}

func fieldError(field, message string) error {
	return &FieldError{Field: field, Message: message}
}
