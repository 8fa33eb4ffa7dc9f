package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every ValidationError.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidationError reports the input field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Invalid builds a ValidationError for field.
func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
