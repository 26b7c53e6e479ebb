package card

import (
	"errors"
	"fmt"
)

// Error kinds returned by the generation pipeline. Validation errors are
// returned before any rendering work; surface and encoding errors are fatal
// for the call and nothing is cached.
var (
	ErrEmptyInput    = errors.New("card: text is empty")
	ErrInputTooLong  = errors.New("card: text exceeds maximum length")
	ErrInvalidConfig = errors.New("card: invalid configuration")
	ErrSurface       = errors.New("card: cannot create drawing surface")
	ErrEncoding      = errors.New("card: png encoding failed")
)

// FieldError reports a single configuration field outside its documented
// range. It matches ErrInvalidConfig under errors.Is so callers can branch
// on the kind without inspecting fields.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("card: invalid configuration: %s %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidConfig }

func fieldErr(field, format string, args ...any) error {
	return &FieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
