package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by lookups that find no row.
var ErrNotFound = errors.New("not found")

// ValidationError reports a missing or malformed field supplied by the caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func required(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ReferenceError reports a write whose parent row does not exist.
type ReferenceError struct {
	Entity string
	ID     int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Entity, e.ID)
}

// IsValidation reports whether err is caller-correctable input: a
// ValidationError or a ReferenceError anywhere in its chain.
func IsValidation(err error) bool {
	var ve *ValidationError
	var re *ReferenceError
	return errors.As(err, &ve) || errors.As(err, &re)
}
