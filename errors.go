package caseconv

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates a conversion argument was not usable as text.
// Use it with errors.Is() for a quick check without a type assertion.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports that a conversion argument was neither text
// nor an absent-value marker (or, for Slugify, not text at all), or that
// a style name passed to ParseStyle or Convert is unknown.
type InvalidInputError struct {
	// Value is the offending argument as passed by the caller.
	Value any
	// Message describes the failure; when empty, a type-mismatch
	// message is derived from Value.
	Message string
}

// Error returns a human-readable error message.
func (e *InvalidInputError) Error() string {
	if e.Message != "" {
		return "invalid input: " + e.Message
	}
	return fmt.Sprintf("invalid input: expected string, got %T", e.Value)
}

// Is reports whether target matches this error type.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
