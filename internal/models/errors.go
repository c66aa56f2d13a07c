package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested resource does not exist or
	// does not belong to the caller. The two cases are deliberately
	// indistinguishable so that the existence of another account's
	// resources is not observable.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a storage uniqueness constraint fails,
	// typically because of a race between two concurrent writes.
	ErrConflict = errors.New("already exists")
)

// ValidationError describes an input that violates a domain invariant.
// Callers should use errors.As to detect it.
type ValidationError struct {
	// Field names the offending input field, when known.
	Field string
	// Rule describes the violated rule in user-facing terms.
	Rule string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Rule)
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Rule)
}

// NewValidationError builds a ValidationError for the given field and rule.
func NewValidationError(field, rule string) error {
	return &ValidationError{Field: field, Rule: rule}
}
