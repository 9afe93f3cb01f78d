package domain

import (
	"errors"
	"fmt"
)

// ErrOrderNumberConflict is returned when an order insert hits the unique
// constraint on order_number. The conflict is retriable: callers re-run
// allocation once inside a fresh transaction.
var ErrOrderNumberConflict = errors.New("order number already taken")

// ValidationError reports a malformed input with field-level detail.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
