package models

import (
	"fmt"
	"time"
)

// ValidationError reports a form-local input problem. It never reaches the
// network layer; handlers surface it inline instead of as a Gateway failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// DisplayDateLayout is the canonical display form of a transaction date.
const DisplayDateLayout = "02/01/2006"

// Validate checks a transaction before it is submitted to the Gateway.
// The reference time is injected so the future-date rule is testable.
func (t *Transaction) Validate(now time.Time) error {
	date, err := time.Parse(DisplayDateLayout, t.Date)
	if err != nil {
		return &ValidationError{Field: "date", Message: "must be DD/MM/YYYY"}
	}
	// Compare at day granularity: entries dated today are fine.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.After(today) {
		return &ValidationError{Field: "date", Message: "must not be in the future"}
	}
	if t.Amount <= 0 {
		return &ValidationError{Field: "amount", Message: "must be greater than zero"}
	}
	if t.Type != Income && t.Type != Expense {
		return &ValidationError{Field: "type", Message: "must be Income or Expense"}
	}
	if t.Category == "" {
		return &ValidationError{Field: "category", Message: "must be selected"}
	}
	return nil
}
