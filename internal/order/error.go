package order

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyOrder       = errors.New("at least one product is required")
	ErrOrderNotFound    = errors.New("order not found")
	ErrDuplicateOrderID = errors.New("order ID already exists")
)

// FieldError attributes a validation message to the offending input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type CustomerValidationError struct {
	Errors []FieldError
}

func (e *CustomerValidationError) Error() string {
	return "Customer validation failed: " + joinMessages(e.Errors)
}

// ProductValidationError carries the 1-based position of the first invalid
// line; lines after it were not evaluated.
type ProductValidationError struct {
	Position int
	Errors   []FieldError
}

func (e *ProductValidationError) Error() string {
	return fmt.Sprintf("Product %d validation failed: %s", e.Position, joinMessages(e.Errors))
}

type SummaryValidationError struct {
	Mismatches []string
}

func (e *SummaryValidationError) Error() string {
	return "Order summary validation failed: " + strings.Join(e.Mismatches, ", ")
}

// PersistenceError wraps a storage failure that is not a duplicate key, so
// driver error types never leak past the repository.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "order persistence failed: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func joinMessages(errs []FieldError) string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, ", ")
}
