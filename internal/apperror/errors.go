// Package apperror defines the error taxonomy shared by the transaction core.
// Callers match error kinds with errors.Is against the sentinel values and
// use errors.As to reach the typed carriers for details.
package apperror

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidKind          = errors.New("invalid transaction type")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidSortOrder     = errors.New("invalid sort order")
	ErrInvalidDescription   = errors.New("invalid description")
	ErrKindCategoryMismatch = errors.New("category does not match transaction type")
	ErrNotFound             = errors.New("transaction not found")
	ErrInvalidID            = errors.New("invalid transaction ID")
)

// ParseError represents a failure to turn raw text into a domain value.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a transaction invariant violation.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s '%s' rejected: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s '%s' rejected: %v: %s", e.Field, e.Value, e.Err, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when no transaction carries the requested id.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction with ID %d not found", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// StoreError describes a persisted store that exists but could not be used.
type StoreError struct {
	FilePath string
	Reason   string
	Err      error
}

func (e *StoreError) Error() string {
	msg := "unusable transaction store"
	if e.FilePath != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.FilePath)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", msg, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", msg, e.Reason)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
