package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Workflow errors. Losing a lease race is a boolean outcome, not one of these.
var (
	ErrNotLeaseHolder    = errors.New("not lease holder")
	ErrAlreadyDigitized  = errors.New("already digitized")
	ErrNoDigitizedValues = errors.New("acta has no digitized values")
	ErrContributorBanned = fmt.Errorf("contributor banned: %w", ErrForbidden)
)

// FieldError is one rejected input field. Field uses the JSON path the
// client sent, e.g. "corrected_values.pn".
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports every rejected field of one request at once.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError rejects a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// Problems collects field errors while an input is checked.
type Problems struct {
	errs []FieldError
}

// Add records a rejected field.
func (p *Problems) Add(field, message string) {
	p.errs = append(p.errs, FieldError{Field: field, Message: message})
}

// Require records message for field unless ok holds.
func (p *Problems) Require(ok bool, field, message string) {
	if !ok {
		p.Add(field, message)
	}
}

// Merge appends errors produced by a nested check.
func (p *Problems) Merge(errs []FieldError) {
	p.errs = append(p.errs, errs...)
}

// Err returns a *ValidationError, or nil when nothing was recorded.
func (p *Problems) Err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: p.errs}
}
