// Package apperr defines the error kinds surfaced by the request pipeline.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned by update paths when the target record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a business rule forbids the requested change.
	ErrConflict = errors.New("conflict")
)

// FieldFailure is one violated field rule.
type FieldFailure struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationError carries every failure collected for a request, in rule-set order.
type ValidationError struct {
	Failures []FieldFailure
}

// NewValidationError builds a ValidationError from the given failures.
func NewValidationError(failures []FieldFailure) *ValidationError {
	return &ValidationError{Failures: failures}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the failing field names in order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		fields = append(fields, f.Field)
	}
	return fields
}

// NotFound wraps ErrNotFound with the entity name and id.
func NotFound(entity, id string) error {
	return fmt.Errorf("%s with ID %s: %w", entity, id, ErrNotFound)
}

// Conflict wraps ErrConflict with a description of the violated rule.
func Conflict(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrConflict)
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
