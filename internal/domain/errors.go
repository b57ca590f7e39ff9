// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidStrokeCount is returned when a stroke count is negative or
	// otherwise unusable by a judge.
	ErrInvalidStrokeCount = errors.New("invalid stroke count")

	// ErrUnknownElementPair signals a programming error: every pair of the
	// five elements must classify into exactly one relation.
	ErrUnknownElementPair = errors.New("unknown element pair")

	// ErrEmptyGlyph is returned when a character is constructed without a glyph.
	ErrEmptyGlyph = errors.New("glyph cannot be empty")
)

// ValidationError describes a rejected input field. It unwraps to the
// supplied cause, or to ErrValidation when no cause is given.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for the named field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrValidation
}

// Is reports whether target is ErrValidation so that wrapped causes other
// than ErrValidation still match errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// InvalidStrokeCountError reports a negative stroke count reaching the engine.
type InvalidStrokeCountError struct {
	Glyph       string
	StrokeCount int
}

// Error implements the error interface.
func (e *InvalidStrokeCountError) Error() string {
	if e.Glyph == "" {
		return fmt.Sprintf("invalid stroke count %d", e.StrokeCount)
	}
	return fmt.Sprintf("invalid stroke count %d for %q", e.StrokeCount, e.Glyph)
}

// Unwrap returns ErrInvalidStrokeCount.
func (e *InvalidStrokeCountError) Unwrap() error {
	return ErrInvalidStrokeCount
}

// UnknownElementPairError is raised when an element pair falls outside the
// same/generative/destructive partition. Reaching it means the Element value
// itself is corrupt.
type UnknownElementPairError struct {
	A Element
	B Element
}

// Error implements the error interface.
func (e *UnknownElementPairError) Error() string {
	return fmt.Sprintf("unknown element pair %q/%q", e.A, e.B)
}

// Unwrap returns ErrUnknownElementPair.
func (e *UnknownElementPairError) Unwrap() error {
	return ErrUnknownElementPair
}
