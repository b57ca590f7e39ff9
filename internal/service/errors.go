package service

import (
	"errors"
	"fmt"
	"strings"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrUnknownCharacter indicates that a glyph has no stroke count in the
	// dictionary and none was supplied by the caller.
	// API layer should map this to HTTP 422 Unprocessable Entity.
	ErrUnknownCharacter = errors.New("unknown character")

	// ErrInvalidOptions indicates that per-request scoring options were rejected.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidOptions = errors.New("invalid options")
)

// UnknownCharacterError lists every glyph of a name that could not be
// resolved. It unwraps to ErrUnknownCharacter.
type UnknownCharacterError struct {
	Glyphs []string
}

// Error implements the error interface.
func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownCharacter, strings.Join(e.Glyphs, ", "))
}

// Unwrap returns ErrUnknownCharacter.
func (e *UnknownCharacterError) Unwrap() error {
	return ErrUnknownCharacter
}

// SeimeiServiceError wraps unexpected errors from the seimei service with context.
type SeimeiServiceError struct {
	// Operation is the operation that failed (e.g., "analyze", "resolve")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for SeimeiServiceError.
func (e *SeimeiServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("seimei service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("seimei service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *SeimeiServiceError) Unwrap() error {
	return e.Err
}

// NewSeimeiServiceError creates a new SeimeiServiceError.
func NewSeimeiServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	return &SeimeiServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
