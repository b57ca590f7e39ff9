package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("sei", "is required", nil)
	assert.Equal(t, "validation failed: sei is required", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))

	wrapped := NewValidationError("glyph", "cannot be empty", ErrEmptyGlyph)
	assert.True(t, errors.Is(wrapped, ErrEmptyGlyph))
	assert.True(t, errors.Is(wrapped, ErrValidation))

	noField := NewValidationError("", "bad input", nil)
	assert.Equal(t, "validation failed: bad input", noField.Error())
}

func TestInvalidStrokeCountError(t *testing.T) {
	t.Parallel()

	err := &InvalidStrokeCountError{Glyph: "田", StrokeCount: -1}
	assert.Contains(t, err.Error(), "-1")
	assert.Contains(t, err.Error(), "田")
	assert.True(t, errors.Is(err, ErrInvalidStrokeCount))

	anonymous := &InvalidStrokeCountError{StrokeCount: -3}
	assert.Equal(t, "invalid stroke count -3", anonymous.Error())
}

func TestUnknownElementPairError(t *testing.T) {
	t.Parallel()

	err := &UnknownElementPairError{A: ElementWood, B: "aether"}
	assert.True(t, errors.Is(err, ErrUnknownElementPair))
	assert.Contains(t, err.Error(), "aether")
}
