package domain

import "strings"

// Character is one glyph of a name with its resolved stroke count.
// Element and Polarity are derived on every call and never stored.
type Character struct {
	glyph       string
	strokeCount int
	reading     string
}

// NewCharacter validates and creates a Character.
// A negative stroke count yields an *InvalidStrokeCountError.
func NewCharacter(glyph string, strokeCount int, reading string) (Character, error) {
	glyph = strings.TrimSpace(glyph)
	if glyph == "" {
		return Character{}, NewValidationError("glyph", "cannot be empty", ErrEmptyGlyph)
	}
	if strokeCount < 0 {
		return Character{}, &InvalidStrokeCountError{Glyph: glyph, StrokeCount: strokeCount}
	}

	return Character{
		glyph:       glyph,
		strokeCount: strokeCount,
		reading:     strings.TrimSpace(reading),
	}, nil
}

// MustCharacter is NewCharacter for static data and tests; it panics on error.
func MustCharacter(glyph string, strokeCount int, reading string) Character {
	c, err := NewCharacter(glyph, strokeCount, reading)
	if err != nil {
		// ALLOW-PANIC: only used with compile-time constant input
		panic(err)
	}
	return c
}

// Glyph returns the character itself.
func (c Character) Glyph() string { return c.glyph }

// StrokeCount returns the resolved stroke count.
func (c Character) StrokeCount() int { return c.strokeCount }

// Reading returns the phonetic reading, which may be empty.
func (c Character) Reading() string { return c.reading }

// Element returns the five-element attribute of the stroke count.
func (c Character) Element() Element { return ElementOf(c.strokeCount) }

// Polarity returns the yin-yang attribute of the stroke count.
func (c Character) Polarity() Polarity { return PolarityOf(c.strokeCount) }

// WithReading returns a copy of c carrying the given reading.
func (c Character) WithReading(reading string) Character {
	c.reading = strings.TrimSpace(reading)
	return c
}
