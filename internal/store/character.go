package store

import (
	"context"
	"fmt"

	"github.com/phrazzld/seimei-api/internal/domain"
)

// CharacterStore defines the interface for the kanji dictionary.
type CharacterStore interface {
	// GetByGlyph retrieves the dictionary entry for a single glyph.
	// Returns ErrCharacterNotFound if the glyph is unknown.
	GetByGlyph(ctx context.Context, glyph string) (domain.Character, error)

	// Upsert inserts or replaces the given characters.
	// Returns ErrInvalidEntity if any character has an empty glyph or a
	// negative stroke count; in that case nothing is written.
	Upsert(ctx context.Context, chars []domain.Character) error

	// Count returns the number of glyphs in the dictionary.
	Count(ctx context.Context) (int, error)
}

// ValidateCharacters checks a batch before it is written. Character values
// built with domain.NewCharacter always pass; zero values do not.
func ValidateCharacters(chars []domain.Character) error {
	for i, c := range chars {
		if c.Glyph() == "" {
			return NewStoreError("character", "upsert",
				"entry has no glyph",
				fmt.Errorf("%w: index %d: %w", ErrInvalidEntity, i, domain.ErrEmptyGlyph))
		}
		if c.StrokeCount() < 0 {
			return NewStoreError("character", "upsert",
				"entry has a negative stroke count",
				fmt.Errorf("%w: %w", ErrInvalidEntity,
					&domain.InvalidStrokeCountError{Glyph: c.Glyph(), StrokeCount: c.StrokeCount()}))
		}
	}
	return nil
}
