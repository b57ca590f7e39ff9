package dictionary

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/seimei-api/internal/domain"
	"github.com/phrazzld/seimei-api/internal/store"
)

// MemoryStore is a map-backed store.CharacterStore. It is safe for
// concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]domain.Character
}

// Ensure MemoryStore implements store.CharacterStore interface
var _ store.CharacterStore = (*MemoryStore)(nil)

// NewMemoryStore creates a store holding chars.
func NewMemoryStore(chars ...domain.Character) *MemoryStore {
	m := &MemoryStore{entries: make(map[string]domain.Character, len(chars))}
	for _, c := range chars {
		m.entries[c.Glyph()] = c
	}
	return m
}

// NewSeededMemoryStore creates a store holding the embedded seed.
func NewSeededMemoryStore() (*MemoryStore, error) {
	chars, err := Seed()
	if err != nil {
		return nil, fmt.Errorf("loading embedded dictionary: %w", err)
	}
	return NewMemoryStore(chars...), nil
}

// GetByGlyph implements store.CharacterStore.GetByGlyph
func (m *MemoryStore) GetByGlyph(ctx context.Context, glyph string) (domain.Character, error) {
	if err := ctx.Err(); err != nil {
		return domain.Character{}, err
	}

	m.mu.RLock()
	c, ok := m.entries[glyph]
	m.mu.RUnlock()

	if !ok {
		return domain.Character{}, fmt.Errorf("%w: %q", store.ErrCharacterNotFound, glyph)
	}
	return c, nil
}

// Upsert implements store.CharacterStore.Upsert
func (m *MemoryStore) Upsert(ctx context.Context, chars []domain.Character) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := store.ValidateCharacters(chars); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range chars {
		m.entries[c.Glyph()] = c
	}
	return nil
}

// Count implements store.CharacterStore.Count
func (m *MemoryStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries), nil
}
