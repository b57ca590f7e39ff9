package sqlstore

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/seimei-api/internal/domain"
	"github.com/phrazzld/seimei-api/internal/platform/logger"
	"github.com/phrazzld/seimei-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterStore_UpsertAndGet(t *testing.T) {
	db := openMigratedDB(t)
	log, _ := logger.GetTestLogger(t)
	s := NewCharacterStore(db, log)
	ctx := context.Background()

	err := s.Upsert(ctx, []domain.Character{
		domain.MustCharacter("田", 5, "た"),
		domain.MustCharacter("中", 4, "なか"),
	})
	require.NoError(t, err)

	c, err := s.GetByGlyph(ctx, "田")
	require.NoError(t, err)
	assert.Equal(t, "田", c.Glyph())
	assert.Equal(t, 5, c.StrokeCount())
	assert.Equal(t, "た", c.Reading())

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCharacterStore_UpsertReplaces(t *testing.T) {
	db := openMigratedDB(t)
	s := NewCharacterStore(db, nil)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, []domain.Character{domain.MustCharacter("藤", 21, "ふじ")}))
	require.NoError(t, s.Upsert(ctx, []domain.Character{domain.MustCharacter("藤", 18, "とう")}))

	c, err := s.GetByGlyph(ctx, "藤")
	require.NoError(t, err)
	assert.Equal(t, 18, c.StrokeCount())
	assert.Equal(t, "とう", c.Reading())

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCharacterStore_GetByGlyphNotFound(t *testing.T) {
	db := openMigratedDB(t)
	s := NewCharacterStore(db, nil)

	_, err := s.GetByGlyph(context.Background(), "龘")

	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrCharacterNotFound))
	assert.True(t, store.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "龘")
}

func TestCharacterStore_UpsertInvalidBatchWritesNothing(t *testing.T) {
	db := openMigratedDB(t)
	s := NewCharacterStore(db, nil)
	ctx := context.Background()

	err := s.Upsert(ctx, []domain.Character{domain.MustCharacter("山", 3, "やま"), {}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrInvalidEntity))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCharacterStore_UpsertEmptyBatch(t *testing.T) {
	db := openMigratedDB(t)
	s := NewCharacterStore(db, nil)

	assert.NoError(t, s.Upsert(context.Background(), nil))
}

func TestCharacterStore_CheckConstraint(t *testing.T) {
	db := openMigratedDB(t)

	_, err := db.Exec(`INSERT INTO characters (glyph, stroke_count, reading) VALUES ('x', -1, '')`)
	require.Error(t, err)

	mapped := MapError(err)
	assert.True(t, errors.Is(mapped, store.ErrInvalidEntity), "got %v", mapped)
}

func TestNewCharacterStore_NilDB(t *testing.T) {
	assert.Panics(t, func() { NewCharacterStore(nil, nil) })
}
