package dictionary

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/phrazzld/seimei-api/internal/domain"
	"github.com/phrazzld/seimei-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("get existing", func(t *testing.T) {
		t.Parallel()
		m := NewMemoryStore(domain.MustCharacter("田", 5, "た"))

		c, err := m.GetByGlyph(ctx, "田")
		require.NoError(t, err)
		assert.Equal(t, 5, c.StrokeCount())
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()
		m := NewMemoryStore()

		_, err := m.GetByGlyph(ctx, "田")
		require.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrCharacterNotFound))
	})

	t.Run("upsert replaces and counts", func(t *testing.T) {
		t.Parallel()
		m := NewMemoryStore(domain.MustCharacter("藤", 21, ""))

		require.NoError(t, m.Upsert(ctx, []domain.Character{
			domain.MustCharacter("藤", 18, "ふじ"),
			domain.MustCharacter("原", 10, "はら"),
		}))

		c, err := m.GetByGlyph(ctx, "藤")
		require.NoError(t, err)
		assert.Equal(t, 18, c.StrokeCount())

		n, err := m.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("invalid batch is rejected whole", func(t *testing.T) {
		t.Parallel()
		m := NewMemoryStore()

		err := m.Upsert(ctx, []domain.Character{domain.MustCharacter("山", 3, ""), {}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrInvalidEntity))

		n, _ := m.Count(ctx)
		assert.Zero(t, n)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		m := NewMemoryStore(domain.MustCharacter("田", 5, ""))
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := m.GetByGlyph(cctx, "田")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("seeded", func(t *testing.T) {
		t.Parallel()
		m, err := NewSeededMemoryStore()
		require.NoError(t, err)

		n, err := m.Count(ctx)
		require.NoError(t, err)
		assert.Greater(t, n, 500)
	})
}

func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := NewMemoryStore(domain.MustCharacter("田", 5, ""))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = m.GetByGlyph(ctx, "田")
		}()
		go func(n int) {
			defer wg.Done()
			_ = m.Upsert(ctx, []domain.Character{domain.MustCharacter("中", n, "")})
		}(i)
	}
	wg.Wait()

	n, err := m.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
