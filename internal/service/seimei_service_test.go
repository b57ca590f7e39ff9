package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/seimei-api/internal/domain"
	"github.com/phrazzld/seimei-api/internal/domain/kantei"
	"github.com/phrazzld/seimei-api/internal/platform/dictionary"
	"github.com/phrazzld/seimei-api/internal/platform/logger"
	"github.com/phrazzld/seimei-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore returns err from every lookup.
type failingStore struct {
	store.CharacterStore
	err error
}

func (f failingStore) GetByGlyph(context.Context, string) (domain.Character, error) {
	return domain.Character{}, f.err
}

func newTestService(t *testing.T, chars ...domain.Character) SeimeiService {
	t.Helper()

	if len(chars) == 0 {
		chars = []domain.Character{
			domain.MustCharacter("田", 5, "た"),
			domain.MustCharacter("中", 4, "なか"),
			domain.MustCharacter("太", 4, "た"),
			domain.MustCharacter("郎", 9, "ろう"),
			domain.MustCharacter("佐", 7, "さ"),
			domain.MustCharacter("木", 4, "き"),
			domain.MustCharacter("林", 8, "はやし"),
			domain.MustCharacter("明", 8, "あき"),
		}
	}
	log, _ := logger.GetTestLogger(t)
	svc, err := NewSeimeiService(dictionary.NewMemoryStore(chars...), kantei.NewDefaultService(), log)
	require.NoError(t, err)
	return svc
}

func TestNewSeimeiService_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewSeimeiService(nil, kantei.NewDefaultService(), nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = NewSeimeiService(dictionary.NewMemoryStore(), nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	svc, err := NewSeimeiService(dictionary.NewMemoryStore(), kantei.NewDefaultService(), nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestResolve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("dictionary lookups", func(t *testing.T) {
		t.Parallel()
		r, err := svc.Resolve(ctx, NameInput{Sei: "田中", Mei: "太郎"})
		require.NoError(t, err)

		assert.Equal(t, "田中", r.Name.SurnameText())
		assert.Equal(t, "太郎", r.Name.GivenText())
		require.Len(t, r.Characters, 4)
		assert.Equal(t, CharacterDetail{
			Position: 2,
			Part:     PartGiven,
			Glyph:    "太",
			Strokes:  4,
			Reading:  "た",
			Element:  domain.ElementFire,
			Polarity: domain.PolarityYin,
			Source:   SourceDictionary,
		}, r.Characters[2])
	})

	t.Run("input is normalized", func(t *testing.T) {
		t.Parallel()
		r, err := svc.Resolve(ctx, NameInput{Sei: " <b>田中</b> ", Mei: "太　郎"})
		require.NoError(t, err)
		assert.Equal(t, "田中", r.Name.SurnameText())
		assert.Equal(t, "太郎", r.Name.GivenText())
	})

	t.Run("iteration mark repeats the previous character", func(t *testing.T) {
		t.Parallel()
		r, err := svc.Resolve(ctx, NameInput{Sei: "佐々木", Mei: "明"})
		require.NoError(t, err)

		assert.Equal(t, 7+7+4, r.Name.Heaven())
		assert.Equal(t, SourceRepeat, r.Characters[1].Source)
		assert.Equal(t, "々", r.Characters[1].Glyph)
	})

	t.Run("overrides take precedence", func(t *testing.T) {
		t.Parallel()
		r, err := svc.Resolve(ctx, NameInput{
			Sei:     "田中",
			Mei:     "龘",
			Strokes: map[string]int{"龘": 48, "田": 6},
		})
		require.NoError(t, err)

		assert.Equal(t, 10, r.Name.Heaven())
		assert.Equal(t, 48, r.Name.Earth())
		assert.Equal(t, SourceOverride, r.Characters[0].Source)
		assert.Equal(t, SourceDictionary, r.Characters[1].Source)
	})

	t.Run("unknown characters are all reported", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Resolve(ctx, NameInput{Sei: "龘田", Mei: "𠮷龘"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownCharacter)

		var unknown *UnknownCharacterError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, []string{"龘", "𠮷"}, unknown.Glyphs)
	})

	t.Run("negative override", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Resolve(ctx, NameInput{Sei: "田", Mei: "中", Strokes: map[string]int{"田": -1}})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidStrokeCount)
	})

	t.Run("empty and too long parts", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name  string
			in    NameInput
			field string
		}{
			{name: "empty sei", in: NameInput{Sei: "", Mei: "太郎"}, field: "sei"},
			{name: "markup only mei", in: NameInput{Sei: "田中", Mei: "<br>"}, field: "mei"},
			{name: "long mei", in: NameInput{Sei: "田", Mei: "田田田田田田田田田田田"}, field: "mei"},
		}
		for _, tt := range tests {
			_, err := svc.Resolve(ctx, tt.in)
			require.Error(t, err, tt.name)

			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr), tt.name)
			assert.Equal(t, tt.field, vErr.Field, tt.name)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("database is locked")
		failing, err := NewSeimeiService(failingStore{err: boom}, kantei.NewDefaultService(), nil)
		require.NoError(t, err)

		_, err = failing.Resolve(ctx, NameInput{Sei: "田", Mei: "中"})
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrUnknownCharacter)

		var svcErr *SeimeiServiceError
		require.True(t, errors.As(err, &svcErr))
		assert.Equal(t, "resolve", svcErr.Operation)
	})
}

func TestKakusu(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	r, err := svc.Kakusu(context.Background(), NameInput{Sei: "田中", Mei: "太郎"})
	require.NoError(t, err)

	assert.Equal(t, domain.Counts{
		Heaven:      9,
		Personality: 8,
		Earth:       13,
		Total:       22,
		Outer:       14,
		HasOuter:    true,
	}, r.Counts)
}

func TestAnalyze(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("scores the name", func(t *testing.T) {
		t.Parallel()
		a, err := svc.Analyze(ctx, AnalyzeInput{NameInput: NameInput{Sei: "田中", Mei: "太郎"}})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, a.ID)
		assert.False(t, a.CreatedAt.IsZero())
		assert.Equal(t, 56, a.Result.TotalScore)
		assert.Equal(t, kantei.ClassAverageName, a.Result.Classification)
		assert.Len(t, a.Characters, 4)
	})

	t.Run("overrides change the score", func(t *testing.T) {
		t.Parallel()
		floor := 80
		a, err := svc.Analyze(ctx, AnalyzeInput{
			NameInput: NameInput{Sei: "田中", Mei: "太郎"},
			Overrides: kantei.Overrides{MinScore: &floor},
		})
		require.NoError(t, err)
		assert.Equal(t, 80, a.Result.TotalScore)
	})

	t.Run("invalid weights", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Analyze(ctx, AnalyzeInput{
			NameInput: NameInput{Sei: "田中", Mei: "太郎"},
			Overrides: kantei.Overrides{Weights: &kantei.Weights{}},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidOptions)
		assert.ErrorIs(t, err, kantei.ErrInvalidWeights)
	})

	t.Run("invalid normalization", func(t *testing.T) {
		t.Parallel()
		lo, hi := 90, 10
		_, err := svc.Analyze(ctx, AnalyzeInput{
			NameInput: NameInput{Sei: "田中", Mei: "太郎"},
			Overrides: kantei.Overrides{MinScore: &lo, MaxScore: &hi},
		})
		assert.ErrorIs(t, err, ErrInvalidOptions)
	})

	t.Run("unknown character", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Analyze(ctx, AnalyzeInput{NameInput: NameInput{Sei: "龘", Mei: "太郎"}})
		assert.ErrorIs(t, err, ErrUnknownCharacter)
	})
}
