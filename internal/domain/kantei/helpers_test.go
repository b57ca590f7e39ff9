package kantei

import (
	"testing"

	"github.com/phrazzld/seimei-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// makeName builds a name from glyph strings and matching stroke counts.
func makeName(t *testing.T, sei string, seiStrokes []int, mei string, meiStrokes []int) domain.Name {
	t.Helper()
	name, err := domain.NewName(makeChars(t, sei, seiStrokes), makeChars(t, mei, meiStrokes))
	require.NoError(t, err)
	return name
}

func makeChars(t *testing.T, glyphs string, strokes []int) []domain.Character {
	t.Helper()
	runes := []rune(glyphs)
	require.Len(t, runes, len(strokes), "glyphs and strokes must align")
	out := make([]domain.Character, len(runes))
	for i, r := range runes {
		c, err := domain.NewCharacter(string(r), strokes[i], "")
		require.NoError(t, err)
		out[i] = c
	}
	return out
}

func polarities(symbols string) []domain.Polarity {
	out := make([]domain.Polarity, 0, len(symbols))
	for _, r := range symbols {
		switch r {
		case 'o':
			out = append(out, domain.PolarityYang)
		case 'x':
			out = append(out, domain.PolarityYin)
		}
	}
	return out
}
