// Package textutil normalises user-supplied name input before dictionary
// lookup.
package textutil

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var markupPolicy = bluemonday.StrictPolicy()

// NormalizeName strips markup, folds full-width ASCII and half-width kana to
// their canonical widths, applies NFKC and removes whitespace, control
// characters and variation selectors.
func NormalizeName(s string) string {
	s = html.UnescapeString(markupPolicy.Sanitize(s))
	s = width.Fold.String(s)
	s = norm.NFKC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if dropRune(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SplitGlyphs returns the glyphs of an already-normalised name part.
func SplitGlyphs(s string) []string {
	glyphs := make([]string, 0, len(s))
	for _, r := range s {
		glyphs = append(glyphs, string(r))
	}
	return glyphs
}

// GlyphCount returns the number of glyphs in s after normalisation.
func GlyphCount(s string) int {
	return len([]rune(NormalizeName(s)))
}

func dropRune(r rune) bool {
	switch {
	case unicode.IsSpace(r), unicode.IsControl(r):
		return true
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return true
	case r >= 0xE0100 && r <= 0xE01EF: // ideographic variation selectors
		return true
	case r == 0x200B || r == 0x200C || r == 0x200D || r == 0xFEFF:
		return true
	default:
		return false
	}
}
