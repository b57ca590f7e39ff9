package domain

import "strings"

// Counts holds the five classical stroke-count aggregates of a name
// (天格, 人格, 地格, 総格, 外格).
type Counts struct {
	Heaven      int  `json:"heaven"`
	Personality int  `json:"personality"`
	Earth       int  `json:"earth"`
	Total       int  `json:"total"`
	Outer       int  `json:"outer"`
	HasOuter    bool `json:"hasOuter"`
}

// Name is a full name split into surname (姓) and given name (名).
// Aggregates are recomputed from the characters on every access.
type Name struct {
	surname []Character
	given   []Character
}

// NewName validates and creates a Name. Both parts must be non-empty; a
// given name of a single character is accepted here and judged later.
func NewName(surname, given []Character) (Name, error) {
	if len(surname) == 0 {
		return Name{}, NewValidationError("sei", "must contain at least one character", nil)
	}
	if len(given) == 0 {
		return Name{}, NewValidationError("mei", "must contain at least one character", nil)
	}

	for _, c := range surname {
		if err := checkCharacter(c); err != nil {
			return Name{}, err
		}
	}
	for _, c := range given {
		if err := checkCharacter(c); err != nil {
			return Name{}, err
		}
	}

	return Name{
		surname: append([]Character(nil), surname...),
		given:   append([]Character(nil), given...),
	}, nil
}

// checkCharacter guards against zero-value Characters built outside NewCharacter.
func checkCharacter(c Character) error {
	if c.glyph == "" {
		return NewValidationError("glyph", "cannot be empty", ErrEmptyGlyph)
	}
	if c.strokeCount < 0 {
		return &InvalidStrokeCountError{Glyph: c.glyph, StrokeCount: c.strokeCount}
	}
	return nil
}

// Surname returns a copy of the surname characters.
func (n Name) Surname() []Character { return append([]Character(nil), n.surname...) }

// Given returns a copy of the given-name characters.
func (n Name) Given() []Character { return append([]Character(nil), n.given...) }

// Characters returns surname then given-name characters.
func (n Name) Characters() []Character {
	all := make([]Character, 0, len(n.surname)+len(n.given))
	all = append(all, n.surname...)
	return append(all, n.given...)
}

// Len returns the total number of characters.
func (n Name) Len() int { return len(n.surname) + len(n.given) }

// SurnameText returns the surname glyphs joined together.
func (n Name) SurnameText() string { return joinGlyphs(n.surname) }

// GivenText returns the given-name glyphs joined together.
func (n Name) GivenText() string { return joinGlyphs(n.given) }

// Heaven is the sum of the surname stroke counts (天格).
func (n Name) Heaven() int { return sumStrokes(n.surname) }

// Earth is the sum of the given-name stroke counts (地格).
func (n Name) Earth() int { return sumStrokes(n.given) }

// Personality is the last surname character plus the first given-name
// character (人格).
func (n Name) Personality() int {
	if len(n.surname) == 0 || len(n.given) == 0 {
		return 0
	}
	return n.surname[len(n.surname)-1].strokeCount + n.given[0].strokeCount
}

// Total is Heaven plus Earth (総格).
func (n Name) Total() int { return n.Heaven() + n.Earth() }

// Outer is Total minus Personality (外格). It is only meaningful when
// HasOuter reports true.
func (n Name) Outer() int { return n.Total() - n.Personality() }

// HasOuter reports whether the name has at least three characters.
func (n Name) HasOuter() bool { return n.Len() >= 3 }

// Counts returns all five aggregates at once.
func (n Name) Counts() Counts {
	return Counts{
		Heaven:      n.Heaven(),
		Personality: n.Personality(),
		Earth:       n.Earth(),
		Total:       n.Total(),
		Outer:       n.Outer(),
		HasOuter:    n.HasOuter(),
	}
}

// Polarities returns the polarity sequences of surname and given name.
func (n Name) Polarities() (surname, given []Polarity) {
	return polarities(n.surname), polarities(n.given)
}

// Elements returns the element of every character, surname first.
func (n Name) Elements() []Element {
	all := n.Characters()
	out := make([]Element, len(all))
	for i, c := range all {
		out[i] = c.Element()
	}
	return out
}

func sumStrokes(chars []Character) int {
	total := 0
	for _, c := range chars {
		total += c.strokeCount
	}
	return total
}

func polarities(chars []Character) []Polarity {
	out := make([]Polarity, len(chars))
	for i, c := range chars {
		out[i] = c.Polarity()
	}
	return out
}

func joinGlyphs(chars []Character) string {
	var b strings.Builder
	for _, c := range chars {
		b.WriteString(c.glyph)
	}
	return b.String()
}
