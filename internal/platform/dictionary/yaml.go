package dictionary

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/seimei-api/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed seed/characters.yaml
var seedYAML []byte

// Entry is one dictionary record as it appears in a YAML file.
type Entry struct {
	Glyph   string `yaml:"glyph"`
	Strokes int    `yaml:"strokes"`
	Reading string `yaml:"reading,omitempty"`
}

// File is the top-level layout of a YAML dictionary:
//
//	characters:
//	  - glyph: 田
//	    strokes: 5
//	    reading: た
type File struct {
	Characters []Entry `yaml:"characters"`
}

// Parse decodes a YAML dictionary. Every entry is validated; the first bad
// entry aborts the whole parse. Later duplicates of a glyph win.
func Parse(r io.Reader) ([]domain.Character, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding dictionary: %w", err)
	}

	chars := make([]domain.Character, 0, len(f.Characters))
	for i, e := range f.Characters {
		c, err := domain.NewCharacter(e.Glyph, e.Strokes, e.Reading)
		if err != nil {
			return nil, fmt.Errorf("dictionary entry %d: %w", i+1, err)
		}
		chars = append(chars, c)
	}
	return chars, nil
}

// LoadFile reads a YAML dictionary from disk.
func LoadFile(path string) ([]domain.Character, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary file: %w", err)
	}
	defer func() { _ = file.Close() }()

	chars, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary file %s: %w", path, err)
	}
	return chars, nil
}

// Seed returns the embedded dictionary.
func Seed() ([]domain.Character, error) {
	return Parse(bytes.NewReader(seedYAML))
}

// Encode writes chars as a YAML dictionary.
func Encode(w io.Writer, chars []domain.Character) error {
	f := File{Characters: make([]Entry, len(chars))}
	for i, c := range chars {
		f.Characters[i] = Entry{Glyph: c.Glyph(), Strokes: c.StrokeCount(), Reading: c.Reading()}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encoding dictionary: %w", err)
	}
	return enc.Close()
}
