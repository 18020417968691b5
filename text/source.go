package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	// Font data
	data   []byte
	parsed *opentype.Font

	// Family name from the sfnt name table.
	name string

	// mu guards the lazily parsed shaping font.
	mu     sync.Mutex
	shaped *font.Font
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
	}
	s.name = familyName(parsed)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name.
// Returns an empty string if the font does not carry one.
func (s *FontSource) Name() string {
	return s.name
}

// Face creates a Face at the specified size (in points at 72 DPI, so
// points equal pixels).
func (s *FontSource) Face(size float64) *Face {
	return &Face{source: s, size: size}
}

// shapedFont returns the go-text representation of the font, parsing
// it on first use. font.Font is read-only and safe for concurrent use.
func (s *FontSource) shapedFont() (*font.Font, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shaped != nil {
		return s.shaped, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(s.data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}
	s.shaped = face.Font
	return s.shaped, nil
}

// familyName extracts the family name from the sfnt name table.
func familyName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	return ""
}
