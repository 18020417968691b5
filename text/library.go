package text

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// Library is an explicit, ownable font registry. Fonts added to one
// Library are visible only to canvases that were given that Library,
// so independent libraries and repeated init/teardown cycles are
// possible in tests.
//
// Family lookup is case-insensitive. A face request for an unknown
// family falls back to the first registered font, fontconfig style.
//
// Library is safe for concurrent use. Close releases the registry and
// should be called once, after every canvas using it is done drawing.
type Library struct {
	mu       sync.RWMutex
	sources  []*FontSource
	byFamily map[string]*FontSource
	closed   bool
}

// NewLibrary creates an empty font library.
func NewLibrary() *Library {
	return &Library{
		byFamily: make(map[string]*FontSource),
	}
}

// AddFont registers a font from raw TTF or OTF data.
// The first font registered for a family wins.
func (l *Library) AddFont(data []byte) error {
	src, err := NewFontSource(data)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrLibraryClosed
	}

	l.sources = append(l.sources, src)
	if name := strings.ToLower(src.Name()); name != "" {
		if _, dup := l.byFamily[name]; !dup {
			l.byFamily[name] = src
		}
	}
	return nil
}

// AddFontFile registers a font from a file path.
func (l *Library) AddFontFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("text: failed to read font file: %w", err)
	}
	return l.AddFont(data)
}

// Face returns a face for the given family name and size. Unknown
// families resolve to the first registered font; an empty library
// returns ErrNoFonts.
func (l *Library) Face(family string, size float64) (*Face, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return nil, ErrLibraryClosed
	}
	if len(l.sources) == 0 {
		return nil, ErrNoFonts
	}

	if src, ok := l.byFamily[strings.ToLower(family)]; ok {
		return src.Face(size), nil
	}
	return l.sources[0].Face(size), nil
}

// Families returns the registered family names, sorted.
func (l *Library) Families() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.byFamily))
	for _, src := range l.byFamily {
		names = append(names, src.Name())
	}
	sort.Strings(names)
	return names
}

// Close releases the registry. Faces created from the library must not
// be used afterwards. Close is idempotent.
func (l *Library) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	l.sources = nil
	l.byFamily = nil
}
