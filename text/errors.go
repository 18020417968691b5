package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrLibraryClosed is returned when a Library is used after Close.
	ErrLibraryClosed = errors.New("text: library is closed")

	// ErrNoFonts is returned when a face is requested from a Library
	// with no registered fonts.
	ErrNoFonts = errors.New("text: no fonts registered")
)
