package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face is a FontSource at a specific size. Faces are lightweight values
// created per use; the heavyweight state lives in the FontSource.
type Face struct {
	source *FontSource
	size   float64
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource { return f.source }

// Size returns the size of this face in pixels.
func (f *Face) Size() float64 { return f.size }

// Metrics holds font-wide vertical metrics at the face's size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font
	// (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the
	// font (positive, below baseline).
	Descent float64

	// LineGap is the recommended extra gap between lines.
	LineGap float64
}

// LineHeight returns the recommended vertical distance between
// baselines of consecutive lines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	var buf sfnt.Buffer
	m, err := f.source.parsed.Metrics(&buf, f.ppem(), font.HintingNone)
	if err != nil {
		return Metrics{}
	}
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	return Metrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: fixedToFloat(m.Height) - ascent - descent,
	}
}

// Extents describes the ink bounding box of a rendered string relative
// to its baseline origin, cairo text-extents style.
type Extents struct {
	// XBearing is the horizontal distance from the origin to the
	// leftmost ink. Negative when ink extends left of the origin.
	XBearing float64

	// YBearing is the vertical distance from the origin to the topmost
	// ink. Negative above the baseline.
	YBearing float64

	// Width and Height are the dimensions of the ink box.
	Width  float64
	Height float64

	// XAdvance is the total pen advance of the string.
	XAdvance float64
}

// Extents measures the ink bounding box of s: the pixels actually
// covered by glyphs, excluding font metric padding. Glyphs without ink
// (spaces) contribute only to XAdvance.
func (f *Face) Extents(s string) Extents {
	glyphs, advance := shape(s, f)
	if len(glyphs) == 0 {
		return Extents{}
	}

	var buf sfnt.Buffer
	ppem := f.ppem()

	found := false
	var minX, minY, maxX, maxY float64
	for _, g := range glyphs {
		bounds, _, err := f.source.parsed.GlyphBounds(&buf, g.gid, ppem, font.HintingNone)
		if err != nil {
			continue
		}
		if bounds.Min.X >= bounds.Max.X || bounds.Min.Y >= bounds.Max.Y {
			continue // no ink
		}
		left := g.x + fixedToFloat(bounds.Min.X)
		top := g.y + fixedToFloat(bounds.Min.Y)
		right := g.x + fixedToFloat(bounds.Max.X)
		bottom := g.y + fixedToFloat(bounds.Max.Y)
		if !found {
			minX, minY, maxX, maxY = left, top, right, bottom
			found = true
			continue
		}
		minX = min(minX, left)
		minY = min(minY, top)
		maxX = max(maxX, right)
		maxY = max(maxY, bottom)
	}

	if !found {
		return Extents{XAdvance: advance}
	}
	return Extents{
		XBearing: minX,
		YBearing: minY,
		Width:    maxX - minX,
		Height:   maxY - minY,
		XAdvance: advance,
	}
}

// Advance returns the total pen advance of s in pixels.
func (f *Face) Advance(s string) float64 {
	_, advance := shape(s, f)
	return advance
}

func (f *Face) ppem() fixed.Int26_6 {
	return floatToFixed(f.size)
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
