package text

import (
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
)

// shapedGlyph is a glyph positioned relative to the text origin, in
// y-down pixel coordinates.
type shapedGlyph struct {
	gid  sfnt.GlyphIndex
	x, y float64
}

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has
// internal mutable state and is not safe for concurrent use, but
// reusing instances across sequential calls is efficient.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// shape converts text into positioned glyphs using HarfBuzz shaping via
// go-text/typesetting, applying kerning, ligatures and script-specific
// substitutions. It returns the glyphs and the total pen advance in
// pixels.
func shape(s string, f *Face) ([]shapedGlyph, float64) {
	if s == "" || f == nil {
		return nil, 0
	}

	shapedFont, err := f.source.shapedFont()
	if err != nil {
		return nil, 0
	}

	// font.Face is not safe for concurrent use; create one per call.
	// font.NewFace is cheap: it wraps the thread-safe *Font.
	face := font.NewFace(shapedFont)

	runes := []rune(s)
	dir := detectDirection(s)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      face,
		Size:      floatToFixed(f.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	glyphs := make([]shapedGlyph, 0, len(output.Glyphs))
	var x, y float64
	for _, g := range output.Glyphs {
		// Offsets are fine-grained adjustments on top of the pen
		// position. The Y axis flips: shaping is y-up, the canvas is
		// y-down.
		glyphs = append(glyphs, shapedGlyph{
			gid: sfnt.GlyphIndex(uint16(g.GlyphID)),
			x:   x + fixedToFloat(g.XOffset),
			y:   y - fixedToFloat(g.YOffset),
		})

		adv := fixedToFloat(g.Advance)
		if dir.IsVertical() {
			y += adv
		} else {
			x += adv
		}
	}

	return glyphs, x
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
