package text

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func newWhite(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}

// inkCount counts pixels darker than the white background.
func inkCount(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R < 128 && c.G < 128 && c.B < 128 {
				n++
			}
		}
	}
	return n
}

func TestDrawProducesInk(t *testing.T) {
	face := testFace(t, 16)
	img := newWhite(64, 64)

	const baseline = 40
	face.Draw(img, "H", 10, baseline, color.Black)

	// Ink of a capital H must land above the baseline.
	above := inkCount(img, image.Rect(0, 0, 64, baseline+1))
	if above == 0 {
		t.Fatal("no ink above the baseline")
	}

	// And nothing well below it.
	below := inkCount(img, image.Rect(0, baseline+2, 64, 64))
	if below != 0 {
		t.Errorf("%d ink pixels below the baseline of a descenderless glyph", below)
	}
}

func TestDrawEmptyString(t *testing.T) {
	face := testFace(t, 16)
	img := newWhite(32, 32)
	face.Draw(img, "", 16, 16, color.Black)

	if n := inkCount(img, img.Bounds()); n != 0 {
		t.Errorf("empty string drew %d pixels", n)
	}
}

func TestDrawMatchesExtents(t *testing.T) {
	face := testFace(t, 16)
	ext := face.Extents("HUD")

	img := newWhite(128, 64)
	const ox, oy = 20, 40
	face.Draw(img, "HUD", ox, oy, color.Black)

	// All ink stays inside the measured box, within an anti-aliasing
	// margin of one pixel.
	box := image.Rect(
		int(float64(ox)+ext.XBearing)-1,
		int(float64(oy)+ext.YBearing)-1,
		int(float64(ox)+ext.XBearing+ext.Width)+2,
		int(float64(oy)+ext.YBearing+ext.Height)+2,
	)
	total := inkCount(img, img.Bounds())
	inside := inkCount(img, box.Intersect(img.Bounds()))
	if total == 0 {
		t.Fatal("no ink drawn")
	}
	if inside != total {
		t.Errorf("%d of %d ink pixels outside the measured extents box", total-inside, total)
	}
}

func TestShapeAppliesAdvance(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	face := source.Face(16)

	glyphs, advance := shape("ab", face)
	if len(glyphs) != 2 {
		t.Fatalf("shape(\"ab\") produced %d glyphs, want 2", len(glyphs))
	}
	if glyphs[1].x <= glyphs[0].x {
		t.Errorf("second glyph at x=%v, not right of first at x=%v", glyphs[1].x, glyphs[0].x)
	}
	if advance <= glyphs[1].x-glyphs[0].x {
		t.Errorf("total advance %v not larger than single step %v", advance, glyphs[1].x-glyphs[0].x)
	}
}
