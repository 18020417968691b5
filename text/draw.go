package text

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Draw renders a single line of text into dst. The position (x, y) is
// the baseline origin. Glyphs are shaped, their outlines loaded from
// the font and rasterized with golang.org/x/image/vector at the shaped
// positions.
func (f *Face) Draw(dst draw.Image, s string, x, y float64, col color.Color) {
	if s == "" || f == nil {
		return
	}
	glyphs, _ := shape(s, f)
	if len(glyphs) == 0 {
		return
	}

	var buf sfnt.Buffer
	ppem := f.ppem()
	src := image.NewUniform(col)

	for _, g := range glyphs {
		segments, err := f.source.parsed.LoadGlyph(&buf, g.gid, ppem, nil)
		if err != nil || len(segments) == 0 {
			continue
		}
		drawOutline(dst, segments, x+g.x, y+g.y, src)
	}
}

// drawOutline rasterizes one glyph outline with its origin at (ox, oy)
// and composites it over dst.
func drawOutline(dst draw.Image, segments sfnt.Segments, ox, oy float64, src image.Image) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	bound := func(p fixed.Point26_6) {
		px := ox + fixedToFloat(p.X)
		py := oy + fixedToFloat(p.Y)
		minX = math.Min(minX, px)
		minY = math.Min(minY, py)
		maxX = math.Max(maxX, px)
		maxY = math.Max(maxY, py)
	}
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo, sfnt.SegmentOpLineTo:
			bound(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			bound(seg.Args[0])
			bound(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			bound(seg.Args[0])
			bound(seg.Args[1])
			bound(seg.Args[2])
		}
	}
	if minX > maxX || minY > maxY {
		return
	}

	x0 := int(math.Floor(minX))
	y0 := int(math.Floor(minY))
	x1 := int(math.Ceil(maxX))
	y1 := int(math.Ceil(maxY))
	w := x1 - x0
	h := y1 - y0
	if w <= 0 || h <= 0 {
		return
	}

	r := vector.NewRasterizer(w, h)
	at := func(p fixed.Point26_6) (float32, float32) {
		return float32(ox + fixedToFloat(p.X) - float64(x0)),
			float32(oy + fixedToFloat(p.Y) - float64(y0))
	}
	started := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if started {
				r.ClosePath()
			}
			px, py := at(seg.Args[0])
			r.MoveTo(px, py)
			started = true
		case sfnt.SegmentOpLineTo:
			px, py := at(seg.Args[0])
			r.LineTo(px, py)
		case sfnt.SegmentOpQuadTo:
			cx, cy := at(seg.Args[0])
			px, py := at(seg.Args[1])
			r.QuadTo(cx, cy, px, py)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := at(seg.Args[0])
			c2x, c2y := at(seg.Args[1])
			px, py := at(seg.Args[2])
			r.CubeTo(c1x, c1y, c2x, c2y, px, py)
		}
	}
	if started {
		r.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(dst, image.Rect(x0, y0, x1, y1), src, image.Point{}, mask, image.Point{}, draw.Over)
}
