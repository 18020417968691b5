package hud

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// SoftwareRenderer is a CPU rasterizer built on golang.org/x/image/vector.
// It renders anti-aliased fills and strokes directly into a Pixmap.
type SoftwareRenderer struct{}

// NewSoftwareRenderer creates a new software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

// Fill implements Renderer.Fill.
func (sr *SoftwareRenderer) Fill(dst *Pixmap, path *Path, color RGB) error {
	if dst.Width() <= 0 || dst.Height() <= 0 || path.IsEmpty() {
		return nil
	}

	r := vector.NewRasterizer(dst.Width(), dst.Height())
	open := false

	for _, e := range path.Elements() {
		switch el := e.(type) {
		case MoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(float32(el.Point.X), float32(el.Point.Y))
			open = true
		case LineTo:
			r.LineTo(float32(el.Point.X), float32(el.Point.Y))
		case QuadTo:
			r.QuadTo(float32(el.Control.X), float32(el.Control.Y),
				float32(el.Point.X), float32(el.Point.Y))
		case CubicTo:
			r.CubeTo(float32(el.Control1.X), float32(el.Control1.Y),
				float32(el.Control2.X), float32(el.Control2.Y),
				float32(el.Point.X), float32(el.Point.Y))
		case Close:
			r.ClosePath()
			open = false
		}
	}
	if open {
		r.ClosePath()
	}

	rasterizeTo(dst, r, color)
	return nil
}

// Stroke implements Renderer.Stroke. The stroke outline is built from
// the flattened path: one quad per segment plus round joins at shared
// vertices. Caps are butt caps.
func (sr *SoftwareRenderer) Stroke(dst *Pixmap, path *Path, color RGB, lineWidth float64) error {
	if dst.Width() <= 0 || dst.Height() <= 0 || path.IsEmpty() || lineWidth <= 0 {
		return nil
	}

	half := lineWidth / 2
	r := vector.NewRasterizer(dst.Width(), dst.Height())

	for _, c := range flatten(path) {
		pts := c.points
		n := len(pts)
		if n < 2 {
			continue
		}

		segEnd := n - 1
		if c.closed {
			segEnd = n // extra segment from the last point back to the first
		}
		for i := 0; i < segEnd; i++ {
			strokeSegment(r, pts[i], pts[(i+1)%n], half)
		}

		// Round joins. Closed contours need one at every vertex, open
		// contours only at interior vertices.
		if c.closed {
			for _, pt := range pts {
				addCircle(r, pt, half)
			}
		} else {
			for _, pt := range pts[1 : n-1] {
				addCircle(r, pt, half)
			}
		}
	}

	rasterizeTo(dst, r, color)
	return nil
}

// strokeSegment adds the quad covering a single line segment at the
// given half-width.
func strokeSegment(r *vector.Rasterizer, p1, p2 Point, half float64) {
	d := p2.Sub(p1)
	if d.X == 0 && d.Y == 0 {
		return
	}
	// Left-hand normal, scaled to half the line width.
	n := Point{X: -d.Y, Y: d.X}.Normalize().Mul(half)

	a := p1.Add(n)
	b := p2.Add(n)
	c := p2.Sub(n)
	e := p1.Sub(n)

	r.MoveTo(float32(a.X), float32(a.Y))
	r.LineTo(float32(b.X), float32(b.Y))
	r.LineTo(float32(c.X), float32(c.Y))
	r.LineTo(float32(e.X), float32(e.Y))
	r.ClosePath()
}

// circleKappa is the cubic Bezier control distance for a quarter circle.
const circleKappa = 0.5522847498307936

// addCircle adds a full circle as four cubic Bezier quarters.
func addCircle(r *vector.Rasterizer, c Point, radius float64) {
	if radius <= 0 {
		return
	}
	k := radius * circleKappa
	cx, cy := c.X, c.Y

	r.MoveTo(float32(cx+radius), float32(cy))
	r.CubeTo(float32(cx+radius), float32(cy+k), float32(cx+k), float32(cy+radius), float32(cx), float32(cy+radius))
	r.CubeTo(float32(cx-k), float32(cy+radius), float32(cx-radius), float32(cy+k), float32(cx-radius), float32(cy))
	r.CubeTo(float32(cx-radius), float32(cy-k), float32(cx-k), float32(cy-radius), float32(cx), float32(cy-radius))
	r.CubeTo(float32(cx+k), float32(cy-radius), float32(cx+radius), float32(cy-k), float32(cx+radius), float32(cy))
	r.ClosePath()
}

// rasterizeTo composites the accumulated coverage over the pixmap with
// a uniform opaque color.
func rasterizeTo(dst *Pixmap, r *vector.Rasterizer, color RGB) {
	img := dst.Image()
	r.DrawOp = draw.Over
	r.Draw(img, img.Bounds(), image.NewUniform(color), image.Point{})
}
