package hud

import (
	"math"
	"reflect"
	"testing"
)

func TestRectanglePath(t *testing.T) {
	p := NewPath()
	p.Rectangle(1, 2, 10, 20)

	want := []PathElement{
		MoveTo{Point: Pt(1, 2)},
		LineTo{Point: Pt(11, 2)},
		LineTo{Point: Pt(11, 22)},
		LineTo{Point: Pt(1, 22)},
		Close{},
	}
	if !reflect.DeepEqual(p.Elements(), want) {
		t.Errorf("Rectangle elements = %+v, want %+v", p.Elements(), want)
	}
}

// A rounded rectangle with radius zero must be exactly the plain
// rectangle path.
func TestRoundedRectangleZeroRadius(t *testing.T) {
	rounded := NewPath()
	rounded.RoundedRectangle(3, 4, 30, 20, 0)

	plain := NewPath()
	plain.Rectangle(3, 4, 30, 20)

	if !reflect.DeepEqual(rounded.Elements(), plain.Elements()) {
		t.Errorf("rounded(r=0) = %+v, want %+v", rounded.Elements(), plain.Elements())
	}
}

func pathPoints(p *Path) []Point {
	var pts []Point
	for _, e := range p.Elements() {
		switch el := e.(type) {
		case MoveTo:
			pts = append(pts, el.Point)
		case LineTo:
			pts = append(pts, el.Point)
		case QuadTo:
			pts = append(pts, el.Control, el.Point)
		case CubicTo:
			pts = append(pts, el.Control1, el.Control2, el.Point)
		}
	}
	return pts
}

func TestRoundedRectangleStaysInBounds(t *testing.T) {
	p := NewPath()
	p.RoundedRectangle(10, 10, 40, 30, 8)

	const eps = 1e-6
	for _, pt := range pathPoints(p) {
		if pt.X < 10-eps || pt.X > 50+eps || pt.Y < 10-eps || pt.Y > 40+eps {
			t.Errorf("point %+v outside the rectangle bounds", pt)
		}
	}
}

// An oversized radius is clamped to half the smaller dimension.
func TestRoundedRectangleClampsRadius(t *testing.T) {
	clamped := NewPath()
	clamped.RoundedRectangle(0, 0, 20, 10, 100)

	explicit := NewPath()
	explicit.RoundedRectangle(0, 0, 20, 10, 5)

	if !reflect.DeepEqual(clamped.Elements(), explicit.Elements()) {
		t.Error("oversized radius was not clamped to half the smaller dimension")
	}
}

func TestArcEndpoints(t *testing.T) {
	p := NewPath()
	p.Arc(0, 0, 10, -math.Pi/2, 0)

	elems := p.Elements()
	if len(elems) < 2 {
		t.Fatalf("arc produced %d elements, want at least 2", len(elems))
	}
	start, ok := elems[0].(MoveTo)
	if !ok {
		t.Fatalf("first element = %T, want MoveTo", elems[0])
	}
	end, ok := elems[len(elems)-1].(CubicTo)
	if !ok {
		t.Fatalf("last element = %T, want CubicTo", elems[len(elems)-1])
	}

	const eps = 1e-9
	if math.Abs(start.Point.X) > eps || math.Abs(start.Point.Y+10) > eps {
		t.Errorf("arc start = %+v, want (0, -10)", start.Point)
	}
	if math.Abs(end.Point.X-10) > eps || math.Abs(end.Point.Y) > eps {
		t.Errorf("arc end = %+v, want (10, 0)", end.Point)
	}
}

func TestPathClear(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 5, 5)
	p.Clear()
	if !p.IsEmpty() {
		t.Error("path not empty after Clear")
	}
}

func TestFlattenRectangle(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 10)

	contours := flatten(p)
	if len(contours) != 1 {
		t.Fatalf("flatten produced %d contours, want 1", len(contours))
	}
	c := contours[0]
	if !c.closed {
		t.Error("rectangle contour not closed")
	}
	if len(c.points) != 4 {
		t.Errorf("rectangle contour has %d points, want 4", len(c.points))
	}
}

func TestFlattenSamplesCurves(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadraticTo(5, 10, 10, 0)

	contours := flatten(p)
	if len(contours) != 1 {
		t.Fatalf("flatten produced %d contours, want 1", len(contours))
	}
	if got := len(contours[0].points); got != curveSteps+1 {
		t.Errorf("curve flattened to %d points, want %d", got, curveSteps+1)
	}
	last := contours[0].points[len(contours[0].points)-1]
	if math.Abs(last.X-10) > 1e-9 || math.Abs(last.Y) > 1e-9 {
		t.Errorf("curve endpoint = %+v, want (10, 0)", last)
	}
}
