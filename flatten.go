package hud

// curveSteps is the number of line segments used to approximate one
// Bezier curve when flattening for stroking. Arcs in this package are
// at most a quarter circle per curve, so a fixed step count stays well
// under a pixel of error at HUD scales.
const curveSteps = 16

// contour is a flattened subpath.
type contour struct {
	points []Point
	closed bool
}

// flatten converts a path into polyline contours. Curves are sampled at
// a fixed number of steps.
func flatten(p *Path) []contour {
	var result []contour
	var cur contour

	finish := func(closed bool) {
		if len(cur.points) > 1 {
			cur.closed = closed
			result = append(result, cur)
		}
		cur = contour{}
	}

	for _, e := range p.Elements() {
		switch el := e.(type) {
		case MoveTo:
			finish(false)
			cur.points = append(cur.points, el.Point)

		case LineTo:
			cur.points = append(cur.points, el.Point)

		case QuadTo:
			if len(cur.points) == 0 {
				cur.points = append(cur.points, el.Point)
				continue
			}
			p0 := cur.points[len(cur.points)-1]
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				cur.points = append(cur.points, quadPoint(p0, el.Control, el.Point, t))
			}

		case CubicTo:
			if len(cur.points) == 0 {
				cur.points = append(cur.points, el.Point)
				continue
			}
			p0 := cur.points[len(cur.points)-1]
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				cur.points = append(cur.points, cubicPoint(p0, el.Control1, el.Control2, el.Point, t))
			}

		case Close:
			finish(true)
		}
	}
	finish(false)

	return result
}

// quadPoint evaluates a quadratic Bezier at t.
func quadPoint(p0, c, p1 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
	}
}

// cubicPoint evaluates a cubic Bezier at t.
func cubicPoint(p0, c1, c2, p1 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*u*p0.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*p1.X,
		Y: u*u*u*p0.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*p1.Y,
	}
}
