package hud

import (
	"image"
	"log/slog"
)

// XAnchor is a horizontal reference position.
type XAnchor uint8

const (
	XLeft XAnchor = iota
	XCenter
	XRight
)

// String returns a short name for the anchor.
func (a XAnchor) String() string {
	switch a {
	case XLeft:
		return "left"
	case XCenter:
		return "hcenter"
	case XRight:
		return "right"
	default:
		return "?"
	}
}

// YAnchor is a vertical reference position.
type YAnchor uint8

const (
	YTop YAnchor = iota
	YCenter
	YBottom
)

// String returns a short name for the anchor.
func (a YAnchor) String() string {
	switch a {
	case YTop:
		return "top"
	case YCenter:
		return "vcenter"
	case YBottom:
		return "bottom"
	default:
		return "?"
	}
}

// AnchorPoint combines a horizontal and a vertical anchor.
type AnchorPoint struct {
	X XAnchor
	Y YAnchor
}

// AnchoredPlacement describes how an object is aligned on a canvas:
// the Src anchor of the object is placed on the Dst anchor of the
// canvas, then the result is shifted by (XOffset, YOffset).
//
// The zero value places the object's top-left corner at the canvas's
// top-left corner with no offset.
type AnchoredPlacement struct {
	Src     AnchorPoint
	Dst     AnchorPoint
	XOffset int
	YOffset int
}

// Placement is an absolute pixel rectangle computed from an
// AnchoredPlacement. BottomRight is always TopLeft plus the object
// size; the rectangle may lie partially or fully outside the canvas.
type Placement struct {
	TopLeft     image.Point
	BottomRight image.Point
}

// Resolve computes the absolute placement of an objW x objH object on a
// canvasW x canvasH canvas.
//
// Per axis: the Dst anchor picks a reference point on the canvas (0,
// size/2 or size), the Src anchor subtracts the matching fraction of
// the object size, and the explicit offset is added last. Division
// truncates, so odd sizes bias the result one pixel toward the
// top-left reference; this is deliberate and pixel-exact output
// depends on it. No clamping is performed.
func (ap AnchoredPlacement) Resolve(canvasW, canvasH, objW, objH int) Placement {
	var p Placement

	switch ap.Dst.X {
	case XLeft:
		p.TopLeft.X = 0
	case XCenter:
		p.TopLeft.X = canvasW / 2
	case XRight:
		p.TopLeft.X = canvasW
	}

	switch ap.Dst.Y {
	case YTop:
		p.TopLeft.Y = 0
	case YCenter:
		p.TopLeft.Y = canvasH / 2
	case YBottom:
		p.TopLeft.Y = canvasH
	}

	switch ap.Src.X {
	case XLeft:
	case XCenter:
		p.TopLeft.X -= objW / 2
	case XRight:
		p.TopLeft.X -= objW
	}

	switch ap.Src.Y {
	case YTop:
	case YCenter:
		p.TopLeft.Y -= objH / 2
	case YBottom:
		p.TopLeft.Y -= objH
	}

	p.TopLeft.X += ap.XOffset
	p.TopLeft.Y += ap.YOffset

	p.BottomRight.X = p.TopLeft.X + objW
	p.BottomRight.Y = p.TopLeft.Y + objH

	Logger().Debug("resolved placement",
		slog.Int("obj_width", objW),
		slog.Int("obj_height", objH),
		slog.String("src", ap.Src.Y.String()+"/"+ap.Src.X.String()),
		slog.String("dst", ap.Dst.Y.String()+"/"+ap.Dst.X.String()),
		slog.Int("xoffset", ap.XOffset),
		slog.Int("yoffset", ap.YOffset),
		slog.Int("x", p.TopLeft.X),
		slog.Int("y", p.TopLeft.Y))

	return p
}

// Size returns the width and height of the placement.
func (p Placement) Size() (w, h int) {
	return p.BottomRight.X - p.TopLeft.X, p.BottomRight.Y - p.TopLeft.Y
}
