package hud

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/sabertrack/hud/text"
)

// maxSurfaceDim is the largest supported surface dimension, the usual
// int16 coordinate limit of raster backends. Larger surfaces fail at
// creation.
const maxSurfaceDim = 32767

// ErrSurfaceSize is returned by New when the requested dimensions
// cannot be backed by a pixel surface.
var ErrSurfaceSize = errors.New("hud: surface dimensions out of range")

// ErrPixmapSize is returned by New when an injected pixmap does not
// match the requested canvas dimensions.
var ErrPixmapSize = errors.New("hud: pixmap does not match canvas dimensions")

// Canvas owns a fixed-size pixel surface and its drawing state.
// Width and height are fixed for the lifetime of the canvas.
//
// Canvas is not safe for concurrent use; serialize all calls.
// Canvas implements io.Closer.
type Canvas struct {
	width    int
	height   int
	pixmap   *Pixmap
	renderer Renderer
	fonts    *text.Library
	closed   bool
}

var _ io.Closer = (*Canvas)(nil)

// New creates a canvas with the given dimensions. Creation is the only
// recoverable failure in this package: on error no partial resource is
// retained and the returned canvas must not be used.
//
// A zero-size canvas is valid; draws against it are no-ops.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width < 0 || height < 0 || width > maxSurfaceDim || height > maxSurfaceDim {
		return nil, fmt.Errorf("%w: %dx%d", ErrSurfaceSize, width, height)
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pixmap := options.pixmap
	if pixmap == nil {
		pixmap = NewPixmap(width, height)
	} else if pixmap.Width() != width || pixmap.Height() != height {
		return nil, fmt.Errorf("%w: pixmap %dx%d, canvas %dx%d",
			ErrPixmapSize, pixmap.Width(), pixmap.Height(), width, height)
	}

	renderer := options.renderer
	if renderer == nil {
		renderer = NewSoftwareRenderer()
	}

	return &Canvas{
		width:    width,
		height:   height,
		pixmap:   pixmap,
		renderer: renderer,
		fonts:    options.fonts,
	}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Pixmap returns the backing pixel buffer.
func (c *Canvas) Pixmap() *Pixmap { return c.pixmap }

// Image returns the canvas content as an image sharing the backing
// pixel memory.
func (c *Canvas) Image() image.Image { return c.pixmap.Image() }

// Clear fills the entire canvas with a solid color.
func (c *Canvas) Clear(color RGB) {
	c.pixmap.Clear(color)
}

// GetPixel returns the stored color at (x, y) with alpha ignored.
// The caller must ensure 0 <= x < Width and 0 <= y < Height;
// out-of-range reads return Black.
func (c *Canvas) GetPixel(x, y int) RGB {
	return c.pixmap.GetPixel(x, y)
}

// RectStyle describes an anchored rectangle draw.
// If Fill is true the interior is painted and the outline is not;
// otherwise the outline is stroked at a fixed 1-pixel line width.
// Round is the corner radius in pixels, 0 for sharp corners. The
// radius should be at most half the smaller of Width/Height; larger
// values are clamped by the path construction.
type RectStyle struct {
	Placement AnchoredPlacement
	Width     uint
	Height    uint
	Color     RGB
	Fill      bool
	Round     uint
}

// Rect draws an anchored, optionally rounded rectangle.
func (c *Canvas) Rect(style RectStyle) {
	pl := style.Placement.Resolve(c.width, c.height, int(style.Width), int(style.Height))

	x := float64(pl.TopLeft.X)
	y := float64(pl.TopLeft.Y)
	w := float64(style.Width)
	h := float64(style.Height)

	path := NewPath()
	if style.Round == 0 {
		path.Rectangle(x, y, w, h)
	} else {
		path.RoundedRectangle(x, y, w, h, float64(style.Round))
	}

	var err error
	if style.Fill {
		err = c.renderer.Fill(c.pixmap, path, style.Color)
	} else {
		err = c.renderer.Stroke(c.pixmap, path, style.Color, 1)
	}
	if err != nil {
		Logger().Warn("rect draw failed", slog.Any("error", err))
	}
}

// TextStyle describes an anchored text draw.
type TextStyle struct {
	Placement AnchoredPlacement
	FontFace  string
	FontSize  float64
	FontColor RGB
}

// Text draws a single pre-formatted line of text.
//
// The object size used for anchor resolution is (ink width, ascent):
// visual alignment tracks visible ink, not font metric padding. The
// baseline origin compensates for the leading bearing so the leftmost
// glyph pixel, not the pen origin, lands on the resolved left edge.
func (c *Canvas) Text(style TextStyle, s string) {
	if c.fonts == nil {
		Logger().Warn("text draw without a font library", slog.String("face", style.FontFace))
		return
	}
	face, err := c.fonts.Face(style.FontFace, style.FontSize)
	if err != nil {
		Logger().Warn("font face unavailable",
			slog.String("face", style.FontFace), slog.Any("error", err))
		return
	}

	ext := face.Extents(s)
	ascent := face.Metrics().Ascent

	pl := style.Placement.Resolve(c.width, c.height, int(ext.Width), int(ascent))

	x := float64(pl.TopLeft.X) - ext.XBearing
	y := float64(pl.BottomRight.Y)
	face.Draw(c.pixmap.Image(), s, x, y, style.FontColor)
}

// DumpPNG serializes the current pixel content to a PNG file at path.
// The canvas is not mutated.
func (c *Canvas) DumpPNG(path string) error {
	return c.pixmap.WritePNG(path)
}

// Close releases the canvas. It is safe to call on a nil canvas and
// safe to call more than once. The canvas must not be used afterwards.
func (c *Canvas) Close() error {
	if c == nil || c.closed {
		return nil
	}
	c.closed = true
	c.pixmap = nil
	c.renderer = nil
	c.fonts = nil
	return nil
}
