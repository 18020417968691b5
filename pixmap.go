package hud

import (
	"image"
	"image/png"
	"io"
	"os"
)

// Pixmap is a rectangular pixel buffer in 8-bit RGBA format.
// It is the backing surface of a Canvas but can also be used on its own.
type Pixmap struct {
	width  int
	height int
	pix    []uint8 // RGBA, 4 bytes per pixel
}

// NewPixmap creates a pixmap with the given dimensions.
// All pixels start out fully transparent black.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// SetPixel sets a single pixel to an opaque color.
// Out-of-range coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGB) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.pix[i+0] = c.R()
	p.pix[i+1] = c.G()
	p.pix[i+2] = c.B()
	p.pix[i+3] = 0xff
}

// GetPixel returns the stored color of a single pixel.
// The alpha channel is ignored. Out-of-range coordinates return Black.
func (p *Pixmap) GetPixel(x, y int) RGB {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Black
	}
	i := (y*p.width + x) * 4
	return NewRGB(p.pix[i+0], p.pix[i+1], p.pix[i+2])
}

// Clear fills the entire pixmap with an opaque color.
func (p *Pixmap) Clear(c RGB) {
	r, g, b := c.R(), c.G(), c.B()
	for i := 0; i < len(p.pix); i += 4 {
		p.pix[i+0] = r
		p.pix[i+1] = g
		p.pix[i+2] = b
		p.pix[i+3] = 0xff
	}
}

// Image returns the pixmap as an *image.RGBA sharing the same pixel
// memory. Drawing into the returned image mutates the pixmap.
func (p *Pixmap) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    p.pix,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// EncodePNG writes the pixmap as PNG to w.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.Image())
}

// WritePNG writes the pixmap as a PNG file at path.
func (p *Pixmap) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := p.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
