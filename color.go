package hud

import "image/color"

// RGB is a packed 24-bit color, 8 bits per channel (0xRRGGBB).
// Alpha is ignored on read and assumed opaque on write.
type RGB uint32

// NewRGB packs three 8-bit channels into an RGB value.
func NewRGB(r, g, b uint8) RGB {
	return RGB(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// R returns the red channel.
func (c RGB) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c RGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c RGB) B() uint8 { return uint8(c) }

// RGBA implements color.Color. The color is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xffff
}

var _ color.Color = RGB(0)

// Common colors.
const (
	Black   RGB = 0x000000
	White   RGB = 0xffffff
	Red     RGB = 0xff0000
	Green   RGB = 0x00ff00
	Blue    RGB = 0x0000ff
	Yellow  RGB = 0xffff00
	Cyan    RGB = 0x00ffff
	Magenta RGB = 0xff00ff
)
