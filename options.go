package hud

import "github.com/sabertrack/hud/text"

// Option configures a Canvas during creation.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	// Default software rendering
//	c, err := hud.New(320, 240)
//
//	// With a font library for text drawing
//	c, err := hud.New(320, 240, hud.WithFonts(fonts))
type Option func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	renderer Renderer
	pixmap   *Pixmap
	fonts    *text.Library
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		renderer: nil, // Will be set to SoftwareRenderer if nil
		pixmap:   nil, // Will be created if nil
	}
}

// WithRenderer sets a custom renderer for the Canvas.
// Use this for dependency injection of custom rasterizers in tests.
func WithRenderer(r Renderer) Option {
	return func(o *canvasOptions) {
		o.renderer = r
	}
}

// WithPixmap sets a custom pixmap for the Canvas.
// The pixmap dimensions must match the Canvas dimensions.
func WithPixmap(pm *Pixmap) Option {
	return func(o *canvasOptions) {
		o.pixmap = pm
	}
}

// WithFonts sets the font library used by Canvas.Text.
// Without a library, text draws are logged and skipped.
func WithFonts(fonts *text.Library) Option {
	return func(o *canvasOptions) {
		o.fonts = fonts
	}
}
