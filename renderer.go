package hud

// Renderer is the interface for rendering paths to a pixmap.
type Renderer interface {
	// Fill fills a path with an opaque color.
	// Returns an error if the rendering operation fails.
	Fill(dst *Pixmap, path *Path, color RGB) error

	// Stroke strokes the outline of a path with an opaque color at the
	// given line width.
	// Returns an error if the rendering operation fails.
	Stroke(dst *Pixmap, path *Path, color RGB, lineWidth float64) error
}
