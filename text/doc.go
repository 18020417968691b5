// Package text provides font loading, measurement and glyph rendering
// for hud canvases.
//
// A Library owns a set of fonts and hands out lightweight Face values
// at a requested family and size. Measurement is ink-based: Extents
// reports the bounding box of the pixels a string would actually
// cover, which is what anchored placement aligns against.
//
// Shaping uses go-text/typesetting's HarfBuzz implementation; glyph
// outlines come from the font's sfnt tables and are rasterized with
// golang.org/x/image/vector.
package text
