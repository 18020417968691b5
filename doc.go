// Package hud renders fixed-size offscreen overlay frames for the
// session historian.
//
// The central type is Canvas: an owned pixel surface plus drawing state.
// Objects (text, rectangles) are positioned with AnchoredPlacement,
// which aligns a reference point of the object to a reference point of
// the canvas and then applies a pixel offset. Anchor resolution is pure
// integer math with truncating division; see AnchoredPlacement.Resolve.
//
// A Canvas is not safe for concurrent use. All calls against one Canvas
// must be serialized by the caller; the historian subpackage delivers
// state events over a channel so that a single goroutine can own all
// rendering.
//
// Basic usage:
//
//	fonts := text.NewLibrary()
//	fonts.AddFontFile("overlay.ttf")
//	defer fonts.Close()
//
//	c, err := hud.New(320, 240, hud.WithFonts(fonts))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
//
//	c.Clear(hud.NewRGB(20, 20, 30))
//	c.Rect(hud.RectStyle{
//		Placement: hud.AnchoredPlacement{
//			Src: hud.AnchorPoint{X: hud.XCenter, Y: hud.YCenter},
//			Dst: hud.AnchorPoint{X: hud.XCenter, Y: hud.YCenter},
//		},
//		Width: 200, Height: 80,
//		Color: hud.NewRGB(40, 40, 60),
//		Fill:  true, Round: 12,
//	})
//	c.DumpPNG("frame.png")
package hud
