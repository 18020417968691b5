package hud

import (
	"bytes"
	"image/png"
	"testing"
)

func TestPixmapSetGetPixel(t *testing.T) {
	p := NewPixmap(10, 10)
	p.SetPixel(3, 4, NewRGB(1, 2, 3))
	if got := p.GetPixel(3, 4); got != NewRGB(1, 2, 3) {
		t.Errorf("GetPixel(3, 4) = %#06x, want 0x010203", uint32(got))
	}
	if got := p.GetPixel(0, 0); got != Black {
		t.Errorf("untouched pixel = %#06x, want black", uint32(got))
	}
}

func TestPixmapOutOfRange(t *testing.T) {
	p := NewPixmap(4, 4)
	p.SetPixel(-1, 0, White)
	p.SetPixel(0, 4, White)
	if got := p.GetPixel(-1, 0); got != Black {
		t.Errorf("out-of-range read = %#06x, want black", uint32(got))
	}
	if got := p.GetPixel(4, 0); got != Black {
		t.Errorf("out-of-range read = %#06x, want black", uint32(got))
	}
}

func TestPixmapClear(t *testing.T) {
	p := NewPixmap(8, 6)
	c := NewRGB(10, 20, 30)
	p.Clear(c)
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			if got := p.GetPixel(x, y); got != c {
				t.Fatalf("pixel (%d, %d) = %#06x, want %#06x", x, y, uint32(got), uint32(c))
			}
		}
	}
}

func TestPixmapImageSharesMemory(t *testing.T) {
	p := NewPixmap(5, 5)
	img := p.Image()
	img.Pix[0] = 0xab // red channel of (0, 0)
	img.Pix[3] = 0xff
	if got := p.GetPixel(0, 0); got.R() != 0xab {
		t.Errorf("pixmap did not observe image write: %#06x", uint32(got))
	}
}

func TestPixmapEncodePNG(t *testing.T) {
	p := NewPixmap(3, 2)
	p.Clear(Red)

	var buf bytes.Buffer
	if err := p.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding written PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("decoded size = %dx%d, want 3x2", b.Dx(), b.Dy())
	}
	r, _, _, _ := img.At(0, 0).RGBA()
	if r != 0xffff {
		t.Errorf("decoded pixel red = %#x, want 0xffff", r)
	}
}

func TestZeroSizePixmap(t *testing.T) {
	p := NewPixmap(0, 0)
	p.Clear(White) // must not panic
	if got := p.GetPixel(0, 0); got != Black {
		t.Errorf("zero-size read = %#06x, want black", uint32(got))
	}
}
