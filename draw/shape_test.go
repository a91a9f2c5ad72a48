package draw

import (
	"image"
	"image/color"
	"testing"

	"github.com/BeatGlow/textmode"
	"github.com/BeatGlow/textmode/pixel"
)

func TestBox(t *testing.T) {
	var (
		dst  = image.NewGray(image.Rect(0, 0, 8, 8))
		rect = image.Rect(2, 3, 5, 7)
		on   = color.Gray{Y: 0xff}
	)
	Box(dst, rect, on)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := color.Gray{}
			if (image.Point{x, y}).In(rect) {
				want = on
			}
			if v := dst.GrayAt(x, y); v != want {
				t.Errorf("pixel (%d,%d): expected %v, got %v", x, y, want, v)
			}
		}
	}
}

func TestFill(t *testing.T) {
	var (
		dst  = image.NewRGBA(image.Rect(0, 0, 4, 4))
		rect = image.Rect(1, 1, 3, 3)
		c    = color.RGBA{R: 0xaa, A: 0xff}
	)
	Fill(dst, rect, c)
	if v := dst.RGBAAt(1, 1); v != c {
		t.Errorf("expected %v inside, got %v", c, v)
	}
	if v := dst.RGBAAt(0, 0); v != (color.RGBA{}) {
		t.Errorf("expected untouched pixel outside, got %v", v)
	}
}

func TestFillIndexedImage(t *testing.T) {
	dst := pixel.NewIndexedImage(6, 2)
	Fill(dst, image.Rect(3, 0, 9, 1), pixel.Index(textmode.Yellow))
	for x := 0; x < 6; x++ {
		want := pixel.Index(textmode.Black)
		if x >= 3 {
			want = pixel.Index(textmode.Yellow)
		}
		if v := dst.IndexAt(x, 0); v != want {
			t.Errorf("pixel (%d,0): expected %d, got %d", x, want, v)
		}
		if v := dst.IndexAt(x, 1); v != 0 {
			t.Errorf("pixel (%d,1): expected 0, got %d", x, v)
		}
	}
}
