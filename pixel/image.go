package pixel

import (
	"image"
	"image/color"
)

// IndexedImage is a 4-bits per pixel palette image, two pixels per byte with
// the left pixel in the high nibble. Its origin is always (0, 0).
type IndexedImage struct {
	// Pix holds the packed palette indices, row by row.
	Pix []byte

	// Stride is the number of bytes per row.
	Stride int

	// Rect is the image bounding box.
	Rect image.Rectangle
}

// NewIndexedImage returns a w by h image filled with palette entry 0.
func NewIndexedImage(w, h int) *IndexedImage {
	stride := (w + 1) / 2
	return &IndexedImage{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   image.Rect(0, 0, w, h),
	}
}

func (p *IndexedImage) Bounds() image.Rectangle {
	return p.Rect
}

// Clear resets every pixel to palette entry 0.
func (p *IndexedImage) Clear() {
	clear(p.Pix)
}

func (p *IndexedImage) ColorModel() color.Model {
	return Model
}

func (p *IndexedImage) At(x, y int) color.Color {
	if !(image.Point{x, y}).In(p.Rect) {
		return color.Transparent
	}
	return p.IndexAt(x, y)
}

// IndexAt returns the palette index at (x, y), which must be in bounds.
func (p *IndexedImage) IndexAt(x, y int) Index {
	index := y*p.Stride + x>>1
	if x%2 == 0 {
		return Index(p.Pix[index] >> 4)
	}
	return Index(p.Pix[index] & 0xf)
}

func (p *IndexedImage) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}

	index := y*p.Stride + x>>1
	value := byte(indexModel(c).(Index)) & 0xf
	if x%2 == 0 {
		p.Pix[index] = (p.Pix[index] & 0x0f) | value<<4
	} else {
		p.Pix[index] = (p.Pix[index] & 0xf0) | value
	}
}

func (p *IndexedImage) Fill(c color.Color) {
	value := byte(indexModel(c).(Index)) & 0xf
	value |= value << 4
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// RGBA converts the image to a regular RGBA image, for encoders that don't
// handle custom color models well.
func (p *IndexedImage) RGBA() *image.RGBA {
	out := image.NewRGBA(p.Rect)
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		for x := p.Rect.Min.X; x < p.Rect.Max.X; x++ {
			out.SetRGBA(x, y, RGBA(uint8(p.IndexAt(x, y))))
		}
	}
	return out
}
