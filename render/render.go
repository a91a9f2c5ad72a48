// Package render paints text screen snapshots into images, for screenshots
// and for mirroring the console onto pixel displays.
package render

import (
	"errors"
	"fmt"
	"image"
	imagedraw "image/draw"
	"image/png"
	"io"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/tiff"

	"github.com/BeatGlow/textmode"
	"github.com/BeatGlow/textmode/draw"
	"github.com/BeatGlow/textmode/internal/logger"
	"github.com/BeatGlow/textmode/pixel"
)

var log = logger.New("render")

// Errors
var (
	ErrFormat = errors.New("render: unsupported image format")
)

// Formats lists the formats supported by [Encode].
var Formats = []string{"png", "bmp", "tiff"}

// Renderer draws snapshots with a fixed cell size.
type Renderer struct {
	// Face used for printable characters.
	Face font.Face

	// Cell is the size of one character cell in pixels.
	Cell image.Point

	// Cursor enables drawing the cursor bar on the last row.
	Cursor bool

	ascent int
}

// New returns a renderer for face, with the cell size taken from its metrics.
// A nil face selects the built-in 7x13 bitmap font.
func New(face font.Face) *Renderer {
	if face == nil {
		face = basicfont.Face7x13
	}

	var (
		metrics     = face.Metrics()
		advance, ok = face.GlyphAdvance('M')
		width       = advance.Ceil()
		height      = metrics.Height.Ceil()
	)
	if !ok || width == 0 {
		width = height / 2
	}

	r := &Renderer{
		Face:   face,
		Cell:   image.Pt(width, height),
		Cursor: true,
		ascent: metrics.Ascent.Ceil(),
	}
	log.Debugf("renderer cell size %s, ascent %d", r.Cell, r.ascent)
	return r
}

// TrueTypeFace parses a TrueType font and returns a face of the given point
// size at 72 DPI. A nil font selects Go Mono.
func TrueTypeFace(ttf []byte, size float64) (font.Face, error) {
	if ttf == nil {
		ttf = gomono.TTF
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Bounds is the size of a rendered screen.
func (r *Renderer) Bounds() image.Rectangle {
	return image.Rect(0, 0, textmode.Width*r.Cell.X, textmode.Height*r.Cell.Y)
}

// Image renders s into a new palette image.
func (r *Renderer) Image(s *textmode.Snapshot) *pixel.IndexedImage {
	size := r.Bounds().Size()
	img := pixel.NewIndexedImage(size.X, size.Y)
	r.Render(img, s)
	return img
}

// Render paints s with its top-left corner at dst's origin.
func (r *Renderer) Render(dst draw.Image, s *textmode.Snapshot) {
	origin := dst.Bounds().Min
	for row := range s.Cells {
		for col, c := range s.Cells[row] {
			var (
				cell = r.cell(origin, row, col)
				fg   = pixel.Index(c.Color.Foreground())
				bg   = pixel.Index(c.Color.Background())
			)
			draw.Fill(dst, cell, bg)
			switch {
			case c.ASCII == textmode.Placeholder:
				draw.Box(dst, placeholder(cell), fg)
			case c.ASCII > ' ' && c.ASCII < 0x7f:
				r.glyph(dst, cell, c.ASCII, fg)
			}
		}
	}

	if r.Cursor {
		var (
			cell = r.cell(origin, textmode.Height-1, s.Column)
			fg   = pixel.Index(s.Color.Foreground())
		)
		for y := cell.Max.Y - 2; y < cell.Max.Y; y++ {
			draw.HorizontalLine(dst, cell.Min.X, y, cell.Dx(), fg)
		}
	}
}

func (r *Renderer) cell(origin image.Point, row, col int) image.Rectangle {
	pt := origin.Add(image.Pt(col*r.Cell.X, row*r.Cell.Y))
	return image.Rectangle{Min: pt, Max: pt.Add(r.Cell)}
}

func (r *Renderer) glyph(dst draw.Image, cell image.Rectangle, b byte, fg pixel.Index) {
	dot := fixed.P(cell.Min.X, cell.Min.Y+r.ascent)
	dr, mask, maskp, _, ok := r.Face.Glyph(dot, rune(b))
	if !ok {
		return
	}
	clip := dr.Intersect(cell)
	if clip.Empty() {
		return
	}
	imagedraw.DrawMask(dst, clip, image.NewUniform(fg), image.Point{}, mask, maskp.Add(clip.Min.Sub(dr.Min)), imagedraw.Over)
}

// placeholder is the square drawn for the placeholder glyph: half the cell
// wide, centered.
func placeholder(cell image.Rectangle) image.Rectangle {
	var (
		size = cell.Dx() / 2
		pt   = cell.Min.Add(image.Pt((cell.Dx()-size)/2, (cell.Dy()-size)/2))
	)
	return image.Rectangle{Min: pt, Max: pt.Add(image.Pt(size, size))}
}

// Encode writes img in the named format.
func Encode(w io.Writer, img image.Image, format string) error {
	if i, ok := img.(*pixel.IndexedImage); ok {
		img = i.RGBA()
	}
	switch format {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w %q", ErrFormat, format)
	}
}
