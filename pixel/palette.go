package pixel

import "image/color"

// Palette holds the 16 default DAC entries of the text-mode palette, in
// hardware index order.
var Palette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xff}, // black
	color.RGBA{0x00, 0x00, 0xaa, 0xff}, // blue
	color.RGBA{0x00, 0xaa, 0x00, 0xff}, // green
	color.RGBA{0x00, 0xaa, 0xaa, 0xff}, // cyan
	color.RGBA{0xaa, 0x00, 0x00, 0xff}, // red
	color.RGBA{0xaa, 0x00, 0xaa, 0xff}, // magenta
	color.RGBA{0xaa, 0x55, 0x00, 0xff}, // brown
	color.RGBA{0xaa, 0xaa, 0xaa, 0xff}, // light gray
	color.RGBA{0x55, 0x55, 0x55, 0xff}, // dark gray
	color.RGBA{0x55, 0x55, 0xff, 0xff}, // light blue
	color.RGBA{0x55, 0xff, 0x55, 0xff}, // light green
	color.RGBA{0x55, 0xff, 0xff, 0xff}, // light cyan
	color.RGBA{0xff, 0x55, 0x55, 0xff}, // light red
	color.RGBA{0xff, 0x55, 0xff, 0xff}, // pink
	color.RGBA{0xff, 0xff, 0x55, 0xff}, // yellow
	color.RGBA{0xff, 0xff, 0xff, 0xff}, // white
}

// Model converts any color to the nearest palette entry.
var Model color.Model = color.ModelFunc(indexModel)

// Index is a palette entry.
type Index uint8

func (c Index) RGBA() (r, g, b, a uint32) {
	return Palette[c&0x0f].RGBA()
}

func indexModel(c color.Color) color.Color {
	if _, ok := c.(Index); ok {
		return c
	}
	if _, _, _, a := c.RGBA(); a == 0 {
		return Index(0)
	}
	return Index(Palette.Index(c))
}

// RGBA returns the palette entry i as an RGBA color.
func RGBA(i uint8) color.RGBA {
	return Palette[i&0x0f].(color.RGBA)
}
