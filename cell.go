package textmode

import "unsafe"

// Placeholder is the glyph shown for bytes that are not printable ASCII.
const Placeholder byte = 0xfe

// ScreenChar is one display cell, laid out like the hardware: the character
// byte at the lower address followed by its attribute byte.
type ScreenChar struct {
	ASCII byte
	Color ColorCode
}

// A cell must be exactly two bytes.
var _ [2]byte = [unsafe.Sizeof(ScreenChar{})]byte{}

// word packs the cell into the little-endian 16-bit value the hardware
// reads, so a cell is always stored as one unit.
func (c ScreenChar) word() uint16 {
	return uint16(c.Color)<<8 | uint16(c.ASCII)
}

func cellFromWord(w uint16) ScreenChar {
	return ScreenChar{
		ASCII: byte(w),
		Color: ColorCode(w >> 8),
	}
}

func blank(color ColorCode) ScreenChar {
	return ScreenChar{ASCII: ' ', Color: color}
}

func isPrintable(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}
