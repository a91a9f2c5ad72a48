package textmode

// Color is one of the 16 entries of the text-mode hardware palette.
type Color uint8

// Hardware palette.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

var colorNames = [...]string{
	"black", "blue", "green", "cyan", "red", "magenta", "brown", "light gray",
	"dark gray", "light blue", "light green", "light cyan", "light red", "pink", "yellow", "white",
}

func (c Color) String() string {
	return colorNames[c&0x0f]
}

// ParseColor looks up a palette entry by name, as returned by [Color.String].
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return Black, false
}

// ColorCode is a packed attribute byte, background in the high nibble and
// foreground in the low nibble.
type ColorCode uint8

// NewColorCode packs a foreground and background color.
func NewColorCode(foreground, background Color) ColorCode {
	return ColorCode(background)<<4 | ColorCode(foreground)
}

// Foreground color.
func (c ColorCode) Foreground() Color {
	return Color(c & 0x0f)
}

// Background color.
func (c ColorCode) Background() Color {
	return Color(c >> 4)
}
