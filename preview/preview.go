// Package preview shows text screen snapshots in a terminal.
package preview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/BeatGlow/textmode"
	"github.com/BeatGlow/textmode/internal/logger"
	"github.com/BeatGlow/textmode/pixel"
)

var log = logger.New("preview")

// Style returns the terminal style matching a hardware attribute, using
// the exact palette colors.
func Style(c textmode.ColorCode) tcell.Style {
	return tcell.StyleDefault.
		Foreground(rgb(c.Foreground())).
		Background(rgb(c.Background()))
}

func rgb(c textmode.Color) tcell.Color {
	v := pixel.RGBA(uint8(c))
	return tcell.NewRGBColor(int32(v.R), int32(v.G), int32(v.B))
}

// Glyph returns the terminal rune for a cell byte.
func Glyph(b byte) rune {
	switch {
	case b == textmode.Placeholder:
		return '■'
	case b >= 0x20 && b < 0x7f:
		return rune(b)
	default:
		return ' '
	}
}

// Show copies s onto the top-left corner of screen and places the cursor.
func Show(screen tcell.Screen, s *textmode.Snapshot) {
	for row := range s.Cells {
		for col, c := range s.Cells[row] {
			screen.SetContent(col, row, Glyph(c.ASCII), nil, Style(c.Color))
		}
	}
	screen.ShowCursor(s.Column, textmode.Height-1)
	screen.Show()
}

// Run initializes screen, shows s and waits until a key is pressed or the
// screen is interrupted. The screen is finalized before Run returns.
func Run(screen tcell.Screen, s *textmode.Snapshot) error {
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	Show(screen, s)
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			log.Debugf("terminal resized, redrawing")
			screen.Sync()
			Show(screen, s)
		case *tcell.EventKey, *tcell.EventInterrupt:
			log.Debugf("preview closed by %T", ev)
			return nil
		}
	}
}
