package textmode

import "io"

// Writer renders a byte stream onto a [Buffer]. Characters are always written
// to the last row; a newline or a full row scrolls everything up by one.
//
// A Writer is not safe for concurrent use. The package-level functions
// serialize access to the shared writer.
type Writer struct {
	column int
	color  ColorCode
	buf    *Buffer
	mirror io.ByteWriter

	mirrorErr error
}

// NewWriter returns a writer over the platform text buffer.
func NewWriter(foreground, background Color) *Writer {
	return New(defaultBuffer(), foreground, background)
}

// New returns a writer over buf.
func New(buf *Buffer, foreground, background Color) *Writer {
	return &Writer{
		color: NewColorCode(foreground, background),
		buf:   buf,
	}
}

// Column is the cursor position on the last row.
func (w *Writer) Column() int {
	return w.column
}

// ColorCode returns the active attribute.
func (w *Writer) ColorCode() ColorCode {
	return w.color
}

// SetColor changes the attribute used for subsequent writes and row clears.
func (w *Writer) SetColor(foreground, background Color) {
	w.color = NewColorCode(foreground, background)
}

// SetColorCode is like SetColor for an already packed attribute.
func (w *Writer) SetColorCode(c ColorCode) {
	w.color = c
}

// SetMirror sets a byte sink that receives every byte after it has been
// routed, with unprintable bytes already replaced by [Placeholder]. The sink
// is called with the writer's lock held and must not block.
//
// The first error returned by the sink detaches it; see [Writer.MirrorErr].
func (w *Writer) SetMirror(m io.ByteWriter) {
	w.mirror = m
	w.mirrorErr = nil
}

// MirrorErr returns the error that detached the mirror, if any.
func (w *Writer) MirrorErr() error {
	return w.mirrorErr
}

// WriteByte routes a single byte. It never fails.
func (w *Writer) WriteByte(b byte) error {
	switch {
	case b == '\n':
		w.newLine()
	case isPrintable(b):
		w.put(b)
	default:
		b = Placeholder
		w.put(b)
	}
	if w.mirror != nil {
		if err := w.mirror.WriteByte(b); err != nil {
			w.mirror = nil
			w.mirrorErr = err
		}
	}
	return nil
}

// WriteString writes s byte by byte.
func (w *Writer) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		_ = w.WriteByte(s[i])
	}
	return len(s), nil
}

// Write writes p byte by byte. It makes Writer usable as the output of
// fmt.Fprintf and friends.
func (w *Writer) Write(p []byte) (int, error) {
	for _, b := range p {
		_ = w.WriteByte(b)
	}
	return len(p), nil
}

// Clear blanks the whole buffer with the active attribute and moves the
// cursor to the start of the last row.
func (w *Writer) Clear() {
	c := blank(w.color)
	for row := 0; row < Height; row++ {
		w.buf.fillRow(row, c)
	}
	w.column = 0
}

func (w *Writer) put(b byte) {
	if w.column >= Width-1 {
		w.newLine()
	}
	w.buf.set(Height-1, w.column, ScreenChar{
		ASCII: b,
		Color: w.color,
	})
	w.column++
}

// newLine shifts every row up by one, discarding row 0, and blanks the last
// row. Swapping adjacent pairs top to bottom carries each row's content into
// the slot above before that slot is overwritten, so no spare row is needed.
func (w *Writer) newLine() {
	for row := 1; row < Height; row++ {
		w.buf.swapRows(row-1, row)
	}
	w.buf.fillRow(Height-1, blank(w.color))
	w.column = 0
}

// Snapshot is a copy of the screen contents and cursor state.
type Snapshot struct {
	Cells  [Height][Width]ScreenChar
	Column int
	Color  ColorCode
}

// Snapshot copies the buffer and cursor state.
func (w *Writer) Snapshot() (s Snapshot) {
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			s.Cells[row][col] = w.buf.At(row, col)
		}
	}
	s.Column = w.column
	s.Color = w.color
	return
}

// Row returns the characters of a row as a string.
func (s *Snapshot) Row(row int) string {
	var line [Width]byte
	for col, c := range s.Cells[row] {
		line[col] = c.ASCII
	}
	return string(line[:])
}
