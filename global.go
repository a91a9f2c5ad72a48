package textmode

import (
	"fmt"
	"io"

	"github.com/BeatGlow/textmode/internal/spin"
)

// Default colors of the shared writer.
const (
	DefaultForeground = Green
	DefaultBackground = Black
)

// Colors used by PrintPanic.
const (
	panicForeground = White
	panicBackground = Red
)

var global struct {
	mu spin.Mutex
	w  *Writer
}

// WithWriter runs fn with exclusive access to the shared writer, creating it
// on first use. The lock is a spin lock, so fn must be short and must not call
// back into this package's printing functions.
func WithWriter(fn func(w *Writer)) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if global.w == nil {
		global.w = NewWriter(DefaultForeground, DefaultBackground)
	}
	fn(global.w)
}

// Console writes to the shared writer, taking the lock once per Write call.
var Console io.Writer = console{}

type console struct{}

func (console) Write(p []byte) (n int, err error) {
	WithWriter(func(w *Writer) {
		n, err = w.Write(p)
	})
	return
}

// Print formats using the default formats for its operands and writes the
// result to the screen.
func Print(a ...any) {
	write(fmt.Sprint(a...))
}

// Println is like Print but always adds spaces between operands and a
// trailing newline.
func Println(a ...any) {
	write(fmt.Sprintln(a...))
}

// Printf formats according to a format specifier and writes the result to
// the screen.
func Printf(format string, a ...any) {
	write(fmt.Sprintf(format, a...))
}

// PrintPanic reports a recovered panic value in the panic colors, then
// restores the previous attribute.
func PrintPanic(v any) {
	s := fmt.Sprintf("panic: %v\n", v)
	WithWriter(func(w *Writer) {
		saved := w.ColorCode()
		w.SetColor(panicForeground, panicBackground)
		_, _ = w.WriteString(s)
		w.SetColorCode(saved)
	})
}

// Capture returns a snapshot of the shared writer.
func Capture() (s Snapshot) {
	WithWriter(func(w *Writer) {
		s = w.Snapshot()
	})
	return
}

// write takes the lock only after formatting, so Stringer implementations
// that print can't deadlock and the critical section stays short.
func write(s string) {
	WithWriter(func(w *Writer) {
		_, _ = w.WriteString(s)
	})
}
