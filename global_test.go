package textmode

import (
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
)

// resetGlobal replaces the shared writer with a fresh one over emulated
// video memory and blanks it.
func resetGlobal(t *testing.T) {
	t.Helper()
	WithWriter(func(w *Writer) {
		*w = *New(NewBuffer(), DefaultForeground, DefaultBackground)
		w.Clear()
	})
}

func TestWithWriterLazy(t *testing.T) {
	var first, second *Writer
	WithWriter(func(w *Writer) { first = w })
	WithWriter(func(w *Writer) { second = w })
	if first == nil || first != second {
		t.Fatalf("expected a single shared writer, got %p and %p", first, second)
	}
}

func TestPrintf(t *testing.T) {
	resetGlobal(t)

	Printf("%d + %d = %d", 1, 2, 3)
	Println()
	Print("ok")

	s := Capture()
	if v := strings.TrimRight(s.Row(Height-2), " "); v != "1 + 2 = 3" {
		t.Errorf("expected %q, got %q", "1 + 2 = 3", v)
	}
	if v := strings.TrimRight(s.Row(Height-1), " "); v != "ok" {
		t.Errorf("expected %q, got %q", "ok", v)
	}
	if v := s.Color; v != NewColorCode(DefaultForeground, DefaultBackground) {
		t.Errorf("expected default color, got %#02x", v)
	}
}

func TestPrintPanic(t *testing.T) {
	resetGlobal(t)

	func() {
		defer func() {
			if r := recover(); r != nil {
				PrintPanic(r)
			}
		}()
		panic(errors.New("boom"))
	}()

	s := Capture()
	if v := strings.TrimRight(s.Row(Height-2), " "); v != "panic: boom" {
		t.Errorf("expected %q, got %q", "panic: boom", v)
	}
	if v := s.Cells[Height-2][0].Color; v != NewColorCode(panicForeground, panicBackground) {
		t.Errorf("expected panic color, got %#02x", v)
	}
	if v := s.Color; v != NewColorCode(DefaultForeground, DefaultBackground) {
		t.Errorf("expected color to be restored, got %#02x", v)
	}
}

func TestInterleavedWriters(t *testing.T) {
	resetGlobal(t)

	type context struct {
		text  string
		color ColorCode
	}
	contexts := []context{
		{"aaaaaaa\n", NewColorCode(Yellow, Blue)},
		{"bbbbbbbbbbbbb", NewColorCode(LightCyan, Red)},
	}

	var wg sync.WaitGroup
	for _, c := range contexts {
		wg.Add(1)
		go func(c context) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				WithWriter(func(w *Writer) {
					w.SetColorCode(c.color)
					_, _ = w.WriteString(c.text)
				})
			}
		}(c)
	}
	wg.Wait()

	s := Capture()
	for row := range s.Cells {
		for col, cell := range s.Cells[row] {
			switch cell.ASCII {
			case 'a':
				if cell.Color != contexts[0].color {
					t.Fatalf("cell (%d,%d): torn cell %+v", row, col, cell)
				}
			case 'b':
				if cell.Color != contexts[1].color {
					t.Fatalf("cell (%d,%d): torn cell %+v", row, col, cell)
				}
			case ' ', 0:
			default:
				t.Fatalf("cell (%d,%d): unexpected cell %+v", row, col, cell)
			}
		}
	}
}

func TestConsole(t *testing.T) {
	resetGlobal(t)

	n, err := io.WriteString(Console, "via\x00console")
	if err != nil {
		t.Fatal(err)
	}
	if n != 11 {
		t.Errorf("expected 11 bytes written, got %d", n)
	}
	s := Capture()
	if v := strings.TrimRight(s.Row(Height-1), " "); v != "via\xfeconsole" {
		t.Errorf("expected %q, got %q", "via\xfeconsole", v)
	}
}
