package textmode

import (
	"unsafe"

	"github.com/BeatGlow/textmode/internal/volatile"
)

// Text buffer geometry.
const (
	Width  = 80
	Height = 25
	Size   = Width * Height

	// Address is the physical address of the legacy color text buffer.
	Address uintptr = 0xb8000
)

// Buffer is a row-major grid of Height rows by Width cells. All access goes
// through volatile loads and stores, because a mapped buffer aliases live
// hardware state.
type Buffer struct {
	cells []uint16
}

// MapBuffer returns the buffer mapped at [Address]. It must only be called
// where that address is identity mapped video memory.
func MapBuffer() *Buffer {
	return &Buffer{
		cells: unsafe.Slice((*uint16)(unsafe.Pointer(Address)), Size),
	}
}

// NewBuffer allocates an emulated buffer with the hardware geometry.
func NewBuffer() *Buffer {
	return &Buffer{
		cells: make([]uint16, Size),
	}
}

// index is the linear offset of (row, col). Callers guarantee row < Height
// and col < Width.
func index(row, col int) int {
	return row*Width + col
}

// At returns the cell at (row, col).
func (b *Buffer) At(row, col int) ScreenChar {
	return cellFromWord(volatile.LoadUint16(&b.cells[index(row, col)]))
}

func (b *Buffer) set(row, col int, c ScreenChar) {
	volatile.StoreUint16(&b.cells[index(row, col)], c.word())
}

// swapRows exchanges rows r1 and r2 cell by cell.
func (b *Buffer) swapRows(r1, r2 int) {
	for col := 0; col < Width; col++ {
		var (
			p1 = &b.cells[index(r1, col)]
			p2 = &b.cells[index(r2, col)]
			v1 = volatile.LoadUint16(p1)
			v2 = volatile.LoadUint16(p2)
		)
		volatile.StoreUint16(p1, v2)
		volatile.StoreUint16(p2, v1)
	}
}

func (b *Buffer) fillRow(row int, c ScreenChar) {
	w := c.word()
	for col := 0; col < Width; col++ {
		volatile.StoreUint16(&b.cells[index(row, col)], w)
	}
}
