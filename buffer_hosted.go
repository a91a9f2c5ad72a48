//go:build !baremetal

package textmode

// defaultBuffer backs the global writer with emulated video memory when
// running under an operating system.
func defaultBuffer() *Buffer {
	return NewBuffer()
}
