//go:build baremetal

package textmode

func defaultBuffer() *Buffer {
	return MapBuffer()
}
