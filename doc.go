// Package textmode drives the 80x25 color text buffer of PC compatible
// video hardware.
//
// A [Writer] renders bytes onto the last row of the screen, wrapping and
// scrolling as needed. The package keeps one shared writer, created on first
// use, and guards it with a spin lock so both normal code and fault handlers
// can print:
//
//	textmode.Println("booting")
//	textmode.Printf("memory: %d KiB\n", kib)
//
// Build with the baremetal tag to target the buffer mapped at [Address].
// Other builds use emulated video memory.
package textmode
