// Package volatile implements loads and stores on memory that aliases device
// state.
//
// The functions are never inlined, so the compiler sees an opaque call with a
// pointer argument and can neither drop nor merge the access, even when the
// stored value is never read back by Go code.
package volatile

// StoreUint16 writes v to addr as a single 16-bit store.
//
//go:noinline
//go:nosplit
func StoreUint16(addr *uint16, v uint16) {
	*addr = v
}

// LoadUint16 reads addr as a single 16-bit load.
//
//go:noinline
//go:nosplit
func LoadUint16(addr *uint16) uint16 {
	return *addr
}
