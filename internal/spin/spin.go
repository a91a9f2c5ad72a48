// Package spin implements a busy-wait mutual exclusion lock.
//
// A spin lock never parks the caller, so it works before a scheduler exists
// and from fault handlers. Critical sections must be short.
package spin

import "sync/atomic"

// Mutex is a spin lock. The zero value is unlocked.
//
// Mutex is not re-entrant: locking it twice from the same context deadlocks.
type Mutex struct {
	state atomic.Uint32
}

// Lock acquires m, busy-waiting until it is available.
func (m *Mutex) Lock() {
	for !m.state.CompareAndSwap(0, 1) {
		// Spin on a plain load so contended waiters don't hammer the cache
		// line with read-modify-write cycles.
		for m.state.Load() != 0 {
		}
	}
}

// TryLock acquires m if it is free and reports whether it did.
func (m *Mutex) TryLock() bool {
	return m.state.CompareAndSwap(0, 1)
}

// Unlock releases m.
func (m *Mutex) Unlock() {
	m.state.Store(0)
}
