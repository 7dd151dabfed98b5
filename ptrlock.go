package chunkwork

import (
	"runtime"
	"sync/atomic"
)

// PtrLock is a pointer cell guarded by a spinlock, mirroring
// Galois::Substrate::PtrLock<P>. The C++ original packs the lock bit into
// the low bit of the pointer word itself, which makes the unlocked CAS
// push in ChunkStack a single atomic instruction. Go's precise, moving-
// capable GC does not let us round-trip a live pointer through a bare
// uintptr (the collector would not see it as a root), so this port takes
// the alternative the spec's design notes explicitly allow: a separate
// atomic flag next to a real, GC-tracked pointer (one extra word per
// container, as anticipated).
//
// CAS below pays for that with a short lock acquisition instead of a
// genuinely wait-free compare-and-swap: it spins for the flag exactly as
// Lock does, mutates the pointer, then releases. External behaviour
// matches the spec's contract (a concurrent Lock blocks the CAS until
// unlock; CAS only succeeds when the stored value equals expected).
type PtrLock[E any] struct {
	locked atomic.Bool
	value  atomic.Pointer[E]
}

// Lock spins until the lock bit is acquired. Pointer bits are unchanged.
func (l *PtrLock[E]) Lock() {
	spins := 0
	for !l.locked.CompareAndSwap(false, true) {
		spins++
		if spins > 1024 {
			runtime.Gosched()
			spins = 0
		}
	}
}

// Unlock clears the lock bit. Pointer bits are unchanged.
func (l *PtrLock[E]) Unlock() {
	l.locked.Store(false)
}

// UnlockAndSet atomically installs p and releases the lock.
func (l *PtrLock[E]) UnlockAndSet(p *E) {
	l.value.Store(p)
	l.locked.Store(false)
}

// UnlockAndClear atomically installs nil and releases the lock.
func (l *PtrLock[E]) UnlockAndClear() {
	l.value.Store(nil)
	l.locked.Store(false)
}

// GetValue returns the current pointer bits. The result may be stale if
// the caller does not hold the lock.
func (l *PtrLock[E]) GetValue() *E {
	return l.value.Load()
}

// CAS atomically replaces the stored pointer iff it currently equals old.
// If the lock is held, CAS spins until it is released before comparing.
// See the type doc for why this is a brief critical
// section rather than a single hardware CAS in this port.
func (l *PtrLock[E]) CAS(old, new *E) bool {
	spins := 0
	for {
		if l.locked.CompareAndSwap(false, true) {
			break
		}
		spins++
		if spins > 1024 {
			runtime.Gosched()
			spins = 0
		}
	}
	ok := l.value.CompareAndSwap(old, new)
	l.locked.Store(false)
	return ok
}
