package chunkwork

import (
	"sync/atomic"

	"github.com/ha1tch/chunkwork/internal/assert"
)

// ChunkQueue is a FIFO intrusive list of chunks, grounded directly on
// Galois::WorkList::AltChunkedQueue. All mutating operations take
// head.Lock() except the racy, lock-free Empty check: if it returns
// true the queue was empty at some recent point. Pop and the steal
// operations return nil straight away on a true Empty, and re-check
// head under the lock when Empty reports false.
//
// tail is conceptually "protected by head's lock, read racily by Empty",
// the same contract the C++ original gives a plain (non-atomic)
// ChunkHeader*. Go's race detector does not tolerate a benignly-racy
// plain pointer read/write the way C++'s weaker model does, so tail is
// an atomic.Pointer here: every access (locked or not) goes through
// Load/Store, which keeps the intended "stale but monotone" semantics
// race-detector-clean without changing the algorithm.
type ChunkQueue[T any] struct {
	head PtrLock[Chunk[T]]
	tail atomic.Pointer[Chunk[T]]
}

// Empty is a racy, lock-free read of tail, allowed to return a stale but
// monotone answer per the spec.
func (q *ChunkQueue[T]) Empty() bool {
	return q.tail.Load() == nil
}

// Push links c onto the tail of the queue.
func (q *ChunkQueue[T]) Push(c *Chunk[T]) {
	q.head.Lock()
	c.setNextChunk(nil)
	if t := q.tail.Load(); t != nil {
		t.setNextChunk(c)
		q.tail.Store(c)
		q.head.Unlock()
	} else {
		q.tail.Store(c)
		q.head.UnlockAndSet(c)
	}
	// Spec §9 open question: tail != nil must imply head != nil; the
	// lock above is what's supposed to guarantee it, not a re-check.
	assert.True(q.tail.Load() == nil || q.head.GetValue() != nil, "ChunkQueue: tail set with no head")
}

// Pop unlinks and returns the head chunk, or nil if the queue is empty.
func (q *ChunkQueue[T]) Pop() *Chunk[T] {
	if q.Empty() {
		return nil
	}
	q.head.Lock()
	h := q.head.GetValue()
	if h == nil {
		q.head.Unlock()
		return nil
	}
	if h == q.tail.Load() {
		q.tail.Store(nil)
		q.head.UnlockAndClear()
	} else {
		q.head.UnlockAndSet(h.nextChunk())
	}
	h.setNextChunk(nil)
	return h
}

// prepend splices chain c (already singly-linked via next) onto our own
// head, preserving c's internal order.
func (q *ChunkQueue[T]) prepend(c *Chunk[T]) {
	t := c
	for t.nextChunk() != nil {
		t = t.nextChunk()
	}
	q.head.Lock()
	t.setNextChunk(q.head.GetValue())
	if t.nextChunk() == nil {
		q.tail.Store(t)
	}
	q.head.UnlockAndSet(c)
}

// StealAllAndPop takes victim's entire chain, returns the first chunk to
// the caller and prepends any remainder onto the caller's own queue.
func (q *ChunkQueue[T]) StealAllAndPop(victim *ChunkQueue[T]) *Chunk[T] {
	if victim.Empty() {
		return nil
	}
	victim.head.Lock()
	c := victim.head.GetValue()
	if c != nil {
		victim.tail.Store(nil)
	}
	victim.head.UnlockAndClear()
	if c == nil {
		return nil
	}
	retval := c
	c = c.nextChunk()
	retval.setNextChunk(nil)
	if c == nil {
		return retval
	}
	q.prepend(c)
	return retval
}

// StealHalfAndPop takes roughly half of victim's chain (via a slow/fast
// pointer walk to the midpoint, avoiding a separate length counter),
// returns the first stolen chunk and prepends the rest onto the caller's
// own queue. The victim's remaining chunks keep their relative order, as
// do the thief's acquired chunks.
func (q *ChunkQueue[T]) StealHalfAndPop(victim *ChunkQueue[T]) *Chunk[T] {
	if victim.Empty() {
		return nil
	}
	victim.head.Lock()
	c := victim.head.GetValue()
	ntail := c
	count := false
	for c != nil {
		c = c.nextChunk()
		if count {
			ntail = ntail.nextChunk()
		}
		count = !count
	}
	if ntail != nil {
		c = ntail.nextChunk()
		ntail.setNextChunk(nil)
		victim.tail.Store(ntail)
	}
	victim.head.Unlock()
	if c == nil {
		return nil
	}
	retval := c
	c = c.nextChunk()
	retval.setNextChunk(nil)
	if c == nil {
		return retval
	}
	q.prepend(c)
	return retval
}
