package chunkwork

// ChunkStack is a LIFO intrusive list of chunks, grounded on
// Galois::WorkList::AltChunkedStack and on the teacher's own CAS-retry
// style in worksteal.go's WSDeque and pkg/runtime/stack_fast.go's
// WorkStealingDeque. Push loops on PtrLock.CAS; Pop and the steal
// operations take the lock, since they must observe head and head.next
// together.
type ChunkStack[T any] struct {
	head PtrLock[Chunk[T]]
}

// Empty is a racy, lock-free read, allowed to return a stale but
// monotone answer per the spec.
func (s *ChunkStack[T]) Empty() bool {
	return s.head.GetValue() == nil
}

// Push links obj onto the head of the stack via a CAS retry loop.
func (s *ChunkStack[T]) Push(obj *Chunk[T]) {
	for {
		old := s.head.GetValue()
		obj.setNextChunk(old)
		if s.head.CAS(old, obj) {
			return
		}
	}
}

// Pop unlinks and returns the head chunk, or nil if the stack is empty.
func (s *ChunkStack[T]) Pop() *Chunk[T] {
	if s.Empty() {
		return nil
	}
	s.head.Lock()
	retval := s.head.GetValue()
	var setval *Chunk[T]
	if retval != nil {
		setval = retval.nextChunk()
		retval.setNextChunk(nil)
	}
	s.head.UnlockAndSet(setval)
	return retval
}

// prepend splices chain c onto our own head, preserving c's internal
// order.
func (s *ChunkStack[T]) prepend(c *Chunk[T]) {
	tail := c
	for tail.nextChunk() != nil {
		tail = tail.nextChunk()
	}
	s.head.Lock()
	tail.setNextChunk(s.head.GetValue())
	s.head.UnlockAndSet(c)
}

// StealAllAndPop takes victim's entire chain, returns the first chunk to
// the caller and prepends any remainder onto the caller's own stack.
func (s *ChunkStack[T]) StealAllAndPop(victim *ChunkStack[T]) *Chunk[T] {
	if victim.Empty() {
		return nil
	}
	victim.head.Lock()
	c := victim.head.GetValue()
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
	s.prepend(c)
	return retval
}

// StealHalfAndPop takes roughly half of victim's chain via a slow/fast
// pointer walk to the midpoint. The walk is the source's own, unchanged
// (and the same as ChunkQueue's), so the split point is the source's
// approximate one, especially for an odd-length chain.
func (s *ChunkStack[T]) StealHalfAndPop(victim *ChunkStack[T]) *Chunk[T] {
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
	s.prepend(c)
	return retval
}
