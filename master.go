package chunkwork

import (
	"github.com/ha1tch/chunkwork/chklog"
	"github.com/ha1tch/chunkwork/threadpool"
)

// Master is the user-facing worklist, grounded on
// Galois::WorkList::AltChunkedMaster<IsLocallyLIFO, ChunkSize, Container,
// T>. It owns a chunk allocator, a pair of per-thread "current chunk"
// slots (spec §4.5's pushChunk/popChunk), and a StealingQueue of fully
// assembled chunks that either slot overflows into or drains from. C
// fixes which concrete container (ChunkQueue or ChunkStack) backs the
// inner steal structure; FIFO/LIFO (see NewFIFO/NewLIFO below) picks the
// matching Locality so the two always agree, exactly as the C++ type
// aliases AltChunkedFIFO/AltChunkedLIFO hard-wire container and locality
// together.
type Master[T any, C Container[T, C]] struct {
	locality Locality
	alloc    chunkAllocator[T]
	slots    *threadpool.PerThreadStorage[slotPair[T]]
	inner    *StealingQueue[T, C]
	log      chklog.Logger

	pushSlot func(*slotPair[T]) **Chunk[T]
	popSlot  func(*slotPair[T]) **Chunk[T]
	doPop    func(*Chunk[T]) (T, bool)
}

// slotPair holds a thread's two chunk-in-progress pointers. In FIFO mode
// push fills second while pop drains first; in LIFO mode push and pop
// both use first and second stays nil.
type slotPair[T any] struct {
	first  *Chunk[T]
	second *Chunk[T]
}

// NewMaster builds a Master over newInner-constructed containers, one
// per thread reported by pool, using chunks of the given fixed capacity.
// log may be chklog.Nop.
func NewMaster[T any, C Container[T, C]](pool threadpool.Pool, locality Locality, chunkSize int, newInner func() C, log chklog.Logger) *Master[T, C] {
	if log == nil {
		log = chklog.Nop
	}
	m := &Master[T, C]{
		locality: locality,
		alloc:    newPoolChunkAllocator[T](chunkSize),
		slots: threadpool.NewPerThreadStorage(pool.ActiveThreads(), func(int) slotPair[T] {
			return slotPair[T]{}
		}),
		inner: NewStealingQueue[T, C](pool, newInner),
		log:   log,
	}
	if locality == LIFO {
		m.pushSlot = func(p *slotPair[T]) **Chunk[T] { return &p.first }
		m.popSlot = func(p *slotPair[T]) **Chunk[T] { return &p.first }
		m.doPop = (*Chunk[T]).ExtractBack
	} else {
		m.pushSlot = func(p *slotPair[T]) **Chunk[T] { return &p.second }
		m.popSlot = func(p *slotPair[T]) **Chunk[T] { return &p.first }
		m.doPop = (*Chunk[T]).ExtractFront
	}
	return m
}

// NewFIFO builds a Master with ChunkQueue as its inner container and
// FIFO locality — Galois' AltChunkedFIFO.
func NewFIFO[T any](pool threadpool.Pool, chunkSize int, log chklog.Logger) *Master[T, *ChunkQueue[T]] {
	return NewMaster[T, *ChunkQueue[T]](pool, FIFO, chunkSize, func() *ChunkQueue[T] { return &ChunkQueue[T]{} }, log)
}

// NewLIFO builds a Master with ChunkStack as its inner container and
// LIFO locality — Galois' AltChunkedLIFO.
func NewLIFO[T any](pool threadpool.Pool, chunkSize int, log chklog.Logger) *Master[T, *ChunkStack[T]] {
	return NewMaster[T, *ChunkStack[T]](pool, LIFO, chunkSize, func() *ChunkStack[T] { return &ChunkStack[T]{} }, log)
}

// Push adds v to tid's current push chunk, rolling over to a fresh chunk
// (handing the full one to the inner stealing queue) when needed. It
// only fails if the allocator cannot produce a replacement chunk.
func (m *Master[T, C]) Push(tid int, v T) error {
	pair := m.slots.GetLocal(tid)
	slot := m.pushSlot(pair)

	if *slot != nil && (*slot).PushBack(v) {
		return nil
	}
	if *slot != nil {
		m.inner.Push(tid, *slot)
	}
	chunk, err := m.alloc.Allocate()
	if err != nil {
		m.log.Event(chklog.LevelError, "chunk allocation failed").Int("tid", tid).Err(err).Send()
		return err
	}
	*slot = chunk
	chunk.PushBack(v)
	return nil
}

// PushRange pushes each value in order via Push, stopping at the first
// error. It is the bulk-insert entry point spec §4.5 calls push_initial,
// used to seed a worklist with each thread's local share of initial work
// before a parallel phase starts.
func (m *Master[T, C]) PushRange(tid int, values []T) error {
	for _, v := range values {
		if err := m.Push(tid, v); err != nil {
			return err
		}
	}
	return nil
}

// Pop removes and returns one value for tid, in four steps mirroring
// AltChunkedMaster::pop: drain the local pop chunk; if that chunk is now
// empty, return it to the allocator and try the inner stealing queue
// (which may steal from peers); in FIFO mode only, if that also comes up
// dry, swap the push and pop slots (the producer's partially filled
// chunk becomes fair game once there's nothing else left) and try once
// more.
func (m *Master[T, C]) Pop(tid int) (T, bool) {
	pair := m.slots.GetLocal(tid)
	slot := m.popSlot(pair)

	if *slot != nil {
		if v, ok := m.doPop(*slot); ok {
			return v, true
		}
	}
	if *slot != nil {
		m.alloc.Deallocate(*slot)
		*slot = nil
	}
	if c := m.inner.Pop(tid); c != nil {
		*slot = c
		if v, ok := m.doPop(*slot); ok {
			return v, true
		}
	}
	if m.locality == FIFO {
		pair.first, pair.second = pair.second, pair.first
		if *slot != nil {
			if v, ok := m.doPop(*slot); ok {
				return v, true
			}
		}
	}
	var zero T
	return zero, false
}

// Quiescent reports whether every thread's slots are empty and the inner
// stealing queue holds no chunks — invariant (d) from spec §4.5. A false
// result at the end of a parallel phase indicates a leaked or
// un-drained chunk.
func (m *Master[T, C]) Quiescent() bool {
	for tid := 0; tid < m.slots.Len(); tid++ {
		pair := m.slots.GetLocal(tid)
		if pair.first != nil && !pair.first.Empty() {
			return false
		}
		if pair.second != nil && !pair.second.Empty() {
			return false
		}
	}
	return m.inner.AllEmpty()
}
