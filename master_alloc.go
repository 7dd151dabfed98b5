package chunkwork

import "github.com/ha1tch/chunkwork/alloc"

// chunkAllocator is the narrow FixedSizeAllocator collaborator (spec
// §4.6) Master actually needs: allocate one chunk, or fail with
// ErrAllocExhausted; return a chunk for reuse. It is a local interface
// rather than a direct dependency on *alloc.Allocator so that a
// collaborator backed by a hard-capped slab (one that really can run
// out) can be swapped in without touching Master.
type chunkAllocator[T any] interface {
	Allocate() (*Chunk[T], error)
	Deallocate(*Chunk[T])
}

// poolChunkAllocator adapts the sync.Pool-backed alloc.Allocator to
// chunkAllocator. sync.Pool itself never reports exhaustion — it falls
// back to allocation — so Allocate here never returns ErrAllocExhausted;
// it exists purely to satisfy the interface described above.
type poolChunkAllocator[T any] struct {
	pool *alloc.Allocator[Chunk[T]]
}

func newPoolChunkAllocator[T any](chunkSize int) *poolChunkAllocator[T] {
	return &poolChunkAllocator[T]{
		pool: alloc.New(
			func() *Chunk[T] { return newChunk[T](chunkSize) },
			func(c *Chunk[T]) { c.reset() },
		),
	}
}

func (a *poolChunkAllocator[T]) Allocate() (*Chunk[T], error) {
	return a.pool.Allocate(), nil
}

func (a *poolChunkAllocator[T]) Deallocate(c *Chunk[T]) {
	a.pool.Deallocate(c)
}
