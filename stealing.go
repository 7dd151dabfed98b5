package chunkwork

import "github.com/ha1tch/chunkwork/threadpool"

// StealingQueue is the per-thread stealing front-end described in spec
// §4.4, grounded on Galois::WorkList::StealingQueue<InnerWL>. C is the
// concrete container type (ChunkQueue[T] or ChunkStack[T], always
// supplied as a pointer) every worker uses locally; stealing only ever
// compares a container against a peer of the identical concrete type.
type StealingQueue[T any, C Container[T, C]] struct {
	pool  threadpool.Pool
	slots *threadpool.PerThreadStorage[stealSlot[T, C]]
}

type stealSlot[T any, C Container[T, C]] struct {
	inner        C
	victimCursor uint32
}

// NewStealingQueue builds a stealing queue over pool.ActiveThreads()
// per-thread containers, each constructed by newInner.
func NewStealingQueue[T any, C Container[T, C]](pool threadpool.Pool, newInner func() C) *StealingQueue[T, C] {
	return &StealingQueue[T, C]{
		pool: pool,
		slots: threadpool.NewPerThreadStorage(pool.ActiveThreads(), func(int) stealSlot[T, C] {
			return stealSlot[T, C]{inner: newInner()}
		}),
	}
}

// Push forwards to tid's local inner container.
func (q *StealingQueue[T, C]) Push(tid int, c *Chunk[T]) {
	q.slots.GetLocal(tid).inner.Push(c)
}

// AllEmpty reports whether every thread's local container is empty. It
// is not a consistent snapshot under concurrent pushers — callers use it
// only at quiescence, after all producers have stopped.
func (q *StealingQueue[T, C]) AllEmpty() bool {
	for tid := 0; tid < q.slots.Len(); tid++ {
		if !q.slots.GetLocal(tid).inner.Empty() {
			return false
		}
	}
	return true
}

// Pop tries tid's local container first, falling back to doSteal.
func (q *StealingQueue[T, C]) Pop(tid int) *Chunk[T] {
	if c := q.slots.GetLocal(tid).inner.Pop(); c != nil {
		return c
	}
	return q.doSteal(tid)
}

// doSteal implements the fixed-order policy from spec §4.4: same-package
// half-steals first (scanning id+1..num-1 then 0..id-1), then — only if
// this thread is a package leader — a rotating cross-package steal-all
// against another leader.
func (q *StealingQueue[T, C]) doSteal(tid int) *Chunk[T] {
	me := q.slots.GetLocal(tid)
	num := q.pool.ActiveThreads()
	pkg := q.pool.Package(tid)

	for eid := tid + 1; eid < num; eid++ {
		if q.pool.Package(eid) == pkg {
			if c := me.inner.StealHalfAndPop(q.slots.GetRemote(eid).inner); c != nil {
				return c
			}
		}
	}
	for eid := 0; eid < tid; eid++ {
		if q.pool.Package(eid) == pkg {
			if c := me.inner.StealHalfAndPop(q.slots.GetRemote(eid).inner); c != nil {
				return c
			}
		}
	}

	if q.pool.IsLeader(tid) {
		eid := (tid + int(me.victimCursor)) % num
		me.victimCursor++
		if eid != tid && q.pool.IsLeader(eid) {
			if c := me.inner.StealAllAndPop(q.slots.GetRemote(eid).inner); c != nil {
				return c
			}
		}
	}
	return nil
}
