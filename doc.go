// Package chunkwork is a chunked, work-stealing worklist for irregular
// parallel loops: each worker thread buffers pushed items into small
// fixed-capacity chunks and only contends with other workers when a
// chunk fills, empties, or gets stolen, instead of on every individual
// push and pop.
//
// Master is the entry point. Build one with NewFIFO or NewLIFO, seed it
// with PushRange from each worker's local share of initial work, then
// have every worker alternate Push (for new work discovered while
// processing) and Pop (to get the next item) until Quiescent reports
// true across the pool.
//
// The package makes no ordering guarantees beyond "locally FIFO or
// locally LIFO within one worker's own chunk" — see spec §2's Non-goals.
// It is not safe for use without a threadpool.Pool describing the
// worker topology truthfully: StealingQueue's cross-package stealing
// policy depends on Pool.Package and Pool.IsLeader being consistent for
// the lifetime of the Master.
package chunkwork
