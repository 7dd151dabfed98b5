package chunkwork

import "errors"

// Sentinel errors for the contract violations and resource exhaustion
// cases described in spec §7. None of these represent ordinary,
// expected outcomes of worklist use — an empty Pop is not an error, it
// is the second, boolean return value being false.
var (
	// ErrNotOwned is returned when a caller operates on a chunk/slot it
	// does not currently own (spec §7, "attempting to pop from a chunk
	// you don't own"). Master itself never triggers this; it is
	// available to collaborators that add their own ownership checks
	// on top of Chunk.
	ErrNotOwned = errors.New("chunkwork: chunk not owned by caller")

	// ErrChunkFull is returned by a caller-visible push path that chose
	// not to silently roll over to a fresh chunk (Master itself never
	// returns this; it is available for collaborators building their own
	// Chunk-level buffering on top of Chunk.PushBack's bool result).
	ErrChunkFull = errors.New("chunkwork: chunk is full")

	// ErrAllocExhausted is returned when the chunk allocator cannot
	// satisfy a request. Per spec §7 this is fatal at the enclosing
	// parallel phase's boundary; the worklist itself just propagates it.
	ErrAllocExhausted = errors.New("chunkwork: chunk allocator exhausted")
)
