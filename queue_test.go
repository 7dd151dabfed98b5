package chunkwork

import "testing"

func fillQueue(t *testing.T, q *ChunkQueue[int], values ...int) {
	t.Helper()
	c := newChunk[int](len(values))
	for _, v := range values {
		if !c.PushBack(v) {
			t.Fatalf("chunk capacity too small for %v", values)
		}
	}
	q.Push(c)
}

func TestChunkQueueEmptyPop(t *testing.T) {
	var q ChunkQueue[int]
	if !q.Empty() {
		t.Fatal("fresh queue should be empty")
	}
	if q.Pop() != nil {
		t.Fatal("pop on empty queue should return nil")
	}
}

func TestChunkQueuePushPopOrder(t *testing.T) {
	var q ChunkQueue[int]
	fillQueue(t, &q, 1, 2)
	fillQueue(t, &q, 3, 4)

	first := q.Pop()
	if first == nil {
		t.Fatal("expected a chunk")
	}
	if v, _ := first.ExtractFront(); v != 1 {
		t.Fatalf("expected FIFO order, got first chunk starting with %d", v)
	}

	second := q.Pop()
	if v, _ := second.ExtractFront(); v != 3 {
		t.Fatalf("expected second chunk to start with 3, got %d", v)
	}
	if !q.Empty() {
		t.Fatal("queue should be empty after draining both chunks")
	}
}

func TestChunkQueueStealAllAndPop(t *testing.T) {
	var victim, thief ChunkQueue[int]
	fillQueue(t, &victim, 1, 2)
	fillQueue(t, &victim, 3, 4)
	fillQueue(t, &victim, 5, 6)

	stolen := thief.StealAllAndPop(&victim)
	if stolen == nil {
		t.Fatal("expected a stolen chunk")
	}
	if v, _ := stolen.ExtractFront(); v != 1 {
		t.Fatalf("expected first stolen chunk to start with 1, got %d", v)
	}
	if !victim.Empty() {
		t.Fatal("victim should be fully drained by StealAllAndPop")
	}
	// Remainder (chunks 3,4 and 5,6) should now be in thief's own queue.
	rest := thief.Pop()
	if rest == nil {
		t.Fatal("expected remainder chunk in thief")
	}
	if v, _ := rest.ExtractFront(); v != 3 {
		t.Fatalf("expected remainder to start with 3, got %d", v)
	}
}

func TestChunkQueueStealHalfAndPopLeavesOrder(t *testing.T) {
	var victim, thief ChunkQueue[int]
	for i := 0; i < 4; i++ {
		fillQueue(t, &victim, i*10)
	}

	stolen := thief.StealHalfAndPop(&victim)
	if stolen == nil {
		t.Fatal("expected a stolen chunk from a non-empty victim")
	}
	if victim.Empty() {
		t.Fatal("StealHalfAndPop should leave some chunks behind with four to split")
	}

	// Victim's remaining chunks keep their original relative order.
	var remaining []int
	for c := victim.Pop(); c != nil; c = victim.Pop() {
		v, _ := c.ExtractFront()
		remaining = append(remaining, v)
	}
	for i := 1; i < len(remaining); i++ {
		if remaining[i] <= remaining[i-1] {
			t.Fatalf("victim remainder order not preserved: %v", remaining)
		}
	}
}

func TestChunkQueueStealFromEmptyIsNoop(t *testing.T) {
	var victim, thief ChunkQueue[int]
	if thief.StealAllAndPop(&victim) != nil {
		t.Fatal("steal-all from empty victim should return nil")
	}
	if thief.StealHalfAndPop(&victim) != nil {
		t.Fatal("steal-half from empty victim should return nil")
	}
	if !victim.Empty() {
		t.Fatal("victim should remain empty")
	}
}
