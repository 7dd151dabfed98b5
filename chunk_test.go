package chunkwork

import "testing"

func TestChunkPushBackFull(t *testing.T) {
	c := newChunk[int](3)
	for i := 0; i < 3; i++ {
		if !c.PushBack(i) {
			t.Fatalf("push %d: unexpected full", i)
		}
	}
	if c.PushBack(99) {
		t.Fatal("expected push to fail once full")
	}
	if !c.Full() {
		t.Fatal("expected Full() == true")
	}
}

func TestChunkExtractFrontOrder(t *testing.T) {
	c := newChunk[int](4)
	for _, v := range []int{1, 2, 3} {
		c.PushBack(v)
	}
	for _, want := range []int{1, 2, 3} {
		got, ok := c.ExtractFront()
		if !ok || got != want {
			t.Fatalf("ExtractFront() = %v, %v; want %v, true", got, ok, want)
		}
	}
	if _, ok := c.ExtractFront(); ok {
		t.Fatal("expected empty chunk to report ok=false")
	}
}

func TestChunkExtractBackOrder(t *testing.T) {
	c := newChunk[int](4)
	for _, v := range []int{1, 2, 3} {
		c.PushBack(v)
	}
	for _, want := range []int{3, 2, 1} {
		got, ok := c.ExtractBack()
		if !ok || got != want {
			t.Fatalf("ExtractBack() = %v, %v; want %v, true", got, ok, want)
		}
	}
}

func TestChunkWrapAround(t *testing.T) {
	c := newChunk[int](2)
	c.PushBack(1)
	c.PushBack(2)
	c.ExtractFront()
	c.PushBack(3) // wraps the ring index
	v1, _ := c.ExtractFront()
	v2, _ := c.ExtractFront()
	if v1 != 2 || v2 != 3 {
		t.Fatalf("got %d, %d; want 2, 3", v1, v2)
	}
}

func TestChunkReset(t *testing.T) {
	c := newChunk[int](2)
	c.PushBack(1)
	c.setNextChunk(&Chunk[int]{})
	c.reset()
	if c.Len() != 0 || !c.Empty() || c.nextChunk() != nil {
		t.Fatal("reset did not clear chunk state")
	}
}
