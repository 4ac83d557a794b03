package oracle

import "testing"

func TestAddrHeapPopsInAscendingOrder(t *testing.T) {
	h := newAddrHeap[int64](5)
	h.Reset()
	h.Push(0, 10)
	h.Push(1, 3)
	h.Push(2, 7)

	v, d := h.Pop()
	if v != 1 || d != 3 {
		t.Fatalf("got (%d,%d), want (1,3)", v, d)
	}
	v, d = h.Pop()
	if v != 2 || d != 7 {
		t.Fatalf("got (%d,%d), want (2,7)", v, d)
	}
	v, d = h.Pop()
	if v != 0 || d != 10 {
		t.Fatalf("got (%d,%d), want (0,10)", v, d)
	}
	if h.Len() != 0 {
		t.Fatalf("heap not empty after draining")
	}
}

func TestAddrHeapDecreaseKeyReordersPop(t *testing.T) {
	h := newAddrHeap[int64](3)
	h.Reset()
	h.Push(0, 10)
	h.Push(1, 20)
	h.Push(0, 5) // decrease-key, not a duplicate push

	if h.Len() != 2 {
		t.Fatalf("expected 2 entries after decrease-key, got %d", h.Len())
	}
	v, d := h.Pop()
	if v != 0 || d != 5 {
		t.Fatalf("got (%d,%d), want (0,5)", v, d)
	}
}

func TestAddrHeapResetIsCheapAndStale(t *testing.T) {
	h := newAddrHeap[int64](3)
	h.Reset()
	h.Push(0, 1)
	h.Reset()
	if h.InHeap(0) {
		t.Fatalf("node 0 should read as absent after Reset")
	}
	if h.Dist(0, 999) != 999 {
		t.Fatalf("stale node should report caller-supplied infinity")
	}
}

func TestAddrHeapIgnoresWorseKey(t *testing.T) {
	h := newAddrHeap[int64](2)
	h.Reset()
	h.Push(0, 5)
	h.Push(0, 9) // worse, must not overwrite
	if h.Dist(0, 999) != 5 {
		t.Fatalf("Push with a larger distance must not increase the key, got %d", h.Dist(0, 999))
	}
}
