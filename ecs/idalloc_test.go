package ecs

import "testing"

func TestIDAllocatorSeed(t *testing.T) {
	a := newIDAllocator(4)
	for i := 0; i < 4; i++ {
		if got := a.alloc(); got != EntityID(i) {
			t.Fatalf("alloc %d = %d", i, got)
		}
	}
}

func TestIDAllocatorLIFO(t *testing.T) {
	a := newIDAllocator(8)
	for i := 0; i < 5; i++ {
		a.alloc()
	}

	a.free(1)
	a.free(3)
	a.free(4)

	// Frees come back in exact reverse order.
	for _, want := range []EntityID{4, 3, 1} {
		if got := a.alloc(); got != want {
			t.Errorf("alloc = %d, want %d", got, want)
		}
	}
}

func TestIDAllocatorDoubling(t *testing.T) {
	a := newIDAllocator(2)
	seen := make(map[EntityID]bool)
	for i := 0; i < 9; i++ {
		id := a.alloc()
		if seen[id] {
			t.Fatalf("id %d handed out twice", id)
		}
		seen[id] = true
	}
	if len(a.ids) != 16 {
		t.Errorf("capacity after growth = %d, want 16", len(a.ids))
	}
}

func TestIDAllocatorRoundtrip(t *testing.T) {
	a := newIDAllocator(16)
	ids := make([]EntityID, 10)
	for i := range ids {
		ids[i] = a.alloc()
	}
	for _, id := range ids {
		a.free(id)
	}
	for i := len(ids) - 1; i >= 0; i-- {
		if got := a.alloc(); got != ids[i] {
			t.Fatalf("roundtrip alloc = %d, want %d", got, ids[i])
		}
	}
}
