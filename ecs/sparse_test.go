package ecs

import "testing"

func TestSparseIndexAddressing(t *testing.T) {
	s := newSparseIndex(8, 2)

	s.set(0, 1, 2, 3)
	s.set(7, 4, 5, 6)
	s.set(9, 7, 8, 9)

	for _, tc := range []struct {
		e       EntityID
		a, c, r uint32
	}{
		{0, 1, 2, 3},
		{7, 4, 5, 6},
		{9, 7, 8, 9},
	} {
		a, c, r := s.get(tc.e)
		if a != tc.a || c != tc.c || r != tc.r {
			t.Errorf("get(%d) = (%d,%d,%d), want (%d,%d,%d)", tc.e, a, c, r, tc.a, tc.c, tc.r)
		}
	}
}

func TestSparseIndexGrowth(t *testing.T) {
	s := newSparseIndex(4, 1)

	if !s.inRange(3) || s.inRange(4) {
		t.Fatal("initial range should cover exactly one sub-array")
	}

	// Growing to a distant id appends every missing sub-array at once.
	s.ensure(22)
	if len(s.chunks) != 6 {
		t.Errorf("sub-array count = %d, want 6", len(s.chunks))
	}
	if !s.inRange(22) {
		t.Error("id 22 should be addressable after ensure")
	}

	s.set(22, 1, 2, 3)
	a, c, r := s.get(22)
	if a != 1 || c != 2 || r != 3 {
		t.Errorf("get(22) = (%d,%d,%d)", a, c, r)
	}
}

func TestSparseIndexSetRow(t *testing.T) {
	s := newSparseIndex(8, 1)
	s.set(5, 1, 2, 3)
	s.setRow(5, 0)
	a, c, r := s.get(5)
	if a != 1 || c != 2 || r != 0 {
		t.Errorf("get(5) = (%d,%d,%d), want (1,2,0)", a, c, r)
	}
}

func TestSparseIndexGrowthKeepsEntries(t *testing.T) {
	s := newSparseIndex(4, 1)
	s.set(1, 9, 8, 7)
	s.ensure(100)
	a, c, r := s.get(1)
	if a != 9 || c != 8 || r != 7 {
		t.Errorf("entry lost across growth: (%d,%d,%d)", a, c, r)
	}
}
