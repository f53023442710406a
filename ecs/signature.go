package ecs

import "slices"

// signature is the canonical identity of an archetype: its component ids
// sorted ascending with no duplicates.
type signature []ComponentID

// newSignature canonicalizes an unordered component id list into dst,
// reusing its backing array. Panics if the list contains a duplicate.
func newSignature(dst signature, components []ComponentID) signature {
	dst = append(dst[:0], components...)
	slices.Sort(dst)
	for i := 1; i < len(dst); i++ {
		if dst[i] == dst[i-1] {
			panic("ecs: duplicate component id in signature")
		}
	}
	return dst
}

// hash returns the FNV-1a hash of the canonical id list.
func (s signature) hash() uint64 {
	var h uint64 = 14695981039346656037 // FNV-1a 64-bit offset basis
	const prime uint64 = 1099511628211  // FNV-1a 64-bit prime
	for _, id := range s {
		h ^= uint64(id)
		h *= prime
	}
	return h
}

func (s signature) equal(o signature) bool {
	return slices.Equal(s, o)
}

// slot returns the position of id within the signature, or -1. The position
// doubles as the archetype's local column slot for the component.
func (s signature) slot(id ComponentID) int {
	for i, c := range s {
		if c == id {
			return i
		}
	}
	return -1
}

// supersetOf reports whether the signature contains every requested id.
// Matching is set membership; the request need not be sorted.
func (s signature) supersetOf(request []ComponentID) bool {
	if len(s) < len(request) {
		return false
	}
	for _, id := range request {
		if s.slot(id) < 0 {
			return false
		}
	}
	return true
}
