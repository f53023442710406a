/*
Package ecs implements an archetype-based Entity-Component-System storage
engine with chunked, cache-line-aligned column storage.

Entities are plain recycled 32-bit ids. Component types are registered as
ordered lists of field sizes; each field lives in its own contiguous column
so systems can walk a single scalar across all rows of a chunk. Entities
sharing the exact same component set are grouped into an archetype, and each
archetype stores its rows in fixed-capacity chunks whose columns are aligned
to 64-byte boundaries.

Basic usage:

	w := ecs.NewWorld(ecs.Config{})
	pos := w.RegisterComponent(8, 8) // two float64 fields
	vel := w.RegisterComponent(8, 8)

	e := w.Spawn(pos, vel)
	if p, ok := ecs.FieldOf[float64](w, e, pos, 0); ok {
		*p = 3.5
	}

	it := w.NewIter(pos, vel)
	for c := 0; c < it.Len(); c++ {
		xs := ecs.Column[float64](it, c, 0, 0)
		dxs := ecs.Column[float64](it, c, 1, 0)
		for i := range xs {
			xs[i] += dxs[i]
		}
	}
	it.Close()

The World is single-threaded and exclusively owns all storage. Any
structural mutation (Spawn, Delete, RegisterComponent) invalidates all
outstanding iterators and field pointers; iterators detect reuse after
invalidation and panic. Use Commands to queue mutations while traversing.

Teardown is left to the garbage collector; a World holds no resources
beyond its own memory.
*/
package ecs
