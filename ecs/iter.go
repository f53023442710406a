package ecs

import "unsafe"

// Iter is a snapshot of column base addresses for every chunk of every
// archetype whose component set is a superset of the request. Archetypes
// are visited in creation order and chunks in index order; no order holds
// across archetypes.
//
// The snapshot is fragile: any structural mutation of the World may move
// chunk storage, so every accessor checks the generation captured at
// construction and panics on use after invalidation.
type Iter struct {
	world *World
	gen   uint64

	// cols[chunk][request position][field] is a column base address.
	cols    [][][]unsafe.Pointer
	lengths []int
}

// NewIter snapshots the chunks matching the requested component set.
// Request order is preserved in the snapshot records; matching is set
// membership. Panics if a requested component id is unregistered.
func (w *World) NewIter(components ...ComponentID) *Iter {
	for _, id := range components {
		if int(id) >= len(w.registry.infos) {
			panic("ecs: iterator over unregistered component id")
		}
	}
	it := &Iter{world: w, gen: w.generation}
	for _, a := range w.archetypes {
		if !a.sig.supersetOf(components) {
			continue
		}
		for _, c := range a.chunks {
			record := make([][]unsafe.Pointer, len(components))
			for k, id := range components {
				slot := a.sig.slot(id)
				fields := make([]unsafe.Pointer, len(w.registry.info(id).fieldSizes))
				for f := range fields {
					fields[f] = unsafe.Pointer(&c.cols[slot][f][0])
				}
				record[k] = fields
			}
			it.cols = append(it.cols, record)
			it.lengths = append(it.lengths, c.length)
		}
	}
	return it
}

func (it *Iter) validate() {
	if it.world == nil {
		panic("ecs: use of closed iterator")
	}
	if it.gen != it.world.generation {
		panic("ecs: iterator invalidated by world mutation")
	}
}

// Len returns the number of matched chunks.
func (it *Iter) Len() int {
	it.validate()
	return len(it.cols)
}

// ChunkLen returns the live row count of the i-th matched chunk.
func (it *Iter) ChunkLen(i int) int {
	it.validate()
	return it.lengths[i]
}

// ColumnPtr returns the base address of one field column: chunk i,
// component k of the request, field f. Rows [0, ChunkLen(i)) are live.
func (it *Iter) ColumnPtr(i, k, f int) unsafe.Pointer {
	it.validate()
	return it.cols[i][k][f]
}

// Close releases the snapshot's own buffers. It never touches World state.
func (it *Iter) Close() {
	it.world = nil
	it.cols = nil
	it.lengths = nil
}

// Column returns the f-th field column of component k in chunk i as a
// typed slice over the live rows. T's size must equal the registered field
// size.
func Column[T any](it *Iter, i, k, f int) []T {
	it.validate()
	n := it.lengths[i]
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(it.cols[i][k][f]), n)
}

// FieldAt returns a pointer to one scalar in the snapshot: row of the f-th
// field column of component k in chunk i. T's size must equal the
// registered field size.
func FieldAt[T any](it *Iter, i, k, f, row int) *T {
	it.validate()
	var zero T
	return (*T)(unsafe.Add(it.cols[i][k][f], uintptr(row)*unsafe.Sizeof(zero)))
}
