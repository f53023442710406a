package ecs

// archetype owns the storage for all entities sharing one exact component
// signature. Its id is its insertion index in the World and is stable for
// the World's lifetime; archetypes are never destroyed mid-run.
type archetype struct {
	id       uint32
	sig      signature
	chunks   []*chunk
	capacity int // rows per chunk
	reg      *ComponentRegistry
}

func newArchetype(id uint32, sig signature, reg *ComponentRegistry, capacity int) *archetype {
	a := &archetype{
		id:       id,
		sig:      append(signature(nil), sig...),
		capacity: capacity,
		reg:      reg,
	}
	a.chunks = append(a.chunks, newChunk(reg, a.sig, capacity))
	return a
}

// append places the entity in the first chunk with a free row, allocating a
// new chunk when all are full. Deletions free rows in arbitrary chunks, so
// reuse needs the scan; it is bounded by the chunk count.
func (a *archetype) append(e EntityID) (chunkIdx, row uint32) {
	for i, c := range a.chunks {
		if c.length < a.capacity {
			c.ids[c.length] = e
			c.length++
			return uint32(i), uint32(c.length - 1)
		}
	}
	c := newChunk(a.reg, a.sig, a.capacity)
	c.ids[0] = e
	c.length = 1
	a.chunks = append(a.chunks, c)
	return uint32(len(a.chunks) - 1), 0
}

// swapPop removes the row by overwriting it with the chunk's last live row
// and shrinking the chunk. Returns the id of the moved entity, if any, so
// the caller can repair its sparse index entry. Rows never move across
// chunks, so chunks may stay partially filled after deletions.
func (a *archetype) swapPop(chunkIdx, row uint32) (EntityID, bool) {
	c := a.chunks[chunkIdx]
	last := c.length - 1
	if int(row) == last {
		c.length--
		return 0, false
	}
	moved := c.ids[last]
	c.ids[row] = moved
	c.copyRow(a.reg, a.sig, int(row), last)
	c.length--
	return moved, true
}

// entityCount sums the live rows across all chunks.
func (a *archetype) entityCount() int {
	n := 0
	for _, c := range a.chunks {
		n += c.length
	}
	return n
}
