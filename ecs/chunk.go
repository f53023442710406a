package ecs

import "unsafe"

// cacheLine is the alignment boundary for every dense column.
const cacheLine = 64

// alignedBytes allocates an n-byte slice whose first element sits on a
// cache-line boundary. Go offers no aligned allocator, so the buffer is
// over-allocated and re-sliced to the boundary.
func alignedBytes(n int) []byte {
	buf := make([]byte, n+cacheLine-1)
	off := 0
	if rem := int(uintptr(unsafe.Pointer(&buf[0])) % cacheLine); rem != 0 {
		off = cacheLine - rem
	}
	return buf[off : off+n : off+n]
}

// chunk holds up to capacity rows of one archetype: an aligned entity id
// column and one aligned byte column per (local component slot, field).
// Rows [0, length) are live; anything past length is undefined.
type chunk struct {
	ids    []EntityID
	cols   [][][]byte // local slot -> field -> column, capacity*fieldSize bytes
	length int
}

// newChunk allocates columns for exactly the archetype's components.
// Components outside the signature have no column at all.
func newChunk(reg *ComponentRegistry, sig signature, capacity int) *chunk {
	idBytes := alignedBytes(capacity * int(unsafe.Sizeof(EntityID(0))))
	c := &chunk{
		ids:  unsafe.Slice((*EntityID)(unsafe.Pointer(&idBytes[0])), capacity),
		cols: make([][][]byte, len(sig)),
	}
	for slot, id := range sig {
		info := reg.info(id)
		fields := make([][]byte, len(info.fieldSizes))
		for f, size := range info.fieldSizes {
			fields[f] = alignedBytes(capacity * size)
		}
		c.cols[slot] = fields
	}
	return c
}

// fieldPtr returns the address of one scalar: column base + row*fieldSize.
// The address stays valid until the next structural mutation of the World.
func (c *chunk) fieldPtr(slot, field, row, fieldSize int) unsafe.Pointer {
	return unsafe.Pointer(&c.cols[slot][field][row*fieldSize])
}

// copyRow copies every field of every component from row src to row dst
// within this chunk.
func (c *chunk) copyRow(reg *ComponentRegistry, sig signature, dst, src int) {
	for slot, id := range sig {
		for f, size := range reg.info(id).fieldSizes {
			col := c.cols[slot][f]
			copy(col[dst*size:(dst+1)*size], col[src*size:(src+1)*size])
		}
	}
}
