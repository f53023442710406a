package ecs

// sparseChunk is one fixed-size slice of the sparse index. The three arrays
// are parallel: entry i locates entity (base+i) by archetype id, chunk
// index and row index.
type sparseChunk struct {
	archetypes []uint32
	chunkIdxs  []uint32
	rows       []uint32
}

func newSparseChunk(size int) sparseChunk {
	return sparseChunk{
		archetypes: make([]uint32, size),
		chunkIdxs:  make([]uint32, size),
		rows:       make([]uint32, size),
	}
}

// sparseIndex maps entity id -> (archetype, chunk, row) in O(1). It is
// sliced into equal sub-arrays so growth never moves existing entries.
type sparseIndex struct {
	chunks    []sparseChunk
	chunkSize uint32
}

func newSparseIndex(chunkSize, initialChunks int) sparseIndex {
	s := sparseIndex{
		chunks:    make([]sparseChunk, 0, initialChunks),
		chunkSize: uint32(chunkSize),
	}
	for i := 0; i < initialChunks; i++ {
		s.chunks = append(s.chunks, newSparseChunk(chunkSize))
	}
	return s
}

// ensure grows the sub-array vector until it can address e, appending every
// missing sub-array at once.
func (s *sparseIndex) ensure(e EntityID) {
	for uint32(e)/s.chunkSize >= uint32(len(s.chunks)) {
		s.chunks = append(s.chunks, newSparseChunk(int(s.chunkSize)))
	}
}

// inRange reports whether e falls inside the allocated sub-arrays.
func (s *sparseIndex) inRange(e EntityID) bool {
	return uint32(e)/s.chunkSize < uint32(len(s.chunks))
}

func (s *sparseIndex) set(e EntityID, archetypeID, chunkIdx, row uint32) {
	c := &s.chunks[uint32(e)/s.chunkSize]
	slot := uint32(e) % s.chunkSize
	c.archetypes[slot] = archetypeID
	c.chunkIdxs[slot] = chunkIdx
	c.rows[slot] = row
}

// get returns the stored triple. Reading an id that was never set returns
// whatever the slot last held; callers must only pass live ids.
func (s *sparseIndex) get(e EntityID) (archetypeID, chunkIdx, row uint32) {
	c := &s.chunks[uint32(e)/s.chunkSize]
	slot := uint32(e) % s.chunkSize
	return c.archetypes[slot], c.chunkIdxs[slot], c.rows[slot]
}

// setRow rewrites only the row index of an entry, used when a swap-pop
// moves an entity within its chunk.
func (s *sparseIndex) setRow(e EntityID, row uint32) {
	c := &s.chunks[uint32(e)/s.chunkSize]
	c.rows[uint32(e)%s.chunkSize] = row
}
