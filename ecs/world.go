package ecs

import (
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Config fixes a World's storage geometry at creation time.
type Config struct {
	// ChunkSize is the number of rows per dense chunk.
	ChunkSize int
	// SparseChunkSize is the number of entries per sparse sub-array and
	// the initial capacity of the free-id stack.
	SparseChunkSize int
	// InitialSparseChunks is the number of sparse sub-arrays allocated
	// up front.
	InitialSparseChunks int
}

const (
	DefaultChunkSize       = 1024
	DefaultSparseChunkSize = 1024
)

// World composes the component registry, archetype storage, sparse index
// and id allocator. It is single-threaded: every operation assumes
// exclusive access.
type World struct {
	registry   ComponentRegistry
	archetypes []*archetype
	byHash     *intmap.Map[uint64, uint32]
	sparse     sparseIndex
	ids        idAllocator
	chunkSize  int

	// generation increments on every structural mutation; iterators
	// capture it to detect use after invalidation.
	generation uint64

	scratch signature
}

// NewWorld creates an empty World. Zero config fields fall back to
// defaults.
func NewWorld(cfg Config) *World {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.SparseChunkSize <= 0 {
		cfg.SparseChunkSize = DefaultSparseChunkSize
	}
	if cfg.InitialSparseChunks <= 0 {
		cfg.InitialSparseChunks = 1
	}
	return &World{
		byHash:    intmap.New[uint64, uint32](32),
		sparse:    newSparseIndex(cfg.SparseChunkSize, cfg.InitialSparseChunks),
		ids:       newIDAllocator(cfg.SparseChunkSize),
		chunkSize: cfg.ChunkSize,
	}
}

// Registry exposes the World's component registry for layout queries.
func (w *World) Registry() *ComponentRegistry {
	return &w.registry
}

// RegisterComponent records a component layout described by its ordered
// field sizes in bytes and returns its id. Like every structural mutation
// it invalidates outstanding iterators.
func (w *World) RegisterComponent(fieldSizes ...int) ComponentID {
	w.generation++
	return w.registry.Register(fieldSizes...)
}

// archetypeFor finds the archetype with exactly the canonical signature,
// creating it (with one empty chunk) on first use. Lookup is by signature
// hash with an equality check; a colliding hash falls back to a scan over
// the archetype list.
func (w *World) archetypeFor(sig signature) *archetype {
	h := sig.hash()
	id, taken := w.byHash.Get(h)
	if taken {
		if a := w.archetypes[id]; a.sig.equal(sig) {
			return a
		}
		// Colliding hash: the archetype, if it exists, is only findable
		// by scanning.
		for _, a := range w.archetypes {
			if a.sig.equal(sig) {
				return a
			}
		}
	}
	a := newArchetype(uint32(len(w.archetypes)), sig, &w.registry, w.chunkSize)
	w.archetypes = append(w.archetypes, a)
	if !taken {
		w.byHash.Put(h, a.id)
	}
	return a
}

// Spawn creates an entity carrying the given component set (order does not
// matter) and returns its id. Panics if the set contains a duplicate.
func (w *World) Spawn(components ...ComponentID) EntityID {
	w.generation++
	w.scratch = newSignature(w.scratch, components)

	id := w.ids.alloc()
	a := w.archetypeFor(w.scratch)
	chunkIdx, row := a.append(id)

	w.sparse.ensure(id)
	w.sparse.set(id, a.id, chunkIdx, row)
	return id
}

// Delete destroys a live entity: its id returns to the free stack and the
// last row of its chunk is swapped into its slot. Deleting an id that is
// not live corrupts the index. Emptied chunks are kept for reuse, never
// reclaimed.
func (w *World) Delete(e EntityID) {
	w.generation++
	w.ids.free(e)

	archetypeID, chunkIdx, row := w.sparse.get(e)
	moved, ok := w.archetypes[archetypeID].swapPop(chunkIdx, row)
	if ok {
		w.sparse.setRow(moved, row)
	}
}

// Field returns the address of one scalar field of a live entity, or false
// when the id is outside the allocated sparse range, the entity's archetype
// lacks the component, or the field index is out of range. The address is
// valid until the next structural mutation.
func (w *World) Field(e EntityID, component ComponentID, field int) (unsafe.Pointer, bool) {
	if !w.sparse.inRange(e) {
		return nil, false
	}
	archetypeID, chunkIdx, row := w.sparse.get(e)
	a := w.archetypes[archetypeID]
	slot := a.sig.slot(component)
	if slot < 0 {
		return nil, false
	}
	info := w.registry.info(component)
	if field < 0 || field >= len(info.fieldSizes) {
		return nil, false
	}
	return a.chunks[chunkIdx].fieldPtr(slot, field, int(row), info.fieldSizes[field]), true
}

// FieldOf is a typed view of Field. T's size must equal the registered
// field size.
func FieldOf[T any](w *World, e EntityID, component ComponentID, field int) (*T, bool) {
	p, ok := w.Field(e, component, field)
	if !ok {
		return nil, false
	}
	return (*T)(p), true
}
