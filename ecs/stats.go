package ecs

// ArchetypeStats describes one archetype's storage footprint.
type ArchetypeStats struct {
	Components  []ComponentID
	ChunkCount  int
	EntityCount int
}

// WorldStats is a point-in-time summary of a World's storage.
type WorldStats struct {
	ComponentCount     int
	ArchetypeCount     int
	ChunkCount         int
	TotalEntityCount   int
	ArchetypeBreakdown []ArchetypeStats
}

// CollectStats walks the archetype list and returns aggregate counts plus a
// per-archetype breakdown.
func (w *World) CollectStats() WorldStats {
	stats := WorldStats{
		ComponentCount: len(w.registry.infos),
		ArchetypeCount: len(w.archetypes),
	}
	for _, a := range w.archetypes {
		entities := a.entityCount()
		stats.ChunkCount += len(a.chunks)
		stats.TotalEntityCount += entities
		stats.ArchetypeBreakdown = append(stats.ArchetypeBreakdown, ArchetypeStats{
			Components:  append([]ComponentID(nil), a.sig...),
			ChunkCount:  len(a.chunks),
			EntityCount: entities,
		})
	}
	return stats
}
