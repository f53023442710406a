package ecs

// Commands buffers structural mutations queued during a traversal so the
// iterator snapshot stays valid until the caller flushes. Flush order is
// deletes, then spawns, then deferred functions.
type Commands struct {
	spawns  [][]ComponentID
	deletes []EntityID
	defers  []func()
}

func NewCommands() *Commands {
	return &Commands{}
}

// Spawn queues an entity creation with the given component set.
func (c *Commands) Spawn(components ...ComponentID) {
	sig := make([]ComponentID, len(components))
	copy(sig, components)
	c.spawns = append(c.spawns, sig)
}

// Delete queues an entity deletion.
func (c *Commands) Delete(e EntityID) {
	c.deletes = append(c.deletes, e)
}

// Defer queues an arbitrary function to run after the queued mutations.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies all queued operations to the world and resets the buffer.
// Returns the ids of the spawned entities in queue order.
func (c *Commands) Flush(w *World) []EntityID {
	for _, e := range c.deletes {
		w.Delete(e)
	}
	var spawned []EntityID
	if len(c.spawns) > 0 {
		spawned = make([]EntityID, 0, len(c.spawns))
		for _, sig := range c.spawns {
			spawned = append(spawned, w.Spawn(sig...))
		}
	}
	for _, fn := range c.defers {
		fn()
	}
	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.defers = c.defers[:0]
	return spawned
}
