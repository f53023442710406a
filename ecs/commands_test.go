package ecs_test

import (
	"testing"

	"github.com/plus3/slabecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsSpawnAndDelete(t *testing.T) {
	w := ecs.NewWorld(ecs.Config{})
	pos := w.RegisterComponent(8)

	e := w.Spawn(pos)

	cmds := ecs.NewCommands()
	cmds.Spawn(pos)
	cmds.Spawn(pos)
	cmds.Delete(e)

	// Nothing applied until the flush.
	assert.Equal(t, 1, w.CollectStats().TotalEntityCount)

	spawned := cmds.Flush(w)
	require.Len(t, spawned, 2)
	assert.Equal(t, 2, w.CollectStats().TotalEntityCount)

	// Deletes run first, so the freed id is reused by the queued spawns.
	assert.Contains(t, spawned, e)
}

func TestCommandsKeepIterValidUntilFlush(t *testing.T) {
	w := ecs.NewWorld(ecs.Config{})
	pos := w.RegisterComponent(8)
	for i := 0; i < 4; i++ {
		w.Spawn(pos)
	}

	cmds := ecs.NewCommands()
	it := w.NewIter(pos)
	for i := 0; i < it.Len(); i++ {
		for range ecs.Column[float64](it, i, 0, 0) {
			cmds.Spawn(pos)
		}
	}
	it.Close()
	cmds.Flush(w)

	assert.Equal(t, 8, w.CollectStats().TotalEntityCount)
}

func TestCommandsDefer(t *testing.T) {
	w := ecs.NewWorld(ecs.Config{})
	pos := w.RegisterComponent(8)

	var order []string
	cmds := ecs.NewCommands()
	cmds.Defer(func() { order = append(order, "deferred") })
	cmds.Spawn(pos)
	cmds.Defer(func() { order = append(order, "second") })
	cmds.Flush(w)

	// Deferred functions run after the queued mutations, in queue order.
	assert.Equal(t, []string{"deferred", "second"}, order)
	assert.Equal(t, 1, w.CollectStats().TotalEntityCount)
}

func TestCommandsFlushResets(t *testing.T) {
	w := ecs.NewWorld(ecs.Config{})
	pos := w.RegisterComponent(8)

	cmds := ecs.NewCommands()
	cmds.Spawn(pos)
	cmds.Flush(w)
	spawned := cmds.Flush(w)

	assert.Empty(t, spawned)
	assert.Equal(t, 1, w.CollectStats().TotalEntityCount)
}
