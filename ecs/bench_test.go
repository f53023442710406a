package ecs_test

import (
	"testing"

	"github.com/plus3/slabecs/ecs"
)

func BenchmarkSpawn(b *testing.B) {
	w := ecs.NewWorld(ecs.Config{})
	pos := w.RegisterComponent(8, 8, 8)
	vel := w.RegisterComponent(8, 8, 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Spawn(pos, vel)
	}
}

func BenchmarkDelete(b *testing.B) {
	w := ecs.NewWorld(ecs.Config{})
	pos := w.RegisterComponent(8, 8, 8)

	ids := make([]ecs.EntityID, b.N)
	for i := 0; i < b.N; i++ {
		ids[i] = w.Spawn(pos)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Delete(ids[i])
	}
}

func BenchmarkField(b *testing.B) {
	w := ecs.NewWorld(ecs.Config{})
	pos := w.RegisterComponent(8, 8, 8)
	e := w.Spawn(pos)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = w.Field(e, pos, 0)
	}
}

func BenchmarkIterColumns(b *testing.B) {
	w := ecs.NewWorld(ecs.Config{ChunkSize: 1024})
	pos := w.RegisterComponent(8, 8, 8)
	vel := w.RegisterComponent(8, 8, 8)
	for i := 0; i < 10000; i++ {
		w.Spawn(pos, vel)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := w.NewIter(pos, vel)
		for c := 0; c < it.Len(); c++ {
			xs := ecs.Column[float64](it, c, 0, 0)
			dxs := ecs.Column[float64](it, c, 1, 0)
			for j := range xs {
				xs[j] += dxs[j]
			}
		}
		it.Close()
	}
}

func BenchmarkIterOpen(b *testing.B) {
	w := ecs.NewWorld(ecs.Config{ChunkSize: 256})
	pos := w.RegisterComponent(8, 8, 8)
	vel := w.RegisterComponent(8, 8, 8)
	tag := w.RegisterComponent(4)
	for i := 0; i < 5000; i++ {
		w.Spawn(pos, vel)
	}
	for i := 0; i < 5000; i++ {
		w.Spawn(pos, vel, tag)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := w.NewIter(pos)
		it.Close()
	}
}
