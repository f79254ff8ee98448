package ecs_test

import (
	"testing"

	"github.com/plus3/hopper/ecs"
)

func BenchmarkSpawn(b *testing.B) {
	w := newTestWorld()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := w.CreateEntity()
		_ = ecs.Add(w, e, Position{X: 1.0, Y: 2.0})
		_ = ecs.Add(w, e, Velocity{DX: 0.5, DY: 0.5})
	}
}

func BenchmarkDestroy(b *testing.B) {
	w := newTestWorld()

	ids := make([]ecs.Entity, b.N)
	for i := 0; i < b.N; i++ {
		ids[i], _ = w.Spawn(Position{X: 1.0, Y: 2.0}, Velocity{DX: 0.5, DY: 0.5})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.DestroyEntity(ids[i])
	}
}

func BenchmarkGetComponent(b *testing.B) {
	w := newTestWorld()
	e, _ := w.Spawn(Position{X: 1.0, Y: 2.0}, Velocity{DX: 0.5, DY: 0.5})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ecs.Get[Position](w, e)
	}
}

func BenchmarkSparseSetGet(b *testing.B) {
	set := ecs.NewSparseSet[Position]()
	for i := range 10000 {
		set.Add(ecs.Entity(i), Position{X: float32(i)})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = set.Get(ecs.Entity(i % 10000))
	}
}

// A rare With component bounds the scan no matter how many entities carry the
// common one.
func BenchmarkQuerySmallestFirst(b *testing.B) {
	w := newTestWorld()
	registry := w.Registry()
	for i := range 10000 {
		e, _ := w.Spawn(Position{X: float32(i)})
		if i%100 == 0 {
			_ = ecs.Add(w, e, Health{Current: i})
		}
	}
	q := ecs.NewQuery(ecs.MustTypeOf[Position](registry), ecs.MustTypeOf[Health](registry))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = w.Query(q)
	}
}

func BenchmarkQueryCount(b *testing.B) {
	w := newTestWorld()
	registry := w.Registry()
	for i := range 10000 {
		w.Spawn(Position{X: float32(i)}, Velocity{})
	}
	q := ecs.NewQuery(ecs.MustTypeOf[Position](registry), ecs.MustTypeOf[Velocity](registry))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = w.Count(q)
	}
}
