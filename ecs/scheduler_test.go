package ecs_test

import (
	"bytes"
	"context"
	"log"
	"testing"
	"time"

	"github.com/plus3/hopper/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MovementSystem struct {
	Entities     ecs.Query
	ExecuteCount int
	order        *[]string
}

func (s *MovementSystem) Name() string { return "movement" }

func (s *MovementSystem) Update(dt float64, w *ecs.World) {
	s.ExecuteCount++
	if s.order != nil {
		*s.order = append(*s.order, s.Name())
	}
	entities, _ := w.Query(s.Entities)
	for _, e := range entities {
		pos := ecs.Get[Position](w, e)
		vel := ecs.Get[Velocity](w, e)
		pos.X += vel.DX * float32(dt)
		pos.Y += vel.DY * float32(dt)
	}
}

type HealthSystem struct {
	Entities     ecs.Query
	ExecuteCount int
	TotalHealth  float64
	Destroyed    bool
	order        *[]string
}

func (s *HealthSystem) Name() string { return "health" }

func (s *HealthSystem) Update(dt float64, w *ecs.World) {
	s.ExecuteCount++
	if s.order != nil {
		*s.order = append(*s.order, s.Name())
	}
	s.TotalHealth = 0
	entities, _ := w.Query(s.Entities)
	for _, e := range entities {
		s.TotalHealth += float64(ecs.Get[Health](w, e).Current)
	}
}

func (s *HealthSystem) OnDestroy() {
	s.Destroyed = true
}

func TestScheduler(t *testing.T) {
	registry := newTestRegistry()
	posType := ecs.MustTypeOf[Position](registry)
	velType := ecs.MustTypeOf[Velocity](registry)
	healthType := ecs.MustTypeOf[Health](registry)

	t.Run("system execution order", func(t *testing.T) {
		w := ecs.NewWorld(registry)
		scheduler := ecs.NewScheduler()

		var order []string
		movement := &MovementSystem{Entities: ecs.MustQuery(posType, velType), order: &order}
		health := &HealthSystem{Entities: ecs.MustQuery(healthType), order: &order}

		require.True(t, scheduler.AddSystem(health))
		require.True(t, scheduler.AddSystem(movement))

		e, _ := w.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 1, DY: 2})
		w.Spawn(Health{Current: 100, Max: 100})

		scheduler.Update(1.0, w)
		scheduler.Update(0.5, w)

		assert.Equal(t, []string{"health", "movement", "health", "movement"}, order)
		assert.Equal(t, 2, movement.ExecuteCount)
		assert.Equal(t, 2, health.ExecuteCount)
		assert.Equal(t, Position{X: 1.5, Y: 3}, *ecs.Get[Position](w, e))
	})

	t.Run("custom state persistence", func(t *testing.T) {
		w := ecs.NewWorld(registry)
		scheduler := ecs.NewScheduler()

		w.Spawn(Health{Current: 50, Max: 100})
		w.Spawn(Health{Current: 75, Max: 100})

		health := &HealthSystem{Entities: ecs.MustQuery(healthType)}
		scheduler.AddSystem(health)

		scheduler.Update(1.0, w)
		assert.Equal(t, 125.0, health.TotalHealth)

		w.Spawn(Health{Current: 25, Max: 100})

		scheduler.Update(1.0, w)
		assert.Equal(t, 150.0, health.TotalHealth)
	})

	t.Run("duplicate system type is rejected", func(t *testing.T) {
		var buf bytes.Buffer
		scheduler := ecs.NewScheduler()
		scheduler.SetLogger(log.New(&buf, "", 0))

		assert.True(t, scheduler.AddSystem(&HealthSystem{Entities: ecs.MustQuery(healthType)}))
		assert.False(t, scheduler.AddSystem(&HealthSystem{Entities: ecs.MustQuery(healthType)}))

		assert.Len(t, scheduler.Systems(), 1)
		assert.Contains(t, buf.String(), "already registered")
	})

	t.Run("destroy calls OnDestroy", func(t *testing.T) {
		scheduler := ecs.NewScheduler()
		health := &HealthSystem{Entities: ecs.MustQuery(healthType)}
		scheduler.AddSystem(health)
		scheduler.AddSystem(&MovementSystem{Entities: ecs.MustQuery(posType, velType)})

		scheduler.Destroy()

		assert.True(t, health.Destroyed)
		assert.Empty(t, scheduler.Systems())
		assert.True(t, scheduler.AddSystem(&HealthSystem{Entities: ecs.MustQuery(healthType)}))
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		w := ecs.NewWorld(registry)
		scheduler := ecs.NewScheduler()

		movement := &MovementSystem{Entities: ecs.MustQuery(posType, velType)}
		scheduler.AddSystem(movement)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, w, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		assert.Greater(t, movement.ExecuteCount, 0)
	})
}

func TestSchedulerStats(t *testing.T) {
	registry := newTestRegistry()
	w := ecs.NewWorld(registry)
	scheduler := ecs.NewScheduler()

	scheduler.AddSystem(&HealthSystem{Entities: ecs.MustQuery(ecs.MustTypeOf[Health](registry))})

	stats := scheduler.GetStats()
	require.Len(t, stats.Systems, 1)
	assert.Equal(t, int64(0), stats.Systems[0].ExecutionCount)
	assert.Equal(t, time.Duration(0), stats.Systems[0].MinDuration)

	for range 3 {
		scheduler.Update(1.0/60, w)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, 1, stats.SystemCount)
	assert.Equal(t, int64(3), stats.TotalExecutions)
	assert.Equal(t, "health", stats.Systems[0].Name)
	assert.Equal(t, int64(3), stats.Systems[0].ExecutionCount)
	assert.LessOrEqual(t, stats.Systems[0].MinDuration, stats.Systems[0].MaxDuration)
	assert.GreaterOrEqual(t, stats.Systems[0].TotalDuration, stats.Systems[0].LastDuration)
}
