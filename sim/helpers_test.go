package sim

import (
	"testing"

	"github.com/plus3/hopper/collision"
	"github.com/plus3/hopper/ecs"
	"github.com/stretchr/testify/require"
)

func newTestWorld() (*ecs.World, Types) {
	registry := ecs.NewComponentRegistry()
	types := RegisterComponents(registry)
	return ecs.NewWorld(registry), types
}

func spawnBall(t *testing.T, w *ecs.World, x, y, vx, vy, r float64) ecs.Entity {
	t.Helper()
	e, err := w.Spawn(
		Transform{X: x, Y: y},
		Velocity{X: vx, Y: vy},
		CircleCollider{Radius: r},
	)
	require.NoError(t, err)
	return e
}

func spawnPlayer(t *testing.T, w *ecs.World, x, y, vx, vy float64, grounded bool) ecs.Entity {
	t.Helper()
	tuning := DefaultTuning()
	e := spawnBall(t, w, x, y, vx, vy, tuning.PlayerRadius)
	require.NoError(t, ecs.Add(w, e, PlayerPhysics{
		Gravity:      tuning.Gravity,
		JumpVelocity: tuning.JumpVelocity,
		Grounded:     grounded,
	}))
	require.NoError(t, ecs.Add(w, e, InputControlled{}))
	return e
}

func spawnRect(t *testing.T, w *ecs.World, x, y, width, height float64, sides SideMask) ecs.Entity {
	t.Helper()
	e, err := w.Spawn(
		Transform{X: x, Y: y},
		RectCollider{Width: width, Height: height, Sides: sides},
		Platform{},
	)
	require.NoError(t, err)
	return e
}

type stubCamera struct {
	pos     collision.Vec2
	targets []float64
}

func (c *stubCamera) Update(dt, targetY float64) { c.targets = append(c.targets, targetY) }
func (c *stubCamera) Position() collision.Vec2  { return c.pos }
