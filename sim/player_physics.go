package sim

import "github.com/plus3/hopper/ecs"

// PlayerPhysicsSystem applies gravity to airborne players. A grounded player
// is relaunched at JumpVelocity every tick when AutoBounce is set, which makes
// the player bounce continuously; otherwise its vertical velocity is zeroed.
type PlayerPhysicsSystem struct {
	AutoBounce bool
	entities   ecs.Query
}

func NewPlayerPhysicsSystem(types Types, autoBounce bool) *PlayerPhysicsSystem {
	return &PlayerPhysicsSystem{
		AutoBounce: autoBounce,
		entities:   ecs.MustQuery(types.Velocity, types.PlayerPhysics),
	}
}

func (s *PlayerPhysicsSystem) Name() string { return "player-physics" }

func (s *PlayerPhysicsSystem) Update(dt float64, w *ecs.World) {
	for _, e := range query(w, s.entities) {
		vel := ecs.Get[Velocity](w, e)
		phys := ecs.Get[PlayerPhysics](w, e)

		switch {
		case !phys.Grounded:
			vel.Y += phys.Gravity * dt
		case s.AutoBounce:
			vel.Y = -phys.JumpVelocity
		default:
			vel.Y = 0
		}
	}
}
