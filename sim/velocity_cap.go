package sim

import (
	"math"

	"github.com/plus3/hopper/ecs"
)

// VelocityCapSystem clamps horizontal speed. Jumps and falls are not capped.
type VelocityCapSystem struct {
	entities ecs.Query
}

func NewVelocityCapSystem(types Types) *VelocityCapSystem {
	return &VelocityCapSystem{
		entities: ecs.MustQuery(types.Velocity, types.MaxSpeed),
	}
}

func (s *VelocityCapSystem) Name() string { return "velocity-cap" }

func (s *VelocityCapSystem) Update(dt float64, w *ecs.World) {
	for _, e := range query(w, s.entities) {
		v := ecs.Get[Velocity](w, e)
		limit := ecs.Get[MaxSpeed](w, e).X

		if math.Abs(v.X) > limit {
			v.X = math.Copysign(limit, v.X)
		}
	}
}
