package sim

import "github.com/plus3/hopper/ecs"

// IntegrationSystem advances positions by one explicit Euler step.
type IntegrationSystem struct {
	entities ecs.Query
}

func NewIntegrationSystem(types Types) *IntegrationSystem {
	return &IntegrationSystem{
		entities: ecs.MustQuery(types.Transform, types.Velocity),
	}
}

func (s *IntegrationSystem) Name() string { return "integration" }

func (s *IntegrationSystem) Update(dt float64, w *ecs.World) {
	for _, e := range query(w, s.entities) {
		t := ecs.Get[Transform](w, e)
		v := ecs.Get[Velocity](w, e)
		t.X += v.X * dt
		t.Y += v.Y * dt
	}
}
