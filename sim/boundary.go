package sim

import "github.com/plus3/hopper/ecs"

// BoundarySystem keeps circles inside the viewport horizontally. There is no
// vertical bound; the world scrolls up without limit.
type BoundarySystem struct {
	Viewport Viewport
	entities ecs.Query
}

func NewBoundarySystem(types Types, viewport Viewport) *BoundarySystem {
	return &BoundarySystem{
		Viewport: viewport,
		entities: ecs.MustQuery(types.Transform, types.Velocity, types.CircleCollider),
	}
}

func (s *BoundarySystem) Name() string { return "boundary" }

func (s *BoundarySystem) Update(dt float64, w *ecs.World) {
	width := s.Viewport.Width()

	for _, e := range query(w, s.entities) {
		t := ecs.Get[Transform](w, e)
		v := ecs.Get[Velocity](w, e)
		r := ecs.Get[CircleCollider](w, e).Radius

		if t.X < r {
			t.X = r
			v.X = 0
		} else if t.X > width-r {
			t.X = width - r
			v.X = 0
		}
	}
}
