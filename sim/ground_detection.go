package sim

import (
	"github.com/plus3/hopper/collision"
	"github.com/plus3/hopper/ecs"
)

// Probe records one ground raycast, kept for the debug snapshot.
type Probe struct {
	Entity ecs.Entity
	Ray    collision.Ray
	Length float64
	Hit    collision.RayHit
}

// GroundDetectionSystem casts a short ray straight down from each player and
// overwrites Grounded with the result. It runs after collision resolution and
// its answer is the one the next tick acts on.
type GroundDetectionSystem struct {
	Probe        float64
	NormalY      float64
	MinVelocityY float64

	// Probes holds the raycasts made on the last tick.
	Probes []Probe

	bodies      ecs.Query
	platforms   ecs.Query
	collidables []collision.Collidable
}

func NewGroundDetectionSystem(types Types, tuning Tuning) *GroundDetectionSystem {
	return &GroundDetectionSystem{
		Probe:        tuning.GroundProbe,
		NormalY:      tuning.GroundNormalY,
		MinVelocityY: tuning.GroundMinVelocityY,
		bodies:       ecs.MustQuery(types.Transform, types.Velocity, types.CircleCollider, types.PlayerPhysics),
		platforms:    ecs.MustQuery(types.Transform, types.RectCollider, types.Platform),
	}
}

func (s *GroundDetectionSystem) Name() string { return "ground-detection" }

func (s *GroundDetectionSystem) Update(dt float64, w *ecs.World) {
	s.Probes = s.Probes[:0]
	s.collidables = s.collidables[:0]
	for _, p := range query(w, s.platforms) {
		s.collidables = append(s.collidables, collision.Collidable{
			Shape: rectShape(ecs.Get[Transform](w, p), ecs.Get[RectCollider](w, p)),
			Ref:   uint32(p),
		})
	}

	for _, e := range query(w, s.bodies) {
		t := ecs.Get[Transform](w, e)
		v := ecs.Get[Velocity](w, e)
		phys := ecs.Get[PlayerPhysics](w, e)

		ray := collision.Ray{Origin: collision.Vec2{X: t.X, Y: t.Y}, Dir: collision.Vec2{Y: 1}}
		length := ecs.Get[CircleCollider](w, e).Radius + s.Probe
		hit := collision.Raycast(ray, length, s.collidables)

		phys.Grounded = hit.Hit && hit.Normal.Y < s.NormalY && v.Y >= s.MinVelocityY
		s.Probes = append(s.Probes, Probe{Entity: e, Ray: ray, Length: length, Hit: hit})
	}
}
