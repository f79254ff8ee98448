package sim

import (
	"math"

	"github.com/plus3/hopper/collision"
	"github.com/plus3/hopper/ecs"
)

// EntityCollisionSystem resolves circle bodies against rectangle colliders
// and against each other. Rectangles are immovable. A contact is only
// resolved while the body moves into the surface, and only when the
// rectangle's SideMask enables the side that was hit, which is how one-way
// platforms let the player pass up through them.
type EntityCollisionSystem struct {
	// Friction scales tangential velocity on floor and ceiling contacts.
	Friction float64
	// GroundNormalY is the largest normal Y that counts as standing on a
	// surface.
	GroundNormalY float64

	// Contacts is the number of contacts resolved on the last tick.
	Contacts int

	bodies ecs.Query
	solids ecs.Query
}

func NewEntityCollisionSystem(types Types, tuning Tuning) *EntityCollisionSystem {
	return &EntityCollisionSystem{
		Friction:      tuning.Friction,
		GroundNormalY: tuning.GroundNormalY,
		bodies:        ecs.MustQuery(types.Transform, types.Velocity, types.CircleCollider),
		solids:        ecs.MustQuery(types.Transform, types.RectCollider),
	}
}

func (s *EntityCollisionSystem) Name() string { return "entity-collision" }

func (s *EntityCollisionSystem) Update(dt float64, w *ecs.World) {
	s.Contacts = 0
	bodies := query(w, s.bodies)
	solids := query(w, s.solids)

	for _, b := range bodies {
		t := ecs.Get[Transform](w, b)
		v := ecs.Get[Velocity](w, b)
		c := ecs.Get[CircleCollider](w, b)
		phys := ecs.Get[PlayerPhysics](w, b)

		for _, r := range solids {
			if r == b {
				continue
			}
			rect := ecs.Get[RectCollider](w, r)
			res := collision.CircleVsRect(circleShape(t, c), rectShape(ecs.Get[Transform](w, r), rect))
			if !res.Colliding || !rect.Sides.Has(sideFacing(res.Normal)) {
				continue
			}
			if s.resolveStatic(t, v, c, phys, res) {
				s.Contacts++
			}
		}
	}

	for i, a := range bodies {
		for _, b := range bodies[i+1:] {
			if s.resolvePair(w, a, b) {
				s.Contacts++
			}
		}
	}
}

func (s *EntityCollisionSystem) resolveStatic(t *Transform, v *Velocity, c *CircleCollider, phys *PlayerPhysics, res collision.Result) bool {
	n := res.Normal
	vn := v.X*n.X + v.Y*n.Y
	if vn >= 0 {
		return false
	}

	t.X += n.X * res.Depth
	t.Y += n.Y * res.Depth

	impulse := -(1 + c.Restitution) * vn
	v.X += n.X * impulse
	v.Y += n.Y * impulse

	if math.Abs(n.Y) > 0.7 {
		v.X *= s.Friction
	}
	if phys != nil && n.Y < s.GroundNormalY {
		phys.Grounded = true
	}
	return true
}

// resolvePair separates two equal-mass circles and exchanges the normal
// component of their relative velocity.
func (s *EntityCollisionSystem) resolvePair(w *ecs.World, a, b ecs.Entity) bool {
	ta, tb := ecs.Get[Transform](w, a), ecs.Get[Transform](w, b)
	ca, cb := ecs.Get[CircleCollider](w, a), ecs.Get[CircleCollider](w, b)

	res := collision.CircleVsCircle(circleShape(ta, ca), circleShape(tb, cb))
	if !res.Colliding {
		return false
	}

	va, vb := ecs.Get[Velocity](w, a), ecs.Get[Velocity](w, b)
	n := res.Normal
	vn := (vb.X-va.X)*n.X + (vb.Y-va.Y)*n.Y
	if vn >= 0 {
		return false
	}

	half := res.Depth / 2
	ta.X -= n.X * half
	ta.Y -= n.Y * half
	tb.X += n.X * half
	tb.Y += n.Y * half

	j := -(1 + math.Min(ca.Restitution, cb.Restitution)) * vn / 2
	va.X -= n.X * j
	va.Y -= n.Y * j
	vb.X += n.X * j
	vb.Y += n.Y * j
	return true
}
