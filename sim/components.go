// Package sim is the platformer simulation that runs on the ecs runtime:
// the component types, the fixed-order system pipeline and procedural
// platform generation.
package sim

import (
	"image/color"

	"github.com/plus3/hopper/collision"
	"github.com/plus3/hopper/ecs"
)

// Transform is an entity's position. For circles it is the center, for
// rectangles the top-left corner.
type Transform struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type CircleCollider struct {
	Radius      float64
	Restitution float64
}

// SideMask selects which rectangle sides stop a circle.
type SideMask uint8

const (
	SideLeft SideMask = 1 << iota
	SideRight
	SideTop
	SideBottom

	SideNone SideMask = 0
	SideAll           = SideLeft | SideRight | SideTop | SideBottom
)

// Has reports whether every side in o is set.
func (m SideMask) Has(o SideMask) bool {
	return m&o == o
}

// sideFacing maps a surface normal to the rectangle side it belongs to,
// using the dominant axis.
func sideFacing(n collision.Vec2) SideMask {
	if abs(n.Y) >= abs(n.X) {
		if n.Y < 0 {
			return SideTop
		}
		return SideBottom
	}
	if n.X < 0 {
		return SideLeft
	}
	return SideRight
}

type RectCollider struct {
	Width, Height float64
	Sides         SideMask
}

// PlayerPhysics is the movement state of a player-controlled body.
type PlayerPhysics struct {
	Gravity      float64
	JumpVelocity float64
	Grounded     bool
}

// MaxSpeed caps the horizontal speed. Vertical speed is never capped.
type MaxSpeed struct {
	X float64
}

// Platform marks rectangles that count as ground for the ground probe and
// that the spawner owns.
type Platform struct{}

// InputControlled marks the entity driven by the input controller.
type InputControlled struct{}

// CameraTarget marks the entity the camera follows and the spawner tracks.
type CameraTarget struct{}

type Renderable struct {
	Color color.RGBA
	Layer int
}

// Types holds the component type ids of a registry prepared by
// RegisterComponents.
type Types struct {
	Transform       ecs.ComponentType
	Velocity        ecs.ComponentType
	CircleCollider  ecs.ComponentType
	RectCollider    ecs.ComponentType
	PlayerPhysics   ecs.ComponentType
	MaxSpeed        ecs.ComponentType
	Platform        ecs.ComponentType
	InputControlled ecs.ComponentType
	CameraTarget    ecs.ComponentType
	Renderable      ecs.ComponentType
}

// RegisterComponents registers every simulation component type.
func RegisterComponents(registry *ecs.ComponentRegistry) Types {
	return Types{
		Transform:       ecs.RegisterComponent[Transform](registry),
		Velocity:        ecs.RegisterComponent[Velocity](registry),
		CircleCollider:  ecs.RegisterComponent[CircleCollider](registry),
		RectCollider:    ecs.RegisterComponent[RectCollider](registry),
		PlayerPhysics:   ecs.RegisterComponent[PlayerPhysics](registry),
		MaxSpeed:        ecs.RegisterComponent[MaxSpeed](registry),
		Platform:        ecs.RegisterComponent[Platform](registry),
		InputControlled: ecs.RegisterComponent[InputControlled](registry),
		CameraTarget:    ecs.RegisterComponent[CameraTarget](registry),
		Renderable:      ecs.RegisterComponent[Renderable](registry),
	}
}

func circleShape(t *Transform, c *CircleCollider) collision.Circle {
	return collision.Circle{X: t.X, Y: t.Y, R: c.Radius}
}

func rectShape(t *Transform, r *RectCollider) collision.Rect {
	return collision.Rect{X: t.X, Y: t.Y, W: r.Width, H: r.Height}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
