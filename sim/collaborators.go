package sim

import (
	"math"

	"github.com/plus3/hopper/collision"
)

// InputController supplies the player's movement intent each tick. X is a
// horizontal acceleration; a negative Y asks for a jump.
type InputController interface {
	MovementInput() collision.Vec2
}

// Viewport reports the visible area size.
type Viewport interface {
	Width() float64
	Height() float64
}

// Camera follows a target height. Position is the camera's top-left corner in
// world space.
type Camera interface {
	Update(dt, targetY float64)
	Position() collision.Vec2
}

// FixedViewport is a Viewport of constant size.
type FixedViewport struct {
	W, H float64
}

func (v FixedViewport) Width() float64  { return v.W }
func (v FixedViewport) Height() float64 { return v.H }

// ScriptedInput returns whatever was last stored in Movement.
type ScriptedInput struct {
	Movement collision.Vec2
}

func (s *ScriptedInput) MovementInput() collision.Vec2 {
	return s.Movement
}

// FollowCamera eases toward keeping the target at Anchor (a fraction of the
// viewport height from the top). It only ever scrolls upward.
type FollowCamera struct {
	Viewport  Viewport
	Anchor    float64
	Smoothing float64

	pos collision.Vec2
}

// NewFollowCamera creates a camera whose top edge starts at y.
func NewFollowCamera(viewport Viewport, y float64) *FollowCamera {
	return &FollowCamera{
		Viewport:  viewport,
		Anchor:    0.4,
		Smoothing: 5,
		pos:       collision.Vec2{Y: y},
	}
}

func (c *FollowCamera) Update(dt, targetY float64) {
	desired := targetY - c.Viewport.Height()*c.Anchor
	if desired >= c.pos.Y {
		return
	}
	blend := 1 - math.Exp(-c.Smoothing*dt)
	c.pos.Y += (desired - c.pos.Y) * blend
}

func (c *FollowCamera) Position() collision.Vec2 {
	return c.pos
}

// Reset moves the camera's top edge back to y.
func (c *FollowCamera) Reset(y float64) {
	c.pos = collision.Vec2{Y: y}
}
