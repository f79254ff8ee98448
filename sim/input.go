package sim

import "github.com/plus3/hopper/ecs"

// InputSystem applies the controller's movement intent to input-controlled
// bodies: horizontal acceleration always, a jump only while grounded.
type InputSystem struct {
	Input    InputController
	entities ecs.Query
}

func NewInputSystem(types Types, input InputController) *InputSystem {
	return &InputSystem{
		Input:    input,
		entities: ecs.MustQuery(types.Velocity, types.PlayerPhysics, types.InputControlled),
	}
}

func (s *InputSystem) Name() string { return "input" }

func (s *InputSystem) Update(dt float64, w *ecs.World) {
	if s.Input == nil {
		return
	}
	move := s.Input.MovementInput()

	for _, e := range query(w, s.entities) {
		vel := ecs.Get[Velocity](w, e)
		phys := ecs.Get[PlayerPhysics](w, e)

		vel.X += move.X * dt
		if move.Y < 0 && phys.Grounded {
			vel.Y = -phys.JumpVelocity
			phys.Grounded = false
		}
	}
}
