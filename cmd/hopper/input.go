package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/hopper/collision"
)

// keyboard maps arrows or A/D to horizontal acceleration and up, W or space
// to a jump request.
type keyboard struct {
	acceleration float64
}

func (k keyboard) MovementInput() collision.Vec2 {
	var move collision.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		move.X -= k.acceleration
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		move.X += k.acceleration
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace) {
		move.Y = -1
	}
	return move
}
