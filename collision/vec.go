// Package collision implements narrow-phase intersection tests between
// circles, axis-aligned rectangles and rays. Everything here is a pure
// function of its inputs; nothing knows about entities or worlds.
package collision

import "math"

// Vec2 is a 2D vector. Screen convention: +Y points down.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Dot returns the dot product.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// LengthSq returns the squared length.
func (v Vec2) LengthSq() float64 { return v.X*v.X + v.Y*v.Y }

// Length returns the Euclidean length.
func (v Vec2) Length() float64 { return math.Sqrt(v.LengthSq()) }

// Normalize returns the unit vector in v's direction, or the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
