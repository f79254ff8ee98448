package collision

// Shape is the closed set of collision shapes: Circle and Rect.
type Shape interface {
	Bounds() Rect
	isShape()
}

// Circle is centered at (X, Y) with radius R.
type Circle struct {
	X, Y, R float64
}

// Rect is axis-aligned with its top-left corner at (X, Y).
type Rect struct {
	X, Y, W, H float64
}

func (Circle) isShape() {}
func (Rect) isShape()   {}

// Center returns the circle's center.
func (c Circle) Center() Vec2 { return Vec2{c.X, c.Y} }

// Bounds returns the circle's bounding box.
func (c Circle) Bounds() Rect {
	return Rect{X: c.X - c.R, Y: c.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}

// Bounds returns the rectangle itself.
func (r Rect) Bounds() Rect { return r }

// Center returns the rectangle's center.
func (r Rect) Center() Vec2 { return Vec2{r.X + r.W/2, r.Y + r.H/2} }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether p lies inside or on the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Result describes a shape-vs-shape test. Normal and Depth are zero when
// Colliding is false.
type Result struct {
	Colliding bool
	Depth     float64
	Normal    Vec2
	Contact   Vec2
}

var noCollision = Result{}
