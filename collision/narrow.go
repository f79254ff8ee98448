package collision

import "math"

// CircleVsCircle tests two circles. Normal is the unit vector from a's
// center toward b's; coincident centers use (1, 0).
func CircleVsCircle(a, b Circle) Result {
	delta := b.Center().Sub(a.Center())
	radii := a.R + b.R

	distSq := delta.LengthSq()
	if distSq >= radii*radii {
		return noCollision
	}

	dist := math.Sqrt(distSq)
	normal := Vec2{1, 0}
	if dist > 0 {
		normal = delta.Scale(1 / dist)
	}

	return Result{
		Colliding: true,
		Depth:     radii - dist,
		Normal:    normal,
		Contact:   a.Center().Add(normal.Scale(a.R)),
	}
}

// CircleVsRect tests a circle against a rectangle. Normal is the rectangle's
// surface normal at the contact, pointing toward the circle center, so moving
// the circle by Normal*Depth separates the shapes. A center inside the
// rectangle is pushed toward the nearest edge.
func CircleVsRect(c Circle, r Rect) Result {
	closest := Vec2{
		X: clamp(c.X, r.X, r.Right()),
		Y: clamp(c.Y, r.Y, r.Bottom()),
	}

	delta := c.Center().Sub(closest)
	distSq := delta.LengthSq()
	if distSq >= c.R*c.R {
		return noCollision
	}

	if distSq > 0 {
		dist := math.Sqrt(distSq)
		return Result{
			Colliding: true,
			Depth:     c.R - dist,
			Normal:    delta.Scale(1 / dist),
			Contact:   closest,
		}
	}

	return circleInsideRect(c, r)
}

// circleInsideRect resolves a circle whose center lies within the rectangle.
// Ties between edges go to left, right, top, bottom in that order.
func circleInsideRect(c Circle, r Rect) Result {
	edges := [4]struct {
		dist    float64
		normal  Vec2
		contact Vec2
	}{
		{c.X - r.X, Vec2{-1, 0}, Vec2{r.X, c.Y}},
		{r.Right() - c.X, Vec2{1, 0}, Vec2{r.Right(), c.Y}},
		{c.Y - r.Y, Vec2{0, -1}, Vec2{c.X, r.Y}},
		{r.Bottom() - c.Y, Vec2{0, 1}, Vec2{c.X, r.Bottom()}},
	}

	nearest := 0
	for i := 1; i < len(edges); i++ {
		if edges[i].dist < edges[nearest].dist {
			nearest = i
		}
	}

	edge := edges[nearest]
	return Result{
		Colliding: true,
		Depth:     c.R + edge.dist,
		Normal:    edge.normal,
		Contact:   edge.contact,
	}
}

// RectVsRect tests two rectangles. The normal lies on the axis of least
// overlap and points from a toward b.
func RectVsRect(a, b Rect) Result {
	overlapX := math.Min(a.Right(), b.Right()) - math.Max(a.X, b.X)
	overlapY := math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Y, b.Y)
	if overlapX <= 0 || overlapY <= 0 {
		return noCollision
	}

	ca, cb := a.Center(), b.Center()
	contact := Vec2{
		X: math.Max(a.X, b.X) + overlapX/2,
		Y: math.Max(a.Y, b.Y) + overlapY/2,
	}

	if overlapX < overlapY {
		normal := Vec2{1, 0}
		if cb.X < ca.X {
			normal = Vec2{-1, 0}
		}
		return Result{Colliding: true, Depth: overlapX, Normal: normal, Contact: contact}
	}

	normal := Vec2{0, 1}
	if cb.Y < ca.Y {
		normal = Vec2{0, -1}
	}
	return Result{Colliding: true, Depth: overlapY, Normal: normal, Contact: contact}
}

// Check dispatches on the shape pair. For a rectangle followed by a circle the
// circle-vs-rectangle result is reused with its normal negated.
func Check(a, b Shape) Result {
	switch sa := a.(type) {
	case Circle:
		switch sb := b.(type) {
		case Circle:
			return CircleVsCircle(sa, sb)
		case Rect:
			return CircleVsRect(sa, sb)
		}
	case Rect:
		switch sb := b.(type) {
		case Circle:
			res := CircleVsRect(sb, sa)
			if res.Colliding {
				res.Normal = res.Normal.Neg()
			}
			return res
		case Rect:
			return RectVsRect(sa, sb)
		}
	}
	return noCollision
}
