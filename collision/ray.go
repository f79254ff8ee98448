package collision

import "math"

const faceEpsilon = 1e-4

// Ray starts at Origin and extends along Dir. Dir need not be normalized.
type Ray struct {
	Origin Vec2
	Dir    Vec2
}

// At returns the point at distance t along the normalized direction.
func (r Ray) At(t float64) Vec2 {
	return r.Origin.Add(r.Dir.Normalize().Scale(t))
}

// RayHit describes a raycast result. Ref identifies the collidable that was
// struck and is only meaningful when HasRef is set.
type RayHit struct {
	Hit      bool
	Distance float64
	Point    Vec2
	Normal   Vec2
	Ref      uint32
	HasRef   bool
}

// NoHit is returned when nothing intersects within range.
var NoHit = RayHit{}

// Collidable pairs a shape with the caller's identifier for it.
type Collidable struct {
	Shape Shape
	Ref   uint32
}

// RayVsCircle returns the nearest intersection in [0, maxDistance].
func RayVsCircle(ray Ray, maxDistance float64, c Circle) RayHit {
	dir := ray.Dir.Normalize()
	if dir == (Vec2{}) || c.R <= 0 {
		return NoHit
	}

	// |O + tD - C|^2 = r^2 with |D| = 1 reduces to t^2 + 2bt + k = 0.
	m := ray.Origin.Sub(c.Center())
	b := m.Dot(dir)
	k := m.LengthSq() - c.R*c.R

	disc := b*b - k
	if disc < 0 {
		return NoHit
	}

	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 || t > maxDistance {
		return NoHit
	}

	point := ray.Origin.Add(dir.Scale(t))
	return RayHit{
		Hit:      true,
		Distance: t,
		Point:    point,
		Normal:   point.Sub(c.Center()).Scale(1 / c.R),
	}
}

// RayVsRect intersects the ray with the rectangle using the slab method.
// A ray starting inside the rectangle hits at distance zero.
func RayVsRect(ray Ray, maxDistance float64, r Rect) RayHit {
	dir := ray.Dir.Normalize()
	if dir == (Vec2{}) {
		return NoHit
	}

	tmin, tmax := math.Inf(-1), math.Inf(1)

	for _, slab := range [2]struct{ origin, dir, lo, hi float64 }{
		{ray.Origin.X, dir.X, r.X, r.Right()},
		{ray.Origin.Y, dir.Y, r.Y, r.Bottom()},
	} {
		if slab.dir == 0 {
			if slab.origin < slab.lo || slab.origin > slab.hi {
				return NoHit
			}
			continue
		}
		t1 := (slab.lo - slab.origin) / slab.dir
		t2 := (slab.hi - slab.origin) / slab.dir
		tmin = math.Max(tmin, math.Min(t1, t2))
		tmax = math.Min(tmax, math.Max(t1, t2))
	}

	t := math.Max(tmin, 0)
	if tmax < t || t > maxDistance {
		return NoHit
	}

	point := ray.Origin.Add(dir.Scale(t))
	return RayHit{
		Hit:      true,
		Distance: t,
		Point:    point,
		Normal:   faceNormal(point, r),
	}
}

// faceNormal picks the edge the point lies on. Points strictly inside the
// rectangle get the zero vector.
func faceNormal(p Vec2, r Rect) Vec2 {
	switch {
	case math.Abs(p.X-r.X) < faceEpsilon:
		return Vec2{-1, 0}
	case math.Abs(p.X-r.Right()) < faceEpsilon:
		return Vec2{1, 0}
	case math.Abs(p.Y-r.Y) < faceEpsilon:
		return Vec2{0, -1}
	case math.Abs(p.Y-r.Bottom()) < faceEpsilon:
		return Vec2{0, 1}
	}
	return Vec2{}
}

// RayVsShape dispatches on the shape type.
func RayVsShape(ray Ray, maxDistance float64, s Shape) RayHit {
	switch shape := s.(type) {
	case Circle:
		return RayVsCircle(ray, maxDistance, shape)
	case Rect:
		return RayVsRect(ray, maxDistance, shape)
	}
	return NoHit
}

// Raycast returns the closest hit among collidables, or NoHit.
func Raycast(ray Ray, maxDistance float64, collidables []Collidable) RayHit {
	best := NoHit
	for _, c := range collidables {
		hit := RayVsShape(ray, maxDistance, c.Shape)
		if !hit.Hit {
			continue
		}
		if !best.Hit || hit.Distance < best.Distance {
			hit.Ref = c.Ref
			hit.HasRef = true
			best = hit
		}
	}
	return best
}
