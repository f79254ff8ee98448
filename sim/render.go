package sim

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/plus3/hopper/collision"
	"github.com/plus3/hopper/ecs"
)

// Drawable is one entity's renderable shape in world coordinates.
type Drawable struct {
	Entity ecs.Entity
	Shape  collision.Shape
	Color  color.RGBA
	Layer  int
}

// Renderables lists every entity with a Transform, a Renderable and a
// collider, ordered by layer and then entity id.
func Renderables(w *ecs.World, types Types) []Drawable {
	entities := query(w, ecs.MustQuery(types.Transform, types.Renderable))

	drawables := make([]Drawable, 0, len(entities))
	for _, e := range entities {
		t := ecs.Get[Transform](w, e)
		r := ecs.Get[Renderable](w, e)

		var shape collision.Shape
		if c := ecs.Get[CircleCollider](w, e); c != nil {
			shape = circleShape(t, c)
		} else if rc := ecs.Get[RectCollider](w, e); rc != nil {
			shape = rectShape(t, rc)
		} else {
			continue
		}

		drawables = append(drawables, Drawable{Entity: e, Shape: shape, Color: r.Color, Layer: r.Layer})
	}

	slices.SortFunc(drawables, func(a, b Drawable) int {
		return cmp.Or(cmp.Compare(a.Layer, b.Layer), cmp.Compare(a.Entity, b.Entity))
	})
	return drawables
}
