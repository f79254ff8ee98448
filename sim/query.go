package sim

import "github.com/plus3/hopper/ecs"

// query runs a query built at system construction. Those are validated up
// front, so an error here is a programming mistake.
func query(w *ecs.World, q ecs.Query) []ecs.Entity {
	entities, err := w.Query(q)
	if err != nil {
		panic(err)
	}
	return entities
}

func mustSpawn(w *ecs.World, components ...any) ecs.Entity {
	e, err := w.Spawn(components...)
	if err != nil {
		panic(err)
	}
	return e
}
