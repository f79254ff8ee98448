package ecs

import "fmt"

// World is the single entry point to an ECS instance: it pairs an
// EntityManager with the per-world component stores.
type World struct {
	entities   *EntityManager
	components *ComponentManager
}

// NewWorld creates a world with one store per type in the registry. Register
// every component type before calling NewWorld.
func NewWorld(registry *ComponentRegistry) *World {
	return &World{
		entities:   NewEntityManager(),
		components: NewComponentManager(registry),
	}
}

// Registry returns the component registry this world was built from.
func (w *World) Registry() *ComponentRegistry {
	return w.components.registry
}

// Components exposes the world's component stores.
func (w *World) Components() *ComponentManager {
	return w.components
}

// CreateEntity issues a new live entity with no components.
func (w *World) CreateEntity() Entity {
	return w.entities.Create()
}

// Spawn creates an entity and adds each component to it.
func (w *World) Spawn(components ...any) (Entity, error) {
	e := w.entities.Create()
	for _, c := range components {
		if err := w.components.Add(e, c); err != nil {
			w.DestroyEntity(e)
			return 0, err
		}
	}
	return e, nil
}

// DestroyEntity removes every component of e and then marks it dead.
// Components go first so no query can observe a dead entity that still owns
// data. Returns false if e was not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.IsAlive(e) {
		return false
	}
	w.components.RemoveAll(e)
	return w.entities.Destroy(e)
}

// IsAlive reports whether e is a live entity.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.IsAlive(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.entities.Len()
}

// AddComponent attaches value (a registered T or *T) to e, replacing any
// existing component of that type.
func (w *World) AddComponent(e Entity, value any) error {
	if !w.entities.IsAlive(e) {
		return fmt.Errorf("%w: %d", ErrEntityNotAlive, e)
	}
	return w.components.Add(e, value)
}

// RemoveComponent detaches the component of the given type from e.
func (w *World) RemoveComponent(e Entity, id ComponentType) bool {
	return w.components.Remove(e, id)
}

// GetComponent returns a pointer to e's component of the given type as any,
// or nil.
func (w *World) GetComponent(e Entity, id ComponentType) any {
	return w.components.Get(e, id)
}

// HasComponent reports whether e has a component of the given type.
func (w *World) HasComponent(e Entity, id ComponentType) bool {
	return w.components.Has(e, id)
}

// Query returns every live entity matching q.
func (w *World) Query(q Query) ([]Entity, error) {
	return Execute(w.components, q)
}

// Count returns the number of entities matching q.
func (w *World) Count(q Query) (int, error) {
	return Count(w.components, q)
}

// HasMatches reports whether any entity matches q.
func (w *World) HasMatches(q Query) (bool, error) {
	return HasMatches(w.components, q)
}

// Clear destroys every entity and resets id issuance to zero.
func (w *World) Clear() {
	w.components.Clear()
	w.entities.Clear()
}

// Add attaches a typed component to e.
func Add[T any](w *World, e Entity, value T) error {
	if !w.entities.IsAlive(e) {
		return fmt.Errorf("%w: %d", ErrEntityNotAlive, e)
	}
	store := Store[T](w.components)
	if store == nil {
		return fmt.Errorf("%w: %T", ErrMissingTypeTag, value)
	}
	store.Add(e, value)
	return nil
}

// Get returns a pointer to e's component of type T, or nil. The pointer may be
// mutated in place; it is invalidated by the next structural change to the
// T store.
func Get[T any](w *World, e Entity) *T {
	store := Store[T](w.components)
	if store == nil {
		return nil
	}
	return store.Get(e)
}

// Has reports whether e has a component of type T.
func Has[T any](w *World, e Entity) bool {
	store := Store[T](w.components)
	return store != nil && store.Has(e)
}

// Remove detaches e's component of type T.
func Remove[T any](w *World, e Entity) bool {
	store := Store[T](w.components)
	return store != nil && store.Remove(e)
}
