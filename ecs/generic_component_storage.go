package ecs

import (
	"fmt"
	"reflect"
)

// ComponentType identifies a registered component type within a registry.
// Ids are dense, starting at zero, in registration order.
type ComponentType uint32

// ComponentRegistry is the explicit registration table of component types.
// It is filled once before any World is built from it; a World creates exactly
// one store per registered type and never adds stores later.
// Several worlds may share one registry.
type ComponentRegistry struct {
	ids       map[reflect.Type]ComponentType
	types     []reflect.Type
	factories []func() iComponentStorage
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		ids: make(map[reflect.Type]ComponentType),
	}
}

// RegisterComponent registers T with the registry and returns its id.
// Registering the same type again returns the existing id.
func RegisterComponent[T any](r *ComponentRegistry) ComponentType {
	t := reflect.TypeFor[T]()
	if id, ok := r.ids[t]; ok {
		return id
	}

	if t.Kind() == reflect.Ptr || t.Kind() == reflect.Map ||
		t.Kind() == reflect.Chan || t.Kind() == reflect.Func {
		panic("components cannot be pointers, maps, channels, or functions")
	}

	id := ComponentType(len(r.types))
	r.ids[t] = id
	r.types = append(r.types, t)
	r.factories = append(r.factories, func() iComponentStorage {
		return NewSparseSet[T]()
	})
	return id
}

// TypeOf returns the id registered for T.
func TypeOf[T any](r *ComponentRegistry) (ComponentType, error) {
	return r.lookup(reflect.TypeFor[T]())
}

// MustTypeOf is TypeOf that panics when T was never registered.
func MustTypeOf[T any](r *ComponentRegistry) ComponentType {
	id, err := TypeOf[T](r)
	if err != nil {
		panic(err)
	}
	return id
}

// Len returns the number of registered component types.
func (r *ComponentRegistry) Len() int {
	return len(r.types)
}

// Type returns the Go type registered under id, or nil.
func (r *ComponentRegistry) Type(id ComponentType) reflect.Type {
	if int(id) >= len(r.types) {
		return nil
	}
	return r.types[id]
}

func (r *ComponentRegistry) lookup(t reflect.Type) (ComponentType, error) {
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	id, ok := r.ids[t]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrMissingTypeTag, t)
	}
	return id, nil
}

// ComponentManager holds one store per registered component type for a
// single world and fans entity operations out to them.
type ComponentManager struct {
	registry *ComponentRegistry
	stores   []iComponentStorage
}

// NewComponentManager builds one empty store for every type in the registry.
func NewComponentManager(registry *ComponentRegistry) *ComponentManager {
	stores := make([]iComponentStorage, len(registry.factories))
	for i, factory := range registry.factories {
		stores[i] = factory()
	}
	return &ComponentManager{
		registry: registry,
		stores:   stores,
	}
}

// Registry returns the registry the stores were built from.
func (m *ComponentManager) Registry() *ComponentRegistry {
	return m.registry
}

// Add stores value for the entity in the store matching its dynamic type.
// value may be a T or a *T.
func (m *ComponentManager) Add(e Entity, value any) error {
	id, err := m.registry.lookup(reflect.TypeOf(value))
	if err != nil {
		return err
	}
	store := m.store(id)
	if store == nil || !store.addAny(e, value) {
		return fmt.Errorf("%w: %T", ErrMissingTypeTag, value)
	}
	return nil
}

// Remove deletes the entity's component of the given type.
func (m *ComponentManager) Remove(e Entity, id ComponentType) bool {
	store := m.store(id)
	if store == nil {
		return false
	}
	return store.Remove(e)
}

// Get returns a pointer to the entity's component as any, or nil.
func (m *ComponentManager) Get(e Entity, id ComponentType) any {
	store := m.store(id)
	if store == nil {
		return nil
	}
	return store.getAny(e)
}

// Has reports whether the entity has a component of the given type.
func (m *ComponentManager) Has(e Entity, id ComponentType) bool {
	store := m.store(id)
	return store != nil && store.Has(e)
}

// Len returns the number of entities holding a component of the given type.
func (m *ComponentManager) Len(id ComponentType) int {
	store := m.store(id)
	if store == nil {
		return 0
	}
	return store.Len()
}

// RemoveAll removes the entity from every store.
func (m *ComponentManager) RemoveAll(e Entity) {
	for _, store := range m.stores {
		store.Remove(e)
	}
}

// Clear empties every store.
func (m *ComponentManager) Clear() {
	for _, store := range m.stores {
		store.Clear()
	}
}

func (m *ComponentManager) store(id ComponentType) iComponentStorage {
	if int(id) >= len(m.stores) {
		return nil
	}
	return m.stores[id]
}

// Store returns the typed store for T, or nil if T was never registered.
func Store[T any](m *ComponentManager) *SparseSet[T] {
	id, err := TypeOf[T](m.registry)
	if err != nil {
		return nil
	}
	store, _ := m.store(id).(*SparseSet[T])
	return store
}
