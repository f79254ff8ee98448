package ecs

import "github.com/kamstrup/intmap"

// Entity is an opaque handle. Ids are issued in increasing order and never
// reused for the lifetime of a World (until Clear).
type Entity uint32

// EntityManager issues entity ids and tracks which ones are alive.
// It has no knowledge of components; the World removes those on destroy.
type EntityManager struct {
	nextId Entity
	alive  *intmap.Set[Entity]
}

// NewEntityManager creates an empty entity manager.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		alive: intmap.NewSet[Entity](256),
	}
}

// Create issues the next entity id and marks it alive.
func (m *EntityManager) Create() Entity {
	e := m.nextId
	m.nextId++
	m.alive.Add(e)
	return e
}

// Destroy marks the entity as dead. Returns false if it was not alive.
func (m *EntityManager) Destroy(e Entity) bool {
	return m.alive.Del(e)
}

// IsAlive reports whether the entity was created and not yet destroyed.
func (m *EntityManager) IsAlive(e Entity) bool {
	return m.alive.Has(e)
}

// Len returns the number of live entities.
func (m *EntityManager) Len() int {
	return m.alive.Len()
}

// Issued returns how many ids have been handed out since the last Clear.
func (m *EntityManager) Issued() int {
	return int(m.nextId)
}

// Clear resets the id counter and forgets every live entity. All previously
// issued ids must be treated as invalid afterwards.
func (m *EntityManager) Clear() {
	m.nextId = 0
	m.alive.Clear()
}
