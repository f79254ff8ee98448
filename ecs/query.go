package ecs

import (
	"fmt"

	"github.com/kelindar/bitmap"
)

// Query selects the entities that have every With component and none of the
// Without components. Queries are plain values and are usually built once when
// a system is constructed.
type Query struct {
	with    bitmap.Bitmap
	without bitmap.Bitmap
}

// NewQuery creates a query requiring all of the given component types.
func NewQuery(with ...ComponentType) Query {
	var q Query
	for _, id := range with {
		q.with.Set(uint32(id))
	}
	return q
}

// Without returns a copy of the query that also excludes the given types.
func (q Query) Without(types ...ComponentType) Query {
	out := Query{
		with:    append(bitmap.Bitmap(nil), q.with...),
		without: append(bitmap.Bitmap(nil), q.without...),
	}
	for _, id := range types {
		out.without.Set(uint32(id))
	}
	return out
}

// With returns the required component types in ascending order.
func (q Query) With() []ComponentType {
	return typesOf(q.with)
}

// Excluded returns the excluded component types in ascending order.
func (q Query) Excluded() []ComponentType {
	return typesOf(q.without)
}

// Validate reports ErrInvalidQuery when the With set is empty.
func (q Query) Validate() error {
	if q.with.Count() == 0 {
		return ErrInvalidQuery
	}
	return nil
}

// MustQuery builds a query and panics if it has no With components.
func MustQuery(with ...ComponentType) Query {
	q := NewQuery(with...)
	if err := q.Validate(); err != nil {
		panic(err)
	}
	return q
}

// Matches reports whether the entity satisfies the query.
func (q Query) Matches(m *ComponentManager, e Entity) bool {
	matched := true
	q.with.Range(func(id uint32) {
		if matched && !m.Has(e, ComponentType(id)) {
			matched = false
		}
	})
	if !matched {
		return false
	}
	q.without.Range(func(id uint32) {
		if matched && m.Has(e, ComponentType(id)) {
			matched = false
		}
	})
	return matched
}

func (q Query) String() string {
	return fmt.Sprintf("Query{with: %v, without: %v}", q.With(), q.Excluded())
}

func typesOf(bm bitmap.Bitmap) []ComponentType {
	types := make([]ComponentType, 0, bm.Count())
	bm.Range(func(id uint32) {
		types = append(types, ComponentType(id))
	})
	return types
}

// smallestStore returns the With store holding the fewest entities. ok is
// false when a required store is missing or empty, in which case nothing can
// match.
func (q Query) smallestStore(m *ComponentManager) (iComponentStorage, bool) {
	var smallest iComponentStorage
	ok := true
	q.with.Range(func(id uint32) {
		if !ok {
			return
		}
		store := m.store(ComponentType(id))
		if store == nil || store.Len() == 0 {
			ok = false
			return
		}
		if smallest == nil || store.Len() < smallest.Len() {
			smallest = store
		}
	})
	return smallest, ok && smallest != nil
}

// Execute returns every entity matching the query. Only the smallest required
// store is scanned, so the cost is bounded by the rarest With component.
func Execute(m *ComponentManager, q Query) ([]Entity, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	candidates, ok := q.smallestStore(m)
	if !ok {
		return nil, nil
	}

	var result []Entity
	for _, e := range candidates.Entities() {
		if q.Matches(m, e) {
			result = append(result, e)
		}
	}
	return result, nil
}

// Count returns the number of matching entities without building a result.
func Count(m *ComponentManager, q Query) (int, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}

	candidates, ok := q.smallestStore(m)
	if !ok {
		return 0, nil
	}

	count := 0
	candidates.eachEntity(func(e Entity) bool {
		if q.Matches(m, e) {
			count++
		}
		return true
	})
	return count, nil
}

// HasMatches reports whether at least one entity matches, stopping at the
// first hit.
func HasMatches(m *ComponentManager, q Query) (bool, error) {
	if err := q.Validate(); err != nil {
		return false, err
	}

	candidates, ok := q.smallestStore(m)
	if !ok {
		return false, nil
	}

	found := false
	candidates.eachEntity(func(e Entity) bool {
		found = q.Matches(m, e)
		return !found
	})
	return found, nil
}
