package ecs

const (
	tombstone       = -1
	initialSparsity = 64
)

// SparseSet stores one component type for a set of entities. Components live
// in a packed dense array so iteration touches contiguous memory, while the
// sparse array maps an entity id to its dense slot in O(1).
//
// Pointers returned by Get stay valid only until the next Add of a new entity
// or Remove on the same set, since both may move payload slots.
type SparseSet[T any] struct {
	sparse  []int32
	dense   []Entity
	payload []T
}

// NewSparseSet creates an empty sparse set.
func NewSparseSet[T any]() *SparseSet[T] {
	return &SparseSet[T]{}
}

// Add stores value for the entity, replacing any existing value.
func (s *SparseSet[T]) Add(e Entity, value T) {
	if idx, ok := s.index(e); ok {
		s.payload[idx] = value
		return
	}

	s.grow(e)
	s.sparse[e] = int32(len(s.dense))
	s.dense = append(s.dense, e)
	s.payload = append(s.payload, value)
}

// Remove deletes the entity's value by moving the last slot into its place.
// Returns false if the entity had no value.
func (s *SparseSet[T]) Remove(e Entity) bool {
	idx, ok := s.index(e)
	if !ok {
		return false
	}

	last := len(s.dense) - 1
	if idx != last {
		moved := s.dense[last]
		s.dense[idx] = moved
		s.payload[idx] = s.payload[last]
		s.sparse[moved] = int32(idx)
	}

	var zero T
	s.payload[last] = zero
	s.dense = s.dense[:last]
	s.payload = s.payload[:last]
	s.sparse[e] = tombstone
	return true
}

// Get returns a pointer to the entity's value, or nil if absent.
func (s *SparseSet[T]) Get(e Entity) *T {
	idx, ok := s.index(e)
	if !ok {
		return nil
	}
	return &s.payload[idx]
}

// Has reports whether the entity has a value. The dense back-reference is
// checked as well so a stale sparse slot never reads as present.
func (s *SparseSet[T]) Has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

// Len returns the number of stored values.
func (s *SparseSet[T]) Len() int {
	return len(s.dense)
}

// Entities returns a copy of the packed entity list. Callers may create or
// destroy entities while ranging over the result.
func (s *SparseSet[T]) Entities() []Entity {
	out := make([]Entity, len(s.dense))
	copy(out, s.dense)
	return out
}

// Each calls fn for every stored entity in dense order until fn returns false.
// fn must not add or remove entries of this set.
func (s *SparseSet[T]) Each(fn func(e Entity, value *T) bool) {
	for i := range s.dense {
		if !fn(s.dense[i], &s.payload[i]) {
			return
		}
	}
}

// Clear drops every value.
func (s *SparseSet[T]) Clear() {
	s.sparse = nil
	s.dense = s.dense[:0]
	clear(s.payload)
	s.payload = s.payload[:0]
}

func (s *SparseSet[T]) index(e Entity) (int, bool) {
	if int(e) >= len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[e]
	if idx == tombstone || int(idx) >= len(s.dense) || s.dense[idx] != e {
		return 0, false
	}
	return int(idx), true
}

// grow extends the sparse array so e is addressable, doubling to amortise.
func (s *SparseSet[T]) grow(e Entity) {
	if int(e) < len(s.sparse) {
		return
	}

	oldLen := len(s.sparse)
	newLen := max(oldLen*2, int(e)+1, initialSparsity)

	sparse := make([]int32, newLen)
	copy(sparse, s.sparse)
	for i := oldLen; i < newLen; i++ {
		sparse[i] = tombstone
	}
	s.sparse = sparse
}
