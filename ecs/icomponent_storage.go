package ecs

// iComponentStorage is a type-erased view of a SparseSet so the component
// table can fan out operations that do not need the concrete type.
type iComponentStorage interface {
	Has(e Entity) bool
	Remove(e Entity) bool
	Len() int
	Entities() []Entity
	Clear()

	addAny(e Entity, value any) bool
	getAny(e Entity) any
	eachEntity(fn func(e Entity) bool)
}

func (s *SparseSet[T]) addAny(e Entity, value any) bool {
	switch v := value.(type) {
	case T:
		s.Add(e, v)
	case *T:
		if v == nil {
			return false
		}
		s.Add(e, *v)
	default:
		return false
	}
	return true
}

func (s *SparseSet[T]) getAny(e Entity) any {
	if ptr := s.Get(e); ptr != nil {
		return ptr
	}
	return nil
}

func (s *SparseSet[T]) eachEntity(fn func(e Entity) bool) {
	for _, e := range s.dense {
		if !fn(e) {
			return
		}
	}
}
