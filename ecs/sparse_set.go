package ecs

// componentStore is the type-independent view of a SparseSet used when an
// entity is destroyed or the world is cleared.
type componentStore interface {
	remove(e Entity) bool
	reset()
	len() int
}

// SparseSet is a dense, cache-friendly arena for one component kind, indexed
// by the entity id. Iteration follows insertion order, except that a removal
// moves the last element into the freed slot.
type SparseSet[T any] struct {
	denseEntities []Entity
	denseValues   []*T
	sparse        []int
}

// Has returns true if the entity handle (id and generation) is in the set.
func (s *SparseSet[T]) Has(e Entity) bool {
	idx, ok := s.index(e)
	return ok && idx >= 0
}

// Get returns the component for e, or nil.
func (s *SparseSet[T]) Get(e Entity) *T {
	idx, ok := s.index(e)
	if !ok {
		return nil
	}
	return s.denseValues[idx]
}

// Set inserts or updates the component for e.
func (s *SparseSet[T]) Set(e Entity, v *T) {
	id := int(e.id())
	if id <= 0 {
		return
	}
	for len(s.sparse) < id {
		s.sparse = append(s.sparse, -1)
	}
	if idx := s.sparse[id-1]; idx >= 0 {
		s.denseEntities[idx] = e
		s.denseValues[idx] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseEntities) - 1
}

// Remove deletes the component for e if present.
func (s *SparseSet[T]) Remove(e Entity) bool {
	idx, ok := s.index(e)
	if !ok {
		return false
	}
	last := len(s.denseEntities) - 1
	moved := s.denseEntities[last]

	s.denseEntities[idx] = moved
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[moved.id()-1] = idx

	s.denseEntities[last] = 0
	s.denseValues[last] = nil
	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[e.id()-1] = -1
	return true
}

// Entities returns the dense entity list. Callers must not modify it.
func (s *SparseSet[T]) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.denseEntities
}

// Values returns the dense component list, parallel to Entities.
func (s *SparseSet[T]) Values() []*T {
	if s == nil {
		return nil
	}
	return s.denseValues
}

// Len returns the number of stored components.
func (s *SparseSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}

func (s *SparseSet[T]) index(e Entity) (int, bool) {
	if s == nil {
		return 0, false
	}
	id := int(e.id())
	if id <= 0 || id > len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.denseEntities) || s.denseEntities[idx] != e {
		return 0, false
	}
	return idx, true
}

func (s *SparseSet[T]) remove(e Entity) bool {
	return s.Remove(e)
}

func (s *SparseSet[T]) reset() {
	clear(s.denseValues)
	s.denseEntities = s.denseEntities[:0]
	s.denseValues = s.denseValues[:0]
	s.sparse = s.sparse[:0]
}

func (s *SparseSet[T]) len() int {
	return s.Len()
}
