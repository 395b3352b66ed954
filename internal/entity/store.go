// internal/entity/store.go
package entity

import "line-defense/internal/types"

// Store — хранилище одной категории сущностей.
// Порядок обхода совпадает с порядком добавления, а значит и с ростом ID,
// поэтому симуляция с одинаковым сидом воспроизводима.
type Store[T any] struct {
	byID  map[types.EntityID]*T
	ids   []types.EntityID
	items []*T
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{byID: make(map[types.EntityID]*T)}
}

// Add registers item under id.
func (s *Store[T]) Add(id types.EntityID, item *T) {
	if _, exists := s.byID[id]; exists {
		return
	}
	s.byID[id] = item
	s.ids = append(s.ids, id)
	s.items = append(s.items, item)
}

// Get returns the item with id.
func (s *Store[T]) Get(id types.EntityID) (*T, bool) {
	item, ok := s.byID[id]
	return item, ok
}

// All returns the items in insertion order. Items added while the caller
// ranges over the result are not part of it.
func (s *Store[T]) All() []*T {
	return s.items
}

// Len returns the number of stored items, removed or not.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Sweep drops every item for which removed returns true and returns them.
func (s *Store[T]) Sweep(removed func(*T) bool) []*T {
	var dropped []*T
	keepIDs := s.ids[:0]
	keepItems := make([]*T, 0, len(s.items))
	for i, item := range s.items {
		if removed(item) {
			delete(s.byID, s.ids[i])
			dropped = append(dropped, item)
			continue
		}
		keepIDs = append(keepIDs, s.ids[i])
		keepItems = append(keepItems, item)
	}
	s.ids = keepIDs
	s.items = keepItems
	return dropped
}
