// Package payload associates opaque values with node ids so payload never
// lives inside the tree structure itself.
//
// Entry lifetime belongs to the caller. Trees never delete nodes, so they
// never remove payload either; use Store.Retain against a tree's IDs() to
// drop entries for nodes that are no longer linked.
package payload

import "sync"

// Associator is the payload store consumed by the record importers and
// exporters. Implementations must be safe for concurrent use.
type Associator interface {
	// Put stores v under id, replacing any previous value.
	Put(id string, v any)

	// Get returns the value stored under id and whether one exists.
	Get(id string) (any, bool)

	// Remove deletes the value stored under id. Missing ids are a no-op.
	Remove(id string)
}

// Store is an in-memory Associator guarded by a sync.RWMutex.
// The zero value is ready to use.
type Store struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{values: make(map[string]any)}
}

// Put implements Associator.
func (s *Store) Put(id string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[id] = v
}

// Get implements Associator.
func (s *Store) Get(id string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[id]
	return v, ok
}

// Remove implements Associator.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, id)
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}

// Retain removes every entry whose id is not in live and returns how many
// were removed. Complexity: O(len(live) + Len()).
func (s *Store) Retain(live []string) int {
	keep := make(map[string]struct{}, len(live))
	for _, id := range live {
		keep[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id := range s.values {
		if _, ok := keep[id]; !ok {
			delete(s.values, id)
			removed++
		}
	}

	return removed
}
