package hashtable

import "iter"

// Set is a set of keys backed by a Map with empty struct values. It grows
// the same way the map does and is likewise not safe for concurrent use.
type Set[K comparable] struct {
	m *Map[K, struct{}]
}

// Returns an empty set with the given number of buckets.
func NewSet[K comparable](capacity int, opts ...Option[K, struct{}]) *Set[K] {
	return &Set[K]{m: New[K, struct{}](capacity, opts...)}
}

// Add puts key in the set and reports whether it was absent.
func (s *Set[K]) Add(key K) bool {
	_, replaced := s.m.Put(key, struct{}{})

	return !replaced
}

// Has reports whether key is in the set.
func (s *Set[K]) Has(key K) bool {
	_, ok := s.m.Get(key)

	return ok
}

// Delete removes key from the set and reports whether it was present.
func (s *Set[K]) Delete(key K) bool {
	_, ok := s.m.Delete(key)

	return ok
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	return s.m.Len()
}

// All returns a restartable sequence over the keys.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}
