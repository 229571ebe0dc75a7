package hashtable

// Map is a hash table mapping unique keys to values, resolving collisions by
// separate chaining. The bucket store doubles whenever an insert would push
// the load factor above 0.75; it never shrinks. Map is not safe for
// concurrent use.
type Map[K comparable, V any] struct {
	table[K, V]
}

// Returns an empty map with the given number of buckets. A capacity of zero
// or less selects DefaultCapacity.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(capacity, opts...)

	return &m
}

// Stores value under key. If the key was already present its value is
// replaced in place and the previous value is returned.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	return m.put(key, value)
}

// Returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

// GetPtr returns a pointer to the value stored under key, or nil if the key
// is absent. The pointer is valid only until the next mutating call: growth
// reallocates the bucket store and Delete moves entries within a chain.
func (m *Map[K, V]) GetPtr(key K) *V {
	return m.getPtr(key)
}

// Removes key from the map and returns its value.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	return m.delete(key)
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Capacity returns the current number of buckets: the most recent growth
// target, not a lower bound for future inserts.
func (m *Map[K, V]) Capacity() int {
	return len(m.buckets)
}
