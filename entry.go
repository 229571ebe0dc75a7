package hashtable

// Entry is a one-shot view over a single key, produced by Map.Entry and
// consumed by OrInsert. Using it after consumption panics, since the first
// call may have reallocated the bucket store.
type Entry[K comparable, V any] struct {
	t        *table[K, V]
	key      K
	occupied bool
	consumed bool
}

// Entry looks up key and returns an occupied or vacant view over it. The
// view borrows the map until its OrInsert call; the map must not be mutated
// in between.
func (m *Map[K, V]) Entry(key K) *Entry[K, V] {
	_, i := m.locate(key)

	return &Entry[K, V]{t: &m.table, key: key, occupied: i >= 0}
}

// OrInsert consumes the view and returns a pointer to the value stored under
// its key, inserting def first when the key is vacant. Growth is checked
// exactly as in Put.
func (e *Entry[K, V]) OrInsert(def V) *V {
	if e.consumed {
		panic("hashtable: entry already consumed")
	}
	e.consumed = true

	if e.occupied {
		return e.t.getPtr(e.key)
	}

	return e.t.place(e.key, def)
}
