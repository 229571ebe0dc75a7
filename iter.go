package hashtable

import "iter"

// Iterator walks every live entry exactly once: buckets in store order,
// entries within a bucket in chain order. The map must not be mutated while
// an iterator is live.
type Iterator[K comparable, V any] struct {
	t      *table[K, V]
	bucket int
	slot   int
}

// Iter returns a fresh iterator positioned before the first entry.
func (m *Map[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{t: &m.table}
}

// Next advances the cursor past empty chains to the next entry. It returns
// zero values and false once the store is exhausted.
func (it *Iterator[K, V]) Next() (K, V, bool) {
	for it.bucket < len(it.t.buckets) {
		chain := it.t.buckets[it.bucket]
		if it.slot < len(chain) {
			e := chain[it.slot]
			it.slot++

			return e.key, e.value, true
		}

		it.bucket++
		it.slot = 0
	}

	var k K
	return k, it.t.emptyV, false
}

// All returns a restartable sequence over all entries, for use with range.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.Iter()
		for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys holds the keys taken out of a map by IntoKeys, flattened in
// bucket/chain order. It is independent of the map it came from.
type Keys[K comparable] struct {
	keys []K
}

// IntoKeys consumes the map: it captures every key in bucket/chain order,
// empties the map and returns the captured view. The bucket count is kept,
// so the emptied map remains usable.
func (m *Map[K, V]) IntoKeys() *Keys[K] {
	keys := make([]K, 0, m.size)
	for _, chain := range m.buckets {
		for _, e := range chain {
			keys = append(keys, e.key)
		}
	}

	m.buckets = make([][]entry[K, V], len(m.buckets))
	m.size = 0

	return &Keys[K]{keys: keys}
}

// All returns a restartable by-value sequence over the keys.
func (ks *Keys[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range ks.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Slice returns the backing key slice; mutating it mutates the view.
func (ks *Keys[K]) Slice() []K {
	return ks.keys
}

// Len returns the number of captured keys.
func (ks *Keys[K]) Len() int {
	return len(ks.keys)
}
