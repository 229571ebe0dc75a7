package hashtable

const (
	// DefaultCapacity is the number of buckets a table starts with when no
	// explicit capacity is given.
	DefaultCapacity = 10

	// maxLoadFactor is the projected post-insert load that triggers growth.
	maxLoadFactor = 0.75
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

type table[K comparable, V any] struct {
	buckets [][]entry[K, V]
	size    int

	hashFunc HashFunc[K]

	emptyV V
}

type Option[K comparable, V any] func(t *table[K, V])

// Override the default hash function. Every operation that computes a bucket
// index goes through the supplied function, so a constant-value function
// forces all keys into one chain.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

func (t *table[K, V]) init(capacity int, opts ...Option[K, V]) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	t.buckets = make([][]entry[K, V], capacity)

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K]()
	}
}

func (t *table[K, V]) bucketIndex(key K) int {
	return int(t.hashFunc(key) % uint64(len(t.buckets)))
}

// locate returns the key's bucket index and its slot within that chain, or
// slot -1 when the key is absent.
func (t *table[K, V]) locate(key K) (int, int) {
	b := t.bucketIndex(key)
	for i := range t.buckets[b] {
		if t.buckets[b][i].key == key {
			return b, i
		}
	}

	return b, -1
}

func (t *table[K, V]) get(key K) (V, bool) {
	b, i := t.locate(key)
	if i < 0 {
		return t.emptyV, false
	}

	return t.buckets[b][i].value, true
}

func (t *table[K, V]) getPtr(key K) *V {
	b, i := t.locate(key)
	if i < 0 {
		return nil
	}

	return &t.buckets[b][i].value
}

func (t *table[K, V]) put(key K, value V) (V, bool) {
	b, i := t.locate(key)
	if i >= 0 {
		prev := t.buckets[b][i].value
		t.buckets[b][i].value = value

		return prev, true
	}

	t.place(key, value)

	return t.emptyV, false
}

// place appends a key known to be absent, growing first if the projected
// load would cross the threshold. Returns a pointer to the stored value.
func (t *table[K, V]) place(key K, value V) *V {
	if float64(t.size+1)/float64(len(t.buckets)) > maxLoadFactor {
		t.grow()
	}

	b := t.bucketIndex(key)
	t.buckets[b] = append(t.buckets[b], entry[K, V]{key: key, value: value})
	t.size++

	return &t.buckets[b][len(t.buckets[b])-1].value
}

// grow doubles the bucket count and rehashes every live entry into the new
// store. This is the only path that changes capacity; the table never
// shrinks.
func (t *table[K, V]) grow() {
	old := t.buckets
	t.buckets = make([][]entry[K, V], len(old)*2)

	for _, chain := range old {
		for _, e := range chain {
			b := t.bucketIndex(e.key)
			t.buckets[b] = append(t.buckets[b], e)
		}
	}
}

func (t *table[K, V]) delete(key K) (V, bool) {
	b, i := t.locate(key)
	if i < 0 {
		return t.emptyV, false
	}

	chain := t.buckets[b]
	removed := chain[i].value

	// Swap-remove: the chain's last entry fills the hole. Order within the
	// chain is not preserved.
	last := len(chain) - 1
	chain[i] = chain[last]
	chain[last] = entry[K, V]{}
	t.buckets[b] = chain[:last]
	t.size--

	return removed, true
}
