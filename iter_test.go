package hashtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_Empty(t *testing.T) {
	m := New[string, int](16)

	_, _, ok := m.Iter().Next()
	assert.False(t, ok)
}

func TestIterator_Completeness(t *testing.T) {
	m := New[int, int](16)

	for i := range 50 {
		m.Put(i, i*10)
	}

	seen := make(map[int]int, 50)
	it := m.Iter()
	for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
		seen[k] = v
	}

	require.Len(t, seen, 50)
	for i := range 50 {
		assert.Equal(t, i*10, seen[i])
	}
}

func TestIterator_SparseBuckets(t *testing.T) {
	// Long runs of empty chains must be skipped without losing entries.
	m := New[int, int](1000)

	m.Put(1, 1)
	m.Put(2, 2)
	m.Put(3, 3)

	n := 0
	it := m.Iter()
	for _, _, ok := it.Next(); ok; _, _, ok = it.Next() {
		n++
	}

	assert.Equal(t, 3, n)
}

func TestIterator_ChainOrder(t *testing.T) {
	m := New(16, WithHashFunc[int, int](func(int) uint64 { return 5 }))

	for i := range 4 {
		m.Put(i, i)
	}

	var keys []int
	it := m.Iter()
	for k, _, ok := it.Next(); ok; k, _, ok = it.Next() {
		keys = append(keys, k)
	}

	// One shared chain, visited in insertion order.
	assert.Equal(t, []int{0, 1, 2, 3}, keys)
}

func TestMap_All(t *testing.T) {
	m := New[int, int](16)

	for i := range 10 {
		m.Put(i, i)
	}

	seen := make(map[int]bool, 10)
	for k, v := range m.All() {
		require.Equal(t, k, v)
		seen[k] = true
	}
	require.Len(t, seen, 10)

	// Restartable: a second full pass sees everything again.
	n := 0
	for range m.All() {
		n++
	}
	assert.Equal(t, 10, n)

	// Early break does not disturb later traversals.
	n = 0
	for range m.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestMap_IntoKeys(t *testing.T) {
	m := New(16, WithHashFunc[string, int](func(string) uint64 { return 0 }))

	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)

	ks := m.IntoKeys()

	// The view captures bucket/chain order at consumption time.
	require.Equal(t, 3, ks.Len())
	assert.Equal(t, []string{"a", "b", "c"}, ks.Slice())

	// The map was consumed but stays usable.
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 16, m.Capacity())
	_, ok := m.Get("a")
	assert.False(t, ok)

	m.Put("d", 4)
	v, ok := m.Get("d")
	require.True(t, ok)
	assert.Equal(t, 4, v)

	// The view is independent of the map's later life.
	assert.Equal(t, []string{"a", "b", "c"}, ks.Slice())
}

func TestKeys_All(t *testing.T) {
	m := New[int, struct{}](16)

	for i := range 20 {
		m.Put(i, struct{}{})
	}

	ks := m.IntoKeys()

	seen := make(map[int]bool, 20)
	for k := range ks.All() {
		seen[k] = true
	}
	require.Len(t, seen, 20)

	// By-reference access: mutating the backing slice is visible in the
	// next by-value pass.
	ks.Slice()[0] = 999

	found := false
	for k := range ks.All() {
		if k == 999 {
			found = true
		}
	}
	assert.True(t, found)
}
