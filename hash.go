package hashtable

import (
	"hash/maphash"

	"github.com/dchest/siphash"
)

// HashFunc turns a key into a 64-bit bucket seed. It must be deterministic:
// equal keys must produce equal hashes. Distinct keys may collide.
type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc returns a maphash-backed hash function with a
// process-local random seed.
func MakeDefaultHashFunc[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()

	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// MakeSipHashFunc returns a SipHash-2-4 hash function for string keys, keyed
// with k0 and k1. Unlike the maphash default, the same key pair produces the
// same hashes across processes.
func MakeSipHashFunc(k0, k1 uint64) HashFunc[string] {
	return func(k string) uint64 {
		return siphash.Hash(k0, k1, []byte(k))
	}
}
