package hashtable

// CapacityFor returns the smallest bucket count that holds n entries without
// crossing the growth threshold, for pre-sizing with New.
func CapacityFor(n int) int {
	if n <= 0 {
		return DefaultCapacity
	}

	capacity := n*4/3 + 1
	if capacity < DefaultCapacity {
		capacity = DefaultCapacity
	}

	return capacity
}
