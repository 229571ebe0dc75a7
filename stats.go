package hashtable

// Stats is a point-in-time snapshot of a map's chain distribution.
type Stats struct {
	Size         int
	Capacity     int
	LoadFactor   float64
	MaxChainLen  int
	EmptyBuckets int
}

func (m *Map[K, V]) Stats() Stats {
	s := Stats{
		Size:       m.size,
		Capacity:   len(m.buckets),
		LoadFactor: float64(m.size) / float64(len(m.buckets)),
	}

	for _, chain := range m.buckets {
		if len(chain) == 0 {
			s.EmptyBuckets++
		}
		if len(chain) > s.MaxChainLen {
			s.MaxChainLen = len(chain)
		}
	}

	return s
}
