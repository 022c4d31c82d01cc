package probemap

type Stats struct {
	Size           int
	Capacity       int
	LoadFactor     float32
	Growths        int
	MaxProbeLength int
}

func (t *table[K, V]) stats() Stats {
	s := Stats{
		Size:       t.size,
		Capacity:   len(t.slots),
		LoadFactor: float32(t.size) / float32(len(t.slots)),
		Growths:    t.growths,
	}

	for i := range t.slots {
		if !t.slots[i].occupied {
			continue
		}

		s.MaxProbeLength = max(s.MaxProbeLength, t.probeLength(i))
	}

	return s
}

// Stats walks the whole slot array, it's not meant for hot paths.
func (m *Map[K, V]) Stats() Stats {
	return m.stats()
}
