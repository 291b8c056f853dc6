package eht

// LevelStats reports per-level diagnostics, as returned by LevelStats.
type LevelStats struct {
	Index      int
	Capacity   int
	Count      int
	Tombstones int
}

// Stats reports table-wide diagnostics beyond the raw scalars Len and
// Capacity expose, letting a caller anticipate a rebuild before it fires.
type Stats struct {
	Count          int
	Capacity       int
	NumLevels      int
	LoadFactor     float64
	TombstoneRatio float64
}

// Len returns the number of live entries in the table.
func (t *Table) Len() int {
	return t.count
}

// Capacity returns the table's total capacity across all levels.
func (t *Table) Capacity() int {
	return t.totalCapacity
}

// NumLevels returns the number of levels in the current layout.
func (t *Table) NumLevels() int {
	return len(t.levels)
}

// LevelStats copies out per-level diagnostics for up to maxLevels levels,
// largest level first. A non-positive maxLevels returns stats for every
// level.
func (t *Table) LevelStats(maxLevels int) []LevelStats {
	n := len(t.levels)
	if maxLevels > 0 && maxLevels < n {
		n = maxLevels
	}

	out := make([]LevelStats, n)
	for i := 0; i < n; i++ {
		l := t.levels[i]
		out[i] = LevelStats{
			Index:      l.index,
			Capacity:   l.capacity,
			Count:      l.count,
			Tombstones: l.tombstones,
		}
	}
	return out
}

// Stats reports table-wide load and tombstone ratios alongside the raw
// count, capacity, and level count.
func (t *Table) Stats() Stats {
	return Stats{
		Count:          t.count,
		Capacity:       t.totalCapacity,
		NumLevels:      len(t.levels),
		LoadFactor:     float64(t.count) / float64(t.totalCapacity),
		TombstoneRatio: float64(t.totalTombstones()) / float64(t.totalCapacity),
	}
}
