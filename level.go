package eht

import "math"

// level is a fixed-capacity sub-array of slots, one tier of the elastic
// layout. Its capacity never changes after construction; only count and
// tombstones move, and only through the cascade engine in table.go.
type level struct {
	index      int
	capacity   int
	count      int
	tombstones int
	slots      []slot
}

func newLevel(index, capacity int) *level {
	return &level{
		index:    index,
		capacity: capacity,
		slots:    make([]slot, capacity),
	}
}

// used reports the number of slots this level considers occupied for
// probe-budget purposes: live entries plus tombstones.
func (l *level) used() int {
	return l.count + l.tombstones
}

// probeBudget implements the O(log^2(1/eps)) bound of the probe-budget
// policy: the fewer vacant slots remain, the more attempts a probe gets
// before the cascade spills to the next level.
func (l *level) probeBudget() int {
	used := l.used()
	if used >= l.capacity {
		return l.capacity
	}

	eps := 1 - float64(used)/float64(l.capacity)
	if eps <= 0 {
		return l.capacity
	}

	logInv := math.Log(1 / eps)
	budget := int(3+3*logInv*logInv) + 1
	if budget > l.capacity {
		budget = l.capacity
	}
	return budget
}

// buildLevels emits the geometric sequence of level capacities for a
// total capacity C: repeatedly halve the remaining budget while more than
// 2*minLevelSize remains, then emit one final level consuming the rest.
// The sum of emitted capacities always equals totalCapacity exactly.
func buildLevels(totalCapacity, minLevelSize int) []*level {
	remaining := totalCapacity
	var levels []*level
	idx := 0

	for remaining > 2*minLevelSize {
		size := remaining / 2
		levels = append(levels, newLevel(idx, size))
		remaining -= size
		idx++
	}
	levels = append(levels, newLevel(idx, remaining))

	return levels
}
