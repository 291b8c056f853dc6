package eht

import "bytes"

const (
	minRequestedCapacity  = 64
	defaultMinLevelSize   = 16
	defaultMaxLoad        = 0.90
	defaultTombstoneRatio = 0.15
)

// Table is an elastic hash table mapping byte-string keys to byte-string
// values. It is not safe for concurrent use; see the package doc comment.
type Table struct {
	levels []*level
	count  int

	totalCapacity  int
	minLevelSize   int
	maxLoad        float64
	tombstoneRatio float64
	hashSeed       uint64

	logger Logger
}

// New creates a Table. requestedCapacity is clamped to a floor of 64.
// Options override the default tunables (min level size 16, max load
// 0.90, tombstone ratio 0.15) before the initial level layout is built.
func New(requestedCapacity int, opts ...Option) *Table {
	t := &Table{
		minLevelSize:   defaultMinLevelSize,
		maxLoad:        defaultMaxLoad,
		tombstoneRatio: defaultTombstoneRatio,
		logger:         noopLogger{},
	}
	for _, opt := range opts {
		opt(t)
	}

	capacity := requestedCapacity
	if capacity < minRequestedCapacity {
		capacity = minRequestedCapacity
	}
	t.totalCapacity = capacity
	t.levels = buildLevels(capacity, t.minLevelSize)

	return t
}

// find runs the cascade engine's lookup: try each level in order, probing
// within its budget, stopping at the first Empty slot (definitive miss
// for that level) or the first Occupied slot whose key matches.
func (t *Table) find(key []byte) (lvl *level, idx int, ok bool) {
outer:
	for _, l := range t.levels {
		if l.count == 0 {
			continue
		}
		h1, h2 := dualHash(key, l.index, t.hashSeed)
		budget := l.probeBudget()

		for a := 0; a < budget; a++ {
			pos := probeSlot(h1, h2, a, l.capacity)
			s := &l.slots[pos]

			switch s.state {
			case slotOccupied:
				if bytes.Equal(s.key, key) {
					return l, pos, true
				}
			case slotEmpty:
				continue outer
			}
			// slotTombstone: probe-transparent, keep going.
		}
	}
	return nil, 0, false
}

// insertCascade places an already-owned (key, value) pair into the first
// level with room in its probe budget. It never copies: callers that want
// a copy-free move (rebuild reinsertion) and callers that want a fresh
// copy (Insert) both pass already-allocated buffers.
func (t *Table) insertCascade(key, value []byte) bool {
	for _, l := range t.levels {
		h1, h2 := dualHash(key, l.index, t.hashSeed)
		budget := l.probeBudget()

		for a := 0; a < budget; a++ {
			pos := probeSlot(h1, h2, a, l.capacity)
			s := &l.slots[pos]

			if s.state == slotEmpty || s.state == slotTombstone {
				if s.state == slotTombstone {
					l.tombstones--
				}
				s.state = slotOccupied
				s.key = key
				s.value = value
				l.count++
				t.count++
				return true
			}
		}
	}
	return false
}

// Insert stores value under key, copying both into freshly owned buffers.
// If key is already present its value is overwritten in place. key is
// truncated at the first NUL byte, per the key encoding contract.
func (t *Table) Insert(key, value []byte) error {
	key = truncateAtNUL(key)
	if len(key) == 0 {
		return ErrEmptyKey
	}

	if l, idx, ok := t.find(key); ok {
		s := &l.slots[idx]
		s.value = append([]byte(nil), value...)
		return nil
	}

	if t.count >= int(float64(t.totalCapacity)*t.maxLoad) {
		if err := t.rebuild(2 * t.totalCapacity); err != nil {
			return err
		}
	}
	if t.totalTombstones() >= int(float64(t.totalCapacity)*t.tombstoneRatio) {
		if err := t.rebuild(t.totalCapacity); err != nil {
			return err
		}
	}

	ownedKey := append([]byte(nil), key...)
	ownedValue := append([]byte(nil), value...)

	if t.insertCascade(ownedKey, ownedValue) {
		return nil
	}

	if err := t.rebuild(2 * t.totalCapacity); err != nil {
		return err
	}
	if t.insertCascade(ownedKey, ownedValue) {
		return nil
	}
	return ErrRebuildFailed
}

// Get returns the value stored under key, or (nil, false) if absent. The
// returned slice aliases the table's backing array and is only valid
// until the next mutating call.
func (t *Table) Get(key []byte) ([]byte, bool) {
	key = truncateAtNUL(key)
	l, idx, ok := t.find(key)
	if !ok {
		return nil, false
	}
	return l.slots[idx].value, true
}

// Contains reports whether key is present. It has no side effects.
func (t *Table) Contains(key []byte) bool {
	key = truncateAtNUL(key)
	_, _, ok := t.find(key)
	return ok
}

// Delete removes key if present, returning whether it was found. It never
// triggers a rebuild; tombstone compaction is an Insert-time concern.
func (t *Table) Delete(key []byte) bool {
	key = truncateAtNUL(key)
	l, idx, ok := t.find(key)
	if !ok {
		return false
	}

	s := &l.slots[idx]
	s.clear()
	s.state = slotTombstone
	l.count--
	l.tombstones++
	t.count--
	return true
}

func (t *Table) totalTombstones() int {
	n := 0
	for _, l := range t.levels {
		n += l.tombstones
	}
	return n
}

type extractedEntry struct {
	key   []byte
	value []byte
}

// rebuild implements the grow/compact protocol: extract every live entry
// (stealing its buffers rather than copying them), tear down the level
// sequence, relayout at newCapacity, and reinsert every extracted entry
// via the same insert cascade used by Insert.
func (t *Table) rebuild(newCapacity int) error {
	if newCapacity <= 0 {
		return ErrInvalidCapacity
	}

	entries := make([]extractedEntry, 0, t.count)
	for _, l := range t.levels {
		for i := range l.slots {
			s := &l.slots[i]
			if s.state == slotOccupied {
				entries = append(entries, extractedEntry{key: s.key, value: s.value})
				s.key = nil
				s.value = nil
			}
		}
	}

	t.levels = buildLevels(newCapacity, t.minLevelSize)
	t.totalCapacity = newCapacity
	t.count = 0

	for _, e := range entries {
		if !t.insertCascade(e.key, e.value) {
			return ErrRebuildFailed
		}
	}

	t.logger.Printf("eht: rebuilt table to capacity %d (%d live entries, %d levels)",
		newCapacity, len(entries), len(t.levels))
	return nil
}
