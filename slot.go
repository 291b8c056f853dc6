package eht

// slotState is the tri-state tag of a slot. Empty is probe-terminal;
// Tombstone is probe-transparent (see cascade engine in table.go).
type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

// slot is one cell of a level's backing array. Occupied slots own their
// key and value buffers; Empty and Tombstone slots carry no payload.
type slot struct {
	state slotState
	key   []byte
	value []byte
}

func (s *slot) clear() {
	s.state = slotEmpty
	s.key = nil
	s.value = nil
}
