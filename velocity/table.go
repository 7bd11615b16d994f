package velocity

import "sync/atomic"

// MIDI key and velocity domains
const (
	NumKeys     = 128
	MaxVelocity = 127

	// Playable piano range (A0..C8), 88 keys
	LowestKey  = 21
	HighestKey = 108
	PianoKeys  = HighestKey - LowestKey + 1
)

// Table holds the current velocity of every MIDI key.
//
// Each slot is an independent atomic cell: the MIDI input callback writes
// single keys while the render loop reads snapshots, and neither ever waits
// on the other.
type Table struct {
	slots [NumKeys]atomic.Uint32
}

// NewTable creates a table with every key released
func NewTable() *Table {
	return &Table{}
}

// Set stores velocity for key. Keys outside 0-127 are ignored and velocity is
// clamped into 0-127, so malformed input can never corrupt the table.
func (t *Table) Set(key, velocity int) {
	if key < 0 || key >= NumKeys {
		return
	}
	t.slots[key].Store(uint32(clamp(velocity)))
}

// Get returns the velocity for key (0 for keys outside 0-127)
func (t *Table) Get(key int) int {
	if key < 0 || key >= NumKeys {
		return 0
	}
	return int(t.slots[key].Load())
}

// Snapshot copies every slot. Slots are read one at a time; the copy is
// consistent per key, not across keys.
func (t *Table) Snapshot() Snapshot {
	var s Snapshot
	for i := range t.slots {
		s[i] = uint8(t.slots[i].Load())
	}
	return s
}

// Reset releases every key
func (t *Table) Reset() {
	for i := range t.slots {
		t.slots[i].Store(0)
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxVelocity {
		return MaxVelocity
	}
	return v
}

// Snapshot is a point-in-time copy of a Table
type Snapshot [NumKeys]uint8

// Playable reports whether key is inside the rendered piano range
func Playable(key int) bool {
	return key >= LowestKey && key <= HighestKey
}

// Active returns the playable keys with a non-zero velocity, lowest first
func (s Snapshot) Active() []int {
	var keys []int
	for k := LowestKey; k <= HighestKey; k++ {
		if s[k] > 0 {
			keys = append(keys, k)
		}
	}
	return keys
}

// Loudest returns the playable key with the highest velocity.
// ok is false when nothing is held. Ties go to the lower key.
func (s Snapshot) Loudest() (key int, vel uint8, ok bool) {
	for k := LowestKey; k <= HighestKey; k++ {
		if s[k] > vel {
			key, vel, ok = k, s[k], true
		}
	}
	return key, vel, ok
}
