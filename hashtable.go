package hashtable

const (
	// DefaultBaseSize is the logical size of a freshly created table,
	// rounded up to a prime capacity of 53. It doubles as the default
	// shrink floor.
	DefaultBaseSize = 50

	defaultMinLoad = 0.1
	defaultMaxLoad = 0.7
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotTombstone
	slotOccupied
)

// slot is one bucket of the table. A tombstone marks a slot whose entry
// was deleted; probe walks pass through it as if it were occupied so that
// keys placed beyond it stay reachable.
type slot struct {
	state slotState
	key   string
	value string
}

// Table is a string-keyed hash table using open addressing with double
// hashing. The capacity is always prime, which guarantees the probe
// sequence reaches every slot. A resize runs inline within the insert or
// delete that crosses a load-factor threshold, so those calls occasionally
// cost O(n).
//
// A Table is not safe for concurrent use. Callers that share one across
// goroutines must serialize access externally.
type Table struct {
	slots       []slot
	baseSize    int
	initialBase int
	minBaseSize int
	count       int

	hasher  Hasher
	minLoad float64
	maxLoad float64
}

// New returns an empty table. With no options it uses DefaultBaseSize, the
// polynomial hash family, and a 0.1–0.7 load factor band.
func New(opts ...Option) (*Table, error) {
	t := &Table{
		baseSize:    DefaultBaseSize,
		minBaseSize: DefaultBaseSize,
		hasher:      PolyHasher{},
		minLoad:     defaultMinLoad,
		maxLoad:     defaultMaxLoad,
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	t.initialBase = t.baseSize
	t.slots = make([]slot, nextPrime(t.baseSize))
	return t, nil
}

// Len returns the number of live entries. Tombstones are not counted.
func (t *Table) Len() int { return t.count }

// Cap returns the current slot-array length. It is always prime.
func (t *Table) Cap() int { return len(t.slots) }

// Load returns the current load factor: Len divided by Cap.
func (t *Table) Load() float64 { return float64(t.count) / float64(len(t.slots)) }

// probe returns the bucket index examined on the i-th attempt for a key
// hashed to (h1, h2). The +1 keeps the stride nonzero, and a stride equal
// to the capacity would collapse the walk onto a single bucket, so it
// folds back to 1. With a prime capacity every stride in [1, m) is
// coprime to m and the walk covers all m slots. Insert, Search and Delete
// all follow this same sequence.
func (t *Table) probe(h1, h2, i int) int {
	m := len(t.slots)
	step := h2 + 1
	if step == m {
		step = 1
	}
	return (h1 + i*step) % m
}

// Insert adds key with value, overwriting the value in place if the key is
// already present. Overwrites leave Len unchanged. The empty key is
// rejected with ErrEmptyKey.
func (t *Table) Insert(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	t.place(key, value)
	if t.Load() > t.maxLoad {
		t.resize(t.baseSize * 2)
	}
	return nil
}

// place runs the probe walk and writes the slot, with no load-factor
// check. Shared by Insert and resize. The first tombstone seen is
// remembered and reclaimed if the walk proves the key absent.
func (t *Table) place(key, value string) {
	h1, h2 := t.hasher.Hash(key, len(t.slots))
	grave := -1
	for i := 0; i < len(t.slots); i++ {
		idx := t.probe(h1, h2, i)
		switch s := &t.slots[idx]; s.state {
		case slotEmpty:
			if grave >= 0 {
				idx = grave
			}
			t.slots[idx] = slot{state: slotOccupied, key: key, value: value}
			t.count++
			return
		case slotTombstone:
			if grave < 0 {
				grave = idx
			}
		case slotOccupied:
			if s.key == key {
				s.value = value
				return
			}
		}
	}
	// No empty slot anywhere: every free slot is a tombstone. Growth is
	// never refused, so the post-insert resize keeps count below
	// capacity and the full walk has seen at least one tombstone.
	if grave >= 0 {
		t.slots[grave] = slot{state: slotOccupied, key: key, value: value}
		t.count++
	}
}

// Search returns the value stored under key. The walk skips tombstones
// and stops at the first empty slot, which proves the key absent.
func (t *Table) Search(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	h1, h2 := t.hasher.Hash(key, len(t.slots))
	for i := 0; i < len(t.slots); i++ {
		switch s := &t.slots[t.probe(h1, h2, i)]; s.state {
		case slotEmpty:
			return "", false
		case slotOccupied:
			if s.key == key {
				return s.value, true
			}
		}
	}
	return "", false
}

// Delete removes key and reports whether it was present. The slot becomes
// a tombstone rather than empty, keeping probe chains through it intact
// for other keys. Deleting an absent key is a no-op.
func (t *Table) Delete(key string) bool {
	if key == "" {
		return false
	}
	h1, h2 := t.hasher.Hash(key, len(t.slots))
	for i := 0; i < len(t.slots); i++ {
		idx := t.probe(h1, h2, i)
		switch s := &t.slots[idx]; s.state {
		case slotEmpty:
			return false
		case slotOccupied:
			if s.key == key {
				t.slots[idx] = slot{state: slotTombstone}
				t.count--
				if t.Load() < t.minLoad {
					t.resize(t.baseSize / 2)
				}
				return true
			}
		}
	}
	return false
}

// Clear removes every entry and restores a fresh backing array at the
// table's original base size. The old slots and their strings are left to
// the garbage collector.
func (t *Table) Clear() {
	t.baseSize = t.initialBase
	t.slots = make([]slot, nextPrime(t.baseSize))
	t.count = 0
}

// resize rebuilds the table at the given base size, rounded up to the
// next prime. Every live entry is re-placed under the new capacity's
// probe sequence and tombstones are dropped, making this the table's only
// compaction point. Shrinking below the configured floor is a silent
// no-op; a growth request is never refused.
func (t *Table) resize(base int) {
	if base < t.baseSize && base < t.minBaseSize {
		return
	}
	fresh := Table{
		slots:  make([]slot, nextPrime(base)),
		hasher: t.hasher,
	}
	for i := range t.slots {
		if s := &t.slots[i]; s.state == slotOccupied {
			fresh.place(s.key, s.value)
		}
	}
	t.slots = fresh.slots
	t.baseSize = base
	t.count = fresh.count
}
