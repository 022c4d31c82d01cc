package probemap

import (
	"hash/maphash"
	"log/slog"
)

const (
	// DefaultInitialCapacity is used when a non-positive capacity is given.
	DefaultInitialCapacity = 8

	// MaxLoadFactor is the size/capacity ratio at which the next insertion
	// doubles the table first.
	MaxLoadFactor = 0.75
)

type slot[K comparable, V any] struct {
	key      K
	value    V
	occupied bool
}

// table is an open addressing hash table with linear probing.
// Deleted slots are cleared right away and the cluster that follows them
// is re-placed, so the table never holds tombstones.
type table[K comparable, V any] struct {
	slots []slot[K, V]
	size  int

	growths int

	hashFunc HashFunc[K]
	logger   *slog.Logger

	emptyV V
}

func (t *table[K, V]) init(capacity int, opts ...Option[K, V]) {
	if capacity <= 0 {
		capacity = DefaultInitialCapacity
	}

	t.slots = make([]slot[K, V], capacity)
	t.size = 0

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}
}

func (t *table[K, V]) capacity() int {
	return len(t.slots)
}

// Home slot of the key.
func (t *table[K, V]) index(key K) int {
	return int(t.hashFunc(key) % uint64(len(t.slots)))
}

func (t *table[K, V]) next(idx int) int {
	idx++
	if idx == len(t.slots) {
		return 0
	}

	return idx
}

// Same as size/capacity >= MaxLoadFactor, without the float division.
func (t *table[K, V]) overloaded() bool {
	return t.size*4 >= len(t.slots)*3
}

// set inserts or overwrites the key. Returns whether the key is new.
func (t *table[K, V]) set(key K, value V) bool {
	// The check runs against the size before the pending insertion.
	if t.overloaded() {
		t.grow()
	}

	return t.insert(key, value)
}

// insert places the key without the load check. The caller guarantees at
// least one empty slot, otherwise the probe never ends.
func (t *table[K, V]) insert(key K, value V) bool {
	idx := t.index(key)
	for t.slots[idx].occupied && t.slots[idx].key != key {
		idx = t.next(idx)
	}

	s := &t.slots[idx]
	if s.occupied {
		s.value = value
		return false
	}

	s.key = key
	s.value = value
	s.occupied = true
	t.size++

	return true
}

// lookup returns the slot index holding the key.
func (t *table[K, V]) lookup(key K) (int, bool) {
	start := t.index(key)

	for idx := start; t.slots[idx].occupied; {
		if t.slots[idx].key == key {
			return idx, true
		}

		idx = t.next(idx)
		// Full cycle, only possible on a completely full table.
		if idx == start {
			break
		}
	}

	return -1, false
}

func (t *table[K, V]) get(key K) (V, bool) {
	idx, ok := t.lookup(key)
	if !ok {
		return t.emptyV, false
	}

	return t.slots[idx].value, true
}

func (t *table[K, V]) delete(key K) bool {
	idx, ok := t.lookup(key)
	if !ok {
		return false
	}

	t.slots[idx] = slot[K, V]{}
	t.size--
	t.rehashFrom(idx)

	return true
}

// rehashFrom re-places every entry of the run that follows the vacated
// slot, up to the first empty slot. Each entry probes again from its home
// slot, so it either fills a gap behind it or stays where it is.
//
// Entries go through insert, not set: the size only shrinks while the run is
// processed, and the load check passed for the larger size already, so growth
// cannot be due here.
func (t *table[K, V]) rehashFrom(vacated int) {
	for idx := t.next(vacated); t.slots[idx].occupied; idx = t.next(idx) {
		s := t.slots[idx]
		t.slots[idx] = slot[K, V]{}
		t.size--

		t.insert(s.key, s.value)
	}
}

// grow doubles the capacity and re-places all live entries in the old slot order.
func (t *table[K, V]) grow() {
	old := t.slots

	t.slots = make([]slot[K, V], 2*len(old))
	t.size = 0
	t.growths++

	for i := range old {
		if old[i].occupied {
			t.insert(old[i].key, old[i].value)
		}
	}

	t.logger.Debug("probemap: table grown",
		"old_capacity", len(old),
		"new_capacity", len(t.slots),
		"size", t.size,
	)
}

// probeLength is the forward distance from the key's home slot to idx.
func (t *table[K, V]) probeLength(idx int) int {
	home := t.index(t.slots[idx].key)
	if idx >= home {
		return idx - home
	}

	return idx + len(t.slots) - home
}

func (t *table[K, V]) reset() {
	clear(t.slots)
	t.size = 0
}
