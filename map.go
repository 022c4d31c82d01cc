package probemap

import (
	"fmt"
	"strings"
)

// Map is a generic hash map backed by a single slot array with linear probing.
// It doubles its capacity once the load factor reaches MaxLoadFactor and never
// shrinks. Deletion repairs the probe chains in place instead of leaving
// tombstones behind.
//
// Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	table[K, V]
}

// Returns a new map with the given initial capacity.
// A non-positive capacity means DefaultInitialCapacity.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(capacity, opts...)

	return &m
}

// Sets the value for a key, overwriting the previous one if any.
func (m *Map[K, V]) Set(key K, value V) {
	m.set(key, value)
}

// Returns the value for a key, or a *KeyNotFoundError.
func (m *Map[K, V]) Get(key K) (V, error) {
	v, ok := m.get(key)
	if !ok {
		return v, &KeyNotFoundError[K]{Key: key}
	}

	return v, nil
}

// Lookup is the comma-ok form of Get.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	return m.get(key)
}

// Deletes a key. Returns a *KeyNotFoundError if the key is absent.
func (m *Map[K, V]) Delete(key K) error {
	if !m.delete(key) {
		return &KeyNotFoundError[K]{Key: key}
	}

	return nil
}

func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.lookup(key)
	return ok
}

// Number of stored keys.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Number of slots.
func (m *Map[K, V]) Cap() int {
	return m.capacity()
}

// Removes all keys, retaining the capacity.
func (m *Map[K, V]) Reset() {
	m.reset()
}

// String lists the entries in slot order, e.g. "{a: 1, c: 3}".
func (m *Map[K, V]) String() string {
	var b strings.Builder

	b.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false

		fmt.Fprintf(&b, "%v: %v", k, v)
	}
	b.WriteByte('}')

	return b.String()
}
