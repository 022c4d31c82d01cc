package probemap

import (
	"fmt"
	"iter"
	"strings"
)

// Set is a set of keys built on the same table as Map, storing no values.
// It grows and deletes exactly like Map does.
type Set[K comparable] struct {
	table[K, struct{}]
}

func NewSet[K comparable](capacity int, opts ...Option[K, struct{}]) *Set[K] {
	var s Set[K]
	s.init(capacity, opts...)

	return &s
}

// Puts a key in the set.
// Returns whether the key is new.
func (s *Set[K]) Put(key K) bool {
	return s.set(key, struct{}{})
}

func (s *Set[K]) Has(key K) bool {
	_, ok := s.lookup(key)
	return ok
}

// Deletes a key from the set. Returns a *KeyNotFoundError if the key is absent.
func (s *Set[K]) Delete(key K) error {
	if !s.delete(key) {
		return &KeyNotFoundError[K]{Key: key}
	}

	return nil
}

func (s *Set[K]) Len() int {
	return s.size
}

func (s *Set[K]) Cap() int {
	return s.capacity()
}

func (s *Set[K]) Reset() {
	s.reset()
}

func (s *Set[K]) Stats() Stats {
	return s.stats()
}

// All yields the keys in slot order.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range s.slots {
			if s.slots[i].occupied && !yield(s.slots[i].key) {
				return
			}
		}
	}
}

func (s *Set[K]) String() string {
	var b strings.Builder

	b.WriteByte('{')
	first := true
	for k := range s.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false

		fmt.Fprintf(&b, "%v", k)
	}
	b.WriteByte('}')

	return b.String()
}
