package probemap

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is matched by every error returned for an absent key.
var ErrKeyNotFound = errors.New("probemap: key not found")

// KeyNotFoundError is returned by Get and Delete when the key is absent.
// It matches ErrKeyNotFound with errors.Is.
type KeyNotFoundError[K comparable] struct {
	Key K
}

func (e *KeyNotFoundError[K]) Error() string {
	return fmt.Sprintf("%s: %v", ErrKeyNotFound, e.Key)
}

func (e *KeyNotFoundError[K]) Is(target error) bool {
	return target == ErrKeyNotFound
}
