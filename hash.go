package probemap

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc must be deterministic and consistent with key equality.
type HashFunc[K comparable] func(K) uint64

// Returns a maphash based hash function for the given seed.
// Tables using different seeds place the same keys differently.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// XXHashString hashes string keys with xxhash. It's seedless, so slot
// placement is reproducible across runs.
func XXHashString[K ~string](k K) uint64 {
	return xxhash.Sum64String(string(k))
}

// XXHashInteger hashes integer keys with xxhash over their little-endian
// 8 byte representation.
func XXHashInteger[K ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr](k K) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(k))

	return xxhash.Sum64(buf[:])
}
