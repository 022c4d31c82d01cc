package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/homier/probemap"
)

const (
	hashMaphash = "maphash"
	hashXXHash  = "xxhash"
)

var errMismatch = errors.New("table mismatch")

func newStringMap(cfg config, logger *slog.Logger) *probemap.Map[string, int] {
	opts := []probemap.Option[string, int]{probemap.WithLogger[string, int](logger)}
	if cfg.hash == hashXXHash {
		opts = append(opts, probemap.WithHashFunc[string, int](probemap.XXHashString[string]))
	}

	return probemap.New(cfg.capacity, opts...)
}

func newIntegerMap(cfg config, logger *slog.Logger) *probemap.Map[uint64, uint64] {
	opts := []probemap.Option[uint64, uint64]{probemap.WithLogger[uint64, uint64](logger)}
	if cfg.hash == hashXXHash {
		opts = append(opts, probemap.WithHashFunc[uint64, uint64](probemap.XXHashInteger[uint64]))
	}

	return probemap.New(cfg.capacity, opts...)
}

// runDemo walks through every public operation and prints the results.
func runDemo(w io.Writer, cfg config, logger *slog.Logger) error {
	m := newStringMap(cfg, logger)

	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	fmt.Fprintln(w, m)

	for _, k := range []string{"a", "b"} {
		v, err := m.Get(k)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, v)
	}

	fmt.Fprintln(w, slices.Collect(m.Values()))
	fmt.Fprintln(w, slices.Collect(m.Keys()))
	fmt.Fprintln(w, m.Len())
	fmt.Fprintln(w, m.Contains("a"))
	fmt.Fprintln(w, m.Contains("z"))

	if err := m.Delete("b"); err != nil {
		return err
	}

	fmt.Fprintln(w, m)
	fmt.Fprintln(w, m.Len())
	fmt.Fprintln(w, m.Contains("b"))

	if _, err := m.Get("b"); !errors.Is(err, probemap.ErrKeyNotFound) {
		return fmt.Errorf("%w: deleted key still readable: %v", errMismatch, err)
	}

	return nil
}

// runWorkload inserts cfg.keys random keys, deletes every other one and checks
// the table against a builtin map.
func runWorkload(cfg config, logger *slog.Logger) (probemap.Stats, error) {
	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed^0x9E3779B97F4A7C15))

	m := newIntegerMap(cfg, logger)
	want := make(map[uint64]uint64, cfg.keys)
	order := make([]uint64, 0, cfg.keys)

	for i := range cfg.keys {
		k := rng.Uint64N(uint64(cfg.keys) * 4)
		if _, ok := want[k]; !ok {
			order = append(order, k)
		}

		m.Set(k, uint64(i))
		want[k] = uint64(i)
	}

	if m.Len() != len(want) {
		return probemap.Stats{}, fmt.Errorf("%w: size %d, want %d", errMismatch, m.Len(), len(want))
	}

	deleted := 0
	for i, k := range order {
		if i%2 != 0 {
			continue
		}

		if err := m.Delete(k); err != nil {
			return probemap.Stats{}, err
		}
		delete(want, k)
		deleted++
	}

	logger.Debug("workload applied", "inserted", len(order), "deleted", deleted)

	if m.Len() != len(want) {
		return probemap.Stats{}, fmt.Errorf("%w: size %d, want %d", errMismatch, m.Len(), len(want))
	}

	for k, wantV := range want {
		v, err := m.Get(k)
		if err != nil {
			return probemap.Stats{}, fmt.Errorf("%w: %w", errMismatch, err)
		}

		if v != wantV {
			return probemap.Stats{}, fmt.Errorf("%w: key %d holds %d, want %d", errMismatch, k, v, wantV)
		}
	}

	n := 0
	for k := range m.Keys() {
		if _, ok := want[k]; !ok {
			return probemap.Stats{}, fmt.Errorf("%w: unexpected key %d", errMismatch, k)
		}
		n++
	}

	if n != len(want) {
		return probemap.Stats{}, fmt.Errorf("%w: iterated %d keys, want %d", errMismatch, n, len(want))
	}

	return m.Stats(), nil
}
