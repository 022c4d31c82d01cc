// Command probemap exercises the probemap hash table.
//
// It first replays a short demonstration on string keys, printing each step to
// stdout, then runs a random insert/delete workload on integer keys and checks
// every surviving entry against a builtin map.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "probemap: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	version := flag.Bool("version", false, "Print version and exit")
	capacity := flag.Int("capacity", 8, "Initial table capacity")
	hashName := flag.String("hash", "maphash", "Hash function (maphash, xxhash)")
	numKeys := flag.Int("keys", 10000, "Number of keys inserted by the workload, 0 to skip it")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Workload random seed")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()
	if len(flag.Args()) > 0 {
		return fmt.Errorf("unknown arguments: %v", flag.Args())
	}

	if *version {
		printVersion(os.Stdout)
		return nil
	}

	ll := &slog.LevelVar{}
	if err := ll.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("invalid -log-level: %w", err)
	}
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
	slog.SetDefault(logger)

	cfg := config{
		capacity: *capacity,
		hash:     *hashName,
		keys:     *numKeys,
		seed:     *seed,
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	if err := runDemo(os.Stdout, cfg, logger); err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	if cfg.keys == 0 {
		return nil
	}

	stats, err := runWorkload(cfg, logger)
	if err != nil {
		return fmt.Errorf("workload: %w", err)
	}

	logger.Info("workload verified",
		"seed", cfg.seed,
		"size", stats.Size,
		"capacity", stats.Capacity,
		"load_factor", stats.LoadFactor,
		"growths", stats.Growths,
		"max_probe_length", stats.MaxProbeLength,
	)

	return nil
}

type config struct {
	capacity int
	hash     string
	keys     int
	seed     uint64
}

var errInvalidConfig = errors.New("invalid config")

func (c *config) validate() error {
	if c.hash != hashMaphash && c.hash != hashXXHash {
		return fmt.Errorf("%w: unknown -hash %q", errInvalidConfig, c.hash)
	}

	if c.keys < 0 {
		return fmt.Errorf("%w: -keys must not be negative", errInvalidConfig)
	}

	return nil
}

func printVersion(w io.Writer) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		fmt.Fprintln(w, "probemap (unknown version)")
		return
	}

	fmt.Fprintf(w, "probemap %s (%s)\n", info.Main.Version, info.GoVersion)
}
