// Package config holds the run configuration shared by the CLI and the server.
package config

import (
	"errors"
	"fmt"
	"gridpath/grid"
	"os"
	"strconv"
)

// Mode selects how the CLI runs.
type Mode string

const (
	ModePrompt  Mode = "prompt"  // ask for coordinates on stdin
	ModeOneShot Mode = "oneshot" // coordinates from flags, print and exit
	ModeTUI     Mode = "tui"     // animated tcell viewer
)

// MaxSide bounds grid dimensions accepted from users.
const MaxSide = 200

// Config contains every tunable of a run.
type Config struct {
	Width       int
	Height      int
	WallPercent int
	Seed        int64 // 0 means time-seeded
	Accumulated bool  // textbook A* cost instead of the start-distance estimate
	Mode        Mode
	Format      string
	Addr        string
}

// Default returns the configuration of the classic console run: a 10×10 board
// with 15% interior walls.
func Default() Config {
	return Config{
		Width:       10,
		Height:      10,
		WallPercent: grid.DefaultWallPercent,
		Mode:        ModePrompt,
		Format:      "ascii",
		Addr:        ":8080",
	}
}

// ApplyEnv overrides fields from GRIDPATH_* environment variables.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.Getenv)
}

func (c *Config) applyEnv(getenv func(string) string) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"GRIDPATH_WIDTH", &c.Width},
		{"GRIDPATH_HEIGHT", &c.Height},
		{"GRIDPATH_WALLS", &c.WallPercent},
	}
	for _, e := range ints {
		v := getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		*e.dst = n
	}
	if v := getenv("GRIDPATH_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("GRIDPATH_SEED: %w", err)
		}
		c.Seed = n
	}
	if v := getenv("GRIDPATH_ADDR"); v != "" {
		c.Addr = v
	}
	return nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width < 3 || c.Height < 3 {
		return errors.New("grid must be at least 3x3 to have an interior")
	}
	if c.Width > MaxSide || c.Height > MaxSide {
		return fmt.Errorf("grid sides are limited to %d", MaxSide)
	}
	if c.WallPercent < 0 || c.WallPercent > 100 {
		return fmt.Errorf("wall percent %d out of range 0..100", c.WallPercent)
	}
	switch c.Mode {
	case ModePrompt, ModeOneShot, ModeTUI:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	return nil
}

// GridOptions converts the configuration into generation options.
func (c Config) GridOptions() []grid.Option {
	opts := []grid.Option{grid.WithWallPercent(c.WallPercent)}
	if c.Seed != 0 {
		opts = append(opts, grid.WithSeed(c.Seed))
	}
	return opts
}
