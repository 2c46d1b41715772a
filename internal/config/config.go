// Package config provides configuration for the chess command.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted from the command line.
const MaxPerftDepth = 6

// Config holds all program configuration.
type Config struct {
	// StartFEN sets up the first game from a FEN position instead of the
	// standard starting position.
	StartFEN string

	// Moves are replayed in order, in "E2-E4" notation, before any
	// interactive play.
	Moves []string

	// PerftDepth > 0 runs a perft divide on the start position and exits.
	PerftDepth int
	Workers    int

	Output *OutputConfig
	Log    *LogConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Workers: runtime.NumCPU(),
		Output:  NewOutputConfig(),
		Log:     NewLogConfig(),
	}
}

// ParseMoveList splits a move list separated by commas or white space.
func ParseMoveList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.PerftDepth < 0 || c.PerftDepth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", c.PerftDepth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("worker count %d must be positive: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}
