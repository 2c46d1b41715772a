package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// DefaultLastMoves is the number of rounds shown in the situation panel.
const DefaultLastMoves = 5

// OutputConfig holds settings related to what is printed.
type OutputConfig struct {
	// Writer receives the board, the situation panel and prompts.
	Writer io.Writer

	// Unicode draws pieces with figurine symbols instead of letters.
	Unicode bool

	// LastMoves is how many rounds the situation panel lists.
	LastMoves int

	// SVGFile, when set, receives an SVG snapshot of the final board.
	SVGFile string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Writer:    os.Stdout,
		LastMoves: DefaultLastMoves,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Writer == nil {
		return fmt.Errorf("no output writer: %w", errors.ErrInvalidConfig)
	}
	if o.LastMoves < 0 {
		return fmt.Errorf("last moves (%d) must not be negative: %w", o.LastMoves, errors.ErrInvalidConfig)
	}
	return nil
}
