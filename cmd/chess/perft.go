package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// runPerft prints the node count below every root move, sorted by move, and
// the total.
func runPerft(cfg *config.Config, log zerolog.Logger) error {
	game := chess.NewGame()
	if cfg.StartFEN != "" {
		var err error
		if game, err = engine.NewGameFromFEN(cfg.StartFEN); err != nil {
			return err
		}
	}

	start := time.Now()
	results, err := engine.PerftDivide(game, cfg.PerftDepth, cfg.Workers)
	if err != nil {
		return err
	}

	counts := make(map[string]uint64, len(results))
	var total uint64
	for _, r := range results {
		counts[r.Move.String()] = r.Nodes
		total += r.Nodes
	}

	moves := maps.Keys(counts)
	slices.Sort(moves)
	out := cfg.Output.Writer
	for _, m := range moves {
		fmt.Fprintf(out, "%s: %d\n", m, counts[m])
	}
	fmt.Fprintf(out, "\nMoves: %d\nNodes searched: %d\n", len(moves), total)

	log.Info().
		Int("depth", cfg.PerftDepth).
		Int("workers", cfg.Workers).
		Uint64("nodes", total).
		Dur("elapsed", time.Since(start)).
		Msg("perft finished")
	return nil
}
