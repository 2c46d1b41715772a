// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Game setup
	startFEN = flag.String("fen", "", "Start new games from this FEN position")
	moveList = flag.String("moves", "", "Replay these moves (e.g. 'E2-E4,E7-E5'), print the board and exit")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count leaf positions to this depth for every root move and exit")
	workers    = flag.Int("workers", 0, "Number of perft workers (0 = auto-detect based on CPU cores)")

	// Output options
	svgFile   = flag.String("svg", "", "Write an SVG image of the final board to this file")
	lastMoves = flag.Int("last", config.DefaultLastMoves, "Number of rounds listed in the situation panel")
	unicode   = flag.Bool("unicode", false, "Draw pieces with Unicode chess symbols")

	// Logging
	logFile  = flag.String("log", "", "Write the structured log to this file (default: stderr)")
	logLevel = flag.String("loglevel", "warn", "Log level: debug, info, warn, error")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyGameFlags(cfg)
	applyPerftFlags(cfg)
	applyOutputFlags(cfg)
	cfg.Log.Level = *logLevel
}

// applyGameFlags configures the start position and replayed moves.
func applyGameFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.Moves = config.ParseMoveList(*moveList)
}

// applyPerftFlags configures perft depth and workers.
func applyPerftFlags(cfg *config.Config) {
	cfg.PerftDepth = *perftDepth
	if *workers > 0 {
		cfg.Workers = *workers
	}
}

// applyOutputFlags configures board output.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.SVGFile = *svgFile
	cfg.Output.LastMoves = *lastMoves
	cfg.Output.Unicode = *unicode
}
