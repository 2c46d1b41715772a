// chess is a two-player terminal chess game with move replay and perft tools.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/render"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	os.Exit(realMain())
}

func realMain() int {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		return 0
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	closeLog, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if err := run(cfg, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// run executes the mode selected by the configuration: perft, move replay
// or interactive play reading commands from in.
func run(cfg *config.Config, in io.Reader) error {
	log := cfg.Log.Logger()
	log.Debug().
		Str("fen", cfg.StartFEN).
		Int("moves", len(cfg.Moves)).
		Int("perft", cfg.PerftDepth).
		Msg("starting")

	if cfg.PerftDepth > 0 {
		return runPerft(cfg, log)
	}

	s := session.New(cfg.StartFEN, log)
	tw := render.NewTextWriter(cfg.Output.Writer, cfg.Output.Unicode, cfg.Output.LastMoves)

	if len(cfg.Moves) > 0 {
		if err := replay(cfg, s, tw); err != nil {
			return err
		}
	} else {
		ui := newInteractive(s, tw, in, cfg.Output.Writer)
		if err := ui.loop(); err != nil {
			return err
		}
	}

	if cfg.Output.SVGFile != "" && s.Game() != nil {
		return writeSVG(cfg.Output.SVGFile, s.Game(), log)
	}
	return nil
}

// replay plays the configured moves and prints the resulting position.
func replay(cfg *config.Config, s *session.Session, tw *render.TextWriter) error {
	result := s.Replay(cfg.Moves)
	out := cfg.Output.Writer
	for _, report := range result.Reports {
		for _, msg := range report.Messages {
			fmt.Fprintln(out, msg)
		}
	}
	if s.Game() == nil {
		return result.Err
	}
	if err := tw.WriteGame(s.Game()); err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("%s: %w", result.ErrorMsg, result.Err)
	}
	return nil
}

// writeSVG saves an SVG image of the board.
func writeSVG(path string, game *chess.Game, log zerolog.Logger) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating SVG file: %w", err)
	}
	if err := render.NewSVGWriter(file, 0).WriteGame(game); err != nil {
		file.Close()
		return fmt.Errorf("writing SVG file %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return err
	}
	log.Info().Str("file", path).Msg("board image written")
	return nil
}

// setupLogFile points the log at the file named by -log. The returned
// function closes it.
func setupLogFile(cfg *config.Config) (func(), error) {
	if *logFile == "" {
		return func() {}, nil
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", *logFile, err)
	}
	cfg.Log.Writer = file
	return func() { file.Close() }, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess game for the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands while playing:\n")
	fmt.Fprintf(os.Stderr, "  N  start a new game\n")
	fmt.Fprintf(os.Stderr, "  M  move a piece (source square, destination, promotion if needed)\n")
	fmt.Fprintf(os.Stderr, "  Q  quit\n")
}
