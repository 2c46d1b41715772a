package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func sq(text string) chess.Square {
	return chess.MustParseSquare(text)
}

func mustFEN(t *testing.T, fen string) *chess.Game {
	t.Helper()
	game, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return game
}

// mustPlay plays every move in order and fails the test on the first refusal.
func mustPlay(t *testing.T, game *chess.Game, moves ...string) Outcome {
	t.Helper()
	var out Outcome
	for _, m := range moves {
		var err error
		out, err = Play(game, m)
		if err != nil {
			t.Fatalf("Play(%q) error: %v", m, err)
		}
	}
	return out
}

func attackerSquares(ua UnderAttack) []string {
	var out []string
	for _, a := range ua.Attackers {
		out = append(out, a.Square.String()+" "+a.Direction.String())
	}
	return out
}
