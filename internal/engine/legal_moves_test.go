package engine

import (
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"
)

const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"start depth 1", InitialFEN, 1, 20},
		{"start depth 2", InitialFEN, 2, 400},
		{"start depth 3", InitialFEN, 3, 8902},
		{"kiwipete depth 1", kiwipeteFEN, 1, 48},
		{"kiwipete depth 2", kiwipeteFEN, 2, 2039},
		{"position 3 depth 1", position3FEN, 1, 14},
		{"position 3 depth 2", position3FEN, 2, 191},
		{"position 4 depth 1", position4FEN, 1, 6},
		{"position 4 depth 2", position4FEN, 2, 264},
		{"position 5 depth 1", position5FEN, 1, 44},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if testing.Short() && tt.depth > 2 {
				t.Skip("skipping deep perft in short mode")
			}
			t.Parallel()
			game := mustFEN(t, tt.fen)
			got, err := Perft(game, tt.depth)
			if err != nil {
				t.Fatalf("Perft(%d) error: %v", tt.depth, err)
			}
			if got != tt.want {
				t.Errorf("Perft(%q, %d) = %d; want %d", tt.fen, tt.depth, got, tt.want)
			}
		})
	}
}

func TestPerftDivide(t *testing.T) {
	game := mustFEN(t, kiwipeteFEN)
	results, err := PerftDivide(game, 2, 4)
	if err != nil {
		t.Fatalf("PerftDivide() error: %v", err)
	}
	if len(results) != 48 {
		t.Fatalf("PerftDivide() returned %d root moves; want 48", len(results))
	}

	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	if total != 2039 {
		t.Errorf("PerftDivide() total = %d; want 2039", total)
	}

	moves, err := LegalMoves(game)
	if err != nil {
		t.Fatalf("LegalMoves() error: %v", err)
	}
	for i, r := range results {
		if r.Move != moves[i] {
			t.Errorf("result %d is %v; want root move order %v", i, r.Move, moves[i])
		}
	}
	if GameToFEN(game) != GameToFEN(mustFEN(t, kiwipeteFEN)) {
		t.Error("PerftDivide changed the root game")
	}
}

// uciMoves renders moves the way dragontoothmg prints them: "e2e4", "e7e8q".
func uciMoves(moves []LegalMove) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		s := strings.ToLower(m.From.String() + m.To.String())
		if m.Promotion != 0 {
			s += strings.ToLower(string(m.Promotion.Letter()))
		}
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

func referenceMoves(fen string) []string {
	board := dragontoothmg.ParseFen(fen)
	var out []string
	for _, m := range board.GenerateLegalMoves() {
		out = append(out, m.String())
	}
	slices.Sort(out)
	return out
}

// TestLegalMoves_MatchReference compares full move lists with dragontoothmg,
// an independent bitboard move generator.
func TestLegalMoves_MatchReference(t *testing.T) {
	fens := []string{
		InitialFEN,
		kiwipeteFEN,
		position3FEN,
		position4FEN,
		position5FEN,
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
		"4k3/1P6/8/8/8/8/6p1/4K2R b K - 0 1",
		"R5k1/6pp/8/3qN3/8/1B6/8/6K1 b - - 0 1",
		"7k/8/p7/PpP5/K7/7r/8/1r6 w - b6 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			game := mustFEN(t, fen)
			moves, err := LegalMoves(game)
			if err != nil {
				t.Fatalf("LegalMoves() error: %v", err)
			}
			if diff := cmp.Diff(referenceMoves(fen), uciMoves(moves)); diff != "" {
				t.Errorf("LegalMoves(%q) mismatch (-reference +got):\n%s", fen, diff)
			}
		})
	}
}

func TestLegalMoves_Promotions(t *testing.T) {
	game := mustFEN(t, "1n5k/P7/8/8/8/8/8/4K3 w - - 0 1")
	moves, err := LegalMoves(game)
	if err != nil {
		t.Fatalf("LegalMoves() error: %v", err)
	}
	var pawnMoves []string
	for _, m := range moves {
		if m.From == sq("A7") {
			pawnMoves = append(pawnMoves, m.String())
		}
	}
	want := []string{
		"A7-A8=Q", "A7-A8=R", "A7-A8=B", "A7-A8=N",
		"A7-B8=Q", "A7-B8=R", "A7-B8=B", "A7-B8=N",
	}
	if diff := cmp.Diff(want, pawnMoves); diff != "" {
		t.Errorf("promotion moves mismatch (-want +got):\n%s", diff)
	}
}
