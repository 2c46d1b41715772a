package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
		want     RejectReason // NotRejected means legal
	}{
		// Pawns
		{"pawn single push", InitialFEN, "E2", "E3", NotRejected},
		{"pawn double push", InitialFEN, "E2", "E4", NotRejected},
		{"pawn triple push", InitialFEN, "E2", "E5", PieceCannotMove},
		{"pawn sideways", InitialFEN, "E2", "F2", PieceCannotMove},
		{"pawn diagonal onto empty", InitialFEN, "E2", "F3", PieceCannotMove},
		{"black pawn double push", InitialFEN, "D7", "D5", NotRejected},
		{"black pawn backwards", "4k3/8/8/3p4/8/8/8/4K3 b - - 0 1", "D5", "D6", PieceCannotMove},
		{"double push blocked halfway", "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", "E2", "E4", PieceCannotMove},
		{"double push from the wrong rank", "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1", "E3", "E5", PieceCannotMove},
		{"push onto a piece", "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", "E2", "E3", PieceCannotMove},
		{"pawn capture", "4k3/8/8/8/8/3n4/4P3/4K3 w - - 0 1", "E2", "D3", NotRejected},
		{"pawn capture of own piece", "4k3/8/8/8/8/3N4/4P3/4K3 w - - 0 1", "E2", "D3", OccupiedByOwnPiece},

		// Knights
		{"knight jump", InitialFEN, "G1", "F3", NotRejected},
		{"knight over pieces", InitialFEN, "B1", "C3", NotRejected},
		{"knight onto own pawn", InitialFEN, "G1", "E2", OccupiedByOwnPiece},
		{"knight straight", InitialFEN, "G1", "G3", PieceCannotMove},

		// Sliders
		{"bishop blocked", InitialFEN, "F1", "C4", PieceCannotMove},
		{"bishop diagonal", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", "F1", "A6", NotRejected},
		{"bishop straight", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", "F1", "F5", PieceCannotMove},
		{"rook file", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "A1", "A8", NotRejected},
		{"rook diagonal", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "A1", "C3", PieceCannotMove},
		{"rook through the king", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "A1", "H1", PieceCannotMove},
		{"queen diagonal", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", "D1", "H5", NotRejected},
		{"queen rank", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", "D1", "A1", NotRejected},
		{"queen knight jump", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", "D1", "E3", PieceCannotMove},
		{"rook captures enemy", "4k2r/8/8/8/8/8/8/4K2R w - - 0 1", "H1", "H8", NotRejected},

		// Kings
		{"king step", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "E1", "D2", NotRejected},
		{"king two squares up", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "E1", "E3", PieceCannotMove},
		{"king into check", "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1", "E1", "E2", LeavesKingInCheck},
		{"king captures protected piece", "4k3/8/8/4r3/8/8/4r3/4K3 w - - 0 1", "E1", "E2", LeavesKingInCheck},
		{"king captures loose piece", "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1", "E1", "E2", NotRejected},
		{"king next to king", "8/8/8/3k4/8/3K4/8/8 w - - 0 1", "D3", "D4", LeavesKingInCheck},

		// Pins and checks
		{"pinned rook leaves the file", "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1", "E2", "A2", LeavesKingInCheck},
		{"pinned rook along the file", "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1", "E2", "E5", NotRejected},
		{"move ignoring check", "4k3/8/8/8/8/8/4r3/R3K3 w - - 0 1", "A1", "A2", LeavesKingInCheck},
		{"rook onto own king", "4k3/4r3/8/8/8/8/8/R3K3 w - - 0 1", "A1", "E1", OccupiedByOwnPiece},
		{"interpose", "4k3/4r3/8/8/8/8/R7/4K3 w - - 0 1", "A2", "E2", NotRejected},
		{"empty source", InitialFEN, "E4", "E5", NoPiece},
		{"same square", InitialFEN, "E2", "E2", PieceCannotMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := mustFEN(t, tt.fen)
			v, err := Validate(game, sq(tt.from), sq(tt.to))
			if err != nil {
				t.Fatalf("Validate(%s, %s) error: %v", tt.from, tt.to, err)
			}
			if v.Legal != (tt.want == NotRejected) || v.Reason != tt.want {
				t.Errorf("Validate(%s, %s) = legal %v reason %q; want reason %q",
					tt.from, tt.to, v.Legal, v.Reason, tt.want)
			}
		})
	}
}

func TestValidate_Castling(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
		want     RejectReason
		castling Castling
	}{
		{
			name: "king side", fen: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			from: "E1", to: "G1",
			castling: Castling{IsApplied: true, RookBefore: sq("H1"), RookAfter: sq("F1")},
		},
		{
			name: "queen side", fen: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			from: "E1", to: "C1",
			castling: Castling{IsApplied: true, RookBefore: sq("A1"), RookAfter: sq("D1")},
		},
		{
			name: "black queen side", fen: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			from: "E8", to: "C8",
			castling: Castling{IsApplied: true, RookBefore: sq("A8"), RookAfter: sq("D8")},
		},
		{
			name: "pieces in the way", fen: InitialFEN,
			from: "E1", to: "G1", want: CastlingBlocked,
		},
		{
			name: "knight on B1 blocks the queen side", fen: "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1",
			from: "E1", to: "C1", want: CastlingBlocked,
		},
		{
			name: "right already lost", fen: "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1",
			from: "E1", to: "G1", want: CastlingRightLost,
		},
		{
			name: "out of check", fen: "4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1",
			from: "E1", to: "G1", want: CastlingOutOfCheck,
		},
		{
			name: "through check", fen: "4k3/8/8/8/8/8/5r2/R3K2R w KQ - 0 1",
			from: "E1", to: "G1", want: CastlingThroughCheck,
		},
		{
			name: "other side unaffected", fen: "4k3/8/8/8/8/8/5r2/R3K2R w KQ - 0 1",
			from: "E1", to: "C1",
			castling: Castling{IsApplied: true, RookBefore: sq("A1"), RookAfter: sq("D1")},
		},
		{
			name: "into check", fen: "4k3/8/8/8/8/8/6r1/R3K2R w KQ - 0 1",
			from: "E1", to: "G1", want: LeavesKingInCheck,
		},
		{
			name: "attacked B1 does not matter", fen: "4k3/8/8/8/8/8/1r6/R3K2R w KQ - 0 1",
			from: "E1", to: "C1",
			castling: Castling{IsApplied: true, RookBefore: sq("A1"), RookAfter: sq("D1")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := mustFEN(t, tt.fen)
			v, err := Validate(game, sq(tt.from), sq(tt.to))
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if v.Reason != tt.want {
				t.Fatalf("Validate(%s, %s) reason = %q; want %q", tt.from, tt.to, v.Reason, tt.want)
			}
			if diff := cmp.Diff(tt.castling, v.Castling); diff != "" {
				t.Errorf("Castling mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate_EnPassant(t *testing.T) {
	game := chess.NewGame()
	mustPlay(t, game, "E2-E4", "A7-A6", "E4-E5", "D7-D5")

	v, err := Validate(game, sq("E5"), sq("D6"))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	want := Verdict{Legal: true, EnPassant: EnPassant{IsApplied: true, PawnCaptured: sq("D5")}}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("Verdict mismatch (-want +got):\n%s", diff)
	}

	// The right lapses after any other ply.
	mustPlay(t, game, "G1-F3", "A6-A5")
	v, err = Validate(game, sq("E5"), sq("D6"))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if v.Legal {
		t.Error("en passant accepted two plies late")
	}
}

func TestValidate_EnPassantWrongFile(t *testing.T) {
	game := chess.NewGame()
	mustPlay(t, game, "E2-E4", "A7-A6", "E4-E5", "D7-D5")

	// F6 is diagonal and empty but the double step happened on the D file.
	v, err := Validate(game, sq("E5"), sq("F6"))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if v.Legal || v.EnPassant.IsApplied {
		t.Errorf("Validate(E5, F6) = %+v; want rejected", v)
	}
}

func TestValidate_EnPassantSingleSteps(t *testing.T) {
	game := chess.NewGame()
	// D7-D6-D5 reaches the same square in two single steps.
	mustPlay(t, game, "E2-E4", "D7-D6", "E4-E5", "H7-H6", "A2-A3", "D6-D5")

	v, err := Validate(game, sq("E5"), sq("D6"))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if v.Legal {
		t.Error("en passant accepted after a single step")
	}
}

func TestValidate_EnPassantExposesKing(t *testing.T) {
	// Removing both pawns from the fifth rank would open the rook's line.
	game := mustFEN(t, "8/8/8/KPp4r/8/8/8/7k w - c6 0 1")
	v, err := Validate(game, sq("B5"), sq("C6"))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if v.Reason != LeavesKingInCheck {
		t.Errorf("Validate(B5, C6) reason = %q; want %q", v.Reason, LeavesKingInCheck)
	}
}

func TestValidate_Promotion(t *testing.T) {
	game := mustFEN(t, "1n5k/P7/8/8/8/8/8/4K3 w - - 0 1")

	for _, to := range []string{"A8", "B8"} {
		v, err := Validate(game, sq("A7"), sq(to))
		if err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
		if !v.Legal || !v.Promotion.IsApplied {
			t.Errorf("Validate(A7, %s) = %+v; want legal promotion", to, v)
		}
		if v.Promotion.PieceAfter != chess.Empty {
			t.Errorf("Validate chose a promotion piece %v", v.Promotion.PieceAfter)
		}
	}
}

func TestValidate_ContractViolation(t *testing.T) {
	game := chess.NewGame()
	game.Board.Set(sq("E4"), chess.MakeColouredPiece(chess.White, chess.NumPieceValues))

	_, err := Validate(game, sq("E4"), sq("E5"))
	if !errors.Is(err, errors.ErrContractViolation) {
		t.Errorf("Validate() on an unknown piece error = %v; want ErrContractViolation", err)
	}

	_, err = Validate(game, sq("E2"), chess.NewSquare(8, 4))
	if !errors.Is(err, errors.ErrContractViolation) {
		t.Errorf("Validate() off the board error = %v; want ErrContractViolation", err)
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	game := chess.NewGame()
	mustPlay(t, game, "E2-E4", "A7-A6", "E4-E5", "D7-D5")
	before := *game.Board
	rounds := append([]chess.Round(nil), game.Rounds...)

	for i := 0; i < 3; i++ {
		if _, err := Validate(game, sq("E5"), sq("D6")); err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
		if _, err := Validate(game, sq("E1"), sq("E2")); err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
	}

	if diff := cmp.Diff(before, *game.Board); diff != "" {
		t.Errorf("Validate mutated the board (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(rounds, game.Rounds); diff != "" {
		t.Errorf("Validate mutated the move log (-before +after):\n%s", diff)
	}
}
