package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestIsPathFree(t *testing.T) {
	game := mustFEN(t, "4k3/8/8/3p4/8/8/8/R3K2R w KQ - 0 1")

	tests := []struct {
		name     string
		from, to string
		dir      Direction
		want     bool
	}{
		{"rook to the king", "A1", "E1", Horizontal, true},
		{"rook past the king", "A1", "H1", Horizontal, false},
		{"adjacent squares", "E1", "F1", Horizontal, true},
		{"up the file", "A1", "A8", Vertical, true},
		{"diagonal to the blocker", "A2", "D5", Diagonal, true},
		{"diagonal past the blocker", "A2", "E6", Diagonal, false},
		{"downward diagonal", "H8", "A1", Diagonal, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsPathFree(game.Board, sq(tt.from), sq(tt.to), tt.dir)
			if err != nil {
				t.Fatalf("IsPathFree() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsPathFree(%s, %s, %v) = %v; want %v", tt.from, tt.to, tt.dir, got, tt.want)
			}
		})
	}
}

func TestIsPathFree_ContractViolation(t *testing.T) {
	board := mustFEN(t, InitialFEN).Board

	tests := []struct {
		name     string
		from, to string
		dir      Direction
	}{
		{"diagonal claimed for a file", "A1", "A5", Diagonal},
		{"horizontal claimed for a diagonal", "C1", "F4", Horizontal},
		{"vertical claimed for a rank", "A1", "H1", Vertical},
		{"knight geometry", "B1", "C3", LShape},
		{"unequal deltas", "A1", "C4", Diagonal},
		{"same square", "E4", "E4", Vertical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IsPathFree(board, sq(tt.from), sq(tt.to), tt.dir)
			if !errors.Is(err, errors.ErrContractViolation) {
				t.Errorf("IsPathFree(%s, %s, %v) error = %v; want ErrContractViolation", tt.from, tt.to, tt.dir, err)
			}
		})
	}
}

func TestCanBeBlocked(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		attacker string
		king     string
		dir      Direction
		want     bool
	}{
		{
			name:     "knight interposes on the back rank",
			fen:      "R5k1/3n1ppp/8/8/8/8/8/6K1 b - - 0 1",
			attacker: "A8", king: "G8", dir: Horizontal,
			want: true,
		},
		{
			name:     "nothing can interpose",
			fen:      "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1",
			attacker: "A8", king: "G8", dir: Horizontal,
			want: false,
		},
		{
			name:     "pinned bishop cannot interpose",
			fen:      "4k3/8/4b3/8/Q7/8/8/4R1K1 b - - 0 1",
			attacker: "A4", king: "E8", dir: Diagonal,
			want: false,
		},
		{
			name:     "pawn double step interposes",
			fen:      "4k3/8/8/8/q3K3/8/3P4/8 w - - 0 1",
			attacker: "A4", king: "E4", dir: Horizontal,
			want: true,
		},
		{
			name:     "adjacent attacker leaves no square",
			fen:      "4k3/8/8/8/8/8/8/3qK3 w - - 0 1",
			attacker: "D1", king: "E1", dir: Horizontal,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := mustFEN(t, tt.fen)
			got, err := CanBeBlocked(game, sq(tt.attacker), sq(tt.king), tt.dir)
			if err != nil {
				t.Fatalf("CanBeBlocked() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("CanBeBlocked(%s, %s) = %v; want %v", tt.attacker, tt.king, got, tt.want)
			}
		})
	}
}

func TestCanBeBlocked_ContractViolation(t *testing.T) {
	game := mustFEN(t, "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	_, err := CanBeBlocked(game, sq("A8"), sq("G8"), Diagonal)
	if !errors.Is(err, errors.ErrContractViolation) {
		t.Errorf("CanBeBlocked() error = %v; want ErrContractViolation", err)
	}
	_, err = CanBeBlocked(game, sq("A8"), sq("D5"), Horizontal)
	if !errors.Is(err, errors.ErrContractViolation) {
		t.Errorf("CanBeBlocked() on an empty king square error = %v; want ErrContractViolation", err)
	}
}
