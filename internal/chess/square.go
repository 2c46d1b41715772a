package chess

import (
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Square addresses one board cell. Row 0 is rank 1 and Col 0 is file A.
type Square struct {
	Row int
	Col int
}

// NewSquare creates a square from row and column indices.
func NewSquare(row, col int) Square {
	return Square{Row: row, Col: col}
}

// OnBoard reports whether the square lies within the 8x8 board.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square dr rows and dc columns away.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String returns the square in "E2" form.
func (s Square) String() string {
	if !s.OnBoard() {
		return "??"
	}
	return string([]byte{byte(ColBase + s.Col), byte(RankBase + s.Row)})
}

// ParseSquare parses a square such as "E2" or "e2".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", text)
	}
	file := text[0]
	if file >= 'a' && file <= 'h' {
		file -= 'a' - 'A'
	}
	rank := text[1]
	if file < 'A' || file > 'H' || rank < '1' || rank > '8' {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", text)
	}
	return Square{Row: int(rank - RankBase), Col: int(file - ColBase)}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for literals in tests and tables.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}
