package chess

import "strings"

// ColourOf reports the colour of a coloured piece. ok is false for an empty cell.
func ColourOf(p Piece) (colour Colour, ok bool) {
	if p == Empty {
		return White, false
	}
	return ExtractColour(p), true
}

// IsWhite reports whether the cell holds a white piece.
func IsWhite(p Piece) bool {
	c, ok := ColourOf(p)
	return ok && c == White
}

// IsBlack reports whether the cell holds a black piece.
func IsBlack(p Piece) bool {
	c, ok := ColourOf(p)
	return ok && c == Black
}

// IsColour reports whether the cell holds a piece of the given colour.
func IsColour(p Piece, colour Colour) bool {
	c, ok := ColourOf(p)
	return ok && c == colour
}

// Describe returns a human readable name such as "White pawn".
func Describe(p Piece) string {
	if p == Empty {
		return "empty square"
	}
	kind := ExtractPiece(p)
	name := "unknown piece"
	if kind > Empty && kind < NumPieceValues {
		name = strings.ToLower(kind.String())
	}
	return ExtractColour(p).String() + " " + name
}

// PieceFromLetter maps one of PNBRQK, in either case, to a piece kind.
func PieceFromLetter(letter byte) (Piece, bool) {
	switch letter {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return Empty, false
}

// Symbol returns the FEN letter of a coloured piece: upper case for white,
// lower case for black, '.' for an empty cell.
func Symbol(p Piece) byte {
	if p == Empty {
		return '.'
	}
	letter := ExtractPiece(p).Letter()
	if ExtractColour(p) == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// FigurineSymbol returns the Unicode chess figure for a coloured piece.
func FigurineSymbol(p Piece) string {
	if p == Empty {
		return "."
	}
	white := []string{"", "♙", "♘", "♗", "♖", "♕", "♔"}
	black := []string{"", "♟", "♞", "♝", "♜", "♛", "♚"}
	kind := ExtractPiece(p)
	if kind <= Empty || kind >= NumPieceValues {
		return "?"
	}
	if ExtractColour(p) == White {
		return white[kind]
	}
	return black[kind]
}
