package chess

// Board represents a chess board with the state the rules need: the cells,
// the side to move and the remaining castling rights.
type Board struct {
	// The board squares indexed Squares[row][col]; row 0 is rank 1.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Castling rights indexed by Colour. Rights only ever go from true to false
	// during play.
	KingSideCastle  [2]bool
	QueenSideCastle [2]bool
}

// NewBoard creates a new empty board with White to move and no castling rights.
func NewBoard() *Board {
	return &Board{ToMove: White}
}

// NewInitialBoard creates a board in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[HomeRow(White)][col] = W(backRank[col])
		b.Squares[PawnRow(White)][col] = W(Pawn)
		b.Squares[PawnRow(Black)][col] = B(Pawn)
		b.Squares[HomeRow(Black)][col] = B(backRank[col])
	}

	b.ToMove = White
	b.KingSideCastle = [2]bool{true, true}
	b.QueenSideCastle = [2]bool{true, true}
}

// Get returns the piece on the given square, or Empty if the square is off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.OnBoard() {
		return Empty
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece on the given square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if !sq.OnBoard() {
		return
	}
	b.Squares[sq.Row][sq.Col] = piece
}

// CastlingAllowed reports whether the colour still holds the right to castle
// on the given side.
func (b *Board) CastlingAllowed(colour Colour, side CastlingSide) bool {
	if side == KingSide {
		return b.KingSideCastle[colour]
	}
	return b.QueenSideCastle[colour]
}

// ClearCastling removes a castling right.
func (b *Board) ClearCastling(colour Colour, side CastlingSide) {
	if side == KingSide {
		b.KingSideCastle[colour] = false
	} else {
		b.QueenSideCastle[colour] = false
	}
}

// FindKing locates the king of the given colour.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := MakeColouredPiece(colour, King)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == king {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := *b
	return &newBoard
}
