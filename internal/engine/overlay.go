package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IntendedMove is a hypothetical move that board reads can be routed through.
// Reads at From return Empty, reads at To return Piece and, when set, reads at
// Removed return Empty. The real board is never touched.
type IntendedMove struct {
	Piece   chess.Piece
	From    chess.Square
	To      chess.Square
	Removed *chess.Square
}

// pieceAt reads a square through the optional overlay.
func pieceAt(board *chess.Board, im *IntendedMove, sq chess.Square) chess.Piece {
	if im != nil {
		switch {
		case sq == im.From:
			return chess.Empty
		case sq == im.To:
			return im.Piece
		case im.Removed != nil && sq == *im.Removed:
			return chess.Empty
		}
	}
	return board.Get(sq)
}
