package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// kingHomeCol is the file of both kings at the start of the game.
const kingHomeCol = 4

// rookHomeCol returns the corner file of the rook used for castling on side.
func rookHomeCol(side chess.CastlingSide) int {
	if side == chess.KingSide {
		return chess.BoardSize - 1
	}
	return 0
}

// validateCastling checks a two-square king move. The destination square
// itself is covered by the self-check test that follows in Validate.
func validateCastling(game *chess.Game, from, to chess.Square, colour chess.Colour) (Verdict, error) {
	board := game.Board
	home := chess.NewSquare(chess.HomeRow(colour), kingHomeCol)
	if from != home {
		return reject(PieceCannotMove), nil
	}

	side := chess.QueenSide
	if to.Col > from.Col {
		side = chess.KingSide
	}
	rookSq := chess.NewSquare(home.Row, rookHomeCol(side))

	if KingInCheck(board, colour, nil) {
		return reject(CastlingOutOfCheck), nil
	}

	free, err := IsPathFree(board, from, rookSq, Horizontal)
	if err != nil {
		return Verdict{}, err
	}
	if !free {
		return reject(CastlingBlocked), nil
	}

	rook := chess.MakeColouredPiece(colour, chess.Rook)
	if !board.CastlingAllowed(colour, side) || board.Get(rookSq) != rook {
		return reject(CastlingRightLost), nil
	}

	step := sign(to.Col - from.Col)
	crossed := from.Offset(0, step)
	king := board.Get(from)
	if AttacksOn(board, crossed, colour, &IntendedMove{Piece: king, From: from, To: crossed}).IsUnderAttack {
		return reject(CastlingThroughCheck), nil
	}

	return Verdict{
		Legal: true,
		Castling: Castling{
			IsApplied:  true,
			RookBefore: rookSq,
			RookAfter:  to.Offset(0, -step),
		},
	}, nil
}
