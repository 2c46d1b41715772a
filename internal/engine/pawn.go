package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// validatePawn covers pushes, captures, en passant and promotion. A diagonal
// onto an own piece passes here and is refused by the common checks.
func validatePawn(game *chess.Game, from, to chess.Square, colour chess.Colour) Verdict {
	board := game.Board
	forward := chess.ColourOffset(colour)
	dr, dc := to.Row-from.Row, to.Col-from.Col
	target := board.Get(to)

	var v Verdict
	switch {
	case dc == 0 && dr == forward:
		v.Legal = target == chess.Empty
	case dc == 0 && dr == 2*forward:
		v.Legal = from.Row == chess.PawnRow(colour) &&
			target == chess.Empty &&
			board.Get(from.Offset(forward, 0)) == chess.Empty
	case abs(dc) == 1 && dr == forward:
		if target != chess.Empty {
			v.Legal = true
		} else if victim, ok := enPassantVictim(game, from, to, colour); ok {
			v.Legal = true
			v.EnPassant = EnPassant{IsApplied: true, PawnCaptured: victim}
		}
	}
	if !v.Legal {
		return reject(PieceCannotMove)
	}

	if to.Row == chess.PromotionRow(colour) {
		v.Promotion.IsApplied = true
	}
	return v
}

// enPassantVictim returns the square of the pawn an en passant capture from
// from to to would take. The capture exists only if the last ply was that
// pawn's two-square advance.
func enPassantVictim(game *chess.Game, from, to chess.Square, colour chess.Colour) (chess.Square, bool) {
	forward := chess.ColourOffset(colour)
	if from.Row != chess.PawnRow(colour)+3*forward {
		return chess.Square{}, false
	}

	last, ok := game.LastMove()
	if !ok {
		return chess.Square{}, false
	}
	lastFrom, lastTo, _, err := chess.ParseMove(last)
	if err != nil {
		return chess.Square{}, false
	}

	victim := chess.NewSquare(from.Row, to.Col)
	if lastTo != victim || lastFrom != victim.Offset(2*forward, 0) {
		return chess.Square{}, false
	}
	if game.Board.Get(victim) != chess.MakeColouredPiece(colour.Opposite(), chess.Pawn) {
		return chess.Square{}, false
	}
	return victim, true
}
