package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// KingInCheck reports whether the given colour's king is attacked, reading the
// board through the optional overlay. When the overlay moves that king, its
// destination is tested. A board without that king is never in check.
func KingInCheck(board *chess.Board, colour chess.Colour, im *IntendedMove) bool {
	king := chess.MakeColouredPiece(colour, chess.King)
	var kingSq chess.Square
	if im != nil && im.Piece == king {
		kingSq = im.To
	} else {
		sq, ok := board.FindKing(colour)
		if !ok {
			return false
		}
		kingSq = sq
	}
	return AttacksOn(board, kingSq, colour, im).IsUnderAttack
}

// IsInCheck reports whether the side to move is in check.
func IsInCheck(game *chess.Game) bool {
	return KingInCheck(game.Board, game.Board.ToMove, nil)
}

// IsCheckmate reports whether the side to move is checkmated. A positive
// answer is terminal: the game is marked finished and every later call
// returns true.
func IsCheckmate(game *chess.Game) (bool, error) {
	if game.Finished {
		return true, nil
	}
	mate, err := checkmated(game)
	if err != nil {
		return false, err
	}
	if mate {
		game.Finished = true
	}
	return mate, nil
}

func checkmated(game *chess.Game) (bool, error) {
	board := game.Board
	colour := board.ToMove
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return false, nil
	}

	attack := AttacksOn(board, kingSq, colour, nil)
	if !attack.IsUnderAttack {
		return false, nil
	}

	if hasEscape(board, kingSq, colour) {
		return false, nil
	}

	// Only the king can answer a double check.
	if len(attack.Attackers) > 1 {
		return true, nil
	}

	attacker := attack.Attackers[0]
	capturable, err := ReachableBy(game, attacker.Square, colour)
	if err != nil || capturable {
		return false, err
	}

	switch chess.ExtractPiece(board.Get(attacker.Square)) {
	case chess.Knight:
		return true, nil
	case chess.Pawn:
		removable, err := capturableEnPassant(game, attacker.Square, colour)
		if err != nil {
			return false, err
		}
		return !removable, nil
	}

	blockable, err := CanBeBlocked(game, attacker.Square, kingSq, attacker.Direction)
	if err != nil {
		return false, err
	}
	return !blockable, nil
}

// hasEscape reports whether the king can step to a neighbouring square that
// is empty or holds an enemy piece without being attacked there.
func hasEscape(board *chess.Board, kingSq chess.Square, colour chess.Colour) bool {
	king := board.Get(kingSq)
	for _, off := range kingOffsets {
		sq := kingSq.Offset(off[0], off[1])
		if !sq.OnBoard() || chess.IsColour(board.Get(sq), colour) {
			continue
		}
		im := &IntendedMove{Piece: king, From: kingSq, To: sq}
		if !AttacksOn(board, sq, colour, im).IsUnderAttack {
			return true
		}
	}
	return false
}

// capturableEnPassant reports whether a checking pawn that has just advanced
// two squares can be taken en passant by a pawn of the given colour.
func capturableEnPassant(game *chess.Game, pawnSq chess.Square, colour chess.Colour) (bool, error) {
	own := chess.MakeColouredPiece(colour, chess.Pawn)
	dest := pawnSq.Offset(chess.ColourOffset(colour), 0)
	if !dest.OnBoard() {
		return false, nil
	}
	for _, dc := range []int{-1, 1} {
		from := pawnSq.Offset(0, dc)
		if !from.OnBoard() || game.Board.Get(from) != own {
			continue
		}
		v, err := Validate(game, from, dest)
		if err != nil {
			return false, err
		}
		if v.Legal && v.EnPassant.IsApplied && v.EnPassant.PawnCaptured == pawnSq {
			return true, nil
		}
	}
	return false, nil
}
