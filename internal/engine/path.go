package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// directionOf classifies the line from one square to another.
func directionOf(from, to chess.Square) (Direction, bool) {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	switch {
	case dr == 0 && dc == 0:
		return 0, false
	case dr == 0:
		return Horizontal, true
	case dc == 0:
		return Vertical, true
	case abs(dr) == abs(dc):
		return Diagonal, true
	case abs(dr)*abs(dc) == 2:
		return LShape, true
	}
	return 0, false
}

// between returns the squares strictly between from and to. The squares must
// lie on a straight line matching dir.
func between(from, to chess.Square, dir Direction) ([]chess.Square, error) {
	if !from.OnBoard() || !to.OnBoard() {
		return nil, errors.Contractf("path %v-%v leaves the board", from, to)
	}
	actual, ok := directionOf(from, to)
	if !ok || actual != dir || dir == LShape {
		return nil, errors.Contractf("path %v-%v is not %s", from, to, dir)
	}

	stepR, stepC := sign(to.Row-from.Row), sign(to.Col-from.Col)
	var squares []chess.Square
	for cur := from.Offset(stepR, stepC); cur != to; cur = cur.Offset(stepR, stepC) {
		squares = append(squares, cur)
	}
	return squares, nil
}

// IsPathFree reports whether every square strictly between from and to is
// empty. dir must match the geometry of the two squares.
func IsPathFree(board *chess.Board, from, to chess.Square, dir Direction) (bool, error) {
	squares, err := between(from, to, dir)
	if err != nil {
		return false, err
	}
	for _, sq := range squares {
		if board.Get(sq) != chess.Empty {
			return false, nil
		}
	}
	return true, nil
}

// CanBeBlocked reports whether the side owning the king on kingSq can move a
// piece onto any square between the attacker and the king.
func CanBeBlocked(game *chess.Game, attackerSq, kingSq chess.Square, dir Direction) (bool, error) {
	colour, ok := chess.ColourOf(game.Board.Get(kingSq))
	if !ok {
		return false, errors.Contractf("no piece to shield on %v", kingSq)
	}
	squares, err := between(attackerSq, kingSq, dir)
	if err != nil {
		return false, err
	}
	for _, sq := range squares {
		reachable, err := ReachableBy(game, sq, colour)
		if err != nil {
			return false, err
		}
		if reachable {
			return true, nil
		}
	}
	return false, nil
}
