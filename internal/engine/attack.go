package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Direction is the line along which an attack or move travels.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
	Diagonal
	LShape // knight jump; never blockable
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	case LShape:
		return "L-shape"
	}
	return "unknown"
}

// Attacker is an enemy piece attacking a square and the line it attacks along.
type Attacker struct {
	Square    chess.Square
	Direction Direction
}

// UnderAttack lists every attacker of a square.
type UnderAttack struct {
	IsUnderAttack bool
	Attackers     []Attacker
}

type ray struct {
	dr, dc int
	dir    Direction
}

var rays = []ray{
	{0, -1, Horizontal}, {0, 1, Horizontal},
	{1, 0, Vertical}, {-1, 0, Vertical},
	{1, -1, Diagonal}, {1, 1, Diagonal}, {-1, -1, Diagonal}, {-1, 1, Diagonal},
}

var knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

var kingOffsets = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

// AttacksOn reports which pieces of the defender's opponent attack sq, reading
// the board through the optional overlay. The first piece met on each ray
// ends that ray.
func AttacksOn(board *chess.Board, sq chess.Square, defender chess.Colour, im *IntendedMove) UnderAttack {
	var result UnderAttack

	for _, r := range rays {
		for dist := 1; ; dist++ {
			cur := sq.Offset(r.dr*dist, r.dc*dist)
			if !cur.OnBoard() {
				break
			}
			p := pieceAt(board, im, cur)
			if p == chess.Empty {
				continue
			}
			if !chess.IsColour(p, defender) && attacksAlong(chess.ExtractPiece(p), r, dist, defender) {
				result.Attackers = append(result.Attackers, Attacker{Square: cur, Direction: r.dir})
			}
			break
		}
	}

	enemyKnight := chess.MakeColouredPiece(defender.Opposite(), chess.Knight)
	for _, off := range knightOffsets {
		cur := sq.Offset(off[0], off[1])
		if cur.OnBoard() && pieceAt(board, im, cur) == enemyKnight {
			result.Attackers = append(result.Attackers, Attacker{Square: cur, Direction: LShape})
		}
	}

	result.IsUnderAttack = len(result.Attackers) > 0
	return result
}

// attacksAlong reports whether an enemy piece of the given kind, found dist
// steps out on ray r, attacks the square the ray started from.
func attacksAlong(kind chess.Piece, r ray, dist int, defender chess.Colour) bool {
	switch kind {
	case chess.Queen:
		return true
	case chess.Rook:
		return r.dir == Horizontal || r.dir == Vertical
	case chess.Bishop:
		return r.dir == Diagonal
	case chess.King:
		return dist == 1
	case chess.Pawn:
		// An enemy pawn captures towards the defender, so it sits one row
		// further along the defender's own direction of travel.
		return r.dir == Diagonal && dist == 1 && r.dr == chess.ColourOffset(defender)
	}
	return false
}

// ReachableBy reports whether some piece of the given colour has a legal move
// to sq on the real board. Pinned pieces do not count.
func ReachableBy(game *chess.Game, sq chess.Square, colour chess.Colour) (bool, error) {
	for _, from := range reachers(game.Board, sq, colour) {
		v, err := Validate(game, from, sq)
		if err != nil {
			return false, err
		}
		if v.Legal {
			return true, nil
		}
	}
	return false, nil
}

// reachers lists the squares of pieces of the given colour whose movement
// pattern could bring them to target. Pawns are found by their pushes and
// by diagonal steps, which may be captures or en passant.
func reachers(board *chess.Board, target chess.Square, colour chess.Colour) []chess.Square {
	var out []chess.Square

	for _, r := range rays {
		for dist := 1; ; dist++ {
			cur := target.Offset(r.dr*dist, r.dc*dist)
			if !cur.OnBoard() {
				break
			}
			p := board.Get(cur)
			if p == chess.Empty {
				continue
			}
			if chess.IsColour(p, colour) && reachesAlong(chess.ExtractPiece(p), cur, r, dist, colour) {
				out = append(out, cur)
			}
			break
		}
	}

	knight := chess.MakeColouredPiece(colour, chess.Knight)
	for _, off := range knightOffsets {
		cur := target.Offset(off[0], off[1])
		if cur.OnBoard() && board.Get(cur) == knight {
			out = append(out, cur)
		}
	}
	return out
}

// reachesAlong reports whether a piece of the given kind at from, dist steps
// out on ray r from the target, moves along that ray back to the target.
func reachesAlong(kind chess.Piece, from chess.Square, r ray, dist int, colour chess.Colour) bool {
	switch kind {
	case chess.Queen:
		return true
	case chess.Rook:
		return r.dir == Horizontal || r.dir == Vertical
	case chess.Bishop:
		return r.dir == Diagonal
	case chess.King:
		return dist == 1 || (r.dir == Horizontal && dist == 2 && from.Col == 4)
	case chess.Pawn:
		if r.dr != -chess.ColourOffset(colour) {
			return false
		}
		if r.dir == Vertical {
			return dist == 1 || (dist == 2 && from.Row == chess.PawnRow(colour))
		}
		return r.dir == Diagonal && dist == 1
	}
	return false
}
