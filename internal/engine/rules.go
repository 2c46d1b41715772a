// Package engine implements the rules of chess on top of the chess package:
// attack detection, move validation, check and checkmate, move execution
// and legal move generation.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// RejectReason explains why a move was refused.
type RejectReason int

const (
	NotRejected RejectReason = iota
	NoPiece
	PieceCannotMove
	OccupiedByOwnPiece
	LeavesKingInCheck
	CastlingOutOfCheck
	CastlingBlocked
	CastlingRightLost
	CastlingThroughCheck
)

// String returns the human readable reason.
func (r RejectReason) String() string {
	switch r {
	case NotRejected:
		return ""
	case NoPiece:
		return "there is no piece on that square"
	case PieceCannotMove:
		return "piece can not move to that square"
	case OccupiedByOwnPiece:
		return "square is occupied by a piece of the same colour"
	case LeavesKingInCheck:
		return "move would leave the king in check"
	case CastlingOutOfCheck:
		return "can not castle out of check"
	case CastlingBlocked:
		return "castling path is blocked"
	case CastlingRightLost:
		return "castling is no longer allowed on that side"
	case CastlingThroughCheck:
		return "king would cross an attacked square"
	}
	return "unknown reason"
}

// EnPassant describes an en passant capture. PawnCaptured is the square of
// the captured pawn, which differs from the destination.
type EnPassant struct {
	IsApplied    bool
	PawnCaptured chess.Square
}

// Castling describes the rook relocation of a castling move.
type Castling struct {
	IsApplied  bool
	RookBefore chess.Square
	RookAfter  chess.Square
}

// Promotion describes a pawn reaching the far rank. PieceAfter is the
// coloured replacement piece and is filled in by the caller.
type Promotion struct {
	IsApplied  bool
	PieceAfter chess.Piece
}

// Verdict is the outcome of validating one move.
type Verdict struct {
	Legal     bool
	Reason    RejectReason
	EnPassant EnPassant
	Castling  Castling
	Promotion Promotion
}

func reject(reason RejectReason) Verdict {
	return Verdict{Reason: reason}
}

// Validate decides whether the piece on from may move to to. It never
// mutates the game; hypothetical positions are read through an IntendedMove.
// Turn order is not checked here. An error is returned only for broken
// preconditions, never for an illegal move.
func Validate(game *chess.Game, from, to chess.Square) (Verdict, error) {
	if !from.OnBoard() || !to.OnBoard() {
		return Verdict{}, errors.Contractf("move %v-%v leaves the board", from, to)
	}
	board := game.Board
	piece := board.Get(from)
	if piece == chess.Empty {
		return reject(NoPiece), nil
	}
	if from == to {
		return reject(PieceCannotMove), nil
	}
	colour := chess.ExtractColour(piece)

	var v Verdict
	var err error
	switch kind := chess.ExtractPiece(piece); kind {
	case chess.Pawn:
		v = validatePawn(game, from, to, colour)
	case chess.Knight:
		v = validateKnight(from, to)
	case chess.Bishop, chess.Rook, chess.Queen:
		v, err = validateSlider(board, kind, from, to)
	case chess.King:
		v, err = validateKing(game, from, to, colour)
	default:
		return Verdict{}, errors.Contractf("unrecognised piece value %d on %v", piece, from)
	}
	if err != nil || !v.Legal {
		return v, err
	}

	if chess.IsColour(board.Get(to), colour) {
		return reject(OccupiedByOwnPiece), nil
	}

	im := &IntendedMove{Piece: piece, From: from, To: to}
	if v.EnPassant.IsApplied {
		captured := v.EnPassant.PawnCaptured
		im.Removed = &captured
	}
	if KingInCheck(board, colour, im) {
		return reject(LeavesKingInCheck), nil
	}
	return v, nil
}

func validateKnight(from, to chess.Square) Verdict {
	dr, dc := abs(to.Row-from.Row), abs(to.Col-from.Col)
	if (dr == 1 && dc == 2) || (dr == 2 && dc == 1) {
		return Verdict{Legal: true}
	}
	return reject(PieceCannotMove)
}

// validateSlider handles bishops, rooks and queens.
func validateSlider(board *chess.Board, kind chess.Piece, from, to chess.Square) (Verdict, error) {
	dir, ok := directionOf(from, to)
	if !ok || dir == LShape {
		return reject(PieceCannotMove), nil
	}
	switch {
	case kind == chess.Bishop && dir != Diagonal:
		return reject(PieceCannotMove), nil
	case kind == chess.Rook && dir == Diagonal:
		return reject(PieceCannotMove), nil
	}

	free, err := IsPathFree(board, from, to, dir)
	if err != nil {
		return Verdict{}, err
	}
	if !free {
		return reject(PieceCannotMove), nil
	}
	return Verdict{Legal: true}, nil
}

func validateKing(game *chess.Game, from, to chess.Square, colour chess.Colour) (Verdict, error) {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	if abs(dr) <= 1 && abs(dc) <= 1 {
		return Verdict{Legal: true}, nil
	}
	if dr == 0 && abs(dc) == 2 {
		return validateCastling(game, from, to, colour)
	}
	return reject(PieceCannotMove), nil
}
