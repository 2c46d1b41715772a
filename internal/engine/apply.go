package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Apply executes a move that Validate has accepted. It performs no legality
// checks of its own. For a promotion, v.Promotion.PieceAfter must hold the
// coloured replacement piece.
func Apply(game *chess.Game, from, to chess.Square, v Verdict) {
	board := game.Board
	piece := board.Get(from)
	colour := chess.ExtractColour(piece)

	if captured := board.Get(to); captured != chess.Empty {
		game.AddCapture(colour, captured)
		clearCapturedRookRight(board, to, captured)
	}
	if v.EnPassant.IsApplied {
		game.AddCapture(colour, board.Get(v.EnPassant.PawnCaptured))
		board.Set(v.EnPassant.PawnCaptured, chess.Empty)
	}

	board.Set(from, chess.Empty)
	if v.Promotion.IsApplied && v.Promotion.PieceAfter != chess.Empty {
		board.Set(to, v.Promotion.PieceAfter)
	} else {
		board.Set(to, piece)
	}

	if v.Castling.IsApplied {
		rook := board.Get(v.Castling.RookBefore)
		board.Set(v.Castling.RookBefore, chess.Empty)
		board.Set(v.Castling.RookAfter, rook)
	}

	updateCastlingRights(board, piece, from)
	board.ToMove = colour.Opposite()
}

// updateCastlingRights clears rights after a king move, or after a rook
// leaves either corner file.
func updateCastlingRights(board *chess.Board, piece chess.Piece, from chess.Square) {
	colour := chess.ExtractColour(piece)
	switch chess.ExtractPiece(piece) {
	case chess.King:
		board.ClearCastling(colour, chess.KingSide)
		board.ClearCastling(colour, chess.QueenSide)
	case chess.Rook:
		switch from.Col {
		case rookHomeCol(chess.QueenSide):
			board.ClearCastling(colour, chess.QueenSide)
		case rookHomeCol(chess.KingSide):
			board.ClearCastling(colour, chess.KingSide)
		}
	}
}

// clearCapturedRookRight drops the right that depended on a rook taken in its
// corner.
func clearCapturedRookRight(board *chess.Board, sq chess.Square, captured chess.Piece) {
	if chess.ExtractPiece(captured) != chess.Rook {
		return
	}
	owner := chess.ExtractColour(captured)
	if sq.Row != chess.HomeRow(owner) {
		return
	}
	for _, side := range []chess.CastlingSide{chess.QueenSide, chess.KingSide} {
		if sq.Col == rookHomeCol(side) {
			board.ClearCastling(owner, side)
		}
	}
}

// Outcome reports what a successful move did.
type Outcome struct {
	Notation   string
	Moved      chess.Piece
	Captured   chess.Piece // Empty if nothing was taken
	CapturedAt chess.Square
	EnPassant  bool
	Castled    bool
	Promoted   chess.Piece // coloured piece placed by a promotion, or Empty
	Check      bool        // the side now to move is in check
	Checkmate  bool
}

// MovePiece attempts to move the piece on from to to for the side on move.
// promotion is the bare piece kind a pawn reaching the far rank becomes and
// must be Empty for every other move. A refused move leaves the game
// untouched and returns an error wrapping one of the errors sentinels.
func MovePiece(game *chess.Game, from, to chess.Square, promotion chess.Piece) (Outcome, error) {
	if game.Finished {
		return Outcome{}, errors.ErrGameFinished
	}
	if !from.OnBoard() || !to.OnBoard() {
		return Outcome{}, errors.Wrapf(errors.ErrInvalidSquare, "%v-%v", from, to)
	}
	if from == to {
		return Outcome{}, errors.Wrapf(errors.ErrSameSquare, "%v", from)
	}

	board := game.Board
	piece := board.Get(from)
	if piece == chess.Empty {
		return Outcome{}, errors.Wrapf(errors.ErrEmptySquare, "%v", from)
	}
	colour := chess.ExtractColour(piece)
	if colour != board.ToMove {
		return Outcome{}, errors.Wrapf(errors.ErrWrongTurn, "%s to move, %v holds a %s",
			board.ToMove, from, chess.Describe(piece))
	}

	v, err := Validate(game, from, to)
	if err != nil {
		return Outcome{}, err
	}
	ply := game.PlyCount() + 1
	if !v.Legal {
		return Outcome{}, &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			Ply:      ply,
			MoveText: chess.FormatMove(from, to, chess.Empty),
			Reason:   v.Reason.String(),
		}
	}

	if v.Promotion.IsApplied {
		switch promotion {
		case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
			v.Promotion.PieceAfter = chess.MakeColouredPiece(colour, promotion)
		default:
			return Outcome{}, &errors.MoveError{
				Err:      errors.ErrInvalidPromotion,
				Ply:      ply,
				MoveText: chess.FormatMove(from, to, chess.Empty),
				Reason:   "choose one of Q, R, B, N",
			}
		}
	} else if promotion != chess.Empty {
		return Outcome{}, &errors.MoveError{
			Err:      errors.ErrInvalidPromotion,
			Ply:      ply,
			MoveText: chess.FormatMove(from, to, chess.Empty),
			Reason:   "move does not promote",
		}
	}

	out := Outcome{
		Notation: chess.FormatMove(from, to, promotion),
		Moved:    piece,
		Castled:  v.Castling.IsApplied,
		Promoted: v.Promotion.PieceAfter,
	}
	if captured := board.Get(to); captured != chess.Empty {
		out.Captured, out.CapturedAt = captured, to
	}
	if v.EnPassant.IsApplied {
		out.Captured, out.CapturedAt = board.Get(v.EnPassant.PawnCaptured), v.EnPassant.PawnCaptured
		out.EnPassant = true
	}

	game.LogMove(out.Notation)
	Apply(game, from, to, v)

	out.Check = IsInCheck(game)
	if out.Check {
		mate, err := IsCheckmate(game)
		if err != nil {
			return out, err
		}
		out.Checkmate = mate
	}
	return out, nil
}

// Play parses a move such as "E2-E4" or "E7-E8=Q" and plays it.
func Play(game *chess.Game, notation string) (Outcome, error) {
	from, to, promotion, err := chess.ParseMove(notation)
	if err != nil {
		return Outcome{}, err
	}
	return MovePiece(game, from, to, promotion)
}
