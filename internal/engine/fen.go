package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameFromFEN sets up a game from a FEN position. FEN is used for position
// setup only; the move clocks are accepted but not tracked. An en passant
// target is recorded as the opponent's last move, because en passant is
// derived from the move log.
func NewGameFromFEN(fen string) (*chess.Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}

	game := chess.NewGameFromBoard(board)
	if err := parseEnPassant(game, parts); err != nil {
		return nil, err
	}
	return game, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Got: positions}
	}

	kings := [2]int{}
	for i, rank := range ranks {
		row := chess.BoardSize - 1 - i
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				kind, ok := chess.PieceFromLetter(byte(c))
				if !ok || c > unicode.MaxASCII {
					return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Got: string(c)}
				}
				if col >= chess.BoardSize {
					return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Got: rank}
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				if kind == chess.King {
					kings[colour]++
				}
				board.Set(chess.NewSquare(row, col), chess.MakeColouredPiece(colour, kind))
				col++
			}
		}
		if col != chess.BoardSize {
			return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Got: rank}
		}
	}

	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Got: "king count"}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "side", Got: parts[1]}
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Rights for a
// king or rook that is not on its home square are dropped.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}
	for _, c := range parts[2] {
		colour := chess.White
		if unicode.IsLower(c) {
			colour = chess.Black
		}
		var side chess.CastlingSide
		switch unicode.ToUpper(c) {
		case 'K':
			side = chess.KingSide
		case 'Q':
			side = chess.QueenSide
		default:
			return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "castling", Got: parts[2]}
		}

		row := chess.HomeRow(colour)
		if board.Get(chess.NewSquare(row, kingHomeCol)) != chess.MakeColouredPiece(colour, chess.King) ||
			board.Get(chess.NewSquare(row, rookHomeCol(side))) != chess.MakeColouredPiece(colour, chess.Rook) {
			continue
		}
		if side == chess.KingSide {
			board.KingSideCastle[colour] = true
		} else {
			board.QueenSideCastle[colour] = true
		}
	}
	return nil
}

// parseEnPassant turns the en passant target into a logged pawn double step
// by the side that just moved.
func parseEnPassant(game *chess.Game, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "en passant", Got: parts[3]}
	}

	mover := game.Board.ToMove.Opposite()
	forward := chess.ColourOffset(mover)
	from, to := target.Offset(-forward, 0), target.Offset(forward, 0)
	if target.Row != chess.PawnRow(mover)+forward ||
		game.Board.Get(to) != chess.MakeColouredPiece(mover, chess.Pawn) {
		return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "en passant", Got: parts[3]}
	}

	text := chess.FormatMove(from, to, chess.Empty)
	if mover == chess.White {
		game.Rounds = append(game.Rounds, chess.Round{WhiteMove: text})
	} else {
		game.Rounds = append(game.Rounds, chess.Round{BlackMove: text})
	}
	return nil
}

// GameToFEN renders the current position as FEN. The halfmove clock is
// always 0 and the fullmove number is derived from the move log.
func GameToFEN(game *chess.Game) string {
	board := game.Board
	var sb strings.Builder

	for row := chess.BoardSize - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Get(chess.NewSquare(row, col))
			if p == chess.Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(chess.Symbol(p))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	if board.ToMove == chess.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	castling := ""
	if board.KingSideCastle[chess.White] {
		castling += "K"
	}
	if board.QueenSideCastle[chess.White] {
		castling += "Q"
	}
	if board.KingSideCastle[chess.Black] {
		castling += "k"
	}
	if board.QueenSideCastle[chess.Black] {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)

	sb.WriteByte(' ')
	sb.WriteString(enPassantTarget(game))

	fullmove := len(game.Rounds)
	if board.ToMove == chess.White {
		fullmove++
	}
	if fullmove < 1 {
		fullmove = 1
	}
	fmt.Fprintf(&sb, " 0 %d", fullmove)
	return sb.String()
}

// enPassantTarget returns the square behind a pawn that has just advanced two
// squares, or "-".
func enPassantTarget(game *chess.Game) string {
	last, ok := game.LastMove()
	if !ok {
		return "-"
	}
	from, to, _, err := chess.ParseMove(last)
	if err != nil || from.Col != to.Col || abs(to.Row-from.Row) != 2 {
		return "-"
	}
	mover := game.Board.ToMove.Opposite()
	if game.Board.Get(to) != chess.MakeColouredPiece(mover, chess.Pawn) || from.Row != chess.PawnRow(mover) {
		return "-"
	}
	return strings.ToLower(chess.NewSquare((from.Row+to.Row)/2, from.Col).String())
}
