package session

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Player messages.
const (
	msgNoGame          = "No game running!"
	msgGameFinished    = "This game has already finished!"
	msgSquareLength    = "You should type only two characters (column and row)"
	msgInvalidColumn   = "Invalid column."
	msgInvalidRow      = "Invalid row."
	msgEmptySquare     = "You picked an EMPTY square."
	msgWrongTurn       = "It is %s's turn and you picked a %s piece"
	msgSameSquare      = "[Invalid] You picked the same square!"
	msgCannotMove      = "[Invalid] Piece can not move to that square!"
	msgPromotionLength = "You should type only one character (Q, R, N or B)"
	msgPromotionLetter = "Invalid character."
	msgBadPromotion    = "[Invalid] Promotion: %s"
	msgBadNotation     = "Can not read move %q. Use the form E2-E4 or E7-E8=Q"
	msgCaptured        = "%s captured!"
	msgEnPassant       = `Pawn captured by "en passant" move!`
	msgCastled         = "Castling applied!"
	msgCheckmate       = "Checkmate! %s wins the game!"
	msgCheck           = "%s king is in check!"
)

var errNoGame = errors.New("no game running")

func turnName(c chess.Colour) string {
	if c == chess.White {
		return "WHITE"
	}
	return "BLACK"
}
