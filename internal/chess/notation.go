package chess

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Move notation is "<from>-<to>" with an optional "=<piece>" promotion
// suffix, for example "E2-E4" or "E7-E8=Q".
const (
	moveLen          = 5
	promotionMoveLen = 7
)

// ParseMove parses move notation. promoted is Empty when there is no suffix.
func ParseMove(text string) (from, to Square, promoted Piece, err error) {
	if len(text) != moveLen && len(text) != promotionMoveLen {
		return from, to, Empty, errors.Wrapf(errors.ErrInvalidNotation, "%q", text)
	}
	if text[2] != '-' {
		return from, to, Empty, errors.Wrapf(errors.ErrInvalidNotation, "%q", text)
	}
	if from, err = ParseSquare(text[0:2]); err != nil {
		return from, to, Empty, errors.Wrapf(errors.ErrInvalidNotation, "%q", text)
	}
	if to, err = ParseSquare(text[3:5]); err != nil {
		return from, to, Empty, errors.Wrapf(errors.ErrInvalidNotation, "%q", text)
	}
	if len(text) == promotionMoveLen {
		if text[5] != '=' {
			return from, to, Empty, errors.Wrapf(errors.ErrInvalidNotation, "%q", text)
		}
		if promoted, err = ParsePromotion(text[6:]); err != nil {
			return from, to, Empty, err
		}
	}
	return from, to, promoted, nil
}

// ParsePromotion parses a promotion choice. Only Q, R, B and N, in either
// case, are accepted.
func ParsePromotion(text string) (Piece, error) {
	if len(text) == 1 {
		switch kind, _ := PieceFromLetter(text[0]); kind {
		case Queen, Rook, Bishop, Knight:
			return kind, nil
		}
	}
	return Empty, errors.Wrapf(errors.ErrInvalidPromotion, "%q", text)
}

// FormatMove renders a move in notation, upper case. promoted is a bare
// piece kind, or Empty for no suffix.
func FormatMove(from, to Square, promoted Piece) string {
	var sb strings.Builder
	sb.WriteString(from.String())
	sb.WriteByte('-')
	sb.WriteString(to.String())
	if promoted != Empty {
		sb.WriteByte('=')
		sb.WriteByte(promoted.Letter())
	}
	return sb.String()
}
