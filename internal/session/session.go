// Package session drives one chess game for a person at a terminal. It turns
// typed squares into engine calls and engine outcomes into the messages the
// player reads, and it logs every decision.
package session

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Report is the result of a move: the engine outcome and the messages to
// show the player, in order.
type Report struct {
	Outcome  engine.Outcome
	Messages []string
}

// Session holds the current game, if any, and the messages queued for the
// player since they were last taken.
type Session struct {
	startFEN string
	log      zerolog.Logger
	game     *chess.Game
	messages []string
}

// New creates a session without a running game. New games start from
// startFEN, or from the standard position when it is empty.
func New(startFEN string, log zerolog.Logger) *Session {
	return &Session{startFEN: startFEN, log: log}
}

// NewGame discards any running game and starts a new one.
func (s *Session) NewGame() error {
	var (
		game *chess.Game
		err  error
	)
	if s.startFEN == "" {
		game = chess.NewGame()
	} else if game, err = engine.NewGameFromFEN(s.startFEN); err != nil {
		s.log.Error().Err(err).Str("fen", s.startFEN).Msg("new game")
		return err
	}
	s.game = game
	s.messages = nil
	s.log.Info().Str("fen", engine.GameToFEN(game)).Msg("new game")
	return nil
}

// Game returns the running game, or nil.
func (s *Session) Game() *chess.Game {
	return s.game
}

// Messages returns and clears the queued messages.
func (s *Session) Messages() []string {
	msgs := s.messages
	s.messages = nil
	return msgs
}

func (s *Session) say(format string, args ...interface{}) {
	s.messages = append(s.messages, fmt.Sprintf(format, args...))
}

// CanMove reports whether a move can be entered, queueing the message that
// explains why not.
func (s *Session) CanMove() error {
	if s.game == nil {
		s.say(msgNoGame)
		return errNoGame
	}
	if s.game.Finished {
		s.say(msgGameFinished)
		return errors.ErrGameFinished
	}
	return nil
}

// Select parses the square of the piece the player wants to move and checks
// that it holds a piece of the side to move.
func (s *Session) Select(text string) (chess.Square, error) {
	if err := s.CanMove(); err != nil {
		return chess.Square{}, err
	}
	from, err := s.parseSquare(text)
	if err != nil {
		return from, err
	}

	board := s.game.Board
	piece := board.Get(from)
	colour, ok := chess.ColourOf(piece)
	switch {
	case !ok:
		s.say(msgEmptySquare)
		s.log.Debug().Stringer("square", from).Msg("selected empty square")
		return from, errors.Wrapf(errors.ErrEmptySquare, "%v", from)
	case colour != board.ToMove:
		s.say(msgWrongTurn, turnName(board.ToMove), turnName(colour))
		s.log.Debug().Stringer("square", from).Str("piece", chess.Describe(piece)).Msg("selected opponent piece")
		return from, errors.Wrapf(errors.ErrWrongTurn, "%v", from)
	}
	return from, nil
}

// Target parses the destination square and validates the move without
// playing it. promote reports whether the player must choose a promotion
// piece before calling Move.
func (s *Session) Target(from chess.Square, text string) (to chess.Square, promote bool, err error) {
	if err := s.CanMove(); err != nil {
		return chess.Square{}, false, err
	}
	if to, err = s.parseSquare(text); err != nil {
		return to, false, err
	}
	if to == from {
		s.say(msgSameSquare)
		return to, false, errors.Wrapf(errors.ErrSameSquare, "%v", from)
	}

	v, err := engine.Validate(s.game, from, to)
	if err != nil {
		s.log.Error().Err(err).Stringer("from", from).Stringer("to", to).Msg("validate")
		return to, false, err
	}
	if !v.Legal {
		s.say(msgCannotMove)
		s.log.Debug().Stringer("from", from).Stringer("to", to).Stringer("reason", v.Reason).Msg("move rejected")
		return to, false, &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			Ply:      s.game.PlyCount() + 1,
			MoveText: chess.FormatMove(from, to, chess.Empty),
			Reason:   v.Reason.String(),
		}
	}
	return to, v.Promotion.IsApplied, nil
}

// Promotion parses the promotion piece typed by the player.
func (s *Session) Promotion(text string) (chess.Piece, error) {
	text = strings.TrimSpace(text)
	if len(text) != 1 {
		s.say(msgPromotionLength)
		return chess.Empty, errors.Wrapf(errors.ErrInvalidPromotion, "%q", text)
	}
	kind, err := chess.ParsePromotion(text)
	if err != nil {
		s.say(msgPromotionLetter)
	}
	return kind, err
}

// Move plays a move and queues the messages describing it.
func (s *Session) Move(from, to chess.Square, promotion chess.Piece) (Report, error) {
	if err := s.CanMove(); err != nil {
		return Report{Messages: s.Messages()}, err
	}
	out, err := engine.MovePiece(s.game, from, to, promotion)
	if err != nil {
		s.reject(err)
		return Report{Messages: s.Messages()}, err
	}
	s.describe(out)
	return Report{Outcome: out, Messages: s.Messages()}, nil
}

// PlayNotation plays a move written as "E2-E4" or "E7-E8=Q".
func (s *Session) PlayNotation(text string) (Report, error) {
	if err := s.CanMove(); err != nil {
		return Report{Messages: s.Messages()}, err
	}
	from, to, promotion, err := chess.ParseMove(strings.TrimSpace(text))
	if err != nil {
		s.say(msgBadNotation, text)
		s.log.Debug().Str("move", text).Err(err).Msg("unreadable move")
		return Report{Messages: s.Messages()}, err
	}
	return s.Move(from, to, promotion)
}

func (s *Session) parseSquare(text string) (chess.Square, error) {
	text = strings.TrimSpace(text)
	sq, err := chess.ParseSquare(text)
	if err == nil {
		return sq, nil
	}
	switch {
	case len(text) != 2:
		s.say(msgSquareLength)
	case !strings.ContainsRune("ABCDEFGHabcdefgh", rune(text[0])):
		s.say(msgInvalidColumn)
	default:
		s.say(msgInvalidRow)
	}
	return sq, err
}

// reject queues the message for a move MovePiece refused.
func (s *Session) reject(err error) {
	switch {
	case errors.Is(err, errors.ErrEmptySquare):
		s.say(msgEmptySquare)
	case errors.Is(err, errors.ErrWrongTurn):
		mover := s.game.Board.ToMove
		s.say(msgWrongTurn, turnName(mover), turnName(mover.Opposite()))
	case errors.Is(err, errors.ErrSameSquare):
		s.say(msgSameSquare)
	case errors.Is(err, errors.ErrIllegalMove):
		s.say(msgCannotMove)
	case errors.Is(err, errors.ErrInvalidPromotion):
		var me *errors.MoveError
		if errors.As(err, &me) && me.Reason != "" {
			s.say(msgBadPromotion, me.Reason)
		} else {
			s.say(msgPromotionLetter)
		}
	case errors.Is(err, errors.ErrContractViolation):
		s.log.Error().Err(err).Msg("engine contract violation")
		return
	default:
		s.say("%v", err)
	}
	s.log.Debug().Err(err).Msg("move rejected")
}

// describe queues the messages for an applied move and logs it.
func (s *Session) describe(out engine.Outcome) {
	mover := chess.ExtractColour(out.Moved)
	switch {
	case out.EnPassant:
		s.say(msgEnPassant)
	case out.Captured != chess.Empty:
		s.say(msgCaptured, chess.Describe(out.Captured))
	}
	if out.Castled {
		s.say(msgCastled)
	}

	event := s.log.Info().
		Int("ply", s.game.PlyCount()).
		Str("move", out.Notation).
		Str("piece", chess.Describe(out.Moved))
	if out.Captured != chess.Empty {
		event = event.Str("captured", chess.Describe(out.Captured))
	}
	event.Bool("check", out.Check).Bool("checkmate", out.Checkmate).Msg("move applied")

	switch {
	case out.Checkmate:
		s.say(msgCheckmate, mover)
		s.log.Info().Stringer("winner", mover).Int("plies", s.game.PlyCount()).Msg("checkmate")
	case out.Check:
		s.say(msgCheck, mover.Opposite())
	}
}
