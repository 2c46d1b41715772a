// Package render draws games for people: a text board with a situation panel
// for the terminal, and an SVG snapshot of the board.
package render

import "github.com/lgbarn/chess-rules-go/internal/chess"

// GameWriter is the interface for drawing a game to output.
type GameWriter interface {
	// WriteGame draws the current state of the game.
	WriteGame(game *chess.Game) error
}

var (
	_ GameWriter = (*TextWriter)(nil)
	_ GameWriter = (*SVGWriter)(nil)
)

// lastMoveSquares returns the squares of the last logged move, if any.
func lastMoveSquares(game *chess.Game) (from, to chess.Square, ok bool) {
	last, ok := game.LastMove()
	if !ok {
		return chess.Square{}, chess.Square{}, false
	}
	from, to, _, err := chess.ParseMove(last)
	if err != nil {
		return chess.Square{}, chess.Square{}, false
	}
	return from, to, true
}
