package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

const (
	// Logo is printed above every board.
	Logo = "    ===============| CHESS |==============\n"

	cellWidth  = 7
	cellHeight = 3
	darkFill   = " "
	lightFill  = "."
	panelRule  = "---------------------------------------------\n"
)

// TextWriter draws a game as text: the logo, the situation panel and the
// board grid with rank 8 at the top.
type TextWriter struct {
	w         io.Writer
	unicode   bool
	lastMoves int
}

// NewTextWriter creates a text writer listing up to lastMoves rounds.
// With unicode set, pieces are drawn as figurines instead of letters.
func NewTextWriter(w io.Writer, unicode bool, lastMoves int) *TextWriter {
	return &TextWriter{w: w, unicode: unicode, lastMoves: lastMoves}
}

// WriteGame draws the logo, the situation panel and the board.
func (tw *TextWriter) WriteGame(game *chess.Game) error {
	var sb strings.Builder
	sb.WriteString(Logo)
	tw.situation(&sb, game)
	tw.board(&sb, game.Board)
	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// WriteSituation draws only the situation panel.
func (tw *TextWriter) WriteSituation(game *chess.Game) error {
	var sb strings.Builder
	tw.situation(&sb, game)
	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// WriteBoard draws only the board grid.
func (tw *TextWriter) WriteBoard(board *chess.Board) error {
	var sb strings.Builder
	tw.board(&sb, board)
	_, err := io.WriteString(tw.w, sb.String())
	return err
}

func (tw *TextWriter) situation(sb *strings.Builder, game *chess.Game) {
	if n := len(game.Rounds); n > 0 && tw.lastMoves > 0 {
		sb.WriteString("Last moves:\n")
		shown := n
		if shown > tw.lastMoves {
			shown = tw.lastMoves
		}
		for i := n; i > n-shown; i-- {
			round := game.Rounds[i-1]
			fmt.Fprintf(sb, "%2d ...... %s | %s\n", i, round.WhiteMove, round.BlackMove)
		}
		sb.WriteString("\n")
	}

	white, black := game.Captured(chess.White), game.Captured(chess.Black)
	if len(white) > 0 || len(black) > 0 {
		sb.WriteString(panelRule)
		tw.captures(sb, "WHITE captured: ", white)
		tw.captures(sb, "BLACK captured: ", black)
		sb.WriteString(panelRule)
	}

	if game.Board.ToMove == chess.White {
		sb.WriteString("Current turn: WHITE (upper case)\n\n")
	} else {
		sb.WriteString("Current turn: BLACK (lower case)\n\n")
	}
}

func (tw *TextWriter) captures(sb *strings.Builder, label string, pieces []chess.Piece) {
	sb.WriteString(label)
	for _, p := range pieces {
		sb.WriteString(tw.symbol(p))
		sb.WriteString(" ")
	}
	sb.WriteString("\n")
}

func (tw *TextWriter) board(sb *strings.Builder, board *chess.Board) {
	sb.WriteString("   A      B      C      D      E      F      G      H\n\n")
	for row := chess.BoardSize - 1; row >= 0; row-- {
		for line := 0; line < cellHeight; line++ {
			for col := 0; col < chess.BoardSize; col++ {
				fill := darkFill
				if (row+col)%2 == 1 {
					fill = lightFill
				}
				for x := 0; x < cellWidth; x++ {
					p := board.Get(chess.NewSquare(row, col))
					if line == cellHeight/2 && x == cellWidth/2 && p != chess.Empty {
						sb.WriteString(tw.symbol(p))
					} else {
						sb.WriteString(fill)
					}
				}
			}
			if line == cellHeight/2 {
				fmt.Fprintf(sb, "   %d", row+1)
			}
			sb.WriteString("\n")
		}
	}
}

func (tw *TextWriter) symbol(p chess.Piece) string {
	if tw.unicode {
		return chess.FigurineSymbol(p)
	}
	return string(chess.Symbol(p))
}
