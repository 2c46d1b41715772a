package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// DefaultSquareSize is the side of one board square in SVG user units.
const DefaultSquareSize = 60

const (
	lightSquare    = "fill:#f0d9b5"
	darkSquare     = "fill:#b58863"
	lastMoveSquare = "fill:#cdd26a"
	pieceStyle     = "text-anchor:middle;dominant-baseline:central;font-family:sans-serif"
	labelStyle     = "text-anchor:middle;dominant-baseline:central;font-family:sans-serif;fill:#333"
)

// SVGWriter draws the board as an SVG image with file and rank labels. The
// squares of the last move are highlighted.
type SVGWriter struct {
	w          io.Writer
	squareSize int
}

// NewSVGWriter creates an SVG writer. A non-positive square size selects
// DefaultSquareSize.
func NewSVGWriter(w io.Writer, squareSize int) *SVGWriter {
	if squareSize <= 0 {
		squareSize = DefaultSquareSize
	}
	return &SVGWriter{w: w, squareSize: squareSize}
}

// WriteGame draws the board of the game.
func (sw *SVGWriter) WriteGame(game *chess.Game) error {
	ew := &errWriter{w: sw.w}
	size := sw.squareSize
	margin := size / 2
	side := chess.BoardSize*size + 2*margin

	canvas := svg.New(ew)
	canvas.Start(side, side)
	canvas.Rect(0, 0, side, side, "fill:#ffffff")

	from, to, moved := lastMoveSquares(game)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.NewSquare(row, col)
			x := margin + col*size
			y := margin + (chess.BoardSize-1-row)*size

			style := lightSquare
			if (row+col)%2 == 0 {
				style = darkSquare
			}
			if moved && (sq == from || sq == to) {
				style = lastMoveSquare
			}
			canvas.Rect(x, y, size, size, style)

			if p := game.Board.Get(sq); p != chess.Empty {
				canvas.Text(x+size/2, y+size/2, chess.FigurineSymbol(p),
					fmt.Sprintf("%s;font-size:%dpx", pieceStyle, size*3/4))
			}
		}
	}

	labelFont := fmt.Sprintf("%s;font-size:%dpx", labelStyle, size/3)
	for i := 0; i < chess.BoardSize; i++ {
		file := string(rune(chess.ColBase + i))
		rank := string(rune(chess.RankBase + i))
		canvas.Text(margin+i*size+size/2, side-margin/2, file, labelFont)
		canvas.Text(margin/2, margin+(chess.BoardSize-1-i)*size+size/2, rank, labelFont)
	}
	canvas.End()
	return ew.err
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
