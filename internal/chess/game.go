package chess

// Round holds one white ply and the black reply, in move notation.
// BlackMove is empty until Black has moved.
type Round struct {
	WhiteMove string
	BlackMove string
}

// Game represents a game in progress: the board, the move log and the
// captured pieces.
type Game struct {
	Board  *Board
	Rounds []Round

	// Pieces captured by each side, indexed by the capturing Colour.
	captured [2][]Piece

	// Set once checkmate has been detected. No further moves are accepted.
	Finished bool
}

// NewGame creates a new game in the standard starting position.
func NewGame() *Game {
	return NewGameFromBoard(NewInitialBoard())
}

// NewGameFromBoard creates a game with no history around an existing board.
func NewGameFromBoard(board *Board) *Game {
	return &Game{Board: board}
}

// Captured returns the pieces the given colour has captured, in capture order.
func (g *Game) Captured(by Colour) []Piece {
	return g.captured[by]
}

// AddCapture appends a captured piece to the capturing colour's list.
func (g *Game) AddCapture(by Colour, piece Piece) {
	g.captured[by] = append(g.captured[by], piece)
}

// LogMove records a ply for the side currently to move. A white ply opens a
// new round; a black ply completes the last round, or opens a round with no
// white move when the game started with Black to move.
func (g *Game) LogMove(text string) {
	if g.Board.ToMove == White {
		g.Rounds = append(g.Rounds, Round{WhiteMove: text})
		return
	}
	if n := len(g.Rounds); n > 0 && g.Rounds[n-1].BlackMove == "" {
		g.Rounds[n-1].BlackMove = text
		return
	}
	g.Rounds = append(g.Rounds, Round{BlackMove: text})
}

// LastMove returns the most recently logged ply.
func (g *Game) LastMove() (string, bool) {
	if len(g.Rounds) == 0 {
		return "", false
	}
	last := g.Rounds[len(g.Rounds)-1]
	if last.BlackMove != "" {
		return last.BlackMove, true
	}
	if last.WhiteMove != "" {
		return last.WhiteMove, true
	}
	return "", false
}

// PlyCount returns the number of plies logged so far.
func (g *Game) PlyCount() int {
	count := 0
	for _, r := range g.Rounds {
		if r.WhiteMove != "" {
			count++
		}
		if r.BlackMove != "" {
			count++
		}
	}
	return count
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	clone := &Game{
		Board:    g.Board.Copy(),
		Rounds:   append([]Round(nil), g.Rounds...),
		Finished: g.Finished,
	}
	for c := range g.captured {
		clone.captured[c] = append([]Piece(nil), g.captured[c]...)
	}
	return clone
}
