package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// LegalMove is one move the side to move may play.
type LegalMove struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.Piece // bare piece kind, or Empty
}

// String returns the move in notation.
func (m LegalMove) String() string {
	return chess.FormatMove(m.From, m.To, m.Promotion)
}

var promotionChoices = []chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// LegalMoves returns every move Validate accepts for the side to move, with
// each promoting move listed once per promotion piece. A finished game has
// no moves.
func LegalMoves(game *chess.Game) ([]LegalMove, error) {
	if game.Finished {
		return nil, nil
	}
	board := game.Board
	var moves []LegalMove
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.NewSquare(row, col)
			if !chess.IsColour(board.Get(from), board.ToMove) {
				continue
			}
			pieceMoves, err := legalMovesFrom(game, from)
			if err != nil {
				return nil, err
			}
			moves = append(moves, pieceMoves...)
		}
	}
	return moves, nil
}

func legalMovesFrom(game *chess.Game, from chess.Square) ([]LegalMove, error) {
	var moves []LegalMove
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			to := chess.NewSquare(row, col)
			if to == from {
				continue
			}
			v, err := Validate(game, from, to)
			if err != nil {
				return nil, err
			}
			if !v.Legal {
				continue
			}
			if !v.Promotion.IsApplied {
				moves = append(moves, LegalMove{From: from, To: to})
				continue
			}
			for _, p := range promotionChoices {
				moves = append(moves, LegalMove{From: from, To: to, Promotion: p})
			}
		}
	}
	return moves, nil
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(game *chess.Game) (bool, error) {
	moves, err := LegalMoves(game)
	return len(moves) > 0, err
}

// Perft counts the leaf positions reachable in exactly depth plies.
func Perft(game *chess.Game, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	moves, err := LegalMoves(game)
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(len(moves)), nil
	}

	var nodes uint64
	for _, m := range moves {
		child := game.Clone()
		if _, err := MovePiece(child, m.From, m.To, m.Promotion); err != nil {
			return 0, err
		}
		n, err := Perft(child, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// DivideResult is the perft count below one root move.
type DivideResult struct {
	Move  LegalMove
	Nodes uint64
}

// PerftDivide runs Perft below every root move on a pool of workers and
// returns the counts in root move order.
func PerftDivide(game *chess.Game, depth, workers int) ([]DivideResult, error) {
	moves, err := LegalMoves(game)
	if err != nil || len(moves) == 0 || depth <= 0 {
		return nil, err
	}

	pool := worker.NewPool(workers, len(moves), func(item worker.WorkItem) worker.ProcessResult {
		nodes, err := Perft(item.Game, item.Depth)
		return worker.ProcessResult{Index: item.Index, Label: item.Label, Nodes: nodes, Err: err}
	})
	pool.Start()

	for i, m := range moves {
		child := game.Clone()
		if _, err := MovePiece(child, m.From, m.To, m.Promotion); err != nil {
			pool.Stop()
			pool.Close()
			return nil, err
		}
		pool.Submit(worker.WorkItem{Index: i, Label: m.String(), Game: child, Depth: depth - 1})
	}
	pool.Close()

	results := make([]DivideResult, len(moves))
	for r := range pool.Results() {
		if r.Err != nil {
			err = r.Err
			continue
		}
		results[r.Index] = DivideResult{Move: moves[r.Index], Nodes: r.Nodes}
	}
	if err != nil {
		return nil, err
	}
	return results, nil
}
