package search

import (
	"context"

	"github.com/quietpawn/engine/pkg/board"
	"github.com/quietpawn/engine/pkg/eval"
	"github.com/quietpawn/engine/pkg/order"
)

// Minimax implements naive minimax search, with no alpha-beta pruning. It exists to validate
// AlphaBeta: for a fixed position, depth and move order, the two must agree on score.
//
// function minimax(node, depth, maximizingPlayer) is
//
//	if depth = 0 or node is a terminal node then
//	    return the heuristic value of node
//	if maximizingPlayer then
//	    value := -inf
//	    for each child of node do
//	        value := max(value, minimax(child, depth-1, FALSE))
//	    return value
//	else
//	    value := +inf
//	    for each child of node do
//	        value := min(value, minimax(child, depth-1, TRUE))
//	    return value
//
// See: https://en.wikipedia.org/wiki/Minimax.
type Minimax struct {
	Eval eval.Evaluator
}

func (mm Minimax) Search(ctx context.Context, nodes *Nodes, pos *board.Position, turn board.Color, depth int, myColor board.Color, maximizing bool) (eval.Score, board.Move) {
	if depth == 0 {
		nodes.Inc()
		return mm.Eval.Evaluate(ctx, pos, myColor), board.Move{}
	}

	moves := order.Moves(pos, turn)
	if len(moves) == 0 {
		return terminalScore(pos, turn, myColor, depth), board.Move{}
	}

	var (
		bestScore eval.Score
		bestMove  board.Move
	)
	if maximizing {
		bestScore = eval.NegInf
	} else {
		bestScore = eval.Inf
	}

	for _, m := range moves {
		next, ok := pos.Move(turn, m)
		if !ok {
			continue
		}

		score, _ := mm.Search(ctx, nodes, next, turn.Opponent(), depth-1, myColor, !maximizing)

		if maximizing && score > bestScore {
			bestScore, bestMove = score, m
		}
		if !maximizing && score < bestScore {
			bestScore, bestMove = score, m
		}
	}

	return bestScore, bestMove
}
