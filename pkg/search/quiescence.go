package search

import (
	"context"

	"github.com/quietpawn/engine/pkg/board"
	"github.com/quietpawn/engine/pkg/eval"
	"github.com/quietpawn/engine/pkg/order"
)

// Quiescence is a captures-only search extension run at the horizon to reduce the horizon
// effect: a quiet-looking leaf that is actually about to lose material to a forced capture
// sequence is resolved before it is scored.
type Quiescence struct {
	Eval eval.Evaluator

	// Budget records a hard ply budget (AlphaBeta sets it to its QuiescenceBudget). Search and
	// search take the budget as an argument and do not read this field.
	Budget int
}

// Search runs the quiescence extension from pos with turn to move, up to budget plies deep.
// Unlike AlphaBeta.Search, it never consults a timer and never returns a best move: it always
// reports completed = true and board.Move{}, since it exists purely to refine a leaf score.
func (q Quiescence) Search(ctx context.Context, nodes *Nodes, pos *board.Position, turn board.Color, budget int, alpha, beta eval.Score, myColor board.Color, maximizing bool) (eval.Score, board.Move, bool) {
	return q.search(ctx, nodes, pos, turn, budget, alpha, beta, myColor, maximizing), board.Move{}, true
}

func (q Quiescence) search(ctx context.Context, nodes *Nodes, pos *board.Position, turn board.Color, budget int, alpha, beta eval.Score, myColor board.Color, maximizing bool) eval.Score {
	if budget <= 0 {
		nodes.Inc()
		return q.Eval.Evaluate(ctx, pos, myColor)
	}

	nodes.Inc()
	standPat := q.Eval.Evaluate(ctx, pos, myColor)

	if maximizing {
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	} else {
		if standPat <= alpha {
			return standPat
		}
		if standPat < beta {
			beta = standPat
		}
	}

	captures := order.Captures(order.Moves(pos, turn))
	for _, m := range captures {
		next, ok := pos.Move(turn, m)
		if !ok {
			continue
		}

		score := q.search(ctx, nodes, next, turn.Opponent(), budget-1, alpha, beta, myColor, !maximizing)

		if maximizing {
			if score > alpha {
				alpha = score
			}
			if alpha >= beta {
				return alpha
			}
		} else {
			if score < beta {
				beta = score
			}
			if beta <= alpha {
				return beta
			}
		}
	}

	// Captures only serve to fail high (or low): absent a cutoff, the stand-pat itself is
	// the result, not the tightened bound.
	return standPat
}
