package search

import (
	"context"
	"time"

	"github.com/quietpawn/engine/pkg/board"
	"github.com/quietpawn/engine/pkg/eval"
	"github.com/quietpawn/engine/pkg/order"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// AlphaBeta is a fail-hard alpha-beta searcher, configured with the static evaluator to call at
// the horizon and an optional quiescence extension.
//
// function alphabeta(node, depth, alpha, beta, maximizingPlayer) is
//
//	if depth = 0 or node is a terminal node then
//	    return the heuristic value of node
//	if maximizingPlayer then
//	    value := -inf
//	    for each child of node do
//	        value := max(value, alphabeta(child, depth-1, alpha, beta, FALSE))
//	        alpha := max(alpha, value)
//	        if alpha >= beta then
//	            break (* beta cutoff *)
//	    return value
//	else
//	    value := +inf
//	    for each child of node do
//	        value := min(value, alphabeta(child, depth-1, alpha, beta, TRUE))
//	        beta := min(beta, value)
//	        if beta <= alpha then
//	            break (* alpha cutoff *)
//	    return value
//
// See: https://en.wikipedia.org/wiki/Alpha-beta_pruning.
type AlphaBeta struct {
	Eval eval.Evaluator

	// QuiescenceBudget is the hard ply budget handed to the quiescence extension at the
	// horizon. Zero disables quiescence: the horizon is evaluated statically instead.
	QuiescenceBudget int
}

// Search runs a fail-hard alpha-beta search from pos, with turn to move. myColor fixes the side
// the evaluator scores from; maximizing inverts on every recursive call. moves, if non-nil, is
// used as the (already legal, already ordered) move list for the root call instead of generating
// one; this lets iterative deepening reinsert the previous iteration's best move at the front.
// timer/timeLimit are optional; a nil timer disables all time-based cancellation.
//
// Returns (score, best move, completed). completed is false if the search was cut short by the
// time limit anywhere in the subtree; callers must discard the score and move in that case.
func (s AlphaBeta) Search(ctx context.Context, nodes *Nodes, pos *board.Position, turn board.Color, depth int, alpha, beta eval.Score, myColor board.Color, maximizing bool, moves []board.Move, timer Timer, timeLimit time.Duration) (eval.Score, board.Move, bool) {
	if depth == 0 {
		if s.QuiescenceBudget > 0 {
			// The quiescence extension counts its own stand-pat as the leaf visit.
			score := Quiescence{Eval: s.Eval, Budget: s.QuiescenceBudget}.search(ctx, nodes, pos, turn, s.QuiescenceBudget, alpha, beta, myColor, maximizing)
			return score, board.Move{}, true
		}
		nodes.Inc()
		return s.Eval.Evaluate(ctx, pos, myColor), board.Move{}, true
	}

	if moves == nil {
		moves = order.Moves(pos, turn)
	}

	if len(moves) == 0 {
		return terminalScore(pos, turn, myColor, depth), board.Move{}, true
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
		if contextx.IsCancelled(ctx) || expired(timer, timeLimit) {
			return bestScore, bestMove, false
		}

		next, ok := pos.Move(turn, m)
		if !ok {
			continue
		}

		score, _, completed := s.Search(ctx, nodes, next, turn.Opponent(), depth-1, alpha, beta, myColor, !maximizing, nil, timer, timeLimit)
		if !completed {
			return bestScore, bestMove, false
		}

		if maximizing {
			if score > bestScore {
				bestScore, bestMove = score, m
			}
			if bestScore > alpha {
				alpha = bestScore
			}
		} else {
			if score < bestScore {
				bestScore, bestMove = score, m
			}
			if bestScore < beta {
				beta = bestScore
			}
		}

		if beta <= alpha {
			break
		}
	}

	return bestScore, bestMove, true
}

// terminalScore evaluates a position with no legal moves: stalemate is exactly 0; checkmate is
// scored +/-(MATE_VALUE + depth) depending on whether the mated side is myColor.
func terminalScore(pos *board.Position, turn, myColor board.Color, depth int) eval.Score {
	if !pos.IsChecked(turn) {
		return 0 // stalemate
	}
	if turn == myColor {
		return -(eval.MateValue + eval.Score(depth)) // we are mated: prefer later mates
	}
	return eval.MateValue + eval.Score(depth) // they are mated: prefer faster mates
}
