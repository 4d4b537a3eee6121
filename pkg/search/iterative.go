package search

import (
	"context"
	"time"

	"github.com/quietpawn/engine/pkg/board"
	"github.com/quietpawn/engine/pkg/eval"
	"github.com/quietpawn/engine/pkg/order"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// IterativeDeepening runs successively deeper searches, reusing the previous iteration's best
// move as a hint, and adapting how much time to spend per iteration based on how "difficult" the
// position looks to be resolving. It runs synchronously to completion (or to time exhaustion)
// and returns the last depth that finished within its budget.
type IterativeDeepening struct {
	Search AlphaBeta
}

// Result is the outcome of one completed search depth.
type Result struct {
	Depth int
	Score eval.Score
	Move  board.Move
	Nodes uint64
}

// Run searches pos with turn to move, at depths 1 to maxDepth-1 (the bound is exclusive), targeting hardTimeLimit wall-clock in
// total and starting with a soft per-iteration budget of hardTimeLimit/baseTimeScale. myColor and
// maximizing fix the evaluator's perspective and the root's maximizing/minimizing sense exactly
// as in AlphaBeta.Search.
func (id IterativeDeepening) Run(ctx context.Context, pos *board.Position, turn board.Color, maxDepth int, baseTimeScale float64, hardTimeLimit time.Duration, myColor board.Color, maximizing bool) Result {
	nodes := &Nodes{}
	timer := NewTimer()

	baseTime := time.Duration(float64(hardTimeLimit) / baseTimeScale)
	targetDuration := baseTime
	difficultyMult := 1.0

	var (
		committed      Result
		scoreHistory   []eval.Score
		prevBestMove   board.Move
		havePrevResult bool
	)

	for depth := 1; depth < maxDepth; depth++ {
		if contextx.IsCancelled(ctx) {
			break
		}
		if timer.Elapsed() >= targetDuration || timer.Elapsed() >= hardTimeLimit {
			break
		}

		moves := order.Moves(pos, turn)
		if havePrevResult && !prevBestMove.IsNone() {
			board.SortByPriority(moves, order.First(prevBestMove))
		}

		timeLimit := targetDuration
		if hardTimeLimit < timeLimit {
			timeLimit = hardTimeLimit
		}

		score, move, completed := id.Search.Search(ctx, nodes, pos, turn, depth, -eval.MateValue, eval.MateValue, myColor, maximizing, moves, timer, timeLimit)
		if !completed {
			break // discard the partial result; keep the previous iteration's committed result
		}

		moveChanged := havePrevResult && !move.Equals(prevBestMove)

		committed = Result{Depth: depth, Score: score, Move: move, Nodes: nodes.Load()}
		prevBestMove = move
		havePrevResult = true

		scoreHistory = append(scoreHistory, score)
		if len(scoreHistory) > 3 {
			scoreHistory = scoreHistory[len(scoreHistory)-3:]
		}

		if moveChanged {
			difficultyMult *= 1.30
		}
		if scoreSwing(scoreHistory) > 10.0 {
			difficultyMult *= 1.25
		}
		if pos.IsChecked(turn) {
			difficultyMult *= 1.20
		}
		if next, ok := pos.Move(turn, move); ok && next.IsChecked(turn.Opponent()) {
			difficultyMult *= 1.20
		}
		if move.IsCapture() {
			difficultyMult *= 1.20
		}
		if move.IsPromotion() {
			difficultyMult *= 1.20
		}

		mult := difficultyMult
		if mult > baseTimeScale {
			mult = baseTimeScale
		}
		targetDuration = time.Duration(float64(baseTime) * mult)
	}

	return committed
}

// scoreSwing returns max-min over the given scores.
func scoreSwing(scores []eval.Score) eval.Score {
	if len(scores) == 0 {
		return 0
	}
	min, max := scores[0], scores[0]
	for _, s := range scores[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return max - min
}
