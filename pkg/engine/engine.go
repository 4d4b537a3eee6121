// Package engine holds the process-wide, single-instance game state: the current root
// position and the node counter the search populates, plus the two entry points the command
// layer calls into the core with -- choosing a move within a time budget, and evaluating the
// current position.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/quietpawn/engine/pkg/board"
	"github.com/quietpawn/engine/pkg/board/fen"
	"github.com/quietpawn/engine/pkg/eval"
	"github.com/quietpawn/engine/pkg/phase"
	"github.com/quietpawn/engine/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"go.uber.org/atomic"
)

var version = build.NewVersion(0, 1, 0)

const (
	// defaultMaxDepth caps iterative deepening when the command layer does not ask for a
	// specific depth limit; in practice the time budget runs out long before this is reached.
	defaultMaxDepth = 64

	// hardTimeScale is the ratio of hard cap to the initial per-iteration soft target handed
	// to IterativeDeepening.Run: the hard abort deadline sits at 3x the soft target.
	hardTimeScale = 3.0

	// quiescenceBudget is the hard ply budget for the quiescence extension at the search
	// horizon.
	quiescenceBudget = 1
)

// Engine encapsulates game-playing logic: the current position and move history, and the
// node counter populated by the most recently completed search. Not safe for concurrent use
// from multiple goroutines issuing commands simultaneously -- the command loop is
// single-threaded cooperative -- but the counter is kept atomic because NodesVisited can
// read it from outside the call that last updated it.
type Engine struct {
	name, author string

	searcher search.AlphaBeta

	mu    sync.Mutex
	b     *board.Board
	nodes atomic.Uint64
}

// New creates an engine at the standard starting position.
func New(ctx context.Context, name, author string) *Engine {
	e := &Engine{
		name:     name,
		author:   author,
		searcher: search.AlphaBeta{Eval: eval.Static{}, QuiescenceBudget: quiescenceBudget},
	}
	_ = e.Reset(ctx, fen.Initial)

	logw.Infof(ctx, "Initialized engine: %v", e.Name())
	return e
}

// Name returns the engine name and version, for the UCI "id name" response.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author, for the UCI "id author" response.
func (e *Engine) Author() string {
	return e.author
}

// Reset sets the root position from a FEN string. A malformed FEN reverts to the standard
// starting position rather than failing; this method never returns an error as a
// result, but the command layer that calls it can still observe the revert via Position().
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, turn, _, fullmoves, err := fen.Decode(position)
	if err != nil {
		logw.Errorf(ctx, "Malformed FEN %q: %v; reverting to starting position", position, err)
		pos, turn, _, fullmoves, _ = fen.Decode(fen.Initial)
	}
	e.b = board.NewBoard(pos, turn, fullmoves)

	logw.Infof(ctx, "Reset: %v", e.b)
	return nil
}

// Move applies a single move in long algebraic notation, usually an opponent move relayed by
// the command layer's "position ... moves ..." parsing. Returns an error for a malformed token
// or an illegal move; the caller is expected to stop applying further moves from
// the same command on error, not to abort the process.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidate, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move token %q: %w", move, err)
	}

	// The parsed move carries no contextual metadata (piece, capture, castling); resolve it
	// against the generated moves so PushMove gets a fully-populated move.
	for _, m := range e.b.Position().PseudoLegalMoves(e.b.Turn()) {
		if !candidate.Equals(m) {
			continue
		}
		if !e.b.PushMove(m) {
			return fmt.Errorf("illegal move: %v", m)
		}

		logw.Infof(ctx, "Move %v: %v", m, e.b)
		return nil
	}
	return fmt.Errorf("invalid move: %v", candidate)
}

// Position returns the current root position in FEN, for diagnostics and for detecting
// whether a new "position" command continues the current game.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.b.Position(), e.b.Turn(), 0, e.b.FullMoves())
}

// NodesVisited returns the leaf-evaluation count from the most recently completed top-level
// search (ChooseBestMove or Benchmark); it is reset at the start of each such call.
func (e *Engine) NodesVisited() uint64 {
	return e.nodes.Load()
}

// ChooseBestMove is the core's first entry point: select a move for the side to move within
// the given time budget, running iterative deepening to maxDepth (or a generous default if
// maxDepth <= 0). Returns the null move and a zero score if there is no legal move at the
// root. The root position itself is never mutated: everything below
// operates on copies produced by board.Position.Move.
func (e *Engine) ChooseBestMove(ctx context.Context, params search.GoParams, maxDepth int) (board.Move, eval.Score) {
	e.mu.Lock()
	pos, turn := e.b.Position(), e.b.Turn()
	e.mu.Unlock()

	if len(pos.LegalMoves(turn)) == 0 {
		logw.Infof(ctx, "No legal moves at root for %v", turn)
		e.nodes.Store(0)
		return board.Move{}, 0
	}

	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	earlyGameProbability := phase.EarlyGameProbability(pos)
	budgetMs := search.Budget(turn, params, earlyGameProbability)
	hard := time.Duration(budgetMs) * time.Millisecond

	// Run's depth loop is exclusive of its bound; maxDepth here is the controller's
	// inclusive limit.
	id := search.IterativeDeepening{Search: e.searcher}
	result := id.Run(ctx, pos, turn, maxDepth+1, hardTimeScale, hard, turn, true)
	e.nodes.Store(result.Nodes)

	logw.Infof(ctx, "Chose %v: depth=%v score=%v nodes=%v budget=%v", result.Move, result.Depth, result.Score, result.Nodes, hard)
	return result.Move, result.Score
}

// Evaluate is the core's second entry point: return the static evaluation of the current
// position from the side-to-move's perspective. Does not touch the node counter -- it is not
// a search, just a single leaf call.
func (e *Engine) Evaluate(ctx context.Context) eval.Score {
	e.mu.Lock()
	pos, turn := e.b.Position(), e.b.Turn()
	e.mu.Unlock()

	score := eval.Static{}.Evaluate(ctx, pos, turn)
	logw.Debugf(ctx, "Evaluate %v: %v", turn, score)
	return score
}

// BenchmarkResult is the outcome of a fixed-depth, unlimited-time search run for diagnostics.
type BenchmarkResult struct {
	Score   eval.Score
	Move    board.Move
	Elapsed time.Duration
	Nodes   uint64
}

// Benchmark runs the alpha-beta searcher to a fixed depth with no time limit, per the
// "searchbenchmark" command. Updates NodesVisited as a side effect, matching
// ChooseBestMove.
func (e *Engine) Benchmark(ctx context.Context, depth int) BenchmarkResult {
	e.mu.Lock()
	pos, turn := e.b.Position(), e.b.Turn()
	e.mu.Unlock()

	nodes := &search.Nodes{}
	start := time.Now()
	score, move, _ := e.searcher.Search(ctx, nodes, pos, turn, depth, -eval.MateValue, eval.MateValue, turn, true, nil, nil, 0)
	elapsed := time.Since(start)

	e.nodes.Store(nodes.Load())
	logw.Infof(ctx, "Benchmark depth=%v: %v in %v, %v nodes", depth, move, elapsed, nodes.Load())

	return BenchmarkResult{Score: score, Move: move, Elapsed: elapsed, Nodes: nodes.Load()}
}
