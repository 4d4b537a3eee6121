package search

import (
	"github.com/quietpawn/engine/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

// GoParams mirrors the subset of UCI "go" parameters the time manager consumes: per-side clock
// and increment, an explicit move time, and an infinite-search flag. Fields use
// lang.Optional[int32] rather than a zero-value sentinel so that "not present" is
// distinguishable from "explicitly zero".
type GoParams struct {
	Movetime     lang.Optional[int32]
	Infinite     bool
	WTime, BTime lang.Optional[int32]
	WInc, BInc   lang.Optional[int32]
}

// infiniteBudget is returned verbatim when GoParams.Infinite is set: "a very large number".
const infiniteBudget int32 = 100000000

// defaultTime, defaultInc are used when neither movetime, infinite, nor per-side clocks are
// present.
const (
	defaultTime int32 = 30000
	defaultInc  int32 = 0
)

// Budget translates go-parameters and side-to-move into a move time budget, in milliseconds:
//
//	movetime present       -> use it verbatim
//	infinite                -> a very large number
//	per-side clock+inc      -> time/20 + inc/2, optionally clamped if the position is early-game
//	none present            -> default time=30000, inc=0
//
// earlyGameProbability is phase.EarlyGameProbability(pos) for the current position; the clamp
// in the per-side-clock branch only applies when it exceeds 0.5.
func Budget(turn board.Color, p GoParams, earlyGameProbability float64) int32 {
	if mt, ok := p.Movetime.V(); ok {
		return mt
	}
	if p.Infinite {
		return infiniteBudget
	}

	t, tok := clockFor(turn, p)
	if !tok {
		t, _ = defaultTime, defaultInc
		return t/20 + defaultInc/2
	}
	inc, _ := incFor(turn, p)

	budget := t/20 + inc/2
	if earlyGameProbability > 0.5 {
		clamp := inc + 1500
		if clamp > 3000 {
			clamp = 3000
		}
		if budget > clamp {
			budget = clamp
		}
	}
	return budget
}

func clockFor(turn board.Color, p GoParams) (int32, bool) {
	if turn == board.White {
		return p.WTime.V()
	}
	return p.BTime.V()
}

func incFor(turn board.Color, p GoParams) (int32, bool) {
	if turn == board.White {
		return p.WInc.V()
	}
	return p.BInc.V()
}
