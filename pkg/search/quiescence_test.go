package search_test

import (
	"context"
	"testing"

	"github.com/quietpawn/engine/pkg/board/fen"
	"github.com/quietpawn/engine/pkg/eval"
	"github.com/quietpawn/engine/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuiescenceFallsBackToStandPat(t *testing.T) {
	// White has Rd1xd5 winning the queen, but with a full window no cutoff fires: the result
	// is the literal stand-pat, not the bound the capture tightened.
	pos, turn, _, _, err := fen.Decode("4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	require.NoError(t, err)

	q := search.Quiescence{Eval: eval.Static{}}

	static := eval.Static{}.Evaluate(context.Background(), pos, turn)
	require.Less(t, float64(static), 0.0)

	score, _, completed := q.Search(context.Background(), &search.Nodes{}, pos, turn, 2, -eval.MateValue, eval.MateValue, turn, true)
	require.True(t, completed)
	assert.Equal(t, static, score)
}

func TestQuiescenceCaptureFailsHigh(t *testing.T) {
	// With beta between the stand-pat and the value of Rd1xd5, the capture produces a
	// fail-high cutoff at or above beta.
	pos, turn, _, _, err := fen.Decode("4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	require.NoError(t, err)

	q := search.Quiescence{Eval: eval.Static{}}

	static := eval.Static{}.Evaluate(context.Background(), pos, turn)
	require.Less(t, float64(static), 0.0)

	score, _, completed := q.Search(context.Background(), &search.Nodes{}, pos, turn, 2, -eval.MateValue, 0, turn, true)
	require.True(t, completed)
	assert.GreaterOrEqual(t, float64(score), 0.0)
}

func TestQuiescenceStandPatBetaCutoff(t *testing.T) {
	// With beta below the stand-pat, the maximizer fails high immediately without visiting
	// any capture: exactly one leaf evaluation.
	pos, turn, _, _, err := fen.Decode("4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	require.NoError(t, err)

	q := search.Quiescence{Eval: eval.Static{}}
	nodes := &search.Nodes{}

	score, _, completed := q.Search(context.Background(), nodes, pos, turn, 2, -eval.MateValue, -eval.MateValue, turn, true)
	require.True(t, completed)

	static := eval.Static{}.Evaluate(context.Background(), pos, turn)
	assert.Equal(t, static, score)
	assert.EqualValues(t, 1, nodes.Load())
}

func TestNodesCountQuiescenceStandPats(t *testing.T) {
	// A quiet position with no captures anywhere: depth-1 search with quiescence enabled
	// evaluates each child exactly once, via its stand-pat.
	pos, turn, _, _, err := fen.Decode("3k4/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	legal := len(pos.LegalMoves(turn))
	require.Greater(t, legal, 0)

	ab := search.AlphaBeta{Eval: eval.Static{}, QuiescenceBudget: 2}
	nodes := &search.Nodes{}

	_, _, completed := ab.Search(context.Background(), nodes, pos, turn, 1, -eval.MateValue, eval.MateValue, turn, true, nil, nil, 0)
	require.True(t, completed)
	assert.EqualValues(t, legal, nodes.Load())
}
