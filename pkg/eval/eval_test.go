package eval_test

import (
	"context"
	"testing"

	"github.com/quietpawn/engine/pkg/board/fen"
	"github.com/quietpawn/engine/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticEvaluate(t *testing.T) {
	t.Run("starting position is symmetric", func(t *testing.T) {
		pos, turn, _, _, err := fen.Decode(fen.Initial)
		require.NoError(t, err)

		// Black's piece-square lookups mirror by 63-idx (a 180-degree rotation), so the
		// king/queen table entries do not cancel exactly; the residue is driven to noise by
		// the near-zero early-game PST scale at move one.
		actual := eval.Static{}.Evaluate(context.Background(), pos, turn)
		assert.InDelta(t, 0.0, float64(actual), 1e-4)
	})

	t.Run("extra queen favors its owner", func(t *testing.T) {
		pos, turn, _, _, err := fen.Decode("kq6/8/8/8/8/8/8/7K w - - 0 1")
		require.NoError(t, err)

		actual := eval.Static{}.Evaluate(context.Background(), pos, turn)
		assert.Less(t, float64(actual), -5.0)
	})

	t.Run("rotationally symmetric bare kings are exactly balanced", func(t *testing.T) {
		// Kings on e1/d8 map to the same table entry under the 63-idx mirror, so the two
		// sides' scores cancel exactly. (e1/e8 would not: the mirror flips files too.)
		pos, turn, _, _, err := fen.Decode("3k4/8/8/8/8/8/8/4K3 w - - 0 1")
		require.NoError(t, err)

		actual := eval.Static{}.Evaluate(context.Background(), pos, turn)
		assert.InDelta(t, 0.0, float64(actual), 1e-6)
	})
}

func TestNominalValueGain(t *testing.T) {
	// White pawn on e5 can capture the black queen on d6.
	pos, turn, _, _, err := fen.Decode("4k3/8/3q4/4P3/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	var capture bool
	for _, m := range pos.PseudoLegalMoves(turn) {
		if m.IsCapture() {
			capture = true
			assert.Equal(t, 9.0, eval.NominalValueGain(m))
		}
	}
	assert.True(t, capture)
}
