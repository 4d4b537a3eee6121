package eval

import (
	"fmt"

	"github.com/quietpawn/engine/pkg/board"
)

// Score is a signed position or move score, from the perspective of a fixed side. Positive
// favors that side. Mate scores lie outside the normal evaluation range: |score| >= MateValue.
type Score float32

const (
	// MateValue is larger than any realistic positional evaluation. Mate scores are encoded
	// as +/- (MateValue + depth_remaining): the side delivering mate prefers the largest
	// magnitude (fastest mate), the side being mated prefers the smallest (slowest mate).
	MateValue Score = 100000

	// MinScore/MaxScore bound all non-mate scores returned by the evaluator.
	MinScore Score = -1000000
	MaxScore Score = 1000000

	// Inf/NegInf lie beyond any mate score; AlphaBeta and Minimax start their best-score
	// tracking from them.
	Inf    Score = MaxScore
	NegInf Score = MinScore
)

func (s Score) String() string {
	return fmt.Sprintf("%.2f", s)
}

// IsMate returns true iff the score encodes a forced mate.
func (s Score) IsMate() bool {
	return s >= MateValue || s <= -MateValue
}

// Unit returns the signed unit for the color: 1 for White and -1 for Black.
func Unit(c board.Color) Score {
	return Score(c.Unit())
}

// Crop crops a Score into [MinScore;MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

// Max returns the largest of the given scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smallest of the given scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}

// EvaluatedMove is a legacy pairing of a move and its score, ordered by score with NaN treated
// as equal. Not used by the production search path, which returns (score, move) directly.
type EvaluatedMove struct {
	Move  board.Move
	Score Score
}

// Less orders by score, treating NaN as equal to everything (never strictly less).
func (m EvaluatedMove) Less(o EvaluatedMove) bool {
	a, b := float64(m.Score), float64(o.Score)
	if a != a || b != b { // NaN
		return false
	}
	return a < b
}
