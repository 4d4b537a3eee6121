// Package phase estimates how far a position is into the opening/middlegame versus the
// endgame, as two independent probabilities derived purely from piece counts.
package phase

import (
	"math"

	"github.com/quietpawn/engine/pkg/board"
)

// EarlyGameProbability returns a value in [0,1] estimating how "opening-like" the position
// is, based on the population of pawns still on their starting ranks. It rises sharply
// towards 1 as both sides keep their full pawn structure home and falls towards 0 once pawns
// have moved off those ranks.
func EarlyGameProbability(pos *board.Position) float64 {
	p := (pos.Piece(board.White, board.Pawn) & (board.BitRank(board.Rank1) | board.BitRank(board.Rank2))).PopCount() +
		(pos.Piece(board.Black, board.Pawn) & (board.BitRank(board.Rank7) | board.BitRank(board.Rank8))).PopCount()

	return 1 - 1/(1+math.Pow(2, 2*(float64(p)-10)))
}

// EndGameProbability returns a value in [0,1] estimating how "endgame-like" the position is,
// based on the total number of pieces remaining on the board. It is monotone decreasing in
// the piece count.
func EndGameProbability(pos *board.Position) float64 {
	n := pos.Color(board.White).PopCount() + pos.Color(board.Black).PopCount()

	return 1 / (1 + math.Pow(2, 2*(float64(n)-14)))
}
