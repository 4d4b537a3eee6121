// Package order produces legal moves in the search's preferred order: captures bucketed by
// attacking piece (pawn first, king last), then all quiet moves in generator order.
//
// This is attacker-ordered, not victim-ordered (no MVV-LVA): a deliberate simplification, not an
// oversight. A move is classified as a capture only if its Type is Capture or CapturePromotion,
// i.e. its destination square is occupied - so en passant, whose destination square is always
// empty and whose Type is EnPassant, is bucketed as quiet here. This is a known,
// intentionally-preserved limitation: Move.IsCapture, which does recognize en passant, is not
// used here.
package order

import "github.com/quietpawn/engine/pkg/board"

// Priority is the move order priority used by board.SortByPriority: higher sorts first.
type Priority = board.MovePriority

const (
	priorityQuiet Priority = iota
	priorityKingCapture
	priorityQueenCapture
	priorityRookCapture
	priorityBishopCapture
	priorityKnightCapture
	priorityPawnCapture
)

// ByAttacker assigns the attacker-bucket priority described in the package doc: pawn captures
// first, then knight, bishop, rook, queen, king captures, then quiet moves. En passant is
// classified as quiet (see package doc).
func ByAttacker(m board.Move) Priority {
	if m.Type != board.Capture && m.Type != board.CapturePromotion {
		return priorityQuiet
	}

	switch m.Piece {
	case board.Pawn:
		return priorityPawnCapture
	case board.Knight:
		return priorityKnightCapture
	case board.Bishop:
		return priorityBishopCapture
	case board.Rook:
		return priorityRookCapture
	case board.Queen:
		return priorityQueenCapture
	case board.King:
		return priorityKingCapture
	default:
		return priorityQuiet
	}
}

// First reorders so that the given move is returned ahead of everything else, falling back to
// ByAttacker for all other moves. Used by iterative deepening to retry the previous iteration's
// best move first.
func First(first board.Move) board.MovePriorityFn {
	return board.First(first, ByAttacker)
}

// Moves returns the legal moves of pos for turn, ordered per ByAttacker. Ties within a bucket
// preserve the order the moves were generated in.
func Moves(pos *board.Position, turn board.Color) []board.Move {
	legal := pos.LegalMoves(turn)
	board.SortByPriority(legal, ByAttacker)
	return legal
}

// Captures filters an already-ordered move list down to captures only, preserving order. Used by
// the quiescence search to restrict to "noisy" moves. Consistent with ByAttacker, en passant is
// not included: its destination square is never occupied.
func Captures(moves []board.Move) []board.Move {
	ret := make([]board.Move, 0, len(moves))
	for _, m := range moves {
		if m.Type == board.Capture || m.Type == board.CapturePromotion {
			ret = append(ret, m)
		}
	}
	return ret
}
