// Package repetition tracks position history via Zobrist hashing for three-fold repetition
// detection. It is independent scaffolding: a command layer may consult it
// to claim a draw, but the alpha-beta searcher itself only terminates on stalemate/checkmate
// and never calls into this package.
package repetition

import "github.com/quietpawn/engine/pkg/board"

// Tracker counts how many times each position (by Zobrist hash) has occurred along the game's
// move history. Not safe for concurrent use.
type Tracker struct {
	zt    *board.ZobristTable
	seen  map[board.ZobristHash]int
	order []board.ZobristHash // push/pop order, for Pop
}

// NewTracker creates an empty tracker with its own Zobrist table. seed is forwarded to
// board.NewZobristTable, so tables built from the same seed agree on hash values.
func NewTracker(seed int64) *Tracker {
	return &Tracker{
		zt:   board.NewZobristTable(seed),
		seen: map[board.ZobristHash]int{},
	}
}

// Push records the given position as having been reached, returning the new occurrence count
// (1 for a position seen for the first time).
func (t *Tracker) Push(pos *board.Position, turn board.Color) int {
	h := t.zt.Hash(pos, turn)
	t.seen[h]++
	t.order = append(t.order, h)
	return t.seen[h]
}

// Pop undoes the most recent Push, mirroring board.Board.PopMove. A no-op if nothing has been
// pushed.
func (t *Tracker) Pop() {
	if len(t.order) == 0 {
		return
	}
	last := t.order[len(t.order)-1]
	t.order = t.order[:len(t.order)-1]

	t.seen[last]--
	if t.seen[last] <= 0 {
		delete(t.seen, last)
	}
}

// Count returns how many times the given position has occurred so far.
func (t *Tracker) Count(pos *board.Position, turn board.Color) int {
	return t.seen[t.zt.Hash(pos, turn)]
}

// IsThreefold returns true iff the given position has already occurred at least twice before
// (i.e., playing into it again would be the third occurrence).
func (t *Tracker) IsThreefold(pos *board.Position, turn board.Color) bool {
	return t.Count(pos, turn) >= 2
}
