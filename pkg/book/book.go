// Package book loads a polyglot-format opening book: a flat array of fixed-size binary
// records keyed by Zobrist hash, each naming a candidate move and a relative weight.
//
// This is optional scaffolding: a self-contained component the command layer may
// consult before invoking the search, but nothing in pkg/search or pkg/engine depends on it.
package book

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/quietpawn/engine/pkg/board"
)

// entrySize is the on-disk record size: 8-byte key, 2-byte move, 2-byte weight, 4-byte
// learn field (ignored).
const entrySize = 16

// minWeight is the retention threshold: entries at or below it are discarded on load.
const minWeight = 100

// Entry is one opening book record surviving the weight filter.
type Entry struct {
	Key    uint64
	Move   board.Move
	Weight uint16
}

// Book maps a Zobrist key to its surviving entries, heaviest weight first.
type Book map[uint64][]Entry

// Load reads a polyglot book from r, retaining only entries with weight > 100,
// grouped by key. r is read to EOF; a record count that is not a multiple of 16 bytes is an
// error, matching the fixed-width format.
func Load(r io.Reader) (Book, error) {
	book := Book{}

	var raw [entrySize]byte
	for {
		n, err := io.ReadFull(r, raw[:])
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("polyglot book: truncated record (%d of %d bytes)", n, entrySize)
		}
		if err != nil {
			return nil, fmt.Errorf("polyglot book: %w", err)
		}

		key := binary.BigEndian.Uint64(raw[0:8])
		packed := binary.BigEndian.Uint16(raw[8:10])
		weight := binary.BigEndian.Uint16(raw[10:12])
		// raw[12:16] is the learn field; ignored.

		if weight <= minWeight {
			continue
		}

		book[key] = append(book[key], Entry{Key: key, Move: decodeMove(packed), Weight: weight})
	}

	for key := range book {
		entries := book[key]
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Weight > entries[j].Weight })
		book[key] = entries
	}
	return book, nil
}

// Find returns the entries for the given Zobrist key, heaviest weight first, or nil if the
// book has nothing for this position.
func (b Book) Find(key uint64) []Entry {
	return b[key]
}

// polyglot promotion piece codes: 0 = none, 1 = knight, 2 = bishop, 3 = rook, 4 = queen.
var promotionPieces = [...]board.Piece{board.NoPiece, board.Knight, board.Bishop, board.Rook, board.Queen}

// decodeMove unpacks a polyglot 16-bit move: bits 0-2 dest file, 3-5 dest rank, 6-8 source
// file, 9-11 source rank, 12-14 promotion, 15 unused. Polyglot numbers files/ranks a=0/1=0
// upward, matching this package's Rank but the reverse of board.File (board.FileH=0); white
// castling is conventionally encoded as the king capturing its own rook (e1h1/e1a1), which
// this decoder does not special-case -- a known limitation, not silently remapped to the
// castling move type.
func decodeMove(packed uint16) board.Move {
	toFile := File(packed & 0x7)
	toRank := Rank(packed >> 3 & 0x7)
	fromFile := File(packed >> 6 & 0x7)
	fromRank := Rank(packed >> 9 & 0x7)
	promo := (packed >> 12) & 0x7

	from := board.NewSquare(toBoardFile(fromFile), toBoardRank(fromRank))
	to := board.NewSquare(toBoardFile(toFile), toBoardRank(toRank))

	m := board.Move{From: from, To: to}
	if promo > 0 && int(promo) < len(promotionPieces) {
		m.Promotion = promotionPieces[promo]
	}
	return m
}

// File/Rank are polyglot's own 0-7 indices (0=a-file/rank-1), separate from board.File/Rank
// since polyglot's file order is the reverse of this repo's board.File.
type File uint8
type Rank uint8

func toBoardFile(f File) board.File {
	return board.FileA - board.File(f)
}

func toBoardRank(r Rank) board.Rank {
	return board.Rank1 + board.Rank(r)
}
