package eval

import "github.com/quietpawn/engine/pkg/board"

// Piece-square tables in the style of PeSTo: one middlegame and one endgame table per piece,
// indexed a1=0 .. h8=63 as seen from White. Black looks up the mirrored index (63-idx).
//
// Values are in centipawns-as-pawns (i.e. already divided by 100 relative to the usual
// published tables) since the rest of the evaluator works in pawn units.

var pstMG = [board.NumPieces][64]float32{
	board.Pawn: {
		0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00,
		-0.35, -0.01, -0.20, -0.23, -0.15, 0.24, 0.38, -0.22,
		-0.26, -0.04, -0.04, -0.10, 0.03, 0.03, 0.33, -0.12,
		-0.27, -0.02, -0.05, 0.12, 0.17, 0.06, 0.10, -0.25,
		-0.14, 0.13, 0.06, 0.21, 0.23, 0.12, 0.17, -0.23,
		-0.06, 0.07, 0.26, 0.31, 0.65, 0.56, 0.25, -0.20,
		0.98, 1.34, 0.61, 0.95, 0.68, 1.26, 0.34, -0.11,
		0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00,
	},
	board.Knight: {
		-1.05, -0.21, -0.58, -0.33, -0.17, -0.28, -0.19, -0.23,
		-0.29, -0.51, -0.23, -0.15, -0.22, -0.18, -0.50, -0.64,
		-0.23, -0.20, 0.12, 0.09, 0.17, 0.04, -0.08, -0.23,
		-0.13, 0.04, 0.16, 0.13, 0.28, 0.19, 0.21, -0.08,
		-0.09, 0.17, 0.19, 0.53, 0.37, 0.69, 0.18, 0.22,
		-0.47, 0.60, 0.37, 0.65, 0.84, 1.29, 0.73, 0.44,
		-0.73, -0.41, 0.72, 0.36, 0.23, 0.62, 0.07, -0.17,
		-1.67, -0.89, -0.34, -0.49, 0.61, -0.97, -0.15, -1.07,
	},
	board.Bishop: {
		-0.33, -0.03, -0.14, -0.21, -0.13, -0.12, -0.39, -0.21,
		0.04, 0.15, 0.16, 0.00, 0.07, 0.21, 0.33, 0.01,
		0.00, 0.15, 0.15, 0.15, 0.14, 0.27, 0.18, 0.10,
		-0.06, 0.13, 0.13, 0.26, 0.34, 0.06, 0.11, -0.04,
		-0.04, 0.05, 0.19, 0.50, 0.37, 0.37, 0.07, -0.02,
		-0.16, 0.37, 0.43, 0.40, 0.35, 0.50, 0.37, -0.02,
		-0.26, 0.16, -0.18, -0.13, 0.30, 0.59, 0.18, -0.47,
		-0.29, 0.04, -0.82, -0.37, -0.25, -0.42, 0.07, -0.08,
	},
	board.Rook: {
		-0.19, -0.13, 0.01, 0.17, 0.16, 0.07, -0.37, -0.26,
		-0.44, -0.16, -0.20, -0.09, -0.01, 0.11, -0.06, -0.71,
		-0.45, -0.25, -0.16, -0.17, 0.03, 0.00, -0.05, -0.33,
		-0.36, -0.26, -0.12, -0.01, 0.09, -0.07, 0.06, -0.23,
		-0.24, -0.11, 0.07, 0.26, 0.24, 0.35, -0.08, -0.20,
		-0.05, 0.19, 0.26, 0.36, 0.17, 0.45, 0.61, 0.16,
		0.27, 0.32, 0.58, 0.55, 0.80, 0.67, 0.26, 0.44,
		0.32, 0.42, 0.32, 0.51, 0.63, 0.09, 0.31, 0.43,
	},
	board.Queen: {
		-0.01, -0.18, -0.09, 0.10, -0.15, -0.25, -0.31, -0.50,
		-0.35, -0.08, 0.11, 0.02, 0.08, 0.15, -0.03, 0.01,
		-0.14, 0.02, -0.11, -0.02, -0.05, 0.02, 0.14, 0.05,
		-0.09, -0.26, -0.09, -0.10, -0.02, -0.04, 0.03, -0.03,
		-0.27, -0.27, -0.16, -0.16, -0.01, 0.17, -0.02, 0.01,
		-0.13, -0.17, 0.07, 0.08, 0.29, 0.56, 0.47, 0.57,
		-0.24, -0.39, -0.05, 0.01, -0.16, 0.57, 0.28, 0.54,
		-0.28, 0.00, 0.29, 0.12, 0.59, 0.44, 0.43, 0.45,
	},
	board.King: {
		-0.15, 0.36, 0.12, -0.54, 0.08, -0.28, 0.24, 0.14,
		0.01, 0.07, -0.08, -0.64, -0.43, -0.16, 0.09, 0.08,
		-0.14, -0.14, -0.22, -0.46, -0.44, -0.30, -0.15, -0.27,
		-0.49, -0.01, -0.27, -0.39, -0.46, -0.44, -0.33, -0.51,
		-0.17, -0.20, -0.12, -0.27, -0.30, -0.25, -0.14, -0.36,
		-0.09, 0.24, 0.02, -0.16, -0.20, 0.06, 0.22, -0.22,
		0.29, -0.01, -0.20, -0.07, -0.08, -0.04, -0.38, -0.29,
		-0.65, 0.23, 0.16, -0.15, -0.56, -0.34, 0.02, 0.13,
	},
}

var pstEG = [board.NumPieces][64]float32{
	board.Pawn: {
		0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00,
		0.13, 0.08, 0.08, 0.10, 0.13, 0.00, 0.02, -0.07,
		0.04, 0.07, -0.06, 0.01, 0.00, -0.05, -0.01, -0.08,
		0.13, 0.09, -0.03, -0.07, -0.07, -0.08, 0.03, -0.01,
		0.32, 0.24, 0.13, 0.05, -0.02, 0.04, 0.17, 0.17,
		0.94, 1.00, 0.85, 0.67, 0.60, 0.53, 0.73, 0.77,
		1.78, 1.73, 1.58, 1.34, 1.47, 1.32, 1.65, 1.87,
		0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00, 0.00,
	},
	board.Knight: {
		-0.29, -0.51, -0.23, -0.15, -0.22, -0.18, -0.50, -0.64,
		-0.42, -0.20, -0.10, 0.00, -0.01, -0.20, -0.23, -0.44,
		-0.23, -0.03, 0.10, 0.15, 0.18, 0.06, -0.01, -0.20,
		-0.18, -0.06, 0.16, 0.25, 0.16, 0.17, 0.05, -0.18,
		-0.17, 0.05, 0.20, 0.26, 0.25, 0.16, 0.08, -0.17,
		-0.24, -0.20, 0.10, 0.09, 0.08, 0.02, -0.21, -0.23,
		-0.25, -0.08, -0.25, -0.02, -0.09, -0.25, -0.24, -0.52,
		-0.58, -0.38, -0.13, -0.28, -0.31, -0.27, -0.63, -0.99,
	},
	board.Bishop: {
		-0.23, -0.09, -0.23, -0.05, -0.09, -0.16, -0.05, -0.17,
		-0.14, -0.18, -0.07, -0.01, 0.04, -0.09, -0.15, -0.27,
		-0.12, -0.03, 0.08, 0.10, 0.13, 0.03, -0.07, -0.15,
		-0.06, 0.03, 0.13, 0.19, 0.07, 0.10, -0.03, -0.09,
		-0.03, 0.09, 0.12, 0.09, 0.14, 0.10, 0.03, 0.02,
		0.02, 0.00, -0.08, -0.04, 0.00, -0.12, -0.03, 0.03,
		-0.08, -0.04, 0.07, -0.12, -0.03, -0.13, -0.04, -0.14,
		-0.14, -0.21, -0.11, -0.08, -0.07, -0.09, -0.17, -0.24,
	},
	board.Rook: {
		-0.09, 0.02, 0.03, -0.01, -0.05, -0.13, 0.04, -0.20,
		-0.06, -0.06, 0.00, 0.02, -0.09, -0.09, -0.11, -0.03,
		-0.04, 0.00, -0.05, -0.01, -0.07, -0.12, -0.08, -0.16,
		0.03, 0.05, 0.08, 0.04, -0.05, -0.06, -0.08, -0.11,
		0.04, 0.03, 0.13, 0.01, 0.02, 0.01, -0.01, 0.02,
		0.07, 0.07, 0.07, 0.05, 0.04, -0.03, -0.05, -0.03,
		0.11, 0.13, 0.13, 0.11, -0.03, 0.03, 0.08, 0.03,
		0.13, 0.10, 0.18, 0.15, 0.12, 0.12, 0.08, 0.05,
	},
	board.Queen: {
		-0.33, -0.28, -0.22, -0.43, -0.05, -0.32, -0.20, -0.41,
		-0.22, -0.23, -0.30, -0.16, -0.16, -0.23, -0.36, -0.32,
		-0.16, -0.27, 0.15, 0.06, 0.09, 0.17, 0.10, 0.05,
		-0.18, 0.28, 0.19, 0.47, 0.31, 0.34, 0.39, 0.23,
		0.03, 0.22, 0.24, 0.45, 0.57, 0.40, 0.57, 0.36,
		-0.20, 0.06, 0.09, 0.49, 0.47, 0.35, 0.19, 0.09,
		-0.17, 0.20, 0.32, 0.41, 0.58, 0.25, 0.30, 0.00,
		-0.09, 0.22, 0.22, 0.27, 0.27, 0.19, 0.10, 0.20,
	},
	board.King: {
		-0.53, -0.34, -0.21, -0.11, -0.28, -0.14, -0.24, -0.43,
		-0.27, -0.11, 0.04, 0.13, 0.14, 0.04, -0.05, -0.17,
		-0.19, -0.03, 0.11, 0.21, 0.23, 0.16, 0.07, -0.09,
		-0.18, -0.04, 0.21, 0.24, 0.27, 0.23, 0.09, -0.11,
		-0.08, 0.22, 0.24, 0.27, 0.26, 0.33, 0.26, 0.03,
		0.10, 0.17, 0.23, 0.15, 0.20, 0.45, 0.44, 0.13,
		-0.12, 0.17, 0.14, 0.17, 0.17, 0.38, 0.23, 0.11,
		-0.74, -0.35, -0.18, -0.18, -0.11, 0.15, 0.04, -0.17,
	},
}

// pstIndex maps a board square to the 0..63 index used by pstMG/pstEG, a1=0..h8=63.
func pstIndex(sq board.Square) int {
	file := 7 - int(sq.File())
	return int(sq.Rank())*8 + file
}

// pstLookup returns the blended piece-square value for a piece of the given color on sq. The
// midgame/endgame blend uses the end-game probability egp; the additional (1-earlyGameProb)/24
// scale uses the independently-computed early-game probability, per the authoritative reading
// in the package eval doc comment. The caller applies the remaining 0.10 factor once to the
// summed contribution.
func pstLookup(piece board.Piece, c board.Color, sq board.Square, egp, earlyGameProb float64) float32 {
	idx := pstIndex(sq)
	if c == board.Black {
		idx = 63 - idx
	}

	mg, eg := pstMG[piece][idx], pstEG[piece][idx]
	blended := float32(egp)*eg + float32(1-egp)*mg
	return blended * float32(1-earlyGameProb) / 24
}
