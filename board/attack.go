package board

import (
	"github.com/daystram/arbiter/position"
)

// slide returns the part of the ray from pos in direction d that is reachable given the
// occupancy, including the first blocker so that it can be captured.
func slide(t *rayTable, pos position.Pos, d direction, occupied bitmap) bitmap {
	r := t[pos][d]
	blockers := r & occupied
	if blockers == 0 {
		return r
	}
	if d.increasing() {
		return r &^ t[blockers.LS1B()][d]
	}
	return r &^ t[blockers.MS1B()][d]
}

func rookAttacks(pos position.Pos, occupied bitmap) bitmap {
	t := rays()
	var bm bitmap
	for _, d := range lateralDirections {
		bm |= slide(t, pos, d, occupied)
	}
	return bm
}

func bishopAttacks(pos position.Pos, occupied bitmap) bitmap {
	t := rays()
	var bm bitmap
	for _, d := range diagonalDirections {
		bm |= slide(t, pos, d, occupied)
	}
	return bm
}

func queenAttacks(pos position.Pos, occupied bitmap) bitmap {
	return rookAttacks(pos, occupied) | bishopAttacks(pos, occupied)
}

func kingAttacks(bm bitmap) bitmap {
	return (bm << 8) |
		(bm >> 8) |
		((bm << 1) &^ maskCol[position.FileA]) |
		((bm >> 1) &^ maskCol[position.FileH]) |
		((bm >> 7) &^ maskCol[position.FileA]) |
		((bm << 7) &^ maskCol[position.FileH]) |
		((bm << 9) &^ maskCol[position.FileA]) |
		((bm >> 9) &^ maskCol[position.FileH])
}

func knightAttacks(bm bitmap) bitmap {
	return ((bm << 6) &^ (maskCol[position.FileG] | maskCol[position.FileH])) |
		((bm << 15) &^ maskCol[position.FileH]) |
		((bm >> 6) &^ (maskCol[position.FileA] | maskCol[position.FileB])) |
		((bm >> 15) &^ maskCol[position.FileA]) |
		((bm >> 10) &^ (maskCol[position.FileG] | maskCol[position.FileH])) |
		((bm >> 17) &^ maskCol[position.FileH]) |
		((bm << 10) &^ (maskCol[position.FileA] | maskCol[position.FileB])) |
		((bm << 17) &^ maskCol[position.FileA])
}

// pawnAttacks returns the diagonal capture squares of the pawns in bm.
func pawnAttacks(bm bitmap, s Side) bitmap {
	if s == SideWhite {
		return ((bm << 9) &^ maskCol[position.FileA]) | ((bm << 7) &^ maskCol[position.FileH])
	}
	return ((bm >> 9) &^ maskCol[position.FileH]) | ((bm >> 7) &^ maskCol[position.FileA])
}

// pseudoPawnAdvances ignores occupancy: one step, plus two from the starting rank.
func pseudoPawnAdvances(bm bitmap, s Side) bitmap {
	if s == SideWhite {
		return (bm << 8) | ((bm & maskRow[position.Rank2]) << 16)
	}
	return (bm >> 8) | ((bm & maskRow[position.Rank7]) >> 16)
}

func pawnAdvances(pos position.Pos, s Side, occupied bitmap) bitmap {
	advances := pseudoPawnAdvances(maskCell[pos], s)
	blockers := advances & occupied
	if blockers == 0 {
		return advances
	}
	t := rays()
	if s == SideWhite {
		return advances &^ occupied &^ t[blockers.LS1B()][dirNorth]
	}
	return advances &^ occupied &^ t[blockers.MS1B()][dirSouth]
}
