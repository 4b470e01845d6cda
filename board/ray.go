package board

import (
	"sync"

	"github.com/daystram/arbiter/position"
)

type direction uint8

const (
	dirNorth direction = iota
	dirSouth
	dirEast
	dirWest
	dirNorthEast
	dirNorthWest
	dirSouthEast
	dirSouthWest
)

var (
	lateralDirections  = [4]direction{dirNorth, dirSouth, dirEast, dirWest}
	diagonalDirections = [4]direction{dirNorthEast, dirNorthWest, dirSouthEast, dirSouthWest}
)

// increasing reports whether walking in d moves towards higher square indices,
// i.e. whether the nearest blocker is the least significant bit.
func (d direction) increasing() bool {
	switch d {
	case dirNorth, dirEast, dirNorthEast, dirNorthWest:
		return true
	default:
		return false
	}
}

// ray holds, per direction, the squares reachable from a square on an empty board.
type ray [8]bitmap

type rayTable [TotalCells]ray

// rays returns the process-wide ray table, building it on first use.
var rays = sync.OnceValue(newRayTable)

func newRayTable() *rayTable {
	t := &rayTable{}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		t[pos][dirNorth] = northRay(pos)
		t[pos][dirSouth] = southRay(pos)
		t[pos][dirEast] = eastRay(pos)
		t[pos][dirWest] = westRay(pos)
	}

	// a1 and a8 diagonals, walked one file east per iteration
	northEastSlider := bitmap(0x_80_40_20_10_08_04_02_00)
	southEastSlider := bitmap(0x_00_02_04_08_10_20_40_80)
	for x := position.Pos(0); x < Width; x++ {
		north, south := northEastSlider, southEastSlider
		for y := position.Pos(0); y < Height; y++ {
			t[y*Width+x][dirNorthEast] = north
			north = shiftN(north)
		}
		for y := Height - 1; y >= 0; y-- {
			t[y*Width+x][dirSouthEast] = south
			south = shiftS(south)
		}
		northEastSlider = shiftE(northEastSlider)
		southEastSlider = shiftE(southEastSlider)
	}

	// h1 and h8 diagonals, walked one file west per iteration
	northWestSlider := bitmap(0x_01_02_04_08_10_20_40_00)
	southWestSlider := bitmap(0x_00_40_20_10_08_04_02_01)
	for x := Width - 1; x >= 0; x-- {
		north, south := northWestSlider, southWestSlider
		for y := position.Pos(0); y < Height; y++ {
			t[y*Width+x][dirNorthWest] = north
			north = shiftN(north)
		}
		for y := Height - 1; y >= 0; y-- {
			t[y*Width+x][dirSouthWest] = south
			south = shiftS(south)
		}
		northWestSlider = shiftW(northWestSlider)
		southWestSlider = shiftW(southWestSlider)
	}

	return t
}

func northRay(pos position.Pos) bitmap {
	return (maskCol[position.FileA] << 8) << pos
}

func southRay(pos position.Pos) bitmap {
	return (maskCol[position.FileH] >> 8) >> (pos ^ 63)
}

func eastRay(pos position.Pos) bitmap {
	return ((bitmap(1) << (pos | 7)) - (bitmap(1) << pos)) << 1
}

func westRay(pos position.Pos) bitmap {
	return (bitmap(1) << pos) - (bitmap(1) << (pos & 56))
}
