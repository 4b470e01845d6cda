package board

import (
	"testing"

	"github.com/daystram/arbiter/position"
)

func TestRookAttacks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		pos       position.Pos
		occupied  bitmap
		want      bitmap
		wantEmpty bool
	}{
		{name: "a1", pos: position.A1, occupied: 0x01648c2412801480, want: 0x01010101010101fe, wantEmpty: true},
		{name: "h1", pos: position.H1, occupied: 0x8005640832062001, want: 0x808080808080807f, wantEmpty: true},
		{name: "a8", pos: position.A8, occupied: 0x8024085272045481, want: 0xfe01010101010101, wantEmpty: true},
		{name: "h8", pos: position.H8, occupied: 0x0108220826401aa1, want: 0x7f80808080808080, wantEmpty: true},
		{name: "d5 blocked", pos: position.D5, occupied: 0x8148004a008aa02b, want: 0x0008087608080000},
		{name: "d5 blocked beyond", pos: position.D5, occupied: 0x894800cb008aa02b, want: 0x0008087608080000},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := rookAttacks(tt.pos, tt.occupied); got != tt.want {
				t.Errorf("unexpected attacks: got=%#x want=%#x\n%s", uint64(got), uint64(tt.want), got.Dump())
			}
			if !tt.wantEmpty {
				return
			}
			if got := rookAttacks(tt.pos, 0); got != tt.want {
				t.Errorf("unexpected attacks on empty board: got=%#x want=%#x", uint64(got), uint64(tt.want))
			}
		})
	}
}

func TestBishopAttacks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		pos       position.Pos
		occupied  bitmap
		want      bitmap
		wantEmpty bool
	}{
		{name: "a1", pos: position.A1, occupied: 0x81141244012100d0, want: 0x8040201008040200, wantEmpty: true},
		{name: "h1", pos: position.H1, occupied: 0xc19840d208020443, want: 0x0102040810204000, wantEmpty: true},
		{name: "a8", pos: position.A8, occupied: 0x7009e01561060aa9, want: 0x0002040810204080, wantEmpty: true},
		{name: "h8", pos: position.H8, occupied: 0x012c020980209051, want: 0x0040201008040201, wantEmpty: true},
		{name: "d5 blocked", pos: position.D5, occupied: 0x00a20180002a0094, want: 0x0022140014220000},
		{name: "d5 blocked beyond", pos: position.D5, occupied: 0x41a20180002a4194, want: 0x0022140014220000},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := bishopAttacks(tt.pos, tt.occupied); got != tt.want {
				t.Errorf("unexpected attacks: got=%#x want=%#x\n%s", uint64(got), uint64(tt.want), got.Dump())
			}
			if !tt.wantEmpty {
				return
			}
			if got := bishopAttacks(tt.pos, 0); got != tt.want {
				t.Errorf("unexpected attacks on empty board: got=%#x want=%#x", uint64(got), uint64(tt.want))
			}
		})
	}
}

func TestQueenAttacksIsUnion(t *testing.T) {
	t.Parallel()
	occupancies := []bitmap{
		0,
		0x01648c2412801480,
		0x8148004a008aa02b,
		0x41a20180002a4194,
		0x_ff_ff_00_00_00_00_ff_ff,
		0xffffffffffffffff,
	}

	for _, occupied := range occupancies {
		for pos := position.Pos(0); pos < TotalCells; pos++ {
			want := rookAttacks(pos, occupied) | bishopAttacks(pos, occupied)
			if got := queenAttacks(pos, occupied); got != want {
				t.Errorf("unexpected queen attacks from %s: got=%#x want=%#x", pos, uint64(got), uint64(want))
			}
		}
	}
}

func TestPawnAttacks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		pawns bitmap
		side  Side
		want  bitmap
	}{
		{name: "white", pawns: 0x0000018008002200, side: SideWhite, want: 0x0002401400550000},
		{name: "black", pawns: 0x0010008400110000, side: SideBlack, want: 0x000028004a002a00},
		{name: "white last rank", pawns: 0x9900000000000000, side: SideWhite, want: 0},
		{name: "black last rank", pawns: 0x0000000000000099, side: SideBlack, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := pawnAttacks(tt.pawns, tt.side); got != tt.want {
				t.Errorf("unexpected attacks: got=%#x want=%#x\n%s", uint64(got), uint64(tt.want), got.Dump())
			}
		})
	}
}

func TestPseudoPawnAdvances(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		pawns bitmap
		side  Side
		want  bitmap
	}{
		{name: "white", pawns: 0x000000100820c300, side: SideWhite, want: 0x00001008e3c30000},
		{name: "black", pawns: 0x00c3200810000000, side: SideBlack, want: 0x0000c3e308100000},
		{name: "white last rank", pawns: 0xff00000000000000, side: SideWhite, want: 0},
		{name: "black last rank", pawns: 0x00000000000000ff, side: SideBlack, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := pseudoPawnAdvances(tt.pawns, tt.side); got != tt.want {
				t.Errorf("unexpected advances: got=%#x want=%#x\n%s", uint64(got), uint64(tt.want), got.Dump())
			}
		})
	}
}

func TestPawnAdvances(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		pos      position.Pos
		side     Side
		occupied bitmap
		want     bitmap
	}{
		{name: "white free", pos: position.E2, side: SideWhite, want: maskCell[position.E3] | maskCell[position.E4]},
		{name: "white single blocked", pos: position.E2, side: SideWhite, occupied: maskCell[position.E3], want: 0},
		{name: "white double blocked", pos: position.E2, side: SideWhite, occupied: maskCell[position.E4], want: maskCell[position.E3]},
		{name: "white not home", pos: position.E3, side: SideWhite, want: maskCell[position.E4]},
		{name: "black free", pos: position.D7, side: SideBlack, want: maskCell[position.D6] | maskCell[position.D5]},
		{name: "black single blocked", pos: position.D7, side: SideBlack, occupied: maskCell[position.D6], want: 0},
		{name: "black double blocked", pos: position.D7, side: SideBlack, occupied: maskCell[position.D5], want: maskCell[position.D6]},
		{name: "black not home", pos: position.D4, side: SideBlack, occupied: maskCell[position.C3], want: maskCell[position.D3]},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := pawnAdvances(tt.pos, tt.side, tt.occupied|maskCell[tt.pos]); got != tt.want {
				t.Errorf("unexpected advances: got=%#x want=%#x\n%s", uint64(got), uint64(tt.want), got.Dump())
			}
		})
	}
}

func TestKnightAttacks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		knights bitmap
		want    bitmap
	}{
		{name: "centre", knights: 0x0000000100800000, want: 0x0002044024022040},
		{name: "edges", knights: 0x0800000000000020, want: 0x0022140000508800},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := knightAttacks(tt.knights); got != tt.want {
				t.Errorf("unexpected attacks: got=%#x want=%#x\n%s", uint64(got), uint64(tt.want), got.Dump())
			}
		})
	}
}

func TestKingAttacks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		kings bitmap
		want  bitmap
	}{
		{name: "edges", kings: 0x0800008100000008, want: 0x141cc342c3001c14},
		{name: "corners", kings: 0x8100000000000081, want: 0x42c300000000c342},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := kingAttacks(tt.kings); got != tt.want {
				t.Errorf("unexpected attacks: got=%#x want=%#x\n%s", uint64(got), uint64(tt.want), got.Dump())
			}
		})
	}
}
