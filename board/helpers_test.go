package board

import (
	"iter"
	"testing"

	"github.com/daystram/arbiter/position"
)

func newTestBoard(t testing.TB, fen string) *Board {
	t.Helper()
	b, err := NewBoard(WithFEN(fen))
	if err != nil {
		t.Fatalf("unexpected error for %q: %v", fen, err)
	}
	return b
}

// lan builds a move from its long algebraic form, e.g. e2e4, e1g1 or a7a8q.
func lan(t testing.TB, s string) Move {
	t.Helper()
	if len(s) != 4 && len(s) != 5 {
		t.Fatalf("bad move %q", s)
	}
	from, err := position.NewPosFromNotation(s[0:2])
	if err != nil {
		t.Fatalf("bad move %q: %v", s, err)
	}
	to, err := position.NewPosFromNotation(s[2:4])
	if err != nil {
		t.Fatalf("bad move %q: %v", s, err)
	}
	if len(s) == 5 {
		_, p, ok := NewPieceFromSymbol(rune(s[4]))
		if !ok {
			t.Fatalf("bad promotion %q", s)
		}
		return NewPromotionMove(from, to, p)
	}
	if castleDirectionOf(from, to) != CastleDirectionUnknown {
		return NewCastlingMove(from, to)
	}
	return NewRegularMove(from, to)
}

func playMoves(t testing.TB, b *Board, moves []string) {
	t.Helper()
	for i, m := range moves {
		if err := b.Apply(lan(t, m)); err != nil {
			t.Fatalf("unexpected error on move %d %s: %v", i+1, m, err)
		}
	}
}

func moveSet(moves iter.Seq[Move]) map[string]bool {
	set := make(map[string]bool)
	for mv := range moves {
		set[mv.UCI()] = true
	}
	return set
}
