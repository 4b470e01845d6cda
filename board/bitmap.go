package board

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"

	"github.com/daystram/arbiter/position"
	"golang.org/x/exp/constraints"
)

// Little-endian rank-file (LERF) mapping
type bitmap uint64

func shiftN(bm bitmap) bitmap {
	return bm << 8
}

func shiftS(bm bitmap) bitmap {
	return bm >> 8
}

func shiftE(bm bitmap) bitmap {
	return (bm << 1) &^ maskCol[position.FileA]
}

func shiftW(bm bitmap) bitmap {
	return (bm >> 1) &^ maskCol[position.FileH]
}

func (bm *bitmap) Set(pos position.Pos) {
	*bm |= maskCell[pos]
}

func (bm *bitmap) Unset(pos position.Pos) {
	*bm &^= maskCell[pos]
}

func (bm bitmap) Has(pos position.Pos) bool {
	return bm&maskCell[pos] != 0
}

// LS1B scans forward. Undefined for an empty bitmap.
func (bm bitmap) LS1B() position.Pos {
	return position.Pos(bits.TrailingZeros64(uint64(bm)))
}

// MS1B scans in reverse. Undefined for an empty bitmap.
func (bm bitmap) MS1B() position.Pos {
	return position.Pos(63 - bits.LeadingZeros64(uint64(bm)))
}

func (bm bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

// squares yields every set square from a1 towards h8.
func (bm bitmap) squares() iter.Seq[position.Pos] {
	return func(yield func(position.Pos) bool) {
		for rest := bm; rest != 0; rest &= rest - 1 {
			if !yield(rest.LS1B()) {
				return
			}
		}
	}
}

func (bm bitmap) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for y := position.Pos(Height); y > 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y))
		for x := position.Pos(0); x < Width; x++ {
			if bm&maskCell[(y-1)*Height+x] != 0 {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
