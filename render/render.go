// Package render turns a board into text, coloured terminal output or an SVG diagram.
package render

import (
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/arbiter/board"
	"github.com/daystram/arbiter/position"
)

var (
	lightSquare = color.New(color.FgBlack, color.BgHiGreen)
	darkSquare  = color.New(color.FgBlack, color.BgGreen)
	label       = color.New(color.Bold)
)

// Dump renders the board as eight lines, rank 8 first, with FEN letters and '.' for empty
// squares, each cell followed by a space.
func Dump(b *board.Board) string {
	builder := strings.Builder{}
	for y := position.Rank8; y >= position.Rank1; y-- {
		for x := position.FileA; x <= position.FileH; x++ {
			pos, _ := position.NewPosFromXY(x, y)
			if s, p, ok := b.PieceAt(pos); ok {
				_, _ = builder.WriteString(p.SymbolFEN(s))
			} else {
				_, _ = builder.WriteRune('.')
			}
			_, _ = builder.WriteRune(' ')
		}
		if y != position.Rank1 {
			_, _ = builder.WriteRune('\n')
		}
	}
	return builder.String()
}

// Draw renders the board with unicode pieces on coloured squares and rank and file labels.
// Colours are dropped when the output is not a terminal, see color.NoColor.
func Draw(b *board.Board) string {
	builder := strings.Builder{}
	for y := position.Rank8; y >= position.Rank1; y-- {
		_, _ = builder.WriteString(label.Sprintf(" %s ", y.NotationComponentY()))
		for x := position.FileA; x <= position.FileH; x++ {
			pos, _ := position.NewPosFromXY(x, y)
			sym := " "
			if s, p, ok := b.PieceAt(pos); ok {
				sym = p.SymbolUnicode(s, false)
			}
			square := lightSquare
			if (x+y)%2 == 0 {
				square = darkSquare
			}
			_, _ = builder.WriteString(square.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteRune('\n')
	}
	_, _ = builder.WriteString("   ")
	for x := position.FileA; x <= position.FileH; x++ {
		_, _ = builder.WriteString(label.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}
