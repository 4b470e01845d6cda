package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/daystram/arbiter/board"
	"github.com/daystram/arbiter/position"
)

const (
	squareSize = 60
	margin     = 24
	boardSize  = squareSize * int(position.MaxComponentScalar)
)

const (
	styleLight = "fill:#eeeed2"
	styleDark  = "fill:#769656"
	styleLabel = "font-family:sans-serif;font-size:14px;text-anchor:middle;fill:#333333"
	stylePiece = "font-family:serif;font-size:44px;text-anchor:middle;dominant-baseline:central"
)

// errWriter keeps the first write error, svg.SVG ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// SVG writes a diagram of the board, White at the bottom, with the side to move as title.
func SVG(w io.Writer, b *board.Board) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(boardSize+2*margin, boardSize+2*margin)
	canvas.Title(title(b))

	for y := position.Rank8; y >= position.Rank1; y-- {
		top := margin + int(position.Rank8-y)*squareSize
		canvas.Text(margin/2, top+squareSize/2, y.NotationComponentY(), styleLabel)
		for x := position.FileA; x <= position.FileH; x++ {
			left := margin + int(x)*squareSize
			style := styleLight
			if (x+y)%2 == 0 {
				style = styleDark
			}
			canvas.Rect(left, top, squareSize, squareSize, style)

			pos, _ := position.NewPosFromXY(x, y)
			if s, p, ok := b.PieceAt(pos); ok {
				canvas.Text(left+squareSize/2, top+squareSize/2, p.SymbolUnicode(s, false), stylePiece)
			}
		}
	}
	for x := position.FileA; x <= position.FileH; x++ {
		canvas.Text(margin+int(x)*squareSize+squareSize/2, boardSize+margin+margin*2/3, x.NotationComponentX(), styleLabel)
	}

	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

func title(b *board.Board) string {
	if w := b.Winner(); w != board.WinnerNone {
		return fmt.Sprintf("%s (%s)", w, b.State())
	}
	return fmt.Sprintf("%s to move", b.Turn())
}
