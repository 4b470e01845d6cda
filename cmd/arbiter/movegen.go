package main

import (
	"fmt"
	"io"
	"log"
	"slices"
	"strconv"

	"github.com/daystram/arbiter/board"
	"github.com/daystram/arbiter/render"
)

func movegen(w io.Writer, fen string, draw bool) error {
	log.Println("============ movegen")
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "to move:", b.Turn())
	fmt.Fprintln(w, render.Dump(b))
	fmt.Fprintln(w, render.Draw(b))
	fmt.Fprintln(w, b.State())
	mvs := slices.Collect(b.GenerateMoves(b.Turn()))
	dumpMoves(w, b, mvs)

	if draw {
		for _, mv := range mvs {
			bb := b.Clone()
			if err := bb.Apply(mv); err != nil {
				return fmt.Errorf("%s: %w", mv, err)
			}
			fmt.Fprintln(w, mv)
			fmt.Fprintln(w, render.Draw(bb))
			fmt.Fprintln(w, bb.FEN())
		}
	}
	return nil
}

func dumpMoves(w io.Writer, b *board.Board, mvs []board.Move) {
	for i, mv := range mvs {
		s, p, _ := b.PieceAt(mv.From)
		fmt.Fprintf(w, "option %*d: [%s] %s %s %s %s => %s (cap=%v) (enp=%v) (pro=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), mv.Kind, s, p, mv.From, mv.To, b.IsCapture(mv), b.IsEnPassant(mv), mv.Promote)
	}
}
