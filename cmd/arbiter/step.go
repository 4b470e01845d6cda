package main

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/daystram/arbiter/board"
	"github.com/daystram/arbiter/render"
)

// step plays uniformly random legal moves from fen until the game ends or limit plies are made.
func step(w io.Writer, fen string, seed uint64, limit int) error {
	log.Println("============ step")
	var (
		timesGenerateMoves []time.Duration
		timesApply         []time.Duration
	)
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	r := rand.New(rand.NewPCG(seed, seed))
	for ply := 0; ply < limit && b.State().IsRunning(); ply++ {
		t1 := time.Now()
		mvs := slices.Collect(b.GenerateMoves(b.Turn()))
		timesGenerateMoves = append(timesGenerateMoves, time.Since(t1))
		if len(mvs) == 0 {
			return fmt.Errorf("unexpected move exhaustion: state=%s", b.State())
		}
		mv := mvs[r.IntN(len(mvs))]
		turn := b.Turn()

		t1 = time.Now()
		if err := b.Apply(mv); err != nil {
			return fmt.Errorf("%s: %w", mv, err)
		}
		timesApply = append(timesApply, time.Since(t1))

		fmt.Fprintf(w, "\n===== [#%d] %s: %s\n", ply/2+1, turn, mv)
		fmt.Fprintln(w, render.Draw(b))
		fmt.Fprintln(w, b.FEN())
		fmt.Fprintln(w, b.DebugString())
	}

	avg := func(ds []time.Duration) time.Duration {
		if len(ds) == 0 {
			return 0
		}
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return s / time.Duration(len(ds))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, b.State(), b.Winner())
	fmt.Fprintln(w, "genmv:", avg(timesGenerateMoves))
	fmt.Fprintln(w, "apply:", avg(timesApply))
	return nil
}
