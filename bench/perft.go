package bench

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/arbiter/board"
)

var ErrNegativeDepth = errors.New("negative depth")

// Stats holds the perft counters. Every counter but Nodes describes the moves made on the last ply.
type Stats struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.Captures += o.Captures
	s.EnPassants += o.EnPassants
	s.Castles += o.Castles
	s.Promotions += o.Promotions
	s.Checks += o.Checks
}

type counters struct {
	nodes, cap, enp, cas, pro, chk atomic.Uint64
}

func (c *counters) add(o Stats) {
	c.nodes.Add(o.Nodes)
	c.cap.Add(o.Captures)
	c.enp.Add(o.EnPassants)
	c.cas.Add(o.Castles)
	c.pro.Add(o.Promotions)
	c.chk.Add(o.Checks)
}

func (c *counters) stats() Stats {
	return Stats{
		Nodes:      c.nodes.Load(),
		Captures:   c.cap.Load(),
		EnPassants: c.enp.Load(),
		Castles:    c.cas.Load(),
		Promotions: c.pro.Load(),
		Checks:     c.chk.Load(),
	}
}

// NewBoard returns a board for fen on which neither repetitions nor the move clock end the game,
// so that the move tree only ends at checkmate or stalemate.
func NewBoard(fen string) (*board.Board, error) {
	return board.NewBoard(
		board.WithFEN(fen),
		board.WithMoveLimit(math.MaxInt),
		board.WithRepetitionLimit(math.MaxInt),
	)
}

// Perft walks the move tree of fen to the given depth and sends the summary line to out. With
// verbose, the node count below every root move is sent first.
func Perft(depth int, fen string, parallel, verbose bool, out chan string) error {
	if depth < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	b, err := NewBoard(fen)
	if err != nil {
		return err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	st := run(b, depth, verbose, out)
	elapsed := time.Since(start)
	rate := 0
	if elapsed > 0 {
		rate = int(float64(st.Nodes) / elapsed.Seconds())
	}

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
			depth, st.Nodes, rate, st.Captures, st.EnPassants, st.Castles, st.Promotions, st.Checks, elapsed.Seconds())

	return nil
}

// Count walks the move tree sequentially. A depth of zero or less counts b itself.
func Count(b *board.Board, depth int) Stats {
	if depth <= 0 {
		return Stats{Nodes: 1}
	}
	if depth == 1 {
		return countLeaves(b)
	}

	var st Stats
	for mv := range b.GenerateMoves(b.Turn()) {
		bb := b.Clone()
		if err := bb.Apply(mv); err != nil {
			continue
		}
		st.add(Count(bb, depth-1))
	}
	return st
}

func countLeaves(b *board.Board) Stats {
	var st Stats
	for mv := range b.GenerateMoves(b.Turn()) {
		st.add(countMove(b, mv))
	}
	return st
}

type perftFunc func(b *board.Board, d int, verbose bool, out chan string) Stats

func runPerft(b *board.Board, d int, verbose bool, out chan string) Stats {
	if d <= 0 {
		return Stats{Nodes: 1}
	}

	var st Stats
	for mv := range b.GenerateMoves(b.Turn()) {
		child, ok := countChild(b, mv, d)
		if !ok {
			continue
		}
		if verbose {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child.Nodes)
		}
		st.add(child)
	}
	return st
}

func runPerftParallel(b *board.Board, d int, verbose bool, out chan string) Stats {
	if d <= 0 {
		return Stats{Nodes: 1}
	}

	var c counters
	var wg sync.WaitGroup
	for mv := range b.GenerateMoves(b.Turn()) {
		wg.Add(1)
		go func(mv board.Move) {
			defer wg.Done()
			child, ok := countChild(b, mv, d)
			if !ok {
				return
			}
			if verbose {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), child.Nodes)
			}
			c.add(child)
		}(mv)
	}
	wg.Wait()
	return c.stats()
}

func countChild(b *board.Board, mv board.Move, d int) (Stats, bool) {
	if d == 1 {
		return countMove(b, mv), true
	}
	bb := b.Clone()
	if err := bb.Apply(mv); err != nil {
		return Stats{}, false
	}
	return Count(bb, d-1), true
}

// countMove returns the leaf statistics of a single move made on b.
func countMove(b *board.Board, mv board.Move) Stats {
	st := Stats{Nodes: 1}
	if b.IsCapture(mv) {
		st.Captures++
	}
	if b.IsEnPassant(mv) {
		st.EnPassants++
	}
	switch mv.Kind {
	case board.MoveKindCastling:
		st.Castles++
	case board.MoveKindPromotion:
		st.Promotions++
	}
	bb := b.Clone()
	if err := bb.Apply(mv); err == nil && bb.IsKingChecked(bb.Turn()) {
		st.Checks++
	}
	return st
}
