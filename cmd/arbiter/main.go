package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/arbiter/bench"
	"github.com/daystram/arbiter/board"
	"github.com/daystram/arbiter/render"
	"github.com/daystram/arbiter/shell"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")
	colored = flag.Bool("color", false, "colour board output")
	fen     = flag.String("fen", board.DefaultStartingPositionFEN, "starting position")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	perftDepth    = flag.Int("perft", 0, "run perft to the given depth")
	perftParallel = flag.Bool("perft.parallel", true, "walk root moves concurrently in perft mode")

	stepRun   = flag.Bool("step", false, "run random self-play mode")
	stepSeed  = flag.Uint64("step.seed", 1, "random seed in step mode")
	stepLimit = flag.Int("step.limit", 5000, "maximum plies in step mode")

	svgPath = flag.String("svg", "", "write an SVG diagram of the position to path")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

// realMain takes the position from -fen, or from the positional arguments when given.
func realMain(args []string) error {
	color.NoColor = color.NoColor || !*colored

	position := *fen
	if len(args) > 0 {
		position = strings.Join(args, " ")
	}
	if *svgPath != "" {
		return exportSVG(*svgPath, position)
	}
	if *movegenRun {
		return movegen(os.Stdout, position, *movegenDraw)
	}
	if *perftDepth > 0 {
		return perft(*perftDepth, position, *perftParallel)
	}
	if *stepRun {
		return step(os.Stdout, position, *stepSeed, *stepLimit)
	}

	return runShell(position)
}

func runShell(position string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	i := shell.NewInterface(&shell.Options{
		ParallelPerft: *perftParallel,
		Color:         *colored,
	})
	if position != board.DefaultStartingPositionFEN {
		if err := i.Load(position); err != nil {
			return err
		}
	}
	return i.Run(ctx, os.Stdin, os.Stdout)
}

func perft(depth int, position string, parallel bool) error {
	log.Printf("============ perft(%d)\n", depth)
	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			log.Println(s)
		}
	}()
	err := bench.Perft(depth, position, parallel, true, out)
	close(out)
	<-done
	return err
}

func exportSVG(path, position string) error {
	b, err := board.NewBoard(board.WithFEN(position))
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.SVG(f, b); err != nil {
		_ = f.Close()
		return err
	}
	log.Printf("wrote %s\n", path)
	return f.Close()
}
