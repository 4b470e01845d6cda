// Package shell implements a line oriented interpreter for playing and inspecting games.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/arbiter/bench"
	"github.com/daystram/arbiter/board"
	"github.com/daystram/arbiter/notation"
	"github.com/daystram/arbiter/render"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")
	ErrNothingToUndo  = errors.New("nothing to undo")

	defaultOptions = Options{
		Debug:         false,
		ParallelPerft: true,
		Color:         false,
	}

	errorColor  = color.New(color.FgRed)
	statusColor = color.New(color.Bold)
)

const prompt = "> "

func DefaultLogger(a ...any) {
	log.Println(a...)
}

type Options struct {
	Debug         bool
	ParallelPerft bool
	Color         bool

	// Logger receives debug traces while Debug is set. Defaults to DefaultLogger.
	Logger func(...any)
}

type Interface struct {
	board   *board.Board
	past    []*board.Board
	options Options
	w       io.Writer
}

// NewInterface returns an interface on the starting position. A nil opts uses the defaults.
func NewInterface(opts *Options) *Interface {
	options := defaultOptions
	if opts != nil {
		options = *opts
	}
	if options.Logger == nil {
		options.Logger = DefaultLogger
	}
	return &Interface{
		options: options,
	}
}

// Load replaces the current position with fen and forgets the undo history.
func (i *Interface) Load(fen string) error {
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	i.board = b
	i.past = nil
	return nil
}

// Board returns the current position.
func (i *Interface) Board() *board.Board {
	return i.board
}

// Run reads commands from r until quit, EOF or ctx is done, writing all output to w.
func (i *Interface) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	i.w = w
	if i.board == nil {
		if err := i.reset(); err != nil {
			return err
		}
	}
	i.commandStatus()

	scanner := bufio.NewScanner(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		i.print(prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "" {
			continue
		}
		i.debug("cmd:", cmd)

		var err error
		switch args := strings.Fields(cmd); args[0] {
		case "quit", "exit":
			return nil
		case "d", "board":
			i.commandDraw()
		case "fen":
			i.println(i.board.FEN())
		case "moves":
			i.commandMoves()
		case "new":
			err = i.commandNew()
		case "position":
			err = i.commandPosition(args[1:])
		case "perft":
			err = i.commandPerft(args[1:])
		case "undo":
			err = i.commandUndo()
		case "setoption":
			err = i.commandSetOption(args[1:])
		default:
			err = i.commandMove(cmd)
		}
		if err != nil {
			i.println(i.colorize(errorColor, "ERROR: "+err.Error()))
		}
		if i.options.Debug {
			i.debug(i.board.DebugString())
		}
	}
}

func (i *Interface) commandDraw() {
	if i.options.Color {
		i.println(render.Draw(i.board))
		return
	}
	i.println(render.Dump(i.board))
}

func (i *Interface) commandStatus() {
	if w := i.board.Winner(); w != board.WinnerNone {
		i.println(i.colorize(statusColor, fmt.Sprintf("Result: %s (%s)", w, i.board.State())))
	} else {
		status := fmt.Sprintf("%s to move", i.board.Turn())
		if i.board.IsKingChecked(i.board.Turn()) {
			status += ", check"
		}
		i.println(i.colorize(statusColor, status))
	}
	i.commandDraw()
}

func (i *Interface) commandMoves() {
	var moves []string
	for mv := range i.board.GenerateMoves(i.board.Turn()) {
		moves = append(moves, mv.UCI())
	}
	slices.Sort(moves)
	i.println(fmt.Sprintf("%d: %s", len(moves), strings.Join(moves, " ")))
}

func (i *Interface) commandNew() error {
	if err := i.reset(); err != nil {
		return err
	}
	i.commandStatus()
	return nil
}

// commandPosition accepts "startpos [moves ...]" and "fen <fen> [moves ...]".
func (i *Interface) commandPosition(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: position startpos|fen <fen> [moves ...]", ErrBadArguments)
	}

	var fen string
	var rest []string
	switch args[0] {
	case "startpos":
		fen, rest = board.DefaultStartingPositionFEN, args[1:]
	case "fen":
		end := slices.Index(args, "moves")
		if end < 0 {
			end = len(args)
		}
		fen, rest = strings.Join(args[1:end], " "), args[end:]
	default:
		return fmt.Errorf("%w: unknown position %q", ErrBadArguments, args[0])
	}

	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		if rest[0] != "moves" {
			return fmt.Errorf("%w: unexpected %q", ErrBadArguments, rest[0])
		}
		moves, err := notation.ParseLANs(strings.Join(rest[1:], " "))
		if err != nil {
			return err
		}
		for _, mv := range moves {
			if err := b.Apply(castlingOrRegular(b, mv)); err != nil {
				return fmt.Errorf("%s: %w", mv, err)
			}
		}
	}

	i.board = b
	i.past = nil
	i.commandStatus()
	return nil
}

func (i *Interface) commandPerft(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: perft <depth>", ErrBadArguments)
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		return fmt.Errorf("%w: bad depth %q", ErrBadArguments, args[0])
	}

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			i.println(s)
		}
	}()
	err = bench.Perft(depth, i.board.FEN(), i.options.ParallelPerft, true, out)
	close(out)
	<-done
	return err
}

func (i *Interface) commandUndo() error {
	if len(i.past) == 0 {
		return ErrNothingToUndo
	}
	i.board = i.past[len(i.past)-1]
	i.past = i.past[:len(i.past)-1]
	i.commandStatus()
	return nil
}

func (i *Interface) commandSetOption(args []string) error {
	if len(args) != 4 || args[0] != "name" || args[2] != "value" {
		return fmt.Errorf("%w: setoption name <name> value <value>", ErrBadArguments)
	}
	value, err := strconv.ParseBool(args[3])
	if err != nil {
		return fmt.Errorf("%w: bad value %q", ErrBadArguments, args[3])
	}
	switch name := strings.ToLower(args[1]); name {
	case "debug":
		i.options.Debug = value
	case "color":
		i.options.Color = value
	case "parallelperft":
		i.options.ParallelPerft = value
	default:
		return fmt.Errorf("%w: unknown option %q", ErrBadArguments, args[1])
	}
	return nil
}

func (i *Interface) commandMove(cmd string) error {
	mv, err := notation.ParseLAN(cmd)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnknownCommand, err)
	}
	prev := i.board.Clone()
	if err := i.board.Apply(castlingOrRegular(i.board, mv)); err != nil {
		return err
	}
	i.past = append(i.past, prev)
	i.commandStatus()
	return nil
}

// castlingOrRegular turns a castling move whose source is not the mover's King, such as a
// Rook on e1 going to g1, back into a regular move.
func castlingOrRegular(b *board.Board, mv board.Move) board.Move {
	if mv.Kind != board.MoveKindCastling {
		return mv
	}
	if s, p, ok := b.PieceAt(mv.From); ok && s == b.Turn() && p == board.PieceKing {
		return mv
	}
	return board.NewRegularMove(mv.From, mv.To)
}

func (i *Interface) reset() error {
	b, err := board.NewBoard()
	if err != nil {
		return err
	}
	i.board = b
	i.past = nil
	return nil
}

func (i *Interface) colorize(c *color.Color, s string) string {
	if !i.options.Color {
		return s
	}
	return c.Sprint(s)
}

func (i *Interface) debug(a ...any) {
	if i.options.Debug {
		i.options.Logger(a...)
	}
}

func (i *Interface) print(s string) {
	_, _ = fmt.Fprint(i.w, s)
}

func (i *Interface) println(a ...any) {
	_, _ = fmt.Fprintln(i.w, a...)
}
