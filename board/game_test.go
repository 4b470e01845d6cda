package board

import (
	"errors"
	"testing"

	"github.com/daystram/arbiter/position"
)

var (
	immortalGame = []string{
		"e2e4", "e7e5", "f2f4", "e5f4", "f1c4", "d8h4", "e1f1", "b7b5", "c4b5", "g8f6",
		"g1f3", "h4h6", "d2d3", "f6h5", "f3h4", "h6g5", "h4f5", "c7c6", "g2g4", "h5f6",
		"h1g1", "c6b5", "h2h4", "g5g6", "h4h5", "g6g5", "d1f3", "f6g8", "c1f4", "g5f6",
		"b1c3", "f8c5", "c3d5", "f6b2", "f4d6", "c5g1", "e4e5", "b2a1", "f1e2", "b8a6",
		"f5g7", "e8d8", "f3f6", "g8f6", "d6e7",
	}
	kasparovTopalov = []string{
		"e2e4", "d7d6", "d2d4", "g8f6", "b1c3", "g7g6", "c1e3", "f8g7", "d1d2", "c7c6",
		"f2f3", "b7b5", "g1e2", "b8d7", "e3h6", "g7h6", "d2h6", "c8b7", "a2a3", "e7e5",
		"e1c1", "d8e7", "c1b1", "a7a6", "e2c1", "e8c8", "c1b3", "e5d4", "d1d4", "c6c5",
		"d4d1", "d7b6", "g2g3", "c8b8", "b3a5", "b7a8", "f1h3", "d6d5", "h6f4", "b8a7",
		"h1e1", "d5d4", "c3d5", "b6d5", "e4d5", "e7d6", "d1d4", "c5d4", "e1e7", "a7b6",
		"f4d4", "b6a5", "b2b4", "a5a4", "d4c3", "d6d5", "e7a7", "a8b7", "a7b7", "d5c4",
		"c3f6", "a4a3", "f6a6", "a3b4", "c2c3", "b4c3", "a6a1", "c3d2", "a1b2", "d2d1",
		"h3f1", "d8d2", "b7d7", "d2d7", "f1c4", "b5c4", "b2h8", "d7d3", "h8a8", "c4c3",
		"a8a4", "d1e1", "f3f4", "f7f5", "b1c1", "d3d2", "a4a7",
	}
)

func shuffleGame(plies int) []string {
	moves := []string{"e2e4", "e7e5"}
	cycle := []string{"f1e2", "f8e7", "e2f1", "e7f8"}
	for i := 0; len(moves) < plies; i++ {
		moves = append(moves, cycle[i%len(cycle)])
	}
	return moves
}

func TestGames(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		fen        string
		moves      []string
		opts       []BoardOption
		wantWinner Winner
		wantState  State
	}{
		{name: "immortal game", moves: immortalGame, wantWinner: WinnerWhite, wantState: StateCheckmate},
		{name: "kasparov topalov", moves: kasparovTopalov, wantWinner: WinnerNone, wantState: StateRunning},
		{name: "fivefold repetition", moves: shuffleGame(22), wantWinner: WinnerDraw, wantState: StateRepetitionDraw},
		{name: "fourfold repetition", moves: shuffleGame(18), wantWinner: WinnerNone, wantState: StateRunning},
		{name: "one short of fivefold", moves: shuffleGame(21), wantWinner: WinnerNone, wantState: StateRunning},
		{name: "threefold with lowered limit", moves: shuffleGame(14), opts: []BoardOption{WithRepetitionLimit(3)}, wantWinner: WinnerDraw, wantState: StateRepetitionDraw},
		{name: "move limit", moves: []string{"g1f3", "g8f6", "f3g1", "f6g8"}, opts: []BoardOption{WithMoveLimit(4)}, wantWinner: WinnerDraw, wantState: StateMoveLimitDraw},
		{name: "move limit reset by pawn move", moves: []string{"g1f3", "g8f6", "f3g1", "e7e6"}, opts: []BoardOption{WithMoveLimit(4)}, wantWinner: WinnerNone, wantState: StateRunning},
		{name: "fools mate", moves: []string{"f2f3", "e7e5", "g2g4", "d8h4"}, wantWinner: WinnerBlack, wantState: StateCheckmate},
		{name: "checkmate on the move limit", fen: "k7/8/1K6/8/8/8/8/7R w - - 149 90", moves: []string{"h1h8"}, wantWinner: WinnerWhite, wantState: StateCheckmate},
		{name: "stalemate on the move limit", fen: "k7/8/8/8/8/8/1Q6/7K w - - 149 90", moves: []string{"b2b6"}, wantWinner: WinnerDraw, wantState: StateStalemate},
		{name: "move limit reached by quiet move", fen: "k7/8/8/8/8/8/1Q6/7K w - - 149 90", moves: []string{"h1g1"}, wantWinner: WinnerDraw, wantState: StateMoveLimitDraw},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := tt.opts
			if tt.fen != "" {
				opts = append([]BoardOption{WithFEN(tt.fen)}, opts...)
			}
			b, err := NewBoard(opts...)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			playMoves(t, b, tt.moves)

			if b.Winner() != tt.wantWinner {
				t.Errorf("unexpected winner: got=%s want=%s", b.Winner(), tt.wantWinner)
			}
			if b.State() != tt.wantState {
				t.Errorf("unexpected state: got=%s want=%s", b.State(), tt.wantState)
			}
			if tt.wantWinner == WinnerNone {
				return
			}
			if err := b.Apply(NewRegularMove(position.A2, position.A3)); !errors.Is(err, ErrGameEnded) {
				t.Errorf("unexpected error: got=%v want=%v", err, ErrGameEnded)
			}
		})
	}
}

func TestImmortalGameFinalPosition(t *testing.T) {
	t.Parallel()

	b, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	playMoves(t, b, immortalGame)

	if b.HasMoves(SideBlack) {
		t.Error("unexpected black moves")
	}
	if !b.IsKingChecked(SideBlack) {
		t.Error("unexpected check: got=false want=true")
	}
	if b.Turn() != SideBlack {
		t.Errorf("unexpected turn: got=%s want=%s", b.Turn(), SideBlack)
	}
	if b.FullMoveClock() != 23 {
		t.Errorf("unexpected full move clock: got=%d want=%d", b.FullMoveClock(), 23)
	}
}

func TestNewBoardState(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		fen        string
		wantWinner Winner
		wantState  State
	}{
		{name: "running", fen: DefaultStartingPositionFEN, wantWinner: WinnerNone, wantState: StateRunning},
		{name: "stalemate", fen: "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", wantWinner: WinnerDraw, wantState: StateStalemate},
		{name: "checkmate", fen: "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", wantWinner: WinnerBlack, wantState: StateCheckmate},
		{name: "move limit", fen: "4k3/8/8/8/8/8/8/4K2R w - - 150 90", wantWinner: WinnerDraw, wantState: StateMoveLimitDraw},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := newTestBoard(t, tt.fen)
			if b.Winner() != tt.wantWinner {
				t.Errorf("unexpected winner: got=%s want=%s", b.Winner(), tt.wantWinner)
			}
			if b.State() != tt.wantState {
				t.Errorf("unexpected state: got=%s want=%s", b.State(), tt.wantState)
			}
		})
	}
}

func TestNewBoardInvalidLimits(t *testing.T) {
	t.Parallel()

	if _, err := NewBoard(WithMoveLimit(0)); err == nil {
		t.Error("error expected: got=nil")
	}
	if _, err := NewBoard(WithRepetitionLimit(-1)); err == nil {
		t.Error("error expected: got=nil")
	}
}
