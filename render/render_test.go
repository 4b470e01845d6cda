package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/daystram/arbiter/board"
)

func TestDump(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		want []string
	}{
		{
			name: "starting position",
			fen:  board.DefaultStartingPositionFEN,
			want: []string{
				"r n b q k b n r ",
				"p p p p p p p p ",
				". . . . . . . . ",
				". . . . . . . . ",
				". . . . . . . . ",
				". . . . . . . . ",
				"P P P P P P P P ",
				"R N B Q K B N R ",
			},
		},
		{
			name: "endgame",
			fen:  "8/5k2/4N3/8/8/3K4/8/8 w - - 0 71",
			want: []string{
				". . . . . . . . ",
				". . . . . k . . ",
				". . . . N . . . ",
				". . . . . . . . ",
				". . . . . . . . ",
				". . . K . . . . ",
				". . . . . . . . ",
				". . . . . . . . ",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := board.NewBoard(board.WithFEN(tt.fen))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got, want := Dump(b), strings.Join(tt.want, "\n"); got != want {
				t.Errorf("unexpected dump:\ngot=\n%s\nwant=\n%s", got, want)
			}
		})
	}
}

func TestDraw(t *testing.T) {
	t.Parallel()

	b, err := board.NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	out := Draw(b)
	for _, want := range []string{"♔", "♚", "♙", "♟", " a ", " h ", " 1 ", " 8 "} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in drawing:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 8 {
		t.Errorf("unexpected line count: got=%d want=%d", got, 8)
	}
}

func TestSVG(t *testing.T) {
	t.Parallel()

	b, err := board.NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	var buf bytes.Buffer
	if err := SVG(&buf, b); err != nil {
		t.Fatal("unexpected error:", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Errorf("missing svg element:\n%s", out)
	}
	if got := strings.Count(out, "<rect"); got != 64 {
		t.Errorf("unexpected square count: got=%d want=%d", got, 64)
	}
	if got := strings.Count(out, "♟"); got != 8 {
		t.Errorf("unexpected black pawn count: got=%d want=%d", got, 8)
	}
	if !strings.Contains(out, "White to move") {
		t.Errorf("missing title:\n%s", out)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestSVGWriteError(t *testing.T) {
	t.Parallel()

	b, err := board.NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if err := SVG(failingWriter{}, b); err == nil {
		t.Error("error expected: got=nil")
	}
}
