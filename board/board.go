package board

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/daystram/arbiter/position"
)

var (
	ErrInvalidFEN = errors.New("invalid fen")

	// ErrNothingToMove is returned when the source square of a move is empty.
	ErrNothingToMove = errors.New("nothing to move")
	// ErrIllegalMove is returned when the piece cannot reach the destination.
	ErrIllegalMove = errors.New("illegal move")
	// ErrPinnedMove is returned when the move would leave the own King in check.
	ErrPinnedMove = errors.New("pinned move")
	// ErrGameEnded is returned for any move once the game has been decided.
	ErrGameEnded = errors.New("game ended")
)

// snapshot is the piece placement of a position, indexed by Side and Piece.
type snapshot [2 + 1][6 + 1]bitmap

type Board struct {
	// grid data
	bitboards snapshot

	// meta
	enPassant     bitmap
	castleRights  CastleRights
	halfMoveClock int
	fullMoveClock int
	turn          Side
	winner        Winner
	state         State

	// positions seen since the last irreversible move
	history []snapshot

	moveLimit       int
	repetitionLimit int
}

type boardConfig struct {
	fen             *string
	moveLimit       int
	repetitionLimit int
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = &fen
	}
}

// WithMoveLimit sets the half move clock value at which the game is drawn.
func WithMoveLimit(plies int) BoardOption {
	return func(cfg *boardConfig) {
		cfg.moveLimit = plies
	}
}

// WithRepetitionLimit sets how many times a position has to recur for a draw.
func WithRepetitionLimit(n int) BoardOption {
	return func(cfg *boardConfig) {
		cfg.repetitionLimit = n
	}
}

// NewBoard returns a board in the standard starting position unless WithFEN is given.
func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		moveLimit:       DefaultMoveLimit,
		repetitionLimit: DefaultRepetitionLimit,
	}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.moveLimit <= 0 || cfg.repetitionLimit <= 0 {
		return nil, fmt.Errorf("invalid limits: move=%d repetition=%d", cfg.moveLimit, cfg.repetitionLimit)
	}

	b := &Board{
		moveLimit:       cfg.moveLimit,
		repetitionLimit: cfg.repetitionLimit,
	}
	if cfg.fen == nil {
		b.bitboards = startingBitboards
		b.castleRights = CastleRightsAll
		b.fullMoveClock = 1
		b.turn = SideWhite
	} else if err := UnmarshalFEN(*cfg.fen, b); err != nil {
		return nil, err
	}
	b.evaluate(b.turn)
	return b, nil
}

// Turn returns the side to move.
func (b *Board) Turn() Side {
	return b.turn
}

// Winner returns WinnerNone while the game is in progress.
func (b *Board) Winner() Winner {
	return b.winner
}

func (b *Board) State() State {
	return b.state
}

// EnPassant returns the square a pawn may capture onto en passant this ply.
func (b *Board) EnPassant() (position.Pos, bool) {
	if b.enPassant == 0 {
		return 0, false
	}
	return b.enPassant.LS1B(), true
}

// CastleRights returns the castling flags still held. They say nothing about
// whether castling is currently possible; see CastlingMoves.
func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

func (b *Board) HalfMoveClock() int {
	return b.halfMoveClock
}

func (b *Board) FullMoveClock() int {
	return b.fullMoveClock
}

// Bitmap returns the occupancy of the given side and piece, bit i being square i.
func (b *Board) Bitmap(s Side, p Piece) uint64 {
	return uint64(b.getBitmap(s, p))
}

// PieceAt returns the side and piece standing on pos.
func (b *Board) PieceAt(pos position.Pos) (Side, Piece, bool) {
	if !pos.IsValid() {
		return SideUnknown, PieceUnknown, false
	}
	for _, s := range Sides {
		if p, ok := b.pieceOf(s, pos); ok {
			return s, p, true
		}
	}
	return SideUnknown, PieceUnknown, false
}

// Squares yields the squares holding the given side and piece.
func (b *Board) Squares(s Side, p Piece) iter.Seq[position.Pos] {
	return b.getBitmap(s, p).squares()
}

// Clone returns an independent copy of the board, history included.
func (b *Board) Clone() *Board {
	bb := *b
	bb.history = slices.Clone(b.history)
	return &bb
}

func (b *Board) pieceOf(s Side, pos position.Pos) (Piece, bool) {
	for _, p := range Pieces {
		if b.bitboards[s][p].Has(pos) {
			return p, true
		}
	}
	return PieceUnknown, false
}

func (b *Board) getBitmap(s Side, p Piece) bitmap {
	if s > SideBlack || p > PieceKing {
		return 0
	}
	return b.bitboards[s][p]
}

func (b *Board) sideOccupied(s Side) bitmap {
	var bm bitmap
	for _, p := range Pieces {
		bm |= b.bitboards[s][p]
	}
	return bm
}

func (b *Board) occupied() bitmap {
	return b.sideOccupied(SideWhite) | b.sideOccupied(SideBlack)
}

func (b *Board) set(s Side, p Piece, pos position.Pos, value bool) {
	if value {
		b.bitboards[s][p].Set(pos)
	} else {
		b.bitboards[s][p].Unset(pos)
	}
}

func (b *Board) move(s Side, p Piece, from, to position.Pos) {
	b.set(s, p, from, false)
	b.set(s, p, to, true)
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("cast: %04b\nhalf: %4d\nfull: %4d\nhist: %4d\nstat: %s", b.castleRights, b.halfMoveClock, b.fullMoveClock, len(b.history), b.state)
}
