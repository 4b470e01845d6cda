// Package notation parses moves written in long algebraic notation, e.g. e2e4 or a7a8q.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daystram/arbiter/board"
	"github.com/daystram/arbiter/position"
)

var (
	ErrNotEnoughCharacters = errors.New("not enough characters")
	ErrBadSourceFile       = errors.New("bad source file")
	ErrBadSourceRank       = errors.New("bad source rank")
	ErrBadDestinationFile  = errors.New("bad destination file")
	ErrBadDestinationRank  = errors.New("bad destination rank")
	ErrBadPromotionPiece   = errors.New("bad promotion piece")
	ErrTrailingCharacters  = errors.New("trailing characters")
)

// castling king moves; any of these is read as a castling move regardless of the piece on the board
var castlingMoves = map[[2]position.Pos]bool{
	{position.E1, position.G1}: true,
	{position.E1, position.C1}: true,
	{position.E8, position.G8}: true,
	{position.E8, position.C8}: true,
}

// ParseLAN parses a single move. Surrounding whitespace is ignored.
func ParseLAN(s string) (board.Move, error) {
	s = strings.TrimSpace(s)
	if len(s) < 4 {
		return board.Move{}, fmt.Errorf("%w: %q", ErrNotEnoughCharacters, s)
	}

	fromX, err := position.FileFromNotation(s[0])
	if err != nil {
		return board.Move{}, fmt.Errorf("%w: %q", ErrBadSourceFile, s[0])
	}
	fromY, err := position.RankFromNotation(s[1])
	if err != nil {
		return board.Move{}, fmt.Errorf("%w: %q", ErrBadSourceRank, s[1])
	}
	toX, err := position.FileFromNotation(s[2])
	if err != nil {
		return board.Move{}, fmt.Errorf("%w: %q", ErrBadDestinationFile, s[2])
	}
	toY, err := position.RankFromNotation(s[3])
	if err != nil {
		return board.Move{}, fmt.Errorf("%w: %q", ErrBadDestinationRank, s[3])
	}
	from, _ := position.NewPosFromXY(fromX, fromY)
	to, _ := position.NewPosFromXY(toX, toY)

	switch len(s) {
	case 4:
	case 5:
		p, ok := promotionPiece(s[4])
		if !ok {
			return board.Move{}, fmt.Errorf("%w: %q", ErrBadPromotionPiece, s[4])
		}
		return board.NewPromotionMove(from, to, p), nil
	default:
		return board.Move{}, fmt.Errorf("%w: %q", ErrTrailingCharacters, s[5:])
	}

	if castlingMoves[[2]position.Pos{from, to}] {
		return board.NewCastlingMove(from, to), nil
	}
	return board.NewRegularMove(from, to), nil
}

// ParseLANs parses a whitespace separated list of moves, stopping at the first bad one.
func ParseLANs(s string) ([]board.Move, error) {
	fields := strings.Fields(s)
	moves := make([]board.Move, 0, len(fields))
	for i, f := range fields {
		mv, err := ParseLAN(f)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, mv)
	}
	return moves, nil
}

func promotionPiece(c byte) (board.Piece, bool) {
	switch c {
	case 'r':
		return board.PieceRook, true
	case 'n':
		return board.PieceKnight, true
	case 'b':
		return board.PieceBishop, true
	case 'q':
		return board.PieceQueen, true
	default:
		return board.PieceUnknown, false
	}
}
