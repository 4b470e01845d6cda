package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/arbiter/position"
)

// UnmarshalFEN loads the position described by fen into b, replacing its pieces and meta state.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	var bitboards snapshot
	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for y := position.Pos(0); y < Height; y++ {
		row := rows[Height-y-1]
		x := position.Pos(0)
		for _, cell := range row {
			if cell >= '1' && cell <= '8' {
				x += position.Pos(cell - '0')
				if x > Width {
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				continue
			}
			s, p, ok := NewPieceFromSymbol(cell)
			if !ok {
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			if x >= Width {
				return fmt.Errorf("%w: too many cells", ErrInvalidFEN)
			}
			bitboards[s][p].Set(y*Width + x)
			x++
		}
		if x != Width {
			return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
		}
	}
	if bitboards[SideWhite][PieceKing].BitCount() != 1 || bitboards[SideBlack][PieceKing].BitCount() != 1 {
		return fmt.Errorf("%w: each side needs exactly one king", ErrInvalidFEN)
	}

	var turn Side
	switch segments[1] {
	case "w":
		turn = SideWhite
	case "b":
		turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	castleRights := CastleRightsNone
	if segments[2] != "-" {
		if len(segments[2]) == 0 || len(segments[2]) > 4 {
			return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
		for _, e := range segments[2] {
			var r CastleRights
			switch e {
			case 'K':
				r = CastleRightsWhiteKingside
			case 'Q':
				r = CastleRightsWhiteQueenside
			case 'k':
				r = CastleRightsBlackKingside
			case 'q':
				r = CastleRightsBlackQueenside
			default:
				return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
			}
			if castleRights.Contains(r) {
				return fmt.Errorf("%w: repeated castling right", ErrInvalidFEN)
			}
			castleRights |= r
		}
	}

	var enPassant bitmap
	if segments[3] != "-" {
		pos, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid enpassant position: %v", ErrInvalidFEN, err)
		}
		if y := pos.Y(); y != position.Rank3 && y != position.Rank6 {
			return fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN)
		}
		enPassant = maskCell[pos]
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}

	b.bitboards = bitboards
	b.turn = turn
	b.castleRights = castleRights
	b.enPassant = enPassant
	b.halfMoveClock = int(halfMoveClock)
	b.fullMoveClock = int(fullMoveClock)
	b.history = nil
	return nil
}

func MarshalFEN(b *Board) (string, error) {
	if b == nil {
		return "", fmt.Errorf("invalid board")
	}
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		var skip int
		for x := position.Pos(0); x < Width; x++ {
			s, p, ok := b.PieceAt(y*Width + x)
			if !ok {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteString(strconv.Itoa(skip))
				skip = 0
			}
			_, _ = builder.WriteString(p.SymbolFEN(s))
		}
		if skip != 0 {
			_, _ = builder.WriteString(strconv.Itoa(skip))
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	_, _ = builder.WriteString(b.castleRights.String())
	_, _ = builder.WriteRune(' ')

	if pos, ok := b.EnPassant(); ok {
		_, _ = builder.WriteString(pos.Notation())
	} else {
		_, _ = builder.WriteRune('-')
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))

	return builder.String(), nil
}

// FEN returns the position in Forsyth-Edwards Notation.
func (b *Board) FEN() string {
	fen, _ := MarshalFEN(b)
	return fen
}
