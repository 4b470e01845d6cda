package board

import (
	"strings"

	"github.com/daystram/arbiter/position"
)

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteKingside
	CastleDirectionWhiteQueenside
	CastleDirectionBlackKingside
	CastleDirectionBlackQueenside
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteKingside:
		return "White 0-0"
	case CastleDirectionWhiteQueenside:
		return "White 0-0-0"
	case CastleDirectionBlackKingside:
		return "Black 0-0"
	case CastleDirectionBlackQueenside:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) Side() Side {
	switch d {
	case CastleDirectionWhiteKingside, CastleDirectionWhiteQueenside:
		return SideWhite
	case CastleDirectionBlackKingside, CastleDirectionBlackQueenside:
		return SideBlack
	default:
		return SideUnknown
	}
}

func (d CastleDirection) IsKingside() bool {
	return d == CastleDirectionWhiteKingside || d == CastleDirectionBlackKingside
}

func (d CastleDirection) Rights() CastleRights {
	return maskCastleRights[d]
}

// Move returns the king move that performs this castling.
func (d CastleDirection) Move() Move {
	hops := posCastling[d][PieceKing]
	return NewCastlingMove(hops[0], hops[1])
}

// castleDirectionOf maps a king move onto the castling it performs, if any.
func castleDirectionOf(from, to position.Pos) CastleDirection {
	for _, d := range []CastleDirection{
		CastleDirectionWhiteKingside,
		CastleDirectionWhiteQueenside,
		CastleDirectionBlackKingside,
		CastleDirectionBlackQueenside,
	} {
		if hops := posCastling[d][PieceKing]; hops[0] == from && hops[1] == to {
			return d
		}
	}
	return CastleDirectionUnknown
}

// CastleRights is a bit-set of the four castling flags. Flags are only ever removed during a game.
type CastleRights uint8

const (
	CastleRightsNone           CastleRights = 0
	CastleRightsWhiteKingside  CastleRights = 0b1000
	CastleRightsWhiteQueenside CastleRights = 0b0100
	CastleRightsBlackKingside  CastleRights = 0b0010
	CastleRightsBlackQueenside CastleRights = 0b0001
	CastleRightsAll                         = CastleRightsWhiteKingside | CastleRightsWhiteQueenside |
		CastleRightsBlackKingside | CastleRightsBlackQueenside
)

// Contains reports whether every flag of r is held.
func (c CastleRights) Contains(r CastleRights) bool {
	return c&r == r
}

func (c *CastleRights) Remove(r CastleRights) {
	*c &^= r
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return d != CastleDirectionUnknown && c.Contains(maskCastleRights[d])
}

// String formats the rights the way FEN does.
func (c CastleRights) String() string {
	if c&CastleRightsAll == 0 {
		return "-"
	}
	builder := strings.Builder{}
	if c.Contains(CastleRightsWhiteKingside) {
		_, _ = builder.WriteRune('K')
	}
	if c.Contains(CastleRightsWhiteQueenside) {
		_, _ = builder.WriteRune('Q')
	}
	if c.Contains(CastleRightsBlackKingside) {
		_, _ = builder.WriteRune('k')
	}
	if c.Contains(CastleRightsBlackQueenside) {
		_, _ = builder.WriteRune('q')
	}
	return builder.String()
}
