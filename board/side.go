package board

import "github.com/daystram/arbiter/position"

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

// Sides lists both playing sides, White first.
var Sides = [2]Side{SideWhite, SideBlack}

// NewSide converts an integer into a Side, reporting false for anything but White or Black.
func NewSide(i int) (Side, bool) {
	if i < int(SideWhite) || i > int(SideBlack) {
		return SideUnknown, false
	}
	return Side(i), true
}

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// PromotionRank is the rank a pawn of this side promotes on.
func (s Side) PromotionRank() position.Pos {
	if s == SideWhite {
		return position.Rank8
	}
	return position.Rank1
}

func (s Side) KingsideCastle() CastleDirection {
	switch s {
	case SideWhite:
		return CastleDirectionWhiteKingside
	case SideBlack:
		return CastleDirectionBlackKingside
	default:
		return CastleDirectionUnknown
	}
}

func (s Side) QueensideCastle() CastleDirection {
	switch s {
	case SideWhite:
		return CastleDirectionWhiteQueenside
	case SideBlack:
		return CastleDirectionBlackQueenside
	default:
		return CastleDirectionUnknown
	}
}

// CastleRights returns both castling flags of the side.
func (s Side) CastleRights() CastleRights {
	return s.KingsideCastle().Rights() | s.QueensideCastle().Rights()
}
