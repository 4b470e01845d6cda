package board

import "github.com/daystram/arbiter/position"

type MoveKind uint8

const (
	MoveKindUnknown MoveKind = iota
	// MoveKindRegular is any non-promoting, non-castling move, captures included.
	MoveKindRegular
	// MoveKindPromotion is a pawn reaching the last rank and turning into Promote.
	MoveKindPromotion
	// MoveKindCastling is the king stepping two files towards a rook.
	MoveKindCastling
)

func (k MoveKind) String() string {
	switch k {
	case MoveKindRegular:
		return "Regular"
	case MoveKindPromotion:
		return "Promotion"
	case MoveKindCastling:
		return "Castling"
	default:
		return ""
	}
}

// Move is a tagged move value. Promote is only meaningful for MoveKindPromotion.
type Move struct {
	Kind     MoveKind
	From, To position.Pos
	Promote  Piece
}

func NewRegularMove(from, to position.Pos) Move {
	return Move{Kind: MoveKindRegular, From: from, To: to}
}

func NewPromotionMove(from, to position.Pos, promote Piece) Move {
	return Move{Kind: MoveKindPromotion, From: from, To: to, Promote: promote}
}

func NewCastlingMove(from, to position.Pos) Move {
	return Move{Kind: MoveKindCastling, From: from, To: to}
}

func (m Move) String() string {
	return m.UCI()
}

// UCI formats the move in long algebraic notation, e.g. e2e4, e7e8q, e1g1.
func (m Move) UCI() string {
	nt := m.From.Notation() + m.To.Notation()
	if m.Kind == MoveKindPromotion {
		nt += m.Promote.SymbolAlgebra(SideBlack)
	}
	return nt
}
