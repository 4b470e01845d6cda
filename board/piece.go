package board

type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceRook
	PieceKnight
	PieceBishop
	PieceQueen
	PieceKing
)

// Pieces lists every piece type in generation order.
var Pieces = [6]Piece{PiecePawn, PieceRook, PieceKnight, PieceBishop, PieceQueen, PieceKing}

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = [4]Piece{PieceRook, PieceKnight, PieceBishop, PieceQueen}

// NewPiece converts an integer into a Piece, reporting false when it names no piece.
func NewPiece(i int) (Piece, bool) {
	if i < int(PiecePawn) || i > int(PieceKing) {
		return PieceUnknown, false
	}
	return Piece(i), true
}

// NewPieceFromSymbol parses a single FEN letter, uppercase for White.
func NewPieceFromSymbol(r rune) (Side, Piece, bool) {
	s := SideWhite
	if r >= 'a' && r <= 'z' {
		s = SideBlack
		r &^= 0x20
	}
	switch r {
	case 'P':
		return s, PiecePawn, true
	case 'R':
		return s, PieceRook, true
	case 'N':
		return s, PieceKnight, true
	case 'B':
		return s, PieceBishop, true
	case 'Q':
		return s, PieceQueen, true
	case 'K':
		return s, PieceKing, true
	default:
		return SideUnknown, PieceUnknown, false
	}
}

func (p Piece) IsPromotable() bool {
	switch p {
	case PieceRook, PieceKnight, PieceBishop, PieceQueen:
		return true
	default:
		return false
	}
}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceRook:
		return "Rook"
	case PieceKnight:
		return "Knight"
	case PieceBishop:
		return "Bishop"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

func (p Piece) SymbolAlgebra(s Side) string {
	if p == PiecePawn {
		return ""
	}
	return p.SymbolFEN(s)
}

func (p Piece) SymbolFEN(s Side) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceRook:
		sym = 'R'
	case PieceKnight:
		sym = 'N'
	case PieceBishop:
		sym = 'B'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode(s Side, invert bool) string {
	if invert {
		s = s.Opposite()
	}
	switch s {
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceRook:
			return "♖"
		case PieceKnight:
			return "♘"
		case PieceBishop:
			return "♗"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceRook:
			return "♜"
		case PieceKnight:
			return "♞"
		case PieceBishop:
			return "♝"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}
