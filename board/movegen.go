package board

import (
	"iter"

	"github.com/daystram/arbiter/position"
)

// GenerateMoves yields every legal move of the side.
//
// Like every sequence returned by the board, it reads the board lazily: mutating the
// board while ranging over it yields undefined results.
func (b *Board) GenerateMoves(s Side) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for _, p := range Pieces {
			for mv := range b.GenerateMovesForPiece(s, p) {
				if !yield(mv) {
					return
				}
			}
		}
	}
}

// GenerateMovesForPiece yields the legal moves of every piece of the given type.
func (b *Board) GenerateMovesForPiece(s Side, p Piece) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for from := range b.Squares(s, p) {
			for mv := range b.GenerateMovesFromSquare(s, p, from) {
				if !yield(mv) {
					return
				}
			}
		}
	}
}

// GenerateMovesFromSquare yields the legal moves of the piece standing on from.
// Nothing is yielded if from does not hold that side and piece.
func (b *Board) GenerateMovesFromSquare(s Side, p Piece, from position.Pos) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		if !from.IsValid() || !b.getBitmap(s, p).Has(from) {
			return
		}
		for to := range b.pseudoMoves(s, p, from).squares() {
			if b.isPinned(s, p, from, to) {
				continue
			}
			if p == PiecePawn && to.Y() == s.PromotionRank() {
				for _, prom := range PawnPromoteCandidates {
					if !yield(NewPromotionMove(from, to, prom)) {
						return
					}
				}
				continue
			}
			if !yield(NewRegularMove(from, to)) {
				return
			}
		}
		if p != PieceKing {
			return
		}
		for mv := range b.CastlingMoves(s) {
			if mv.From == from && !yield(mv) {
				return
			}
		}
	}
}

// CastlingMoves yields the castling moves currently available to the side.
// Only the King's path is checked for attacks, the Rook may stand attacked.
func (b *Board) CastlingMoves(s Side) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for _, d := range []CastleDirection{s.KingsideCastle(), s.QueensideCastle()} {
			if b.canCastle(s, d) && !yield(d.Move()) {
				return
			}
		}
	}
}

// HasMoves reports whether the side has at least one legal move.
func (b *Board) HasMoves(s Side) bool {
	for range b.GenerateMoves(s) {
		return true
	}
	return false
}

// IsSquareAttacked reports whether the opponent of s attacks pos.
func (b *Board) IsSquareAttacked(s Side, pos position.Pos) bool {
	opposite := s.Opposite()
	cell := maskCell[pos]
	occupied := b.occupied()

	// attacks are generated from the target square as if a piece of s stood there
	if pawnAttacks(cell, s)&b.getBitmap(opposite, PiecePawn) != 0 {
		return true
	}
	if knightAttacks(cell)&b.getBitmap(opposite, PieceKnight) != 0 {
		return true
	}
	if kingAttacks(cell)&b.getBitmap(opposite, PieceKing) != 0 {
		return true
	}
	queens := b.getBitmap(opposite, PieceQueen)
	if bishopAttacks(pos, occupied)&(b.getBitmap(opposite, PieceBishop)|queens) != 0 {
		return true
	}
	return rookAttacks(pos, occupied)&(b.getBitmap(opposite, PieceRook)|queens) != 0
}

// IsKingChecked reports whether the King of the side is attacked.
func (b *Board) IsKingChecked(s Side) bool {
	king := b.getBitmap(s, PieceKing)
	if king == 0 {
		return false
	}
	return b.IsSquareAttacked(s, king.LS1B())
}

// IsCapture reports whether applying mv for the side to move removes an opponent piece.
func (b *Board) IsCapture(mv Move) bool {
	if mv.Kind == MoveKindCastling || !mv.To.IsValid() {
		return false
	}
	return b.sideOccupied(b.turn.Opposite()).Has(mv.To) || b.IsEnPassant(mv)
}

// IsEnPassant reports whether mv is an en passant capture by the side to move.
func (b *Board) IsEnPassant(mv Move) bool {
	if mv.Kind != MoveKindRegular || !mv.From.IsValid() || !mv.To.IsValid() {
		return false
	}
	return b.getBitmap(b.turn, PiecePawn).Has(mv.From) && b.isEnPassantCapture(b.turn, mv.From, mv.To)
}

// pseudoMoves ignores King safety.
func (b *Board) pseudoMoves(s Side, p Piece, from position.Pos) bitmap {
	own := b.sideOccupied(s)
	enemy := b.sideOccupied(s.Opposite())
	occupied := own | enemy
	cell := maskCell[from]

	var moves bitmap
	switch p {
	case PiecePawn:
		moves = pawnAttacks(cell, s)&(enemy|b.enPassantFor(s)) | pawnAdvances(from, s, occupied)
	case PieceRook:
		moves = rookAttacks(from, occupied)
	case PieceKnight:
		moves = knightAttacks(cell)
	case PieceBishop:
		moves = bishopAttacks(from, occupied)
	case PieceQueen:
		moves = queenAttacks(from, occupied)
	case PieceKing:
		moves = kingAttacks(cell)
	}
	return moves &^ own
}

func (b *Board) isPseudoLegal(s Side, p Piece, from, to position.Pos) bool {
	return b.pseudoMoves(s, p, from).Has(to)
}

// isPinned plays the move on a throwaway copy and reports whether the own King ends up attacked.
func (b *Board) isPinned(s Side, p Piece, from, to position.Pos) bool {
	bb := *b
	bb.relocate(s, p, from, to)
	return bb.IsKingChecked(s)
}

// relocate moves a piece and removes whatever it captures, en passant included,
// without touching any of the meta state.
func (b *Board) relocate(s Side, p Piece, from, to position.Pos) {
	opposite := s.Opposite()
	if p == PiecePawn && b.isEnPassantCapture(s, from, to) {
		b.set(opposite, PiecePawn, enPassantVictim(s, to), false)
	}
	if captured, ok := b.pieceOf(opposite, to); ok {
		b.set(opposite, captured, to, false)
	}
	b.move(s, p, from, to)
}

// enPassantFor returns the en passant target usable by the pawns of s, which is
// only ever the one left behind by the opponent.
func (b *Board) enPassantFor(s Side) bitmap {
	if s == SideWhite {
		return b.enPassant & maskRow[position.Rank6]
	}
	return b.enPassant & maskRow[position.Rank3]
}

func (b *Board) isEnPassantCapture(s Side, from, to position.Pos) bool {
	return abs(from.X()-to.X()) == 1 && b.enPassantFor(s).Has(to)
}

// enPassantVictim is the square of the pawn captured by an en passant capture onto to.
func enPassantVictim(s Side, to position.Pos) position.Pos {
	if s == SideWhite {
		return to - Width
	}
	return to + Width
}

func (b *Board) canCastle(s Side, d CastleDirection) bool {
	if !b.castleRights.IsAllowed(d) {
		return false
	}
	if !b.getBitmap(s, PieceKing).Has(posCastling[d][PieceKing][0]) ||
		!b.getBitmap(s, PieceRook).Has(posCastling[d][PieceRook][0]) {
		return false
	}
	if maskCastlingEmpty[d]&b.occupied() != 0 {
		return false
	}
	for _, pos := range posCastlingPath[d] {
		if b.IsSquareAttacked(s, pos) {
			return false
		}
	}
	return true
}
