package board

import (
	"fmt"

	"github.com/daystram/arbiter/position"
)

// Apply validates mv for the side to move and plays it. The returned error wraps one of
// ErrGameEnded, ErrNothingToMove, ErrIllegalMove or ErrPinnedMove; the board is left
// untouched when an error is returned.
func (b *Board) Apply(mv Move) error {
	if b.winner != WinnerNone {
		return fmt.Errorf("%w: %s", ErrGameEnded, b.state)
	}
	if !mv.From.IsValid() || !mv.To.IsValid() {
		return fmt.Errorf("%w: square out of range", ErrIllegalMove)
	}

	s := b.turn
	var err error
	switch mv.Kind {
	case MoveKindRegular:
		err = b.applyRegular(s, mv.From, mv.To)
	case MoveKindPromotion:
		err = b.applyPromotion(s, mv.From, mv.To, mv.Promote)
	case MoveKindCastling:
		err = b.applyCastling(s, mv.From, mv.To)
	default:
		err = fmt.Errorf("%w: unknown move kind", ErrIllegalMove)
	}
	if err != nil {
		return err
	}

	if s == SideBlack {
		b.fullMoveClock++
	}
	b.turn = s.Opposite()
	b.evaluate(b.turn)
	return nil
}

// resolve finds the piece of s on from, rejecting empty squares and opponent pieces.
func (b *Board) resolve(s Side, from position.Pos) (Piece, error) {
	owner, p, ok := b.PieceAt(from)
	if !ok {
		return PieceUnknown, fmt.Errorf("%w: %s is empty", ErrNothingToMove, from)
	}
	if owner != s {
		return PieceUnknown, fmt.Errorf("%w: %s holds a %s piece", ErrIllegalMove, from, owner)
	}
	return p, nil
}

func (b *Board) applyRegular(s Side, from, to position.Pos) error {
	p, err := b.resolve(s, from)
	if err != nil {
		return err
	}
	if !b.isPseudoLegal(s, p, from, to) {
		return fmt.Errorf("%w: %s cannot reach %s from %s", ErrIllegalMove, p, to, from)
	}
	if p == PiecePawn && to.Y() == s.PromotionRank() {
		return fmt.Errorf("%w: pawn reaching %s must promote", ErrIllegalMove, to)
	}
	if b.isPinned(s, p, from, to) {
		return fmt.Errorf("%w: %s%s", ErrPinnedMove, from, to)
	}

	captured, isCapture := b.pieceOf(s.Opposite(), to)
	if isCapture || p == PiecePawn {
		b.resetDrawConditions()
	} else {
		b.updateDrawConditions()
	}
	doubleStep := p == PiecePawn && abs(to-from) == 2*Width

	b.relocate(s, p, from, to)
	b.updateCastleRights(s, p, from, to, isCapture && captured == PieceRook)

	b.enPassant = 0
	if doubleStep {
		b.enPassant = maskCell[(from+to)/2]
	}
	return nil
}

func (b *Board) applyPromotion(s Side, from, to position.Pos, promote Piece) error {
	p, err := b.resolve(s, from)
	if err != nil {
		return err
	}
	if p != PiecePawn {
		return fmt.Errorf("%w: only pawns promote", ErrIllegalMove)
	}
	if to.Y() != s.PromotionRank() {
		return fmt.Errorf("%w: %s is not on the promotion rank", ErrIllegalMove, to)
	}
	if !promote.IsPromotable() {
		return fmt.Errorf("%w: cannot promote to %q", ErrIllegalMove, promote)
	}
	if !b.isPseudoLegal(s, p, from, to) {
		return fmt.Errorf("%w: pawn cannot reach %s from %s", ErrIllegalMove, to, from)
	}
	if b.isPinned(s, p, from, to) {
		return fmt.Errorf("%w: %s%s", ErrPinnedMove, from, to)
	}

	captured, isCapture := b.pieceOf(s.Opposite(), to)
	b.resetDrawConditions()
	b.relocate(s, p, from, to)
	b.set(s, PiecePawn, to, false)
	b.set(s, promote, to, true)
	b.updateCastleRights(s, p, from, to, isCapture && captured == PieceRook)
	b.enPassant = 0
	return nil
}

func (b *Board) applyCastling(s Side, from, to position.Pos) error {
	d := castleDirectionOf(from, to)
	if d == CastleDirectionUnknown || d.Side() != s {
		return fmt.Errorf("%w: %s%s is not a castling move for %s", ErrIllegalMove, from, to, s)
	}
	if _, err := b.resolve(s, from); err != nil {
		return err
	}
	if !b.canCastle(s, d) {
		return fmt.Errorf("%w: %s not allowed", ErrIllegalMove, d)
	}

	b.updateDrawConditions()
	king, rook := posCastling[d][PieceKing], posCastling[d][PieceRook]
	b.move(s, PieceKing, king[0], king[1])
	b.move(s, PieceRook, rook[0], rook[1])
	b.castleRights.Remove(s.CastleRights())
	b.enPassant = 0
	return nil
}

// updateCastleRights drops the flags invalidated by a move of s from from to to.
func (b *Board) updateCastleRights(s Side, p Piece, from, to position.Pos, capturedRook bool) {
	switch p {
	case PieceKing:
		b.castleRights.Remove(s.CastleRights())
	case PieceRook:
		for _, d := range []CastleDirection{s.KingsideCastle(), s.QueensideCastle()} {
			if posCastling[d][PieceRook][0] == from {
				b.castleRights.Remove(d.Rights())
			}
		}
	}
	if !capturedRook {
		return
	}
	opposite := s.Opposite()
	for _, d := range []CastleDirection{opposite.KingsideCastle(), opposite.QueensideCastle()} {
		if posCastling[d][PieceRook][0] == to {
			b.castleRights.Remove(d.Rights())
		}
	}
}

// resetDrawConditions is called on irreversible moves.
func (b *Board) resetDrawConditions() {
	b.halfMoveClock = 0
	b.history = b.history[:0]
}

// updateDrawConditions records the position before a reversible move.
func (b *Board) updateDrawConditions() {
	b.history = append(b.history, b.bitboards)
	b.halfMoveClock++
}

// repetitions counts the recorded positions equal to the current one.
func (b *Board) repetitions() int {
	var n int
	for _, snap := range b.history {
		if snap == b.bitboards {
			n++
		}
	}
	return n
}

// evaluate decides the game state with s about to move.
func (b *Board) evaluate(s Side) {
	switch {
	case !b.HasMoves(s):
		if b.IsKingChecked(s) {
			b.state, b.winner = StateCheckmate, winnerOf(s.Opposite())
		} else {
			b.state, b.winner = StateStalemate, WinnerDraw
		}
	case b.repetitions() >= b.repetitionLimit:
		b.state, b.winner = StateRepetitionDraw, WinnerDraw
	case b.halfMoveClock >= b.moveLimit:
		b.state, b.winner = StateMoveLimitDraw, WinnerDraw
	default:
		b.state, b.winner = StateRunning, WinnerNone
	}
}
