package board

type State uint8

const (
	// StateRunning is when game is on progress.
	StateRunning State = iota

	// StateCheckmate is when the side to move is in check and has no legal move.
	StateCheckmate

	// StateStalemate is when the side to move has no legal move and its King is not in check.
	StateStalemate

	// StateRepetitionDraw is when the same position has occurred the repetition limit times.
	StateRepetitionDraw

	// StateMoveLimitDraw is when the half move clock has reached the move limit without any captures or pawn moves.
	StateMoveLimitDraw
)

func (s State) IsRunning() bool {
	return s == StateRunning
}

func (s State) IsDraw() bool {
	switch s {
	case StateStalemate, StateRepetitionDraw, StateMoveLimitDraw:
		return true
	default:
		return false
	}
}

func (s State) String() string {
	switch s {
	case StateRunning:
		return "StateRunning"
	case StateCheckmate:
		return "StateCheckmate"
	case StateStalemate:
		return "StateStalemate"
	case StateRepetitionDraw:
		return "StateRepetitionDraw"
	case StateMoveLimitDraw:
		return "StateMoveLimitDraw"
	default:
		return ""
	}
}

type Winner uint8

const (
	WinnerNone Winner = iota
	WinnerWhite
	WinnerBlack
	WinnerDraw
)

func winnerOf(s Side) Winner {
	switch s {
	case SideWhite:
		return WinnerWhite
	case SideBlack:
		return WinnerBlack
	default:
		return WinnerNone
	}
}

func (w Winner) String() string {
	switch w {
	case WinnerWhite:
		return "White"
	case WinnerBlack:
		return "Black"
	case WinnerDraw:
		return "Draw"
	default:
		return ""
	}
}
