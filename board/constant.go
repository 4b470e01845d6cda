package board

import (
	"github.com/daystram/arbiter/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// DefaultMoveLimit is the 75-move rule expressed in plies.
	DefaultMoveLimit = 150
	// DefaultRepetitionLimit is the fivefold repetition rule.
	DefaultRepetitionLimit = 5
)

var (
	maskCol = [Width]bitmap{
		position.FileA: 0x_01_01_01_01_01_01_01_01,
		position.FileB: 0x_02_02_02_02_02_02_02_02,
		position.FileC: 0x_04_04_04_04_04_04_04_04,
		position.FileD: 0x_08_08_08_08_08_08_08_08,
		position.FileE: 0x_10_10_10_10_10_10_10_10,
		position.FileF: 0x_20_20_20_20_20_20_20_20,
		position.FileG: 0x_40_40_40_40_40_40_40_40,
		position.FileH: 0x_80_80_80_80_80_80_80_80,
	}
	maskRow = [Height]bitmap{
		position.Rank1: 0x_00_00_00_00_00_00_00_FF,
		position.Rank2: 0x_00_00_00_00_00_00_FF_00,
		position.Rank3: 0x_00_00_00_00_00_FF_00_00,
		position.Rank4: 0x_00_00_00_00_FF_00_00_00,
		position.Rank5: 0x_00_00_00_FF_00_00_00_00,
		position.Rank6: 0x_00_00_FF_00_00_00_00_00,
		position.Rank7: 0x_00_FF_00_00_00_00_00_00,
		position.Rank8: 0x_FF_00_00_00_00_00_00_00,
	}
	maskCell [TotalCells]bitmap

	// squares that must be empty between king and rook
	maskCastlingEmpty = [4 + 1]bitmap{
		CastleDirectionWhiteKingside:  maskRow[position.Rank1] & (maskCol[position.FileF] | maskCol[position.FileG]),
		CastleDirectionWhiteQueenside: maskRow[position.Rank1] & (maskCol[position.FileB] | maskCol[position.FileC] | maskCol[position.FileD]),
		CastleDirectionBlackKingside:  maskRow[position.Rank8] & (maskCol[position.FileF] | maskCol[position.FileG]),
		CastleDirectionBlackQueenside: maskRow[position.Rank8] & (maskCol[position.FileB] | maskCol[position.FileC] | maskCol[position.FileD]),
	}
	// squares the king stands on, crosses and lands on
	posCastlingPath = [4 + 1][3]position.Pos{
		CastleDirectionWhiteKingside:  {position.E1, position.F1, position.G1},
		CastleDirectionWhiteQueenside: {position.E1, position.D1, position.C1},
		CastleDirectionBlackKingside:  {position.E8, position.F8, position.G8},
		CastleDirectionBlackQueenside: {position.E8, position.D8, position.C8},
	}
	posCastling = [4 + 1][6 + 1][2]position.Pos{
		CastleDirectionWhiteKingside: {
			PieceKing: {position.E1, position.G1},
			PieceRook: {position.H1, position.F1},
		},
		CastleDirectionWhiteQueenside: {
			PieceKing: {position.E1, position.C1},
			PieceRook: {position.A1, position.D1},
		},
		CastleDirectionBlackKingside: {
			PieceKing: {position.E8, position.G8},
			PieceRook: {position.H8, position.F8},
		},
		CastleDirectionBlackQueenside: {
			PieceKing: {position.E8, position.C8},
			PieceRook: {position.A8, position.D8},
		},
	}

	maskCastleRights = [4 + 1]CastleRights{
		CastleDirectionWhiteKingside:  CastleRightsWhiteKingside,
		CastleDirectionWhiteQueenside: CastleRightsWhiteQueenside,
		CastleDirectionBlackKingside:  CastleRightsBlackKingside,
		CastleDirectionBlackQueenside: CastleRightsBlackQueenside,
	}

	startingBitboards = snapshot{
		SideWhite: {
			PiecePawn:   0x_00_00_00_00_00_00_FF_00,
			PieceRook:   0x_00_00_00_00_00_00_00_81,
			PieceKnight: 0x_00_00_00_00_00_00_00_42,
			PieceBishop: 0x_00_00_00_00_00_00_00_24,
			PieceQueen:  0x_00_00_00_00_00_00_00_08,
			PieceKing:   0x_00_00_00_00_00_00_00_10,
		},
		SideBlack: {
			PiecePawn:   0x_00_FF_00_00_00_00_00_00,
			PieceRook:   0x_81_00_00_00_00_00_00_00,
			PieceKnight: 0x_42_00_00_00_00_00_00_00,
			PieceBishop: 0x_24_00_00_00_00_00_00_00,
			PieceQueen:  0x_08_00_00_00_00_00_00_00,
			PieceKing:   0x_10_00_00_00_00_00_00_00,
		},
	}
)

func init() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		maskCell[pos] = 1 << pos
	}
}
