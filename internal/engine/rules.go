package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// HasInsufficientMaterial returns true if neither side can force mate:
// no pawn, rook or queen on the board and at most one bishop or knight
// per colour.
func HasInsufficientMaterial(board *chess.Board) bool {
	var minors [2]int

	for row := 0; row < chess.BoardSize; row++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.At(chess.Pos(file, row)).Piece
			switch piece.Kind {
			case chess.NoKind, chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			}
			minors[piece.Colour]++
			if minors[piece.Colour] > 1 {
				return false
			}
		}
	}
	return true
}

// MaterialCount returns the summed piece points of a colour.
func MaterialCount(board *chess.Board, colour chess.Colour) int {
	total := 0
	for _, sq := range board.Occupied(colour) {
		total += sq.Piece.Points()
	}
	return total
}
