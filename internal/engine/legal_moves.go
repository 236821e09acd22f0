package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns every legal move of the colour, ordered by source
// square and then target square, rank 8 first.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, sq := range board.Occupied(colour) {
		for _, to := range board.LegalDestinations(sq.Position) {
			moves = append(moves, board.Classify(sq.Position, to))
		}
	}
	return moves
}

// CoordinateString renders a move as source and target square names,
// e.g. "e2e4".
func CoordinateString(m *chess.Move) string {
	return m.Source.Name() + m.Target.Name()
}
