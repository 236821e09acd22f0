package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsCheckmate returns true if the colour's king is attacked and it has no
// escape: the king cannot step away, no piece can take a checker, and no
// piece can block a sliding check. Every escape is verified by playing it
// on a copy of the board.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	if !board.IsInCheck(colour) {
		return false
	}
	return !kingCanMove(board, colour) &&
		!canCaptureChecker(board, colour) &&
		!canBlockCheck(board, colour)
}

// IsStalemate returns true if the colour is not in check and has no legal
// move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !board.IsInCheck(colour) && !board.HasLegalMoves(colour)
}

// checkers returns the enemy attackers of the colour's king.
func checkers(board *chess.Board, colour chess.Colour) []chess.Attacker {
	king := board.KingSquare(colour)
	if king == nil {
		return nil
	}
	return king.AttackersOf(colour.Opposite())
}

func kingCanMove(board *chess.Board, colour chess.Colour) bool {
	king := board.KingSquare(colour)
	return king != nil && board.HasAnyLegalMove(king.Position)
}

// canCaptureChecker tries every capture of every checker, including an en
// passant capture of a checking pawn.
func canCaptureChecker(board *chess.Board, colour chess.Colour) bool {
	for _, checker := range checkers(board, colour) {
		targets := []chess.Position{checker.From}
		ep := board.EnPassant
		if ep.Available && ep.Captured == checker.From {
			targets = append(targets, ep.Square)
		}
		for _, to := range targets {
			if anyPieceReaches(board, colour, to, false) {
				return true
			}
		}
	}
	return false
}

// canBlockCheck tries to interpose a piece on every square between the king
// and a sliding checker.
func canBlockCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.KingSquare(colour)
	for _, checker := range checkers(board, colour) {
		if !checker.Piece.Kind.IsSlider() {
			continue
		}
		for _, sq := range between(checker.From, king.Position) {
			if anyPieceReaches(board, colour, sq, true) {
				return true
			}
		}
	}
	return false
}

// anyPieceReaches reports whether a piece of the colour can legally move to
// the square. The king is skipped when blocking.
func anyPieceReaches(board *chess.Board, colour chess.Colour, to chess.Position, skipKing bool) bool {
	for _, sq := range board.Occupied(colour) {
		if skipKing && sq.Piece.Kind == chess.King {
			continue
		}
		m := board.Classify(sq.Position, to)
		if board.IsLegal(&m) {
			return true
		}
	}
	return false
}

// between returns the squares strictly between two positions on a shared
// rank, file or diagonal.
func between(a, b chess.Position) []chess.Position {
	df, dr := sign(b.File-a.File), sign(b.Row-a.Row)
	if a.File != b.File && a.Row != b.Row && abs(b.File-a.File) != abs(b.Row-a.Row) {
		return nil
	}
	var out []chess.Position
	for p := a.Offset(df, dr); p != b; p = p.Offset(df, dr) {
		out = append(out, p)
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
