package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// commit finalises a move that has already been applied to the board and
// verified not to leave the mover in check.
func (g *Game) commit(m *chess.Move, disambiguate bool, resultingFEN string) *MoveResult {
	mover, opponent := g.MovingPlayer(), g.Opponent()
	res := &MoveResult{Accepted: true, Turn: g.Turn, gameID: g.ID}

	mover.IsCheck = false
	g.Board.At(m.Target).Piece.FirstMove = false
	if m.IsCastle() {
		g.Board.At(m.Castle.RookTo).Piece.FirstMove = false
	}

	if m.IsCapture() {
		mover.TakePiece(m.Captured)
		res.Capture = &Capture{Name: m.Captured.Name(), Points: mover.Points}
	}

	if m.Piece.Kind == chess.Pawn || m.IsCapture() {
		g.halfmove = 0
	} else {
		g.halfmove++
	}

	g.Board.EnPassant = chess.EnPassantState{}
	if m.IsDoublePawnAdvance() {
		g.Board.EnPassant = chess.EnPassantState{
			Available: true,
			Square:    m.Source.Offset(0, mover.Colour.Forward()),
			Captured:  m.Target,
			Turn:      g.Turn + 1,
		}
	}

	if m.IsPromotion() {
		g.Board.Set(m.Target, m.Promotion.Piece)
		if resultingFEN != "" {
			m.Promotion.FEN = PromotedFEN(resultingFEN, mover.Colour)
			resultingFEN = m.Promotion.FEN
			res.PromotionFEN = m.Promotion.FEN
		}
	}
	g.Board.CalculateAttackedSquares()

	res.PositionKey = g.positionKey(resultingFEN)
	g.detectGameOver(mover, opponent, res)

	switch {
	case opponent.IsCheck:
		res.Notification = NotifyCheckOpponent
	case !mover.IsCheck:
		res.Notification = NotifyCheckClear
	}

	res.Move = *m
	res.Notation = g.notation(m, disambiguate, opponent)
	res.GameOver = g.GameOver
	res.ThreefoldDrawAvailable = opponent.IsThreefoldDrawAvailable
	g.History = append(g.History, res.Notation)

	g.changeTurns()
	g.Turn++
	return res
}

// positionKey returns the repetition key for the position after a move.
func (g *Game) positionKey(resultingFEN string) string {
	if g.rules.PositionSource == config.CallerFEN && resultingFEN != "" {
		return PlacementField(resultingFEN)
	}
	return g.Board.Placement()
}

// detectGameOver evaluates every end condition after a move. All of them
// run for their side effects; the first terminal state found wins.
func (g *Game) detectGameOver(mover, opponent *chess.Player, res *MoveResult) {
	var over []GameOver

	opponent.IsCheck = g.Board.IsInCheck(opponent.Colour)
	if opponent.IsCheck && IsCheckmate(g.Board, opponent.Colour) {
		opponent.IsCheckMate = true
		over = append(over, Checkmate)
	}
	if IsStalemate(g.Board, opponent.Colour) {
		over = append(over, Stalemate)
	}
	if HasInsufficientMaterial(g.Board) {
		over = append(over, Draw)
	}

	mover.IsThreefoldDrawAvailable = false
	if g.threefold.checkThreefold(res.PositionKey) {
		opponent.IsThreefoldDrawAvailable = true
	}

	if g.fivefold.checkFivefold(res.PositionKey) {
		over = append(over, FivefoldDraw)
	}

	if len(over) == 0 {
		return
	}
	g.GameOver = over[0]
	if g.GameOver == Checkmate {
		g.winner = mover
	}
}

// changeTurns hands the move to the other player.
func (g *Game) changeTurns() {
	g.Player1.HasToMove = !g.Player1.HasToMove
	g.Player2.HasToMove = !g.Player2.HasToMove
}
