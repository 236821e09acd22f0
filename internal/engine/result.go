package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Reason explains why a move attempt was rejected.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonGameOver
	ReasonIllegalMove
	ReasonNotYourTurn
	ReasonSelfCheck
)

// String returns the string representation of a reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonGameOver:
		return "game over"
	case ReasonIllegalMove:
		return "illegal move"
	case ReasonNotYourTurn:
		return "not your turn"
	case ReasonSelfCheck:
		return "self check"
	default:
		return "unknown"
	}
}

// sentinel returns the error value matching the reason.
func (r Reason) sentinel() error {
	switch r {
	case ReasonGameOver:
		return errors.ErrGameOver
	case ReasonIllegalMove:
		return errors.ErrIllegalMove
	case ReasonNotYourTurn:
		return errors.ErrNotYourTurn
	case ReasonSelfCheck:
		return errors.ErrSelfCheck
	default:
		return nil
	}
}

// Notification is the check-related message produced by a move attempt.
type Notification int

const (
	NotifyNone Notification = iota
	// NotifyCheckSelf: the move was refused because it leaves the mover's
	// king attacked.
	NotifyCheckSelf
	// NotifyInvalidMove: the move was refused for any other reason.
	NotifyInvalidMove
	// NotifyCheckOpponent: the move attacks the opponent's king.
	NotifyCheckOpponent
	// NotifyCheckClear: after the move neither king is attacked.
	NotifyCheckClear
)

// String returns the string representation of a notification.
func (n Notification) String() string {
	switch n {
	case NotifyCheckSelf:
		return "CheckSelf"
	case NotifyInvalidMove:
		return "InvalidMove"
	case NotifyCheckOpponent:
		return "CheckOpponent"
	case NotifyCheckClear:
		return "CheckClear"
	default:
		return "None"
	}
}

// GameOver is the terminal state of a game.
type GameOver int

const (
	NotOver GameOver = iota
	Checkmate
	Stalemate
	Draw // insufficient material
	ThreefoldDraw
	FivefoldDraw
	Resigning
)

// String returns the string representation of a game-over state.
func (g GameOver) String() string {
	names := []string{"None", "Checkmate", "Stalemate", "Draw", "ThreefoldDraw", "FivefoldDraw", "Resigning"}
	if g >= 0 && int(g) < len(names) {
		return names[g]
	}
	return "Unknown"
}

// IsDraw reports whether the state ends the game without a winner.
func (g GameOver) IsDraw() bool {
	return g == Stalemate || g == Draw || g == ThreefoldDraw || g == FivefoldDraw
}

// Capture describes a piece taken by an accepted move.
type Capture struct {
	Name   string
	Points int // mover's running total after the capture
}

// MoveResult is the outcome of one AttemptMove call. A rejected move has
// Accepted == false, a Reason, and leaves the game unchanged apart from the
// mover's check flag.
type MoveResult struct {
	Accepted bool
	Reason   Reason

	// Turn is the game turn the attempt was made on.
	Turn int

	Move     chess.Move
	Notation string
	Capture  *Capture

	Notification Notification
	GameOver     GameOver

	// ThreefoldDrawAvailable is true when the opponent may now claim a
	// repetition draw.
	ThreefoldDrawAvailable bool

	// PositionKey is the key recorded in the repetition windows.
	PositionKey string

	// PromotionFEN is the caller FEN rewritten for an automatic promotion.
	PromotionFEN string

	gameID string
}

// Err returns nil for an accepted move and otherwise a *errors.MoveError
// wrapping the sentinel matching Reason.
func (r *MoveResult) Err() error {
	if r == nil || r.Accepted {
		return nil
	}
	return &errors.MoveError{
		Err:    r.Reason.sentinel(),
		GameID: r.gameID,
		Turn:   r.Turn,
		Source: r.Move.Source.Name(),
		Target: r.Move.Target.Name(),
	}
}
