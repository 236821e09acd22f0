package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Game is one two-player game. Player1 plays Light and moves first.
// A Game is not safe for concurrent use and performs no I/O.
type Game struct {
	ID      string
	Board   *chess.Board
	Player1 *chess.Player
	Player2 *chess.Player

	// Turn counts plies from 1.
	Turn     int
	GameOver GameOver

	// History holds the notation of every accepted move.
	History []string

	rules     *config.RulesConfig
	threefold *repetitionWindow
	fivefold  *repetitionWindow
	winner    *chess.Player
	halfmove  int
}

// NewGame creates a game in the standard starting position. A nil rules
// config selects the defaults.
func NewGame(p1Name, p2Name string, rules *config.RulesConfig) *Game {
	g := newGame(p1Name, p2Name, rules)
	g.Board = NewInitialBoard()
	g.Turn = 1
	g.Player1.HasToMove = true
	return g
}

// NewGameFromFEN creates a game from a FEN position. Player1 still plays
// Light; the side to move and the turn come from the FEN.
func NewGameFromFEN(p1Name, p2Name, fen string, rules *config.RulesConfig) (*Game, error) {
	setup, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	g := newGame(p1Name, p2Name, rules)
	g.Board = setup.Board
	g.Turn = setup.Turn()
	g.halfmove = setup.HalfmoveClock
	g.Player1.HasToMove = setup.ToMove == chess.Light
	g.Player2.HasToMove = setup.ToMove == chess.Dark
	g.Player1.IsCheck = g.Board.IsInCheck(chess.Light)
	g.Player2.IsCheck = g.Board.IsInCheck(chess.Dark)
	return g, nil
}

func newGame(p1Name, p2Name string, rules *config.RulesConfig) *Game {
	if rules == nil {
		rules = config.NewRulesConfig()
	}
	p1 := chess.NewPlayer(uuid.NewString(), p1Name)
	p1.Colour = chess.Light
	p2 := chess.NewPlayer(uuid.NewString(), p2Name)
	p2.Colour = chess.Dark

	return &Game{
		ID:        uuid.NewString(),
		Player1:   p1,
		Player2:   p2,
		rules:     rules,
		threefold: newRepetitionWindow(rules.ThreefoldWindow, rules.RepetitionPeriod()),
		fivefold:  newRepetitionWindow(rules.FivefoldWindow, rules.RepetitionPeriod()),
	}
}

// MovingPlayer returns the player whose turn it is.
func (g *Game) MovingPlayer() *chess.Player {
	if g.Player1.HasToMove {
		return g.Player1
	}
	return g.Player2
}

// Opponent returns the player who is not on move.
func (g *Game) Opponent() *chess.Player {
	if g.Player1.HasToMove {
		return g.Player2
	}
	return g.Player1
}

// Player returns the player with the given ID.
func (g *Game) Player(id string) (*chess.Player, error) {
	switch id {
	case g.Player1.ID:
		return g.Player1, nil
	case g.Player2.ID:
		return g.Player2, nil
	}
	return nil, fmt.Errorf("player %q in game %s: %w", id, g.ID, errors.ErrPlayerNotFound)
}

// PlayerByColour returns the player of the given colour.
func (g *Game) PlayerByColour(colour chess.Colour) *chess.Player {
	if g.Player1.Colour == colour {
		return g.Player1
	}
	return g.Player2
}

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool {
	return g.GameOver != NotOver
}

// Winner returns the winning player, or nil for a draw or a game in
// progress.
func (g *Game) Winner() *chess.Player {
	return g.winner
}

// Result returns the game result in PGN form: "1-0", "0-1", "1/2-1/2" or
// "*" while the game is in progress.
func (g *Game) Result() string {
	switch {
	case g.winner != nil && g.winner.Colour == chess.Light:
		return "1-0"
	case g.winner != nil:
		return "0-1"
	case g.GameOver.IsDraw():
		return "1/2-1/2"
	}
	return "*"
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return BoardToFEN(g.Board, g.MovingPlayer().Colour, g.halfmove, (g.Turn+1)/2)
}

// Resign ends the game with the given player as the loser.
func (g *Game) Resign(playerID string) error {
	p, err := g.Player(playerID)
	if err != nil {
		return err
	}
	if g.IsOver() {
		return fmt.Errorf("resign in game %s: %w", g.ID, errors.ErrGameOver)
	}
	g.GameOver = Resigning
	g.winner = g.other(p)
	return nil
}

// ClaimThreefoldDraw ends the game as a draw if the player has been offered
// a threefold repetition draw.
func (g *Game) ClaimThreefoldDraw(playerID string) error {
	p, err := g.Player(playerID)
	if err != nil {
		return err
	}
	if g.IsOver() {
		return fmt.Errorf("draw claim in game %s: %w", g.ID, errors.ErrGameOver)
	}
	if !p.IsThreefoldDrawAvailable {
		return fmt.Errorf("draw claim by %s: %w", p.Name, errors.ErrDrawNotAvailable)
	}
	p.IsThreefoldDrawAvailable = false
	g.GameOver = ThreefoldDraw
	return nil
}

func (g *Game) other(p *chess.Player) *chess.Player {
	if p == g.Player1 {
		return g.Player2
	}
	return g.Player1
}

// AttemptMove validates and, if legal, performs the move from source to
// target for the player on move. resultingFEN is the position the caller
// expects after the move; it may be empty unless the game was configured
// to key repetitions by caller FEN.
//
// A rejected move is reported through the MoveResult, not the error. The
// error is only set for malformed square names.
func (g *Game) AttemptMove(source, target, resultingFEN string) (*MoveResult, error) {
	from, err := chess.ParsePosition(source)
	if err != nil {
		return nil, &errors.MoveError{Err: err, GameID: g.ID, Turn: g.Turn, Source: source, Target: target}
	}
	to, err := chess.ParsePosition(target)
	if err != nil {
		return nil, &errors.MoveError{Err: err, GameID: g.ID, Turn: g.Turn, Source: source, Target: target}
	}

	mover := g.MovingPlayer()
	if g.IsOver() {
		return g.reject(from, to, ReasonGameOver, NotifyInvalidMove), nil
	}

	// An en passant window only lasts for the turn right after the advance.
	if g.Board.EnPassant.Available && g.Board.EnPassant.Turn != g.Turn {
		g.Board.EnPassant = chess.EnPassantState{}
	}

	piece := g.Board.At(from).Piece
	if piece.IsEmpty() {
		return g.reject(from, to, ReasonIllegalMove, NotifyInvalidMove), nil
	}
	if piece.Colour != mover.Colour {
		return g.reject(from, to, ReasonNotYourTurn, NotifyInvalidMove), nil
	}

	m := g.Board.Classify(from, to)
	if !piece.IsLegalDestination(g.Board, from, to, m.Type) {
		return g.reject(from, to, ReasonIllegalMove, NotifyInvalidMove), nil
	}

	// Disambiguation depends on the attackers before the move.
	disambiguate := needsDisambiguation(g.Board, &m)

	snapshot := g.Board.Clone()
	g.Board.ApplyMove(&m)
	g.Board.CalculateAttackedSquares()
	if g.Board.IsInCheck(mover.Colour) {
		g.Board.Restore(snapshot)
		mover.IsCheck = true
		res := g.reject(from, to, ReasonSelfCheck, NotifyCheckSelf)
		res.Move = m
		return res, nil
	}

	return g.commit(&m, disambiguate, resultingFEN), nil
}

func (g *Game) reject(from, to chess.Position, reason Reason, n Notification) *MoveResult {
	return &MoveResult{
		Reason:       reason,
		Turn:         g.Turn,
		Move:         chess.Move{Source: from, Target: to},
		Notification: n,
		GameOver:     g.GameOver,
		gameID:       g.ID,
	}
}
