// Package session keeps the games in progress and serialises move
// transactions per game.
package session

import (
	"fmt"
	"sync"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// entry pairs a game with the lock that serialises its transactions.
type entry struct {
	mu   sync.Mutex
	game *engine.Game
}

// Manager is a registry of games keyed by game ID. It is safe for
// concurrent use: calls on different games run in parallel, calls on the
// same game run one at a time.
type Manager struct {
	cfg *config.Config

	mu    sync.RWMutex
	games map[string]*entry
}

// NewManager creates an empty registry. A nil cfg selects the defaults.
func NewManager(cfg *config.Config) *Manager {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Manager{cfg: cfg, games: make(map[string]*entry)}
}

// NewGame starts a game in the standard position. Player 1 plays Light and
// moves first.
func (m *Manager) NewGame(p1Name, p2Name string) *engine.Game {
	g := engine.NewGame(p1Name, p2Name, m.cfg.Rules)
	m.add(g)
	return g
}

// NewGameFromFEN starts a game from a FEN position.
func (m *Manager) NewGameFromFEN(p1Name, p2Name, fen string) (*engine.Game, error) {
	g, err := engine.NewGameFromFEN(p1Name, p2Name, fen, m.cfg.Rules)
	if err != nil {
		return nil, err
	}
	m.add(g)
	return g, nil
}

func (m *Manager) add(g *engine.Game) {
	m.mu.Lock()
	m.games[g.ID] = &entry{game: g}
	m.mu.Unlock()
	m.cfg.Logf(2, "game %s started: %s vs %s", g.ID, g.Player1.Name, g.Player2.Name)
}

func (m *Manager) lookup(gameID string) (*entry, error) {
	m.mu.RLock()
	e, ok := m.games[gameID]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("game %q: %w", gameID, errors.ErrGameNotFound)
	}
	return e, nil
}

// AttemptMove runs one move transaction on the game.
func (m *Manager) AttemptMove(gameID, source, target, resultingFEN string) (*engine.MoveResult, error) {
	var res *engine.MoveResult
	err := m.With(gameID, func(g *engine.Game) error {
		var err error
		res, err = g.AttemptMove(source, target, resultingFEN)
		if err == nil && res.GameOver != engine.NotOver && res.Accepted {
			m.cfg.Logf(2, "game %s over: %v (%s)", gameID, res.GameOver, g.Result())
		}
		return err
	})
	return res, err
}

// Resign ends the game with the player as the loser.
func (m *Manager) Resign(gameID, playerID string) error {
	return m.With(gameID, func(g *engine.Game) error {
		if err := g.Resign(playerID); err != nil {
			return err
		}
		m.cfg.Logf(2, "game %s over: resignation (%s)", gameID, g.Result())
		return nil
	})
}

// ClaimThreefoldDraw ends the game as a draw on the player's claim.
func (m *Manager) ClaimThreefoldDraw(gameID, playerID string) error {
	return m.With(gameID, func(g *engine.Game) error {
		if err := g.ClaimThreefoldDraw(playerID); err != nil {
			return err
		}
		m.cfg.Logf(2, "game %s over: threefold repetition claimed", gameID)
		return nil
	})
}

// With runs fn while holding the game's lock. fn must not retain the game.
func (m *Manager) With(gameID string, fn func(g *engine.Game) error) error {
	e, err := m.lookup(gameID)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.game)
}

// Remove drops a game from the registry. It reports whether it was present.
func (m *Manager) Remove(gameID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[gameID]; !ok {
		return false
	}
	delete(m.games, gameID)
	return true
}

// Len returns the number of registered games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
