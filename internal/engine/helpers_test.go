package engine

import (
	"testing"
)

// mustGame returns a new game from fen, or from the starting position when
// fen is empty.
func mustGame(t *testing.T, fen string) *Game {
	t.Helper()
	if fen == "" {
		return NewGame("Light", "Dark", nil)
	}
	g, err := NewGameFromFEN("Light", "Dark", fen, nil)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

// play makes each move, given as "e2e4", and fails the test on the first
// rejected one. It returns the result of the last move.
func play(t *testing.T, g *Game, moves ...string) *MoveResult {
	t.Helper()
	var res *MoveResult
	for _, mv := range moves {
		var err error
		res, err = g.AttemptMove(mv[:2], mv[2:], "")
		if err != nil {
			t.Fatalf("AttemptMove(%s) error: %v", mv, err)
		}
		if !res.Accepted {
			t.Fatalf("AttemptMove(%s) rejected: %v", mv, res.Reason)
		}
	}
	return res
}

// attempt makes one move and returns its result without failing on
// rejection.
func attempt(t *testing.T, g *Game, mv string) *MoveResult {
	t.Helper()
	res, err := g.AttemptMove(mv[:2], mv[2:], "")
	if err != nil {
		t.Fatalf("AttemptMove(%s) error: %v", mv, err)
	}
	return res
}
