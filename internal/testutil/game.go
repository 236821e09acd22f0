package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/script"
)

// Well-known positions for tests.
const (
	FoolsMateScript = `game Fool's mate
f2 f3
e7 e5
g2 g4
d8 h4
`
	StalemateFEN = "7k/5K2/8/6Q1/8/8/8/8 w - - 0 1"
)

// MustNewGame returns a game from fen, or the standard start when fen is
// empty. It calls t.Fatal if the FEN is invalid.
func MustNewGame(t testing.TB, fen string) *engine.Game {
	t.Helper()
	if fen == "" {
		return engine.NewGame("Light", "Dark", nil)
	}
	g, err := engine.NewGameFromFEN("Light", "Dark", fen, nil)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q): %v", fen, err)
	}
	return g
}

// PlayMoves makes each move, written "e2e4", and fails the test at the
// first rejection. It returns every result.
func PlayMoves(t testing.TB, g *engine.Game, moves ...string) []*engine.MoveResult {
	t.Helper()
	results := make([]*engine.MoveResult, 0, len(moves))
	for _, mv := range moves {
		if len(mv) != 4 {
			t.Fatalf("move %q: want four characters", mv)
		}
		res, err := g.AttemptMove(mv[:2], mv[2:], "")
		if err != nil {
			t.Fatalf("AttemptMove(%s): %v", mv, err)
		}
		if !res.Accepted {
			t.Fatalf("AttemptMove(%s) rejected: %v", mv, res.Reason)
		}
		results = append(results, res)
	}
	return results
}

// MustParseScripts parses script text and calls t.Fatal on failure or when
// no script is found.
func MustParseScripts(t testing.TB, text string) []*script.Script {
	t.Helper()
	scripts, err := script.ParseString(text)
	if err != nil {
		t.Fatalf("failed to parse script: %v\n%s", err, text)
	}
	if len(scripts) == 0 {
		t.Fatalf("no scripts in:\n%s", text)
	}
	return scripts
}

// MustParseScript returns the first script in text.
func MustParseScript(t testing.TB, text string) *script.Script {
	t.Helper()
	return MustParseScripts(t, text)[0]
}
