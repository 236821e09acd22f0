package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

func TestMustNewGame(t *testing.T) {
	g := MustNewGame(t, "")
	AssertEqual(t, g.FEN(), engine.InitialFEN)

	g = MustNewGame(t, StalemateFEN)
	AssertTrue(t, g.Player1.HasToMove)
}

func TestPlayMoves(t *testing.T) {
	g := MustNewGame(t, "")

	results := PlayMoves(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	AssertEqual(t, len(results), 4)
	AssertEqual(t, results[3].Notation, "2. Qh4#")
	AssertEqual(t, g.GameOver, engine.Checkmate)
}

func TestMustParseScript(t *testing.T) {
	s := MustParseScript(t, FoolsMateScript)

	AssertEqual(t, s.Name, "Fool's mate")
	AssertEqual(t, s.MoveCount(), 4)
}
