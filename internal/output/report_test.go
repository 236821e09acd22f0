package output

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/script"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// replay plays a script's move steps straight through an engine game.
func replay(t *testing.T, text string) *Report {
	t.Helper()
	s := testutil.MustParseScript(t, text)
	g := testutil.MustNewGame(t, s.FEN)
	r := NewReport(s, g)
	for _, step := range s.Steps {
		switch step.Kind {
		case script.MoveStep:
			res, err := g.AttemptMove(step.Source, step.Target, step.FEN)
			r.AddMove(step, res, err)
		case script.ResignStep:
			r.AddAction(step, g.Resign(g.PlayerByColour(step.Colour).ID))
		case script.ClaimStep:
			r.AddAction(step, g.ClaimThreefoldDraw(g.PlayerByColour(step.Colour).ID))
		}
	}
	r.Finish(g, false)
	return r
}

func TestReport_FoolsMate(t *testing.T) {
	r := replay(t, testutil.FoolsMateScript)

	testutil.AssertEqual(t, r.Name, "Fool's mate")
	testutil.AssertEqual(t, r.PlyCount, 4)
	testutil.AssertEqual(t, r.Rejected, 0)
	testutil.AssertEqual(t, r.GameOver, engine.Checkmate.String())
	testutil.AssertEqual(t, r.Result, "0-1")
	testutil.AssertTrue(t, r.Dark.Winner)
	testutil.AssertFalse(t, r.Light.Winner)

	last := r.Steps[len(r.Steps)-1]
	testutil.AssertEqual(t, last.Notation, "2. Qh4#")
	testutil.AssertEqual(t, last.Move, "d8h4")
	testutil.AssertEqual(t, last.GameOver, "Checkmate")
}

func TestReport_RejectedSteps(t *testing.T) {
	r := replay(t, `e2 e5
e7 e5
e2 e4
e3 e4
`)

	testutil.AssertEqual(t, r.PlyCount, 1)
	testutil.AssertEqual(t, r.Rejected, 3)

	tests := []struct {
		idx      int
		accepted bool
		reason   string
	}{
		{0, false, "illegal move"},
		{1, false, "not your turn"},
		{2, true, ""},
		{3, false, "illegal move"},
	}
	for _, tt := range tests {
		s := r.Steps[tt.idx]
		if s.Accepted != tt.accepted || s.Reason != tt.reason {
			t.Errorf("step %d = (%v, %q), want (%v, %q)", tt.idx, s.Accepted, s.Reason, tt.accepted, tt.reason)
		}
	}
}

func TestReport_CapturedSortedByName(t *testing.T) {
	r := replay(t, `fen 4k3/8/8/3p4/2n1P3/1P6/8/4K3 w - - 0 1
e4 d5
e8 d7
b3 c4
`)

	want := []CapturedCount{{Piece: "Knight", Count: 1}, {Piece: "Pawn", Count: 1}}
	if diff := cmp.Diff(want, r.Light.Captured); diff != "" {
		t.Errorf("Light.Captured mismatch (-want +got):\n%s", diff)
	}
	testutil.AssertEqual(t, r.Light.Points, 4)
	testutil.AssertEqual(t, r.Light.CapturedTotal, 2)
	testutil.AssertEqual(t, r.Light.Material, 2)
	testutil.AssertEqual(t, r.Dark.Material, 0)
	testutil.AssertEqual(t, len(r.Dark.Captured), 0)
}

func TestReport_Resign(t *testing.T) {
	r := replay(t, `e2 e4
resign dark
e7 e5
`)

	testutil.AssertEqual(t, r.GameOver, "Resigning")
	testutil.AssertEqual(t, r.Result, "1-0")
	testutil.AssertTrue(t, r.Steps[1].Accepted)
	testutil.AssertEqual(t, r.Steps[2].Reason, "game over")
}

func TestCapturedCounts(t *testing.T) {
	got := capturedCounts(map[string]int{"Rook": 2, "Bishop": 1, "Pawn": 3})
	want := []CapturedCount{{"Bishop", 1}, {"Pawn", 3}, {"Rook", 2}}
	testutil.AssertEqual(t, got, want)

	if capturedCounts(nil) != nil {
		t.Error("capturedCounts(nil) should be nil")
	}
}
