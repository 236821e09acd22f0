package output

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/script"
)

// Report is the record of one replayed script.
type Report struct {
	Name       string `json:"name"`
	File       string `json:"file,omitempty"`
	GameID     string `json:"gameId"`
	InitialFEN string `json:"initialFEN,omitempty"`

	Light PlayerReport `json:"light"`
	Dark  PlayerReport `json:"dark"`

	Steps    []StepReport `json:"steps"`
	PlyCount int          `json:"plyCount"`
	Rejected int          `json:"rejected,omitempty"`

	GameOver string `json:"gameOver"`
	Result   string `json:"result"`
	FinalFEN string `json:"finalFEN"`
	Board    string `json:"board,omitempty"`

	// Error is set when the replay stopped early.
	Error string `json:"error,omitempty"`
}

// PlayerReport summarises one side at the end of the replay.
type PlayerReport struct {
	Name   string `json:"name"`
	Points int    `json:"points"`

	// Material is the value of the side's pieces still on the board.
	Material int `json:"material"`

	CapturedTotal int             `json:"capturedTotal"`
	Captured      []CapturedCount `json:"captured,omitempty"`
	Winner        bool            `json:"winner,omitempty"`
}

// CapturedCount is the number of enemy pieces of one kind taken.
type CapturedCount struct {
	Piece string `json:"piece"`
	Count int    `json:"count"`
}

// StepReport is the outcome of one script step.
type StepReport struct {
	Line     int    `json:"line"`
	Step     string `json:"step"`
	Accepted bool   `json:"accepted"`

	Reason       string `json:"reason,omitempty"`
	Notation     string `json:"notation,omitempty"`
	Move         string `json:"move,omitempty"`
	Captured     string `json:"captured,omitempty"`
	Notification string `json:"notification,omitempty"`
	GameOver     string `json:"gameOver,omitempty"`
	DrawOffered  bool   `json:"drawOffered,omitempty"`
	PromotionFEN string `json:"promotionFEN,omitempty"`
	Error        string `json:"error,omitempty"`
}

// NewReport starts a report for a script about to be replayed in g.
func NewReport(s *script.Script, g *engine.Game) *Report {
	return &Report{
		Name:       s.Name,
		File:       s.File,
		GameID:     g.ID,
		InitialFEN: s.FEN,
		Steps:      make([]StepReport, 0, len(s.Steps)),
	}
}

// AddMove records the result of a move step. res may be nil when err is
// set.
func (r *Report) AddMove(step script.Step, res *engine.MoveResult, err error) {
	sr := StepReport{Line: step.Line, Step: step.String()}
	switch {
	case err != nil:
		sr.Error = err.Error()
		r.Rejected++
	case !res.Accepted:
		sr.Reason = res.Reason.String()
		sr.Notification = res.Notification.String()
		r.Rejected++
	default:
		sr.Accepted = true
		sr.Notation = res.Notation
		sr.Move = engine.CoordinateString(&res.Move)
		sr.Notification = res.Notification.String()
		if res.Capture != nil {
			sr.Captured = res.Capture.Name
		}
		if res.GameOver != engine.NotOver {
			sr.GameOver = res.GameOver.String()
		}
		sr.DrawOffered = res.ThreefoldDrawAvailable
		sr.PromotionFEN = res.PromotionFEN
		r.PlyCount++
	}
	r.Steps = append(r.Steps, sr)
}

// AddAction records a resign or claim step.
func (r *Report) AddAction(step script.Step, err error) {
	sr := StepReport{Line: step.Line, Step: step.String(), Accepted: err == nil}
	if err != nil {
		sr.Error = err.Error()
		r.Rejected++
	}
	r.Steps = append(r.Steps, sr)
}

// Finish fills in the final state of the game.
func (r *Report) Finish(g *engine.Game, showBoard bool) {
	r.Light = newPlayerReport(g, chess.Light)
	r.Dark = newPlayerReport(g, chess.Dark)
	r.GameOver = g.GameOver.String()
	r.Result = g.Result()
	r.FinalFEN = g.FEN()
	if showBoard {
		r.Board = g.Board.String()
	}
}

func newPlayerReport(g *engine.Game, colour chess.Colour) PlayerReport {
	p, winner := g.PlayerByColour(colour), g.Winner()
	return PlayerReport{
		Name:          p.Name,
		Points:        p.Points,
		Material:      engine.MaterialCount(g.Board, colour),
		CapturedTotal: p.CapturedCount(),
		Captured:      capturedCounts(p.CapturedPieces),
		Winner:        winner != nil && winner.ID == p.ID,
	}
}

// capturedCounts flattens a capture tally into a list sorted by piece
// name.
func capturedCounts(tally map[string]int) []CapturedCount {
	if len(tally) == 0 {
		return nil
	}
	names := maps.Keys(tally)
	slices.Sort(names)
	out := make([]CapturedCount, 0, len(names))
	for _, name := range names {
		out = append(out, CapturedCount{Piece: name, Count: tally[name]})
	}
	return out
}
