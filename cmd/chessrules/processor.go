// processor.go - Script loading, replay and report output
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/script"
	"github.com/lgbarn/chessrules-go/internal/session"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// replayStats summarises a run.
type replayStats struct {
	games    int
	finished int // games that reached a game-over state
	rejected int // rejected steps across all games
	failed   int // scripts that could not be read or replayed
}

// Replayer replays scripts through a shared session manager.
type Replayer struct {
	cfg     *config.Config
	manager *session.Manager
	light   string
	dark    string
}

// NewReplayer creates a replayer with its own game registry.
func NewReplayer(cfg *config.Config, light, dark string) *Replayer {
	return &Replayer{
		cfg:     cfg,
		manager: session.NewManager(cfg),
		light:   light,
		dark:    dark,
	}
}

// Replay runs one script in a fresh game and returns its report. The game
// is dropped from the registry afterwards.
func (r *Replayer) Replay(s *script.Script) (*output.Report, error) {
	g, err := r.newGame(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	defer r.manager.Remove(g.ID)

	report := output.NewReport(s, g)
	for _, step := range s.Steps {
		ok, err := r.runStep(g.ID, step, report)
		if err != nil {
			return nil, err
		}
		if !ok && r.cfg.Output.StopOnIllegal {
			report.Error = fmt.Sprintf("line %d: %s rejected", step.Line, step)
			break
		}
	}

	err = r.manager.With(g.ID, func(g *engine.Game) error {
		report.Finish(g, r.cfg.Output.ShowBoard)
		return nil
	})
	return report, err
}

func (r *Replayer) newGame(s *script.Script) (*engine.Game, error) {
	if s.FEN == "" {
		return r.manager.NewGame(r.light, r.dark), nil
	}
	return r.manager.NewGameFromFEN(r.light, r.dark, s.FEN)
}

// runStep applies one step and records it. It reports whether the step
// was accepted; the error is non-nil only when the game vanished.
func (r *Replayer) runStep(gameID string, step script.Step, report *output.Report) (bool, error) {
	switch step.Kind {
	case script.MoveStep:
		res, err := r.manager.AttemptMove(gameID, step.Source, step.Target, step.FEN)
		report.AddMove(step, res, err)
		return err == nil && res.Accepted, nil

	case script.ResignStep, script.ClaimStep:
		playerID, err := r.playerID(gameID, step)
		if err != nil {
			return false, err
		}
		if step.Kind == script.ResignStep {
			err = r.manager.Resign(gameID, playerID)
		} else {
			err = r.manager.ClaimThreefoldDraw(gameID, playerID)
		}
		report.AddAction(step, err)
		return err == nil, nil
	}
	return false, fmt.Errorf("line %d: unknown step kind %v", step.Line, step.Kind)
}

func (r *Replayer) playerID(gameID string, step script.Step) (string, error) {
	var id string
	err := r.manager.With(gameID, func(g *engine.Game) error {
		id = g.PlayerByColour(step.Colour).ID
		return nil
	})
	return id, err
}

// loadScripts parses every input, or stdin when there are none. Files that
// cannot be read or parsed are logged and counted as failed.
func loadScripts(cfg *config.Config, args []string, stdin io.Reader) ([]*script.Script, int) {
	if len(args) == 0 {
		scripts, err := script.NewParser(stdin, "").ParseAllScripts()
		if err != nil {
			cfg.Logf(0, "Error: %v", err)
			return scripts, 1
		}
		return scripts, 0
	}

	var all []*script.Script
	failed := 0
	for _, filename := range args {
		scripts, err := script.ParseFile(filename)
		if err != nil {
			cfg.Logf(0, "Error: %v", err)
			failed++
			continue
		}
		cfg.Logf(2, "%s: %d script(s)", filename, len(scripts))
		all = append(all, scripts...)
	}
	return all, failed
}

// processAllInputs replays all scripts in args (or stdin) and writes their
// reports to cfg.OutputFile in input order.
func processAllInputs(cfg *config.Config, args []string) (replayStats, error) {
	return processInputs(cfg, args, os.Stdin)
}

func processInputs(cfg *config.Config, args []string, stdin io.Reader) (replayStats, error) {
	var stats replayStats

	scripts, failed := loadScripts(cfg, args, stdin)
	stats.failed = failed

	replayer := NewReplayer(cfg, *lightName, *darkName)
	writer := output.NewWriter(cfg.OutputFile, cfg)
	err := worker.Stream(scripts, func(item worker.WorkItem) worker.ProcessResult {
		report, err := replayer.Replay(item.Script)
		return worker.ProcessResult{Index: item.Index, Report: report, Error: err}
	}, func(res worker.ProcessResult) error {
		if res.Error != nil {
			cfg.Logf(0, "Error: %v", res.Error)
			stats.failed++
			return nil
		}
		stats.games++
		stats.rejected += res.Report.Rejected
		if res.Report.GameOver != engine.NotOver.String() {
			stats.finished++
		}
		return writer.WriteReport(res.Report)
	}, worker.WithWorkers(cfg.Workers))
	if err != nil {
		return stats, errors.Wrap(err, "writing reports")
	}
	return stats, writer.Close()
}
