// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	lineLength = flag.Int("w", 75, "Maximum line length of the move list")
	showBoard  = flag.Bool("board", false, "Print the final board after each game")

	// Replay options
	stopOnIllegal = flag.Bool("stop", false, "Stop a script at its first rejected step")
	callerFEN     = flag.Bool("callerfen", false, "Key repetition on the FEN supplied with each move")
	threefold     = flag.Int("threefold", config.DefaultThreefoldWindow, "Threefold repetition window in plies (2p+1 for a p-ply cycle)")
	fivefold      = flag.Int("fivefold", config.DefaultFivefoldWindow, "Fivefold repetition window in plies (4p+1, matching -threefold)")
	lightName     = flag.String("light", "Light", "Name of the Light player")
	darkName      = flag.String("dark", "Dark", "Name of the Dark player")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 per game")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("j", 1, "Number of scripts replayed in parallel")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyRulesFlags(cfg)

	cfg.Verbosity = *verbosity
	cfg.Workers = *workers
}

// applyOutputFlags configures report output settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSON = *jsonOutput
	cfg.Output.MaxLineLength = *lineLength
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.StopOnIllegal = *stopOnIllegal
}

// applyRulesFlags configures the draw rules.
func applyRulesFlags(cfg *config.Config) {
	cfg.Rules.ThreefoldWindow = *threefold
	cfg.Rules.FivefoldWindow = *fivefold
	if *callerFEN {
		cfg.Rules.PositionSource = config.CallerFEN
	} else {
		cfg.Rules.PositionSource = config.BoardPosition
	}
}
