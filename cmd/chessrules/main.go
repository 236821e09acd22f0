// chessrules replays chess move scripts through the rules engine and
// reports what each move did.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	stats, err := processAllInputs(cfg, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg.Logf(1, "%d game(s) replayed, %d finished, %d step(s) rejected.", stats.games, stats.finished, stats.rejected)
	if stats.failed > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess move scripts and reports each move's outcome.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript lines:\n")
	fmt.Fprintf(os.Stderr, "  game <name>        start a new script\n")
	fmt.Fprintf(os.Stderr, "  fen <FEN>          starting position (before any move)\n")
	fmt.Fprintf(os.Stderr, "  e2 e4 [FEN]        move, also e2-e4 or e2e4\n")
	fmt.Fprintf(os.Stderr, "  resign light|dark  resign the game\n")
	fmt.Fprintf(os.Stderr, "  claim light|dark   claim a threefold repetition draw\n")
}
