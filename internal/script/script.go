// Package script reads plain-text move scripts: one step per line, with
// optional game and fen headers.
//
//	# comments start with a hash
//	game Fool's mate
//	fen rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1
//	f2 f3
//	e7-e5
//	g2g4 rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq g3 0 2
//	resign dark
//	claim light
package script

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// StepKind identifies what a script line asks for.
type StepKind int

const (
	MoveStep StepKind = iota
	ResignStep
	ClaimStep
)

// String returns the string representation of a step kind.
func (k StepKind) String() string {
	switch k {
	case MoveStep:
		return "move"
	case ResignStep:
		return "resign"
	case ClaimStep:
		return "claim"
	default:
		return "unknown"
	}
}

// Step is one parsed script line.
type Step struct {
	Line int
	Kind StepKind

	// Move steps.
	Source string
	Target string
	FEN    string // caller's resulting position, may be empty

	// Resign and claim steps.
	Colour chess.Colour
}

// String renders the step in canonical script form.
func (s Step) String() string {
	switch s.Kind {
	case ResignStep, ClaimStep:
		return s.Kind.String() + " " + strings.ToLower(s.Colour.String())
	}
	if s.FEN != "" {
		return s.Source + " " + s.Target + " " + s.FEN
	}
	return s.Source + " " + s.Target
}

// Script is a sequence of steps to replay in a single game.
type Script struct {
	Name      string
	File      string
	StartLine int

	// FEN is the starting position; empty means the standard one.
	FEN string

	Steps []Step
}

// MoveCount returns the number of move steps.
func (s *Script) MoveCount() int {
	n := 0
	for _, st := range s.Steps {
		if st.Kind == MoveStep {
			n++
		}
	}
	return n
}
