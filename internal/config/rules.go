package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PositionSource selects where repetition keys come from.
type PositionSource int

const (
	// BoardPosition derives keys from the engine's own board.
	BoardPosition PositionSource = iota
	// CallerFEN trusts the FEN the caller passes with each move.
	CallerFEN
)

// String returns the string representation of a position source.
func (s PositionSource) String() string {
	if s == CallerFEN {
		return "caller"
	}
	return "board"
}

// Default repetition window sizes. The threefold window holds 2p+1 keys
// and the fivefold window 4p+1, where p is the cycle length in plies, so a
// position recurring every p plies shows up three and five times.
const (
	DefaultThreefoldWindow = 9
	DefaultFivefoldWindow  = 17

	minRepetitionPeriod = 4
)

// RulesConfig holds settings related to rule detection.
type RulesConfig struct {
	// ThreefoldWindow is the length of the threefold repetition FIFO.
	ThreefoldWindow int

	// FivefoldWindow is the length of the fivefold repetition FIFO.
	FivefoldWindow int

	// PositionSource selects the repetition key source.
	PositionSource PositionSource
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		ThreefoldWindow: DefaultThreefoldWindow,
		FivefoldWindow:  DefaultFivefoldWindow,
		PositionSource:  BoardPosition,
	}
}

// Validate checks that both windows describe the same repetition cycle.
// The cycle must be an even number of plies, at least four, so the same
// side is to move at every compared entry.
func (r *RulesConfig) Validate() error {
	p := r.RepetitionPeriod()
	if r.ThreefoldWindow%2 == 0 || p < minRepetitionPeriod || p%2 != 0 {
		return fmt.Errorf("threefold window (%d) must be 2p+1 for an even cycle p >= %d: %w",
			r.ThreefoldWindow, minRepetitionPeriod, errors.ErrInvalidConfig)
	}
	if r.FivefoldWindow != 4*p+1 {
		return fmt.Errorf("fivefold window (%d) must be %d to match the threefold window: %w",
			r.FivefoldWindow, 4*p+1, errors.ErrInvalidConfig)
	}
	return nil
}

// RepetitionPeriod returns the ply distance between compared entries,
// derived from the threefold window.
func (r *RulesConfig) RepetitionPeriod() int {
	return (r.ThreefoldWindow - 1) / 2
}
