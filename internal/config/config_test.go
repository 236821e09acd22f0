package config

import (
	"bytes"
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// TestRulesConfig_Defaults verifies RulesConfig has the standard windows
func TestRulesConfig_Defaults(t *testing.T) {
	cfg := NewRulesConfig()

	if cfg.ThreefoldWindow != 9 {
		t.Errorf("ThreefoldWindow = %d, want 9", cfg.ThreefoldWindow)
	}
	if cfg.FivefoldWindow != 17 {
		t.Errorf("FivefoldWindow = %d, want 17", cfg.FivefoldWindow)
	}
	if cfg.PositionSource != BoardPosition {
		t.Errorf("PositionSource = %v, want board", cfg.PositionSource)
	}
	if cfg.RepetitionPeriod() != 4 {
		t.Errorf("RepetitionPeriod() = %d, want 4", cfg.RepetitionPeriod())
	}
}

// TestRulesConfig_Validate verifies window validation
func TestRulesConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     RulesConfig
		wantErr bool
	}{
		{"defaults", *NewRulesConfig(), false},
		{"six-ply cycle", RulesConfig{ThreefoldWindow: 13, FivefoldWindow: 25}, false},
		{"threefold too small", RulesConfig{ThreefoldWindow: 4, FivefoldWindow: 17}, true},
		{"odd cycle", RulesConfig{ThreefoldWindow: 11, FivefoldWindow: 21}, true},
		{"fivefold on another cycle", RulesConfig{ThreefoldWindow: 13, FivefoldWindow: 21}, true},
		{"fivefold too small", RulesConfig{ThreefoldWindow: 9, FivefoldWindow: 12}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("NewConfig().Validate() = %v, want nil", err)
	}

	cfg.Workers = 0
	if err := cfg.Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Validate() with 0 workers = %v, want ErrInvalidConfig", err)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestConfig_Logf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLogFile(&buf).WithVerbosity(1).Build()

	cfg.Logf(2, "hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("Logf above verbosity wrote %q", buf.String())
	}

	cfg.Logf(1, "shown %d", 2)
	if got := buf.String(); got != "shown 2\n" {
		t.Errorf("Logf wrote %q, want %q", got, "shown 2\n")
	}

	var nilCfg *Config
	nilCfg.Logf(0, "no panic")
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithJSONOutput(true).
		WithStopOnIllegal(true).
		WithPositionSource(CallerFEN).
		WithRepetitionWindows(13, 25).
		WithWorkers(4).
		WithLineLength(60).
		Build()

	if !cfg.Output.JSON {
		t.Error("Output.JSON should be true")
	}
	if !cfg.Output.StopOnIllegal {
		t.Error("Output.StopOnIllegal should be true")
	}
	if cfg.Rules.PositionSource != CallerFEN {
		t.Errorf("PositionSource = %v, want caller", cfg.Rules.PositionSource)
	}
	if cfg.Rules.ThreefoldWindow != 13 || cfg.Rules.FivefoldWindow != 25 {
		t.Errorf("windows = %d/%d, want 13/25", cfg.Rules.ThreefoldWindow, cfg.Rules.FivefoldWindow)
	}
	if got := cfg.Rules.RepetitionPeriod(); got != 6 {
		t.Errorf("RepetitionPeriod() = %d, want 6", got)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.Output.MaxLineLength != 60 {
		t.Errorf("MaxLineLength = %d, want 60", cfg.Output.MaxLineLength)
	}
}
