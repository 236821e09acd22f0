// Package config provides configuration for the rules engine and the
// chessrules command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all engine and program configuration.
type Config struct {
	// Rules controls game rule parameters.
	Rules *RulesConfig

	// Output controls how replay reports are rendered.
	Output *OutputConfig

	// Verbosity: 0=nothing, 1=summary, 2=running commentary.
	Verbosity int

	// Workers is the number of scripts replayed concurrently.
	Workers int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:      NewRulesConfig(),
		Output:     NewOutputConfig(),
		Verbosity:  1,
		Workers:    1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Rules == nil || c.Output == nil {
		return fmt.Errorf("missing rules or output section: %w", errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	return c.Rules.Validate()
}

// Logf writes a diagnostic line to the log file when the verbosity is at
// least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
