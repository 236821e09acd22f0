package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSON = enabled
	return b
}

// WithStopOnIllegal stops scripts at the first rejected move.
func (b *ConfigBuilder) WithStopOnIllegal(enabled bool) *ConfigBuilder {
	b.cfg.Output.StopOnIllegal = enabled
	return b
}

// WithBoard appends the final board to text output.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithLineLength sets the wrap column of text output.
func (b *ConfigBuilder) WithLineLength(n int) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = n
	return b
}

// WithPositionSource sets where repetition keys come from.
func (b *ConfigBuilder) WithPositionSource(src PositionSource) *ConfigBuilder {
	b.cfg.Rules.PositionSource = src
	return b
}

// WithRepetitionWindows sets the threefold and fivefold window sizes.
func (b *ConfigBuilder) WithRepetitionWindows(threefold, fivefold int) *ConfigBuilder {
	b.cfg.Rules.ThreefoldWindow = threefold
	b.cfg.Rules.FivefoldWindow = fivefold
	return b
}

// WithWorkers sets the number of concurrent replays.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
