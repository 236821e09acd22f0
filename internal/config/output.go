package config

// OutputConfig holds settings related to replay output.
type OutputConfig struct {
	// JSON enables JSON output instead of text.
	JSON bool

	// StopOnIllegal stops a script at its first rejected move.
	StopOnIllegal bool

	// ShowBoard appends the final board diagram to text output.
	ShowBoard bool

	// MaxLineLength wraps the move list of text output.
	MaxLineLength int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength: 75,
	}
}
