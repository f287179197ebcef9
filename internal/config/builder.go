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

// From starts the builder from an existing configuration, typically one
// loaded from a file, so flags can override it.
func From(cfg *Config) *ConfigBuilder {
	c := *cfg
	return &ConfigBuilder{cfg: &c}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithUnicode draws pieces as glyphs.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Display.Unicode = enabled
	return b
}

// WithColour sets the colour mode.
func (b *ConfigBuilder) WithColour(mode ColourMode) *ConfigBuilder {
	b.cfg.Display.Colour = mode
	return b
}

// WithReportFormat sets the scenario report format.
func (b *ConfigBuilder) WithReportFormat(format ReportFormat) *ConfigBuilder {
	b.cfg.Display.Format = format
	return b
}

// WithStart sets the board string a play session starts from.
func (b *ConfigBuilder) WithStart(boardString string) *ConfigBuilder {
	b.cfg.Play.Start = boardString
	return b
}

// WithHistoryFile sets the readline history file.
func (b *ConfigBuilder) WithHistoryFile(path string) *ConfigBuilder {
	b.cfg.Play.HistoryFile = path
	return b
}

// WithWorkers sets the number of concurrent scenario workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Verify.Workers = n
	return b
}

// WithFailFast stops verification at the first failure.
func (b *ConfigBuilder) WithFailFast(enabled bool) *ConfigBuilder {
	b.cfg.Verify.FailFast = enabled
	return b
}

// WithTags restricts verification to tagged scenarios.
func (b *ConfigBuilder) WithTags(tags ...string) *ConfigBuilder {
	b.cfg.Verify.Tags = tags
	return b
}
