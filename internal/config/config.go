// Package config provides configuration for the chessrules command.
//
// There is no process-wide instance: the command builds one Config and
// passes it to whatever needs it.
package config

import (
	"fmt"
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int `yaml:"verbosity" validate:"min=0,max=2"` // 0=quiet, 1=summary, 2=running commentary

	Display DisplayConfig `yaml:"display"`
	Play    PlayConfig    `yaml:"play"`
	Verify  VerifyConfig  `yaml:"verify"`

	// Output streams
	OutputFile io.Writer `yaml:"-" validate:"-"`
	LogFile    io.Writer `yaml:"-" validate:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Display:    *NewDisplayConfig(),
		Play:       *NewPlayConfig(),
		Verify:     *NewVerifyConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
