// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// commonFlags are accepted by every subcommand.
type commonFlags struct {
	configFile string
	verbosity  int
	quiet      bool
	logFile    string
	appendLog  string
	unicode    bool
	colour     string
	flip       bool
	noCoords   bool
}

func (f *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configFile, "config", "", "YAML configuration file")
	fs.IntVar(&f.verbosity, "v", 1, "Verbosity: 0 quiet, 1 summary, 2 per-move commentary")
	fs.BoolVar(&f.quiet, "q", false, "Quiet mode (same as -v 0)")
	fs.StringVar(&f.logFile, "l", "", "Write diagnostics to this file")
	fs.StringVar(&f.appendLog, "L", "", "Append diagnostics to this file")
	fs.BoolVar(&f.unicode, "unicode", false, "Draw pieces as chess glyphs")
	fs.StringVar(&f.colour, "colour", string(config.ColourAuto), "Colour output: auto, always, never")
	fs.BoolVar(&f.flip, "flip", false, "Draw the board from Black's side")
	fs.BoolVar(&f.noCoords, "nocoords", false, "Don't draw file letters and rank digits")
}

// newFlagSet returns a flag set that reports errors instead of exiting.
func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	cf := &commonFlags{}
	cf.register(fs)
	return fs, cf
}

// loadConfig builds the configuration in three layers: defaults, the
// config file, then the flags set on the command line. The returned
// function closes any log file that was opened.
func (f *commonFlags) loadConfig(fs *flag.FlagSet, stdout, stderr io.Writer) (*config.Config, func(), error) {
	cfg := config.NewConfig()
	if f.configFile != "" {
		loaded, err := config.LoadFile(f.configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	b := config.From(cfg).WithOutput(stdout).WithLog(stderr)
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "v":
			b.WithVerbosity(f.verbosity)
		case "unicode":
			b.WithUnicode(f.unicode)
		case "colour":
			b.WithColour(config.ColourMode(f.colour))
		}
	})
	if f.quiet {
		b.WithVerbosity(0)
	}
	cfg = b.Build()

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "flip":
			cfg.Display.Flipped = f.flip
		case "nocoords":
			cfg.Display.Coordinates = !f.noCoords
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	closeLog, err := f.setupLogFile(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, closeLog, nil
}

// setupLogFile points cfg.LogFile at the file named by -l or -L.
func (f *commonFlags) setupLogFile(cfg *config.Config) (func(), error) {
	var (
		file *os.File
		err  error
	)
	switch {
	case f.logFile != "":
		file, err = os.Create(f.logFile)
	case f.appendLog != "":
		file, err = os.OpenFile(f.appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	default:
		return func() {}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	cfg.SetLog(file)
	return func() { file.Close() }, nil
}
