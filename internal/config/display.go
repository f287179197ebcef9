package config

// ColourMode selects when ANSI colours are used.
type ColourMode string

const (
	ColourAuto   ColourMode = "auto"
	ColourAlways ColourMode = "always"
	ColourNever  ColourMode = "never"
)

// ReportFormat selects how scenario results are written.
type ReportFormat string

const (
	TextReport ReportFormat = "text"
	JSONReport ReportFormat = "json"
)

// DisplayConfig holds settings related to board and report output.
type DisplayConfig struct {
	// Unicode draws pieces as chess glyphs instead of letters
	Unicode bool `yaml:"unicode"`

	// Colour controls ANSI colouring of the board
	Colour ColourMode `yaml:"colour" validate:"oneof=auto always never"`

	// Coordinates prints file letters and rank digits around the board
	Coordinates bool `yaml:"coordinates"`

	// Flipped draws the board from Black's side
	Flipped bool `yaml:"flipped"`

	// Format selects the scenario report format
	Format ReportFormat `yaml:"format" validate:"oneof=text json"`
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Colour:      ColourAuto,
		Coordinates: true,
		Format:      TextReport,
	}
}

// UseColour resolves the colour mode against whether the output is a
// terminal.
func (d *DisplayConfig) UseColour(isTerminal bool) bool {
	switch d.Colour {
	case ColourAlways:
		return true
	case ColourNever:
		return false
	default:
		return isTerminal
	}
}
