package config

// PlayConfig holds settings for the interactive session.
type PlayConfig struct {
	// Start is the board string the session begins from; empty means the
	// standard position
	Start string `yaml:"start"`

	// HistoryFile keeps readline history between sessions
	HistoryFile string `yaml:"history_file"`

	// Prompt is shown before each command
	Prompt string `yaml:"prompt" validate:"max=32"`

	// ShowMoves lists the legal moves after every ply
	ShowMoves bool `yaml:"show_moves"`
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		Prompt: "> ",
	}
}
