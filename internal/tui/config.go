package tui

import (
	"github.com/Veraticus/parlatoga/internal/model"
	"github.com/Veraticus/parlatoga/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme    themes.Theme
	Proposer model.ProposerID
	Width    int
	Height   int
	ShowHelp bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:    themes.Default,
		Width:    80,
		Height:   24,
		ShowHelp: true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithProposer preselects a proposer when the dashboard opens.
func WithProposer(id model.ProposerID) Option {
	return func(c *Config) {
		c.Proposer = id
	}
}

// WithHelpHints toggles the key hints in the status bar.
func WithHelpHints(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
