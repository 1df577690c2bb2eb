// Package themes holds the color schemes the dashboard can be drawn with.
package themes

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Italic        lipgloss.Style
	Selected      lipgloss.Style
	Highlighted   lipgloss.Style
	Separator     lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	FocusedBox    lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusPending lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Background    lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
	Name          string
}

// Default is the orange-on-black scheme of the published dashboard.
var Default = newTheme("default", palette{
	primary:    "#f5970a",
	secondary:  "#ffb84d",
	muted:      "#8a8a8a",
	border:     "#3a3a3a",
	foreground: "#f5f5f5",
	background: "#000000",
	surface:    "#1f1f1f",
	err:        "#ef4444",
	success:    "#10b981",
})

// CatppuccinMocha is a softer dark scheme.
var CatppuccinMocha = newTheme("catppuccin-mocha", palette{
	primary:    "#fab387",
	secondary:  "#f5c2e7",
	muted:      "#6c7086",
	border:     "#45475a",
	foreground: "#cdd6f4",
	background: "#1e1e2e",
	surface:    "#313244",
	err:        "#f38ba8",
	success:    "#a6e3a1",
})

var registry = map[string]Theme{
	Default.Name:         Default,
	CatppuccinMocha.Name: CatppuccinMocha,
}

type palette struct {
	primary    string
	secondary  string
	muted      string
	border     string
	foreground string
	background string
	surface    string
	err        string
	success    string
}

func newTheme(name string, p palette) Theme {
	fg := lipgloss.Color(p.foreground)

	return Theme{
		Name:       name,
		Primary:    lipgloss.Color(p.primary),
		Secondary:  lipgloss.Color(p.secondary),
		Muted:      lipgloss.Color(p.muted),
		Border:     lipgloss.Color(p.border),
		Foreground: fg,
		Background: lipgloss.Color(p.background),
		Error:      lipgloss.Color(p.err),
		Success:    lipgloss.Color(p.success),

		// Text styles
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.primary)),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.secondary)),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Italic: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color(p.muted)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.primary)).
			Foreground(lipgloss.Color(p.background)).
			Bold(true),
		Highlighted: lipgloss.NewStyle().
			Background(lipgloss.Color(p.surface)).
			Foreground(fg),
		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.border)),

		// Component styles
		Box: lipgloss.NewStyle().
			Padding(0, 1),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),
		FocusedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.primary)).
			Padding(0, 1),

		// Status styles
		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.primary)).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.err)).
			Bold(true),
		StatusPending: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)).
			Italic(true),
	}
}

// GetTheme returns a theme by name, falling back to Default.
func GetTheme(name string) Theme {
	if t, ok := registry[name]; ok {
		return t
	}
	return Default
}

// Lookup returns a theme by name and whether it exists.
func Lookup(name string) (Theme, bool) {
	t, ok := registry[name]
	return t, ok
}

// Names lists the registered theme names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
