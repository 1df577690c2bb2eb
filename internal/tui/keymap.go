package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard-level shortcuts. Movement inside a panel is
// handled by the focused component.
type KeyMap struct {
	// Navigation
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	SwitchFocus key.Binding

	// Actions
	Select        key.Binding
	Cohesion      key.Binding
	Unanimity     key.Binding
	Approval      key.Binding
	ClearFilters  key.Binding
	ClearProposer key.Binding
	Search        key.Binding
	Sort          key.Binding

	// Application
	Help        key.Binding
	Quit        key.Binding
	ClearScreen key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "previous column"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next column"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("Tab", "switch panel"),
		),

		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "select / show detail"),
		),
		Cohesion: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle cohesion"),
		),
		Unanimity: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "cycle unanimity"),
		),
		Approval: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "cycle approval"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		ClearProposer: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "clear proposer"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search vote ID"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort column"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/Ctrl+C", "quit"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "clear screen"),
		),
	}
}

// ShortHelp returns key bindings for the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchFocus, k.Cohesion, k.Unanimity, k.Approval, k.Help, k.Quit}
}

// FullHelp returns all key bindings grouped for the help screen.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.SwitchFocus},
		{k.Select, k.Search, k.Sort},
		{k.Cohesion, k.Unanimity, k.Approval, k.ClearFilters, k.ClearProposer},
		{k.Help, k.ClearScreen, k.Quit},
	}
}
