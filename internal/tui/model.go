// Package tui implements the interactive parliamentary voting dashboard.
package tui

import (
	"log/slog"

	"github.com/Veraticus/parlatoga/internal/engine"
	"github.com/Veraticus/parlatoga/internal/tui/components"
	"github.com/Veraticus/parlatoga/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// State represents the current state of the TUI.
type State int

const (
	StateDashboard State = iota
	StateHelp
)

// Focus names the panel receiving movement keys.
type Focus int

const (
	FocusSidebar Focus = iota
	FocusTable
)

// Model holds the main TUI state. Every event goes through the dashboard
// and the returned snapshot is pushed into the components; the components
// never compute anything themselves.
type Model struct {
	theme     themes.Theme
	lastError error
	dashboard *engine.Dashboard
	snapshot  engine.Snapshot
	keymap    KeyMap
	help      help.Model
	config    Config
	sidebar   components.SidebarModel
	filters   components.FiltersModel
	table     components.VoteTableModel
	charts    components.ChartsModel
	detail    components.DetailPanelModel
	summary   components.SummaryModel
	state     State
	focus     Focus
	width     int
	height    int
	quitting  bool
}

// New creates the dashboard model.
func New(dashboard *engine.Dashboard, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := Model{
		dashboard: dashboard,
		config:    cfg,
		theme:     cfg.Theme,
		keymap:    DefaultKeyMap(),
		help:      newHelp(cfg.Theme),
		width:     cfg.Width,
		height:    cfg.Height,
		sidebar:   components.NewSidebar(cfg.Theme),
		filters:   components.NewFilters(cfg.Theme),
		table:     components.NewVoteTable(cfg.Theme),
		charts:    components.NewCharts(cfg.Theme),
		detail:    components.NewDetailPanel(cfg.Theme),
		summary:   components.NewSummary(cfg.Theme),
		focus:     FocusSidebar,
	}
	m.apply(dashboard.Snapshot())
	m.handleResize()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.config.Proposer == "" {
		return nil
	}
	id := m.config.Proposer
	return func() tea.Msg {
		return components.ProposerSelectedMsg{ID: id}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case components.ProposerSelectedMsg:
		snap, err := m.dashboard.SelectProposerID(msg.ID)
		m.settle(snap, err)
		m.sidebar.SetSelected(snap.Selection.ProposerID())
		return m, nil

	case components.FilterChangedMsg:
		var (
			snap engine.Snapshot
			err  error
		)
		switch msg.Field {
		case components.FilterCohesion:
			snap, err = m.dashboard.SetCohesion(msg.Value)
		case components.FilterUnanimity:
			snap, err = m.dashboard.SetUnanimity(msg.Value)
		case components.FilterApproval:
			snap, err = m.dashboard.SetApproval(msg.Value)
		}
		m.settle(snap, err)
		return m, nil

	case components.CellActivatedMsg:
		snap := m.dashboard.ActivateCell(msg.Rows, msg.Cell)
		m.snapshot = snap
		m.detail.SetDetail(snap.Detail)
		m.lastError = nil
		return m, nil
	}

	// Anything else (cursor blinks) belongs to the table's search input.
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return m.renderLoading()
	}
	if m.state == StateHelp {
		return m.renderHelp()
	}

	// Responsive layout based on terminal size
	if m.width < 80 {
		return m.renderCompactView()
	}
	if m.width < 120 {
		return m.renderMediumView()
	}
	return m.renderFullView()
}

// handleKey routes a key press. A table in search mode swallows everything
// except a forced quit.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.table.Mode() == components.ModeSearch {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	if m.state == StateHelp {
		if key.Matches(msg, m.keymap.Help, m.keymap.ClearProposer) || msg.String() == "q" {
			m.state = StateDashboard
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.state = StateHelp
		return m, nil

	case key.Matches(msg, m.keymap.ClearScreen):
		return m, tea.ClearScreen

	case key.Matches(msg, m.keymap.SwitchFocus):
		m.toggleFocus()
		return m, nil

	case key.Matches(msg, m.keymap.Cohesion):
		return m, m.filters.Cycle(components.FilterCohesion)

	case key.Matches(msg, m.keymap.Unanimity):
		return m, m.filters.Cycle(components.FilterUnanimity)

	case key.Matches(msg, m.keymap.Approval):
		return m, m.filters.Cycle(components.FilterApproval)

	case key.Matches(msg, m.keymap.ClearFilters):
		m.settle(m.dashboard.ClearFilters(), nil)
		return m, nil

	case key.Matches(msg, m.keymap.ClearProposer):
		m.settle(m.dashboard.ClearProposer(), nil)
		m.sidebar.ClearSelected()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case FocusSidebar:
		m.sidebar, cmd = m.sidebar.Update(msg)
	case FocusTable:
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

// settle applies the outcome of a dashboard event. A rejected event keeps
// the previous snapshot on screen and shows the error.
func (m *Model) settle(snap engine.Snapshot, err error) {
	if err != nil {
		slog.Warn("Dashboard event rejected", "error", err)
		m.lastError = err
		return
	}
	m.lastError = nil
	m.apply(snap)
}

// apply pushes a snapshot into every panel.
func (m *Model) apply(snap engine.Snapshot) {
	m.snapshot = snap
	m.summary.SetSnapshot(snap)
	m.filters.SetSelection(snap.Selection)
	m.table.SetRows(snap.Aggregation.Rows)
	m.charts.SetProjections(snap.Donut, snap.Funnel)
	m.detail.SetDetail(snap.Detail)
}

func (m *Model) toggleFocus() {
	if m.focus == FocusSidebar {
		m.focus = FocusTable
		m.sidebar.Blur()
		m.table.Focus()
		return
	}
	m.focus = FocusSidebar
	m.table.Blur()
	m.sidebar.Focus()
}

// Snapshot returns the snapshot currently on screen.
func (m Model) Snapshot() engine.Snapshot {
	return m.snapshot
}

// Focus returns the panel receiving movement keys.
func (m Model) Focus() Focus {
	return m.focus
}

// State returns the current screen.
func (m Model) State() State {
	return m.state
}

// LastError returns the error of the last rejected event, if any.
func (m Model) LastError() error {
	return m.lastError
}

// Table exposes the vote table for inspection.
func (m Model) Table() components.VoteTableModel {
	return m.table
}

func newHelp(theme themes.Theme) help.Model {
	h := help.New()
	h.ShortSeparator = " · "
	h.Styles.ShortKey = h.Styles.ShortKey.Foreground(theme.Primary)
	h.Styles.ShortDesc = h.Styles.ShortDesc.Foreground(theme.Muted)
	h.Styles.ShortSeparator = h.Styles.ShortSeparator.Foreground(theme.Border)
	return h
}

// handleResize sizes the stateful components so paging in Update matches
// what the next View draws.
func (m *Model) handleResize() {
	usableHeight := max(1, m.height-chromeHeight)
	m.sidebar.Resize(sidebarWidth, usableHeight)
	m.table.Resize(max(20, m.width-sidebarWidth-2*separatorWidth), usableHeight-summaryHeight-filtersHeight-2)
	m.help.Width = max(0, m.width/2)
}
