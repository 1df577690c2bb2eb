package components

import (
	"strings"

	"github.com/Veraticus/parlatoga/internal/model"
	"github.com/Veraticus/parlatoga/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SidebarModel is the proposer list. Separator rows are drawn but the cursor
// never rests on them.
type SidebarModel struct {
	theme    themes.Theme
	selected model.ProposerID
	items    []model.SidebarItem
	cursor   int
	width    int
	height   int
	focused  bool
}

// NewSidebar creates a sidebar over the standard layout with the cursor on
// the first proposer.
func NewSidebar(theme themes.Theme) SidebarModel {
	m := SidebarModel{
		items:   model.SidebarLayout(),
		theme:   theme,
		width:   20,
		focused: true,
	}
	m.cursor = m.nextSelectable(-1, 1)
	return m
}

// Update handles messages.
func (m SidebarModel) Update(msg tea.Msg) (SidebarModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		m.cursor = m.nextSelectable(m.cursor, -1)
		return m, m.choose()
	case "down", "j":
		m.cursor = m.nextSelectable(m.cursor, 1)
		return m, m.choose()
	case "home", "g":
		m.cursor = m.nextSelectable(-1, 1)
		return m, m.choose()
	case "end", "G":
		m.cursor = m.nextSelectable(len(m.items), -1)
		return m, m.choose()
	case "enter", " ":
		return m, m.choose()
	}
	return m, nil
}

// choose emits a selection for the row under the cursor unless it is
// already the selected proposer.
func (m *SidebarModel) choose() tea.Cmd {
	item := m.items[m.cursor]
	if !item.Selectable() || item.Proposer.ID == m.selected {
		return nil
	}
	m.selected = item.Proposer.ID
	id := item.Proposer.ID
	return func() tea.Msg {
		return ProposerSelectedMsg{ID: id}
	}
}

// nextSelectable walks from index in direction dir and returns the first
// proposer row, or index itself when the walk runs off the list.
func (m SidebarModel) nextSelectable(index, dir int) int {
	for i := index + dir; i >= 0 && i < len(m.items); i += dir {
		if m.items[i].Selectable() {
			return i
		}
	}
	if index < 0 || index >= len(m.items) {
		return 0
	}
	return index
}

// Current returns the item under the cursor.
func (m SidebarModel) Current() model.SidebarItem {
	return m.items[m.cursor]
}

// Selected returns the proposer the sidebar last emitted.
func (m SidebarModel) Selected() model.ProposerID {
	return m.selected
}

// SetSelected moves the cursor to id without emitting a selection.
func (m *SidebarModel) SetSelected(id model.ProposerID) {
	for i, item := range m.items {
		if item.Selectable() && item.Proposer.ID == id {
			m.cursor = i
			m.selected = id
			return
		}
	}
}

// Focus gives the sidebar keyboard focus.
func (m *SidebarModel) Focus() { m.focused = true }

// Blur removes keyboard focus.
func (m *SidebarModel) Blur() { m.focused = false }

// Focused reports whether the sidebar has focus.
func (m SidebarModel) Focused() bool { return m.focused }

// Resize updates the component size.
func (m *SidebarModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the sidebar.
func (m SidebarModel) View() string {
	lines := make([]string, 0, len(m.items)+2)
	lines = append(lines, m.theme.Title.Render("Proponentes"), "")

	for i, item := range m.items {
		if !item.Selectable() {
			lines = append(lines, m.theme.Separator.Render(truncate(item.Label, m.width)))
			continue
		}

		label := truncate(item.Label, m.width-2)
		switch {
		case item.Proposer.ID == m.selected:
			label = m.theme.Selected.Render(" " + label + " ")
		case i == m.cursor && m.focused:
			label = m.theme.Highlighted.Render(" " + label + " ")
		default:
			label = m.theme.Normal.Render(" " + label)
		}
		lines = append(lines, label)
	}

	return lipgloss.NewStyle().Width(m.width).Render(strings.Join(lines, "\n"))
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// ClearSelected forgets the selected proposer, keeping the cursor in place.
func (m *SidebarModel) ClearSelected() {
	m.selected = ""
}
