package components

import (
	"strings"

	"github.com/Veraticus/parlatoga/internal/model"
	"github.com/Veraticus/parlatoga/internal/selection"
	"github.com/Veraticus/parlatoga/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
)

// allLabel marks a cleared filter.
const allLabel = "Todos"

type filterOption struct {
	value string
	label string
}

// filterRow is one outcome filter: its heading, key hint and options in
// cycle order. The first option is always the cleared state.
type filterRow struct {
	title   string
	key     string
	options []filterOption
	current int
}

// FiltersModel shows the three outcome filters and cycles them on request.
type FiltersModel struct {
	theme themes.Theme
	rows  [3]filterRow
	width int
}

// NewFilters creates the filter panel with every filter cleared.
func NewFilters(theme themes.Theme) FiltersModel {
	cohesion := []filterOption{{label: allLabel}}
	for _, c := range model.CohesionValues() {
		cohesion = append(cohesion, filterOption{value: string(c), label: c.Label()})
	}
	unanimity := []filterOption{{label: allLabel}}
	for _, u := range model.UnanimityValues() {
		unanimity = append(unanimity, filterOption{value: string(u), label: u.Label()})
	}
	approval := []filterOption{{label: allLabel}}
	for _, a := range model.ApprovalValues() {
		approval = append(approval, filterOption{value: string(a), label: a.Label()})
	}

	return FiltersModel{
		theme: theme,
		width: 40,
		rows: [3]filterRow{
			FilterCohesion:  {title: "Coesão", key: "c", options: cohesion},
			FilterUnanimity: {title: "Unanimidade", key: "u", options: unanimity},
			FilterApproval:  {title: "Aprovação", key: "a", options: approval},
		},
	}
}

// Cycle advances field to its next option and returns the command that
// reports the change. The panel itself only moves once the dashboard
// confirms through SetSelection.
func (m FiltersModel) Cycle(field FilterField) tea.Cmd {
	row := m.rows[field]
	next := row.options[(row.current+1)%len(row.options)]
	return func() tea.Msg {
		return FilterChangedMsg{Field: field, Value: next.value}
	}
}

// SetSelection syncs the panel with the dashboard's current selection.
func (m *FiltersModel) SetSelection(sel selection.Snapshot) {
	m.rows[FilterCohesion].current = indexOf(m.rows[FilterCohesion].options, ptrValue(sel.Cohesion))
	m.rows[FilterUnanimity].current = indexOf(m.rows[FilterUnanimity].options, ptrValue(sel.Unanimity))
	m.rows[FilterApproval].current = indexOf(m.rows[FilterApproval].options, ptrValue(sel.Approval))
}

// Value returns the active value of field, empty when cleared.
func (m FiltersModel) Value(field FilterField) string {
	row := m.rows[field]
	return row.options[row.current].value
}

// Resize updates the component size.
func (m *FiltersModel) Resize(width int) {
	m.width = width
}

// View renders the filter panel.
func (m FiltersModel) View() string {
	lines := make([]string, 0, len(m.rows))
	for _, row := range m.rows {
		opts := make([]string, 0, len(row.options))
		for i, opt := range row.options {
			if i == row.current {
				opts = append(opts, m.theme.Selected.Render(" "+opt.label+" "))
			} else {
				opts = append(opts, m.theme.Italic.Render(opt.label))
			}
		}
		head := m.theme.Subtitle.Render(padRight(row.title, 12)) +
			m.theme.Italic.Render("["+row.key+"] ")
		lines = append(lines, head+strings.Join(opts, " "))
	}
	return strings.Join(lines, "\n")
}

func indexOf(options []filterOption, value string) int {
	for i, opt := range options {
		if opt.value == value {
			return i
		}
	}
	return 0
}

func ptrValue[T ~string](p *T) string {
	if p == nil {
		return ""
	}
	return string(*p)
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
