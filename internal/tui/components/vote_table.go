package components

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Veraticus/parlatoga/internal/engine"
	"github.com/Veraticus/parlatoga/internal/model"
	"github.com/Veraticus/parlatoga/internal/tui/themes"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Column headers in display order.
var voteColumns = [...]string{
	engine.ColumnVoteID:     "ID_Voto",
	engine.ColumnContra:     "Contra",
	engine.ColumnFavor:      "A Favor",
	engine.ColumnAbstention: "Abstenção",
}

// TableMode represents the current mode of the table.
type TableMode int

// Table modes.
const (
	ModeNormal TableMode = iota
	ModeSearch
)

// SortConfig holds sort settings.
type SortConfig struct {
	Column    int
	Ascending bool
	Active    bool
}

// VoteTableModel shows the filtered votes with a movable cell cursor.
type VoteTableModel struct {
	theme       themes.Theme
	query       string
	rows        []model.VoteRow
	visible     []model.VoteRow
	searchInput textinput.Model
	table       table.Model
	sort        SortConfig
	mode        TableMode
	column      int
	width       int
	height      int
	focused     bool
}

// NewVoteTable creates an empty vote table.
func NewVoteTable(theme themes.Theme) VoteTableModel {
	t := table.New(
		table.WithColumns(columnsFor(engine.ColumnVoteID, SortConfig{}, 12)),
		table.WithFocused(false),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	searchInput := textinput.New()
	searchInput.Placeholder = "ID da votação..."
	searchInput.CharLimit = 20

	return VoteTableModel{
		theme:       theme,
		table:       t,
		searchInput: searchInput,
		width:       60,
		height:      12,
	}
}

// SetRows replaces the table contents. The search query and sort order
// survive so the view stays stable across filter changes.
func (m *VoteTableModel) SetRows(rows []model.VoteRow) {
	m.rows = rows
	m.applyView()
	m.table.SetCursor(0)
}

// Update handles messages.
func (m VoteTableModel) Update(msg tea.Msg) (VoteTableModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode == ModeSearch {
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if !m.focused {
		return m, nil
	}

	if m.mode == ModeSearch {
		return m, m.handleSearchMode(keyMsg)
	}

	switch keyMsg.String() {
	case "left", "h":
		m.column = max(m.column-1, engine.ColumnVoteID)
		m.table.SetColumns(columnsFor(m.column, m.sort, m.columnWidth()))
		return m, nil

	case "right", "l":
		m.column = min(m.column+1, engine.ColumnAbstention)
		m.table.SetColumns(columnsFor(m.column, m.sort, m.columnWidth()))
		return m, nil

	case "s":
		if m.sort.Active && m.sort.Column == m.column {
			m.sort.Ascending = !m.sort.Ascending
		} else {
			m.sort = SortConfig{Column: m.column, Ascending: true, Active: true}
		}
		m.applyView()
		return m, nil

	case "/":
		m.mode = ModeSearch
		m.searchInput.SetValue(m.query)
		m.searchInput.Focus()
		return m, textinput.Blink

	case "enter":
		return m, m.activate()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleSearchMode handles key presses in search mode.
func (m *VoteTableModel) handleSearchMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.query = strings.TrimSpace(m.searchInput.Value())
		m.mode = ModeNormal
		m.searchInput.Blur()
		m.applyView()
		m.table.SetCursor(0)

	case "esc":
		m.query = ""
		m.mode = ModeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.applyView()

	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return cmd
	}
	return nil
}

// activate reports the cell under the cursor together with the rows it
// indexes into.
func (m VoteTableModel) activate() tea.Cmd {
	row := m.table.Cursor()
	if row < 0 || row >= len(m.visible) {
		return nil
	}
	rows := make([]model.VoteRow, len(m.visible))
	copy(rows, m.visible)
	cell := engine.ActiveCell{Row: row, Column: m.column}
	return func() tea.Msg {
		return CellActivatedMsg{Rows: rows, Cell: cell}
	}
}

// applyView rebuilds the visible rows from the search query and sort order.
func (m *VoteTableModel) applyView() {
	visible := make([]model.VoteRow, 0, len(m.rows))
	for _, r := range m.rows {
		if m.query == "" || strings.Contains(r.VoteID, m.query) {
			visible = append(visible, r)
		}
	}

	if m.sort.Active {
		col, asc := m.sort.Column, m.sort.Ascending
		sort.SliceStable(visible, func(i, j int) bool {
			if asc {
				return lessByColumn(visible[i], visible[j], col)
			}
			return lessByColumn(visible[j], visible[i], col)
		})
	}

	m.visible = visible
	m.table.SetColumns(columnsFor(m.column, m.sort, m.columnWidth()))
	m.table.SetRows(buildTableRows(visible))
}

func lessByColumn(a, b model.VoteRow, column int) bool {
	switch column {
	case engine.ColumnContra:
		return a.Contra < b.Contra
	case engine.ColumnFavor:
		return a.Favor < b.Favor
	case engine.ColumnAbstention:
		return a.Abstention < b.Abstention
	}
	ai, aErr := strconv.Atoi(a.VoteID)
	bi, bErr := strconv.Atoi(b.VoteID)
	if aErr == nil && bErr == nil {
		return ai < bi
	}
	return a.VoteID < b.VoteID
}

func buildTableRows(rows []model.VoteRow) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, table.Row{
			r.VoteID,
			strconv.Itoa(r.Contra),
			strconv.Itoa(r.Favor),
			strconv.Itoa(r.Abstention),
		})
	}
	return out
}

// columnsFor marks the active column with a cursor and the sorted column
// with its direction.
func columnsFor(active int, sortCfg SortConfig, width int) []table.Column {
	cols := make([]table.Column, 0, len(voteColumns))
	for i, title := range voteColumns {
		if sortCfg.Active && sortCfg.Column == i {
			if sortCfg.Ascending {
				title += " ↑"
			} else {
				title += " ↓"
			}
		}
		if i == active {
			title = "▸" + title
		}
		cols = append(cols, table.Column{Title: title, Width: width})
	}
	return cols
}

func (m VoteTableModel) columnWidth() int {
	return max(8, (m.width-8)/len(voteColumns))
}

// Rows returns the rows in display order.
func (m VoteTableModel) Rows() []model.VoteRow {
	return m.visible
}

// Column returns the column under the cell cursor.
func (m VoteTableModel) Column() int {
	return m.column
}

// Cursor returns the row under the cell cursor.
func (m VoteTableModel) Cursor() int {
	return m.table.Cursor()
}

// Mode returns the current input mode.
func (m VoteTableModel) Mode() TableMode {
	return m.mode
}

// Query returns the active vote ID search.
func (m VoteTableModel) Query() string {
	return m.query
}

// Focus gives the table keyboard focus.
func (m *VoteTableModel) Focus() {
	m.focused = true
	m.table.Focus()
}

// Blur removes keyboard focus.
func (m *VoteTableModel) Blur() {
	m.focused = false
	m.table.Blur()
}

// Focused reports whether the table has focus.
func (m VoteTableModel) Focused() bool {
	return m.focused
}

// Resize updates the component size.
func (m *VoteTableModel) Resize(width, height int) {
	m.width = width
	m.height = height
	// Chrome: title, status line, column header and its border, footer.
	m.table.SetHeight(max(1, height-5))
	m.table.SetColumns(columnsFor(m.column, m.sort, m.columnWidth()))
}

// View renders the table.
func (m VoteTableModel) View() string {
	title := m.theme.Title.Render("Votações")

	status := fmt.Sprintf("%d votações", len(m.visible))
	if m.query != "" {
		status += fmt.Sprintf(" | ID contém %q", m.query)
	}

	var body string
	switch {
	case m.mode == ModeSearch:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.searchInput.View(),
			m.theme.Italic.Render("Enter para pesquisar, Esc para cancelar"))
	case len(m.rows) == 0:
		body = m.theme.Italic.Render("Escolha um proponente e um filtro para listar votações.")
	default:
		body = m.table.View()
	}

	hints := m.theme.Italic.Render("[←→] Coluna  [Enter] Detalhe  [s] Ordenar  [/] Pesquisar")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.theme.Subtitle.Render(status),
		body,
		hints,
	)
}
