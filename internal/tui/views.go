package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/parlatoga/internal/tui/components"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// Fixed panel sizes.
const (
	sidebarWidth   = 18
	summaryHeight  = 4
	filtersHeight  = 3
	compactDetail  = 4
	chromeHeight   = 3 // border (2) + status bar (1)
	separatorWidth = 3
)

// renderLoading renders the screen shown before the first resize.
func (m Model) renderLoading() string {
	return m.theme.Title.Render("A carregar o parlamento...")
}

// renderCompactView stacks everything right of the sidebar and drops the charts.
func (m Model) renderCompactView() string {
	mainWidth := max(20, m.width-2-sidebarWidth-separatorWidth)
	usableHeight := m.height - chromeHeight

	m.sidebar.Resize(sidebarWidth, usableHeight)
	m.filters.Resize(mainWidth)
	m.detail.Resize(mainWidth)
	m.table.Resize(mainWidth, usableHeight-summaryHeight-filtersHeight-compactDetail-3)

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.summary.View(),
		"",
		m.filters.View(),
		"",
		m.table.View(),
		"",
		m.detail.View(),
	)

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebar.View(),
		m.theme.Separator.Render(" │ "),
		main,
	)
	return m.wrapWithBorder(content)
}

// renderMediumView adds a side column with the detail panel and the
// initiative-type chart.
func (m Model) renderMediumView() string {
	totalUsableWidth := m.width - 2 - sidebarWidth - 2*separatorWidth
	mainWidth := int(float64(totalUsableWidth) * 0.6)
	sideWidth := totalUsableWidth - mainWidth
	usableHeight := m.height - chromeHeight

	m.sidebar.Resize(sidebarWidth, usableHeight)
	m.filters.Resize(mainWidth)
	m.table.Resize(mainWidth, usableHeight-summaryHeight-filtersHeight-2)
	m.detail.Resize(sideWidth)
	m.charts.Resize(sideWidth)

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.summary.View(),
		"",
		m.filters.View(),
		"",
		m.table.View(),
	)
	side := lipgloss.JoinVertical(lipgloss.Left,
		m.detail.View(),
		"",
		m.charts.DonutView(),
	)

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebar.View(),
		m.theme.Separator.Render(" │ "),
		lipgloss.NewStyle().Width(mainWidth).Render(main),
		m.theme.Separator.Render(" │ "),
		side,
	)
	return m.wrapWithBorder(content)
}

// renderFullView shows both charts next to the detail panel.
func (m Model) renderFullView() string {
	totalUsableWidth := m.width - 2 - sidebarWidth - 2*separatorWidth
	mainWidth := int(float64(totalUsableWidth) * 0.55)
	sideWidth := totalUsableWidth - mainWidth
	usableHeight := m.height - chromeHeight

	m.sidebar.Resize(sidebarWidth, usableHeight)
	m.filters.Resize(mainWidth)
	m.table.Resize(mainWidth, usableHeight-summaryHeight-filtersHeight-2)
	m.detail.Resize(sideWidth)
	m.charts.Resize(sideWidth)

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.summary.View(),
		"",
		m.filters.View(),
		"",
		m.table.View(),
	)
	side := lipgloss.JoinVertical(lipgloss.Left,
		m.detail.View(),
		"",
		m.charts.View(),
	)

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebar.View(),
		m.theme.Separator.Render(" │ "),
		lipgloss.NewStyle().Width(mainWidth).Render(main),
		m.theme.Separator.Render(" │ "),
		side,
	)
	return m.wrapWithBorder(content)
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	title := m.theme.Title.Render("Parlatoga - Ajuda")

	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Navegação", m.keymap.FullHelp()[0]},
		{"Tabela", m.keymap.FullHelp()[1]},
		{"Filtros", m.keymap.FullHelp()[2]},
		{"Aplicação", m.keymap.FullHelp()[3]},
	}

	var content []string
	for _, section := range sections {
		content = append(content, m.theme.Subtitle.Render(section.title))
		for _, b := range section.bindings {
			h := b.Help()
			content = append(content, fmt.Sprintf("  %s %s",
				lipgloss.NewStyle().Foreground(m.theme.Primary).Width(10).Render(h.Key),
				m.theme.Normal.Render(h.Desc),
			))
		}
		content = append(content, "")
	}

	footer := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("? ou Esc fecha a ajuda")

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.
			Width(min(60, m.width-2)).
			MaxHeight(m.height).
			Render(lipgloss.JoinVertical(lipgloss.Left,
				title,
				"",
				lipgloss.JoinVertical(lipgloss.Left, content...),
				footer,
			)),
	)
}

// wrapWithBorder adds a border and the status bar around content.
func (m Model) wrapWithBorder(content string) string {
	fullContent := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.NewStyle().Height(max(1, m.height-chromeHeight)).MaxHeight(max(1, m.height-chromeHeight)).Render(content),
		m.renderStatusBar(),
	)

	return m.theme.BorderedBox.
		Padding(0).
		Width(max(1, m.width-2)).
		Render(fullContent)
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	var left, center, right string

	switch {
	case m.table.Mode() == components.ModeSearch:
		left = "Pesquisa"
	case m.focus == FocusTable:
		left = "Votações"
	default:
		left = "Proponentes"
	}
	left = m.theme.StatusInfo.Render(left)

	switch {
	case m.lastError != nil:
		center = m.theme.StatusError.Render(m.lastError.Error())
	case m.snapshot.Selection.HasProposer():
		center = m.theme.Normal.Render(fmt.Sprintf("%s · %d votações na tabela",
			m.snapshot.Selection.ProposerID(), len(m.snapshot.Aggregation.Rows)))
	default:
		center = m.theme.StatusPending.Render("Nenhum proponente selecionado")
	}

	if m.config.ShowHelp {
		right = m.help.ShortHelpView(m.keymap.ShortHelp())
	}

	width := max(0, m.width-4)
	gap := width - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if gap < 2 {
		return lipgloss.NewStyle().MaxWidth(width).Render(left + "  " + center)
	}
	pad := strings.Repeat(" ", gap/2)
	return left + pad + center + strings.Repeat(" ", gap-gap/2) + right
}
