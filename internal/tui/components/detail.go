package components

import (
	"strings"

	"github.com/Veraticus/parlatoga/internal/cli"
	"github.com/Veraticus/parlatoga/internal/model"
	"github.com/Veraticus/parlatoga/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// DetailPanelModel shows the vote behind the activated table cell.
type DetailPanelModel struct {
	theme  themes.Theme
	detail *model.DetailRecord
	width  int
}

// NewDetailPanel creates an empty detail panel.
func NewDetailPanel(theme themes.Theme) DetailPanelModel {
	return DetailPanelModel{theme: theme, width: 40}
}

// SetDetail replaces the shown record; nil empties the panel.
func (m *DetailPanelModel) SetDetail(d *model.DetailRecord) {
	m.detail = d
}

// Detail returns the shown record, nil when empty.
func (m DetailPanelModel) Detail() *model.DetailRecord {
	return m.detail
}

// Resize updates the component size.
func (m *DetailPanelModel) Resize(width int) {
	m.width = width
}

// View renders the panel.
func (m DetailPanelModel) View() string {
	heading := m.theme.Title.Render("Detalhe da votação")
	if m.detail == nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			heading,
			m.theme.Italic.Render("Enter numa célula ID_Voto mostra o detalhe."),
		)
	}

	wrap := lipgloss.NewStyle().Width(max(10, m.width))
	lines := []string{
		heading,
		wrap.Inherit(m.theme.Bold).Render(m.detail.Title),
	}
	if link := strings.TrimSpace(m.detail.TextLink); link != "" {
		lines = append(lines, m.theme.Subtitle.Render(cli.LinkIcon+" "+link))
	}
	lines = append(lines, m.theme.Italic.Render("@ iniciativa nº "+m.detail.InitiativeID))
	return strings.Join(lines, "\n")
}
