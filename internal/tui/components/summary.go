package components

import (
	"strings"

	"github.com/Veraticus/parlatoga/internal/engine"
	"github.com/Veraticus/parlatoga/internal/tui/themes"
)

// SummaryModel shows the three outcome splits for the selected proposer.
type SummaryModel struct {
	theme       themes.Theme
	description string
	agg         engine.Aggregation
}

// NewSummary creates an empty summary panel.
func NewSummary(theme themes.Theme) SummaryModel {
	return SummaryModel{theme: theme}
}

// SetSnapshot syncs the panel with a dashboard snapshot.
func (m *SummaryModel) SetSnapshot(snap engine.Snapshot) {
	m.agg = snap.Aggregation
	m.description = snap.Description
}

// View renders the summary lines.
func (m SummaryModel) View() string {
	if !m.agg.Selected {
		return m.theme.Italic.Render("Nenhum proponente selecionado.")
	}

	lines := []string{m.theme.Title.Render(m.description)}
	for _, l := range []struct{ label, value string }{
		{"Coesão", engine.FormatCohesion(m.agg)},
		{"Unanimidade", engine.FormatUnanimity(m.agg)},
		{"Aprovação", engine.FormatApproval(m.agg)},
	} {
		lines = append(lines, m.theme.Subtitle.Render(padRight(l.label, 12))+m.theme.Normal.Render(l.value))
	}
	return strings.Join(lines, "\n")
}
