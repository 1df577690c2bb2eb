package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/parlatoga/internal/engine"
	"github.com/Veraticus/parlatoga/internal/tui/themes"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ChartsModel renders the initiative-type breakdown and the legislative
// funnel as horizontal bars.
type ChartsModel struct {
	theme  themes.Theme
	donut  engine.DonutProjection
	funnel engine.FunnelProjection
	width  int
}

// NewCharts creates an empty chart panel.
func NewCharts(theme themes.Theme) ChartsModel {
	return ChartsModel{
		theme:  theme,
		donut:  engine.DonutProjection{Empty: true},
		funnel: engine.FunnelProjection{Empty: true},
		width:  40,
	}
}

// SetProjections replaces the charted data.
func (m *ChartsModel) SetProjections(donut engine.DonutProjection, funnel engine.FunnelProjection) {
	m.donut = donut
	m.funnel = funnel
}

// Resize updates the component size.
func (m *ChartsModel) Resize(width int) {
	m.width = width
}

// View renders both charts stacked.
func (m ChartsModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.DonutView(),
		"",
		m.FunnelView(),
	)
}

// DonutView renders one bar per initiative type, colored by type.
func (m ChartsModel) DonutView() string {
	lines := []string{m.theme.Title.Render("Tipos de iniciativa")}

	switch {
	case m.donut.Empty:
		return strings.Join(append(lines, m.theme.Italic.Render("Escolha um proponente.")), "\n")
	case !m.donut.HasData():
		return strings.Join(append(lines, m.theme.Italic.Render(m.donut.Placeholder)), "\n")
	}

	barWidth := m.barWidth()
	for _, s := range m.donut.Slices {
		bar := progress.New(
			progress.WithSolidFill(s.Color),
			progress.WithoutPercentage(),
			progress.WithWidth(barWidth),
		)
		lines = append(lines,
			m.theme.Normal.Render(s.Label),
			bar.ViewAs(s.Percent/100),
		)
	}
	lines = append(lines, m.theme.Italic.Render(fmt.Sprintf("%d iniciativas", m.donut.Total)))
	return strings.Join(lines, "\n")
}

// FunnelView renders the funnel stages from the furthest stage down, each
// bar scaled to the largest stage.
func (m ChartsModel) FunnelView() string {
	lines := []string{m.theme.Title.Render("Funil legislativo")}

	switch {
	case m.funnel.Empty:
		return strings.Join(append(lines, m.theme.Italic.Render("Escolha um proponente.")), "\n")
	case !m.funnel.HasData():
		return strings.Join(append(lines, m.theme.Italic.Render(m.funnel.Placeholder)), "\n")
	}

	var peak float64
	labelWidth := 0
	for _, s := range m.funnel.Stages {
		peak = max(peak, s.Value)
		labelWidth = max(labelWidth, len([]rune(s.Label)))
	}

	barWidth := max(5, m.barWidth()-labelWidth-8)
	bar := progress.New(
		progress.WithSolidFill(string(m.theme.Primary)),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
	)
	for _, s := range m.funnel.Stages {
		ratio := 0.0
		if peak > 0 {
			ratio = s.Value / peak
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			m.theme.Normal.Render(padRight(s.Label, labelWidth)),
			bar.ViewAs(ratio),
			m.theme.Subtitle.Render(formatStageValue(s.Value)),
		))
	}
	return strings.Join(lines, "\n")
}

func (m ChartsModel) barWidth() int {
	return max(10, m.width-2)
}

func formatStageValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
