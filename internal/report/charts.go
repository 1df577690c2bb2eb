package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/parlatoga/internal/engine"
	"github.com/charmbracelet/lipgloss"
)

// DonutLegend lists the donut slices, each with a bar coloured like the
// slice and as wide as its share.
func DonutLegend(d engine.DonutProjection) string {
	if d.Empty {
		return ""
	}
	if !d.HasData() {
		return d.Placeholder
	}

	lines := make([]string, len(d.Slices))
	for i, s := range d.Slices {
		width := int(math.Round(s.Percent / 5))
		if width == 0 && s.Count > 0 {
			width = 1
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(strings.Repeat("●", width))
		lines[i] = fmt.Sprintf("%s %s", bar, s.Label)
	}
	return strings.Join(lines, "\n")
}

// FunnelBars draws one horizontal bar per stage, scaled so the largest value
// spans width cells.
func FunnelBars(f engine.FunnelProjection, width int) string {
	if f.Empty {
		return ""
	}
	if !f.HasData() {
		return f.Placeholder
	}

	maxValue := 0.0
	labelWidth := 0
	for _, s := range f.Stages {
		maxValue = math.Max(maxValue, s.Value)
		labelWidth = max(labelWidth, lipgloss.Width(s.Label))
	}

	lines := make([]string, len(f.Stages))
	for i, s := range f.Stages {
		n := 0
		if maxValue > 0 {
			n = int(math.Round(s.Value / maxValue * float64(width)))
		}
		label := s.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(s.Label))
		lines[i] = fmt.Sprintf("%s %s %s", label, strings.Repeat("█", n), formatValue(s.Value))
	}
	return strings.Join(lines, "\n")
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
