// Package report renders a dashboard snapshot for non-interactive output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/parlatoga/internal/cli"
	"github.com/Veraticus/parlatoga/internal/common"
	"github.com/Veraticus/parlatoga/internal/engine"
	"github.com/Veraticus/parlatoga/internal/model"
	"gopkg.in/yaml.v3"
)

// Format selects how a report is written.
type Format string

// Supported formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("%w: output format %q (use table, json or yaml)", common.ErrInvalidConfig, value)
	}
}

// Filters echoes the active outcome filters.
type Filters struct {
	Cohesion  string `json:"cohesion,omitempty" yaml:"cohesion,omitempty"`
	Unanimity string `json:"unanimity,omitempty" yaml:"unanimity,omitempty"`
	Approval  string `json:"approval,omitempty" yaml:"approval,omitempty"`
}

// Summary is the machine-readable form of a snapshot.
type Summary struct {
	Detail      *model.DetailRecord     `json:"detail,omitempty" yaml:"detail,omitempty"`
	Proposer    string                  `json:"proposer" yaml:"proposer"`
	Description string                  `json:"description" yaml:"description"`
	Filters     Filters                 `json:"filters" yaml:"filters"`
	Donut       engine.DonutProjection  `json:"donut" yaml:"donut"`
	Funnel      engine.FunnelProjection `json:"funnel" yaml:"funnel"`
	Cohesion    engine.BinarySummary    `json:"cohesion" yaml:"cohesion"`
	Unanimity   engine.BinarySummary    `json:"unanimity" yaml:"unanimity"`
	Approval    engine.BinarySummary    `json:"approval" yaml:"approval"`
	Rows        []model.VoteRow         `json:"rows" yaml:"rows"`
}

// NewSummary flattens a snapshot.
func NewSummary(snap engine.Snapshot) Summary {
	sel := snap.Selection
	s := Summary{
		Proposer:    string(sel.ProposerID()),
		Description: snap.Description,
		Cohesion:    snap.Aggregation.Cohesion,
		Unanimity:   snap.Aggregation.Unanimity,
		Approval:    snap.Aggregation.Approval,
		Rows:        snap.Aggregation.Rows,
		Donut:       snap.Donut,
		Funnel:      snap.Funnel,
		Detail:      snap.Detail,
	}
	if s.Rows == nil {
		s.Rows = []model.VoteRow{}
	}
	if sel.Cohesion != nil {
		s.Filters.Cohesion = string(*sel.Cohesion)
	}
	if sel.Unanimity != nil {
		s.Filters.Unanimity = string(*sel.Unanimity)
	}
	if sel.Approval != nil {
		s.Filters.Approval = string(*sel.Approval)
	}
	return s
}

// Write renders snap to w in the given format.
func Write(w io.Writer, snap engine.Snapshot, format Format) error {
	return Encode(w, NewSummary(snap), format, func(w io.Writer) error {
		return writeTable(w, snap)
	})
}

// Encode writes data as JSON or YAML, or calls table for the table format.
func Encode(w io.Writer, data any, format Format, table func(io.Writer) error) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil

	case FormatTable, "":
		return table(w)

	default:
		return fmt.Errorf("%w: output format %q", common.ErrInvalidConfig, format)
	}
}

func writeTable(w io.Writer, snap engine.Snapshot) error {
	var b strings.Builder

	title := string(snap.Selection.ProposerID())
	if snap.Description != "" && snap.Description != title {
		title += " · " + snap.Description
	}
	b.WriteString(cli.FormatTitle(title))
	b.WriteString("\n")

	agg := snap.Aggregation
	summaries := strings.Join([]string{
		"Coesão      " + engine.FormatCohesion(agg),
		"Unanimidade " + engine.FormatUnanimity(agg),
		"Aprovação   " + engine.FormatApproval(agg),
	}, "\n")
	b.WriteString(cli.RenderBox(fmt.Sprintf("Votações (%d)", agg.Cohesion.Total), summaries))
	b.WriteString("\n\n")

	b.WriteString(cli.TitleStyle.Render(cli.ChartIcon + " Iniciativas"))
	b.WriteString("\n")
	b.WriteString(DonutLegend(snap.Donut))
	b.WriteString("\n\n")

	b.WriteString(cli.TitleStyle.Render(cli.ChartIcon + " Fases"))
	b.WriteString("\n")
	b.WriteString(FunnelBars(snap.Funnel, 30))
	b.WriteString("\n\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	if err := writeRows(w, snap); err != nil {
		return err
	}

	if snap.Detail != nil {
		if _, err := fmt.Fprintln(w, "\n"+DetailText(*snap.Detail)); err != nil {
			return err
		}
	}
	return nil
}

func writeRows(w io.Writer, snap engine.Snapshot) error {
	if !snap.Selection.HasOutcomeFilter() {
		_, err := fmt.Fprintln(w, cli.SubtleStyle.Render("Escolha um filtro (--cohesion, --unanimity, --approval) para listar votações."))
		return err
	}
	if len(snap.Aggregation.Rows) == 0 {
		_, err := fmt.Fprintln(w, cli.SubtleStyle.Render("Nenhuma votação corresponde aos filtros."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", "ID_Voto", "Contra", "A Favor", "Abstenção")
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 8), strings.Repeat("-", 6), strings.Repeat("-", 7), strings.Repeat("-", 9))
	for _, r := range snap.Aggregation.Rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", r.VoteID, r.Contra, r.Favor, r.Abstention)
	}
	return tw.Flush()
}

// DetailText renders a detail record the way the dashboard panel shows it.
func DetailText(d model.DetailRecord) string {
	return strings.Join([]string{
		cli.TitleStyle.UnsetMargins().Render(d.Title),
		cli.LinkIcon + " " + d.TextLink,
		cli.BoldStyle.Render("@ iniciativa nº") + " " + d.InitiativeID,
	}, "\n")
}
