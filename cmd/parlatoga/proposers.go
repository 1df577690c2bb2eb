package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Veraticus/parlatoga/internal/cli"
	"github.com/Veraticus/parlatoga/internal/common"
	"github.com/Veraticus/parlatoga/internal/model"
	"github.com/Veraticus/parlatoga/internal/report"
	"github.com/spf13/cobra"
)

type proposerEntry struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
}

func proposersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposers",
		Short: "List the proposers in sidebar order",
		Long: `List every proposer the dashboard knows, grouped the way the sidebar
shows them. The code in the first column is what summary and --proposer accept.`,
		Args: cobra.NoArgs,
		RunE: runProposers,
	}

	cmd.Flags().StringP("format", "f", "table", "output format (table, json, yaml)")

	return cmd
}

func runProposers(cmd *cobra.Command, _ []string) error {
	format, err := report.ParseFormat(mustString(cmd, "format"))
	if err != nil {
		return common.NewUserError("invalid output format", err)
	}

	layout := model.SidebarLayout()

	// Separators only exist for rendering, so structured output drops them.
	entries := make([]proposerEntry, 0, len(layout))
	for _, item := range layout {
		if !item.Selectable() {
			continue
		}
		entries = append(entries, proposerEntry{
			ID:          string(item.Proposer.ID),
			Label:       item.Label,
			Description: item.Proposer.Description,
		})
	}

	return report.Encode(cmd.OutOrStdout(), entries, format, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			cli.TableHeaderStyle.Render("Código"),
			cli.TableHeaderStyle.Render("Rótulo"),
			cli.TableHeaderStyle.Render("Descrição"))
		for _, item := range layout {
			if !item.Selectable() {
				fmt.Fprintf(tw, "%s\t\t\n", cli.SubtleStyle.Render(item.Label))
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", item.Proposer.ID, item.Label, item.Proposer.Description)
		}
		return tw.Flush()
	})
}
