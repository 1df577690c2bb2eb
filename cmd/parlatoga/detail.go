package main

import (
	"fmt"
	"io"

	"github.com/Veraticus/parlatoga/internal/common"
	"github.com/Veraticus/parlatoga/internal/engine"
	"github.com/Veraticus/parlatoga/internal/report"
	"github.com/spf13/cobra"
)

func detailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detail <vote-id>",
		Short: "Show what a vote was about",
		Long: `Print the title, source link and initiative number behind a vote.

When the detail table lists a vote ID more than once, the first entry wins,
exactly as in the dashboard.`,
		Args: cobra.ExactArgs(1),
		RunE: runDetail,
	}

	cmd.Flags().StringP("format", "f", "table", "output format (table, json, yaml)")

	return cmd
}

func runDetail(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(mustString(cmd, "format"))
	if err != nil {
		return common.NewUserError("invalid output format", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ds, err := loadDataset(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	detail, ok := engine.New(ds).ResolveDetail(args[0])
	if !ok {
		return common.NewUserError("no detail for this vote",
			fmt.Errorf("%w: vote %q", common.ErrNotFound, args[0]))
	}

	return report.Encode(cmd.OutOrStdout(), detail, format, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, report.DetailText(detail))
		return err
	})
}
