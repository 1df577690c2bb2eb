package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Veraticus/parlatoga/internal/cli"
	"github.com/Veraticus/parlatoga/internal/common"
	"github.com/Veraticus/parlatoga/internal/config"
	"github.com/Veraticus/parlatoga/internal/report"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Store the CSV dataset in the SQLite snapshot",
		Long: `Read the four CSV tables and replace the SQLite snapshot with them.

The snapshot is written in a single transaction: an interrupted or failed run
leaves the previous snapshot untouched. Afterwards --source sqlite loads the
dashboard from the database instead of the CSV files.`,
		Args: cobra.NoArgs,
		RunE: runSnapshot,
	}

	cmd.Flags().Bool("quiet", false, "do not show a progress bar")

	cmd.AddCommand(snapshotStatusCmd())

	return cmd
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	handler := cli.NewInterruptHandler(out)
	ctx := handler.HandleInterrupts(cmd.Context(), "Snapshot", true)

	// The snapshot is always built from the CSV files.
	cfg.Source = config.SourceCSV
	ds, err := loadDataset(ctx, cfg)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx, cfg)
	if err != nil {
		return common.NewUserError("failed to open snapshot database", err)
	}
	defer store.Close()

	stats := ds.Stats()
	total := stats.Initiatives + stats.FunnelStages + stats.Votes + stats.Details

	var progress func(written, total int)
	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		bar := newProgressBar(out, total)
		progress = func(written, _ int) {
			if err := bar.Set(written); err != nil {
				slog.Warn("Failed to update progress bar", "error", err)
			}
		}
	}

	imp, err := store.SaveDataset(ctx, ds, cfg.DataDir, progress)
	if err != nil {
		if handler.WasInterrupted() {
			return errors.New("snapshot interrupted")
		}
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	content := fmt.Sprintf("Import:      %s\nDatabase:    %s\nVotações:    %d\nIniciativas: %d\nFases:       %d\nDetalhes:    %d",
		imp.ID, store.Path(), imp.Votes, imp.Initiatives, imp.FunnelStages, imp.Details)
	_, err = fmt.Fprintln(out, cli.RenderBox(cli.FormatSuccess("Snapshot saved"), content))
	return err
}

func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[yellow][bold]Writing snapshot...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[yellow]=[reset]",
			SaucerHead:    "[yellow]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

func snapshotStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the most recent snapshot import",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := report.ParseFormat(mustString(cmd, "format"))
			if err != nil {
				return common.NewUserError("invalid output format", err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initStorage(cmd.Context(), cfg)
			if err != nil {
				return common.NewUserError("failed to open snapshot database", err)
			}
			defer store.Close()

			imp, err := store.LatestImport(cmd.Context())
			if errors.Is(err, common.ErrNotFound) {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("No snapshot yet. Run 'parlatoga snapshot' first."))
				return err
			}
			if err != nil {
				return fmt.Errorf("failed to read snapshot: %w", err)
			}

			return report.Encode(cmd.OutOrStdout(), imp, format, func(w io.Writer) error {
				if _, err := fmt.Fprintln(w, cli.SubtitleStyle.Render(cli.FolderIcon+" "+store.Path())); err != nil {
					return err
				}
				content := fmt.Sprintf("Import:   %s\nCriado:   %s\nOrigem:   %s\nLinhas:   %d",
					imp.ID, imp.CreatedAt.Local().Format(time.DateTime), imp.Source, imp.Rows())
				_, err := fmt.Fprintln(w, cli.RenderBox("Snapshot", content))
				return err
			})
		},
	}

	cmd.Flags().StringP("format", "f", "table", "output format (table, json, yaml)")

	return cmd
}
