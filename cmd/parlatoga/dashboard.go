package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/parlatoga/internal/common"
	"github.com/Veraticus/parlatoga/internal/engine"
	"github.com/Veraticus/parlatoga/internal/model"
	"github.com/Veraticus/parlatoga/internal/tui"
	"github.com/Veraticus/parlatoga/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Open the full-screen dashboard.

Choose a proposer in the sidebar, cycle the cohesion, unanimity and approval
filters to list matching votes, and press Enter on a vote ID to read what was
voted. Press ? inside the dashboard for every key binding.`,
		Args: cobra.NoArgs,
		RunE: runDashboard,
	}

	cmd.Flags().String("theme", "", fmt.Sprintf("color theme %v", themes.Names()))
	cmd.Flags().StringP("proposer", "p", "", "proposer to select on start (code or sidebar label)")

	_ = viper.BindPFlag("ui.theme", cmd.Flags().Lookup("theme"))

	return cmd
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	theme, ok := themes.Lookup(cfg.Theme)
	if !ok {
		return common.NewUserError("unknown theme",
			fmt.Errorf("%w: %q (available: %v)", common.ErrInvalidConfig, cfg.Theme, themes.Names()))
	}

	opts := []tui.Option{tui.WithTheme(theme)}
	if value, _ := cmd.Flags().GetString("proposer"); value != "" {
		id, parseErr := model.ParseProposerID(value)
		if parseErr != nil {
			return common.NewUserError("unknown proposer", parseErr)
		}
		opts = append(opts, tui.WithProposer(id))
	}

	ds, err := loadDataset(ctx, cfg)
	if err != nil {
		return err
	}

	// The terminal belongs to the dashboard from here on.
	closeLog, err := redirectLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.Run(ctx, engine.New(ds), opts...)
}

// redirectLogging sends the default logger to path, or discards it when no
// log file is configured.
func redirectLogging(path string) (func(), error) {
	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		return nil, err
	}

	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger, err := common.NewLogger(w, level, viper.GetString("logging.format"))
	if err != nil {
		closeFn()
		return nil, err
	}
	slog.SetDefault(logger)
	return closeFn, nil
}
