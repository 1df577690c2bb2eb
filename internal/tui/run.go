package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Veraticus/parlatoga/internal/engine"
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the dashboard in the alternate screen until the user quits or
// ctx is canceled.
func Run(ctx context.Context, dashboard *engine.Dashboard, opts ...Option) error {
	if dashboard == nil {
		return fmt.Errorf("dashboard is required")
	}

	// Cancel on SIGTERM too; ctrl+c arrives as a key press in raw mode.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	program := tea.NewProgram(
		New(dashboard, opts...),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
