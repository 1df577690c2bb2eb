package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS imports (
					id TEXT PRIMARY KEY,
					source TEXT NOT NULL,
					initiatives INTEGER NOT NULL DEFAULT 0,
					funnel_stages INTEGER NOT NULL DEFAULT 0,
					votes INTEGER NOT NULL DEFAULT 0,
					details INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS initiatives (
					position INTEGER PRIMARY KEY,
					proposer TEXT NOT NULL,
					type_description TEXT NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS funnel_stages (
					position INTEGER PRIMARY KEY,
					proposer TEXT NOT NULL,
					stage_label TEXT NOT NULL,
					ordinal INTEGER NOT NULL,
					sum_of_initiatives REAL NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS votes (
					position INTEGER PRIMARY KEY,
					vote_id TEXT NOT NULL,
					proposed_by TEXT NOT NULL,
					favor INTEGER NOT NULL,
					contra INTEGER NOT NULL,
					abstention INTEGER NOT NULL,
					block_or_split TEXT NOT NULL,
					unanimous_or_not TEXT NOT NULL,
					approved_or_rejected TEXT NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS vote_details (
					position INTEGER PRIMARY KEY,
					vote_id TEXT NOT NULL,
					title TEXT NOT NULL,
					text_link TEXT NOT NULL,
					initiative_id TEXT NOT NULL
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Index proposer and vote ID lookups",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE INDEX IF NOT EXISTS idx_votes_proposed_by ON votes(proposed_by)`,
				`CREATE INDEX IF NOT EXISTS idx_vote_details_vote_id ON vote_details(vote_id)`,
				`CREATE INDEX IF NOT EXISTS idx_imports_created_at ON imports(created_at)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		// Update version
		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	// Verify we're at the expected schema version
	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
