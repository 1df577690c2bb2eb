package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/parlatoga/internal/common"
	"github.com/Veraticus/parlatoga/internal/dataset"
	"github.com/Veraticus/parlatoga/internal/model"
	"github.com/google/uuid"
)

// Import records one SaveDataset run.
type Import struct {
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
	ID           string    `json:"id" yaml:"id"`
	Source       string    `json:"source" yaml:"source"`
	Initiatives  int       `json:"initiatives" yaml:"initiatives"`
	FunnelStages int       `json:"funnel_stages" yaml:"funnel_stages"`
	Votes        int       `json:"votes" yaml:"votes"`
	Details      int       `json:"details" yaml:"details"`
}

// Rows returns the number of rows the import wrote.
func (i Import) Rows() int {
	return i.Initiatives + i.FunnelStages + i.Votes + i.Details
}

// ProgressFunc is called after each row is written.
type ProgressFunc func(written, total int)

// SaveDataset replaces the stored snapshot with ds in a single transaction
// and records the import. Row order is preserved. progress may be nil.
func (s *SQLiteStorage) SaveDataset(ctx context.Context, ds *dataset.Dataset, source string, progress ProgressFunc) (*Import, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(source, "source"); err != nil {
		return nil, err
	}
	if err := validateDataset(ds); err != nil {
		return nil, err
	}
	if progress == nil {
		progress = func(int, int) {}
	}

	imp := &Import{
		ID:           uuid.NewString(),
		Source:       source,
		CreatedAt:    time.Now().UTC(),
		Initiatives:  len(ds.Initiatives()),
		FunnelStages: len(ds.Funnel()),
		Votes:        len(ds.Votes()),
		Details:      len(ds.Details()),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"initiatives", "funnel_stages", "votes", "vote_details"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return nil, fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	w := &rowWriter{ctx: ctx, tx: tx, total: imp.Rows(), progress: progress}
	if err = w.initiatives(ds.Initiatives()); err != nil {
		return nil, err
	}
	if err = w.funnel(ds.Funnel()); err != nil {
		return nil, err
	}
	if err = w.votes(ds.Votes()); err != nil {
		return nil, err
	}
	if err = w.details(ds.Details()); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO imports (id, source, initiatives, funnel_stages, votes, details, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		imp.ID, imp.Source, imp.Initiatives, imp.FunnelStages, imp.Votes, imp.Details, imp.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record import: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit snapshot: %w", err)
	}

	slog.Info("Saved dataset snapshot",
		"import_id", imp.ID,
		"source", imp.Source,
		"rows", imp.Rows())

	return imp, nil
}

// rowWriter inserts the tables of one snapshot and reports progress.
type rowWriter struct {
	ctx      context.Context
	tx       *sql.Tx
	progress ProgressFunc
	written  int
	total    int
}

func (w *rowWriter) exec(table, query string, n int, args func(i int) []any) error {
	stmt, err := w.tx.PrepareContext(w.ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare %s insert: %w", table, err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(w.ctx, args(i)...); err != nil {
			return fmt.Errorf("failed to insert %s row %d: %w", table, i, err)
		}
		w.written++
		w.progress(w.written, w.total)
	}
	return nil
}

func (w *rowWriter) initiatives(rows []model.InitiativeRecord) error {
	return w.exec("initiatives",
		`INSERT INTO initiatives (position, proposer, type_description) VALUES (?, ?, ?)`,
		len(rows), func(i int) []any {
			return []any{i, string(rows[i].Proposer), string(rows[i].TypeDescription)}
		})
}

func (w *rowWriter) funnel(rows []model.FunnelStageRecord) error {
	return w.exec("funnel_stages",
		`INSERT INTO funnel_stages (position, proposer, stage_label, ordinal, sum_of_initiatives) VALUES (?, ?, ?, ?, ?)`,
		len(rows), func(i int) []any {
			r := rows[i]
			return []any{i, string(r.Proposer), r.StageLabel, r.Ordinal, r.SumOfInitiatives}
		})
}

func (w *rowWriter) votes(rows []model.VoteRecord) error {
	return w.exec("votes",
		`INSERT INTO votes (position, vote_id, proposed_by, favor, contra, abstention,
			block_or_split, unanimous_or_not, approved_or_rejected)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		len(rows), func(i int) []any {
			v := rows[i]
			return []any{
				i, v.VoteID, string(v.ProposedBy), v.Favor, v.Contra, v.Abstention,
				string(v.BlockOrSplit), string(v.UnanimousOrNot), string(v.ApprovedOrRejected),
			}
		})
}

func (w *rowWriter) details(rows []model.DetailRecord) error {
	return w.exec("vote_details",
		`INSERT INTO vote_details (position, vote_id, title, text_link, initiative_id) VALUES (?, ?, ?, ?, ?)`,
		len(rows), func(i int) []any {
			d := rows[i]
			return []any{i, d.VoteID, d.Title, d.TextLink, d.InitiativeID}
		})
}

// LatestImport returns the most recent import, or common.ErrNotFound when
// nothing has been saved yet.
func (s *SQLiteStorage) LatestImport(ctx context.Context) (*Import, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var imp Import
	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, initiatives, funnel_stages, votes, details, created_at
		FROM imports
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1`).Scan(
		&imp.ID, &imp.Source, &imp.Initiatives, &imp.FunnelStages,
		&imp.Votes, &imp.Details, &imp.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no dataset snapshot in %s", common.ErrNotFound, s.dbPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest import: %w", err)
	}
	return &imp, nil
}

// LoadDataset reads the stored snapshot back in its original row order.
func (s *SQLiteStorage) LoadDataset(ctx context.Context) (*dataset.Dataset, error) {
	if _, err := s.LatestImport(ctx); err != nil {
		return nil, err
	}

	initiatives, err := s.loadInitiatives(ctx)
	if err != nil {
		return nil, err
	}
	funnel, err := s.loadFunnel(ctx)
	if err != nil {
		return nil, err
	}
	votes, err := s.loadVotes(ctx)
	if err != nil {
		return nil, err
	}
	details, err := s.loadDetails(ctx)
	if err != nil {
		return nil, err
	}

	ds := dataset.New(initiatives, funnel, votes, details)
	stats := ds.Stats()
	slog.Info("Loaded dataset snapshot",
		"db", s.dbPath,
		"initiatives", stats.Initiatives,
		"funnel_stages", stats.FunnelStages,
		"votes", stats.Votes,
		"details", stats.Details)
	return ds, nil
}

func (s *SQLiteStorage) loadInitiatives(ctx context.Context) ([]model.InitiativeRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT proposer, type_description FROM initiatives ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query initiatives: %w", err)
	}
	defer rows.Close()

	var out []model.InitiativeRecord
	for rows.Next() {
		var r model.InitiativeRecord
		if err := rows.Scan(&r.Proposer, &r.TypeDescription); err != nil {
			return nil, fmt.Errorf("failed to scan initiative: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStorage) loadFunnel(ctx context.Context) ([]model.FunnelStageRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT proposer, stage_label, ordinal, sum_of_initiatives
		FROM funnel_stages ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query funnel stages: %w", err)
	}
	defer rows.Close()

	var out []model.FunnelStageRecord
	for rows.Next() {
		var r model.FunnelStageRecord
		if err := rows.Scan(&r.Proposer, &r.StageLabel, &r.Ordinal, &r.SumOfInitiatives); err != nil {
			return nil, fmt.Errorf("failed to scan funnel stage: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStorage) loadVotes(ctx context.Context) ([]model.VoteRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT vote_id, proposed_by, favor, contra, abstention,
			block_or_split, unanimous_or_not, approved_or_rejected
		FROM votes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	var out []model.VoteRecord
	for rows.Next() {
		var v model.VoteRecord
		if err := rows.Scan(&v.VoteID, &v.ProposedBy, &v.Favor, &v.Contra, &v.Abstention,
			&v.BlockOrSplit, &v.UnanimousOrNot, &v.ApprovedOrRejected); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		if err := validateVote(&v); err != nil {
			return nil, fmt.Errorf("%w: stored vote %s: %v", common.ErrMalformedRecord, v.VoteID, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *SQLiteStorage) loadDetails(ctx context.Context) ([]model.DetailRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT vote_id, title, text_link, initiative_id
		FROM vote_details ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vote details: %w", err)
	}
	defer rows.Close()

	var out []model.DetailRecord
	for rows.Next() {
		var d model.DetailRecord
		if err := rows.Scan(&d.VoteID, &d.Title, &d.TextLink, &d.InitiativeID); err != nil {
			return nil, fmt.Errorf("failed to scan vote detail: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
