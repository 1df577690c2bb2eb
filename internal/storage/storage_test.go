package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/parlatoga/internal/common"
	"github.com/Veraticus/parlatoga/internal/dataset"
	"github.com/Veraticus/parlatoga/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func sampleDataset() *dataset.Dataset {
	return dataset.New(
		[]model.InitiativeRecord{
			{Proposer: model.ProposerPS, TypeDescription: model.TypeBill},
			{Proposer: model.ProposerCH, TypeDescription: model.TypeResolution},
		},
		[]model.FunnelStageRecord{
			{Proposer: model.ProposerPS, StageLabel: "2.Aprovação", Ordinal: 2, SumOfInitiatives: 12},
			{Proposer: model.ProposerPS, StageLabel: "10.Final", Ordinal: 10, SumOfInitiatives: 3.5},
		},
		[]model.VoteRecord{
			{
				VoteID: "b", ProposedBy: model.ProposerPS, Favor: 1, Contra: 2, Abstention: 3,
				BlockOrSplit: model.CohesionBlock, UnanimousOrNot: model.Unanimous, ApprovedOrRejected: model.Approved,
			},
			{
				VoteID: "a", ProposedBy: model.ProposerCH, Favor: 4, Contra: 5, Abstention: 6,
				BlockOrSplit: model.CohesionSplit, UnanimousOrNot: model.NotUnanimous, ApprovedOrRejected: model.Rejected,
			},
		},
		[]model.DetailRecord{
			{VoteID: "b", Title: "Título", TextLink: "https://example.pt/b", InitiativeID: "7"},
		},
	)
}

func TestMigrate_Idempotent(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Migrate(ctx))

	var version int
	require.NoError(t, store.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version))
	assert.Equal(t, ExpectedSchemaVersion, version)

	var indexCount int
	err := store.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='index' AND name='idx_votes_proposed_by'`).Scan(&indexCount)
	require.NoError(t, err)
	assert.Equal(t, 1, indexCount)
}

func TestSaveAndLoadDataset(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()
	ds := sampleDataset()

	var calls, lastTotal int
	imp, err := store.SaveDataset(ctx, ds, "csv:/data", func(written, total int) {
		calls++
		assert.Equal(t, calls, written)
		lastTotal = total
	})
	require.NoError(t, err)

	_, err = uuid.Parse(imp.ID)
	assert.NoError(t, err)
	assert.Equal(t, 7, imp.Rows())
	assert.Equal(t, 7, calls)
	assert.Equal(t, 7, lastTotal)

	loaded, err := store.Source().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, ds.Initiatives(), loaded.Initiatives())
	assert.Equal(t, ds.Funnel(), loaded.Funnel())
	assert.Equal(t, ds.Votes(), loaded.Votes())
	assert.Equal(t, ds.Details(), loaded.Details())

	latest, err := store.LatestImport(ctx)
	require.NoError(t, err)
	assert.Equal(t, imp.ID, latest.ID)
	assert.Equal(t, "csv:/data", latest.Source)
	assert.Equal(t, 2, latest.Votes)
}

func TestSaveDataset_ReplacesPreviousSnapshot(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.SaveDataset(ctx, sampleDataset(), "first", nil)
	require.NoError(t, err)

	smaller := dataset.New(nil, nil, sampleDataset().Votes()[:1], nil)
	second, err := store.SaveDataset(ctx, smaller, "second", nil)
	require.NoError(t, err)

	loaded, err := store.LoadDataset(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded.Votes(), 1)
	assert.Empty(t, loaded.Details())

	latest, err := store.LatestImport(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
}

func TestLoadDataset_Empty(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.LoadDataset(context.Background())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSaveDataset_Validation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		wantErr error
		ds      *dataset.Dataset
		name    string
		source  string
	}{
		{name: "nil dataset", ds: nil, source: "csv", wantErr: ErrNilParameter},
		{name: "empty source", ds: sampleDataset(), source: " ", wantErr: ErrEmptyString},
		{
			name:    "vote without id",
			ds:      dataset.New(nil, nil, []model.VoteRecord{{ProposedBy: model.ProposerPS}}, nil),
			source:  "csv",
			wantErr: ErrInvalidVote,
		},
		{
			name: "vote with unknown cohesion",
			ds: dataset.New(nil, nil, []model.VoteRecord{{
				VoteID: "1", ProposedBy: model.ProposerPS, BlockOrSplit: "Partial",
				UnanimousOrNot: model.Unanimous, ApprovedOrRejected: model.Approved,
			}}, nil),
			source:  "csv",
			wantErr: ErrInvalidVote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.SaveDataset(ctx, tt.ds, tt.source, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := store.LatestImport(ctx)
	assert.ErrorIs(t, err, common.ErrNotFound, "failed saves must not record an import")
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("")
	assert.ErrorIs(t, err, ErrEmptyString)
}
