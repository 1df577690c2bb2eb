package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/parlatoga/internal/dataset"
	"github.com/Veraticus/parlatoga/internal/storage"
)

// SetupTestStore creates a migrated in-memory SQLite store that is closed
// when the test ends. When ds is not nil it is saved as the current snapshot.
func SetupTestStore(t *testing.T, ds *dataset.Dataset) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	if ds != nil {
		if _, err := store.SaveDataset(ctx, ds, "fixture", nil); err != nil {
			t.Fatalf("failed to seed dataset: %v", err)
		}
	}

	return store
}
