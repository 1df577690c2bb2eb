// Package service defines the interfaces the commands depend on.
package service

import (
	"context"

	"github.com/Veraticus/parlatoga/internal/dataset"
	"github.com/Veraticus/parlatoga/internal/storage"
)

// Storage defines the contract for the dataset snapshot store.
type Storage interface {
	// Schema
	Migrate(ctx context.Context) error

	// Snapshot operations
	SaveDataset(ctx context.Context, ds *dataset.Dataset, source string, progress storage.ProgressFunc) (*storage.Import, error)
	LatestImport(ctx context.Context) (*storage.Import, error)
	LoadDataset(ctx context.Context) (*dataset.Dataset, error)

	// Source adapts the store to the dataset loader used by the dashboard.
	Source() dataset.Source
	Path() string
	Close() error
}

var _ Storage = (*storage.SQLiteStorage)(nil)
