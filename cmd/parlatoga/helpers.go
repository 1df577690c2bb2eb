package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/parlatoga/internal/common"
	"github.com/Veraticus/parlatoga/internal/config"
	"github.com/Veraticus/parlatoga/internal/dataset"
	"github.com/Veraticus/parlatoga/internal/service"
	"github.com/Veraticus/parlatoga/internal/storage"
)

// loadConfig resolves the configuration, reporting problems as user errors.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, common.NewUserError("invalid configuration", err)
	}
	return cfg, nil
}

// csvPaths returns the four input tables named by cfg.
func csvPaths(cfg config.Config) dataset.CSVPaths {
	return dataset.CSVPaths{
		Initiatives: cfg.InitiativesPath(),
		Funnel:      cfg.FunnelPath(),
		Votes:       cfg.VotesPath(),
		Details:     cfg.DetailsPath(),
	}
}

// initStorage opens the snapshot database and brings its schema up to date.
func initStorage(ctx context.Context, cfg config.Config) (service.Storage, error) {
	store, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadDataset loads the dataset from the configured source. The dataset is
// read once; nothing downstream touches the files or the database again.
func loadDataset(ctx context.Context, cfg config.Config) (*dataset.Dataset, error) {
	var source dataset.Source
	switch cfg.Source {
	case config.SourceSQLite:
		store, err := initStorage(ctx, cfg)
		if err != nil {
			return nil, common.NewUserError("failed to open snapshot database", err)
		}
		defer store.Close()
		source = store.Source()
	default:
		source = dataset.NewCSVSource(csvPaths(cfg))
	}

	ds, err := source.Load(ctx)
	if err != nil {
		return nil, common.NewUserError("failed to load dataset", err)
	}

	stats := ds.Stats()
	common.LogDebug("Dataset loaded", common.Fields{
		"source":             cfg.Source,
		"votes":              stats.Votes,
		"initiatives":        stats.Initiatives,
		"funnel_stages":      stats.FunnelStages,
		"details":            stats.Details,
		"duplicate_vote_ids": stats.DuplicateVoteIDs,
		"duplicate_details":  stats.DuplicateDetails,
		"unknown_proposers":  stats.UnknownProposers,
	})

	return ds, nil
}
