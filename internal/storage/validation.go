// Package storage persists loaded datasets to SQLite so they can be reopened
// without the source CSV files.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/parlatoga/internal/dataset"
	"github.com/Veraticus/parlatoga/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidVote  = errors.New("invalid vote")
	ErrInvalidStage = errors.New("invalid funnel stage")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateDataset checks every row before anything is written.
func validateDataset(ds *dataset.Dataset) error {
	if ds == nil {
		return fmt.Errorf("%w: dataset", ErrNilParameter)
	}
	for i, v := range ds.Votes() {
		if err := validateVote(&v); err != nil {
			return fmt.Errorf("vote at index %d: %w", i, err)
		}
	}
	for i, st := range ds.Funnel() {
		if strings.TrimSpace(st.StageLabel) == "" {
			return fmt.Errorf("funnel stage at index %d: %w: missing label", i, ErrInvalidStage)
		}
	}
	return nil
}

// validateVote validates a single vote.
func validateVote(v *model.VoteRecord) error {
	if v == nil {
		return fmt.Errorf("%w: vote", ErrNilParameter)
	}
	if v.VoteID == "" {
		return fmt.Errorf("%w: missing vote ID", ErrInvalidVote)
	}
	if v.ProposedBy == "" {
		return fmt.Errorf("%w: missing proposer", ErrInvalidVote)
	}
	if _, ok := dataset.NormalizeCohesion(string(v.BlockOrSplit)); !ok {
		return fmt.Errorf("%w: cohesion %q", ErrInvalidVote, v.BlockOrSplit)
	}
	if _, ok := dataset.NormalizeUnanimity(string(v.UnanimousOrNot)); !ok {
		return fmt.Errorf("%w: unanimity %q", ErrInvalidVote, v.UnanimousOrNot)
	}
	if _, ok := dataset.NormalizeApproval(string(v.ApprovedOrRejected)); !ok {
		return fmt.Errorf("%w: approval %q", ErrInvalidVote, v.ApprovedOrRejected)
	}
	return nil
}
