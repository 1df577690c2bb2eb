// Package dataset loads the four input tables and holds them as an immutable,
// shared Dataset for the lifetime of the process.
package dataset

import (
	"context"

	"github.com/Veraticus/parlatoga/internal/model"
)

// Source produces a fully loaded dataset or fails as a whole.
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
}

// Dataset holds the loaded tables. It is never modified after New returns;
// the accessors hand out the underlying slices, which callers must treat as
// read-only.
type Dataset struct {
	initiatives []model.InitiativeRecord
	funnel      []model.FunnelStageRecord
	votes       []model.VoteRecord
	details     []model.DetailRecord
}

// New builds a dataset from already validated tables. The slices are copied.
func New(
	initiatives []model.InitiativeRecord,
	funnel []model.FunnelStageRecord,
	votes []model.VoteRecord,
	details []model.DetailRecord,
) *Dataset {
	return &Dataset{
		initiatives: append([]model.InitiativeRecord(nil), initiatives...),
		funnel:      append([]model.FunnelStageRecord(nil), funnel...),
		votes:       append([]model.VoteRecord(nil), votes...),
		details:     append([]model.DetailRecord(nil), details...),
	}
}

// Initiatives returns the initiative (donut) table.
func (d *Dataset) Initiatives() []model.InitiativeRecord { return d.initiatives }

// Funnel returns the funnel stage table.
func (d *Dataset) Funnel() []model.FunnelStageRecord { return d.funnel }

// Votes returns the vote table in file order.
func (d *Dataset) Votes() []model.VoteRecord { return d.votes }

// Details returns the vote detail table in file order.
func (d *Dataset) Details() []model.DetailRecord { return d.details }

// Stats summarizes table sizes and data-quality counters.
type Stats struct {
	Initiatives      int `json:"initiatives" yaml:"initiatives"`
	FunnelStages     int `json:"funnel_stages" yaml:"funnel_stages"`
	Votes            int `json:"votes" yaml:"votes"`
	Details          int `json:"details" yaml:"details"`
	DuplicateVoteIDs int `json:"duplicate_vote_ids" yaml:"duplicate_vote_ids"`
	DuplicateDetails int `json:"duplicate_details" yaml:"duplicate_details"`
	UnknownProposers int `json:"unknown_proposers" yaml:"unknown_proposers"`
}

// Stats computes table sizes and counts the rows that break the assumed
// uniqueness of vote IDs or reference proposers outside the catalog.
func (d *Dataset) Stats() Stats {
	s := Stats{
		Initiatives:  len(d.initiatives),
		FunnelStages: len(d.funnel),
		Votes:        len(d.votes),
		Details:      len(d.details),
	}

	seenVotes := make(map[string]struct{}, len(d.votes))
	unknown := make(map[model.ProposerID]struct{})
	for _, v := range d.votes {
		if _, dup := seenVotes[v.VoteID]; dup {
			s.DuplicateVoteIDs++
		}
		seenVotes[v.VoteID] = struct{}{}
		if !v.ProposedBy.Known() {
			unknown[v.ProposedBy] = struct{}{}
		}
	}
	for _, r := range d.initiatives {
		if !r.Proposer.Known() {
			unknown[r.Proposer] = struct{}{}
		}
	}
	for _, r := range d.funnel {
		if !r.Proposer.Known() {
			unknown[r.Proposer] = struct{}{}
		}
	}
	s.UnknownProposers = len(unknown)

	seenDetails := make(map[string]struct{}, len(d.details))
	for _, r := range d.details {
		if _, dup := seenDetails[r.VoteID]; dup {
			s.DuplicateDetails++
		}
		seenDetails[r.VoteID] = struct{}{}
	}

	return s
}
