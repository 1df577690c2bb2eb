// Package testutil provides dataset fixtures shared by package tests.
//
// Example:
//
//	ds := testutil.NewDatasetBuilder().
//		WithVote("101", model.ProposerPS, model.CohesionBlock, model.Unanimous, model.Approved).
//		WithInitiatives(model.ProposerPS, model.TypeBill, 3).
//		Build()
package testutil

import (
	"github.com/Veraticus/parlatoga/internal/dataset"
	"github.com/Veraticus/parlatoga/internal/model"
)

// DatasetBuilder accumulates rows for an in-memory dataset.
type DatasetBuilder struct {
	initiatives []model.InitiativeRecord
	funnel      []model.FunnelStageRecord
	votes       []model.VoteRecord
	details     []model.DetailRecord
}

// NewDatasetBuilder returns an empty builder.
func NewDatasetBuilder() *DatasetBuilder {
	return &DatasetBuilder{}
}

// WithVote adds a vote with counts derived from its position so rows stay
// distinguishable in assertions.
func (b *DatasetBuilder) WithVote(id string, by model.ProposerID, c model.Cohesion, u model.Unanimity, a model.Approval) *DatasetBuilder {
	n := len(b.votes) + 1
	b.votes = append(b.votes, model.VoteRecord{
		VoteID:             id,
		ProposedBy:         by,
		Favor:              100 + n,
		Contra:             50 + n,
		Abstention:         n,
		BlockOrSplit:       c,
		UnanimousOrNot:     u,
		ApprovedOrRejected: a,
	})
	return b
}

// WithVoteRecord adds a fully specified vote.
func (b *DatasetBuilder) WithVoteRecord(v model.VoteRecord) *DatasetBuilder {
	b.votes = append(b.votes, v)
	return b
}

// WithInitiatives adds n initiatives of one type for a proposer.
func (b *DatasetBuilder) WithInitiatives(by model.ProposerID, typ model.InitiativeType, n int) *DatasetBuilder {
	for i := 0; i < n; i++ {
		b.initiatives = append(b.initiatives, model.InitiativeRecord{Proposer: by, TypeDescription: typ})
	}
	return b
}

// WithStage adds a funnel stage. The ordinal is taken from the label and
// the builder panics on a label without one, since that is a broken fixture.
func (b *DatasetBuilder) WithStage(by model.ProposerID, label string, sum float64) *DatasetBuilder {
	ordinal, err := model.ParseStageOrdinal(label)
	if err != nil {
		panic(err)
	}
	b.funnel = append(b.funnel, model.FunnelStageRecord{
		Proposer:         by,
		StageLabel:       label,
		SumOfInitiatives: sum,
		Ordinal:          ordinal,
	})
	return b
}

// WithDetail adds a vote detail record.
func (b *DatasetBuilder) WithDetail(voteID, title, link, initiativeID string) *DatasetBuilder {
	b.details = append(b.details, model.DetailRecord{
		VoteID:       voteID,
		Title:        title,
		TextLink:     link,
		InitiativeID: initiativeID,
	})
	return b
}

// Build returns the immutable dataset.
func (b *DatasetBuilder) Build() *dataset.Dataset {
	return dataset.New(b.initiatives, b.funnel, b.votes, b.details)
}

// ParliamentFixture is a small but complete dataset: PS and CH have votes,
// initiatives and funnel stages, the President has none of them, and vote
// 101 has a duplicated detail record.
func ParliamentFixture() *dataset.Dataset {
	return NewDatasetBuilder().
		WithVote("101", model.ProposerPS, model.CohesionBlock, model.Unanimous, model.Approved).
		WithVote("102", model.ProposerPS, model.CohesionBlock, model.NotUnanimous, model.Approved).
		WithVote("103", model.ProposerCH, model.CohesionSplit, model.NotUnanimous, model.Rejected).
		WithVote("104", model.ProposerPS, model.CohesionSplit, model.Unanimous, model.Rejected).
		WithVote("105", model.ProposerPS, model.CohesionBlock, model.Unanimous, model.Rejected).
		WithInitiatives(model.ProposerPS, model.TypeBill, 3).
		WithInitiatives(model.ProposerPS, model.TypeResolution, 1).
		WithInitiatives(model.ProposerCH, model.TypeInquiry, 2).
		WithStage(model.ProposerPS, "2.Aprovação", 12).
		WithStage(model.ProposerPS, "10.Final", 4).
		WithStage(model.ProposerPS, "1.Entrada", 40).
		WithStage(model.ProposerCH, "1.Entrada", 9).
		WithDetail("101", "Lei da habitação", "https://example.pt/101", "9001").
		WithDetail("101", "Lei da habitação (duplicado)", "https://example.pt/101b", "9002").
		WithDetail("104", "Orçamento retificativo", "https://example.pt/104", "9004").
		Build()
}
