package engine

import (
	"testing"

	"github.com/Veraticus/parlatoga/internal/common"
	"github.com/Veraticus/parlatoga/internal/model"
	"github.com/Veraticus/parlatoga/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_InitialSnapshot(t *testing.T) {
	d := New(testutil.ParliamentFixture())

	snap := d.Snapshot()
	assert.False(t, snap.Selection.HasProposer())
	assert.False(t, snap.Aggregation.Selected)
	assert.True(t, snap.Donut.Empty)
	assert.True(t, snap.Funnel.Empty)
	assert.Nil(t, snap.Detail)
}

func TestDashboard_SelectProposer(t *testing.T) {
	d := New(testutil.ParliamentFixture())

	snap, err := d.SelectProposer("PS")
	require.NoError(t, err)
	assert.Equal(t, "PS", snap.Description)
	assert.Equal(t, 4, snap.Aggregation.Cohesion.Total)
	assert.Empty(t, snap.Aggregation.Rows)
	assert.Len(t, snap.Donut.Slices, 2)
	assert.Len(t, snap.Funnel.Stages, 3)

	snap, err = d.SelectProposerID(model.ProposerIL)
	require.NoError(t, err)
	assert.Equal(t, "Ini. Liberal", snap.Description)
	assert.Equal(t, "Nenhum dado disponível para IL", snap.Donut.Placeholder)
	assert.Equal(t, FunnelPlaceholder, snap.Funnel.Placeholder)
}

func TestDashboard_InvalidEventKeepsSnapshot(t *testing.T) {
	d := New(testutil.ParliamentFixture())
	before, err := d.SelectProposer("PS")
	require.NoError(t, err)

	tests := []struct {
		apply func() error
		name  string
	}{
		{name: "separator", apply: func() error { _, err := d.SelectProposer("sep1"); return err }},
		{name: "unknown code", apply: func() error { _, err := d.SelectProposerID("Ninsc"); return err }},
		{name: "cohesion", apply: func() error { _, err := d.SetCohesion("partial"); return err }},
		{name: "unanimity", apply: func() error { _, err := d.SetUnanimity("Y"); return err }},
		{name: "approval", apply: func() error { _, err := d.SetApproval("adiado"); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.apply(), common.ErrInvalidSelection)
			assert.Equal(t, before, d.Snapshot())
		})
	}
}

func TestDashboard_FiltersPopulateTable(t *testing.T) {
	d := New(testutil.ParliamentFixture())
	_, err := d.SelectProposer("PS")
	require.NoError(t, err)

	snap, err := d.SetCohesion("block")
	require.NoError(t, err)
	assert.Len(t, snap.Aggregation.Rows, 3)

	snap, err = d.SetUnanimity("unanimous")
	require.NoError(t, err)
	assert.Len(t, snap.Aggregation.Rows, 2)

	snap = d.ClearFilters()
	assert.Empty(t, snap.Aggregation.Rows)
	assert.Equal(t, 75.0, snap.Aggregation.Cohesion.First)
}

func TestDashboard_ActivateCell(t *testing.T) {
	d := New(testutil.ParliamentFixture())
	_, err := d.SelectProposer("PS")
	require.NoError(t, err)
	snap, err := d.SetUnanimity("unanimous")
	require.NoError(t, err)
	require.Len(t, snap.Aggregation.Rows, 3)

	snap = d.ActivateCell(snap.Aggregation.Rows, ActiveCell{Row: 0, Column: ColumnVoteID})
	require.NotNil(t, snap.Detail)
	assert.Equal(t, "101", snap.Detail.VoteID)
	assert.Equal(t, "Lei da habitação", snap.Detail.Title)

	snap = d.ActivateCell(snap.Aggregation.Rows, ActiveCell{Row: 0, Column: ColumnContra})
	assert.Nil(t, snap.Detail)

	// 105 has no detail record.
	snap = d.ActivateCell(snap.Aggregation.Rows, ActiveCell{Row: 2, Column: ColumnVoteID})
	assert.Nil(t, snap.Detail)

	snap = d.ActivateCell(snap.Aggregation.Rows, ActiveCell{Row: 1, Column: ColumnVoteID})
	require.NotNil(t, snap.Detail)

	snap, err = d.SetApproval("approved")
	require.NoError(t, err)
	assert.Nil(t, snap.Detail, "selection change clears the detail panel")
}

func TestDashboard_ClearProposerKeepsCharts(t *testing.T) {
	d := New(testutil.ParliamentFixture())
	selected, err := d.SelectProposer("CH")
	require.NoError(t, err)

	snap := d.ClearProposer()
	assert.False(t, snap.Aggregation.Selected)
	assert.Equal(t, selected.Donut, snap.Donut)
	assert.Equal(t, selected.Funnel, snap.Funnel)
	assert.Empty(t, FormatCohesion(snap.Aggregation))
}

func TestDashboard_ResolveDetail(t *testing.T) {
	d := New(testutil.ParliamentFixture())

	detail, ok := d.ResolveDetail("104")
	require.True(t, ok)
	assert.Equal(t, "9004", detail.InitiativeID)
	assert.Nil(t, d.Snapshot().Detail)
	assert.Len(t, d.Dataset().Votes(), 5)
}
