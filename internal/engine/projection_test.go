package engine

import (
	"testing"

	"github.com/Veraticus/parlatoga/internal/model"
	"github.com/Veraticus/parlatoga/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectDonut_Labels(t *testing.T) {
	ds := testutil.NewDatasetBuilder().
		WithInitiatives(model.ProposerPS, "B", 1).
		WithInitiatives(model.ProposerPS, "A", 3).
		WithInitiatives(model.ProposerCH, "A", 5).
		Build()

	donut := ProjectDonut(ds.Initiatives(), model.ProposerPS)
	require.True(t, donut.HasData())
	assert.Equal(t, 4, donut.Total)

	labels := make([]string, len(donut.Slices))
	for i, s := range donut.Slices {
		labels[i] = s.Label
	}
	assert.Equal(t, []string{"3 A (75.0%)", "1 B (25.0%)"}, labels)
	assert.InDelta(t, 75.0, donut.Slices[0].Percent, 1e-9)
}

func TestProjectDonut_TiesKeepFirstAppearance(t *testing.T) {
	ds := testutil.NewDatasetBuilder().
		WithInitiatives(model.ProposerIL, model.TypeResolution, 2).
		WithInitiatives(model.ProposerIL, model.TypeBill, 2).
		WithInitiatives(model.ProposerIL, model.TypeInquiry, 1).
		Build()

	donut := ProjectDonut(ds.Initiatives(), model.ProposerIL)
	require.Len(t, donut.Slices, 3)
	assert.Equal(t, model.TypeResolution, donut.Slices[0].Type)
	assert.Equal(t, model.TypeBill, donut.Slices[1].Type)
	assert.Equal(t, "1 Inquérito Parlamentar (20.0%)", donut.Slices[2].Label)
	assert.Equal(t, "#FFC20A", donut.Slices[2].Color)
}

func TestProjectDonut_Placeholder(t *testing.T) {
	ds := testutil.ParliamentFixture()

	donut := ProjectDonut(ds.Initiatives(), model.ProposerPresident)
	assert.False(t, donut.HasData())
	assert.False(t, donut.Empty)
	assert.Equal(t, "Nenhum dado disponível para R", donut.Placeholder)

	none := ProjectDonut(ds.Initiatives(), "")
	assert.True(t, none.Empty)
}

func TestProjectFunnel_NumericDescendingOrder(t *testing.T) {
	ds := testutil.ParliamentFixture()

	funnel := ProjectFunnel(ds.Funnel(), model.ProposerPS)
	require.True(t, funnel.HasData())

	var ordinals []int
	var labels []string
	for _, s := range funnel.Stages {
		ordinals = append(ordinals, s.Ordinal)
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []int{10, 2, 1}, ordinals)
	assert.Equal(t, []string{"10.Final", "2.Aprovação", "1.Entrada"}, labels)
	assert.Equal(t, 4.0, funnel.Stages[0].Value)
	assert.Empty(t, funnel.Placeholder)
}

func TestProjectFunnel_Placeholder(t *testing.T) {
	ds := testutil.ParliamentFixture()

	funnel := ProjectFunnel(ds.Funnel(), model.ProposerPresident)
	assert.False(t, funnel.HasData())
	assert.Equal(t, FunnelPlaceholder, funnel.Placeholder)

	assert.True(t, ProjectFunnel(ds.Funnel(), "").Empty)
}

func TestProjections_ArePure(t *testing.T) {
	ds := testutil.ParliamentFixture()

	first := ProjectFunnel(ds.Funnel(), model.ProposerPS)
	second := ProjectFunnel(ds.Funnel(), model.ProposerPS)
	assert.Equal(t, first, second)
	assert.Equal(t, "2.Aprovação", ds.Funnel()[0].StageLabel, "input order untouched")

	assert.Equal(t, ProjectDonut(ds.Initiatives(), model.ProposerPS), ProjectDonut(ds.Initiatives(), model.ProposerPS))
}
