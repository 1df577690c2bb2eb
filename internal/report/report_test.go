package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Veraticus/parlatoga/internal/common"
	"github.com/Veraticus/parlatoga/internal/engine"
	"github.com/Veraticus/parlatoga/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func psSnapshot(t *testing.T, cohesion string) engine.Snapshot {
	t.Helper()
	d := engine.New(testutil.ParliamentFixture())
	_, err := d.SelectProposer("PS")
	require.NoError(t, err)
	snap, err := d.SetCohesion(cohesion)
	require.NoError(t, err)
	return snap
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatTable},
		{input: "table", want: FormatTable},
		{input: "JSON", want: FormatJSON},
		{input: " yaml ", want: FormatYAML},
		{input: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, psSnapshot(t, "block"), FormatJSON))

	var got Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "PS", got.Proposer)
	assert.Equal(t, "Block Vote", got.Filters.Cohesion)
	assert.Empty(t, got.Filters.Approval)
	assert.Equal(t, 75.0, got.Cohesion.First)
	assert.Len(t, got.Rows, 3)
	assert.Equal(t, "3 Projeto de Lei (75.0%)", got.Donut.Slices[0].Label)
	assert.Equal(t, "10.Final", got.Funnel.Stages[0].Label)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, psSnapshot(t, ""), FormatYAML))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "PS", got["proposer"])
	assert.Empty(t, got["rows"])
	assert.NotContains(t, buf.String(), "vote_id")
}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, psSnapshot(t, "block"), FormatTable))
	out := buf.String()

	assert.Contains(t, out, "❤️ 75.0%  💔 25.0%")
	assert.Contains(t, out, "👍 50.0%  👎 50.0%")
	assert.Contains(t, out, "3 Projeto de Lei (75.0%)")
	assert.Contains(t, out, "ID_Voto")
	assert.Contains(t, out, "101")
	assert.NotContains(t, out, "104", "split vote filtered out")
}

func TestWrite_TableWithoutFilters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, psSnapshot(t, ""), FormatTable))

	assert.Contains(t, buf.String(), "Escolha um filtro")
	assert.NotContains(t, buf.String(), "ID_Voto")
}

func TestFunnelBars(t *testing.T) {
	f := engine.FunnelProjection{Stages: []engine.FunnelStage{
		{Label: "10.Final", Value: 5},
		{Label: "1.Entrada", Value: 10},
	}}

	out := FunnelBars(f, 10)
	assert.Contains(t, out, "10.Final  █████ 5")
	assert.Contains(t, out, "1.Entrada ██████████ 10")

	assert.Equal(t, engine.FunnelPlaceholder, FunnelBars(engine.FunnelProjection{Placeholder: engine.FunnelPlaceholder}, 10))
	assert.Empty(t, FunnelBars(engine.FunnelProjection{Empty: true}, 10))
}

func TestDonutLegend_Placeholder(t *testing.T) {
	d := engine.DonutProjection{Placeholder: "Nenhum dado disponível para R"}
	assert.Equal(t, "Nenhum dado disponível para R", DonutLegend(d))
}
