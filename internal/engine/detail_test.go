package engine

import (
	"testing"

	"github.com/Veraticus/parlatoga/internal/model"
	"github.com/Veraticus/parlatoga/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(testutil.ParliamentFixture().Details())

	d, ok := r.Resolve("101")
	require.True(t, ok)
	assert.Equal(t, "Lei da habitação", d.Title)
	assert.Equal(t, "9001", d.InitiativeID)

	_, ok = r.Resolve("999")
	assert.False(t, ok)
}

func TestResolver_Activate(t *testing.T) {
	r := NewResolver(testutil.ParliamentFixture().Details())
	rows := []model.VoteRow{{VoteID: "104"}, {VoteID: "101"}}

	tests := []struct {
		name   string
		want   string
		cell   ActiveCell
		wantOK bool
	}{
		{name: "vote id cell", cell: ActiveCell{Row: 0, Column: ColumnVoteID}, want: "Orçamento retificativo", wantOK: true},
		{name: "second row", cell: ActiveCell{Row: 1, Column: ColumnVoteID}, want: "Lei da habitação", wantOK: true},
		{name: "other column", cell: ActiveCell{Row: 0, Column: ColumnFavor}},
		{name: "row out of range", cell: ActiveCell{Row: 2, Column: ColumnVoteID}},
		{name: "negative row", cell: ActiveCell{Row: -1, Column: ColumnVoteID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := r.Activate(rows, tt.cell)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, d.Title)
		})
	}
}
