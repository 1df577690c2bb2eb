package selection

import (
	"testing"

	"github.com/Veraticus/parlatoga/internal/common"
	"github.com/Veraticus/parlatoga/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_SetProposer(t *testing.T) {
	var s State
	assert.False(t, s.Current().HasProposer())

	require.NoError(t, s.SetProposer("PS"))
	assert.Equal(t, model.ProposerPS, s.Current().ProposerID())

	err := s.SetProposer("sep2")
	assert.ErrorIs(t, err, common.ErrInvalidSelection)
	assert.Equal(t, model.ProposerPS, s.Current().ProposerID(), "rejected value leaves selection unchanged")

	err = s.SelectProposer("Ninsc")
	assert.ErrorIs(t, err, common.ErrInvalidSelection)

	require.NoError(t, s.SelectProposer(model.ProposerCH))
	assert.Equal(t, model.ProposerCH, s.Current().ProposerID())

	s.ClearProposer()
	assert.False(t, s.Current().HasProposer())
	assert.Empty(t, s.Current().ProposerID())
}

func TestState_Filters(t *testing.T) {
	var s State
	require.NoError(t, s.SetCohesion("Block Vote"))
	require.NoError(t, s.SetUnanimity("not-unanimous"))
	require.NoError(t, s.SetApproval("Aprovado"))

	snap := s.Current()
	require.True(t, snap.HasOutcomeFilter())
	assert.Equal(t, model.CohesionBlock, *snap.Cohesion)
	assert.Equal(t, model.NotUnanimous, *snap.Unanimity)
	assert.Equal(t, model.Approved, *snap.Approval)

	require.NoError(t, s.SetUnanimity(""))
	assert.Nil(t, s.Current().Unanimity)
	assert.NotNil(t, s.Current().Cohesion)

	assert.ErrorIs(t, s.SetApproval("maybe"), common.ErrInvalidSelection)
	assert.Equal(t, model.Approved, *s.Current().Approval)

	require.NoError(t, s.SetProposer("IL"))
	s.ClearFilters()
	assert.False(t, s.Current().HasOutcomeFilter())
	assert.Equal(t, model.ProposerIL, s.Current().ProposerID())
}

func TestSnapshot_IsACopy(t *testing.T) {
	var s State
	require.NoError(t, s.SetCohesion("split"))
	before := s.Current()

	require.NoError(t, s.SetCohesion("block"))
	assert.Equal(t, model.CohesionSplit, *before.Cohesion)
}

func TestSnapshot_Matches(t *testing.T) {
	vote := model.VoteRecord{
		VoteID:             "1",
		ProposedBy:         model.ProposerPS,
		BlockOrSplit:       model.CohesionBlock,
		UnanimousOrNot:     model.Unanimous,
		ApprovedOrRejected: model.Rejected,
	}

	tests := []struct {
		name string
		set  func(*State)
		want bool
	}{
		{name: "no filters", set: func(*State) {}, want: true},
		{name: "cohesion match", set: func(s *State) { _ = s.SetCohesion("block") }, want: true},
		{name: "cohesion mismatch", set: func(s *State) { _ = s.SetCohesion("split") }, want: false},
		{
			name: "all match",
			set: func(s *State) {
				_ = s.SetCohesion("block")
				_ = s.SetUnanimity("unanimous")
				_ = s.SetApproval("rejected")
			},
			want: true,
		},
		{
			name: "approval mismatch",
			set: func(s *State) {
				_ = s.SetUnanimity("unanimous")
				_ = s.SetApproval("approved")
			},
			want: false,
		},
		{name: "proposer ignored", set: func(s *State) { _ = s.SetProposer("CH") }, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s State
			tt.set(&s)
			assert.Equal(t, tt.want, s.Current().Matches(vote))
		})
	}
}
