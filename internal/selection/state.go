// Package selection holds the user's current proposer choice and the three
// optional outcome filters.
package selection

import (
	"strings"

	"github.com/Veraticus/parlatoga/internal/common"
	"github.com/Veraticus/parlatoga/internal/model"
)

// Snapshot is an immutable copy of the selection. Nil fields are unset.
type Snapshot struct {
	Proposer  *model.ProposerID
	Cohesion  *model.Cohesion
	Unanimity *model.Unanimity
	Approval  *model.Approval
}

// HasProposer reports whether a proposer is selected.
func (s Snapshot) HasProposer() bool {
	return s.Proposer != nil
}

// ProposerID returns the selected proposer, or "" when none is selected.
func (s Snapshot) ProposerID() model.ProposerID {
	if s.Proposer == nil {
		return ""
	}
	return *s.Proposer
}

// HasOutcomeFilter reports whether at least one outcome filter is active.
func (s Snapshot) HasOutcomeFilter() bool {
	return s.Cohesion != nil || s.Unanimity != nil || s.Approval != nil
}

// Matches reports whether v satisfies every active outcome filter.
// The proposer is not checked.
func (s Snapshot) Matches(v model.VoteRecord) bool {
	if s.Cohesion != nil && v.BlockOrSplit != *s.Cohesion {
		return false
	}
	if s.Unanimity != nil && v.UnanimousOrNot != *s.Unanimity {
		return false
	}
	if s.Approval != nil && v.ApprovedOrRejected != *s.Approval {
		return false
	}
	return true
}

// State is the mutable selection. Setters only store the value; recomputing
// anything that depends on it is the caller's job. State is not safe for
// concurrent use; it belongs to the single event-handling path.
type State struct {
	current Snapshot
}

// Current returns the selection as it is now.
func (s *State) Current() Snapshot {
	return s.current
}

// SetProposer selects a proposer by code or sidebar label.
func (s *State) SetProposer(value string) error {
	id, err := model.ParseProposerID(value)
	if err != nil {
		return err
	}
	s.current.Proposer = &id
	return nil
}

// SelectProposer selects a proposer already held as a ProposerID.
func (s *State) SelectProposer(id model.ProposerID) error {
	if !id.Known() {
		return common.InvalidSelection("proposer", string(id))
	}
	s.current.Proposer = &id
	return nil
}

// ClearProposer removes the proposer selection.
func (s *State) ClearProposer() {
	s.current.Proposer = nil
}

// SetCohesion sets the cohesion filter; an empty value clears it.
func (s *State) SetCohesion(value string) error {
	if isClear(value) {
		s.current.Cohesion = nil
		return nil
	}
	c, err := model.ParseCohesion(value)
	if err != nil {
		return err
	}
	s.current.Cohesion = &c
	return nil
}

// SetUnanimity sets the unanimity filter; an empty value clears it.
func (s *State) SetUnanimity(value string) error {
	if isClear(value) {
		s.current.Unanimity = nil
		return nil
	}
	u, err := model.ParseUnanimity(value)
	if err != nil {
		return err
	}
	s.current.Unanimity = &u
	return nil
}

// SetApproval sets the approval filter; an empty value clears it.
func (s *State) SetApproval(value string) error {
	if isClear(value) {
		s.current.Approval = nil
		return nil
	}
	a, err := model.ParseApproval(value)
	if err != nil {
		return err
	}
	s.current.Approval = &a
	return nil
}

// ClearFilters removes all three outcome filters and keeps the proposer.
func (s *State) ClearFilters() {
	s.current.Cohesion = nil
	s.current.Unanimity = nil
	s.current.Approval = nil
}

func isClear(value string) bool {
	return strings.TrimSpace(value) == ""
}
