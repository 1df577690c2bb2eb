package components

import (
	"github.com/Veraticus/parlatoga/internal/engine"
	"github.com/Veraticus/parlatoga/internal/model"
)

// ProposerSelectedMsg is sent when a sidebar row is chosen.
type ProposerSelectedMsg struct {
	ID model.ProposerID
}

// FilterField names one of the three outcome filters.
type FilterField int

// Outcome filters.
const (
	FilterCohesion FilterField = iota
	FilterUnanimity
	FilterApproval
)

// FilterChangedMsg is sent when a filter moves to a new value. An empty
// Value clears the filter.
type FilterChangedMsg struct {
	Value string
	Field FilterField
}

// CellActivatedMsg is sent when a table cell is activated. Rows are the rows
// as displayed, so the cell's row index refers to them.
type CellActivatedMsg struct {
	Rows []model.VoteRow
	Cell engine.ActiveCell
}
