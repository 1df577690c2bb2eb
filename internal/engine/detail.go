package engine

import "github.com/Veraticus/parlatoga/internal/model"

// Vote table columns, in display order.
const (
	ColumnVoteID = iota
	ColumnContra
	ColumnFavor
	ColumnAbstention
)

// ActiveCell addresses a cell of the rendered vote table.
type ActiveCell struct {
	Row    int
	Column int
}

// Resolver looks up the detail record behind a vote.
type Resolver struct {
	byVoteID map[string]model.DetailRecord
}

// NewResolver indexes details by vote ID. When a vote ID repeats, the first
// record wins.
func NewResolver(details []model.DetailRecord) *Resolver {
	index := make(map[string]model.DetailRecord, len(details))
	for _, d := range details {
		if _, exists := index[d.VoteID]; !exists {
			index[d.VoteID] = d
		}
	}
	return &Resolver{byVoteID: index}
}

// Resolve returns the first detail record for voteID.
func (r *Resolver) Resolve(voteID string) (model.DetailRecord, bool) {
	d, ok := r.byVoteID[voteID]
	return d, ok
}

// Activate resolves the detail for a cell of rows. Only cells in the vote ID
// column resolve; anything else, or a row out of range, is empty.
func (r *Resolver) Activate(rows []model.VoteRow, cell ActiveCell) (model.DetailRecord, bool) {
	if cell.Column != ColumnVoteID || cell.Row < 0 || cell.Row >= len(rows) {
		return model.DetailRecord{}, false
	}
	return r.Resolve(rows[cell.Row].VoteID)
}
