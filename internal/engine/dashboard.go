package engine

import (
	"log/slog"

	"github.com/Veraticus/parlatoga/internal/dataset"
	"github.com/Veraticus/parlatoga/internal/model"
	"github.com/Veraticus/parlatoga/internal/selection"
)

// Snapshot is everything the dashboard displays after one event.
type Snapshot struct {
	Detail      *model.DetailRecord `json:"detail,omitempty" yaml:"detail,omitempty"`
	Description string              `json:"description" yaml:"description"`
	Selection   selection.Snapshot  `json:"-" yaml:"-"`
	Donut       DonutProjection     `json:"donut" yaml:"donut"`
	Funnel      FunnelProjection    `json:"funnel" yaml:"funnel"`
	Aggregation Aggregation         `json:"summary" yaml:"summary"`
}

// Dashboard applies selection events to an immutable dataset one at a time.
// Each event runs to completion and replaces the snapshot; a rejected event
// leaves the previous snapshot in place. A Dashboard is not safe for
// concurrent use and must only be driven from a single event loop.
type Dashboard struct {
	data     *dataset.Dataset
	resolver *Resolver
	state    selection.State
	current  Snapshot
}

// New creates a dashboard over ds with nothing selected.
func New(ds *dataset.Dataset) *Dashboard {
	d := &Dashboard{
		data:     ds,
		resolver: NewResolver(ds.Details()),
	}
	d.current = Snapshot{
		Donut:  DonutProjection{Empty: true},
		Funnel: FunnelProjection{Empty: true},
	}
	return d
}

// Dataset returns the dataset the dashboard was built over.
func (d *Dashboard) Dataset() *dataset.Dataset {
	return d.data
}

// Snapshot returns the current display state.
func (d *Dashboard) Snapshot() Snapshot {
	return d.current
}

// SelectProposer selects a proposer by code or sidebar label.
func (d *Dashboard) SelectProposer(value string) (Snapshot, error) {
	if err := d.state.SetProposer(value); err != nil {
		return d.current, err
	}
	return d.recompute(true), nil
}

// SelectProposerID selects a proposer already held as a ProposerID.
func (d *Dashboard) SelectProposerID(id model.ProposerID) (Snapshot, error) {
	if err := d.state.SelectProposer(id); err != nil {
		return d.current, err
	}
	return d.recompute(true), nil
}

// ClearProposer drops the proposer selection. Summaries and the table go
// empty; the charts keep showing the last proposer.
func (d *Dashboard) ClearProposer() Snapshot {
	d.state.ClearProposer()
	return d.recompute(true)
}

// SetCohesion sets or, with an empty value, clears the cohesion filter.
func (d *Dashboard) SetCohesion(value string) (Snapshot, error) {
	if err := d.state.SetCohesion(value); err != nil {
		return d.current, err
	}
	return d.recompute(false), nil
}

// SetUnanimity sets or, with an empty value, clears the unanimity filter.
func (d *Dashboard) SetUnanimity(value string) (Snapshot, error) {
	if err := d.state.SetUnanimity(value); err != nil {
		return d.current, err
	}
	return d.recompute(false), nil
}

// SetApproval sets or, with an empty value, clears the approval filter.
func (d *Dashboard) SetApproval(value string) (Snapshot, error) {
	if err := d.state.SetApproval(value); err != nil {
		return d.current, err
	}
	return d.recompute(false), nil
}

// ClearFilters clears all three outcome filters.
func (d *Dashboard) ClearFilters() Snapshot {
	d.state.ClearFilters()
	return d.recompute(false)
}

// ActivateCell resolves the detail panel for a cell of the rows currently on
// screen. Rows are passed in because the table may be sorted or filtered
// differently from the aggregation order. A cell outside the vote ID column,
// or a vote without a detail record, clears the panel.
func (d *Dashboard) ActivateCell(rows []model.VoteRow, cell ActiveCell) Snapshot {
	detail, ok := d.resolver.Activate(rows, cell)
	if ok {
		d.current.Detail = &detail
	} else {
		d.current.Detail = nil
	}
	return d.current
}

// ResolveDetail looks up a vote's detail record without touching the snapshot.
func (d *Dashboard) ResolveDetail(voteID string) (model.DetailRecord, bool) {
	return d.resolver.Resolve(voteID)
}

// recompute rebuilds the snapshot from the full tables. The charts depend on
// the proposer only, so they are rebuilt only when it changed. A previously
// resolved detail no longer belongs to the table and is dropped.
func (d *Dashboard) recompute(proposerChanged bool) Snapshot {
	sel := d.state.Current()
	next := Snapshot{
		Selection:   sel,
		Aggregation: Aggregate(d.data.Votes(), sel),
		Donut:       d.current.Donut,
		Funnel:      d.current.Funnel,
		Description: d.current.Description,
	}

	if proposerChanged {
		id := sel.ProposerID()
		next.Description = describe(id)
		if donut := ProjectDonut(d.data.Initiatives(), id); !donut.Empty {
			next.Donut = donut
		}
		if funnel := ProjectFunnel(d.data.Funnel(), id); !funnel.Empty {
			next.Funnel = funnel
		}
	}

	slog.Debug("Recomputed dashboard",
		"proposer", sel.ProposerID(),
		"rows", len(next.Aggregation.Rows),
		"votes_in_scope", next.Aggregation.Cohesion.Total)

	d.current = next
	return next
}

func describe(id model.ProposerID) string {
	if p, ok := model.LookupProposer(id); ok {
		return p.Description
	}
	return ""
}
