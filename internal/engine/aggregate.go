// Package engine computes everything the dashboard shows from an immutable
// dataset and the current selection.
package engine

import (
	"fmt"
	"math"

	"github.com/Veraticus/parlatoga/internal/model"
	"github.com/Veraticus/parlatoga/internal/selection"
)

// BinarySummary is a pair of complementary percentages over the
// proposer-scoped votes. First+Second is exactly 100.0.
type BinarySummary struct {
	First  float64 `json:"first" yaml:"first"`
	Second float64 `json:"second" yaml:"second"`
	Count  int     `json:"count" yaml:"count"`
	Total  int     `json:"total" yaml:"total"`
}

// Aggregation is the summary and table output for one selection.
// Selected is false when no proposer is selected; every other field is then
// zero.
type Aggregation struct {
	Cohesion  BinarySummary   `json:"cohesion" yaml:"cohesion"`
	Unanimity BinarySummary   `json:"unanimity" yaml:"unanimity"`
	Approval  BinarySummary   `json:"approval" yaml:"approval"`
	Rows      []model.VoteRow `json:"rows" yaml:"rows"`
	Selected  bool            `json:"selected" yaml:"selected"`
}

// Aggregate computes the three summaries and the table rows for sel.
//
// Summaries cover every vote of the selected proposer and ignore the outcome
// filters. Rows are only produced once at least one outcome filter is active,
// and are then the votes matching all active filters, in table order.
func Aggregate(votes []model.VoteRecord, sel selection.Snapshot) Aggregation {
	if !sel.HasProposer() {
		return Aggregation{}
	}
	proposer := sel.ProposerID()
	filtered := sel.HasOutcomeFilter()

	var (
		total, block, unanimous, approved int
		rows                              []model.VoteRow
	)
	for _, v := range votes {
		if v.ProposedBy != proposer {
			continue
		}
		total++
		if v.BlockOrSplit == model.CohesionBlock {
			block++
		}
		if v.UnanimousOrNot == model.Unanimous {
			unanimous++
		}
		if v.ApprovedOrRejected == model.Approved {
			approved++
		}
		if filtered && sel.Matches(v) {
			rows = append(rows, v.Row())
		}
	}

	if rows == nil {
		rows = []model.VoteRow{}
	}
	return Aggregation{
		Selected:  true,
		Cohesion:  NewBinarySummary(block, total),
		Unanimity: NewBinarySummary(unanimous, total),
		Approval:  NewBinarySummary(approved, total),
		Rows:      rows,
	}
}

// NewBinarySummary computes count/total as a percentage rounded to one
// decimal with halves to even, and its complement. An empty total yields
// (0.0, 100.0).
func NewBinarySummary(count, total int) BinarySummary {
	var tenths int64
	if total > 0 {
		tenths = int64(math.RoundToEven(1000 * float64(count) / float64(total)))
	}
	return BinarySummary{
		First:  float64(tenths) / 10,
		Second: float64(1000-tenths) / 10,
		Count:  count,
		Total:  total,
	}
}

// FormatCohesion renders the cohesion summary line.
func FormatCohesion(a Aggregation) string {
	return formatPair(a, a.Cohesion, "❤️", "💔")
}

// FormatUnanimity renders the unanimity summary line.
func FormatUnanimity(a Aggregation) string {
	return formatPair(a, a.Unanimity, "🤝", "🤔")
}

// FormatApproval renders the approval summary line.
func FormatApproval(a Aggregation) string {
	return formatPair(a, a.Approval, "👍", "👎")
}

func formatPair(a Aggregation, s BinarySummary, first, second string) string {
	if !a.Selected {
		return ""
	}
	return fmt.Sprintf("%s %.1f%%  %s %.1f%%", first, s.First, second, s.Second)
}
