package dataset

import "github.com/Veraticus/parlatoga/internal/model"

// Source vocabulary of the vote table mapped to canonical labels. Canonical
// labels map to themselves so already-normalized files load unchanged.
var (
	unanimityLabels = map[string]model.Unanimity{
		"Y":                        model.Unanimous,
		"N":                        model.NotUnanimous,
		string(model.Unanimous):    model.Unanimous,
		string(model.NotUnanimous): model.NotUnanimous,
	}
	approvalLabels = map[string]model.Approval{
		"Aprovado":             model.Approved,
		"Rejeitado":            model.Rejected,
		string(model.Approved): model.Approved,
		string(model.Rejected): model.Rejected,
	}
	cohesionLabels = map[string]model.Cohesion{
		string(model.CohesionBlock): model.CohesionBlock,
		string(model.CohesionSplit): model.CohesionSplit,
	}
)

// NormalizeUnanimity maps a source unanimity label to its canonical value.
func NormalizeUnanimity(raw string) (model.Unanimity, bool) {
	v, ok := unanimityLabels[raw]
	return v, ok
}

// NormalizeApproval maps a source approval label to its canonical value.
func NormalizeApproval(raw string) (model.Approval, bool) {
	v, ok := approvalLabels[raw]
	return v, ok
}

// NormalizeCohesion checks a cohesion label.
func NormalizeCohesion(raw string) (model.Cohesion, bool) {
	v, ok := cohesionLabels[raw]
	return v, ok
}
