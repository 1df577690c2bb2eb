package model

import (
	"strings"

	"github.com/Veraticus/parlatoga/internal/common"
)

// Cohesion indicates whether a party voted uniformly on a vote.
type Cohesion string

// Cohesion values.
const (
	CohesionBlock Cohesion = "Block Vote"
	CohesionSplit Cohesion = "Split Vote"
)

// Unanimity indicates whether a vote had no dissent.
type Unanimity string

// Unanimity values.
const (
	Unanimous    Unanimity = "Unanimous"
	NotUnanimous Unanimity = "Not Unanimous"
)

// Approval is the outcome of a vote.
type Approval string

// Approval values.
const (
	Approved Approval = "Approved"
	Rejected Approval = "Rejected"
)

// Label returns the label shown next to the filter.
func (c Cohesion) Label() string {
	switch c {
	case CohesionBlock:
		return "Coeso"
	case CohesionSplit:
		return "Fragmentado"
	default:
		return string(c)
	}
}

// Label returns the label shown next to the filter.
func (u Unanimity) Label() string {
	switch u {
	case Unanimous:
		return "Unânime"
	case NotUnanimous:
		return "Contestado"
	default:
		return string(u)
	}
}

// Label returns the label shown next to the filter.
func (a Approval) Label() string {
	switch a {
	case Approved:
		return "Aprovado"
	case Rejected:
		return "Rejeitado"
	default:
		return string(a)
	}
}

// CohesionValues lists the cohesion filter options in display order.
func CohesionValues() []Cohesion { return []Cohesion{CohesionBlock, CohesionSplit} }

// UnanimityValues lists the unanimity filter options in display order.
func UnanimityValues() []Unanimity { return []Unanimity{Unanimous, NotUnanimous} }

// ApprovalValues lists the approval filter options in display order.
func ApprovalValues() []Approval { return []Approval{Approved, Rejected} }

// ParseCohesion accepts the canonical value, its UI label, or "block"/"split".
func ParseCohesion(value string) (Cohesion, error) {
	switch normalizeKeyword(value) {
	case "block vote", "block", "coeso":
		return CohesionBlock, nil
	case "split vote", "split", "fragmentado":
		return CohesionSplit, nil
	}
	return "", common.InvalidSelection("cohesion", value)
}

// ParseUnanimity accepts the canonical value, its UI label, or a short keyword.
func ParseUnanimity(value string) (Unanimity, error) {
	switch normalizeKeyword(value) {
	case "unanimous", "unânime":
		return Unanimous, nil
	case "not unanimous", "not-unanimous", "contested", "contestado":
		return NotUnanimous, nil
	}
	return "", common.InvalidSelection("unanimity", value)
}

// ParseApproval accepts the canonical value or its UI label.
func ParseApproval(value string) (Approval, error) {
	switch normalizeKeyword(value) {
	case "approved", "aprovado":
		return Approved, nil
	case "rejected", "rejeitado":
		return Rejected, nil
	}
	return "", common.InvalidSelection("approval", value)
}

func normalizeKeyword(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
