// Package model defines the core domain models used throughout the application.
package model

import (
	"strings"

	"github.com/Veraticus/parlatoga/internal/common"
)

// ProposerID identifies the body that authored a legislative initiative.
type ProposerID string

// Proposers that can be selected on the dashboard.
const (
	ProposerPresident  ProposerID = "R"
	ProposerGovernment ProposerID = "V"
	ProposerAzores     ProposerID = "A"
	ProposerMadeira    ProposerID = "M"
	ProposerBE         ProposerID = "BE"
	ProposerCDSPP      ProposerID = "CDS-PP"
	ProposerCH         ProposerID = "CH"
	ProposerIL         ProposerID = "IL"
	ProposerLivre      ProposerID = "L"
	ProposerPAN        ProposerID = "PAN"
	ProposerPCP        ProposerID = "PCP"
	ProposerPS         ProposerID = "PS"
	ProposerPSD        ProposerID = "PSD"
)

// Proposer describes a selectable proposer.
type Proposer struct {
	ID          ProposerID
	Label       string
	Description string
}

// ProposerGroup groups proposers that the sidebar renders together.
type ProposerGroup int

// Proposer groups in sidebar order.
const (
	GroupInstitutions ProposerGroup = iota
	GroupRegions
	GroupParties
)

var catalog = []struct {
	Proposer
	group ProposerGroup
}{
	{Proposer{ProposerPresident, "PRES. AR", "José P. Ag-Bra"}, GroupInstitutions},
	{Proposer{ProposerGovernment, "GOVERNO", "Aliança Dem."}, GroupInstitutions},
	{Proposer{ProposerAzores, "AÇORES", "AL Açores"}, GroupRegions},
	{Proposer{ProposerMadeira, "MADEIRA", "AL Madeira"}, GroupRegions},
	{Proposer{ProposerBE, "BE", "Bloco de Esq."}, GroupParties},
	{Proposer{ProposerCDSPP, "CDS-PP", "CDS-PP"}, GroupParties},
	{Proposer{ProposerCH, "CH", "Chega"}, GroupParties},
	{Proposer{ProposerIL, "IL", "Ini. Liberal"}, GroupParties},
	{Proposer{ProposerLivre, "L", "Livre"}, GroupParties},
	{Proposer{ProposerPAN, "PAN", "PAN"}, GroupParties},
	{Proposer{ProposerPCP, "PCP", "PCP"}, GroupParties},
	{Proposer{ProposerPS, "PS", "PS"}, GroupParties},
	{Proposer{ProposerPSD, "PSD", "PSD"}, GroupParties},
}

// Proposers returns the selectable proposers in sidebar order.
func Proposers() []Proposer {
	out := make([]Proposer, len(catalog))
	for i, entry := range catalog {
		out[i] = entry.Proposer
	}
	return out
}

// LookupProposer returns the catalog entry for id.
func LookupProposer(id ProposerID) (Proposer, bool) {
	for _, entry := range catalog {
		if entry.ID == id {
			return entry.Proposer, true
		}
	}
	return Proposer{}, false
}

// Known reports whether id is a selectable proposer.
func (id ProposerID) Known() bool {
	_, ok := LookupProposer(id)
	return ok
}

func (id ProposerID) String() string {
	return string(id)
}

// ParseProposerID accepts a proposer code or its sidebar label.
// Anything else, separators included, is an invalid selection.
func ParseProposerID(value string) (ProposerID, error) {
	trimmed := strings.TrimSpace(value)
	for _, entry := range catalog {
		if string(entry.ID) == trimmed || strings.EqualFold(entry.Label, trimmed) {
			return entry.ID, nil
		}
	}
	return "", common.InvalidSelection("proposer", value)
}
