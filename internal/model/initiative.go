package model

// InitiativeType is the legislative instrument of an initiative.
type InitiativeType string

// Known initiative types.
const (
	TypeGovernmentBill InitiativeType = "Proposta de Lei"
	TypeBill           InitiativeType = "Projeto de Lei"
	TypeInquiry        InitiativeType = "Inquérito Parlamentar"
	TypeResolution     InitiativeType = "Projeto de Resolução"
	TypeDeliberation   InitiativeType = "Projeto de Deliberação"
)

// DefaultInitiativeColor is used for types without an assigned color.
const DefaultInitiativeColor = "#125699"

var initiativeColors = map[InitiativeType]string{
	TypeGovernmentBill: "#0C7BDC",
	TypeBill:           "#0c55dc",
	TypeInquiry:        "#FFC20A",
	TypeResolution:     "#40B0A6",
	TypeDeliberation:   "#5D3A9B",
}

// Color returns the chart color for the type.
func (t InitiativeType) Color() string {
	if c, ok := initiativeColors[t]; ok {
		return c
	}
	return DefaultInitiativeColor
}

// Known reports whether t is one of the five known instrument types.
func (t InitiativeType) Known() bool {
	_, ok := initiativeColors[t]
	return ok
}

// InitiativeRecord is one initiative, used only in grouped counts.
type InitiativeRecord struct {
	Proposer        ProposerID
	TypeDescription InitiativeType
}
