package model

// VoteRecord is one vote on an initiative, as loaded from the vote table.
type VoteRecord struct {
	VoteID             string
	ProposedBy         ProposerID
	BlockOrSplit       Cohesion
	UnanimousOrNot     Unanimity
	ApprovedOrRejected Approval
	Favor              int
	Contra             int
	Abstention         int
}

// Row projects the record to the columns the vote table shows.
func (v VoteRecord) Row() VoteRow {
	return VoteRow{
		VoteID:     v.VoteID,
		Contra:     v.Contra,
		Favor:      v.Favor,
		Abstention: v.Abstention,
	}
}

// VoteRow is a vote as displayed in the vote table.
type VoteRow struct {
	VoteID     string `json:"vote_id" yaml:"vote_id"`
	Contra     int    `json:"contra" yaml:"contra"`
	Favor      int    `json:"favor" yaml:"favor"`
	Abstention int    `json:"abstention" yaml:"abstention"`
}

// DetailRecord describes the initiative behind a vote.
type DetailRecord struct {
	VoteID       string `json:"vote_id" yaml:"vote_id"`
	Title        string `json:"title" yaml:"title"`
	TextLink     string `json:"text_link" yaml:"text_link"`
	InitiativeID string `json:"initiative_id" yaml:"initiative_id"`
}
