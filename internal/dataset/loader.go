package dataset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/parlatoga/internal/model"
	"golang.org/x/sync/errgroup"
)

// Column names of the input files.
const (
	ColInitiativeProposer = "IniciativasXVI (2).Custom.1"
	ColInitiativeType     = "IniDescTipo"

	ColFunnelProposer = "Quem"
	ColFunnelStage    = "Fase n"
	ColFunnelSum      = "Sum of Iniciativas"

	ColVoteID       = "Vote_ID"
	ColProposedBy   = "Proposed_By"
	ColFavor        = "Favor"
	ColContra       = "Contra"
	ColAbstention   = "Abstenção"
	ColBlockOrSplit = "Block_Or_Split"
	ColUnanimous    = "Unanimous_Or_Not"
	ColApproved     = "Approved_Or_Rejected"

	ColDetailTitle      = "Título"
	ColDetailTextLink   = "TextLink"
	ColDetailInitiative = "Iniciative_ID"
)

// CSVPaths locates the four input files.
type CSVPaths struct {
	Initiatives string
	Funnel      string
	Votes       string
	Details     string
}

// CSVSource loads the dataset from delimited files.
type CSVSource struct {
	paths CSVPaths
}

// NewCSVSource creates a source reading the given files.
func NewCSVSource(paths CSVPaths) *CSVSource {
	return &CSVSource{paths: paths}
}

// Load reads the four files concurrently. Any malformed row fails the whole
// load; there is no partial dataset.
func (s *CSVSource) Load(ctx context.Context) (*Dataset, error) {
	var (
		initiatives []model.InitiativeRecord
		funnel      []model.FunnelStageRecord
		votes       []model.VoteRecord
		details     []model.DetailRecord
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		initiatives, err = ReadInitiatives(ctx, s.paths.Initiatives)
		return err
	})
	g.Go(func() (err error) {
		funnel, err = ReadFunnel(ctx, s.paths.Funnel)
		return err
	})
	g.Go(func() (err error) {
		votes, err = ReadVotes(ctx, s.paths.Votes)
		return err
	})
	g.Go(func() (err error) {
		details, err = ReadDetails(ctx, s.paths.Details)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds := New(initiatives, funnel, votes, details)
	stats := ds.Stats()
	slog.Info("Dataset loaded",
		"initiatives", stats.Initiatives,
		"funnel_stages", stats.FunnelStages,
		"votes", stats.Votes,
		"details", stats.Details)
	if stats.DuplicateVoteIDs > 0 || stats.DuplicateDetails > 0 || stats.UnknownProposers > 0 {
		slog.Debug("Dataset quality",
			"duplicate_vote_ids", stats.DuplicateVoteIDs,
			"duplicate_details", stats.DuplicateDetails,
			"unknown_proposers", stats.UnknownProposers)
	}

	return ds, nil
}

// ReadInitiatives reads the initiative (donut) table.
func ReadInitiatives(ctx context.Context, path string) ([]model.InitiativeRecord, error) {
	var out []model.InitiativeRecord
	err := readCSV(path, []string{ColInitiativeProposer, ColInitiativeType}, func(row csvRow) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		proposer, err := row.text(ColInitiativeProposer)
		if err != nil {
			return err
		}
		kind, err := row.text(ColInitiativeType)
		if err != nil {
			return err
		}
		out = append(out, model.InitiativeRecord{
			Proposer:        model.ProposerID(proposer),
			TypeDescription: model.InitiativeType(kind),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read initiatives: %w", err)
	}
	return out, nil
}

// ReadFunnel reads the funnel stage table.
func ReadFunnel(ctx context.Context, path string) ([]model.FunnelStageRecord, error) {
	var out []model.FunnelStageRecord
	err := readCSV(path, []string{ColFunnelProposer, ColFunnelStage, ColFunnelSum}, func(row csvRow) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		proposer, err := row.text(ColFunnelProposer)
		if err != nil {
			return err
		}
		stage, err := row.text(ColFunnelStage)
		if err != nil {
			return err
		}
		ordinal, err := model.ParseStageOrdinal(stage)
		if err != nil {
			return row.errorf(ColFunnelStage, "%v", err)
		}
		sum, err := row.number(ColFunnelSum)
		if err != nil {
			return err
		}
		out = append(out, model.FunnelStageRecord{
			Proposer:         model.ProposerID(proposer),
			StageLabel:       stage,
			SumOfInitiatives: sum,
			Ordinal:          ordinal,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read funnel stages: %w", err)
	}
	return out, nil
}

// ReadVotes reads the vote table and normalizes the unanimity and approval
// labels to their canonical values.
func ReadVotes(ctx context.Context, path string) ([]model.VoteRecord, error) {
	required := []string{
		ColVoteID, ColProposedBy, ColFavor, ColContra, ColAbstention,
		ColBlockOrSplit, ColUnanimous, ColApproved,
	}

	var out []model.VoteRecord
	err := readCSV(path, required, func(row csvRow) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		vote, err := parseVote(row)
		if err != nil {
			return err
		}
		out = append(out, vote)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read votes: %w", err)
	}
	return out, nil
}

func parseVote(row csvRow) (model.VoteRecord, error) {
	var (
		v   model.VoteRecord
		err error
	)

	if v.VoteID, err = row.text(ColVoteID); err != nil {
		return v, err
	}
	proposer, err := row.text(ColProposedBy)
	if err != nil {
		return v, err
	}
	v.ProposedBy = model.ProposerID(proposer)

	if v.Favor, err = row.integer(ColFavor); err != nil {
		return v, err
	}
	if v.Contra, err = row.integer(ColContra); err != nil {
		return v, err
	}
	if v.Abstention, err = row.integer(ColAbstention); err != nil {
		return v, err
	}

	raw, err := row.text(ColBlockOrSplit)
	if err != nil {
		return v, err
	}
	var ok bool
	if v.BlockOrSplit, ok = NormalizeCohesion(raw); !ok {
		return v, row.errorf(ColBlockOrSplit, "unknown value %q", raw)
	}

	if raw, err = row.text(ColUnanimous); err != nil {
		return v, err
	}
	if v.UnanimousOrNot, ok = NormalizeUnanimity(raw); !ok {
		return v, row.errorf(ColUnanimous, "unknown value %q", raw)
	}

	if raw, err = row.text(ColApproved); err != nil {
		return v, err
	}
	if v.ApprovedOrRejected, ok = NormalizeApproval(raw); !ok {
		return v, row.errorf(ColApproved, "unknown value %q", raw)
	}

	return v, nil
}

// ReadDetails reads the vote detail table.
func ReadDetails(ctx context.Context, path string) ([]model.DetailRecord, error) {
	required := []string{ColVoteID, ColDetailTitle, ColDetailTextLink, ColDetailInitiative}

	var out []model.DetailRecord
	err := readCSV(path, required, func(row csvRow) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var (
			d   model.DetailRecord
			err error
		)
		if d.VoteID, err = row.text(ColVoteID); err != nil {
			return err
		}
		if d.Title, err = row.text(ColDetailTitle); err != nil {
			return err
		}
		if d.TextLink, err = row.text(ColDetailTextLink); err != nil {
			return err
		}
		if d.InitiativeID, err = row.text(ColDetailInitiative); err != nil {
			return err
		}
		out = append(out, d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read vote details: %w", err)
	}
	return out, nil
}
