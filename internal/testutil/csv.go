package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/Veraticus/parlatoga/internal/dataset"
	"github.com/Veraticus/parlatoga/internal/model"
)

// WriteCSVFixtures writes ds to the four input files in a temporary
// directory, using the source vocabulary (Y/N, Aprovado/Rejeitado) the real
// exports use.
func WriteCSVFixtures(t *testing.T, ds *dataset.Dataset) dataset.CSVPaths {
	t.Helper()
	dir := t.TempDir()

	paths := dataset.CSVPaths{
		Initiatives: filepath.Join(dir, "donutdata.csv"),
		Funnel:      filepath.Join(dir, "funneldata.csv"),
		Votes:       filepath.Join(dir, "votedata2.csv"),
		Details:     filepath.Join(dir, "detalhevoto.csv"),
	}

	initiatives := [][]string{{dataset.ColInitiativeProposer, dataset.ColInitiativeType}}
	for _, r := range ds.Initiatives() {
		initiatives = append(initiatives, []string{string(r.Proposer), string(r.TypeDescription)})
	}
	writeCSV(t, paths.Initiatives, initiatives)

	funnel := [][]string{{dataset.ColFunnelProposer, dataset.ColFunnelStage, dataset.ColFunnelSum}}
	for _, r := range ds.Funnel() {
		funnel = append(funnel, []string{
			string(r.Proposer), r.StageLabel, strconv.FormatFloat(r.SumOfInitiatives, 'f', -1, 64),
		})
	}
	writeCSV(t, paths.Funnel, funnel)

	votes := [][]string{{
		dataset.ColVoteID, dataset.ColProposedBy, dataset.ColFavor, dataset.ColContra,
		dataset.ColAbstention, dataset.ColBlockOrSplit, dataset.ColUnanimous, dataset.ColApproved,
	}}
	for _, v := range ds.Votes() {
		votes = append(votes, []string{
			v.VoteID, string(v.ProposedBy),
			strconv.Itoa(v.Favor), strconv.Itoa(v.Contra), strconv.Itoa(v.Abstention),
			string(v.BlockOrSplit), sourceUnanimity(v.UnanimousOrNot), sourceApproval(v.ApprovedOrRejected),
		})
	}
	writeCSV(t, paths.Votes, votes)

	details := [][]string{{dataset.ColVoteID, dataset.ColDetailTitle, dataset.ColDetailTextLink, dataset.ColDetailInitiative}}
	for _, d := range ds.Details() {
		details = append(details, []string{d.VoteID, d.Title, d.TextLink, d.InitiativeID})
	}
	writeCSV(t, paths.Details, details)

	return paths
}

func writeCSV(t *testing.T, path string, records [][]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func sourceUnanimity(u model.Unanimity) string {
	if u == model.Unanimous {
		return "Y"
	}
	return "N"
}

func sourceApproval(a model.Approval) string {
	if a == model.Approved {
		return "Aprovado"
	}
	return "Rejeitado"
}
