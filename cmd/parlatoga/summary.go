package main

import (
	"github.com/Veraticus/parlatoga/internal/common"
	"github.com/Veraticus/parlatoga/internal/engine"
	"github.com/Veraticus/parlatoga/internal/report"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary <proposer>",
		Short: "Print a proposer's voting summary",
		Long: `Print the cohesion, unanimity and approval split of a proposer's votes,
its initiatives by type and its legislative funnel.

Votes are listed only when at least one outcome filter is given; the
percentages always cover every vote of the proposer.`,
		Example: `  parlatoga summary PS
  parlatoga summary CH --cohesion split --approval rejeitado
  parlatoga summary IL --unanimity "Not Unanimous" --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runSummary,
	}

	cmd.Flags().String("cohesion", "", "only list votes with this cohesion (block, split)")
	cmd.Flags().String("unanimity", "", "only list votes with this unanimity (unanimous, contested)")
	cmd.Flags().String("approval", "", "only list votes with this outcome (approved, rejected)")
	cmd.Flags().StringP("format", "f", "table", "output format (table, json, yaml)")

	return cmd
}

func runSummary(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(mustString(cmd, "format"))
	if err != nil {
		return common.NewUserError("invalid output format", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ds, err := loadDataset(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	dash := engine.New(ds)
	snap, err := dash.SelectProposer(args[0])
	if err != nil {
		return common.NewUserError("unknown proposer", err)
	}

	filters := []struct {
		flag string
		set  func(string) (engine.Snapshot, error)
	}{
		{"cohesion", dash.SetCohesion},
		{"unanimity", dash.SetUnanimity},
		{"approval", dash.SetApproval},
	}
	for _, f := range filters {
		value := mustString(cmd, f.flag)
		if value == "" {
			continue
		}
		if snap, err = f.set(value); err != nil {
			return common.NewUserError("invalid --"+f.flag, err)
		}
	}

	return report.Write(cmd.OutOrStdout(), snap, format)
}

// mustString reads a flag the command itself defines.
func mustString(cmd *cobra.Command, name string) string {
	value, _ := cmd.Flags().GetString(name)
	return value
}
