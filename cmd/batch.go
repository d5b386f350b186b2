package cmd

import (
	"github.com/spf13/cobra"
	"github.com/talentlens/talentlens/core"
	"github.com/talentlens/talentlens/internal/contract"
)

// batchCmd scores a directory of feedback envelopes and ranks candidates.
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Score every feedback file in a directory and rank candidates.",
	Long: `Analyze every *.json feedback envelope in a directory and print a
ranked comparison of candidates by overall impression.

Useful for:
- Comparing all candidates interviewed for the same role
- Building a shortlist after an interview loop
- Exporting a whole pipeline snapshot to CSV or JSON

Ranking is by overall impression, highest first. Use --limit to cap
how many candidates are shown.

Examples:
  # Rank all candidates for a role
  talentlens batch ./feedback/backend-role

  # Top five with skills and risk columns
  talentlens batch ./feedback/backend-role --limit 5 --detail

  # Export the ranking for a hiring committee
  talentlens batch ./feedback --output csv --output-file shortlist.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteBatchAnalysis(rootCtx, cfg, args[0], historyManager); err != nil {
			contract.LogFatal("Cannot run batch analysis", err)
		}
	},
}
