package cmd

import (
	"github.com/spf13/cobra"
	"github.com/talentlens/talentlens/core"
	"github.com/talentlens/talentlens/internal/contract"
)

// analyzeCmd scores a single feedback envelope.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <feedback.json>",
	Short: "Score one interview feedback file and print the full report.",
	Long: `Analyze a single interview feedback envelope (feedback + candidate)
and produce the complete evaluation report.

The report includes:
- Capability scores across six weighted dimensions
- Sentiment balance of the written feedback
- Detected skills with confidence levels
- Actionable insights and hiring recommendations
- Risk factors that warrant follow-up
- An executive summary and analysis confidence

When a history backend is configured, every analysis is recorded for
later review with 'talentlens history'.

Examples:
  # Analyze one candidate's feedback
  talentlens analyze feedback.json

  # Include the per-dimension score breakdown
  talentlens analyze feedback.json --explain

  # Show skills, reasoning and risk metadata
  talentlens analyze feedback.json --detail

  # Export the result as JSON for downstream tooling
  talentlens analyze feedback.json --output json --output-file result.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteAnalyzeFeedback(rootCtx, cfg, args[0], historyManager); err != nil {
			contract.LogFatal("Cannot run feedback analysis", err)
		}
	},
}
