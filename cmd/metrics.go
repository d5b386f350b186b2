package cmd

import (
	"github.com/spf13/cobra"
	"github.com/talentlens/talentlens/core"
	"github.com/talentlens/talentlens/internal/contract"
)

// metricsCmd displays the formal definitions of all capability dimensions.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display capability dimension definitions and scoring weights",
	Long: `Show the definitions, signals and weights for all capability dimensions.

Provides complete transparency into how candidates are scored, including:
- What each dimension measures
- The text signals that raise a dimension score
- The weight each dimension contributes to the overall impression
- Custom weights if configured via .talentlens.yaml

No feedback is analyzed - this is purely informational.

Examples:
  # Show default dimension weights
  talentlens metrics

  # View with custom weights from config file
  talentlens metrics --config .talentlens.yaml`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDimensionMetrics(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
