package cmd

import (
	"github.com/spf13/cobra"
	"github.com/talentlens/talentlens/core"
	"github.com/talentlens/talentlens/internal/contract"
)

// notesCmd scores free-form interview notes.
var notesCmd = &cobra.Command{
	Use:   "notes <notes.txt>",
	Short: "Score free-form interview notes without structured feedback.",
	Long: `Analyze a plain-text file of interview notes.

Use this when feedback arrives as prose rather than a structured form.
The notes are scored with a neutral default rating, so the result leans
entirely on the written signal: sentiment, skills and capability cues.

Examples:
  # Score a quick debrief
  talentlens notes debrief.txt

  # Same, exported as JSON
  talentlens notes debrief.txt --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteAnalyzeNotes(rootCtx, cfg, args[0], historyManager); err != nil {
			contract.LogFatal("Cannot run notes analysis", err)
		}
	},
}
