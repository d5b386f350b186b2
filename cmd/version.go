package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd reports build provenance. The values come from -ldflags at
// release time and stay at their dev defaults for local builds.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the talentlens build details.",
	Long: `Report the release version, the git commit it was cut from, the build
timestamp, and the Go toolchain that compiled the binary. Include this
output when filing a bug report.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("talentlens %s (commit %s)\n", version, commit)
		cmd.Printf("built %s with %s\n", date, runtime.Version())
	},
}
