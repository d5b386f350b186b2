package cmd

import (
	"github.com/spf13/cobra"
	"github.com/talentlens/talentlens/core"
	"github.com/talentlens/talentlens/internal/httpapi"
)

// serveCmd starts the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the TalentLens HTTP API",
	Long: `Launch an HTTP API exposing the analysis engine to other services.

Endpoints:
  GET  /api/v1/health                  - liveness probe
  GET  /api/v1/dimensions              - active dimension weights
  POST /api/v1/analyze                 - score a feedback envelope
  POST /api/v1/notes                   - score free-form notes
  GET  /api/v1/history                 - recent stored analyses
  GET  /api/v1/history/:candidate_id   - analyses for one candidate

Examples:
  # Serve on the default address
  talentlens serve

  # Serve on a custom port with a SQLite history store
  talentlens serve --addr :9090 --history-backend sqlite`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		analyzer := core.NewAnalyzerFromConfig(cfg)
		store := historyManager.GetHistoryStore()
		return httpapi.StartServer(cfg, analyzer, store)
	},
}
