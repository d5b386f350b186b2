package cmd

import (
	"github.com/spf13/cobra"
	"github.com/talentlens/talentlens/core"
	"github.com/talentlens/talentlens/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the TalentLens MCP server",
	Long:  `Launch an MCP server that allows AI agents to score interview feedback via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Suppress the normal header logs when running in MCP mode
		// to avoid polluting stdio which is used for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		analyzer := core.NewAnalyzerFromConfig(cfg)
		return mcp.StartMCPServer(rootCtx, cfg, analyzer)
	},
}
