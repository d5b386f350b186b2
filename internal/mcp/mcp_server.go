// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/talentlens/talentlens/internal/contract"
)

// NewMCPServer initializes and configures the TalentLens MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, analyzer contract.FeedbackAnalyzer) *server.MCPServer {
	s := server.NewMCPServer(
		"TalentLens Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg:  baseCfg,
		analyzer: analyzer,
	}

	// --- 1. Tool: analyze_feedback ---
	s.AddTool(mcp.NewTool("analyze_feedback",
		mcp.WithDescription("Analyze structured interview feedback and return scores, insights, recommendations and risk factors."),
		mcp.WithNumber("rating", mcp.Description("Interviewer rating on a 1-10 scale."), mcp.Required()),
		mcp.WithString("notes", mcp.Description("Free-text interview notes.")),
		mcp.WithString("strengths", mcp.Description("Free-text strengths summary.")),
		mcp.WithString("concerns", mcp.Description("Free-text concerns summary.")),
		mcp.WithString("recommendation", mcp.Description("Interviewer's own verdict."), mcp.Enum("advance", "proceed", "review", "decline")),
		mcp.WithString("candidate_id", mcp.Description("Candidate identifier.")),
		mcp.WithString("candidate_name", mcp.Description("Candidate display name.")),
		mcp.WithString("job_title", mcp.Description("Role the candidate interviewed for.")),
		mcp.WithString("company", mcp.Description("Hiring company name.")),
	), h.handleAnalyzeFeedback)

	// --- 2. Tool: score_notes ---
	s.AddTool(mcp.NewTool("score_notes",
		mcp.WithDescription("Analyze free-form interview notes without a rating or verdict attached."),
		mcp.WithString("notes", mcp.Description("Free-text interview notes."), mcp.Required()),
		mcp.WithString("candidate_id", mcp.Description("Candidate identifier.")),
		mcp.WithString("candidate_name", mcp.Description("Candidate display name.")),
		mcp.WithString("job_title", mcp.Description("Role the candidate interviewed for.")),
	), h.handleScoreNotes)

	// --- 3. Tool: get_dimensions ---
	s.AddTool(mcp.NewTool("get_dimensions",
		mcp.WithDescription("Return the evaluation dimensions and the weights currently in effect."),
	), h.handleGetDimensions)

	return s
}

// StartMCPServer starts the TalentLens MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, analyzer contract.FeedbackAnalyzer) error {
	s := NewMCPServer(baseCfg, analyzer)
	return server.ServeStdio(s)
}
