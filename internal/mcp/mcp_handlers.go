package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/talentlens/talentlens/internal/contract"
	"github.com/talentlens/talentlens/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg  *contract.Config
	analyzer contract.FeedbackAnalyzer
}

func (h *toolHandler) handleAnalyzeFeedback(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rating := request.GetInt("rating", 0)
	if rating < 1 || rating > 10 {
		return mcp.NewToolResultError("rating must be between 1 and 10"), nil
	}

	env := &schema.FeedbackEnvelope{
		Feedback: schema.FeedbackInput{
			Rating:         rating,
			Notes:          request.GetString("notes", ""),
			Strengths:      request.GetString("strengths", ""),
			Concerns:       request.GetString("concerns", ""),
			Recommendation: schema.RecommendationVote(request.GetString("recommendation", "")),
		},
		Candidate: schema.CandidateProfile{
			ID:       request.GetString("candidate_id", ""),
			Name:     request.GetString("candidate_name", ""),
			JobTitle: request.GetString("job_title", ""),
			Company:  request.GetString("company", ""),
		},
	}

	result, err := h.analyzer.Analyze(ctx, env)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleScoreNotes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	notes := request.GetString("notes", "")
	if notes == "" {
		return mcp.NewToolResultError("notes is required"), nil
	}

	candidate := schema.CandidateProfile{
		ID:       request.GetString("candidate_id", ""),
		Name:     request.GetString("candidate_name", ""),
		JobTitle: request.GetString("job_title", ""),
	}

	result, err := h.analyzer.ProcessNotes(ctx, notes, candidate)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetDimensions(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weights := schema.GetDefaultDimensionWeights()
	for k, v := range h.baseCfg.CustomWeights {
		weights[k] = v
	}

	jsonData, _ := json.MarshalIndent(weights, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
