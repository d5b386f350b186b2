package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentlens/talentlens/core"
	"github.com/talentlens/talentlens/internal/contract"
	mcp_internal "github.com/talentlens/talentlens/internal/mcp"
)

func TestMCPServerHandlers(t *testing.T) {
	baseCfg := &contract.Config{}
	analyzer := core.NewAnalyzer()
	s := mcp_internal.NewMCPServer(baseCfg, analyzer)

	ctx := context.Background()

	t.Run("analyze_feedback invalid rating", func(t *testing.T) {
		tool := s.GetTool("analyze_feedback")
		require.NotNil(t, tool, "Tool analyze_feedback should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "analyze_feedback",
				Arguments: map[string]any{
					"rating": 15.0, // Out of range
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "rating must be between 1 and 10")
	})

	t.Run("analyze_feedback success", func(t *testing.T) {
		tool := s.GetTool("analyze_feedback")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "analyze_feedback",
				Arguments: map[string]any{
					"rating":         9.0,
					"notes":          "Excellent communication and outstanding leadership",
					"candidate_name": "Jane Doe",
					"job_title":      "Senior Engineer",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var parsed map[string]any
		err = json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &parsed)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", parsed["candidate_name"])
		assert.NotEmpty(t, parsed["executive_summary"])
	})

	t.Run("score_notes missing notes", func(t *testing.T) {
		tool := s.GetTool("score_notes")
		require.NotNil(t, tool, "Tool score_notes should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "score_notes",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "notes is required")
	})

	t.Run("score_notes success", func(t *testing.T) {
		tool := s.GetTool("score_notes")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "score_notes",
				Arguments: map[string]any{
					"notes": "Great python background, solid problem solving",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var parsed map[string]any
		err = json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &parsed)
		require.NoError(t, err)
		assert.NotEmpty(t, parsed["scores"])
	})

	t.Run("get_dimensions returns weights", func(t *testing.T) {
		tool := s.GetTool("get_dimensions")
		require.NotNil(t, tool, "Tool get_dimensions should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_dimensions",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var weights map[string]float64
		err = json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &weights)
		require.NoError(t, err)
		assert.InDelta(t, 0.25, weights["technical_skills"], 0.0001)
	})
}
