package mcp_test

import (
	"context"
	"testing"

	"github.com/huangsam/finhealth/internal/contract"
	mcp_internal "github.com/huangsam/finhealth/internal/mcp"
	"github.com/huangsam/finhealth/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	// The none backend keeps handlers away from any real database
	baseCfg := &contract.Config{
		WarehouseBackend: schema.NoneBackend,
		ResultLimit:      contract.DefaultResultLimit,
	}

	s := mcp_internal.NewMCPServer(baseCfg)
	ctx := context.Background()

	callTool := func(t *testing.T, name string, args map[string]any) *mcp.CallToolResult {
		t.Helper()
		tool := s.GetTool(name)
		require.NotNil(t, tool, "Tool %s should exist", name)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      name,
				Arguments: args,
			},
		}
		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		return res
	}

	t.Run("get_health_report missing ticker", func(t *testing.T) {
		res := callTool(t, "get_health_report", map[string]any{"ticker": ""})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "ticker is required")
	})

	t.Run("get_ratios missing ticker", func(t *testing.T) {
		res := callTool(t, "get_ratios", map[string]any{"ticker": ""})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "ticker is required")
	})

	t.Run("get_health_report with empty warehouse", func(t *testing.T) {
		res := callTool(t, "get_health_report", map[string]any{"ticker": "AAPL"})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "no assessments found for AAPL")
	})

	t.Run("rank_companies with empty warehouse", func(t *testing.T) {
		res := callTool(t, "rank_companies", map[string]any{"limit": 5.0})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "no assessments found")
	})
}
