// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/finhealth/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the finhealth MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Financial Health Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: get_health_report ---
	s.AddTool(mcp.NewTool("get_health_report",
		mcp.WithDescription("Get the financial health assessment for one company, including ratios, category scores and narrative notes."),
		mcp.WithString("ticker", mcp.Description("Company ticker symbol (e.g. AAPL)."), mcp.Required()),
		mcp.WithNumber("fiscal_year", mcp.Description("Fiscal year to report on. Defaults to the most recent assessed year.")),
	), h.handleGetHealthReport)

	// --- 2. Tool: rank_companies ---
	s.AddTool(mcp.NewTool("rank_companies",
		mcp.WithDescription("Rank all assessed companies by overall health score using each company's latest fiscal year."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleRankCompanies)

	// --- 3. Tool: get_ratios ---
	s.AddTool(mcp.NewTool("get_ratios",
		mcp.WithDescription("Get the raw financial ratios and growth rates for one company-year without scoring."),
		mcp.WithString("ticker", mcp.Description("Company ticker symbol (e.g. AAPL)."), mcp.Required()),
		mcp.WithNumber("fiscal_year", mcp.Description("Fiscal year. Defaults to the most recent assessed year.")),
	), h.handleGetRatios)

	return s
}

// StartMCPServer starts the finhealth MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
