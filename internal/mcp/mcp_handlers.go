package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/finhealth/core"
	"github.com/huangsam/finhealth/internal/contract"
	"github.com/huangsam/finhealth/internal/warehouse"
	"github.com/huangsam/finhealth/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// loadAssessment finds the assessment for a ticker and fiscal year,
// defaulting to the most recent assessed year.
func (h *toolHandler) loadAssessment(ctx context.Context, ticker string, fiscalYear int) (schema.HealthAssessment, error) {
	store, err := warehouse.NewStore(h.baseCfg)
	if err != nil {
		return schema.HealthAssessment{}, err
	}
	defer func() { _ = store.Close() }()

	assessments, err := store.LoadAssessments(ctx, ticker)
	if err != nil {
		return schema.HealthAssessment{}, err
	}
	if len(assessments) == 0 {
		return schema.HealthAssessment{}, fmt.Errorf("no assessments found for %s; run 'finhealth pipeline' first", ticker)
	}

	if fiscalYear == 0 {
		return assessments[len(assessments)-1], nil
	}
	for _, a := range assessments {
		if a.FiscalYear == fiscalYear {
			return a, nil
		}
	}
	return schema.HealthAssessment{}, fmt.Errorf("no assessment for %s in fiscal year %d", ticker, fiscalYear)
}

func (h *toolHandler) handleGetHealthReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ticker := request.GetString("ticker", "")
	if ticker == "" {
		return mcp.NewToolResultError("ticker is required"), nil
	}

	assessment, err := h.loadAssessment(ctx, ticker, request.GetInt("fiscal_year", 0))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(assessment, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRankCompanies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	store, err := warehouse.NewStore(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}
	defer func() { _ = store.Close() }()

	assessments, err := store.LoadLatestAssessments(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}
	if len(assessments) == 0 {
		return mcp.NewToolResultError("no assessments found; run 'finhealth pipeline' first"), nil
	}

	rankings := core.RankCompanies(assessments, cfg.ResultLimit)
	jsonData, _ := json.MarshalIndent(rankings, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetRatios(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ticker := request.GetString("ticker", "")
	if ticker == "" {
		return mcp.NewToolResultError("ticker is required"), nil
	}

	assessment, err := h.loadAssessment(ctx, ticker, request.GetInt("fiscal_year", 0))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ratio lookup failed: %v", err)), nil
	}

	payload := struct {
		Ticker     string             `json:"ticker"`
		FiscalYear int                `json:"fiscal_year"`
		Ratios     schema.RatioSet    `json:"ratios"`
		Growth     schema.GrowthRates `json:"growth"`
	}{
		Ticker:     assessment.Ticker,
		FiscalYear: assessment.FiscalYear,
		Ratios:     assessment.Ratios,
		Growth:     assessment.Growth,
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
