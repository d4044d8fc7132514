package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/huangsam/finhealth/internal/contract"
	"github.com/huangsam/finhealth/internal/warehouse"
	"github.com/huangsam/finhealth/schema"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider serves canned statement batches from memory.
type stubProvider struct {
	batches map[string]schema.StatementBatch
}

func (p *stubProvider) FetchStatements(_ context.Context, ticker string) (schema.StatementBatch, error) {
	batch, ok := p.batches[ticker]
	if !ok {
		return schema.StatementBatch{}, errors.New("ticker not found")
	}
	return batch, nil
}

// statementsForYear builds a complete three-statement fiscal year.
func statementsForYear(fy int, revenue, netIncome float64) []schema.RawStatement {
	return []schema.RawStatement{
		{Kind: schema.IncomeStatement, FiscalYear: fy, Items: []schema.RawLineItem{
			{Label: "Total Revenue", Value: schema.Float(revenue)},
			{Label: "Net Income", Value: schema.Float(netIncome)},
		}},
		{Kind: schema.BalanceSheet, FiscalYear: fy, Items: []schema.RawLineItem{
			{Label: "Total Assets", Value: schema.Float(revenue * 2)},
			{Label: "Total Liabilities", Value: schema.Float(revenue)},
			{Label: "Total Equity", Value: schema.Float(revenue)},
			{Label: "Total Current Assets", Value: schema.Float(revenue / 2)},
			{Label: "Total Current Liabilities", Value: schema.Float(revenue / 4)},
		}},
		{Kind: schema.CashFlowStatement, FiscalYear: fy, Items: []schema.RawLineItem{
			{Label: "Operating Cash Flow", Value: schema.Float(netIncome * 1.2)},
			{Label: "Free Cash Flow", Value: schema.Float(netIncome)},
		}},
	}
}

func pipelineConfig(tickers ...string) *contract.Config {
	return &contract.Config{
		Tickers:     tickers,
		Companies:   map[string]string{"AAPL": "Apple", "MSFT": "Microsoft"},
		Years:       contract.DefaultYears,
		ResultLimit: contract.DefaultResultLimit,
		Workers:     2,
		MergePolicy: schema.LastWriteWins,
		Variant:     schema.PointAccumulation,
	}
}

func TestBuildAssessment(t *testing.T) {
	year := healthyYear()
	previous := &schema.YearTotals{
		Revenue:   schema.Float(320_000),
		NetIncome: schema.Float(90_000),
	}
	now := time.Now()

	assessment, snapshot := BuildAssessment(year, previous, NewScorer(schema.PointAccumulation), RatioPolicy{}, "Apple", now)

	assert.Equal(t, "AAPL", assessment.Ticker)
	assert.Equal(t, "Apple", assessment.CompanyName)
	assert.Equal(t, 2024, assessment.FiscalYear)
	assert.Equal(t, schema.PointAccumulation, assessment.Variant)
	assert.Equal(t, now, assessment.ComputedAt)
	require.NotNil(t, assessment.OverallScore)
	assert.Equal(t, schema.StatusForScore(assessment.OverallScore), assessment.Status)
	assert.NotEmpty(t, assessment.Notes)

	require.NotNil(t, assessment.Growth.RevenueGrowth)
	assert.InDelta(t, 0.25, *assessment.Growth.RevenueGrowth, 1e-9)

	// Snapshot mirrors the assessment's key figures
	assert.Equal(t, assessment.Ticker, snapshot.Ticker)
	assert.Equal(t, assessment.FiscalYear, snapshot.FiscalYear)
	assert.Equal(t, assessment.OverallScore, snapshot.HealthScore)
	assert.Equal(t, assessment.Status, snapshot.HealthStatus)
	require.NotNil(t, snapshot.TotalDebt)
	assert.InDelta(t, 110_000, *snapshot.TotalDebt, 1e-9)
}

func TestRunPipelineCore(t *testing.T) {
	provider := &stubProvider{batches: map[string]schema.StatementBatch{
		"AAPL": {
			Ticker: "AAPL",
			Statements: append(
				statementsForYear(2023, 320_000, 90_000),
				statementsForYear(2024, 400_000, 100_000)...,
			),
		},
		"MSFT": {
			Ticker:     "MSFT",
			Statements: statementsForYear(2024, 250_000, 88_000),
		},
	}}
	store := warehouse.NewMockStore()
	cfg := pipelineConfig("AAPL", "MSFT", "FAIL")

	outcomes := runPipelineCore(context.Background(), cfg, provider, store, zerolog.Nop())
	require.Len(t, outcomes, 3)

	byTicker := make(map[string]TickerOutcome)
	for _, outcome := range outcomes {
		byTicker[outcome.Ticker] = outcome
	}

	require.NoError(t, byTicker["AAPL"].Err)
	assert.Equal(t, 2, byTicker["AAPL"].Years)
	require.Len(t, byTicker["AAPL"].Assessments, 2)

	// Ascending walk: the second year carries growth from the first
	first, second := byTicker["AAPL"].Assessments[0], byTicker["AAPL"].Assessments[1]
	assert.Equal(t, 2023, first.FiscalYear)
	assert.Nil(t, first.Growth.RevenueGrowth)
	assert.Equal(t, 2024, second.FiscalYear)
	require.NotNil(t, second.Growth.RevenueGrowth)
	assert.InDelta(t, 0.25, *second.Growth.RevenueGrowth, 1e-9)

	require.NoError(t, byTicker["MSFT"].Err)
	assert.Equal(t, 1, byTicker["MSFT"].Years)

	// A missing ticker fails alone without affecting the others
	assert.Error(t, byTicker["FAIL"].Err)

	// Everything persisted to the warehouse
	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 3, status.CompanyYears)
	assert.Equal(t, 3, status.Assessments)
	assert.Equal(t, 3, status.Snapshots)
}

func TestRunPipelineCoreSaveFailure(t *testing.T) {
	provider := &stubProvider{batches: map[string]schema.StatementBatch{
		"AAPL": {Ticker: "AAPL", Statements: statementsForYear(2024, 400_000, 100_000)},
	}}
	store := warehouse.NewMockStore()
	store.FailSaves = errors.New("disk full")

	outcomes := runPipelineCore(context.Background(), pipelineConfig("AAPL"), provider, store, zerolog.Nop())
	require.Len(t, outcomes, 1)
	assert.ErrorContains(t, outcomes[0].Err, "disk full")
}

func TestLimitToRecentYears(t *testing.T) {
	years := []schema.CompanyYear{
		{FiscalYear: 2020}, {FiscalYear: 2021}, {FiscalYear: 2022},
	}

	kept := limitToRecentYears(years, 2)
	require.Len(t, kept, 2)
	assert.Equal(t, 2021, kept[0].FiscalYear)
	assert.Equal(t, 2022, kept[1].FiscalYear)

	assert.Len(t, limitToRecentYears(years, 5), 3)
}
