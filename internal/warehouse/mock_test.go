package warehouse

import (
	"errors"
	"testing"
	"time"

	"github.com/huangsam/finhealth/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockAssessment(ticker string, fy int, score float64) (schema.HealthAssessment, schema.KPISnapshot) {
	a := schema.HealthAssessment{
		Ticker:       ticker,
		CompanyName:  ticker,
		FiscalYear:   fy,
		OverallScore: schema.Float(score),
		Status:       schema.StatusForScore(schema.Float(score)),
		Variant:      schema.PointAccumulation,
		ComputedAt:   time.Now(),
	}
	snap := schema.KPISnapshot{
		Ticker:       ticker,
		CompanyName:  ticker,
		FiscalYear:   fy,
		HealthScore:  a.OverallScore,
		HealthStatus: a.Status,
	}
	return a, snap
}

func TestMockStoreReplaceSemantics(t *testing.T) {
	store := NewMockStore()
	ctx := t.Context()

	require.NoError(t, store.SaveCompanyYear(ctx, schema.CompanyYear{
		Ticker: "AAPL", FiscalYear: 2024,
		Income: schema.IncomeMetrics{Revenue: schema.Float(100)},
	}))
	require.NoError(t, store.SaveCompanyYear(ctx, schema.CompanyYear{
		Ticker: "AAPL", FiscalYear: 2024,
		Income: schema.IncomeMetrics{Revenue: schema.Float(200)},
	}))

	years, err := store.LoadCompanyYears(ctx, "AAPL")
	require.NoError(t, err)
	require.Len(t, years, 1)
	require.NotNil(t, years[0].Income.Revenue)
	assert.InDelta(t, 200, *years[0].Income.Revenue, 1e-9)

	a, snap := mockAssessment("AAPL", 2024, 70)
	require.NoError(t, store.SaveAssessment(ctx, a, snap))
	a2, snap2 := mockAssessment("AAPL", 2024, 85)
	require.NoError(t, store.SaveAssessment(ctx, a2, snap2))

	assessments, err := store.LoadAssessments(ctx, "AAPL")
	require.NoError(t, err)
	require.Len(t, assessments, 1)
	assert.InDelta(t, 85, *assessments[0].OverallScore, 1e-9)

	snapshots, err := store.LoadKPISnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.InDelta(t, 85, *snapshots[0].HealthScore, 1e-9)
}

func TestMockStoreLatestPerTicker(t *testing.T) {
	store := NewMockStore()
	ctx := t.Context()

	for _, row := range []struct {
		ticker string
		fy     int
		score  float64
	}{
		{"MSFT", 2023, 60}, {"MSFT", 2024, 75},
		{"AAPL", 2022, 90}, {"AAPL", 2024, 88}, {"AAPL", 2023, 85},
	} {
		a, snap := mockAssessment(row.ticker, row.fy, row.score)
		require.NoError(t, store.SaveAssessment(ctx, a, snap))
	}

	latest, err := store.LoadLatestAssessments(ctx)
	require.NoError(t, err)
	require.Len(t, latest, 2)

	// Ordered by ticker, each holding its most recent fiscal year
	assert.Equal(t, "AAPL", latest[0].Ticker)
	assert.Equal(t, 2024, latest[0].FiscalYear)
	assert.Equal(t, "MSFT", latest[1].Ticker)
	assert.Equal(t, 2024, latest[1].FiscalYear)

	all, err := store.LoadAllAssessments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "AAPL", all[0].Ticker)
	assert.Equal(t, 2022, all[0].FiscalYear)
	assert.Equal(t, "MSFT", all[4].Ticker)
	assert.Equal(t, 2024, all[4].FiscalYear)
}

func TestMockStoreFailSaves(t *testing.T) {
	store := NewMockStore()
	store.FailSaves = errors.New("boom")
	ctx := t.Context()

	assert.Error(t, store.SaveCompanyYear(ctx, schema.CompanyYear{Ticker: "AAPL", FiscalYear: 2024}))
	a, snap := mockAssessment("AAPL", 2024, 70)
	assert.Error(t, store.SaveAssessment(ctx, a, snap))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Zero(t, status.CompanyYears)
	assert.Zero(t, status.Assessments)
}

func TestMockStoreClear(t *testing.T) {
	store := NewMockStore()
	ctx := t.Context()

	require.NoError(t, store.SaveCompanyYear(ctx, schema.CompanyYear{Ticker: "AAPL", FiscalYear: 2024}))
	a, snap := mockAssessment("AAPL", 2024, 70)
	require.NoError(t, store.SaveAssessment(ctx, a, snap))
	require.NoError(t, store.Clear())

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Zero(t, status.CompanyYears)
	assert.Zero(t, status.Assessments)
	assert.Zero(t, status.Snapshots)
}
