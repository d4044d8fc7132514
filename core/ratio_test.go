package core

import (
	"math"
	"testing"

	"github.com/huangsam/finhealth/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeDivide(t *testing.T) {
	tests := []struct {
		name string
		num  *float64
		den  *float64
		want *float64
	}{
		{"both present", schema.Float(10), schema.Float(4), schema.Float(2.5)},
		{"nil numerator", nil, schema.Float(4), nil},
		{"nil denominator", schema.Float(10), nil, nil},
		{"zero denominator", schema.Float(10), schema.Float(0), nil},
		{"nan numerator", schema.Float(math.NaN()), schema.Float(4), nil},
		{"inf denominator", schema.Float(10), schema.Float(math.Inf(1)), nil},
		{"negative values", schema.Float(-6), schema.Float(3), schema.Float(-2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeDivide(tt.num, tt.den)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

// healthyYear is a plausible large-cap company-year used across tests.
func healthyYear() schema.CompanyYear {
	return schema.CompanyYear{
		Ticker:     "AAPL",
		FiscalYear: 2024,
		Income: schema.IncomeMetrics{
			Revenue:         schema.Float(400_000),
			GrossProfit:     schema.Float(180_000),
			OperatingIncome: schema.Float(120_000),
			NetIncome:       schema.Float(100_000),
		},
		Balance: schema.BalanceMetrics{
			TotalAssets:        schema.Float(350_000),
			TotalLiabilities:   schema.Float(280_000),
			TotalEquity:        schema.Float(70_000),
			CurrentAssets:      schema.Float(140_000),
			CurrentLiabilities: schema.Float(130_000),
			CashAndEquivalents: schema.Float(60_000),
			TotalDebt:          schema.Float(110_000),
			Inventory:          schema.Float(7_000),
		},
		CashFlow: schema.CashFlowMetrics{
			OperatingCashFlow: schema.Float(110_000),
			FreeCashFlow:      schema.Float(95_000),
		},
	}
}

func TestComputeRatios(t *testing.T) {
	ratios := ComputeRatios(healthyYear(), RatioPolicy{})

	require.NotNil(t, ratios.CurrentRatio)
	assert.InDelta(t, 140_000.0/130_000.0, *ratios.CurrentRatio, 1e-9)

	// Default quick ratio approximates with full current assets
	require.NotNil(t, ratios.QuickRatio)
	assert.InDelta(t, *ratios.CurrentRatio, *ratios.QuickRatio, 1e-9)

	require.NotNil(t, ratios.CashRatio)
	assert.InDelta(t, 60_000.0/130_000.0, *ratios.CashRatio, 1e-9)

	require.NotNil(t, ratios.GrossMargin)
	assert.InDelta(t, 0.45, *ratios.GrossMargin, 1e-9)
	require.NotNil(t, ratios.NetMargin)
	assert.InDelta(t, 0.25, *ratios.NetMargin, 1e-9)
	require.NotNil(t, ratios.ROE)
	assert.InDelta(t, 100_000.0/70_000.0, *ratios.ROE, 1e-9)

	// Explicit debt figure wins over total liabilities
	require.NotNil(t, ratios.DebtToEquity)
	assert.InDelta(t, 110_000.0/70_000.0, *ratios.DebtToEquity, 1e-9)

	require.NotNil(t, ratios.OperatingCashFlowRatio)
	assert.InDelta(t, 110_000.0/130_000.0, *ratios.OperatingCashFlowRatio, 1e-9)
	require.NotNil(t, ratios.FreeCashFlowMargin)
	assert.InDelta(t, 95_000.0/400_000.0, *ratios.FreeCashFlowMargin, 1e-9)
}

func TestComputeRatiosSubtractInventory(t *testing.T) {
	ratios := ComputeRatios(healthyYear(), RatioPolicy{SubtractInventory: true})

	require.NotNil(t, ratios.QuickRatio)
	assert.InDelta(t, (140_000.0-7_000.0)/130_000.0, *ratios.QuickRatio, 1e-9)

	// The current ratio keeps the full current assets
	require.NotNil(t, ratios.CurrentRatio)
	assert.InDelta(t, 140_000.0/130_000.0, *ratios.CurrentRatio, 1e-9)
}

func TestComputeRatiosDebtFallback(t *testing.T) {
	year := healthyYear()
	year.Balance.TotalDebt = nil

	ratios := ComputeRatios(year, RatioPolicy{})
	require.NotNil(t, ratios.DebtToEquity)
	assert.InDelta(t, 280_000.0/70_000.0, *ratios.DebtToEquity, 1e-9)
	require.NotNil(t, ratios.DebtToAssets)
	assert.InDelta(t, 0.8, *ratios.DebtToAssets, 1e-9)
}

func TestComputeRatiosMissingInputs(t *testing.T) {
	ratios := ComputeRatios(schema.CompanyYear{Ticker: "EMPT", FiscalYear: 2024}, RatioPolicy{})

	assert.Nil(t, ratios.CurrentRatio)
	assert.Nil(t, ratios.NetMargin)
	assert.Nil(t, ratios.ROE)
	assert.Nil(t, ratios.DebtToEquity)
	assert.Nil(t, ratios.FreeCashFlowMargin)
}
