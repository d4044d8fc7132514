package core

import (
	"math"

	"github.com/huangsam/finhealth/schema"
)

// RatioPolicy adjusts how individual ratios are derived.
type RatioPolicy struct {
	// SubtractInventory switches the quick ratio from the current-assets
	// approximation to (current assets - inventory) when inventory is
	// reported. The approximation is the documented default because many
	// technology filings omit an inventory line entirely.
	SubtractInventory bool
}

// SafeDivide divides two nullable values. The result is nil when either
// operand is nil, the denominator is zero, or either operand is not
// finite. Division never panics and nullness propagates.
func SafeDivide(num, den *float64) *float64 {
	if num == nil || den == nil || *den == 0 {
		return nil
	}
	if !isFinite(*num) || !isFinite(*den) {
		return nil
	}
	q := *num / *den
	if !isFinite(q) {
		return nil
	}
	return &q
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ComputeRatios derives the 13 ratios for one company-year. Each ratio is
// nil when its inputs are missing; no ratio failure affects another.
func ComputeRatios(year schema.CompanyYear, policy RatioPolicy) schema.RatioSet {
	income := year.Income
	balance := year.Balance
	cashflow := year.CashFlow

	// Leverage falls back to total liabilities when no explicit debt
	// figure was reported.
	debt := schema.Coalesce(balance.TotalDebt, balance.TotalLiabilities)

	quickAssets := balance.CurrentAssets
	if policy.SubtractInventory && balance.CurrentAssets != nil && balance.Inventory != nil {
		quickAssets = schema.Float(*balance.CurrentAssets - *balance.Inventory)
	}

	return schema.RatioSet{
		CurrentRatio:           SafeDivide(balance.CurrentAssets, balance.CurrentLiabilities),
		QuickRatio:             SafeDivide(quickAssets, balance.CurrentLiabilities),
		CashRatio:              SafeDivide(balance.CashAndEquivalents, balance.CurrentLiabilities),
		GrossMargin:            SafeDivide(income.GrossProfit, income.Revenue),
		OperatingMargin:        SafeDivide(income.OperatingIncome, income.Revenue),
		NetMargin:              SafeDivide(income.NetIncome, income.Revenue),
		ROE:                    SafeDivide(income.NetIncome, balance.TotalEquity),
		ROA:                    SafeDivide(income.NetIncome, balance.TotalAssets),
		DebtToEquity:           SafeDivide(debt, balance.TotalEquity),
		DebtToAssets:           SafeDivide(debt, balance.TotalAssets),
		AssetTurnover:          SafeDivide(income.Revenue, balance.TotalAssets),
		OperatingCashFlowRatio: SafeDivide(cashflow.OperatingCashFlow, balance.CurrentLiabilities),
		FreeCashFlowMargin:     SafeDivide(cashflow.FreeCashFlow, income.Revenue),
	}
}
