package core

import (
	"github.com/huangsam/finhealth/schema"
)

// NoNotesMessage is the stored summary when no note rule fired.
const NoNotesMessage = "No significant concerns identified."

// BuildNotes produces the ordered observation list for one company-year.
// Rules fire independently and each appends at most one note; no rule
// suppresses another. Order follows category evaluation order: liquidity,
// profitability, leverage, cash flow, growth. The output is advisory text
// only and is never consumed programmatically downstream.
func BuildNotes(ratios schema.RatioSet, growth schema.GrowthRates) []string {
	var notes []string

	// Liquidity
	if cr := ratios.CurrentRatio; cr != nil {
		if *cr < 1.0 {
			notes = append(notes, "Low liquidity: current ratio below 1.0")
		} else if *cr > 3.0 {
			notes = append(notes, "High liquidity: may indicate idle capital")
		}
	}
	if cash := ratios.CashRatio; cash != nil && *cash < 0.1 {
		notes = append(notes, "Low cash ratio: limited cash reserves")
	}

	// Profitability
	if nm := ratios.NetMargin; nm != nil {
		if *nm < 0 {
			notes = append(notes, "Company is not profitable")
		} else if *nm > 0.20 {
			notes = append(notes, "Excellent profit margins (above 20%)")
		}
	}
	if roe := ratios.ROE; roe != nil {
		if *roe > 0.25 {
			notes = append(notes, "Outstanding return on equity (above 25%)")
		} else if *roe < 0.05 {
			notes = append(notes, "Low return on equity (below 5%)")
		}
	}

	// Leverage
	if de := ratios.DebtToEquity; de != nil {
		if *de > 2.0 {
			notes = append(notes, "High leverage: debt-to-equity above 2.0")
		} else if *de < 0.3 {
			notes = append(notes, "Conservative debt levels")
		}
	}
	if da := ratios.DebtToAssets; da != nil && *da > 0.6 {
		notes = append(notes, "Elevated debt-to-assets: over 60% of assets financed by debt")
	}

	// Cash flow
	if ocf := ratios.OperatingCashFlowRatio; ocf != nil {
		if *ocf < 0.3 {
			notes = append(notes, "Low operating cash flow coverage of current liabilities")
		} else if *ocf >= 1.0 {
			notes = append(notes, "Strong operating cash flow coverage")
		}
	}
	if fcf := ratios.FreeCashFlowMargin; fcf != nil {
		if *fcf < 0 {
			notes = append(notes, "Negative free cash flow")
		} else if *fcf >= 0.15 {
			notes = append(notes, "Strong free cash flow generation")
		}
	}

	// Growth
	if rg := growth.RevenueGrowth; rg != nil {
		if *rg > 0.20 {
			notes = append(notes, "Excellent revenue growth (above 20%)")
		} else if *rg <= 0 {
			notes = append(notes, "Revenue in decline")
		}
	}
	if pg := growth.ProfitGrowth; pg != nil && *pg <= -0.10 {
		notes = append(notes, "Profit in decline")
	}

	if len(notes) == 0 {
		notes = append(notes, NoNotesMessage)
	}
	return notes
}
