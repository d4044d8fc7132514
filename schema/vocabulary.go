package schema

// Provider label vocabularies. Each map is a static many-to-one table from
// raw provider labels to canonical metric names. Labels missing from the
// table are dropped during normalization, not treated as errors.

// IncomeVocabulary maps raw income statement labels to canonical metrics.
var IncomeVocabulary = map[string]MetricName{
	"Revenue":                  MetricRevenue,
	"Total Revenue":            MetricRevenue,
	"Net Sales":                MetricRevenue,
	"Cost of Revenue":          MetricCostOfRevenue,
	"Cost of Goods Sold":       MetricCostOfRevenue,
	"Gross Profit":             MetricGrossProfit,
	"Operating Expenses":       MetricOperatingExpenses,
	"Total Operating Expenses": MetricOperatingExpenses,
	"Operating Income":         MetricOperatingIncome,
	"Net Income":               MetricNetIncome,
	"Net Income Common":        MetricNetIncome,
	"EBITDA":                   MetricEBITDA,
	"EPS (Basic)":              MetricEPSBasic,
	"EPS Basic":                MetricEPSBasic,
	"EPS (Diluted)":            MetricEPSDiluted,
	"EPS Diluted":              MetricEPSDiluted,
}

// BalanceVocabulary maps raw balance sheet labels to canonical metrics.
var BalanceVocabulary = map[string]MetricName{
	"Total Assets":              MetricTotalAssets,
	"Total Liabilities":         MetricTotalLiabilities,
	"Total Equity":              MetricTotalEquity,
	"Shareholders' Equity":      MetricTotalEquity,
	"Stockholders Equity":       MetricTotalEquity,
	"Current Assets":            MetricCurrentAssets,
	"Total Current Assets":      MetricCurrentAssets,
	"Current Liabilities":       MetricCurrentLiabilities,
	"Total Current Liabilities": MetricCurrentLiabilities,
	"Cash & Cash Equivalents":   MetricCashAndEquivalents,
	"Cash and Cash Equivalents": MetricCashAndEquivalents,
	"Cash & Equivalents":        MetricCashAndEquivalents,
	"Total Debt":                MetricTotalDebt,
	"Long-Term Debt":            MetricTotalDebt,
	"Inventory":                 MetricInventory,
	"Inventories":               MetricInventory,
	"Retained Earnings":         MetricRetainedEarnings,
}

// CashFlowVocabulary maps raw cash flow labels to canonical metrics.
var CashFlowVocabulary = map[string]MetricName{
	"Operating Cash Flow":                MetricOperatingCashFlow,
	"Cash from Operations":               MetricOperatingCashFlow,
	"Net Cash from Operating Activities": MetricOperatingCashFlow,
	"Investing Cash Flow":                MetricInvestingCashFlow,
	"Cash from Investing":                MetricInvestingCashFlow,
	"Net Cash from Investing Activities": MetricInvestingCashFlow,
	"Financing Cash Flow":                MetricFinancingCashFlow,
	"Cash from Financing":                MetricFinancingCashFlow,
	"Net Cash from Financing Activities": MetricFinancingCashFlow,
	"Free Cash Flow":                     MetricFreeCashFlow,
	"Capital Expenditures":               MetricCapitalExpenditures,
	"Capital Expenditure":                MetricCapitalExpenditures,
	"Dividends Paid":                     MetricDividendsPaid,
	"Net Change in Cash":                 MetricNetChangeInCash,
	"Change in Cash":                     MetricNetChangeInCash,
}

// VocabularyFor returns the label vocabulary for a statement kind.
// Unrecognized kinds return nil, which drops every label.
func VocabularyFor(kind StatementKind) map[string]MetricName {
	switch kind {
	case IncomeStatement:
		return IncomeVocabulary
	case BalanceSheet:
		return BalanceVocabulary
	case CashFlowStatement:
		return CashFlowVocabulary
	default:
		return nil
	}
}
