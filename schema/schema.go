// Package schema has models, constants and threshold tables shared by all parts of finhealth.
package schema

import "time"

// RawLineItem is a single (label, value) pair as reported by a statement provider.
// Labels are provider vocabulary, not canonical names; Value is nil when the
// provider reported the line without a number.
type RawLineItem struct {
	Label string   `json:"label"`
	Value *float64 `json:"value"`
}

// RawStatement groups the raw line items of one statement kind for one fiscal year.
type RawStatement struct {
	Kind       StatementKind `json:"kind"`
	FiscalYear int           `json:"fiscal_year"`
	Items      []RawLineItem `json:"items"`
}

// StatementBatch is everything a provider returns for one ticker:
// raw statements across kinds and fiscal years.
type StatementBatch struct {
	Ticker      string         `json:"ticker"`
	CompanyName string         `json:"company_name"`
	Statements  []RawStatement `json:"statements"`
}

// CanonicalMetricRecord is one normalized metric value for a company-year.
// Immutable once computed for a given (ticker, fiscal year, metric).
type CanonicalMetricRecord struct {
	Ticker     string     `json:"ticker"`
	FiscalYear int        `json:"fiscal_year"`
	Metric     MetricName `json:"metric"`
	Value      *float64   `json:"value"`
}

// IncomeMetrics holds the canonical income statement metrics for one
// company-year. Fields are nil when the provider did not report them.
type IncomeMetrics struct {
	Revenue           *float64 `json:"revenue"`
	CostOfRevenue     *float64 `json:"cost_of_revenue"`
	GrossProfit       *float64 `json:"gross_profit"`
	OperatingExpenses *float64 `json:"operating_expenses"`
	OperatingIncome   *float64 `json:"operating_income"`
	NetIncome         *float64 `json:"net_income"`
	EBITDA            *float64 `json:"ebitda"`
	EPSBasic          *float64 `json:"eps_basic"`
	EPSDiluted        *float64 `json:"eps_diluted"`
}

// BalanceMetrics holds the canonical balance sheet metrics for one company-year.
type BalanceMetrics struct {
	TotalAssets        *float64 `json:"total_assets"`
	TotalLiabilities   *float64 `json:"total_liabilities"`
	TotalEquity        *float64 `json:"total_equity"`
	CurrentAssets      *float64 `json:"current_assets"`
	CurrentLiabilities *float64 `json:"current_liabilities"`
	CashAndEquivalents *float64 `json:"cash_and_equivalents"`
	TotalDebt          *float64 `json:"total_debt"`
	Inventory          *float64 `json:"inventory"`
	RetainedEarnings   *float64 `json:"retained_earnings"`
}

// CashFlowMetrics holds the canonical cash flow metrics for one company-year.
type CashFlowMetrics struct {
	OperatingCashFlow   *float64 `json:"operating_cash_flow"`
	InvestingCashFlow   *float64 `json:"investing_cash_flow"`
	FinancingCashFlow   *float64 `json:"financing_cash_flow"`
	FreeCashFlow        *float64 `json:"free_cash_flow"`
	CapitalExpenditures *float64 `json:"capital_expenditures"`
	DividendsPaid       *float64 `json:"dividends_paid"`
	NetChangeInCash     *float64 `json:"net_change_in_cash"`
}

// CompanyYear bundles the three normalized statements of one fiscal year.
type CompanyYear struct {
	Ticker     string          `json:"ticker"`
	FiscalYear int             `json:"fiscal_year"`
	Income     IncomeMetrics   `json:"income"`
	Balance    BalanceMetrics  `json:"balance"`
	CashFlow   CashFlowMetrics `json:"cash_flow"`
}

// RatioSet holds the 13 derived ratios for one company-year. A ratio is nil
// iff any required input metric is nil or its denominator is zero.
type RatioSet struct {
	CurrentRatio           *float64 `json:"current_ratio"`
	QuickRatio             *float64 `json:"quick_ratio"`
	CashRatio              *float64 `json:"cash_ratio"`
	GrossMargin            *float64 `json:"gross_margin"`
	OperatingMargin        *float64 `json:"operating_margin"`
	NetMargin              *float64 `json:"net_margin"`
	ROE                    *float64 `json:"roe"`
	ROA                    *float64 `json:"roa"`
	DebtToEquity           *float64 `json:"debt_to_equity"`
	DebtToAssets           *float64 `json:"debt_to_assets"`
	AssetTurnover          *float64 `json:"asset_turnover"`
	OperatingCashFlowRatio *float64 `json:"operating_cash_flow_ratio"`
	FreeCashFlowMargin     *float64 `json:"free_cash_flow_margin"`
}

// Get returns the ratio value for a given name. Unrecognized names return nil.
func (r *RatioSet) Get(name RatioName) *float64 {
	switch name {
	case RatioCurrent:
		return r.CurrentRatio
	case RatioQuick:
		return r.QuickRatio
	case RatioCash:
		return r.CashRatio
	case RatioGrossMargin:
		return r.GrossMargin
	case RatioOperatingMargin:
		return r.OperatingMargin
	case RatioNetMargin:
		return r.NetMargin
	case RatioROE:
		return r.ROE
	case RatioROA:
		return r.ROA
	case RatioDebtToEquity:
		return r.DebtToEquity
	case RatioDebtToAssets:
		return r.DebtToAssets
	case RatioAssetTurnover:
		return r.AssetTurnover
	case RatioOperatingCashFlow:
		return r.OperatingCashFlowRatio
	case RatioFreeCashFlow:
		return r.FreeCashFlowMargin
	default:
		return nil
	}
}

// YearTotals carries the prior-year figures needed for growth rates.
type YearTotals struct {
	Revenue   *float64 `json:"revenue"`
	NetIncome *float64 `json:"net_income"`
}

// GrowthRates holds year-over-year growth figures. Nil when the prior
// year's figure is absent or zero.
type GrowthRates struct {
	RevenueGrowth *float64 `json:"revenue_growth"`
	ProfitGrowth  *float64 `json:"profit_growth"`
}

// CategoryScore is the averaged sub-metric score of one category, in [0,100].
type CategoryScore struct {
	Category RatioCategory `json:"category"`
	Score    float64       `json:"score"`
}

// HealthAssessment is the full scoring outcome for one company-year.
// Computed fresh per run and never mutated; recomputation replaces the
// previous instance for the same (ticker, fiscal year).
type HealthAssessment struct {
	Ticker         string          `json:"ticker"`
	CompanyName    string          `json:"company_name"`
	FiscalYear     int             `json:"fiscal_year"`
	Ratios         RatioSet        `json:"ratios"`
	Growth         GrowthRates     `json:"growth"`
	CategoryScores []CategoryScore `json:"category_scores"`
	OverallScore   *float64        `json:"overall_score"`
	Status         HealthStatus    `json:"status"`
	Notes          []string        `json:"notes"`
	Variant        ScorerVariant   `json:"variant"`
	ComputedAt     time.Time       `json:"computed_at"`
}

// KPISnapshot is the flat dashboard record for one company-year.
type KPISnapshot struct {
	Ticker        string       `json:"ticker"`
	CompanyName   string       `json:"company_name"`
	FiscalYear    int          `json:"fiscal_year"`
	Revenue       *float64     `json:"revenue"`
	RevenueGrowth *float64     `json:"revenue_growth"`
	NetIncome     *float64     `json:"net_income"`
	ProfitGrowth  *float64     `json:"profit_growth"`
	TotalAssets   *float64     `json:"total_assets"`
	TotalDebt     *float64     `json:"total_debt"`
	FreeCashFlow  *float64     `json:"free_cash_flow"`
	CurrentRatio  *float64     `json:"current_ratio"`
	DebtToEquity  *float64     `json:"debt_to_equity"`
	NetMargin     *float64     `json:"net_margin"`
	ROE           *float64     `json:"roe"`
	HealthScore   *float64     `json:"health_score"`
	HealthStatus  HealthStatus `json:"health_status"`
}

// CompanyRanking is one row of the cross-company ranking.
type CompanyRanking struct {
	Rank         int          `json:"rank"`
	Ticker       string       `json:"ticker"`
	CompanyName  string       `json:"company_name"`
	FiscalYear   int          `json:"fiscal_year"`
	OverallScore *float64     `json:"overall_score"`
	Status       HealthStatus `json:"status"`
	CurrentRatio *float64     `json:"current_ratio"`
	DebtToEquity *float64     `json:"debt_to_equity"`
	NetMargin    *float64     `json:"net_margin"`
	ROE          *float64     `json:"roe"`
}

// WarehouseStatus summarizes the state of the warehouse backend.
type WarehouseStatus struct {
	Backend      DatabaseBackend `json:"backend"`
	Location     string          `json:"location"`
	CompanyYears int             `json:"company_years"`
	Assessments  int             `json:"assessments"`
	Snapshots    int             `json:"snapshots"`
}

// NormalizeStats counts data-quality events observed while normalizing
// one provider batch.
type NormalizeStats struct {
	MappedItems    int      `json:"mapped_items"`
	UnmappedItems  int      `json:"unmapped_items"`
	NilValues      int      `json:"nil_values"`
	NonFinite      int      `json:"non_finite"`
	UnmappedLabels []string `json:"unmapped_labels"`
}
