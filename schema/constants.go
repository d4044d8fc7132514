package schema

// Custom string types for type safety.
type (
	// StatementKind represents the kind of financial statement a line item belongs to.
	StatementKind string

	// MetricName represents a canonical financial metric name.
	MetricName string

	// RatioName represents a derived financial ratio name.
	RatioName string

	// RatioCategory represents the analysis category a ratio contributes to.
	RatioCategory string

	// Direction indicates whether higher or lower values of a ratio are healthier.
	Direction string

	// MergePolicy decides which value wins when multiple raw labels map to one metric.
	MergePolicy string

	// ScorerVariant represents the scoring scheme used for the composite score.
	ScorerVariant string

	// HealthStatus represents the discrete health classification of a company-year.
	HealthStatus string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the warehouse.
	DatabaseBackend string
)

// All statement kinds supported.
const (
	IncomeStatement   StatementKind = "income"
	BalanceSheet      StatementKind = "balance"
	CashFlowStatement StatementKind = "cash_flow"
)

// All ratio categories.
const (
	LiquidityCategory     RatioCategory = "liquidity"
	ProfitabilityCategory RatioCategory = "profitability"
	LeverageCategory      RatioCategory = "leverage"
	CashFlowCategory      RatioCategory = "cash_flow"
	GrowthCategory        RatioCategory = "growth"
)

// Threshold directions.
const (
	HigherIsBetter Direction = "higher_is_better"
	LowerIsBetter  Direction = "lower_is_better"
)

// Duplicate-label merge policies.
const (
	LastWriteWins  MergePolicy = "last_write_wins" // default
	FirstWriteWins MergePolicy = "first_write_wins"
)

// All scoring variants supported.
const (
	PointAccumulation ScorerVariant = "point_accumulation" // default, drives ranking
	CategoryWeighted  ScorerVariant = "category_weighted"  // drives narrative reports
)

// All health statuses supported.
const (
	ExcellentStatus  HealthStatus = "Excellent"
	GoodStatus       HealthStatus = "Good"
	FairStatus       HealthStatus = "Fair"
	ConcerningStatus HealthStatus = "Concerning"
	PoorStatus       HealthStatus = "Poor"
	UnknownStatus    HealthStatus = "Unknown"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All warehouse backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All canonical income statement metrics.
const (
	MetricRevenue           MetricName = "revenue"
	MetricCostOfRevenue     MetricName = "cost_of_revenue"
	MetricGrossProfit       MetricName = "gross_profit"
	MetricOperatingExpenses MetricName = "operating_expenses"
	MetricOperatingIncome   MetricName = "operating_income"
	MetricNetIncome         MetricName = "net_income"
	MetricEBITDA            MetricName = "ebitda"
	MetricEPSBasic          MetricName = "eps_basic"
	MetricEPSDiluted        MetricName = "eps_diluted"
)

// All canonical balance sheet metrics.
const (
	MetricTotalAssets        MetricName = "total_assets"
	MetricTotalLiabilities   MetricName = "total_liabilities"
	MetricTotalEquity        MetricName = "total_equity"
	MetricCurrentAssets      MetricName = "current_assets"
	MetricCurrentLiabilities MetricName = "current_liabilities"
	MetricCashAndEquivalents MetricName = "cash_and_equivalents"
	MetricTotalDebt          MetricName = "total_debt"
	MetricInventory          MetricName = "inventory"
	MetricRetainedEarnings   MetricName = "retained_earnings"
)

// All canonical cash flow metrics.
const (
	MetricOperatingCashFlow   MetricName = "operating_cash_flow"
	MetricInvestingCashFlow   MetricName = "investing_cash_flow"
	MetricFinancingCashFlow   MetricName = "financing_cash_flow"
	MetricFreeCashFlow        MetricName = "free_cash_flow"
	MetricCapitalExpenditures MetricName = "capital_expenditures"
	MetricDividendsPaid       MetricName = "dividends_paid"
	MetricNetChangeInCash     MetricName = "net_change_in_cash"
)

// All derived ratio names.
const (
	RatioCurrent           RatioName = "current_ratio"
	RatioQuick             RatioName = "quick_ratio"
	RatioCash              RatioName = "cash_ratio"
	RatioGrossMargin       RatioName = "gross_margin"
	RatioOperatingMargin   RatioName = "operating_margin"
	RatioNetMargin         RatioName = "net_margin"
	RatioROE               RatioName = "roe"
	RatioROA               RatioName = "roa"
	RatioDebtToEquity      RatioName = "debt_to_equity"
	RatioDebtToAssets      RatioName = "debt_to_assets"
	RatioAssetTurnover     RatioName = "asset_turnover"
	RatioOperatingCashFlow RatioName = "operating_cash_flow_ratio"
	RatioFreeCashFlow      RatioName = "free_cash_flow_margin"
)

// AllStatementKinds returns a list of all supported statement kinds.
var AllStatementKinds = []StatementKind{IncomeStatement, BalanceSheet, CashFlowStatement}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidWarehouseBackends lists all valid warehouse backends.
var ValidWarehouseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidMergePolicies lists all valid duplicate-label merge policies.
var ValidMergePolicies = map[MergePolicy]struct{}{
	LastWriteWins:  {},
	FirstWriteWins: {},
}

// ValidScorerVariants lists all valid scoring variants.
var ValidScorerVariants = map[ScorerVariant]struct{}{
	PointAccumulation: {},
	CategoryWeighted:  {},
}

// StatusForScore converts a composite health score to its status label.
// The breakpoints are a monotone step function; Unknown is reserved for
// an undefined score and is never produced for a numeric zero.
func StatusForScore(score *float64) HealthStatus {
	if score == nil {
		return UnknownStatus
	}
	switch {
	case *score >= 80:
		return ExcellentStatus
	case *score >= 65:
		return GoodStatus
	case *score >= 50:
		return FairStatus
	case *score >= 35:
		return ConcerningStatus
	default:
		return PoorStatus
	}
}

// GetCategoryWeights returns the fixed category weights for the
// category-weighted scoring scheme. A fresh map is returned on each call
// so callers can adjust a copy without touching the defaults.
func GetCategoryWeights() map[RatioCategory]float64 {
	return map[RatioCategory]float64{
		LiquidityCategory:     0.15,
		ProfitabilityCategory: 0.30,
		LeverageCategory:      0.20,
		CashFlowCategory:      0.20,
		GrowthCategory:        0.15,
	}
}
