package core

import (
	"sort"

	"github.com/huangsam/finhealth/schema"
	"github.com/rs/zerolog"
)

// NormalizeLabel maps a raw provider label to its canonical metric name
// for the given statement kind. Unmapped labels return ok=false; the
// system tolerates partial or unknown provider schemas by dropping them.
func NormalizeLabel(kind schema.StatementKind, label string) (schema.MetricName, bool) {
	metric, ok := schema.VocabularyFor(kind)[label]
	return metric, ok
}

// Accumulator folds raw line items into fixed-field statement structs per
// fiscal year. Duplicate labels resolving to the same canonical metric
// are merged under the configured policy; unmapped labels, nil values and
// non-finite values are dropped and counted, never raised as errors.
type Accumulator struct {
	ticker string
	policy schema.MergePolicy
	logger zerolog.Logger
	years  map[int]*schema.CompanyYear
	stats  schema.NormalizeStats
}

// NewAccumulator builds an accumulator for one ticker.
func NewAccumulator(ticker string, policy schema.MergePolicy, logger zerolog.Logger) *Accumulator {
	return &Accumulator{
		ticker: ticker,
		policy: policy,
		logger: logger,
		years:  make(map[int]*schema.CompanyYear),
	}
}

// AddBatch folds a full provider response into the accumulator.
func (a *Accumulator) AddBatch(batch schema.StatementBatch) {
	for _, stmt := range batch.Statements {
		a.AddStatement(stmt)
	}
}

// AddStatement folds the raw line items of one statement.
func (a *Accumulator) AddStatement(stmt schema.RawStatement) {
	for _, item := range stmt.Items {
		a.addItem(stmt.Kind, stmt.FiscalYear, item)
	}
}

func (a *Accumulator) addItem(kind schema.StatementKind, fiscalYear int, item schema.RawLineItem) {
	metric, ok := NormalizeLabel(kind, item.Label)
	if !ok {
		a.stats.UnmappedItems++
		a.stats.UnmappedLabels = append(a.stats.UnmappedLabels, item.Label)
		a.logger.Debug().
			Str("ticker", a.ticker).
			Str("kind", string(kind)).
			Int("fiscal_year", fiscalYear).
			Str("label", item.Label).
			Msg("unmapped label dropped")
		return
	}
	if item.Value == nil {
		a.stats.NilValues++
		return
	}
	if !isFinite(*item.Value) {
		a.stats.NonFinite++
		a.logger.Debug().
			Str("ticker", a.ticker).
			Str("label", item.Label).
			Msg("non-finite value dropped")
		return
	}

	year := a.yearFor(fiscalYear)
	if a.setMetric(year, metric, *item.Value) {
		a.stats.MappedItems++
	}
}

func (a *Accumulator) yearFor(fiscalYear int) *schema.CompanyYear {
	if year, ok := a.years[fiscalYear]; ok {
		return year
	}
	year := &schema.CompanyYear{Ticker: a.ticker, FiscalYear: fiscalYear}
	a.years[fiscalYear] = year
	return year
}

// setMetric assigns a canonical metric value under the merge policy.
// A nil field means the metric has not been written yet, so first-write
// semantics reduce to "only write empty fields".
func (a *Accumulator) setMetric(year *schema.CompanyYear, metric schema.MetricName, value float64) bool {
	field := metricField(year, metric)
	if field == nil {
		return false
	}
	if *field != nil && a.policy == schema.FirstWriteWins {
		return false
	}
	*field = schema.Float(value)
	return true
}

// metricField resolves the struct field backing a canonical metric name.
func metricField(year *schema.CompanyYear, metric schema.MetricName) **float64 {
	switch metric {
	case schema.MetricRevenue:
		return &year.Income.Revenue
	case schema.MetricCostOfRevenue:
		return &year.Income.CostOfRevenue
	case schema.MetricGrossProfit:
		return &year.Income.GrossProfit
	case schema.MetricOperatingExpenses:
		return &year.Income.OperatingExpenses
	case schema.MetricOperatingIncome:
		return &year.Income.OperatingIncome
	case schema.MetricNetIncome:
		return &year.Income.NetIncome
	case schema.MetricEBITDA:
		return &year.Income.EBITDA
	case schema.MetricEPSBasic:
		return &year.Income.EPSBasic
	case schema.MetricEPSDiluted:
		return &year.Income.EPSDiluted
	case schema.MetricTotalAssets:
		return &year.Balance.TotalAssets
	case schema.MetricTotalLiabilities:
		return &year.Balance.TotalLiabilities
	case schema.MetricTotalEquity:
		return &year.Balance.TotalEquity
	case schema.MetricCurrentAssets:
		return &year.Balance.CurrentAssets
	case schema.MetricCurrentLiabilities:
		return &year.Balance.CurrentLiabilities
	case schema.MetricCashAndEquivalents:
		return &year.Balance.CashAndEquivalents
	case schema.MetricTotalDebt:
		return &year.Balance.TotalDebt
	case schema.MetricInventory:
		return &year.Balance.Inventory
	case schema.MetricRetainedEarnings:
		return &year.Balance.RetainedEarnings
	case schema.MetricOperatingCashFlow:
		return &year.CashFlow.OperatingCashFlow
	case schema.MetricInvestingCashFlow:
		return &year.CashFlow.InvestingCashFlow
	case schema.MetricFinancingCashFlow:
		return &year.CashFlow.FinancingCashFlow
	case schema.MetricFreeCashFlow:
		return &year.CashFlow.FreeCashFlow
	case schema.MetricCapitalExpenditures:
		return &year.CashFlow.CapitalExpenditures
	case schema.MetricDividendsPaid:
		return &year.CashFlow.DividendsPaid
	case schema.MetricNetChangeInCash:
		return &year.CashFlow.NetChangeInCash
	default:
		return nil
	}
}

// Years returns the accumulated company-years ordered by fiscal year
// ascending, so growth for year Y always compares against year Y-1.
func (a *Accumulator) Years() []schema.CompanyYear {
	years := make([]schema.CompanyYear, 0, len(a.years))
	for _, year := range a.years {
		years = append(years, *year)
	}
	sort.Slice(years, func(i, j int) bool {
		return years[i].FiscalYear < years[j].FiscalYear
	})
	return years
}

// Stats returns the data-quality counters for this accumulator.
func (a *Accumulator) Stats() schema.NormalizeStats {
	return a.stats
}
