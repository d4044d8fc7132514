package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/huangsam/finhealth/internal/contract"
	"github.com/huangsam/finhealth/schema"
	"github.com/rs/zerolog"
)

// TickerOutcome is the pipeline result for one ticker.
type TickerOutcome struct {
	Ticker      string
	Years       int
	Assessments []schema.HealthAssessment
	Stats       schema.NormalizeStats
	Err         error
}

// runPipelineCore processes all configured tickers in parallel using a
// worker pool. Each ticker is independent: a provider or warehouse
// failure aborts only that ticker's run. Results come back in no
// particular order.
func runPipelineCore(
	ctx context.Context,
	cfg *contract.Config,
	provider contract.StatementProvider,
	store contract.Warehouse,
	logger zerolog.Logger,
) []TickerOutcome {
	tickerCh := make(chan string, len(cfg.Tickers))
	outcomeCh := make(chan TickerOutcome, len(cfg.Tickers))
	var wg sync.WaitGroup

	// Start worker pool
	for range cfg.Workers {
		wg.Go(func() {
			for ticker := range tickerCh {
				outcomeCh <- analyzeTicker(ctx, cfg, provider, store, logger, ticker)
			}
		})
	}

	// Send tickers to worker channel
	for _, ticker := range cfg.Tickers {
		tickerCh <- ticker
	}
	close(tickerCh)

	// Wait for all workers to finish processing
	wg.Wait()
	close(outcomeCh)

	outcomes := make([]TickerOutcome, 0, len(cfg.Tickers))
	for outcome := range outcomeCh {
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// analyzeTicker runs the full normalize-score-persist pipeline for one
// ticker. Fiscal years are walked in ascending order carrying the prior
// year's totals, so growth for year Y compares against year Y-1.
func analyzeTicker(
	ctx context.Context,
	cfg *contract.Config,
	provider contract.StatementProvider,
	store contract.Warehouse,
	logger zerolog.Logger,
	ticker string,
) TickerOutcome {
	batch, err := provider.FetchStatements(ctx, ticker)
	if err != nil {
		return TickerOutcome{Ticker: ticker, Err: fmt.Errorf("fetch statements: %w", err)}
	}

	acc := NewAccumulator(ticker, cfg.MergePolicy, logger)
	acc.AddBatch(batch)
	years := limitToRecentYears(acc.Years(), cfg.Years)

	companyName := batch.CompanyName
	if companyName == "" {
		companyName = cfg.CompanyName(ticker)
	}

	scorer := NewScorer(cfg.Variant)
	policy := RatioPolicy{SubtractInventory: cfg.SubtractInventory}
	now := time.Now()

	var previous *schema.YearTotals
	assessments := make([]schema.HealthAssessment, 0, len(years))
	for _, year := range years {
		if err := store.SaveCompanyYear(ctx, year); err != nil {
			return TickerOutcome{Ticker: ticker, Err: fmt.Errorf("save company year %d: %w", year.FiscalYear, err)}
		}

		assessment, snapshot := BuildAssessment(year, previous, scorer, policy, companyName, now)
		if err := store.SaveAssessment(ctx, assessment, snapshot); err != nil {
			return TickerOutcome{Ticker: ticker, Err: fmt.Errorf("save assessment %d: %w", year.FiscalYear, err)}
		}
		assessments = append(assessments, assessment)

		previous = &schema.YearTotals{
			Revenue:   year.Income.Revenue,
			NetIncome: year.Income.NetIncome,
		}
	}

	stats := acc.Stats()
	logger.Info().
		Str("ticker", ticker).
		Int("years", len(years)).
		Int("mapped", stats.MappedItems).
		Int("unmapped", stats.UnmappedItems).
		Msg("ticker pipeline complete")

	return TickerOutcome{
		Ticker:      ticker,
		Years:       len(years),
		Assessments: assessments,
		Stats:       stats,
	}
}

// BuildAssessment computes the full scoring outcome for one company-year.
// It is pure given the scorer: ratios, growth, category scores, status and
// notes all derive from the year's metrics plus the prior year's totals.
func BuildAssessment(
	year schema.CompanyYear,
	previous *schema.YearTotals,
	scorer Scorer,
	policy RatioPolicy,
	companyName string,
	computedAt time.Time,
) (schema.HealthAssessment, schema.KPISnapshot) {
	ratios := ComputeRatios(year, policy)
	growth := ComputeGrowth(schema.YearTotals{
		Revenue:   year.Income.Revenue,
		NetIncome: year.Income.NetIncome,
	}, previous)

	overall, categories := scorer.Score(ratios, growth)
	status := schema.StatusForScore(overall)
	notes := BuildNotes(ratios, growth)

	assessment := schema.HealthAssessment{
		Ticker:         year.Ticker,
		CompanyName:    companyName,
		FiscalYear:     year.FiscalYear,
		Ratios:         ratios,
		Growth:         growth,
		CategoryScores: categories,
		OverallScore:   overall,
		Status:         status,
		Notes:          notes,
		Variant:        scorer.Variant(),
		ComputedAt:     computedAt,
	}

	snapshot := schema.KPISnapshot{
		Ticker:        year.Ticker,
		CompanyName:   companyName,
		FiscalYear:    year.FiscalYear,
		Revenue:       year.Income.Revenue,
		RevenueGrowth: growth.RevenueGrowth,
		NetIncome:     year.Income.NetIncome,
		ProfitGrowth:  growth.ProfitGrowth,
		TotalAssets:   year.Balance.TotalAssets,
		TotalDebt:     schema.Coalesce(year.Balance.TotalDebt, year.Balance.TotalLiabilities),
		FreeCashFlow:  year.CashFlow.FreeCashFlow,
		CurrentRatio:  ratios.CurrentRatio,
		DebtToEquity:  ratios.DebtToEquity,
		NetMargin:     ratios.NetMargin,
		ROE:           ratios.ROE,
		HealthScore:   overall,
		HealthStatus:  status,
	}

	return assessment, snapshot
}

// limitToRecentYears keeps the most recent n fiscal years while
// preserving ascending order.
func limitToRecentYears(years []schema.CompanyYear, n int) []schema.CompanyYear {
	if len(years) <= n {
		return years
	}
	return years[len(years)-n:]
}
