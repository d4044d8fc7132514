// Package core has core logic for normalization, scoring and ranking.
package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/huangsam/finhealth/internal/contract"
	"github.com/huangsam/finhealth/internal/outwriter"
	"github.com/huangsam/finhealth/internal/provider"
	"github.com/huangsam/finhealth/internal/warehouse"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecutePipeline ingests statements for all configured tickers,
// normalizes them, computes assessments and persists everything.
// It serves as the main entry point for the 'pipeline' command.
func ExecutePipeline(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	logger := contract.NewLogger(cfg.Verbose)

	prov := provider.NewFileProvider(cfg.DataDir, logger)
	store, err := warehouse.NewStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			contract.LogWarn("Failed to close warehouse", err)
		}
	}()

	outcomes := runPipelineCore(ctx, cfg, prov, store, logger)
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].Ticker < outcomes[j].Ticker
	})

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
			contract.LogWarn(fmt.Sprintf("Pipeline failed for %s", outcome.Ticker), outcome.Err)
		}
	}

	logger.Info().
		Int("tickers", len(outcomes)).
		Int("failed", failed).
		Dur("duration", time.Since(start)).
		Msg("pipeline complete")

	if len(outcomes) > 0 && failed == len(outcomes) {
		return errors.New("pipeline failed for all tickers")
	}
	return nil
}

// ExecuteRank loads the latest assessment per company, ranks them by
// overall score and prints the result.
// It serves as the main entry point for the 'rank' command.
func ExecuteRank(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	store, err := warehouse.NewStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	assessments, err := store.LoadLatestAssessments(ctx)
	if err != nil {
		return err
	}
	if len(assessments) == 0 {
		return errors.New("no assessments found; run 'finhealth pipeline' first")
	}

	rankings := RankCompanies(assessments, cfg.ResultLimit)
	return outwriter.PrintRankings(rankings, cfg, time.Since(start))
}

// ExecuteReport prints the per-company narrative health report for the
// most recent assessed fiscal year.
// It serves as the main entry point for the 'report' command.
func ExecuteReport(ctx context.Context, cfg *contract.Config, ticker string) error {
	store, err := warehouse.NewStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	assessments, err := store.LoadAssessments(ctx, ticker)
	if err != nil {
		return err
	}
	if len(assessments) == 0 {
		return fmt.Errorf("no assessments found for %s; run 'finhealth pipeline' first", ticker)
	}

	// Assessments come back in ascending fiscal year order
	latest := assessments[len(assessments)-1]
	return outwriter.PrintReport(latest, cfg)
}

// ExecuteExport dumps all assessments and KPI snapshots in the configured
// output format.
// It serves as the main entry point for the 'export' command.
func ExecuteExport(ctx context.Context, cfg *contract.Config) error {
	store, err := warehouse.NewStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	assessments, err := store.LoadAllAssessments(ctx)
	if err != nil {
		return err
	}
	snapshots, err := store.LoadKPISnapshots(ctx)
	if err != nil {
		return err
	}
	if len(assessments) == 0 && len(snapshots) == 0 {
		return errors.New("nothing to export; run 'finhealth pipeline' first")
	}

	return outwriter.ExportResults(assessments, snapshots, cfg)
}
