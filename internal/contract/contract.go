// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/finhealth/schema"
)

// StatementProvider defines the boundary for retrieving raw financial
// statements. Network retrieval lives behind this interface; the shipped
// implementation reads provider snapshots from the local filesystem.
// This allows the pipeline to be tested without any data source.
type StatementProvider interface {
	// FetchStatements returns all raw statements for one ticker across
	// statement kinds and fiscal years. A failure aborts only that
	// ticker's pipeline run.
	FetchStatements(ctx context.Context, ticker string) (schema.StatementBatch, error)
}

// Warehouse defines the interface for persisting normalized metrics and
// scoring results. This allows mocking the store for testing.
type Warehouse interface {
	// SaveCompanyYear upserts the normalized statements for one company-year.
	SaveCompanyYear(ctx context.Context, year schema.CompanyYear) error

	// SaveAssessment replaces the health assessment and KPI snapshot for
	// one company-year (full refresh, not incremental).
	SaveAssessment(ctx context.Context, assessment schema.HealthAssessment, snapshot schema.KPISnapshot) error

	// LoadCompanyYears returns all normalized company-years for a ticker,
	// ordered by fiscal year ascending.
	LoadCompanyYears(ctx context.Context, ticker string) ([]schema.CompanyYear, error)

	// LoadAssessments returns all assessments for a ticker, ordered by
	// fiscal year ascending.
	LoadAssessments(ctx context.Context, ticker string) ([]schema.HealthAssessment, error)

	// LoadLatestAssessments returns the most recent fiscal year's
	// assessment per ticker.
	LoadLatestAssessments(ctx context.Context) ([]schema.HealthAssessment, error)

	// LoadAllAssessments returns every stored assessment, ordered by
	// ticker then fiscal year.
	LoadAllAssessments(ctx context.Context) ([]schema.HealthAssessment, error)

	// LoadKPISnapshots returns all KPI snapshots across tickers, ordered
	// by ticker then fiscal year.
	LoadKPISnapshots(ctx context.Context) ([]schema.KPISnapshot, error)

	// GetStatus returns status information about the warehouse.
	GetStatus() (schema.WarehouseStatus, error)

	// Clear removes all stored rows.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}
