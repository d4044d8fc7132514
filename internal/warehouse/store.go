// Package warehouse persists normalized statements and scoring results
// across sqlite, mysql and postgresql backends.
package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/huangsam/finhealth/internal/contract"
	"github.com/huangsam/finhealth/schema"

	// Database drivers registered for database/sql.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Table names for the warehouse.
const (
	incomeTable    = "finhealth_income_statements"
	balanceTable   = "finhealth_balance_sheets"
	cashFlowTable  = "finhealth_cash_flows"
	healthTable    = "finhealth_financial_health"
	snapshotsTable = "finhealth_kpi_snapshots"
)

// Store implements the Warehouse interface over database/sql.
type Store struct {
	db       *sql.DB
	backend  schema.DatabaseBackend
	location string // resolved SQLite file path, empty for other backends
}

var _ contract.Warehouse = &Store{} // Compile-time check

// NewStore creates a new Warehouse with the backend from the config.
// The none backend yields a store whose writes are no-ops and whose
// reads return empty results.
func NewStore(cfg *contract.Config) (contract.Warehouse, error) {
	return newStore(cfg.WarehouseBackend, cfg.WarehouseDBConnect)
}

func newStore(backend schema.DatabaseBackend, connStr string) (contract.Warehouse, error) {
	var db *sql.DB
	var err error
	var location string

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetWarehouseDBFilePath()
		}
		location = dbPath
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=... dbname=...", err)
		}

	case schema.NoneBackend:
		return &Store{db: nil, backend: backend}, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w. Verify the database server is running and accessible", backend, err)
	}

	// Create the table schemas
	if err := createWarehouseTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create warehouse tables: %w", err)
	}

	return &Store{db: db, backend: backend, location: location}, nil
}

// placeholders builds the argument placeholder list for a backend.
func placeholders(backend schema.DatabaseBackend, n int) string {
	parts := make([]string, n)
	for i := range n {
		if backend == schema.PostgreSQLBackend {
			parts[i] = fmt.Sprintf("$%d", i+1)
		} else {
			parts[i] = "?"
		}
	}
	return strings.Join(parts, ", ")
}

// floatType returns the floating point column type for a backend.
func floatType(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return "DOUBLE"
	case schema.PostgreSQLBackend:
		return "DOUBLE PRECISION"
	default: // SQLite
		return "REAL"
	}
}

// tickerType returns the ticker column type. MySQL needs a sized VARCHAR
// for primary key columns.
func tickerType(backend schema.DatabaseBackend) string {
	if backend == schema.MySQLBackend {
		return "VARCHAR(16)"
	}
	return "TEXT"
}

// timeType returns the timestamp column type. SQLite stores RFC3339 text.
func timeType(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return "DATETIME(6)"
	case schema.PostgreSQLBackend:
		return "TIMESTAMPTZ"
	default: // SQLite
		return "TEXT"
	}
}

// formatTime converts a time.Time to the appropriate format for the backend.
func formatTime(t time.Time, backend schema.DatabaseBackend) any {
	if backend == schema.SQLiteBackend {
		return t.Format(time.RFC3339Nano)
	}
	return t
}

// statement metric columns per table, in insert order.
var (
	incomeColumns = []string{
		"revenue", "cost_of_revenue", "gross_profit", "operating_expenses",
		"operating_income", "net_income", "ebitda", "eps_basic", "eps_diluted",
	}
	balanceColumns = []string{
		"total_assets", "total_liabilities", "total_equity", "current_assets",
		"current_liabilities", "cash_and_equivalents", "total_debt", "inventory",
		"retained_earnings",
	}
	cashFlowColumns = []string{
		"operating_cash_flow", "investing_cash_flow", "financing_cash_flow",
		"free_cash_flow", "capital_expenditures", "dividends_paid",
		"net_change_in_cash",
	}
)

// createWarehouseTables creates all warehouse tables for a backend.
func createWarehouseTables(db *sql.DB, backend schema.DatabaseBackend) error {
	ft := floatType(backend)
	tt := tickerType(backend)

	statementTable := func(table string, columns []string) string {
		cols := make([]string, 0, len(columns))
		for _, c := range columns {
			cols = append(cols, fmt.Sprintf("%s %s", c, ft))
		}
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				ticker %s NOT NULL,
				fiscal_year INTEGER NOT NULL,
				%s,
				PRIMARY KEY (ticker, fiscal_year)
			);
		`, table, tt, strings.Join(cols, ",\n\t\t\t\t"))
	}

	healthDDL := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			ticker %s NOT NULL,
			company_name TEXT,
			fiscal_year INTEGER NOT NULL,
			current_ratio %s, quick_ratio %s, cash_ratio %s,
			gross_margin %s, operating_margin %s, net_margin %s, roe %s, roa %s,
			debt_to_equity %s, debt_to_assets %s, asset_turnover %s,
			operating_cash_flow_ratio %s, free_cash_flow_margin %s,
			revenue_growth %s, profit_growth %s,
			liquidity_score %s, profitability_score %s, leverage_score %s,
			cash_flow_score %s, growth_score %s,
			overall_score %s,
			status TEXT NOT NULL,
			variant TEXT NOT NULL,
			notes TEXT,
			computed_at %s NOT NULL,
			PRIMARY KEY (ticker, fiscal_year)
		);
	`, healthTable, tt,
		ft, ft, ft, ft, ft, ft, ft, ft, ft, ft, ft, ft, ft,
		ft, ft, ft, ft, ft, ft, ft, ft,
		timeType(backend))

	snapshotDDL := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			ticker %s NOT NULL,
			company_name TEXT,
			fiscal_year INTEGER NOT NULL,
			revenue %s, revenue_growth %s, net_income %s, profit_growth %s,
			total_assets %s, total_debt %s, free_cash_flow %s,
			current_ratio %s, debt_to_equity %s, net_margin %s, roe %s,
			health_score %s,
			health_status TEXT NOT NULL,
			PRIMARY KEY (ticker, fiscal_year)
		);
	`, snapshotsTable, tt, ft, ft, ft, ft, ft, ft, ft, ft, ft, ft, ft, ft)

	queries := []string{
		statementTable(incomeTable, incomeColumns),
		statementTable(balanceTable, balanceColumns),
		statementTable(cashFlowTable, cashFlowColumns),
		healthDDL,
		snapshotDDL,
	}
	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// replaceRow implements full-refresh semantics: delete any previous row
// for the company-year, then insert the new one. This stays portable
// across all three backends.
func (s *Store) replaceRow(ctx context.Context, table string, columns []string, ticker string, fiscalYear int, values []any) error {
	deleteQuery := fmt.Sprintf(
		"DELETE FROM %s WHERE ticker = %s AND fiscal_year = %s",
		table,
		placeholderAt(s.backend, 1),
		placeholderAt(s.backend, 2),
	)
	if _, err := s.db.ExecContext(ctx, deleteQuery, ticker, fiscalYear); err != nil {
		return fmt.Errorf("failed to clear previous row in %s: %w", table, err)
	}

	allColumns := append([]string{"ticker", "fiscal_year"}, columns...)
	allValues := append([]any{ticker, fiscalYear}, values...)
	insertQuery := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(allColumns, ", "),
		placeholders(s.backend, len(allValues)),
	)
	if _, err := s.db.ExecContext(ctx, insertQuery, allValues...); err != nil {
		return fmt.Errorf("failed to insert row into %s: %w", table, err)
	}
	return nil
}

// placeholderAt returns the placeholder token at a 1-based position.
func placeholderAt(backend schema.DatabaseBackend, pos int) string {
	if backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", pos)
	}
	return "?"
}

// SaveCompanyYear upserts the normalized statements for one company-year.
func (s *Store) SaveCompanyYear(ctx context.Context, year schema.CompanyYear) error {
	if s.db == nil {
		return nil
	}

	income := year.Income
	if err := s.replaceRow(ctx, incomeTable, incomeColumns, year.Ticker, year.FiscalYear, []any{
		income.Revenue, income.CostOfRevenue, income.GrossProfit, income.OperatingExpenses,
		income.OperatingIncome, income.NetIncome, income.EBITDA, income.EPSBasic, income.EPSDiluted,
	}); err != nil {
		return err
	}

	balance := year.Balance
	if err := s.replaceRow(ctx, balanceTable, balanceColumns, year.Ticker, year.FiscalYear, []any{
		balance.TotalAssets, balance.TotalLiabilities, balance.TotalEquity, balance.CurrentAssets,
		balance.CurrentLiabilities, balance.CashAndEquivalents, balance.TotalDebt, balance.Inventory,
		balance.RetainedEarnings,
	}); err != nil {
		return err
	}

	cashflow := year.CashFlow
	return s.replaceRow(ctx, cashFlowTable, cashFlowColumns, year.Ticker, year.FiscalYear, []any{
		cashflow.OperatingCashFlow, cashflow.InvestingCashFlow, cashflow.FinancingCashFlow,
		cashflow.FreeCashFlow, cashflow.CapitalExpenditures, cashflow.DividendsPaid,
		cashflow.NetChangeInCash,
	})
}

// healthColumns lists the financial_health columns after the key columns,
// in insert order.
var healthColumns = []string{
	"company_name",
	"current_ratio", "quick_ratio", "cash_ratio",
	"gross_margin", "operating_margin", "net_margin", "roe", "roa",
	"debt_to_equity", "debt_to_assets", "asset_turnover",
	"operating_cash_flow_ratio", "free_cash_flow_margin",
	"revenue_growth", "profit_growth",
	"liquidity_score", "profitability_score", "leverage_score",
	"cash_flow_score", "growth_score",
	"overall_score", "status", "variant", "notes", "computed_at",
}

// snapshotColumns lists the kpi_snapshots columns after the key columns.
var snapshotColumns = []string{
	"company_name",
	"revenue", "revenue_growth", "net_income", "profit_growth",
	"total_assets", "total_debt", "free_cash_flow",
	"current_ratio", "debt_to_equity", "net_margin", "roe",
	"health_score", "health_status",
}

// SaveAssessment replaces the assessment and KPI snapshot for one
// company-year.
func (s *Store) SaveAssessment(ctx context.Context, a schema.HealthAssessment, snap schema.KPISnapshot) error {
	if s.db == nil {
		return nil
	}

	categoryScores := categoryScoreColumns(a.CategoryScores)
	r := a.Ratios
	if err := s.replaceRow(ctx, healthTable, healthColumns, a.Ticker, a.FiscalYear, []any{
		a.CompanyName,
		r.CurrentRatio, r.QuickRatio, r.CashRatio,
		r.GrossMargin, r.OperatingMargin, r.NetMargin, r.ROE, r.ROA,
		r.DebtToEquity, r.DebtToAssets, r.AssetTurnover,
		r.OperatingCashFlowRatio, r.FreeCashFlowMargin,
		a.Growth.RevenueGrowth, a.Growth.ProfitGrowth,
		categoryScores[schema.LiquidityCategory],
		categoryScores[schema.ProfitabilityCategory],
		categoryScores[schema.LeverageCategory],
		categoryScores[schema.CashFlowCategory],
		categoryScores[schema.GrowthCategory],
		a.OverallScore, string(a.Status), string(a.Variant),
		joinedNotes(a.Notes), formatTime(a.ComputedAt, s.backend),
	}); err != nil {
		return err
	}

	return s.replaceRow(ctx, snapshotsTable, snapshotColumns, snap.Ticker, snap.FiscalYear, []any{
		snap.CompanyName,
		snap.Revenue, snap.RevenueGrowth, snap.NetIncome, snap.ProfitGrowth,
		snap.TotalAssets, snap.TotalDebt, snap.FreeCashFlow,
		snap.CurrentRatio, snap.DebtToEquity, snap.NetMargin, snap.ROE,
		snap.HealthScore, string(snap.HealthStatus),
	})
}

// categoryScoreColumns spreads category scores into nullable columns.
func categoryScoreColumns(scores []schema.CategoryScore) map[schema.RatioCategory]*float64 {
	columns := map[schema.RatioCategory]*float64{
		schema.LiquidityCategory:     nil,
		schema.ProfitabilityCategory: nil,
		schema.LeverageCategory:      nil,
		schema.CashFlowCategory:      nil,
		schema.GrowthCategory:        nil,
	}
	for _, cs := range scores {
		columns[cs.Category] = schema.Float(cs.Score)
	}
	return columns
}

// joinedNotes stores the note list as a single delimited string; nil
// collapses to the empty string rather than NULL so scans stay simple.
func joinedNotes(notes []string) string {
	return strings.Join(notes, "; ")
}

func splitNotes(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, "; ")
}

// nullable converts a scanned NullFloat64 back to a pointer.
func nullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return schema.Float(v.Float64)
}

// LoadCompanyYears returns all normalized company-years for a ticker,
// ordered by fiscal year ascending.
func (s *Store) LoadCompanyYears(ctx context.Context, ticker string) ([]schema.CompanyYear, error) {
	if s.db == nil {
		return nil, nil
	}

	years := make(map[int]*schema.CompanyYear)
	yearFor := func(fiscalYear int) *schema.CompanyYear {
		if y, ok := years[fiscalYear]; ok {
			return y
		}
		y := &schema.CompanyYear{Ticker: ticker, FiscalYear: fiscalYear}
		years[fiscalYear] = y
		return y
	}

	if err := s.loadStatementRows(ctx, incomeTable, incomeColumns, ticker, func(fiscalYear int, values []*float64) {
		y := yearFor(fiscalYear)
		y.Income = schema.IncomeMetrics{
			Revenue: values[0], CostOfRevenue: values[1], GrossProfit: values[2],
			OperatingExpenses: values[3], OperatingIncome: values[4], NetIncome: values[5],
			EBITDA: values[6], EPSBasic: values[7], EPSDiluted: values[8],
		}
	}); err != nil {
		return nil, err
	}

	if err := s.loadStatementRows(ctx, balanceTable, balanceColumns, ticker, func(fiscalYear int, values []*float64) {
		y := yearFor(fiscalYear)
		y.Balance = schema.BalanceMetrics{
			TotalAssets: values[0], TotalLiabilities: values[1], TotalEquity: values[2],
			CurrentAssets: values[3], CurrentLiabilities: values[4], CashAndEquivalents: values[5],
			TotalDebt: values[6], Inventory: values[7], RetainedEarnings: values[8],
		}
	}); err != nil {
		return nil, err
	}

	if err := s.loadStatementRows(ctx, cashFlowTable, cashFlowColumns, ticker, func(fiscalYear int, values []*float64) {
		y := yearFor(fiscalYear)
		y.CashFlow = schema.CashFlowMetrics{
			OperatingCashFlow: values[0], InvestingCashFlow: values[1], FinancingCashFlow: values[2],
			FreeCashFlow: values[3], CapitalExpenditures: values[4], DividendsPaid: values[5],
			NetChangeInCash: values[6],
		}
	}); err != nil {
		return nil, err
	}

	result := make([]schema.CompanyYear, 0, len(years))
	for _, y := range years {
		result = append(result, *y)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].FiscalYear < result[j].FiscalYear
	})
	return result, nil
}

// loadStatementRows streams one statement table's rows for a ticker into
// the provided assignment callback.
func (s *Store) loadStatementRows(ctx context.Context, table string, columns []string, ticker string, assign func(fiscalYear int, values []*float64)) error {
	query := fmt.Sprintf(
		"SELECT fiscal_year, %s FROM %s WHERE ticker = %s ORDER BY fiscal_year",
		strings.Join(columns, ", "), table, placeholderAt(s.backend, 1),
	)
	rows, err := s.db.QueryContext(ctx, query, ticker)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var fiscalYear int
		nulls := make([]sql.NullFloat64, len(columns))
		dest := make([]any, 0, len(columns)+1)
		dest = append(dest, &fiscalYear)
		for i := range nulls {
			dest = append(dest, &nulls[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		values := make([]*float64, len(columns))
		for i, n := range nulls {
			values[i] = nullable(n)
		}
		assign(fiscalYear, values)
	}
	return rows.Err()
}

// assessmentSelect is the shared column list for assessment reads.
const assessmentSelect = `ticker, company_name, fiscal_year,
	current_ratio, quick_ratio, cash_ratio,
	gross_margin, operating_margin, net_margin, roe, roa,
	debt_to_equity, debt_to_assets, asset_turnover,
	operating_cash_flow_ratio, free_cash_flow_margin,
	revenue_growth, profit_growth,
	liquidity_score, profitability_score, leverage_score,
	cash_flow_score, growth_score,
	overall_score, status, variant, notes, computed_at`

// scanAssessment reads one assessment row.
func (s *Store) scanAssessment(rows *sql.Rows) (schema.HealthAssessment, error) {
	var a schema.HealthAssessment
	var companyName sql.NullString
	ratios := make([]sql.NullFloat64, 13)
	var revenueGrowth, profitGrowth sql.NullFloat64
	categories := make([]sql.NullFloat64, 5)
	var overall sql.NullFloat64
	var status, variant string
	var notes sql.NullString

	dest := []any{&a.Ticker, &companyName, &a.FiscalYear}
	for i := range ratios {
		dest = append(dest, &ratios[i])
	}
	dest = append(dest, &revenueGrowth, &profitGrowth)
	for i := range categories {
		dest = append(dest, &categories[i])
	}
	dest = append(dest, &overall, &status, &variant, &notes)

	if s.backend == schema.SQLiteBackend {
		var computedAtStr string
		dest = append(dest, &computedAtStr)
		if err := rows.Scan(dest...); err != nil {
			return a, fmt.Errorf("failed to scan assessment: %w", err)
		}
		computedAt, err := time.Parse(time.RFC3339Nano, computedAtStr)
		if err != nil {
			return a, fmt.Errorf("failed to parse computed_at: %w", err)
		}
		a.ComputedAt = computedAt
	} else {
		dest = append(dest, &a.ComputedAt)
		if err := rows.Scan(dest...); err != nil {
			return a, fmt.Errorf("failed to scan assessment: %w", err)
		}
	}

	a.CompanyName = companyName.String
	a.Ratios = schema.RatioSet{
		CurrentRatio: nullable(ratios[0]), QuickRatio: nullable(ratios[1]), CashRatio: nullable(ratios[2]),
		GrossMargin: nullable(ratios[3]), OperatingMargin: nullable(ratios[4]), NetMargin: nullable(ratios[5]),
		ROE: nullable(ratios[6]), ROA: nullable(ratios[7]),
		DebtToEquity: nullable(ratios[8]), DebtToAssets: nullable(ratios[9]), AssetTurnover: nullable(ratios[10]),
		OperatingCashFlowRatio: nullable(ratios[11]), FreeCashFlowMargin: nullable(ratios[12]),
	}
	a.Growth = schema.GrowthRates{
		RevenueGrowth: nullable(revenueGrowth),
		ProfitGrowth:  nullable(profitGrowth),
	}

	orderedCategories := []schema.RatioCategory{
		schema.LiquidityCategory, schema.ProfitabilityCategory, schema.LeverageCategory,
		schema.CashFlowCategory, schema.GrowthCategory,
	}
	for i, category := range orderedCategories {
		if score := nullable(categories[i]); score != nil {
			a.CategoryScores = append(a.CategoryScores, schema.CategoryScore{Category: category, Score: *score})
		}
	}

	a.OverallScore = nullable(overall)
	a.Status = schema.HealthStatus(status)
	a.Variant = schema.ScorerVariant(variant)
	a.Notes = splitNotes(notes.String)
	return a, nil
}

func (s *Store) queryAssessments(ctx context.Context, query string, args ...any) ([]schema.HealthAssessment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assessments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.HealthAssessment
	for rows.Next() {
		a, err := s.scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, a)
	}
	return results, rows.Err()
}

// LoadAssessments returns all assessments for a ticker, ordered by
// fiscal year ascending.
func (s *Store) LoadAssessments(ctx context.Context, ticker string) ([]schema.HealthAssessment, error) {
	if s.db == nil {
		return nil, nil
	}
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE ticker = %s ORDER BY fiscal_year",
		assessmentSelect, healthTable, placeholderAt(s.backend, 1),
	)
	return s.queryAssessments(ctx, query, ticker)
}

// LoadLatestAssessments returns the most recent fiscal year's assessment
// per ticker.
func (s *Store) LoadLatestAssessments(ctx context.Context) ([]schema.HealthAssessment, error) {
	if s.db == nil {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM %s h
		WHERE fiscal_year = (SELECT MAX(fiscal_year) FROM %s WHERE ticker = h.ticker)
		ORDER BY ticker`, assessmentSelect, healthTable, healthTable)
	return s.queryAssessments(ctx, query)
}

// LoadAllAssessments returns every stored assessment, ordered by ticker
// then fiscal year.
func (s *Store) LoadAllAssessments(ctx context.Context) ([]schema.HealthAssessment, error) {
	if s.db == nil {
		return nil, nil
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY ticker, fiscal_year", assessmentSelect, healthTable)
	return s.queryAssessments(ctx, query)
}

// LoadKPISnapshots returns all KPI snapshots, ordered by ticker then
// fiscal year.
func (s *Store) LoadKPISnapshots(ctx context.Context) ([]schema.KPISnapshot, error) {
	if s.db == nil {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT ticker, company_name, fiscal_year,
		revenue, revenue_growth, net_income, profit_growth,
		total_assets, total_debt, free_cash_flow,
		current_ratio, debt_to_equity, net_margin, roe,
		health_score, health_status
		FROM %s ORDER BY ticker, fiscal_year`, snapshotsTable)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.KPISnapshot
	for rows.Next() {
		var snap schema.KPISnapshot
		var companyName sql.NullString
		nulls := make([]sql.NullFloat64, 12)
		var status string

		dest := []any{&snap.Ticker, &companyName, &snap.FiscalYear}
		for i := range nulls {
			dest = append(dest, &nulls[i])
		}
		dest = append(dest, &status)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}

		snap.CompanyName = companyName.String
		snap.Revenue = nullable(nulls[0])
		snap.RevenueGrowth = nullable(nulls[1])
		snap.NetIncome = nullable(nulls[2])
		snap.ProfitGrowth = nullable(nulls[3])
		snap.TotalAssets = nullable(nulls[4])
		snap.TotalDebt = nullable(nulls[5])
		snap.FreeCashFlow = nullable(nulls[6])
		snap.CurrentRatio = nullable(nulls[7])
		snap.DebtToEquity = nullable(nulls[8])
		snap.NetMargin = nullable(nulls[9])
		snap.ROE = nullable(nulls[10])
		snap.HealthScore = nullable(nulls[11])
		snap.HealthStatus = schema.HealthStatus(status)
		results = append(results, snap)
	}
	return results, rows.Err()
}

// GetStatus returns status information about the warehouse.
func (s *Store) GetStatus() (schema.WarehouseStatus, error) {
	status := schema.WarehouseStatus{Backend: s.backend, Location: s.location}
	if s.db == nil {
		return status, nil
	}

	counts := []struct {
		table string
		dest  *int
	}{
		{incomeTable, &status.CompanyYears},
		{healthTable, &status.Assessments},
		{snapshotsTable, &status.Snapshots},
	}
	for _, c := range counts {
		row := s.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", c.table))
		if err := row.Scan(c.dest); err != nil {
			return status, fmt.Errorf("failed to count rows in %s: %w", c.table, err)
		}
	}
	return status, nil
}

// Clear removes all stored rows.
func (s *Store) Clear() error {
	if s.db == nil {
		return nil
	}
	tables := []string{incomeTable, balanceTable, cashFlowTable, healthTable, snapshotsTable}
	for _, table := range tables {
		if _, err := s.db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
