package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/finhealth/internal/contract"
	"github.com/huangsam/finhealth/internal/parquet"
	"github.com/huangsam/finhealth/schema"
)

// exportDocument is the combined JSON export payload.
type exportDocument struct {
	Assessments  []schema.HealthAssessment `json:"assessments"`
	KPISnapshots []schema.KPISnapshot      `json:"kpi_snapshots"`
}

// ExportResults dumps all assessments and KPI snapshots, dispatching
// based on the output format configured.
func ExportResults(assessments []schema.HealthAssessment, snapshots []schema.KPISnapshot, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, exportDocument{Assessments: assessments, KPISnapshots: snapshots})
		}, "Wrote JSON")
	case schema.CSVOut:
		return exportCSV(assessments, snapshots, cfg)
	case schema.ParquetOut:
		return exportParquet(assessments, snapshots, cfg)
	default:
		return fmt.Errorf("%s output is not supported for export; use csv, json or parquet", cfg.Output)
	}
}

// exportCSV writes the assessments as CSV. When writing to a file, the
// KPI snapshots land in a sibling file with a _kpi suffix.
func exportCSV(assessments []schema.HealthAssessment, snapshots []schema.KPISnapshot, cfg *contract.Config) error {
	fmtRatio, _ := createFormatters(cfg.Precision)

	if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeAssessmentCSV(w, assessments, fmtRatio)
	}, "Wrote CSV"); err != nil {
		return err
	}

	// Snapshots only go to disk; stdout gets assessments alone
	if cfg.OutputFile == "" {
		return nil
	}
	kpiFile := siblingFile(cfg.OutputFile, "_kpi")
	return writeWithFile(kpiFile, func(w io.Writer) error {
		return writeSnapshotCSV(w, snapshots, fmtRatio)
	}, "Wrote CSV")
}

// exportParquet writes assessments and snapshots as two Parquet files.
func exportParquet(assessments []schema.HealthAssessment, snapshots []schema.KPISnapshot, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet export requires --output-file")
	}

	healthRecords := make([]parquet.HealthRecord, len(assessments))
	for i, a := range assessments {
		healthRecords[i] = parquet.FromAssessment(a)
	}
	kpiRecords := make([]parquet.KPIRecord, len(snapshots))
	for i, snap := range snapshots {
		kpiRecords[i] = parquet.FromSnapshot(snap)
	}

	healthFile := siblingFile(cfg.OutputFile, "_health")
	if err := parquet.WriteHealthRecordsParquet(healthRecords, healthFile); err != nil {
		return err
	}
	kpiFile := siblingFile(cfg.OutputFile, "_kpi")
	if err := parquet.WriteKPIRecordsParquet(kpiRecords, kpiFile); err != nil {
		return err
	}

	fmt.Printf("Wrote %d assessments to %s and %d snapshots to %s\n",
		len(healthRecords), healthFile, len(kpiRecords), kpiFile)
	return nil
}

// siblingFile inserts a suffix before the file extension.
func siblingFile(path, suffix string) string {
	if idx := strings.LastIndex(path, "."); idx > 0 {
		return path[:idx] + suffix + path[idx:]
	}
	return path + suffix
}

// writeAssessmentCSV writes the full assessment table in CSV format.
func writeAssessmentCSV(w io.Writer, assessments []schema.HealthAssessment, fmtRatio func(*float64) string) error {
	header := []string{
		"ticker", "company", "fiscal_year",
		"current_ratio", "quick_ratio", "cash_ratio",
		"gross_margin", "operating_margin", "net_margin", "roe", "roa",
		"debt_to_equity", "debt_to_assets", "asset_turnover",
		"operating_cash_flow_ratio", "free_cash_flow_margin",
		"revenue_growth", "profit_growth",
		"overall_score", "status", "variant", "notes", "computed_at",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, a := range assessments {
			rec := []string{
				a.Ticker, a.CompanyName, strconv.Itoa(a.FiscalYear),
				fmtRatio(a.Ratios.CurrentRatio), fmtRatio(a.Ratios.QuickRatio), fmtRatio(a.Ratios.CashRatio),
				fmtRatio(a.Ratios.GrossMargin), fmtRatio(a.Ratios.OperatingMargin), fmtRatio(a.Ratios.NetMargin),
				fmtRatio(a.Ratios.ROE), fmtRatio(a.Ratios.ROA),
				fmtRatio(a.Ratios.DebtToEquity), fmtRatio(a.Ratios.DebtToAssets), fmtRatio(a.Ratios.AssetTurnover),
				fmtRatio(a.Ratios.OperatingCashFlowRatio), fmtRatio(a.Ratios.FreeCashFlowMargin),
				fmtRatio(a.Growth.RevenueGrowth), fmtRatio(a.Growth.ProfitGrowth),
				fmtRatio(a.OverallScore), contract.GetPlainStatusLabel(a.Status), string(a.Variant),
				strings.Join(a.Notes, "|"),
				a.ComputedAt.Format(time.RFC3339),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeSnapshotCSV writes the KPI snapshot table in CSV format.
func writeSnapshotCSV(w io.Writer, snapshots []schema.KPISnapshot, fmtRatio func(*float64) string) error {
	header := []string{
		"ticker", "company", "fiscal_year",
		"revenue", "revenue_growth", "net_income", "profit_growth",
		"total_assets", "total_debt", "free_cash_flow",
		"current_ratio", "debt_to_equity", "net_margin", "roe",
		"health_score", "health_status",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, snap := range snapshots {
			rec := []string{
				snap.Ticker, snap.CompanyName, strconv.Itoa(snap.FiscalYear),
				fmtRatio(snap.Revenue), fmtRatio(snap.RevenueGrowth),
				fmtRatio(snap.NetIncome), fmtRatio(snap.ProfitGrowth),
				fmtRatio(snap.TotalAssets), fmtRatio(snap.TotalDebt), fmtRatio(snap.FreeCashFlow),
				fmtRatio(snap.CurrentRatio), fmtRatio(snap.DebtToEquity),
				fmtRatio(snap.NetMargin), fmtRatio(snap.ROE),
				fmtRatio(snap.HealthScore), contract.GetPlainStatusLabel(snap.HealthStatus),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
