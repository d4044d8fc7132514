// Package parquet provides data structures and functions for exporting
// financial health data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/huangsam/finhealth/schema"
	"github.com/parquet-go/parquet-go"
)

// HealthRecord is the flattened Parquet row for one health assessment.
// This struct maps to the finhealth_financial_health database table.
type HealthRecord struct {
	Ticker      string `parquet:"ticker,snappy"`
	CompanyName string `parquet:"company_name,snappy"`
	FiscalYear  int32  `parquet:"fiscal_year,snappy"`

	CurrentRatio           *float64 `parquet:"current_ratio,optional,snappy"`
	QuickRatio             *float64 `parquet:"quick_ratio,optional,snappy"`
	CashRatio              *float64 `parquet:"cash_ratio,optional,snappy"`
	GrossMargin            *float64 `parquet:"gross_margin,optional,snappy"`
	OperatingMargin        *float64 `parquet:"operating_margin,optional,snappy"`
	NetMargin              *float64 `parquet:"net_margin,optional,snappy"`
	ROE                    *float64 `parquet:"roe,optional,snappy"`
	ROA                    *float64 `parquet:"roa,optional,snappy"`
	DebtToEquity           *float64 `parquet:"debt_to_equity,optional,snappy"`
	DebtToAssets           *float64 `parquet:"debt_to_assets,optional,snappy"`
	AssetTurnover          *float64 `parquet:"asset_turnover,optional,snappy"`
	OperatingCashFlowRatio *float64 `parquet:"operating_cash_flow_ratio,optional,snappy"`
	FreeCashFlowMargin     *float64 `parquet:"free_cash_flow_margin,optional,snappy"`

	RevenueGrowth *float64 `parquet:"revenue_growth,optional,snappy"`
	ProfitGrowth  *float64 `parquet:"profit_growth,optional,snappy"`

	LiquidityScore     *float64 `parquet:"liquidity_score,optional,snappy"`
	ProfitabilityScore *float64 `parquet:"profitability_score,optional,snappy"`
	LeverageScore      *float64 `parquet:"leverage_score,optional,snappy"`
	CashFlowScore      *float64 `parquet:"cash_flow_score,optional,snappy"`
	GrowthScore        *float64 `parquet:"growth_score,optional,snappy"`

	OverallScore *float64  `parquet:"overall_score,optional,snappy"`
	Status       string    `parquet:"status,snappy"`
	Variant      string    `parquet:"variant,snappy"`
	Notes        *string   `parquet:"notes,optional,snappy"`
	ComputedAt   time.Time `parquet:"computed_at,snappy"`
}

// KPIRecord is the flattened Parquet row for one KPI snapshot.
// This struct maps to the finhealth_kpi_snapshots database table.
type KPIRecord struct {
	Ticker      string `parquet:"ticker,snappy"`
	CompanyName string `parquet:"company_name,snappy"`
	FiscalYear  int32  `parquet:"fiscal_year,snappy"`

	Revenue       *float64 `parquet:"revenue,optional,snappy"`
	RevenueGrowth *float64 `parquet:"revenue_growth,optional,snappy"`
	NetIncome     *float64 `parquet:"net_income,optional,snappy"`
	ProfitGrowth  *float64 `parquet:"profit_growth,optional,snappy"`
	TotalAssets   *float64 `parquet:"total_assets,optional,snappy"`
	TotalDebt     *float64 `parquet:"total_debt,optional,snappy"`
	FreeCashFlow  *float64 `parquet:"free_cash_flow,optional,snappy"`
	CurrentRatio  *float64 `parquet:"current_ratio,optional,snappy"`
	DebtToEquity  *float64 `parquet:"debt_to_equity,optional,snappy"`
	NetMargin     *float64 `parquet:"net_margin,optional,snappy"`
	ROE           *float64 `parquet:"roe,optional,snappy"`

	HealthScore  *float64 `parquet:"health_score,optional,snappy"`
	HealthStatus string   `parquet:"health_status,snappy"`
}

// FromAssessment flattens a health assessment into a Parquet record.
func FromAssessment(a schema.HealthAssessment) HealthRecord {
	rec := HealthRecord{
		Ticker:      a.Ticker,
		CompanyName: a.CompanyName,
		FiscalYear:  int32(a.FiscalYear),

		CurrentRatio:           a.Ratios.CurrentRatio,
		QuickRatio:             a.Ratios.QuickRatio,
		CashRatio:              a.Ratios.CashRatio,
		GrossMargin:            a.Ratios.GrossMargin,
		OperatingMargin:        a.Ratios.OperatingMargin,
		NetMargin:              a.Ratios.NetMargin,
		ROE:                    a.Ratios.ROE,
		ROA:                    a.Ratios.ROA,
		DebtToEquity:           a.Ratios.DebtToEquity,
		DebtToAssets:           a.Ratios.DebtToAssets,
		AssetTurnover:          a.Ratios.AssetTurnover,
		OperatingCashFlowRatio: a.Ratios.OperatingCashFlowRatio,
		FreeCashFlowMargin:     a.Ratios.FreeCashFlowMargin,

		RevenueGrowth: a.Growth.RevenueGrowth,
		ProfitGrowth:  a.Growth.ProfitGrowth,

		OverallScore: a.OverallScore,
		Status:       string(a.Status),
		Variant:      string(a.Variant),
		ComputedAt:   a.ComputedAt,
	}
	for _, cs := range a.CategoryScores {
		score := cs.Score
		switch cs.Category {
		case schema.LiquidityCategory:
			rec.LiquidityScore = &score
		case schema.ProfitabilityCategory:
			rec.ProfitabilityScore = &score
		case schema.LeverageCategory:
			rec.LeverageScore = &score
		case schema.CashFlowCategory:
			rec.CashFlowScore = &score
		case schema.GrowthCategory:
			rec.GrowthScore = &score
		}
	}
	if len(a.Notes) > 0 {
		joined := strings.Join(a.Notes, "; ")
		rec.Notes = &joined
	}
	return rec
}

// FromSnapshot flattens a KPI snapshot into a Parquet record.
func FromSnapshot(snap schema.KPISnapshot) KPIRecord {
	return KPIRecord{
		Ticker:      snap.Ticker,
		CompanyName: snap.CompanyName,
		FiscalYear:  int32(snap.FiscalYear),

		Revenue:       snap.Revenue,
		RevenueGrowth: snap.RevenueGrowth,
		NetIncome:     snap.NetIncome,
		ProfitGrowth:  snap.ProfitGrowth,
		TotalAssets:   snap.TotalAssets,
		TotalDebt:     snap.TotalDebt,
		FreeCashFlow:  snap.FreeCashFlow,
		CurrentRatio:  snap.CurrentRatio,
		DebtToEquity:  snap.DebtToEquity,
		NetMargin:     snap.NetMargin,
		ROE:           snap.ROE,

		HealthScore:  snap.HealthScore,
		HealthStatus: string(snap.HealthStatus),
	}
}

// WriteHealthRecordsParquet writes a slice of HealthRecord structs to a Parquet file.
func WriteHealthRecordsParquet(data []HealthRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteKPIRecordsParquet writes a slice of KPIRecord structs to a Parquet file.
func WriteKPIRecordsParquet(data []KPIRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes records using struct schema inference. The schema
// is automatically derived from the struct tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
