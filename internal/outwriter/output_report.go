package outwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/finhealth/internal/contract"
	"github.com/huangsam/finhealth/schema"
)

// barWidth is the character width of category score bars.
const barWidth = 20

// PrintReport outputs the narrative health report for one company-year,
// dispatching based on the output format configured.
func PrintReport(a schema.HealthAssessment, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, a)
		}, "Wrote JSON")
	case schema.CSVOut, schema.ParquetOut:
		return fmt.Errorf("%s output is not supported for reports; use text or json", cfg.Output)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportText(a, cfg, w)
		}, "Wrote report")
	}
}

// writeReportText renders the human-readable report.
func writeReportText(a schema.HealthAssessment, cfg *contract.Config, w io.Writer) error {
	fmtRatio, fmtPercent := createFormatters(cfg.Precision)

	printHeader(w, cfg, "📊", fmt.Sprintf("Health report: %s (%s), fiscal year %d", a.CompanyName, a.Ticker, a.FiscalYear))
	fmt.Fprintf(w, "Overall score: %s  Status: %s  Scheme: %s\n\n",
		fmtRatio(a.OverallScore), statusCell(cfg, a.Status), a.Variant)

	if len(a.CategoryScores) > 0 {
		printHeader(w, cfg, "🧮", "Category scores")
		for _, cs := range a.CategoryScores {
			fmt.Fprintf(w, "  %-14s %s %6.1f\n", cs.Category, scoreBar(cs.Score), cs.Score)
		}
		fmt.Fprintln(w)
	}

	printHeader(w, cfg, "📐", "Key ratios")
	ratioLines := []struct {
		label string
		value string
	}{
		{"Current ratio", fmtRatio(a.Ratios.CurrentRatio)},
		{"Quick ratio", fmtRatio(a.Ratios.QuickRatio)},
		{"Cash ratio", fmtRatio(a.Ratios.CashRatio)},
		{"Gross margin", fmtPercent(a.Ratios.GrossMargin)},
		{"Operating margin", fmtPercent(a.Ratios.OperatingMargin)},
		{"Net margin", fmtPercent(a.Ratios.NetMargin)},
		{"Return on equity", fmtPercent(a.Ratios.ROE)},
		{"Return on assets", fmtPercent(a.Ratios.ROA)},
		{"Debt to equity", fmtRatio(a.Ratios.DebtToEquity)},
		{"Debt to assets", fmtRatio(a.Ratios.DebtToAssets)},
		{"Asset turnover", fmtRatio(a.Ratios.AssetTurnover)},
		{"Op cash flow ratio", fmtRatio(a.Ratios.OperatingCashFlowRatio)},
		{"Free cash flow margin", fmtPercent(a.Ratios.FreeCashFlowMargin)},
	}
	for _, line := range ratioLines {
		fmt.Fprintf(w, "  %-22s %s\n", line.label, line.value)
	}
	fmt.Fprintln(w)

	printHeader(w, cfg, "📈", "Growth")
	fmt.Fprintf(w, "  %-22s %s\n", "Revenue growth", fmtPercent(a.Growth.RevenueGrowth))
	fmt.Fprintf(w, "  %-22s %s\n", "Profit growth", fmtPercent(a.Growth.ProfitGrowth))
	fmt.Fprintln(w)

	printHeader(w, cfg, "📝", "Notes")
	for _, note := range a.Notes {
		fmt.Fprintf(w, "  - %s\n", note)
	}
	fmt.Fprintln(w)

	printHeader(w, cfg, "💡", "Recommendation")
	fmt.Fprintf(w, "  %s\n", statusRecommendation(a.Status))
	return nil
}

// statusRecommendation maps a health status to a one-line advisory.
func statusRecommendation(status schema.HealthStatus) string {
	switch status {
	case schema.ExcellentStatus:
		return "Excellent financial health with solid fundamentals across the board."
	case schema.GoodStatus:
		return "Financially healthy; some areas leave room for improvement."
	case schema.FairStatus:
		return "Moderate financial health; several metrics warrant monitoring."
	case schema.ConcerningStatus:
		return "Signs of financial stress; a deeper review is advisable."
	case schema.PoorStatus:
		return "Critical financial position; high risk across key metrics."
	default: // Unknown
		return "Not enough data to assess; ingest more fiscal years first."
	}
}

// scoreBar renders a [0,100] score as a fixed-width bar.
func scoreBar(score float64) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := int(score / 100 * barWidth)
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}
