package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/finhealth/internal/contract"
	"github.com/huangsam/finhealth/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintRankings outputs the company ranking, dispatching based on the
// output format configured.
func PrintRankings(rankings []schema.CompanyRanking, cfg *contract.Config, duration time.Duration) error {
	fmtRatio, fmtPercent := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRankingJSONResults(rankings, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRankingCSVResults(rankings, cfg, fmtRatio, fmtPercent); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only supported by 'finhealth export'")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankingTable(rankings, cfg, fmtRatio, fmtPercent, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeRankingJSONResults handles opening the file and calling the JSON writer.
func writeRankingJSONResults(rankings []schema.CompanyRanking, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, rankings)
	}, "Wrote JSON")
}

// writeRankingCSVResults handles opening the file and calling the CSV writer.
func writeRankingCSVResults(rankings []schema.CompanyRanking, cfg *contract.Config, fmtRatio, fmtPercent func(*float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"rank",
			"ticker",
			"company",
			"fiscal_year",
			"score",
			"status",
			"current_ratio",
			"debt_to_equity",
			"net_margin",
			"roe",
		}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, r := range rankings {
				rec := []string{
					strconv.Itoa(r.Rank),
					r.Ticker,
					r.CompanyName,
					strconv.Itoa(r.FiscalYear),
					fmtRatio(r.OverallScore),
					contract.GetPlainStatusLabel(r.Status),
					fmtRatio(r.CurrentRatio),
					fmtRatio(r.DebtToEquity),
					fmtPercent(r.NetMargin),
					fmtPercent(r.ROE),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeRankingTable generates and writes the human-readable ranking table.
func writeRankingTable(rankings []schema.CompanyRanking, cfg *contract.Config, fmtRatio, fmtPercent func(*float64) string, duration time.Duration, writer io.Writer) error {
	printHeader(writer, cfg, "🏆", "Company health ranking")

	table := tablewriter.NewWriter(writer)

	// Narrow terminals get the essential columns only
	narrow := isNarrowTerminal(100)
	headers := []string{"Rank", "Ticker", "Company", "Year", "Score", "Status"}
	if !narrow {
		headers = append(headers, "CurRatio", "D/E", "NetMargin", "ROE")
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range rankings {
		row := []string{
			strconv.Itoa(r.Rank),
			r.Ticker,
			r.CompanyName,
			strconv.Itoa(r.FiscalYear),
			fmtRatio(r.OverallScore),
			statusCell(cfg, r.Status),
		}
		if !narrow {
			row = append(row,
				fmtRatio(r.CurrentRatio),
				fmtRatio(r.DebtToEquity),
				fmtPercent(r.NetMargin),
				fmtPercent(r.ROE),
			)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing top %d companies by latest fiscal year\n", len(rankings)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Ranking completed in %v. Warehouse backend: %s\n", duration, cfg.WarehouseBackend); err != nil {
		return err
	}
	return nil
}
