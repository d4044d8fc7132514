package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/finhealth/internal/contract"
)

// writeWithFile resolves the output destination, runs the writer against it
// and announces the file on stderr so piped stdout stays clean.
func writeWithFile(outputFile string, write func(io.Writer) error, doneMsg string) error {
	dest, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	toFile := dest != os.Stdout
	if toFile {
		defer func() { _ = dest.Close() }()
	}

	if err := write(dest); err != nil {
		return err
	}

	if toFile {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", doneMsg, outputFile)
	}
	return nil
}

// writeJSON encodes any value as indented JSON.
func writeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader emits the header row, then hands the writer to the
// row callback and flushes on the way out.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	return writeRows(cw)
}

// createFormatters builds the nullable ratio and percent formatters shared
// by the report, ranking and export writers.
func createFormatters(precision int) (fmtRatio func(*float64) string, fmtPercent func(*float64) string) {
	fmtRatio = func(v *float64) string {
		return contract.FormatNullableRatio(v, precision)
	}
	fmtPercent = func(v *float64) string {
		return contract.FormatNullablePercent(v, precision)
	}
	return fmtRatio, fmtPercent
}
