package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/finhealth/schema"
)

// Color variables for console output.
var (
	ExcellentColor  = color.New(color.FgGreen, color.Bold)   // strong fundamentals
	GoodColor       = color.New(color.FgCyan)                // healthy, informational
	FairColor       = color.New(color.FgYellow)              // standard caution, not bold
	ConcerningColor = color.New(color.FgMagenta, color.Bold) // strong, distinct warning
	PoorColor       = color.New(color.FgRed, color.Bold)     // standard danger
	UnknownColor    = color.New(color.FgWhite)               // no data computed
)

// GetPlainStatusLabel returns the plain text label for a health status.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainStatusLabel(status schema.HealthStatus) string {
	return string(status)
}

// GetColorStatusLabel returns a colored status label for console output (table).
func GetColorStatusLabel(status schema.HealthStatus) string {
	text := GetPlainStatusLabel(status)

	switch status {
	case schema.ExcellentStatus:
		return ExcellentColor.Sprint(text)
	case schema.GoodStatus:
		return GoodColor.Sprint(text)
	case schema.FairStatus:
		return FairColor.Sprint(text)
	case schema.ConcerningStatus:
		return ConcerningColor.Sprint(text)
	case schema.PoorStatus:
		return PoorColor.Sprint(text)
	default: // Unknown
		return UnknownColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetWarehouseDBFilePath returns the path to the SQLite DB file for the warehouse.
func GetWarehouseDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".finhealth_warehouse.db"
	}
	return filepath.Join(homeDir, ".finhealth_warehouse.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// FormatNullableRatio formats a nullable ratio for display, rendering nil
// as a dash so missing data stays visually distinct from zero.
func FormatNullableRatio(v *float64, precision int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.*f", precision, *v)
}

// FormatNullablePercent formats a nullable fraction as a percentage.
func FormatNullablePercent(v *float64, precision int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.*f%%", precision, *v*100)
}
