package outwriter

import (
	"fmt"
	"io"

	"github.com/huangsam/finhealth/internal/contract"
	"github.com/huangsam/finhealth/schema"
)

// PrintWarehouseStatus outputs warehouse backend information and row counts.
func PrintWarehouseStatus(status schema.WarehouseStatus, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	}

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		printHeader(w, cfg, "🗄️", "Warehouse status")
		fmt.Fprintf(w, "  Backend:       %s\n", status.Backend)
		if status.Location != "" {
			fmt.Fprintf(w, "  Location:      %s\n", status.Location)
		}
		fmt.Fprintf(w, "  Company-years: %d\n", status.CompanyYears)
		fmt.Fprintf(w, "  Assessments:   %d\n", status.Assessments)
		fmt.Fprintf(w, "  KPI snapshots: %d\n", status.Snapshots)
		return nil
	}, "Wrote status")
}
