// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"os"

	"github.com/huangsam/finhealth/internal/contract"
	"github.com/huangsam/finhealth/schema"
	"golang.org/x/term"
)

// statusCell picks the colored or plain status label per config.
// Colors only make sense for the human-readable table output.
func statusCell(cfg *contract.Config, status schema.HealthStatus) string {
	if cfg.UseColors {
		return contract.GetColorStatusLabel(status)
	}
	return contract.GetPlainStatusLabel(status)
}

// printHeader writes a section header, with an optional emoji prefix.
func printHeader(w io.Writer, cfg *contract.Config, emoji, title string) {
	if cfg.UseEmojis {
		fmt.Fprintf(w, "%s %s\n", emoji, title)
		return
	}
	fmt.Fprintf(w, "%s\n", title)
}

// isNarrowTerminal reports whether stdout is a terminal narrower than the
// given width. Non-terminal output never counts as narrow.
func isNarrowTerminal(width int) bool {
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return false
	}
	return detectedWidth < width
}
