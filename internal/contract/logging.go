package contract

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the structured logger for pipeline and data-quality
// events. Output goes to stderr so it never mixes with table/CSV/JSON
// results on stdout. Verbose enables debug-level events such as
// individual unmapped labels.
func NewLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
