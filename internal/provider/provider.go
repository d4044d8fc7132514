// Package provider retrieves raw financial statements for tickers.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/finhealth/internal/contract"
	"github.com/huangsam/finhealth/schema"
	"github.com/rs/zerolog"
)

// FileProvider reads provider snapshots from a local directory. Each
// ticker is one JSON document named <TICKER>.json holding a statement
// batch: ticker, company name and raw statements across kinds and years.
type FileProvider struct {
	dataDir string
	logger  zerolog.Logger
}

var _ contract.StatementProvider = &FileProvider{} // Compile-time check

// NewFileProvider creates a provider rooted at dataDir.
func NewFileProvider(dataDir string, logger zerolog.Logger) *FileProvider {
	return &FileProvider{dataDir: dataDir, logger: logger}
}

// FetchStatements loads and decodes the snapshot file for one ticker.
// Unknown statement kinds are dropped with a warning rather than failing
// the whole batch.
func (p *FileProvider) FetchStatements(ctx context.Context, ticker string) (schema.StatementBatch, error) {
	if err := ctx.Err(); err != nil {
		return schema.StatementBatch{}, err
	}

	path, err := p.resolvePath(ticker)
	if err != nil {
		return schema.StatementBatch{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return schema.StatementBatch{}, fmt.Errorf("failed to read statements for %s: %w", ticker, err)
	}

	var batch schema.StatementBatch
	if err := json.Unmarshal(data, &batch); err != nil {
		return schema.StatementBatch{}, fmt.Errorf("failed to decode statements for %s: %w", ticker, err)
	}
	if batch.Ticker == "" {
		batch.Ticker = ticker
	} else if !strings.EqualFold(batch.Ticker, ticker) {
		return schema.StatementBatch{}, fmt.Errorf("statement file %s holds ticker %s, expected %s", path, batch.Ticker, ticker)
	}

	kept := batch.Statements[:0]
	for _, stmt := range batch.Statements {
		if schema.VocabularyFor(stmt.Kind) == nil {
			p.logger.Warn().
				Str("ticker", ticker).
				Str("kind", string(stmt.Kind)).
				Msg("unknown statement kind dropped")
			continue
		}
		if stmt.FiscalYear <= 0 {
			p.logger.Warn().
				Str("ticker", ticker).
				Int("fiscal_year", stmt.FiscalYear).
				Msg("statement without fiscal year dropped")
			continue
		}
		kept = append(kept, stmt)
	}
	batch.Statements = kept

	p.logger.Debug().
		Str("ticker", ticker).
		Str("path", path).
		Int("statements", len(batch.Statements)).
		Msg("statements loaded")
	return batch, nil
}

// resolvePath finds the snapshot file for a ticker, trying upper and
// lower case file names.
func (p *FileProvider) resolvePath(ticker string) (string, error) {
	candidates := []string{
		filepath.Join(p.dataDir, strings.ToUpper(ticker)+".json"),
		filepath.Join(p.dataDir, strings.ToLower(ticker)+".json"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no statement file for %s under %s", ticker, p.dataDir)
}
