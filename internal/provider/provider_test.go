package provider

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/finhealth/schema"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBatch = `{
	"ticker": "AAPL",
	"company_name": "Apple",
	"statements": [
		{
			"kind": "income",
			"fiscal_year": 2024,
			"items": [{"label": "Total Revenue", "value": 400000}]
		},
		{
			"kind": "shareholder_letter",
			"fiscal_year": 2024,
			"items": [{"label": "Vibes", "value": 10}]
		},
		{
			"kind": "balance",
			"fiscal_year": 0,
			"items": [{"label": "Total Assets", "value": 350000}]
		}
	]
}`

func writeSnapshot(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestFetchStatements(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "AAPL.json", sampleBatch)

	p := NewFileProvider(dir, zerolog.Nop())
	batch, err := p.FetchStatements(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", batch.Ticker)
	assert.Equal(t, "Apple", batch.CompanyName)

	// Unknown kinds and missing fiscal years are dropped, not fatal
	require.Len(t, batch.Statements, 1)
	assert.Equal(t, schema.IncomeStatement, batch.Statements[0].Kind)
	assert.Equal(t, 2024, batch.Statements[0].FiscalYear)
}

func TestFetchStatementsLowercaseFile(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "aapl.json", sampleBatch)

	p := NewFileProvider(dir, zerolog.Nop())
	batch, err := p.FetchStatements(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", batch.Ticker)
}

func TestFetchStatementsBackfillsTicker(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "MSFT.json", `{"statements": []}`)

	p := NewFileProvider(dir, zerolog.Nop())
	batch, err := p.FetchStatements(context.Background(), "MSFT")
	require.NoError(t, err)
	assert.Equal(t, "MSFT", batch.Ticker)
}

func TestFetchStatementsTickerMismatch(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "MSFT.json", `{"ticker": "AAPL", "statements": []}`)

	p := NewFileProvider(dir, zerolog.Nop())
	_, err := p.FetchStatements(context.Background(), "MSFT")
	assert.ErrorContains(t, err, "expected MSFT")
}

func TestFetchStatementsMissingFile(t *testing.T) {
	p := NewFileProvider(t.TempDir(), zerolog.Nop())
	_, err := p.FetchStatements(context.Background(), "NVDA")
	assert.ErrorContains(t, err, "no statement file for NVDA")
}

func TestFetchStatementsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "AAPL.json", `{"ticker": `)

	p := NewFileProvider(dir, zerolog.Nop())
	_, err := p.FetchStatements(context.Background(), "AAPL")
	assert.ErrorContains(t, err, "failed to decode")
}

func TestFetchStatementsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewFileProvider(t.TempDir(), zerolog.Nop())
	_, err := p.FetchStatements(ctx, "AAPL")
	assert.ErrorIs(t, err, context.Canceled)
}
