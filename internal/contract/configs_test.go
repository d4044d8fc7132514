package contract

import (
	"testing"

	"github.com/huangsam/finhealth/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		Years:            5,
		Limit:            25,
		Workers:          4,
		Precision:        2,
		Output:           "text",
		MergePolicy:      "last_write_wins",
		Variant:          "point_accumulation",
		WarehouseBackend: "sqlite",
		Emoji:            "yes",
		Color:            "yes",
	}
}

// TestProcessAndValidateDefaults checks the happy path with default inputs.
func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validRawInput()))

	assert.Equal(t, schema.LastWriteWins, cfg.MergePolicy)
	assert.Equal(t, schema.PointAccumulation, cfg.Variant)
	assert.Equal(t, schema.SQLiteBackend, cfg.WarehouseBackend)
	assert.True(t, cfg.UseEmojis)
	assert.True(t, cfg.UseColors)

	// Default universe is the full companies table, sorted
	assert.Len(t, cfg.Tickers, len(DefaultCompanies))
	assert.Equal(t, "AAPL", cfg.Tickers[0])
}

// TestProcessAndValidateTickerList checks explicit ticker selection.
func TestProcessAndValidateTickerList(t *testing.T) {
	input := validRawInput()
	input.Tickers = " msft, aapl ,,nvda "

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, []string{"MSFT", "AAPL", "NVDA"}, cfg.Tickers)
	assert.Equal(t, "Microsoft", cfg.CompanyName("MSFT"))
	assert.Equal(t, "ZZZZ", cfg.CompanyName("ZZZZ"))
}

// TestProcessAndValidateCompanyOverride checks config-file universe extension.
func TestProcessAndValidateCompanyOverride(t *testing.T) {
	input := validRawInput()
	input.Companies = map[string]string{"orcl": "Oracle"}
	input.Tickers = "ORCL"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, "Oracle", cfg.CompanyName("ORCL"))
}

// TestProcessAndValidateRejections covers the validation failure paths.
func TestProcessAndValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{"zero years", func(i *ConfigRawInput) { i.Years = 0 }},
		{"excessive years", func(i *ConfigRawInput) { i.Years = 99 }},
		{"zero limit", func(i *ConfigRawInput) { i.Limit = 0 }},
		{"zero workers", func(i *ConfigRawInput) { i.Workers = 0 }},
		{"bad precision", func(i *ConfigRawInput) { i.Precision = 9 }},
		{"bad output", func(i *ConfigRawInput) { i.Output = "xml" }},
		{"bad merge policy", func(i *ConfigRawInput) { i.MergePolicy = "random" }},
		{"bad variant", func(i *ConfigRawInput) { i.Variant = "vibes" }},
		{"bad backend", func(i *ConfigRawInput) { i.WarehouseBackend = "oracle" }},
		{"bad emoji flag", func(i *ConfigRawInput) { i.Emoji = "maybe" }},
		{"mysql without connect", func(i *ConfigRawInput) { i.WarehouseBackend = "mysql" }},
		{"empty ticker list", func(i *ConfigRawInput) { i.Tickers = " , ," }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRawInput()
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input))
		})
	}
}

// TestValidateDatabaseConnectionString checks per-backend formats.
func TestValidateDatabaseConnectionString(t *testing.T) {
	t.Run("sqlite needs nothing", func(t *testing.T) {
		assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	})

	t.Run("mysql format", func(t *testing.T) {
		assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(localhost:3306)/finhealth"))
		assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@localhost/finhealth"))
	})

	t.Run("postgres format", func(t *testing.T) {
		assert.NoError(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost port=5432 dbname=finhealth"))
		assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost"))
	})
}

// TestConfigClone verifies deep copy semantics.
func TestConfigClone(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validRawInput()))

	clone := cfg.Clone()
	clone.Tickers[0] = "XXXX"
	clone.Companies["AAPL"] = "Changed"

	assert.Equal(t, "AAPL", cfg.Tickers[0])
	assert.Equal(t, "Apple", cfg.Companies["AAPL"])
}

// TestFormatNullable checks dash rendering for missing values.
func TestFormatNullable(t *testing.T) {
	assert.Equal(t, "-", FormatNullableRatio(nil, 2))
	assert.Equal(t, "1.50", FormatNullableRatio(schema.Float(1.5), 2))
	assert.Equal(t, "-", FormatNullablePercent(nil, 1))
	assert.Equal(t, "21.5%", FormatNullablePercent(schema.Float(0.215), 1))
}
