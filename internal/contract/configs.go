package contract

import (
	"fmt"
	"maps"
	"runtime"
	"sort"
	"strings"

	"github.com/huangsam/finhealth/schema"
)

// Default values for configuration.
const (
	DefaultYears       = 5
	MaxYears           = 20
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 2
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// DefaultCompanies maps the default ticker universe to company names,
// calibrated for large-cap technology coverage.
var DefaultCompanies = map[string]string{
	"AAPL":  "Apple",
	"MSFT":  "Microsoft",
	"GOOGL": "Alphabet",
	"AMZN":  "Amazon",
	"NVDA":  "NVIDIA",
	"META":  "Meta",
	"TSLA":  "Tesla",
	"AVGO":  "Broadcom",
	"ASML":  "ASML",
	"NFLX":  "Netflix",
}

// Config holds the runtime configuration for a run.
// This struct remains the "final, validated" config.
type Config struct {
	Tickers   []string
	Companies map[string]string // ticker -> company name
	DataDir   string
	Years     int

	ResultLimit int
	Workers     int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string

	MergePolicy       schema.MergePolicy
	SubtractInventory bool
	Variant           schema.ScorerVariant

	WarehouseBackend   schema.DatabaseBackend
	WarehouseDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
	Verbose   bool // Enable debug-level pipeline logging
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Tickers            string `mapstructure:"tickers"`
	DataDir            string `mapstructure:"data-dir"`
	Years              int    `mapstructure:"years"`
	Limit              int    `mapstructure:"limit"`
	Workers            int    `mapstructure:"workers"`
	Precision          int    `mapstructure:"precision"`
	Output             string `mapstructure:"output"`
	OutputFile         string `mapstructure:"output-file"`
	MergePolicy        string `mapstructure:"merge-policy"`
	SubtractInventory  bool   `mapstructure:"subtract-inventory"`
	Variant            string `mapstructure:"variant"`
	WarehouseBackend   string `mapstructure:"warehouse-backend"`
	WarehouseDBConnect string `mapstructure:"warehouse-db-connect"`
	Emoji              string `mapstructure:"emoji"`
	Color              string `mapstructure:"color"`
	Verbose            bool   `mapstructure:"verbose"`

	// --- Company universe from config file ---
	Companies map[string]string `mapstructure:"companies"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Tickers != nil {
		clone.Tickers = make([]string, len(c.Tickers))
		copy(clone.Tickers, c.Tickers)
	}
	if c.Companies != nil {
		clone.Companies = make(map[string]string, len(c.Companies))
		maps.Copy(clone.Companies, c.Companies)
	}
	return &clone
}

// CompanyName returns the display name for a ticker, falling back to the
// ticker itself for companies outside the configured universe.
func (c *Config) CompanyName(ticker string) string {
	if name, ok := c.Companies[ticker]; ok {
		return name
	}
	return ticker
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processCompanyUniverse(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all scalar fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.DataDir = input.DataDir
	cfg.OutputFile = input.OutputFile
	cfg.Verbose = input.Verbose
	cfg.SubtractInventory = input.SubtractInventory

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Years Validation ---
	if input.Years <= 0 || input.Years > MaxYears {
		return fmt.Errorf("years must be greater than 0 and cannot exceed %d (received %d)", MaxYears, input.Years)
	}
	cfg.Years = input.Years

	// --- 2. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 3. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 4. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 1 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	// --- 5. Merge Policy Validation ---
	cfg.MergePolicy = schema.MergePolicy(strings.ToLower(input.MergePolicy))
	if _, ok := schema.ValidMergePolicies[cfg.MergePolicy]; !ok {
		return fmt.Errorf("invalid merge policy '%s'. must be last_write_wins, first_write_wins", input.MergePolicy)
	}

	// --- 6. Scorer Variant Validation ---
	cfg.Variant = schema.ScorerVariant(strings.ToLower(input.Variant))
	if _, ok := schema.ValidScorerVariants[cfg.Variant]; !ok {
		return fmt.Errorf("invalid scorer variant '%s'. must be point_accumulation, category_weighted", input.Variant)
	}

	return nil
}

// processCompanyUniverse resolves the ticker universe from the --tickers
// flag and the companies table in the config file.
func processCompanyUniverse(cfg *Config, input *ConfigRawInput) error {
	cfg.Companies = make(map[string]string, len(DefaultCompanies))
	maps.Copy(cfg.Companies, DefaultCompanies)
	// Config file entries extend or rename the default universe
	for ticker, name := range input.Companies {
		cfg.Companies[strings.ToUpper(strings.TrimSpace(ticker))] = name
	}

	if input.Tickers != "" {
		for part := range strings.SplitSeq(input.Tickers, ",") {
			ticker := strings.ToUpper(strings.TrimSpace(part))
			if ticker != "" {
				cfg.Tickers = append(cfg.Tickers, ticker)
			}
		}
		if len(cfg.Tickers) == 0 {
			return fmt.Errorf("tickers must contain at least one symbol (received %q)", input.Tickers)
		}
		return nil
	}

	// Default to the full configured universe, in stable order
	cfg.Tickers = make([]string, 0, len(cfg.Companies))
	for ticker := range cfg.Companies {
		cfg.Tickers = append(cfg.Tickers, ticker)
	}
	sort.Strings(cfg.Tickers)
	return nil
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("warehouse-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("warehouse-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfig validates the warehouse backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.WarehouseBackend = schema.DatabaseBackend(strings.ToLower(input.WarehouseBackend))
	if _, ok := schema.ValidWarehouseBackends[cfg.WarehouseBackend]; !ok {
		return fmt.Errorf("invalid warehouse backend '%s'. must be sqlite, mysql, postgresql, none", input.WarehouseBackend)
	}
	cfg.WarehouseDBConnect = input.WarehouseDBConnect
	return ValidateDatabaseConnectionString(cfg.WarehouseBackend, cfg.WarehouseDBConnect)
}
