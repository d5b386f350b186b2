package contract

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/talentlens/talentlens/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 2
	DefaultServeAddr   = ":8080"
	DefaultHistoryRows = 10
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// WeightsRawInput holds custom dimension weights from the YAML config file.
// Pointers distinguish "not set" from an explicit zero.
type WeightsRawInput struct {
	Technical     *float64 `mapstructure:"technical"`
	Communication *float64 `mapstructure:"communication"`
	Problem       *float64 `mapstructure:"problem"`
	Culture       *float64 `mapstructure:"culture"`
	Leadership    *float64 `mapstructure:"leadership"`
	Growth        *float64 `mapstructure:"growth"`
}

// Config holds the runtime configuration for analysis and serving.
// This struct remains the "final, validated" config.
type Config struct {
	ResultLimit int
	Precision   int
	Explain     bool
	Detail      bool
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	CacheTTL  time.Duration
	ServeAddr string

	// CustomWeights holds per-dimension overrides for the overall blend.
	CustomWeights map[schema.Dimension]float64

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Limit            int    `mapstructure:"limit"`
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Detail           bool   `mapstructure:"detail"`
	Width            int    `mapstructure:"width"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	CacheTTL         string `mapstructure:"cache-ttl"`
	Emoji            string `mapstructure:"emoji"`
	Color            string `mapstructure:"color"`

	// --- Fields from analyzeCmd.Flags() ---
	Explain bool `mapstructure:"explain"`

	// --- Fields from serveCmd.Flags() ---
	Addr string `mapstructure:"addr"`

	// --- Custom weights from config file ---
	Weights WeightsRawInput `mapstructure:"weights"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.CustomWeights != nil {
		clone.CustomWeights = make(map[schema.Dimension]float64, len(c.CustomWeights))
		maps.Copy(clone.CustomWeights, c.CustomWeights)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	if err := processCacheTTL(cfg, input); err != nil {
		return err
	}
	if err := processCustomWeights(cfg, input); err != nil {
		return err
	}
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
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
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

// validateSimpleInputs processes and validates all scalar fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.Width = input.Width
	cfg.ServeAddr = input.Addr
	if cfg.ServeAddr == "" {
		cfg.ServeAddr = DefaultServeAddr
	}

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	cfg.ResultLimit = input.Limit
	if cfg.ResultLimit <= 0 {
		cfg.ResultLimit = DefaultResultLimit
	}
	if cfg.ResultLimit > MaxResultLimit {
		return fmt.Errorf("limit %d exceeds maximum of %d", cfg.ResultLimit, MaxResultLimit)
	}

	cfg.Precision = input.Precision
	if cfg.Precision < 0 || cfg.Precision > 6 {
		return fmt.Errorf("precision must be between 0 and 6, got %d", input.Precision)
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode '%s'. must be text, csv, json", input.Output)
	}
	return nil
}

// validateBackendConfig validates the history backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if cfg.HistoryBackend == "" {
		cfg.HistoryBackend = schema.NoneBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// processCacheTTL parses the cache TTL duration. Empty means no caching.
func processCacheTTL(cfg *Config, input *ConfigRawInput) error {
	if input.CacheTTL == "" {
		cfg.CacheTTL = 0
		return nil
	}
	ttl, err := time.ParseDuration(input.CacheTTL)
	if err != nil {
		return fmt.Errorf("invalid --cache-ttl value %q: %w", input.CacheTTL, err)
	}
	if ttl < 0 {
		return fmt.Errorf("cache-ttl must not be negative, got %s", ttl)
	}
	cfg.CacheTTL = ttl
	return nil
}

// processCustomWeights collects the per-dimension overrides and checks their
// range. Overrides replace individual defaults, so the merged set is what the
// blend actually uses; it must still sum to 1.0.
func processCustomWeights(cfg *Config, input *ConfigRawInput) error {
	raw := map[schema.Dimension]*float64{
		schema.DimensionTechnical:     input.Weights.Technical,
		schema.DimensionCommunication: input.Weights.Communication,
		schema.DimensionProblem:       input.Weights.Problem,
		schema.DimensionCulture:       input.Weights.Culture,
		schema.DimensionLeadership:    input.Weights.Leadership,
		schema.DimensionGrowth:        input.Weights.Growth,
	}

	for dim, ptr := range raw {
		if ptr == nil {
			continue
		}
		if *ptr < 0 || *ptr > 1 {
			return fmt.Errorf("weight for %s must be between 0 and 1, got %v", dim, *ptr)
		}
		if cfg.CustomWeights == nil {
			cfg.CustomWeights = make(map[schema.Dimension]float64)
		}
		cfg.CustomWeights[dim] = *ptr
	}

	if cfg.CustomWeights != nil {
		merged := schema.GetDefaultDimensionWeights()
		for dim, w := range cfg.CustomWeights {
			merged[dim] = w
		}
		sum := 0.0
		for _, w := range merged {
			sum += w
		}
		if sum < 0.999 || sum > 1.001 {
			return fmt.Errorf("dimension weights must sum to 1.0 after merging with defaults, got %.3f", sum)
		}
	}
	return nil
}
