package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/inkwellhq/inkwell/schema"
)

// Default values for configuration.
const (
	DefaultPrecision     = 1
	DefaultRetentionDays = schema.DefaultRetentionDays
	MaxRetentionDays     = 365
	DefaultCacheTTL      = 24 * time.Hour
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	// Category toggles, read by the classifier and aggregator at call time.
	TrackLogographic bool
	TrackAlphabetic  bool
	TrackPunctuation bool
	TrackDigits      bool
	TrackWhitespace  bool
	WordCount        bool

	// Content cache settings. The cache is advisory only.
	EnableCache bool
	CacheTTL    time.Duration

	RetentionDays int
	Excludes      []string

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored cells in calendar output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Category toggles from rootCmd.PersistentFlags() ---
	TrackLogographic bool `mapstructure:"track-logographic"`
	TrackAlphabetic  bool `mapstructure:"track-alphabetic"`
	TrackPunctuation bool `mapstructure:"track-punctuation"`
	TrackDigits      bool `mapstructure:"track-digits"`
	TrackWhitespace  bool `mapstructure:"track-whitespace"`
	WordCount        bool `mapstructure:"word-count"`

	// --- Cache settings ---
	Cache    string `mapstructure:"cache"`
	CacheTTL string `mapstructure:"cache-ttl"`

	Retention int    `mapstructure:"retention"`
	Exclude   string `mapstructure:"exclude"`

	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`

	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Width      int    `mapstructure:"width"`
	Emoji      string `mapstructure:"emoji"`
	Color      string `mapstructure:"color"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Excludes != nil {
		clone.Excludes = make([]string, len(c.Excludes))
		copy(clone.Excludes, c.Excludes)
	}
	return &clone
}

// EnabledTotal sums the counters of a record whose tracking option is
// enabled. Disabled categories contribute 0 even when the classifier
// returned a non-zero count for them.
func (c *Config) EnabledTotal(rec schema.CountRecord) int {
	total := 0
	if c.TrackLogographic {
		total += rec.Logographic
	}
	if c.TrackAlphabetic {
		total += rec.Alphabetic
	}
	if c.TrackPunctuation {
		total += rec.Punctuation
	}
	if c.TrackDigits {
		total += rec.Digits
	}
	if c.TrackWhitespace {
		total += rec.Whitespace
	}
	if c.WordCount {
		total += rec.Words
	}
	return total
}

// ProcessAndValidate performs all parsing and validation on the raw
// inputs and updates the final Config struct. Invalid values are
// rejected here with a descriptive message; they never reach the core.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processCacheSettings(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-storage fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.TrackLogographic = input.TrackLogographic
	cfg.TrackAlphabetic = input.TrackAlphabetic
	cfg.TrackPunctuation = input.TrackPunctuation
	cfg.TrackDigits = input.TrackDigits
	cfg.TrackWhitespace = input.TrackWhitespace
	cfg.WordCount = input.WordCount
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

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

	// --- 1. Retention Validation ---
	if input.Retention <= 0 || input.Retention > MaxRetentionDays {
		return fmt.Errorf("retention must be greater than 0 and cannot exceed %d days (received %d)", MaxRetentionDays, input.Retention)
	}
	cfg.RetentionDays = input.Retention

	// --- 2. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > 2 {
		return fmt.Errorf("precision must be between 0 and 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}

	// --- 3. Excludes Processing ---
	defaults := []string{
		".obsidian/", ".git/", ".trash/",
		".jpg", ".jpeg", ".png", ".gif", ".svg", ".pdf", ".webp",
		".DS_Store",
	}
	cfg.Excludes = defaults // Set defaults first

	if input.Exclude != "" {
		parts := strings.SplitSeq(input.Exclude, ",")
		for p := range parts {
			trimmedP := strings.TrimSpace(p)
			if trimmedP != "" {
				cfg.Excludes = append(cfg.Excludes, trimmedP)
			}
		}
	}

	return nil
}

// processCacheSettings parses the cache toggle and TTL.
func processCacheSettings(cfg *Config, input *ConfigRawInput) error {
	enabled, err := ParseBoolString(input.Cache)
	if err != nil {
		return fmt.Errorf("invalid --cache value: %w", err)
	}
	cfg.EnableCache = enabled

	cfg.CacheTTL = DefaultCacheTTL
	if input.CacheTTL != "" {
		ttl, err := ParseDurationString(input.CacheTTL)
		if err != nil {
			return fmt.Errorf("invalid --cache-ttl value: %w", err)
		}
		if ttl <= 0 {
			return fmt.Errorf("cache-ttl must be positive (received %s)", input.CacheTTL)
		}
		cfg.CacheTTL = ttl
	}

	return nil
}

// validateBackendConfig validates the state store backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	return ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
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
