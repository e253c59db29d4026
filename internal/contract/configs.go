package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/guildtools/raidscope/schema"
)

// Default values for configuration.
const (
	DefaultDataDir     = "data_csv"
	DefaultResultLimit = 50
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	DefaultWorkers     = 4
)

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

// Config holds the runtime configuration for one command invocation.
// This struct remains the "final, validated" config.
type Config struct {
	DataDir string
	Guild   string
	Date    string // specific date token or schema.AllDatesToken

	ResultLimit int
	Workers     int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	ShowCandidates bool // include ranked candidate lists in results output

	SnapshotBackend   schema.DatabaseBackend
	SnapshotDBConnect string // Please use env var as this is plaintext

	Rules schema.Rules

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	GuildStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	DataDir           string `mapstructure:"data-dir"`
	Date              string `mapstructure:"date"`
	Limit             int    `mapstructure:"limit"`
	Workers           int    `mapstructure:"workers"`
	Precision         int    `mapstructure:"precision"`
	Output            string `mapstructure:"output"`
	OutputFile        string `mapstructure:"output-file"`
	Width             int    `mapstructure:"width"`
	SnapshotBackend   string `mapstructure:"snapshot-backend"`
	SnapshotDBConnect string `mapstructure:"snapshot-db-connect"`
	Emoji             string `mapstructure:"emoji"`
	Color             string `mapstructure:"color"`

	// --- Fields from resultsCmd.Flags() ---
	Candidates bool `mapstructure:"candidates"`

	// --- Fields from calcCmd.Flags() ---
	CalcBattle float64 `mapstructure:"battle"`
	CalcBonus  int     `mapstructure:"bonus"`
	CalcExtra  int     `mapstructure:"extra"`

	// --- Fields from migrateCmd.Flags() ---
	TargetVersion int `mapstructure:"target-version"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Rules.BonusTiers != nil {
		clone.Rules.BonusTiers = make([]int, len(c.Rules.BonusTiers))
		copy(clone.Rules.BonusTiers, c.Rules.BonusTiers)
	}
	if c.Rules.ExtraSeconds != nil {
		clone.Rules.ExtraSeconds = make([]int, len(c.Rules.ExtraSeconds))
		copy(clone.Rules.ExtraSeconds, c.Rules.ExtraSeconds)
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
	if err := resolveDataDirAndGuild(cfg, input); err != nil {
		return err
	}
	cfg.Rules = schema.DefaultRules()
	return nil
}

// RevalidateCalc checks standalone max-score inputs against the rule set.
// Shared by the calc command and the MCP calc tool.
func RevalidateCalc(r schema.Rules, battle float64, bonus, extra int) error {
	if battle < r.BattleMin || battle > r.BattleMax {
		return fmt.Errorf("battle must be between %s and %s (received %s)",
			schema.FormatBattle(r.BattleMin), schema.FormatBattle(r.BattleMax), schema.FormatBattle(battle))
	}
	if !containsInt(r.BonusTiers, bonus) {
		return fmt.Errorf("bonus must be one of %v (received %d)", r.BonusTiers, bonus)
	}
	if !containsInt(r.ExtraSeconds, extra) {
		return fmt.Errorf("extra must be one of %v (received %d)", r.ExtraSeconds, extra)
	}
	return nil
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("snapshot-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("snapshot-db-connect is required when using %s backend", backend)
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

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.ShowCandidates = input.Candidates

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

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > 2 {
		return fmt.Errorf("precision must be 0, 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", cfg.Output)
	}

	// --- 4. Date Normalization ---
	cfg.Date = strings.TrimSpace(input.Date)
	if cfg.Date == "" {
		cfg.Date = schema.AllDatesToken
	}

	return nil
}

// validateBackendConfig validates the snapshot backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.SnapshotBackend = schema.DatabaseBackend(strings.ToLower(input.SnapshotBackend))
	if _, ok := schema.ValidSnapshotBackends[cfg.SnapshotBackend]; !ok {
		return fmt.Errorf("invalid snapshot backend '%s'. must be sqlite, mysql, postgresql, none", input.SnapshotBackend)
	}
	cfg.SnapshotDBConnect = input.SnapshotDBConnect
	return ValidateDatabaseConnectionString(cfg.SnapshotBackend, cfg.SnapshotDBConnect)
}

// resolveDataDirAndGuild checks the data directory exists and carries the
// guild selection over. An empty guild is allowed; commands that need one
// validate it themselves (list-style commands do not).
func resolveDataDirAndGuild(cfg *Config, input *ConfigRawInput) error {
	cfg.DataDir = input.DataDir
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	info, err := os.Stat(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("data directory %q not found: %w", cfg.DataDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data directory %q is not a directory", cfg.DataDir)
	}
	cfg.Guild = strings.TrimSpace(input.GuildStr)
	return nil
}
