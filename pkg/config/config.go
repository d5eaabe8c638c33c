// Package config defines core configuration types for gocsfix.
// These types are plain data; loading and merging live in internal/configloader.
package config

import "github.com/yaklabco/gocsfix/pkg/phplex"

// DefaultMaxPasses bounds the fixed-point loop when nothing else is configured.
const DefaultMaxPasses = 10

// MinMaxPasses is the smallest cap that still allows one verification pass.
const MinMaxPasses = 2

// FixerConfig holds per-fixer configuration.
type FixerConfig struct {
	// Enabled overrides the fixer's default when set.
	Enabled *bool `yaml:"enabled,omitempty" toml:"enabled,omitempty"`

	// Options are validated against the fixer's option definitions.
	Options map[string]any `yaml:"options,omitempty" toml:"options,omitempty"`
}

// BackupsConfig controls backup behavior when fixing files.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Mode    string `yaml:"mode" toml:"mode"` // "sidecar"
}

// CacheConfig controls the verdict cache that skips unchanged files.
type CacheConfig struct {
	Enabled bool `yaml:"enabled" toml:"enabled"`
	// Path is the cache file; relative paths resolve against the working directory.
	Path string `yaml:"path" toml:"path"`
}

// OutputFormat specifies the report format.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatDiff    OutputFormat = "diff"
	FormatSummary OutputFormat = "summary"
)

// IsValid reports whether f is a known format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatDiff, FormatSummary:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for gocsfix.
type Config struct {
	// Rules contains per-fixer configuration keyed by fixer name.
	Rules map[string]FixerConfig `yaml:"rules" toml:"rules"`

	// RiskyAllowed permits fixers that may change behavior.
	RiskyAllowed bool `yaml:"risky_allowed" toml:"risky_allowed"`

	// MaxPasses caps the fixed-point loop. Values below MinMaxPasses are rejected.
	MaxPasses int `yaml:"max_passes" toml:"max_passes"`

	// Tokenizer holds lexer options.
	Tokenizer phplex.Options `yaml:"tokenizer" toml:"tokenizer"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore" toml:"ignore"`

	// Cache configures the verdict cache.
	Cache CacheConfig `yaml:"cache" toml:"cache"`

	// Backups configures backup behavior when fixing.
	Backups BackupsConfig `yaml:"backups" toml:"backups"`

	// CLI-level options (not persisted to config files).

	// DryRun reports what would change without writing files.
	DryRun bool `yaml:"-" toml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-" toml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-" toml:"-"`

	// EnableRules contains fixer names to explicitly enable.
	EnableRules []string `yaml:"-" toml:"-"`

	// DisableRules contains fixer names to explicitly disable.
	DisableRules []string `yaml:"-" toml:"-"`

	// NoBackups disables backup creation when fixing.
	NoBackups bool `yaml:"-" toml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rules:     make(map[string]FixerConfig),
		MaxPasses: DefaultMaxPasses,
		Tokenizer: phplex.DefaultOptions(),
		Cache: CacheConfig{
			Enabled: true,
			Path:    ".gocsfix.cache",
		},
		Backups: BackupsConfig{
			Enabled: false,
			Mode:    "sidecar",
		},
		Format: FormatText,
		Jobs:   0, // 0 means use GOMAXPROCS
	}
}

// EffectiveMaxPasses returns MaxPasses or the default when unset.
func (c *Config) EffectiveMaxPasses() int {
	if c == nil || c.MaxPasses == 0 {
		return DefaultMaxPasses
	}
	return c.MaxPasses
}
