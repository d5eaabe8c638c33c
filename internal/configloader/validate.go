package configloader

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/gocsfix/pkg/config"
	"github.com/yaklabco/gocsfix/pkg/fixer"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.no_closing_tag").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Err is the underlying error, such as a *fixer.ConfigurationError.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Err joins every validation error, or returns nil.
func (r *ValidationResult) Err() error {
	errs := make([]error, len(r.Errors))
	for i := range r.Errors {
		errs[i] = &r.Errors[i]
	}
	return errors.Join(errs...)
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownBackupModes = map[string]bool{
	"sidecar": true,
	"none":    true,
}

// Validate checks a configuration for errors and warnings. Fixer names are
// looked up in registry, and each configured fixer's options are resolved
// against a fresh instance so bad options fail before any file is touched.
func Validate(cfg *config.Config, registry *fixer.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.addError("format", cfg.Format,
			fmt.Sprintf("invalid format %q; must be one of: text, json, diff, summary", cfg.Format))
	}

	if cfg.Jobs < 0 {
		result.addError("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	if cfg.MaxPasses < 0 || (cfg.MaxPasses > 0 && cfg.MaxPasses < config.MinMaxPasses) {
		result.addError("max_passes", cfg.MaxPasses,
			fmt.Sprintf("max_passes must be at least %d (0 means the default of %d)", config.MinMaxPasses, config.DefaultMaxPasses))
	}

	if cfg.Backups.Mode != "" && !knownBackupModes[cfg.Backups.Mode] {
		result.addError("backups.mode", cfg.Backups.Mode,
			fmt.Sprintf("invalid backup mode %q; must be one of: sidecar, none", cfg.Backups.Mode))
	}

	if cfg.Cache.Enabled && cfg.Cache.Path == "" {
		result.addError("cache.path", "", "cache is enabled but no path is set")
	}

	if registry != nil {
		validateRules(cfg, registry, result)
		validateNames("enable", cfg.EnableRules, registry, result)
		validateNames("disable", cfg.DisableRules, registry, result)
	}

	validateIgnorePatterns(cfg, result)

	return result
}

func (r *ValidationResult) addError(field string, value any, msg string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: msg})
}

// validateRules checks that every configured fixer exists and accepts its options.
func validateRules(cfg *config.Config, registry *fixer.Registry, result *ValidationResult) {
	seen := make(map[string]string, len(cfg.Rules))

	for _, key := range slices.Sorted(maps.Keys(cfg.Rules)) {
		field := "rules." + key
		f, ok := registry.New(key)
		if !ok {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Value:   key,
				Message: fmt.Sprintf("unknown fixer %q", key),
				Err:     fixer.ErrUnknownFixer,
			})
			continue
		}

		if other, dup := seen[f.Name()]; dup {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   field,
				Value:   key,
				Message: fmt.Sprintf("%q and %q both configure %s", other, key, f.Name()),
			})
		}
		seen[f.Name()] = key

		if key != f.Name() {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   field,
				Value:   key,
				Message: fmt.Sprintf("%q is deprecated; use %q", key, f.Name()),
			})
		}

		options := cfg.Rules[key].Options
		if err := configureFixer(f, options); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field + ".options",
				Value:   options,
				Message: err.Error(),
				Err:     err,
			})
		}
	}
}

func configureFixer(f fixer.Fixer, options map[string]any) error {
	c, ok := f.(fixer.Configurable)
	if !ok {
		if len(options) > 0 {
			return &fixer.ConfigurationError{Fixer: f.Name(), Msg: "fixer has no options"}
		}
		return nil
	}
	return c.Configure(options)
}

func validateNames(field string, names []string, registry *fixer.Registry, result *ValidationResult) {
	for _, name := range names {
		if _, ok := registry.Resolve(name); !ok {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Value:   name,
				Message: fmt.Sprintf("unknown fixer %q", name),
				Err:     fixer.ErrUnknownFixer,
			})
		}
	}
}

// validateIgnorePatterns checks that ignore patterns compile the way the
// runner compiles them.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			result.addError(fmt.Sprintf("ignore[%d]", i), pattern, fmt.Sprintf("invalid glob pattern: %v", err))
		}
	}
}

// ValidateWithFile validates configuration and attributes findings to filePath.
func ValidateWithFile(cfg *config.Config, registry *fixer.Registry, filePath string) *ValidationResult {
	result := Validate(cfg, registry)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}

// IsValidBackupMode returns true if the backup mode is valid.
func IsValidBackupMode(mode string) bool {
	return knownBackupModes[mode]
}
