package configloader

import (
	"fmt"
	"maps"
	"os"

	"github.com/yaklabco/gocsfix/pkg/config"
)

// overlayFile decodes the config file at path on top of base. Keys the file
// does not mention keep the value from base, so a file can turn a default
// boolean off. Rule entries are merged per fixer rather than replaced.
func overlayFile(base *config.Config, path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	layer := base.Clone()
	inherited := layer.Rules
	layer.Rules = nil

	if IsTOMLConfig(path) {
		err = config.DecodeTOML(content, layer)
	} else {
		err = config.DecodeYAML(content, layer)
	}
	if err != nil {
		return nil, err
	}

	layer.Rules = mergeRules(inherited, layer.Rules)
	return layer, nil
}

// merge combines two configurations, with override taking precedence over
// base. It is used for CLI flags, where only set values are meaningful:
//   - Scalars: override wins when non-zero
//   - Booleans: override can only switch a flag on
//   - Rules: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.MaxPasses != 0 {
		result.MaxPasses = override.MaxPasses
	}
	if override.Cache.Path != "" {
		result.Cache.Path = override.Cache.Path
	}
	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}

	if override.RiskyAllowed {
		result.RiskyAllowed = true
	}
	if override.Tokenizer.ShortOpenTag {
		result.Tokenizer.ShortOpenTag = true
	}
	if override.DryRun {
		result.DryRun = true
	}
	if override.NoBackups {
		result.NoBackups = true
	}
	if override.Backups.Enabled {
		result.Backups.Enabled = true
	}

	result.Rules = mergeRules(base.Rules, override.Rules)

	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}
	if override.EnableRules != nil {
		result.EnableRules = override.EnableRules
	}
	if override.DisableRules != nil {
		result.DisableRules = override.DisableRules
	}

	return &result
}

// mergeRules deep-merges per-fixer configuration; override wins per key.
func mergeRules(base, override map[string]config.FixerConfig) map[string]config.FixerConfig {
	result := make(map[string]config.FixerConfig, len(base)+len(override))
	maps.Copy(result, base)

	for key, val := range override {
		if existing, ok := result[key]; ok {
			result[key] = mergeFixerConfig(existing, val)
		} else {
			result[key] = val
		}
	}

	return result
}

func mergeFixerConfig(base, override config.FixerConfig) config.FixerConfig {
	result := base

	if override.Enabled != nil {
		result.Enabled = override.Enabled
	}

	if override.Options != nil {
		options := make(map[string]any, len(base.Options)+len(override.Options))
		maps.Copy(options, base.Options)
		maps.Copy(options, override.Options)
		result.Options = options
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
