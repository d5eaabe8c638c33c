package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gocsfix/pkg/config"
)

// envVarPrefix is the prefix for all gocsfix environment variables.
const envVarPrefix = "GOCSFIX_"

type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

type envMapping struct {
	field string
	typ   envFieldType
	help  string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"RISKY_ALLOWED":   {field: "risky_allowed", typ: envTypeBool, help: "Allow risky fixers: true or false"},
	"MAX_PASSES":      {field: "max_passes", typ: envTypeInt, help: "Upper bound on fix passes per file"},
	"SHORT_OPEN_TAG":  {field: "tokenizer.short_open_tag", typ: envTypeBool, help: "Treat a bare <? as an open tag"},
	"DRY_RUN":         {field: "dry_run", typ: envTypeBool, help: "Report changes without writing: true or false"},
	"JOBS":            {field: "jobs", typ: envTypeInt, help: "Number of parallel workers (0 = auto)"},
	"FORMAT":          {field: "format", typ: envTypeString, help: "Output format: text, json, diff, or summary"},
	"CACHE_ENABLED":   {field: "cache.enabled", typ: envTypeBool, help: "Enable the verdict cache: true or false"},
	"CACHE_PATH":      {field: "cache.path", typ: envTypeString, help: "Cache file location"},
	"BACKUPS_ENABLED": {field: "backups.enabled", typ: envTypeBool, help: "Enable backups when fixing: true or false"},
	"BACKUPS_MODE":    {field: "backups.mode", typ: envTypeString, help: "Backup mode: sidecar or none"},
	"IGNORE":          {field: "ignore", typ: envTypeSlice, help: "Comma-separated list of ignore patterns"},
	"NO_BACKUPS":      {field: "no_backups", typ: envTypeBool, help: "Disable backups: true or false"},
}

// LoadFromEnv applies GOCSFIX_* environment overrides to cfg.
func LoadFromEnv(cfg *config.Config) error {
	return loadFromEnv(cfg, os.Getenv)
}

func loadFromEnv(cfg *config.Config, getenv func(string) string) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := getenv(envVar)
		if value == "" {
			continue
		}
		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue splits a comma-separated value, trimming each element.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "cache.path":
		cfg.Cache.Path = value
	case "backups.mode":
		cfg.Backups.Mode = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "risky_allowed":
		cfg.RiskyAllowed = value
	case "tokenizer.short_open_tag":
		cfg.Tokenizer.ShortOpenTag = value
	case "dry_run":
		cfg.DryRun = value
	case "cache.enabled":
		cfg.Cache.Enabled = value
	case "backups.enabled":
		cfg.Backups.Enabled = value
	case "no_backups":
		cfg.NoBackups = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "max_passes":
		cfg.MaxPasses = value
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the environment variable for a config field, or "".
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns every supported environment variable with a short description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.help
	}
	return vars
}
