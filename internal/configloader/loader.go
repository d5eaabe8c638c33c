// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, layered merging of
// YAML and TOML files, environment variable support, and validation against
// the fixer registry.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/yaklabco/gocsfix/internal/logging"
	"github.com/yaklabco/gocsfix/pkg/config"
	"github.com/yaklabco/gocsfix/pkg/fixer"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// ErrConfigExists is returned by WriteConfigFile when the target exists.
var ErrConfigExists = errors.New("config file already exists")

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// DisableCache turns the verdict cache off regardless of file settings.
	DisableCache bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config

	// Registry validates fixer names and options. Defaults to
	// fixer.DefaultRegistry.
	Registry *fixer.Registry

	// Getenv replaces os.Getenv, mainly for tests.
	Getenv func(string) string
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (GOCSFIX_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.gocsfix.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/gocsfix/config.yaml)
//  6. System config (/etc/gocsfix/config.yaml)
//  7. Defaults
//
// Validation failures are returned joined; each is a *ValidationError, and
// rejected fixer options also match fixer.ErrInvalidConfiguration.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	if opts.ExplicitPath != "" {
		paths.Explicit = opts.ExplicitPath
	}

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name   string
		path   string
		ignore bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig || opts.ExplicitPath != ""},
		{"explicit", paths.Explicit, false},
	}
	for _, layer := range layers {
		if layer.ignore || layer.path == "" {
			continue
		}
		next, err := overlayFile(cfg, layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config %s: %w", layer.name, layer.path, err)
		}
		cfg = next
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
		logger.Debug("loaded config", logging.FieldConfig, layer.path)
	}

	if !opts.IgnoreEnv {
		getenv := opts.Getenv
		if getenv == nil {
			getenv = os.Getenv
		}
		if err := loadFromEnv(cfg, getenv); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}
	if opts.DisableCache {
		cfg.Cache.Enabled = false
	}

	registry := opts.Registry
	if registry == nil {
		registry = fixer.DefaultRegistry
	}

	validation := Validate(cfg, registry)
	if !validation.Valid() {
		return nil, validation.Err()
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// WriteConfigFile writes content to path. An existing file is only replaced
// when overwrite is set.
func WriteConfigFile(path string, content []byte, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, configFilePermissions)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
		return fmt.Errorf("create config: %w", err)
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("write config: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close config: %w", err)
	}
	return nil
}
