package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocsfix/pkg/config"
	"github.com/yaklabco/gocsfix/pkg/fixer"
	"github.com/yaklabco/gocsfix/pkg/fixer/rules"
)

func testRegistry() *fixer.Registry {
	reg := fixer.NewRegistry()
	rules.RegisterAll(reg)
	return reg
}

func noEnv(string) string { return "" }

func envMap(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

// projectDir returns a temp dir marked as a VCS root so upward search
// never leaves it.
func projectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	return dir
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func baseOptions(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		Registry:           testRegistry(),
		Getenv:             noEnv,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), baseOptions(projectDir(t)))
	require.NoError(t, err)
	require.NotNil(t, result.Config)

	assert.Equal(t, config.NewConfig(), result.Config)
	assert.Empty(t, result.LoadedFrom)
	assert.Empty(t, result.Warnings)
}

func TestLoad_ProjectYAML(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	path := writeFile(t, filepath.Join(dir, ".gocsfix.yml"), `
risky_allowed: true
max_passes: 4
cache:
  enabled: false
rules:
  return_type_declaration:
    options:
      space_before: one
  no_closing_tag:
    enabled: false
`)

	result, err := Load(context.Background(), baseOptions(dir))
	require.NoError(t, err)

	cfg := result.Config
	assert.True(t, cfg.RiskyAllowed)
	assert.Equal(t, 4, cfg.MaxPasses)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, ".gocsfix.cache", cfg.Cache.Path, "unset keys keep their defaults")
	assert.Equal(t, "one", cfg.Rules["return_type_declaration"].Options["space_before"])
	require.NotNil(t, cfg.Rules["no_closing_tag"].Enabled)
	assert.False(t, *cfg.Rules["no_closing_tag"].Enabled)
	assert.Equal(t, []string{path}, result.LoadedFrom)
}

func TestLoad_ProjectTOML(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".gocsfix.toml"), `
ignore = ["vendor/**"]

[tokenizer]
short_open_tag = true

[rules.logical_operators]
enabled = true
`)

	result, err := Load(context.Background(), baseOptions(dir))
	require.NoError(t, err)
	assert.True(t, result.Config.Tokenizer.ShortOpenTag)
	assert.Equal(t, []string{"vendor/**"}, result.Config.Ignore)
	assert.Contains(t, result.Config.Rules, "logical_operators")
}

func TestLoad_UpwardSearch(t *testing.T) {
	t.Parallel()

	t.Run("found in parent", func(t *testing.T) {
		t.Parallel()
		root := projectDir(t)
		writeFile(t, filepath.Join(root, ".gocsfix.yml"), "max_passes: 5\n")
		sub := filepath.Join(root, "src", "app")
		require.NoError(t, os.MkdirAll(sub, 0o755))

		result, err := Load(context.Background(), baseOptions(sub))
		require.NoError(t, err)
		assert.Equal(t, 5, result.Config.MaxPasses)
	})

	t.Run("stops at VCS root", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		writeFile(t, filepath.Join(root, ".gocsfix.yml"), "max_passes: 5\n")
		repo := filepath.Join(root, "repo")
		require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

		path, err := FindProjectConfig(context.Background(), repo)
		require.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("prefers yml over toml", func(t *testing.T) {
		t.Parallel()
		root := projectDir(t)
		yml := writeFile(t, filepath.Join(root, ".gocsfix.yml"), "max_passes: 5\n")
		writeFile(t, filepath.Join(root, ".gocsfix.toml"), "max_passes = 6\n")

		path, err := FindProjectConfig(context.Background(), root)
		require.NoError(t, err)
		assert.Equal(t, yml, path)
	})
}

func TestLoad_ExplicitSkipsProject(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".gocsfix.yml"), "risky_allowed: true\n")
	explicit := writeFile(t, filepath.Join(dir, "ci", "strict.yaml"), "max_passes: 3\n")

	opts := baseOptions(dir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Config.MaxPasses)
	assert.False(t, result.Config.RiskyAllowed)
	assert.Equal(t, []string{explicit}, result.LoadedFrom)
	assert.Equal(t, explicit, result.Paths.Explicit)
}

func TestLoad_Precedence(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".gocsfix.yml"), `
max_passes: 4
backups:
  mode: none
`)

	opts := baseOptions(dir)
	opts.Getenv = envMap(map[string]string{
		"GOCSFIX_MAX_PASSES":    "6",
		"GOCSFIX_JOBS":          "2",
		"GOCSFIX_CACHE_ENABLED": "false",
		"GOCSFIX_IGNORE":        "vendor/**, build/** ,",
	})
	opts.CLIConfig = &config.Config{Jobs: 8, RiskyAllowed: true, EnableRules: []string{"logical_operators"}}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	cfg := result.Config
	assert.Equal(t, 6, cfg.MaxPasses, "env beats file")
	assert.Equal(t, 8, cfg.Jobs, "CLI beats env")
	assert.Equal(t, "none", cfg.Backups.Mode)
	assert.False(t, cfg.Cache.Enabled)
	assert.True(t, cfg.RiskyAllowed)
	assert.Equal(t, []string{"vendor/**", "build/**"}, cfg.Ignore)
	assert.Equal(t, []string{"logical_operators"}, cfg.EnableRules)
}

func TestLoad_DisableCache(t *testing.T) {
	t.Parallel()

	opts := baseOptions(projectDir(t))
	opts.DisableCache = true

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.False(t, result.Config.Cache.Enabled)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		file      string
		env       map[string]string
		target    error
		substring string
	}{
		{
			name:      "unknown fixer",
			file:      "rules:\n  no_such_fixer:\n    enabled: true\n",
			target:    fixer.ErrUnknownFixer,
			substring: `rules.no_such_fixer: unknown fixer "no_such_fixer"`,
		},
		{
			name:      "bad option value",
			file:      "rules:\n  return_type_declaration:\n    options:\n      space_before: two\n",
			target:    fixer.ErrInvalidConfiguration,
			substring: "space_before",
		},
		{
			name:      "options on a fixer without options",
			file:      "rules:\n  no_closing_tag:\n    options:\n      x: 1\n",
			target:    fixer.ErrInvalidConfiguration,
			substring: "fixer has no options",
		},
		{
			name:      "max passes below minimum",
			file:      "max_passes: 1\n",
			substring: "max_passes must be at least 2",
		},
		{
			name:      "bad backup mode",
			file:      "backups:\n  mode: copy\n",
			substring: `invalid backup mode "copy"`,
		},
		{
			name:      "bad ignore glob",
			file:      "ignore:\n  - \"[a-\"\n",
			substring: "invalid glob pattern",
		},
		{
			name:      "unknown key",
			file:      "risky_alowed: true\n",
			substring: "risky_alowed",
		},
		{
			name:      "bad env value",
			env:       map[string]string{"GOCSFIX_RISKY_ALLOWED": "maybe"},
			substring: "invalid boolean for GOCSFIX_RISKY_ALLOWED",
		},
		{
			name:      "bad env format",
			env:       map[string]string{"GOCSFIX_FORMAT": "sarif"},
			substring: `invalid format "sarif"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := projectDir(t)
			if tt.file != "" {
				writeFile(t, filepath.Join(dir, ".gocsfix.yml"), tt.file)
			}
			opts := baseOptions(dir)
			if tt.env != nil {
				opts.Getenv = envMap(tt.env)
			}

			result, err := Load(context.Background(), opts)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), tt.substring)
			if tt.target != nil {
				require.ErrorIs(t, err, tt.target)
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
			}
		})
	}
}

func TestLoad_AliasWarning(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".gocsfix.yml"), "rules:\n  php_closing_tag:\n    enabled: false\n")

	result, err := Load(context.Background(), baseOptions(dir))
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], `"php_closing_tag" is deprecated; use "no_closing_tag"`)
}

func TestOverlayFile_MergesRules(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	user := writeFile(t, filepath.Join(dir, "user.yaml"), `
rules:
  return_type_declaration:
    enabled: true
    options:
      space_before: one
`)
	project := writeFile(t, filepath.Join(dir, "project.toml"), `
[rules.return_type_declaration]
enabled = false
`)

	cfg, err := overlayFile(config.NewConfig(), user)
	require.NoError(t, err)
	cfg, err = overlayFile(cfg, project)
	require.NoError(t, err)

	rule := cfg.Rules["return_type_declaration"]
	require.NotNil(t, rule.Enabled)
	assert.False(t, *rule.Enabled)
	assert.Equal(t, "one", rule.Options["space_before"])

	_, err = overlayFile(cfg, filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	on := true
	base := config.NewConfig()
	base.Rules["logical_operators"] = config.FixerConfig{Options: map[string]any{"use_keywords": true}}

	merged := MergeAll(base, &config.Config{
		Format:  config.FormatJSON,
		DryRun:  true,
		Ignore:  []string{"x/**"},
		Rules:   map[string]config.FixerConfig{"logical_operators": {Enabled: &on}},
		Backups: config.BackupsConfig{Enabled: true},
	})

	assert.Equal(t, config.FormatJSON, merged.Format)
	assert.True(t, merged.DryRun)
	assert.True(t, merged.Backups.Enabled)
	assert.Equal(t, "sidecar", merged.Backups.Mode)
	assert.Equal(t, []string{"x/**"}, merged.Ignore)
	assert.True(t, *merged.Rules["logical_operators"].Enabled)
	assert.Equal(t, true, merged.Rules["logical_operators"].Options["use_keywords"])

	assert.Nil(t, MergeAll())
	assert.Same(t, base, merge(base, nil))
}

func TestEnvHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "GOCSFIX_MAX_PASSES", GetEnvVarName("max_passes"))
	assert.Empty(t, GetEnvVarName("nope"))

	vars := ListEnvVars()
	assert.Len(t, vars, len(envMappings))
	assert.Contains(t, vars, "GOCSFIX_SHORT_OPEN_TAG")
}

func TestWriteConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".gocsfix.yml")
	require.NoError(t, WriteConfigFile(path, []byte("max_passes: 3\n"), false))

	err := WriteConfigFile(path, []byte("max_passes: 4\n"), false)
	require.ErrorIs(t, err, ErrConfigExists)

	require.NoError(t, WriteConfigFile(path, []byte("max_passes: 4\n"), true))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "max_passes: 4\n", string(got))
}

func TestValidationResult_Err(t *testing.T) {
	t.Parallel()

	result := Validate(&config.Config{Jobs: -1, MaxPasses: -3}, nil)
	require.Len(t, result.Errors, 2)

	err := result.Err()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "jobs", verr.Field)
	assert.Len(t, result.AllMessages(), 2)

	assert.NoError(t, (&ValidationResult{}).Err())
}
