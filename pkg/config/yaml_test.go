package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocsfix/pkg/config"
	"github.com/yaklabco/gocsfix/pkg/phplex"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("empty config", func(t *testing.T) {
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
	})

	t.Run("deep copies Rules map", func(t *testing.T) {
		enabled := true
		original := &config.Config{
			Rules: map[string]config.FixerConfig{
				"return_type_declaration": {
					Enabled: &enabled,
					Options: map[string]any{"space_before": "one"},
				},
			},
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		require.Contains(t, clone.Rules, "return_type_declaration")
		assert.True(t, *clone.Rules["return_type_declaration"].Enabled)
		assert.Equal(t, "one", clone.Rules["return_type_declaration"].Options["space_before"])

		disabled := false
		clone.Rules["return_type_declaration"] = config.FixerConfig{Enabled: &disabled}
		assert.True(t, *original.Rules["return_type_declaration"].Enabled)
	})

	t.Run("deep copies Ignore slice", func(t *testing.T) {
		original := &config.Config{Ignore: []string{"vendor/**", "*.tpl.php"}}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original.Ignore, clone.Ignore)

		clone.Ignore[0] = "changed"
		assert.Equal(t, "vendor/**", original.Ignore[0])
	})

	t.Run("preserves all fields", func(t *testing.T) {
		original := &config.Config{
			RiskyAllowed: true,
			MaxPasses:    5,
			Tokenizer:    phplex.Options{ShortOpenTag: true},
			Ignore:       []string{"*.bak"},
			Cache:        config.CacheConfig{Enabled: true, Path: "x.cache"},
			Backups:      config.BackupsConfig{Enabled: true, Mode: "sidecar"},
			DryRun:       true,
			Format:       config.FormatJSON,
			Jobs:         4,
			EnableRules:  []string{"logical_operators"},
			DisableRules: []string{"no_closing_tag"},
			NoBackups:    true,
		}

		clone := original.Clone()
		require.NotNil(t, clone)

		assert.Equal(t, original.RiskyAllowed, clone.RiskyAllowed)
		assert.Equal(t, original.MaxPasses, clone.MaxPasses)
		assert.Equal(t, original.Tokenizer, clone.Tokenizer)
		assert.Equal(t, original.Cache, clone.Cache)
		assert.Equal(t, original.Backups, clone.Backups)
		assert.Equal(t, original.DryRun, clone.DryRun)
		assert.Equal(t, original.Format, clone.Format)
		assert.Equal(t, original.Jobs, clone.Jobs)
		assert.Equal(t, original.NoBackups, clone.NoBackups)
		assert.Equal(t, original.EnableRules, clone.EnableRules)
		assert.Equal(t, original.DisableRules, clone.DisableRules)
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var cfg *config.Config
		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("basic config serializes", func(t *testing.T) {
		cfg := &config.Config{RiskyAllowed: true, MaxPasses: 3}

		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "risky_allowed: true")
		assert.Contains(t, string(data), "max_passes: 3")
		assert.NotContains(t, string(data), "dry_run")
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("parses valid YAML", func(t *testing.T) {
		data := []byte(`
risky_allowed: true
tokenizer:
  short_open_tag: true
rules:
  logical_operators:
    enabled: true
    options:
      use_keywords: false
`)
		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.True(t, cfg.RiskyAllowed)
		assert.True(t, cfg.Tokenizer.ShortOpenTag)
		require.Contains(t, cfg.Rules, "logical_operators")
		assert.True(t, *cfg.Rules["logical_operators"].Enabled)
		assert.Equal(t, false, cfg.Rules["logical_operators"].Options["use_keywords"])
	})

	t.Run("initializes empty Rules map", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte(`max_passes: 4`))
		require.NoError(t, err)
		assert.NotNil(t, cfg.Rules)
	})
}

func TestFromTOML(t *testing.T) {
	t.Run("parses valid TOML", func(t *testing.T) {
		data := []byte(`
risky_allowed = true
max_passes = 6
ignore = ["vendor/**"]

[tokenizer]
short_open_tag = true

[rules.php_unit_strict]
enabled = true

[rules.php_unit_strict.options]
assertions = ["assertEquals"]
depth = 2
`)
		cfg, err := config.FromTOML(data)
		require.NoError(t, err)
		assert.True(t, cfg.RiskyAllowed)
		assert.Equal(t, 6, cfg.MaxPasses)
		assert.True(t, cfg.Tokenizer.ShortOpenTag)
		assert.Equal(t, []string{"vendor/**"}, cfg.Ignore)

		rule := cfg.Rules["php_unit_strict"]
		require.NotNil(t, rule.Enabled)
		assert.True(t, *rule.Enabled)
		assert.Equal(t, []any{"assertEquals"}, rule.Options["assertions"])
		assert.Equal(t, 2, rule.Options["depth"])
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := config.FromTOML([]byte("risky_alowed = true\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "risky_alowed")
	})

	t.Run("round trips through ToTOML", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.RiskyAllowed = true

		data, err := cfg.ToTOML()
		require.NoError(t, err)

		back, err := config.FromTOML(data)
		require.NoError(t, err)
		assert.True(t, back.RiskyAllowed)
		assert.Equal(t, cfg.Cache, back.Cache)
	})
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	provider := func() []config.FixerInfo {
		return []config.FixerInfo{
			{Name: "no_closing_tag", Summary: "Remove the closing tag.", DefaultEnabled: true},
			{
				Name: "logical_operators", Summary: "Use && and ||.", Risky: true,
				Options: map[string]any{"use_keywords": false},
			},
		}
	}

	minimal, err := config.GenerateTemplate(config.TemplateOptions{}, provider)
	require.NoError(t, err)
	_, err = config.FromYAML(minimal)
	require.NoError(t, err)

	full, err := config.GenerateTemplate(config.TemplateOptions{Full: true}, provider)
	require.NoError(t, err)
	cfg, err := config.FromYAML(full)
	require.NoError(t, err)
	require.Contains(t, cfg.Rules, "logical_operators")
	assert.Equal(t, false, cfg.Rules["logical_operators"].Options["use_keywords"])
	assert.Contains(t, string(full), "# Risky")

	tomlData, err := config.GenerateTemplate(config.TemplateOptions{Full: true, Format: "toml"}, provider)
	require.NoError(t, err)
	tcfg, err := config.FromTOML(tomlData)
	require.NoError(t, err)
	assert.Contains(t, tcfg.Rules, "no_closing_tag")

	_, err = config.GenerateTemplate(config.TemplateOptions{Format: "ini"}, provider)
	require.Error(t, err)
}
