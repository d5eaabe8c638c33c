package fixer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocsfix/pkg/config"
	"github.com/yaklabco/gocsfix/pkg/fixer"
)

func boolPtr(b bool) *bool { return &b }

func TestResolveFixers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		setup       func(cfg *config.Config)
		wantNames   []string
		wantSkipped []string
	}{
		{
			name:      "defaults in priority order",
			setup:     func(*config.Config) {},
			wantNames: []string{"b_to_c", "rename_old"},
		},
		{
			name: "risky enabled but not allowed",
			setup: func(cfg *config.Config) {
				cfg.EnableRules = []string{"dangerous"}
			},
			wantNames:   []string{"b_to_c", "rename_old"},
			wantSkipped: []string{"dangerous"},
		},
		{
			name: "risky enabled and allowed",
			setup: func(cfg *config.Config) {
				cfg.Rules["dangerous"] = config.FixerConfig{Enabled: boolPtr(true)}
				cfg.RiskyAllowed = true
			},
			wantNames: []string{"b_to_c", "dangerous", "rename_old"},
		},
		{
			name: "rule disables through alias",
			setup: func(cfg *config.Config) {
				cfg.Rules["old_name"] = config.FixerConfig{Enabled: boolPtr(false)}
			},
			wantNames: []string{"b_to_c"},
		},
		{
			name: "cli disable beats rule enable",
			setup: func(cfg *config.Config) {
				cfg.Rules["b_to_c"] = config.FixerConfig{Enabled: boolPtr(true)}
				cfg.DisableRules = []string{"b_to_c"}
			},
			wantNames: []string{"rename_old"},
		},
		{
			name: "cli enable beats rule disable",
			setup: func(cfg *config.Config) {
				cfg.Rules["b_to_c"] = config.FixerConfig{Enabled: boolPtr(false)}
				cfg.EnableRules = []string{"b_to_c"}
			},
			wantNames: []string{"b_to_c", "rename_old"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			tt.setup(cfg)

			res, err := fixer.ResolveFixers(fakeRegistry(), cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNames, res.Names())
			assert.Equal(t, tt.wantSkipped, res.SkippedRisky)
		})
	}
}

func TestResolveFixers_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(cfg *config.Config)
		wantErr error
	}{
		{
			name:    "unknown rule",
			setup:   func(cfg *config.Config) { cfg.Rules["nope"] = config.FixerConfig{} },
			wantErr: fixer.ErrUnknownFixer,
		},
		{
			name:    "unknown enable",
			setup:   func(cfg *config.Config) { cfg.EnableRules = []string{"nope"} },
			wantErr: fixer.ErrUnknownFixer,
		},
		{
			name:    "unknown disable",
			setup:   func(cfg *config.Config) { cfg.DisableRules = []string{"nope"} },
			wantErr: fixer.ErrUnknownFixer,
		},
		{
			name: "options on fixer without options",
			setup: func(cfg *config.Config) {
				cfg.Rules["b_to_c"] = config.FixerConfig{Options: map[string]any{"x": 1}}
			},
			wantErr: fixer.ErrInvalidConfiguration,
		},
		{
			name: "invalid option value",
			setup: func(cfg *config.Config) {
				cfg.Rules["rename_old"] = config.FixerConfig{Options: map[string]any{"to": 5}}
			},
			wantErr: fixer.ErrInvalidConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			tt.setup(cfg)

			_, err := fixer.ResolveFixers(fakeRegistry(), cfg)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolveFixers_DisabledFixerIsNotConfigured(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Rules["rename_old"] = config.FixerConfig{Enabled: boolPtr(false), Options: map[string]any{"to": 5}}

	res, err := fixer.ResolveFixers(fakeRegistry(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"b_to_c"}, res.Names())
}
