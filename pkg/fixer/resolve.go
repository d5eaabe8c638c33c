package fixer

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/yaklabco/gocsfix/pkg/config"
)

// Resolution is the outcome of ResolveFixers.
type Resolution struct {
	// Fixers are configured and sorted into execution order.
	Fixers []Fixer

	// SkippedRisky names enabled fixers dropped because risky fixers are
	// not allowed.
	SkippedRisky []string
}

// Names returns the fixer names in execution order.
func (r *Resolution) Names() []string {
	names := make([]string, len(r.Fixers))
	for i, f := range r.Fixers {
		names[i] = f.Name()
	}
	return names
}

// ResolveFixers decides which fixers run for cfg and configures them.
//
// A fixer is enabled by its default, then by rules.<name>.enabled, then by
// the CLI enable and disable lists, in increasing precedence. Risky fixers
// are dropped unless cfg.RiskyAllowed. Configuration errors are returned
// before any fixer runs.
func ResolveFixers(registry *Registry, cfg *config.Config) (*Resolution, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	rules, err := canonicalRules(registry, cfg.Rules)
	if err != nil {
		return nil, err
	}
	enable, err := canonicalNames(registry, cfg.EnableRules)
	if err != nil {
		return nil, err
	}
	disable, err := canonicalNames(registry, cfg.DisableRules)
	if err != nil {
		return nil, err
	}

	res := &Resolution{}
	for _, f := range registry.Fixers() {
		name := f.Name()
		rc, hasRule := rules[name]

		enabled := f.DefaultEnabled()
		if hasRule && rc.Enabled != nil {
			enabled = *rc.Enabled
		}
		if slices.Contains(enable, name) {
			enabled = true
		}
		if slices.Contains(disable, name) {
			enabled = false
		}
		if !enabled {
			continue
		}

		if f.IsRisky() && !cfg.RiskyAllowed {
			res.SkippedRisky = append(res.SkippedRisky, name)
			continue
		}

		if err := configure(f, rc.Options); err != nil {
			return nil, err
		}
		res.Fixers = append(res.Fixers, f)
	}

	SortFixers(res.Fixers)
	return res, nil
}

func configure(f Fixer, options map[string]any) error {
	c, ok := f.(Configurable)
	if !ok {
		if len(options) > 0 {
			return &ConfigurationError{Fixer: f.Name(), Msg: "fixer has no options"}
		}
		return nil
	}
	return c.Configure(options)
}

// SortFixers orders fixers by priority, highest first, then by name.
func SortFixers(fixers []Fixer) {
	slices.SortStableFunc(fixers, func(a, b Fixer) int {
		if c := cmp.Compare(b.Priority(), a.Priority()); c != 0 {
			return c
		}
		return cmp.Compare(a.Name(), b.Name())
	})
}

func canonicalRules(registry *Registry, rules map[string]config.FixerConfig) (map[string]config.FixerConfig, error) {
	out := make(map[string]config.FixerConfig, len(rules))
	for key, rc := range rules {
		name, ok := registry.Resolve(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFixer, key)
		}
		out[name] = rc
	}
	return out, nil
}

func canonicalNames(registry *Registry, keys []string) ([]string, error) {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		name, ok := registry.Resolve(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFixer, key)
		}
		out = append(out, name)
	}
	return out, nil
}
