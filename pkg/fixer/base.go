package fixer

// BaseFixer provides the descriptive half of the Fixer interface.
// Embed it in fixer implementations and add IsCandidate and Fix.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseFixer struct {
	name     string
	summary  string
	priority int
	risky    bool
}

// NewBaseFixer creates a BaseFixer with the given properties.
func NewBaseFixer(name, summary string, priority int, risky bool) BaseFixer {
	return BaseFixer{
		name:     name,
		summary:  summary,
		priority: priority,
		risky:    risky,
	}
}

// Name returns the fixer name.
func (b *BaseFixer) Name() string {
	return b.name
}

// Description returns the one-line summary.
func (b *BaseFixer) Description() string {
	return b.summary
}

// Definition returns a definition holding only the summary.
// Override it to add samples.
func (b *BaseFixer) Definition() Definition {
	return Definition{Summary: b.summary}
}

// Priority returns the ordering priority.
func (b *BaseFixer) Priority() int {
	return b.priority
}

// IsRisky reports whether the fixer may change behavior.
func (b *BaseFixer) IsRisky() bool {
	return b.risky
}

// DefaultEnabled returns true. Override this method to change the default.
func (b *BaseFixer) DefaultEnabled() bool {
	return true
}

// Configurator stores the resolved options of a configurable fixer.
type Configurator struct {
	set    *OptionSet
	values Values
}

// NewConfigurator returns a Configurator over set.
func NewConfigurator(set *OptionSet) Configurator {
	return Configurator{set: set}
}

// Options returns the option definitions.
func (c *Configurator) Options() *OptionSet {
	return c.set
}

// Configure resolves raw. On error the previous configuration is kept.
func (c *Configurator) Configure(raw map[string]any) error {
	values, err := c.set.Resolve(raw)
	if err != nil {
		return err
	}
	c.values = values
	return nil
}

// Values returns the resolved options, or the defaults when Configure was
// never called. It never mutates the Configurator, so a configured fixer is
// safe to share between goroutines.
func (c *Configurator) Values() Values {
	if c.values == nil {
		return Values(c.set.Defaults())
	}
	return c.values
}
