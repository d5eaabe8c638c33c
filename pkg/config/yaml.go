package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent())

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToYAMLWithHeader serializes the configuration with a header comment.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	yamlBytes, err := c.ToYAML()
	if err != nil {
		return nil, err
	}

	if header == "" {
		return yamlBytes, nil
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(yamlBytes)

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := DecodeYAML(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DecodeYAML decodes data on top of cfg; keys absent from data keep their
// current values. Unknown keys are rejected.
func DecodeYAML(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse yaml: %w", err)
	}

	if cfg.Rules == nil {
		cfg.Rules = make(map[string]FixerConfig)
	}
	return nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	yamlBytes, err := c.ToYAML()
	if err != nil {
		return c.deepCopy()
	}

	clone, err := FromYAML(yamlBytes)
	if err != nil {
		return c.deepCopy()
	}

	c.copyCLIFields(clone)

	return clone
}

// copyCLIFields copies CLI-only fields (yaml:"-") to the target config.
func (c *Config) copyCLIFields(target *Config) {
	target.DryRun = c.DryRun
	target.Format = c.Format
	target.Jobs = c.Jobs
	target.NoBackups = c.NoBackups
	target.EnableRules = slices.Clone(c.EnableRules)
	target.DisableRules = slices.Clone(c.DisableRules)
}

// deepCopy is the fallback when the YAML round trip fails.
func (c *Config) deepCopy() *Config {
	clone := &Config{
		RiskyAllowed: c.RiskyAllowed,
		MaxPasses:    c.MaxPasses,
		Tokenizer:    c.Tokenizer,
		Ignore:       slices.Clone(c.Ignore),
		Cache:        c.Cache,
		Backups:      c.Backups,
	}

	if c.Rules != nil {
		clone.Rules = make(map[string]FixerConfig, len(c.Rules))
		for k, v := range c.Rules {
			clone.Rules[k] = v.clone()
		}
	}

	c.copyCLIFields(clone)

	return clone
}

// clone creates a deep copy of a FixerConfig.
func (fc FixerConfig) clone() FixerConfig {
	clone := FixerConfig{}

	if fc.Enabled != nil {
		enabled := *fc.Enabled
		clone.Enabled = &enabled
	}

	if fc.Options != nil {
		clone.Options = make(map[string]any, len(fc.Options))
		maps.Copy(clone.Options, fc.Options) // nested values are shared
	}

	return clone
}

// YAMLIndent returns the default YAML indentation.
func YAMLIndent() int {
	return 2
}
