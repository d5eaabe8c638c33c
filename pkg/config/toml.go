package config

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ToTOML serializes the configuration to TOML format.
func (c *Config) ToTOML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	encoder.Indent = "  "
	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// FromTOML parses a configuration from TOML bytes.
func FromTOML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := DecodeTOML(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DecodeTOML decodes data on top of cfg. Keys that do not map to a field are
// rejected so typos surface early.
func DecodeTOML(data []byte, cfg *Config) error {
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parse toml: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("parse toml: unknown key %q", undecoded[0].String())
	}

	if cfg.Rules == nil {
		cfg.Rules = make(map[string]FixerConfig)
	}
	for name, fc := range cfg.Rules {
		fc.Options = normalizeTOML(fc.Options)
		cfg.Rules[name] = fc
	}
	return nil
}

// normalizeTOML converts TOML-decoded values to the shapes YAML decoding
// produces, so option validation sees one representation: int64 becomes
// int and []map tables become map[string]any.
func normalizeTOML(opts map[string]any) map[string]any {
	if opts == nil {
		return nil
	}
	out := make(map[string]any, len(opts))
	for k, v := range opts {
		out[k] = normalizeTOMLValue(v)
	}
	return out
}

func normalizeTOMLValue(v any) any {
	switch val := v.(type) {
	case int64:
		return int(val)
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = normalizeTOMLValue(item)
		}
		return items
	case map[string]any:
		return normalizeTOML(val)
	default:
		return v
	}
}
