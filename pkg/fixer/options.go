package fixer

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
)

// OptionType is the value shape an option accepts.
type OptionType uint8

const (
	// TypeBool accepts true or false.
	TypeBool OptionType = iota + 1
	// TypeInt accepts an integer; YAML floats with no fraction are allowed.
	TypeInt
	// TypeString accepts a single string.
	TypeString
	// TypeStringList accepts a sequence of strings.
	TypeStringList
	// TypeStringMap accepts a mapping of string keys to string values.
	TypeStringMap
)

func (t OptionType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeString:
		return "string"
	case TypeStringList:
		return "string list"
	case TypeStringMap:
		return "string map"
	default:
		return "unknown"
	}
}

// Option describes one configuration key of a fixer. It is plain data; the
// only behavior is the optional Normalize function, which must be pure.
type Option struct {
	Name        string
	Description string
	Type        OptionType

	// Default is used when the key is absent. A nil Default makes the
	// option required.
	Default any

	// AllowedValues restricts string values, or the items of a string list.
	AllowedValues []string

	// Normalize validates and may rewrite an already type-checked value.
	Normalize func(v any) (any, error)
}

// OptionSet is the ordered list of options one fixer accepts.
type OptionSet struct {
	fixer   string
	options []Option
}

// NewOptionSet builds an option set. Duplicate names are a programming error
// and panic.
func NewOptionSet(fixer string, options ...Option) *OptionSet {
	seen := make(map[string]bool, len(options))
	for _, opt := range options {
		if seen[opt.Name] {
			panic(fmt.Sprintf("fixer %s: duplicate option %q", fixer, opt.Name))
		}
		seen[opt.Name] = true
	}
	return &OptionSet{fixer: fixer, options: options}
}

// Options returns the option definitions in declaration order.
func (s *OptionSet) Options() []Option {
	return slices.Clone(s.options)
}

// Defaults returns the default value of every option that has one.
func (s *OptionSet) Defaults() map[string]any {
	out := make(map[string]any, len(s.options))
	for _, opt := range s.options {
		if opt.Default != nil {
			out[opt.Name] = cloneValue(opt.Default)
		}
	}
	return out
}

// Resolve validates raw against the definitions and fills in defaults.
func (s *OptionSet) Resolve(raw map[string]any) (Values, error) {
	known := make(map[string]Option, len(s.options))
	for _, opt := range s.options {
		known[opt.Name] = opt
	}

	keys := slices.Sorted(maps.Keys(raw))
	for _, key := range keys {
		if _, ok := known[key]; !ok {
			return nil, &ConfigurationError{
				Fixer:  s.fixer,
				Option: key,
				Msg:    "unknown option, expected one of " + strings.Join(s.names(), ", "),
			}
		}
	}

	values := make(Values, len(s.options))
	for _, opt := range s.options {
		v, present := raw[opt.Name]
		if !present {
			if opt.Default == nil {
				return nil, &ConfigurationError{Fixer: s.fixer, Option: opt.Name, Msg: "missing required option"}
			}
			values[opt.Name] = cloneValue(opt.Default)
			continue
		}

		coerced, err := coerce(v, opt.Type)
		if err != nil {
			return nil, &ConfigurationError{Fixer: s.fixer, Option: opt.Name, Msg: err.Error()}
		}
		if err := checkAllowed(coerced, opt.AllowedValues); err != nil {
			return nil, &ConfigurationError{Fixer: s.fixer, Option: opt.Name, Msg: err.Error()}
		}
		if opt.Normalize != nil {
			coerced, err = opt.Normalize(coerced)
			if err != nil {
				return nil, &ConfigurationError{Fixer: s.fixer, Option: opt.Name, Msg: err.Error()}
			}
		}
		values[opt.Name] = coerced
	}
	return values, nil
}

func (s *OptionSet) names() []string {
	names := make([]string, len(s.options))
	for i, opt := range s.options {
		names[i] = opt.Name
	}
	sort.Strings(names)
	return names
}

// coerce converts decoded YAML/TOML values to the Go type of t.
func coerce(v any, t OptionType) (any, error) {
	switch t {
	case TypeBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case TypeInt:
		switch n := v.(type) {
		case int:
			return n, nil
		case int64:
			return int(n), nil
		case float64:
			if n == float64(int(n)) {
				return int(n), nil
			}
		}
	case TypeString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case TypeStringList:
		switch list := v.(type) {
		case []string:
			return slices.Clone(list), nil
		case []any:
			out := make([]string, len(list))
			for i, item := range list {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("expected %s, item %d is %T", t, i, item)
				}
				out[i] = s
			}
			return out, nil
		}
	case TypeStringMap:
		switch m := v.(type) {
		case map[string]string:
			return maps.Clone(m), nil
		case map[string]any:
			out := make(map[string]string, len(m))
			for k, item := range m {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("expected %s, key %q is %T", t, k, item)
				}
				out[k] = s
			}
			return out, nil
		}
	}
	return nil, fmt.Errorf("expected %s, got %T", t, v)
}

func checkAllowed(v any, allowed []string) error {
	if len(allowed) == 0 {
		return nil
	}
	check := func(s string) error {
		if !slices.Contains(allowed, s) {
			return fmt.Errorf("value %q is not allowed, expected one of %s", s, strings.Join(allowed, ", "))
		}
		return nil
	}
	switch val := v.(type) {
	case string:
		return check(val)
	case []string:
		for _, s := range val {
			if err := check(s); err != nil {
				return err
			}
		}
	}
	return nil
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case []string:
		return slices.Clone(val)
	case map[string]string:
		return maps.Clone(val)
	default:
		return v
	}
}

// Values holds resolved option values keyed by option name.
type Values map[string]any

// Bool returns a bool option, or false if absent.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Int returns an int option, or 0 if absent.
func (v Values) Int(name string) int {
	n, _ := v[name].(int)
	return n
}

// String returns a string option, or "" if absent.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Strings returns a string list option.
func (v Values) Strings(name string) []string {
	s, _ := v[name].([]string)
	return s
}

// StringMap returns a string map option.
func (v Values) StringMap(name string) map[string]string {
	m, _ := v[name].(map[string]string)
	return m
}
