package config

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full lists every fixer with its documentation and default options.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "toml".
	Format string
}

// FixerInfo contains fixer metadata for template generation.
type FixerInfo struct {
	Name           string
	Summary        string
	Risky          bool
	DefaultEnabled bool
	Options        map[string]any
}

// FixerInfoProvider returns fixer information. It decouples this package
// from the fixer registry to avoid an import cycle.
type FixerInfoProvider func() []FixerInfo

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions, provider FixerInfoProvider) ([]byte, error) {
	switch opts.Format {
	case "", "yaml", "yml":
	case "toml":
		return generateTOMLTemplate(opts, provider)
	default:
		return nil, fmt.Errorf("unknown template format %q", opts.Format)
	}

	if !opts.Full || provider == nil {
		return []byte(minimalTemplate), nil
	}
	return generateFullTemplate(provider())
}

const minimalTemplate = `# gocsfix configuration

# Allow fixers that may change program behavior.
risky_allowed: false

# Upper bound on fix passes per file (minimum 2).
max_passes: 10

# tokenizer:
#   short_open_tag: false

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"

# cache:
#   enabled: true
#   path: .gocsfix.cache

# Fixer-specific configuration
# rules:
#   logical_operators:
#     enabled: true
#   return_type_declaration:
#     options:
#       space_before: none
`

func generateFullTemplate(fixers []FixerInfo) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`# gocsfix configuration - full template
#
# Every built-in fixer is listed with its default settings.

risky_allowed: false
max_passes: 10

tokenizer:
  short_open_tag: false

ignore:
  - "vendor/**"

cache:
  enabled: true
  path: .gocsfix.cache

backups:
  enabled: false
  mode: sidecar

rules:
`)

	slices.SortFunc(fixers, func(a, b FixerInfo) int { return strings.Compare(a.Name, b.Name) })

	for _, f := range fixers {
		fmt.Fprintf(&buf, "\n  # %s\n", wrapComment(f.Summary, commentWrapWidth))
		if f.Risky {
			buf.WriteString("  # Risky: only runs with risky_allowed: true\n")
		}
		fmt.Fprintf(&buf, "  %s:\n", f.Name)
		fmt.Fprintf(&buf, "    enabled: %t\n", f.DefaultEnabled)
		if len(f.Options) == 0 {
			continue
		}
		buf.WriteString("    options:\n")
		names := make([]string, 0, len(f.Options))
		for name := range f.Options {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			fmt.Fprintf(&buf, "      %s: %s\n", name, yamlScalar(f.Options[name]))
		}
	}

	return buf.Bytes(), nil
}

func generateTOMLTemplate(opts TemplateOptions, provider FixerInfoProvider) ([]byte, error) {
	cfg := NewConfig()
	cfg.Ignore = []string{"vendor/**"}
	if opts.Full && provider != nil {
		for _, f := range provider() {
			enabled := f.DefaultEnabled
			cfg.Rules[f.Name] = FixerConfig{Enabled: &enabled, Options: f.Options}
		}
	}

	body, err := cfg.ToTOML()
	if err != nil {
		return nil, err
	}
	return append([]byte(DefaultTemplateHeader()+"\n\n"), body...), nil
}

// yamlScalar renders a default option value on one line.
func yamlScalar(v any) string {
	switch val := v.(type) {
	case string:
		return fmt.Sprintf("%q", val)
	case []string:
		quoted := make([]string, len(val))
		for i, s := range val {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case map[string]string:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = fmt.Sprintf("%q: %q", k, val[k])
		}
		return "{" + strings.Join(pairs, ", ") + "}"
	default:
		return fmt.Sprint(val)
	}
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# gocsfix configuration`
}
