package rules

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/yaklabco/gocsfix/pkg/fixer"
	"github.com/yaklabco/gocsfix/pkg/token"
	"github.com/yaklabco/gocsfix/pkg/tokens"
)

// docTagPattern matches a tag at the start of a docblock line: the opening
// "/**", an optional leading "*", then "@name".
//
//nolint:gochecknoglobals // compiled once
var docTagPattern = regexp.MustCompile(`(?m)^([ \t]*(?:/\*\*)?[ \t]*\*?[ \t]*@)([a-zA-Z0-9_\\-]+)`)

//nolint:gochecknoglobals // compiled once
var validTagName = regexp.MustCompile(`^\S+$`)

// PhpdocNoAliasTagFixer replaces alias PHPDoc tags with their canonical
// names, e.g. @type becomes @var.
type PhpdocNoAliasTagFixer struct {
	fixer.BaseFixer
	fixer.Configurator
}

// NewPhpdocNoAliasTagFixer creates a new phpdoc_no_alias_tag fixer.
func NewPhpdocNoAliasTagFixer() *PhpdocNoAliasTagFixer {
	return &PhpdocNoAliasTagFixer{
		BaseFixer: fixer.NewBaseFixer(
			"phpdoc_no_alias_tag",
			"No alias PHPDoc tags should be used",
			11,
			false,
		),
		Configurator: fixer.NewConfigurator(fixer.NewOptionSet("phpdoc_no_alias_tag",
			fixer.Option{
				Name:        "replacements",
				Description: "Mapping between replaced annotations with new ones.",
				Type:        fixer.TypeStringMap,
				Default: map[string]string{
					"property-read":  "property",
					"property-write": "property",
					"type":           "var",
					"link":           "see",
				},
				Normalize: normalizeTagReplacements,
			},
		)),
	}
}

// normalizeTagReplacements trims tag names and rejects targets that are not
// a single word, would close the docblock, or are themselves replaced.
func normalizeTagReplacements(v any) (any, error) {
	raw, ok := v.(map[string]string)
	if !ok {
		return nil, fmt.Errorf("expected string map, got %T", v)
	}

	out := make(map[string]string, len(raw))
	for from, to := range raw {
		if !validTagName.MatchString(to) || strings.Contains(to, "*/") {
			return nil, fmt.Errorf("tag %q cannot be replaced by invalid tag %q", from, to)
		}
		from = strings.TrimSpace(from)
		if from == "" {
			return nil, errors.New("tag to replace must not be empty")
		}
		out[from] = strings.TrimSpace(to)
	}

	for _, from := range slices.Sorted(maps.Keys(out)) {
		to := out[from]
		if next, chained := out[to]; chained {
			return nil, fmt.Errorf("cannot change tag %q to tag %q, as the tag %q is configured to be replaced to %q", from, to, to, next)
		}
	}
	return out, nil
}

// Definition documents the fixer.
func (f *PhpdocNoAliasTagFixer) Definition() fixer.Definition {
	return fixer.Definition{
		Summary:     f.Description(),
		Description: "Option `replacements` maps current annotations to new ones.",
		Samples: []fixer.CodeSample{
			{Code: "<?php\n/**\n * @property-read string $foo\n * @type int\n * @link https://example.com\n */\nfinal class Example\n{\n}\n"},
			{
				Code:    "<?php\n/**\n * @link https://example.com\n */\nfinal class Example\n{\n}\n",
				Options: map[string]any{"replacements": map[string]string{"link": "website"}},
			},
		},
	}
}

// IsCandidate checks for docblocks.
func (f *PhpdocNoAliasTagFixer) IsCandidate(s *tokens.Stream) bool {
	return s.IsKindFound(token.DocComment)
}

// Fix renames configured tags in every docblock.
func (f *PhpdocNoAliasTagFixer) Fix(_ *fixer.FileContext, s *tokens.Stream) error {
	replacements := f.Values().StringMap("replacements")
	if len(replacements) == 0 {
		return nil
	}

	for _, i := range s.FindKind(token.DocComment) {
		content := s.At(i).Content
		fixed := docTagPattern.ReplaceAllStringFunc(content, func(m string) string {
			parts := docTagPattern.FindStringSubmatch(m)
			if to, ok := replacements[parts[2]]; ok {
				return parts[1] + to
			}
			return m
		})
		s.SetContent(i, fixed)
	}
	return nil
}
