package rules

import (
	"github.com/yaklabco/gocsfix/pkg/fixer"
	"github.com/yaklabco/gocsfix/pkg/token"
	"github.com/yaklabco/gocsfix/pkg/tokens"
)

// LogicalOperatorsFixer replaces the low-precedence keywords and / or with
// && / ||, or the reverse when use_keywords is set. The operators bind
// differently, so the fixer is risky.
type LogicalOperatorsFixer struct {
	fixer.BaseFixer
	fixer.Configurator
}

// NewLogicalOperatorsFixer creates a new logical_operators fixer.
func NewLogicalOperatorsFixer() *LogicalOperatorsFixer {
	return &LogicalOperatorsFixer{
		BaseFixer: fixer.NewBaseFixer(
			"logical_operators",
			"Use && and || logical operators instead of and and or",
			0,
			true,
		),
		Configurator: fixer.NewConfigurator(fixer.NewOptionSet("logical_operators",
			fixer.Option{
				Name:        "use_keywords",
				Description: "Rewrite to and / or instead of && / ||.",
				Type:        fixer.TypeBool,
				Default:     false,
			},
		)),
	}
}

// Definition documents the fixer.
func (f *LogicalOperatorsFixer) Definition() fixer.Definition {
	return fixer.Definition{
		Summary:          f.Description(),
		Description:      "Configure `use_keywords` to rewrite in the other direction.",
		RiskyDescription: "`and` and `or` have lower precedence than assignment, `&&` and `||` do not.",
		Samples: []fixer.CodeSample{
			{Code: "<?php\n\nif ($a == \"foo\" and ($b == \"bar\" or $c == \"baz\")) {\n}\n"},
			{
				Code:    "<?php\n\nif ($a == \"foo\" && ($b == \"bar\" || $c == \"baz\")) {\n}\n",
				Options: map[string]any{"use_keywords": true},
			},
		},
	}
}

// IsCandidate checks for the operators being replaced.
func (f *LogicalOperatorsFixer) IsCandidate(s *tokens.Stream) bool {
	if f.Values().Bool("use_keywords") {
		return s.IsAnyKindFound(token.BooleanAnd, token.BooleanOr)
	}
	return s.IsAnyKindFound(token.KwAnd, token.KwOr)
}

// Fix rewrites every matching operator.
func (f *LogicalOperatorsFixer) Fix(_ *fixer.FileContext, s *tokens.Stream) error {
	if f.Values().Bool("use_keywords") {
		f.toKeywords(s)
		return nil
	}

	for _, i := range s.FindKind(token.KwAnd, token.KwOr) {
		if s.At(i).Kind == token.KwAnd {
			s.Override(i, token.BooleanAnd, "&&")
		} else {
			s.Override(i, token.BooleanOr, "||")
		}
	}
	return nil
}

// toKeywords also pads the keyword with spaces, since "$a&&$b" would
// otherwise become the identifier-like "$aand$b".
func (f *LogicalOperatorsFixer) toKeywords(s *tokens.Stream) {
	for i := 0; i < s.Len(); i++ {
		switch s.At(i).Kind {
		case token.BooleanAnd:
			s.Override(i, token.KwAnd, "and")
		case token.BooleanOr:
			s.Override(i, token.KwOr, "or")
		default:
			continue
		}
		if i+1 < s.Len() && !s.At(i+1).IsWhitespace() {
			s.InsertAt(i+1, token.New(token.Whitespace, " "))
		}
		if i > 0 && !s.At(i-1).IsWhitespace() {
			s.InsertAt(i, token.New(token.Whitespace, " "))
			i++
		}
	}
}
