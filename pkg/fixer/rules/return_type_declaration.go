package rules

import (
	"github.com/yaklabco/gocsfix/pkg/fixer"
	"github.com/yaklabco/gocsfix/pkg/token"
	"github.com/yaklabco/gocsfix/pkg/tokens"
)

const (
	spaceOne  = "one"
	spaceNone = "none"
)

// ReturnTypeDeclarationFixer puts one or no space before the colon of a
// return type declaration and exactly one space after it.
type ReturnTypeDeclarationFixer struct {
	fixer.BaseFixer
	fixer.Configurator
}

// NewReturnTypeDeclarationFixer creates a new return_type_declaration fixer.
func NewReturnTypeDeclarationFixer() *ReturnTypeDeclarationFixer {
	return &ReturnTypeDeclarationFixer{
		BaseFixer: fixer.NewBaseFixer(
			"return_type_declaration",
			"There should be one or no space before colon, and one space after it in return type declarations",
			0,
			false,
		),
		Configurator: fixer.NewConfigurator(fixer.NewOptionSet("return_type_declaration",
			fixer.Option{
				Name:          "space_before",
				Description:   "Spacing to apply before colon.",
				Type:          fixer.TypeString,
				Default:       spaceNone,
				AllowedValues: []string{spaceOne, spaceNone},
			},
		)),
	}
}

// Definition documents the fixer.
func (f *ReturnTypeDeclarationFixer) Definition() fixer.Definition {
	return fixer.Definition{
		Summary: f.Description(),
		Samples: []fixer.CodeSample{
			{Code: "<?php\nfunction foo(int $a):string {};\n"},
			{Code: "<?php\nfunction foo(int $a):string {};\n", Options: map[string]any{"space_before": spaceOne}},
		},
	}
}

// IsCandidate checks for return type colons.
func (f *ReturnTypeDeclarationFixer) IsCandidate(s *tokens.Stream) bool {
	return s.IsKindFound(token.TypeColon)
}

// Fix normalizes the spacing around every return type colon.
func (f *ReturnTypeDeclarationFixer) Fix(_ *fixer.FileContext, s *tokens.Stream) error {
	oneBefore := f.Values().String("space_before") == spaceOne

	for i := 0; i < s.Len(); i++ {
		if s.At(i).Kind != token.TypeColon {
			continue
		}

		switch {
		case i > 0 && s.At(i-1).IsWhitespace():
			if oneBefore {
				s.SetContent(i-1, " ")
			} else {
				s.Clear(i - 1)
			}
		case oneBefore:
			if s.EnsureWhitespaceAt(i, 0, " ") {
				i++
			}
		}

		s.EnsureWhitespaceAt(i, 1, " ")
	}
	return nil
}
