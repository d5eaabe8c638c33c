package rules

import (
	"slices"

	"github.com/yaklabco/gocsfix/pkg/fixer"
	"github.com/yaklabco/gocsfix/pkg/token"
	"github.com/yaklabco/gocsfix/pkg/tokens"
)

const (
	elementProperty = "property"
	elementMethod   = "method"
	elementConst    = "const"
)

// VisibilityRequiredFixer adds "public" to class members declared without
// a visibility and replaces "var" on properties.
type VisibilityRequiredFixer struct {
	fixer.BaseFixer
	fixer.Configurator
}

// NewVisibilityRequiredFixer creates a new visibility_required fixer.
func NewVisibilityRequiredFixer() *VisibilityRequiredFixer {
	return &VisibilityRequiredFixer{
		BaseFixer: fixer.NewBaseFixer(
			"visibility_required",
			"Visibility must be declared on all properties and methods",
			56,
			false,
		),
		Configurator: fixer.NewConfigurator(fixer.NewOptionSet("visibility_required",
			fixer.Option{
				Name:          "elements",
				Description:   "The structural elements to fix. Constant visibility needs PHP 7.1.",
				Type:          fixer.TypeStringList,
				Default:       []string{elementProperty, elementMethod},
				AllowedValues: []string{elementProperty, elementMethod, elementConst},
			},
		)),
	}
}

// Definition documents the fixer.
func (f *VisibilityRequiredFixer) Definition() fixer.Definition {
	return fixer.Definition{
		Summary: f.Description(),
		Samples: []fixer.CodeSample{
			{Code: "<?php\nclass Sample\n{\n    var $a;\n    static $b;\n    function c() {}\n}\n"},
			{
				Code:    "<?php\nclass Sample\n{\n    const SAMPLE = 1;\n}\n",
				Options: map[string]any{"elements": []string{elementConst}},
			},
		},
	}
}

// IsCandidate checks for class-like declarations.
func (f *VisibilityRequiredFixer) IsCandidate(s *tokens.Stream) bool {
	return s.IsAnyKindFound(token.KwClass, token.KwTrait, token.KwInterface)
}

// Fix walks classes and members from last to first so insertions never
// move an index that is still to be visited.
func (f *VisibilityRequiredFixer) Fix(_ *fixer.FileContext, s *tokens.Stream) error {
	elements := f.Values().Strings("elements")
	analyzer := tokens.NewAnalyzer(s)

	classes := analyzer.Classes()
	for c := len(classes) - 1; c >= 0; c-- {
		open, end := analyzer.ClassBody(classes[c])
		members := analyzer.ClassyElements(open, end)
		for m := len(members) - 1; m >= 0; m-- {
			el := members[m]
			if !slices.Contains(elements, elementName(el.Kind)) {
				continue
			}
			fixMember(s, el)
		}
	}
	return nil
}

func elementName(k tokens.ElementKind) string {
	switch k {
	case tokens.ElementProperty:
		return elementProperty
	case tokens.ElementMethod:
		return elementMethod
	default:
		return elementConst
	}
}

// propertyTypeKinds may appear between a property's modifiers and its name.
//
//nolint:gochecknoglobals // static lookup table
var propertyTypeKinds = []token.Kind{
	token.String, token.NsSeparator, token.Question, token.KwArray, token.Operator,
}

func fixMember(s *tokens.Stream, el tokens.ClassElement) {
	start := el.Index
	prev := s.PrevMeaningful(start)
	if el.Kind == tokens.ElementProperty {
		for prev >= 0 && s.At(prev).IsKind(propertyTypeKinds...) {
			start = prev
			prev = s.PrevMeaningful(prev)
		}
		// "$b" in "public $a, $b;" shares the first declaration's modifiers.
		if prev >= 0 && s.At(prev).Kind == token.Comma {
			return
		}
	}

	insertAt := start
	for ; prev >= 0; prev = s.PrevMeaningful(prev) {
		tok := s.At(prev)
		switch tok.Kind {
		case token.KwPublic, token.KwProtected, token.KwPrivate:
			return
		case token.KwVar:
			s.Override(prev, token.KwPublic, "public")
			return
		case token.KwStatic:
			insertAt = prev
		case token.KwAbstract, token.KwFinal:
		default:
			s.InsertAt(insertAt, token.New(token.KwPublic, "public"), token.New(token.Whitespace, " "))
			return
		}
	}
	s.InsertAt(insertAt, token.New(token.KwPublic, "public"), token.New(token.Whitespace, " "))
}
