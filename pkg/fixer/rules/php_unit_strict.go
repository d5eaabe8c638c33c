package rules

import (
	"fmt"
	"maps"
	"slices"

	"github.com/yaklabco/gocsfix/pkg/fixer"
	"github.com/yaklabco/gocsfix/pkg/token"
	"github.com/yaklabco/gocsfix/pkg/tokens"
)

// strictAssertions maps loose PHPUnit assertions to their strict versions.
//
//nolint:gochecknoglobals // static lookup table
var strictAssertions = map[string]string{
	"assertAttributeEquals":    "assertAttributeSame",
	"assertAttributeNotEquals": "assertAttributeNotSame",
	"assertEquals":             "assertSame",
	"assertNotEquals":          "assertNotSame",
}

// PhpUnitStrictFixer replaces $this->assertEquals( and related calls with
// their strict counterparts. It is risky because a test class may override
// the assertion methods.
type PhpUnitStrictFixer struct {
	fixer.BaseFixer
	fixer.Configurator
}

// NewPhpUnitStrictFixer creates a new php_unit_strict fixer.
func NewPhpUnitStrictFixer() *PhpUnitStrictFixer {
	names := slices.Sorted(maps.Keys(strictAssertions))
	return &PhpUnitStrictFixer{
		BaseFixer: fixer.NewBaseFixer(
			"php_unit_strict",
			"PHPUnit methods like assertSame should be used instead of assertEquals",
			0,
			true,
		),
		Configurator: fixer.NewConfigurator(fixer.NewOptionSet("php_unit_strict",
			fixer.Option{
				Name:          "assertions",
				Description:   "List of assertion methods to fix.",
				Type:          fixer.TypeStringList,
				Default:       names,
				AllowedValues: names,
			},
		)),
	}
}

// Definition documents the fixer.
func (f *PhpUnitStrictFixer) Definition() fixer.Definition {
	return fixer.Definition{
		Summary:          f.Description(),
		RiskyDescription: "Risky when any of the functions are overridden.",
		Samples: []fixer.CodeSample{
			{Code: "<?php\nfinal class MyTest extends \\PHPUnit_Framework_TestCase\n{\n    public function testSomeTest()\n    {\n        $this->assertAttributeEquals(a(), b());\n        $this->assertEquals(a(), b());\n    }\n}\n"},
			{
				Code:    "<?php\nfinal class MyTest extends \\PHPUnit_Framework_TestCase\n{\n    public function testSomeTest()\n    {\n        $this->assertEquals(a(), b());\n        $this->assertNotEquals(a(), b());\n    }\n}\n",
				Options: map[string]any{"assertions": []string{"assertEquals"}},
			},
		},
	}
}

// IsCandidate checks for identifiers and $this.
func (f *PhpUnitStrictFixer) IsCandidate(s *tokens.Stream) bool {
	return s.IsAllKindsFound(token.String, token.Variable, token.ObjectOperator)
}

// Fix renames each configured assertion call on $this.
func (f *PhpUnitStrictFixer) Fix(_ *fixer.FileContext, s *tokens.Stream) error {
	for _, before := range f.Values().Strings("assertions") {
		after, ok := strictAssertions[before]
		if !ok {
			return fmt.Errorf("no strict counterpart for %q", before)
		}
		pattern := []tokens.Match{
			tokens.Exact(token.Variable, "$this"),
			tokens.Exact(token.ObjectOperator, "->"),
			tokens.Exact(token.String, before),
			tokens.K(token.OpenParen),
		}
		for from := 0; ; {
			seq := s.FindSequence(pattern, from)
			if seq == nil {
				break
			}
			s.SetContent(seq[2], after)
			from = seq[3]
		}
	}
	return nil
}
