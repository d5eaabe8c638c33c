package rules

import "github.com/yaklabco/gocsfix/pkg/fixer"

// RegisterAll registers all built-in fixers with the given registry.
func RegisterAll(registry *fixer.Registry) {
	// Operators
	registry.Register(func() fixer.Fixer { return NewLogicalOperatorsFixer() })

	// Arrays
	registry.Register(func() fixer.Fixer { return NewNoTrailingCommaInSinglelineArrayFixer() })

	// Whitespace and tags
	registry.Register(func() fixer.Fixer { return NewNoWhitespaceInBlankLineFixer() })
	registry.Register(func() fixer.Fixer { return NewNoClosingTagFixer() })

	// PHPDoc
	registry.Register(func() fixer.Fixer { return NewPhpdocToCommentFixer() })
	registry.Register(func() fixer.Fixer { return NewPhpdocNoAliasTagFixer() })

	// Functions and classes
	registry.Register(func() fixer.Fixer { return NewReturnTypeDeclarationFixer() })
	registry.Register(func() fixer.Fixer { return NewVisibilityRequiredFixer() })

	// PHPUnit
	registry.Register(func() fixer.Fixer { return NewPhpUnitStrictFixer() })

	// Names used by older configuration files.
	registry.RegisterAlias("single_array_no_trailing_comma", "no_trailing_comma_in_singleline_array")
	registry.RegisterAlias("whitespacy_lines", "no_whitespace_in_blank_line")
	registry.RegisterAlias("php_closing_tag", "no_closing_tag")
	registry.RegisterAlias("phpdoc_type_to_var", "phpdoc_no_alias_tag")
}

//nolint:gochecknoinits // Registration at init is intentional
func init() {
	RegisterAll(fixer.DefaultRegistry)
}
