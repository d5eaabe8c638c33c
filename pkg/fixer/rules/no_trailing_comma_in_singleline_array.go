package rules

import (
	"github.com/yaklabco/gocsfix/pkg/fixer"
	"github.com/yaklabco/gocsfix/pkg/token"
	"github.com/yaklabco/gocsfix/pkg/tokens"
)

// NoTrailingCommaInSinglelineArrayFixer removes the trailing comma of array
// literals that fit on one line. Multi-line arrays keep theirs.
type NoTrailingCommaInSinglelineArrayFixer struct {
	fixer.BaseFixer
}

// NewNoTrailingCommaInSinglelineArrayFixer creates a new
// no_trailing_comma_in_singleline_array fixer.
func NewNoTrailingCommaInSinglelineArrayFixer() *NoTrailingCommaInSinglelineArrayFixer {
	return &NoTrailingCommaInSinglelineArrayFixer{
		BaseFixer: fixer.NewBaseFixer(
			"no_trailing_comma_in_singleline_array",
			"PHP single-line arrays should not have trailing comma",
			0,
			false,
		),
	}
}

// Definition documents the fixer.
func (f *NoTrailingCommaInSinglelineArrayFixer) Definition() fixer.Definition {
	return fixer.Definition{
		Summary: f.Description(),
		Samples: []fixer.CodeSample{
			{Code: "<?php\n$a = array('sample',  );\n$b = [1, 2,];\n"},
		},
	}
}

// IsCandidate checks for array literals.
func (f *NoTrailingCommaInSinglelineArrayFixer) IsCandidate(s *tokens.Stream) bool {
	return s.IsAnyKindFound(token.KwArray, token.ArraySquareBraceOpen)
}

// Fix clears the comma and any whitespace after it.
func (f *NoTrailingCommaInSinglelineArrayFixer) Fix(_ *fixer.FileContext, s *tokens.Stream) error {
	analyzer := tokens.NewAnalyzer(s)
	for i := 0; i < s.Len(); i++ {
		if !analyzer.IsArray(i) || analyzer.IsMultiline(i) {
			continue
		}
		_, end := analyzer.ArrayBounds(i)
		before := s.PrevMeaningful(end)
		if s.At(before).Kind == token.Comma {
			s.RemoveTrailingWhitespace(before)
			s.Clear(before)
		}
	}
	return nil
}
