package rules

import (
	"strings"

	"github.com/yaklabco/gocsfix/pkg/fixer"
	"github.com/yaklabco/gocsfix/pkg/token"
	"github.com/yaklabco/gocsfix/pkg/tokens"
)

// NoClosingTagFixer removes the closing "?>" from files that contain only
// PHP, adding the statement terminator it implied.
type NoClosingTagFixer struct {
	fixer.BaseFixer
}

// NewNoClosingTagFixer creates a new no_closing_tag fixer.
func NewNoClosingTagFixer() *NoClosingTagFixer {
	return &NoClosingTagFixer{
		BaseFixer: fixer.NewBaseFixer(
			"no_closing_tag",
			"The closing ?> tag must be omitted from files containing only PHP",
			-30,
			false,
		),
	}
}

// Definition documents the fixer.
func (f *NoClosingTagFixer) Definition() fixer.Definition {
	return fixer.Definition{
		Summary: f.Description(),
		Samples: []fixer.CodeSample{
			{Code: "<?php\nclass Sample\n{\n}\n?>\n"},
		},
	}
}

// IsCandidate checks for a closing tag.
func (f *NoClosingTagFixer) IsCandidate(s *tokens.Stream) bool {
	return s.IsKindFound(token.CloseTag)
}

// Fix drops the closing tag of a single-block PHP file.
func (f *NoClosingTagFixer) Fix(_ *fixer.FileContext, s *tokens.Stream) error {
	if !isMonolithicPHP(s) {
		return nil
	}

	closing := s.FindKind(token.CloseTag)
	if len(closing) != 1 {
		return nil
	}
	i := closing[0]

	s.RemoveLeadingWhitespace(i)
	prev := s.PrevMeaningful(i)
	if prev >= 0 && !s.At(prev).IsKind(token.Semicolon, token.CloseBrace, token.OpenTag) {
		s.InsertAt(prev+1, token.New(token.Semicolon, ";"))
		i++
	}
	s.Clear(i)
	return nil
}

// isMonolithicPHP reports whether the file is one PHP block with no inline
// HTML, apart from a leading shebang line.
func isMonolithicPHP(s *tokens.Stream) bool {
	if s.Len() == 0 {
		return false
	}
	html := s.CountKind(token.InlineHTML)
	if html > 1 {
		return false
	}
	if html == 1 && !(s.At(0).Kind == token.InlineHTML && strings.HasPrefix(s.At(0).Content, "#!")) {
		return false
	}
	return s.CountKind(token.OpenTag)+s.CountKind(token.OpenTagWithEcho) == 1
}
