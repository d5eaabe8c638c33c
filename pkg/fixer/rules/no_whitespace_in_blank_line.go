package rules

import (
	"strings"

	"github.com/yaklabco/gocsfix/pkg/fixer"
	"github.com/yaklabco/gocsfix/pkg/token"
	"github.com/yaklabco/gocsfix/pkg/tokens"
)

// NoWhitespaceInBlankLineFixer strips spaces and tabs from lines that hold
// nothing else. Only whitespace tokens are edited, so string literals,
// heredocs and inline HTML are never touched.
type NoWhitespaceInBlankLineFixer struct {
	fixer.BaseFixer
}

// NewNoWhitespaceInBlankLineFixer creates a new no_whitespace_in_blank_line fixer.
func NewNoWhitespaceInBlankLineFixer() *NoWhitespaceInBlankLineFixer {
	return &NoWhitespaceInBlankLineFixer{
		BaseFixer: fixer.NewBaseFixer(
			"no_whitespace_in_blank_line",
			"Remove trailing whitespace at the end of blank lines",
			-19,
			false,
		),
	}
}

// Definition documents the fixer.
func (f *NoWhitespaceInBlankLineFixer) Definition() fixer.Definition {
	return fixer.Definition{
		Summary: f.Description(),
		Samples: []fixer.CodeSample{
			{Code: "<?php\n   \n$a = 1;\n"},
		},
	}
}

// IsCandidate checks for whitespace.
func (f *NoWhitespaceInBlankLineFixer) IsCandidate(s *tokens.Stream) bool {
	return s.IsKindFound(token.Whitespace)
}

// Fix rewrites each whitespace token line by line.
func (f *NoWhitespaceInBlankLineFixer) Fix(_ *fixer.FileContext, s *tokens.Stream) error {
	for _, i := range s.FindKind(token.Whitespace) {
		startsLine := i > 0 && strings.HasSuffix(s.At(i-1).Content, "\n")
		endsLine := i == s.Len()-1 || strings.HasPrefix(s.At(i+1).Content, "\n") ||
			strings.HasPrefix(s.At(i+1).Content, "\r\n")

		lines := strings.Split(s.At(i).Content, "\n")
		last := len(lines) - 1
		for n, line := range lines {
			if (n == 0 && !startsLine) || (n == last && !endsLine) {
				continue
			}
			lines[n] = blankLine(line)
		}
		s.SetContent(i, strings.Join(lines, "\n"))
	}
	return nil
}

// blankLine empties a line of horizontal whitespace, keeping a CR that
// belongs to a CRLF terminator.
func blankLine(line string) string {
	if strings.HasSuffix(line, "\r") {
		return blankLine(line[:len(line)-1]) + "\r"
	}
	if strings.Trim(line, " \t\v\f") == "" {
		return ""
	}
	return line
}
