package rules

import (
	"strings"

	"github.com/yaklabco/gocsfix/pkg/fixer"
	"github.com/yaklabco/gocsfix/pkg/token"
	"github.com/yaklabco/gocsfix/pkg/tokens"
)

// structuralKinds start declarations a docblock may document.
//
//nolint:gochecknoglobals // static lookup table
var structuralKinds = []token.Kind{
	token.KwClass, token.KwInterface, token.KwTrait,
	token.KwAbstract, token.KwFinal, token.KwStatic, token.KwVar,
	token.KwPrivate, token.KwProtected, token.KwPublic,
	token.KwFunction, token.KwConst, token.KwNamespace,
	token.KwRequire, token.KwRequireOnce, token.KwInclude, token.KwIncludeOnce,
}

// PhpdocToCommentFixer demotes docblocks that do not precede a structural
// element to plain block comments. Inline @var docs on assignments, foreach
// and list() stay docblocks when they name one of the variables.
type PhpdocToCommentFixer struct {
	fixer.BaseFixer
}

// NewPhpdocToCommentFixer creates a new phpdoc_to_comment fixer.
func NewPhpdocToCommentFixer() *PhpdocToCommentFixer {
	return &PhpdocToCommentFixer{
		BaseFixer: fixer.NewBaseFixer(
			"phpdoc_to_comment",
			"Docblocks should only be used on structural elements",
			25,
			false,
		),
	}
}

// Definition documents the fixer.
func (f *PhpdocToCommentFixer) Definition() fixer.Definition {
	return fixer.Definition{
		Summary: f.Description(),
		Samples: []fixer.CodeSample{
			{Code: "<?php\n$first = true;\n\n/** This should not be a docblock */\nforeach ($connections as $key => $sqlite) {\n    $sqlite->open($path);\n}\n"},
		},
	}
}

// IsCandidate checks for docblocks.
func (f *PhpdocToCommentFixer) IsCandidate(s *tokens.Stream) bool {
	return s.IsKindFound(token.DocComment)
}

// Fix rewrites "/**" to "/*" on every misplaced docblock.
func (f *PhpdocToCommentFixer) Fix(_ *fixer.FileContext, s *tokens.Stream) error {
	for _, i := range s.FindKind(token.DocComment) {
		next := s.NextMeaningful(i)
		if next < 0 || s.At(next).Kind == token.CloseBrace {
			continue
		}

		tok := s.At(next)
		switch {
		case tok.IsKind(structuralKinds...):
			continue
		case tok.Kind == token.OpenBracket && tok.Content == "#[":
			continue
		case tok.Kind == token.KwForeach && documentsForeach(s, i):
			continue
		case tok.Kind == token.Variable && documentsAssignment(s, i):
			continue
		case tok.Kind == token.KwList && documentsList(s, i):
			continue
		}

		s.Override(i, token.Comment, "/*"+strings.TrimLeft(s.At(i).Content, "/*"))
	}
	return nil
}

// mentions reports whether the docblock at doc names the token at i.
func mentions(s *tokens.Stream, doc, i int) bool {
	return i >= 0 && strings.Contains(s.At(doc).Content, s.At(i).Content)
}

// documentsForeach accepts "foreach ($list as $value)" and
// "foreach ($list as $key => $value)" when the key or value is documented.
func documentsForeach(s *tokens.Stream, doc int) bool {
	end := s.NextOfKind(doc, token.CloseParen)
	for i := doc + 1; i < end; i++ {
		if s.At(i).Kind != token.KwAs {
			continue
		}
		key := s.NextMeaningful(i)
		if mentions(s, doc, key) {
			return true
		}
		if key < 0 {
			return false
		}
		if arrow := s.NextMeaningful(key); arrow >= 0 && s.At(arrow).Kind == token.DoubleArrow {
			if mentions(s, doc, s.NextMeaningful(arrow)) {
				return true
			}
		}
	}
	return false
}

// documentsAssignment accepts "$var = ..." when $var is documented.
func documentsAssignment(s *tokens.Stream, doc int) bool {
	variable := s.NextMeaningful(doc)
	next := s.NextMeaningful(variable)
	if next < 0 || s.At(next).Kind != token.Assign {
		return false
	}
	return mentions(s, doc, variable)
}

// documentsList accepts "list($a, $b) = ..." when any variable is documented.
func documentsList(s *tokens.Stream, doc int) bool {
	end := s.NextOfKind(doc, token.CloseParen)
	for i := doc + 1; i < end; i++ {
		if s.At(i).Kind == token.Variable && mentions(s, doc, i) {
			return true
		}
	}
	return false
}
