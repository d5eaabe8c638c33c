package tokens

import (
	"strings"

	"github.com/yaklabco/gocsfix/pkg/token"
)

// Match is one element of a FindSequence pattern.
type Match struct {
	Kind token.Kind
	// Content, when non-empty, must equal the token text.
	Content string
	// Fold compares Content case-insensitively.
	Fold bool
}

// K matches any token of kind k.
func K(k token.Kind) Match {
	return Match{Kind: k}
}

// Exact matches a token of kind k with exactly this content.
func Exact(k token.Kind, content string) Match {
	return Match{Kind: k, Content: content}
}

// Fold matches a token of kind k whose content equals content ignoring case.
func Fold(k token.Kind, content string) Match {
	return Match{Kind: k, Content: content, Fold: true}
}

func (m Match) matches(t token.Token) bool {
	if t.Kind != m.Kind {
		return false
	}
	switch {
	case m.Content == "":
		return true
	case m.Fold:
		return strings.EqualFold(t.Content, m.Content)
	default:
		return t.Content == m.Content
	}
}

// FindSequence finds the first run of meaningful tokens at or after from
// that matches pattern, ignoring whitespace and comments between elements.
// It returns the matched index of each pattern element, or nil.
//
// An empty pattern, or one naming a kind that navigation skips, panics with a
// *StructuralError.
func (s *Stream) FindSequence(pattern []Match, from int) []int {
	if len(pattern) == 0 {
		panic(&StructuralError{Op: "find sequence", Index: from, Msg: "empty pattern"})
	}
	for _, m := range pattern {
		if !token.New(m.Kind, "").IsMeaningful() || !m.Kind.Valid() {
			panic(&StructuralError{Op: "find sequence", Index: from, Msg: "pattern matches non-meaningful kind " + m.Kind.String()})
		}
	}
	if !s.IsAllKindsFound(patternKinds(pattern)...) {
		return nil
	}

	start := from
	if start < 0 {
		start = 0
	}
	for i := start; i < len(s.toks); i++ {
		if !pattern[0].matches(s.toks[i]) {
			continue
		}
		if found := s.matchFrom(pattern, i); found != nil {
			return found
		}
	}
	return nil
}

func (s *Stream) matchFrom(pattern []Match, i int) []int {
	found := make([]int, len(pattern))
	found[0] = i
	cur := i
	for p := 1; p < len(pattern); p++ {
		cur = s.NextMeaningful(cur)
		if cur < 0 || !pattern[p].matches(s.toks[cur]) {
			return nil
		}
		found[p] = cur
	}
	return found
}

func patternKinds(pattern []Match) []token.Kind {
	kinds := make([]token.Kind, len(pattern))
	for i, m := range pattern {
		kinds[i] = m.Kind
	}
	return kinds
}
