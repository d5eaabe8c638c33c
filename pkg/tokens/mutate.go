package tokens

import (
	"strings"

	"github.com/yaklabco/gocsfix/pkg/token"
)

// Set replaces the token at i.
func (s *Stream) Set(i int, tok token.Token) {
	s.Override(i, tok.Kind, tok.Content)
}

// Override replaces kind and content of the token at i.
func (s *Stream) Override(i int, kind token.Kind, content string) {
	s.mustIndex(i)
	old := s.toks[i]
	if old.Kind == kind && old.Content == content {
		return
	}
	s.kindCount[old.Kind]--
	s.kindCount[kind]++
	s.toks[i].Override(kind, content)
	s.changed = true
	if old.Kind != kind {
		s.structural = true
		if isBlockKind(old.Kind) || isBlockKind(kind) {
			s.blocks = nil
		}
	}
}

// SetContent changes the text of the token at i and keeps its kind.
func (s *Stream) SetContent(i int, content string) {
	s.mustIndex(i)
	s.Override(i, s.toks[i].Kind, content)
}

// Clear turns the token at i into a zero-width placeholder. Indices of other
// tokens do not move.
func (s *Stream) Clear(i int) {
	s.mustIndex(i)
	if s.toks[i].IsEmpty() {
		return
	}
	s.Override(i, token.Removed, "")
}

// InsertAt inserts toks before index i. Inserting at Len() appends.
func (s *Stream) InsertAt(i int, toks ...token.Token) {
	if i < 0 || i > len(s.toks) {
		panic(&StructuralError{Op: "insert", Index: i, Msg: "out of range"})
	}
	if len(toks) == 0 {
		return
	}
	s.toks = append(s.toks[:i], append(append([]token.Token(nil), toks...), s.toks[i:]...)...)
	for _, tok := range toks {
		s.kindCount[tok.Kind]++
	}
	s.blocks = nil
	s.changed = true
	s.structural = true
}

// RemoveTrailingWhitespace clears the whitespace token directly after i.
func (s *Stream) RemoveTrailingWhitespace(i int) {
	s.mustIndex(i)
	if j := i + 1; j < len(s.toks) && s.toks[j].IsWhitespace() {
		s.Clear(j)
	}
}

// RemoveLeadingWhitespace clears the whitespace token directly before i.
func (s *Stream) RemoveLeadingWhitespace(i int) {
	s.mustIndex(i)
	if j := i - 1; j >= 0 && s.toks[j].IsWhitespace() {
		s.Clear(j)
	}
}

// EnsureWhitespaceAt makes the token at i+offset (offset is 0 or 1) the
// whitespace ws. An existing whitespace token is rewritten; otherwise a new
// one is inserted at i+offset. It reports whether a token was inserted.
func (s *Stream) EnsureWhitespaceAt(i, offset int, ws string) bool {
	s.mustIndex(i)
	j := i + offset
	if j < len(s.toks) && s.toks[j].IsWhitespace() {
		s.SetContent(j, ws)
		return false
	}
	if offset == 0 {
		// i itself is not whitespace: insert in front of it.
		s.InsertAt(i, token.New(token.Whitespace, ws))
		return true
	}
	s.InsertAt(j, token.New(token.Whitespace, ws))
	return true
}

// LineBreakBetween reports whether any token in (from, to) contains a line break.
func (s *Stream) LineBreakBetween(from, to int) bool {
	for j := max(from+1, 0); j < to && j < len(s.toks); j++ {
		if strings.ContainsAny(s.toks[j].Content, "\r\n") {
			return true
		}
	}
	return false
}
