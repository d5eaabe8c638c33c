// Package tokens provides the mutable token stream that fixers rewrite and
// the stateless analyzer that answers structural questions about it.
package tokens

import (
	"strings"

	"github.com/yaklabco/gocsfix/pkg/phplex"
	"github.com/yaklabco/gocsfix/pkg/token"
)

// Stream is an ordered, index-addressed sequence of tokens for one file.
//
// Tokens are referenced by position only. Mutation goes through the Stream
// methods so the kind index, the block cache and the change flags stay
// consistent with the tokens.
type Stream struct {
	toks []token.Token
	opts phplex.Options

	// kindCount[k] is the number of tokens of kind k.
	kindCount [token.Count]int

	// blocks caches opener -> closer; nil means not computed.
	blocks map[int]int

	changed    bool
	structural bool
}

// FromText tokenizes src and applies the contextual transformers.
func FromText(src string, opts phplex.Options) (*Stream, error) {
	toks, err := phplex.Tokenize(src, opts)
	if err != nil {
		return nil, err
	}
	s := &Stream{opts: opts}
	s.reset(toks)
	return s, nil
}

// FromTokens wraps already lexed tokens. The transformers run as in FromText.
func FromTokens(toks []token.Token) *Stream {
	s := &Stream{opts: phplex.DefaultOptions()}
	s.reset(append([]token.Token(nil), toks...))
	return s
}

func (s *Stream) reset(toks []token.Token) {
	s.toks = toks
	transform(s.toks)
	s.reindex()
	s.blocks = nil
}

func (s *Stream) reindex() {
	s.kindCount = [token.Count]int{}
	for _, tok := range s.toks {
		s.kindCount[tok.Kind]++
	}
}

// Options returns the tokenizer options the stream was built with.
func (s *Stream) Options() phplex.Options {
	return s.opts
}

// Len returns the number of tokens, cleared placeholders included.
func (s *Stream) Len() int {
	return len(s.toks)
}

// At returns the token at i. It panics when i is out of range.
func (s *Stream) At(i int) token.Token {
	s.mustIndex(i)
	return s.toks[i]
}

// Tokens returns a copy of the token slice.
func (s *Stream) Tokens() []token.Token {
	return append([]token.Token(nil), s.toks...)
}

// IsKindFound reports whether any token has kind k.
func (s *Stream) IsKindFound(k token.Kind) bool {
	return s.kindCount[k] > 0
}

// IsAnyKindFound reports whether any token has one of the kinds.
func (s *Stream) IsAnyKindFound(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if s.kindCount[k] > 0 {
			return true
		}
	}
	return false
}

// IsAllKindsFound reports whether every kind has at least one token.
func (s *Stream) IsAllKindsFound(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if s.kindCount[k] == 0 {
			return false
		}
	}
	return true
}

// CountKind returns the number of tokens of kind k.
func (s *Stream) CountKind(k token.Kind) int {
	return s.kindCount[k]
}

// FindKind returns the indices of all tokens with one of the kinds, ascending.
func (s *Stream) FindKind(kinds ...token.Kind) []int {
	if !s.IsAnyKindFound(kinds...) {
		return nil
	}
	var out []int
	for i, tok := range s.toks {
		if tok.IsKind(kinds...) {
			out = append(out, i)
		}
	}
	return out
}

// GenerateCode concatenates all token contents.
func (s *Stream) GenerateCode() string {
	var sb strings.Builder
	for _, tok := range s.toks {
		sb.WriteString(tok.Content)
	}
	return sb.String()
}

// IsChanged reports whether a mutation changed the stream since the last
// ClearChanged.
func (s *Stream) IsChanged() bool {
	return s.changed
}

// NeedsRetokenize reports whether a mutation since the last ClearChanged may
// have invalidated the lexing, so the text should be tokenized again.
func (s *Stream) NeedsRetokenize() bool {
	return s.structural
}

// ClearChanged resets both change flags.
func (s *Stream) ClearChanged() {
	s.changed = false
	s.structural = false
}

// SetCode replaces the whole stream with the tokens of src.
func (s *Stream) SetCode(src string) error {
	toks, err := phplex.Tokenize(src, s.opts)
	if err != nil {
		return err
	}
	if src != s.GenerateCode() {
		s.changed = true
	}
	s.reset(toks)
	s.structural = false
	return nil
}

// Retokenize rebuilds the stream from its own generated code.
func (s *Stream) Retokenize() error {
	return s.SetCode(s.GenerateCode())
}

// ClearEmpty drops cleared placeholders, shifting indices.
func (s *Stream) ClearEmpty() {
	if s.kindCount[token.Removed] == 0 {
		return
	}
	out := s.toks[:0]
	for _, tok := range s.toks {
		if !tok.IsEmpty() {
			out = append(out, tok)
		}
	}
	clear(s.toks[len(out):])
	s.toks = out
	s.kindCount[token.Removed] = 0
	s.blocks = nil
}

func (s *Stream) mustIndex(i int) {
	if i < 0 || i >= len(s.toks) {
		panic(&StructuralError{Op: "index", Index: i, Msg: "out of range"})
	}
}
