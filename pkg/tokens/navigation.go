package tokens

import "github.com/yaklabco/gocsfix/pkg/token"

// NextMeaningful returns the index of the first meaningful token after i,
// or -1. Whitespace, comments and cleared tokens are skipped.
func (s *Stream) NextMeaningful(i int) int {
	return s.scan(i, 1, token.Token.IsMeaningful)
}

// PrevMeaningful is the backward counterpart of NextMeaningful.
func (s *Stream) PrevMeaningful(i int) int {
	return s.scan(i, -1, token.Token.IsMeaningful)
}

// NextNonWhitespace returns the next token that is neither whitespace nor
// cleared, or -1. Comments are returned.
func (s *Stream) NextNonWhitespace(i int) int {
	return s.scan(i, 1, notBlank)
}

// PrevNonWhitespace is the backward counterpart of NextNonWhitespace.
func (s *Stream) PrevNonWhitespace(i int) int {
	return s.scan(i, -1, notBlank)
}

// NextOfKind returns the first index after from holding one of the kinds,
// or -1.
func (s *Stream) NextOfKind(from int, kinds ...token.Kind) int {
	return s.scan(from, 1, func(t token.Token) bool { return t.IsKind(kinds...) })
}

// PrevOfKind returns the last index before from holding one of the kinds,
// or -1.
func (s *Stream) PrevOfKind(from int, kinds ...token.Kind) int {
	return s.scan(from, -1, func(t token.Token) bool { return t.IsKind(kinds...) })
}

func notBlank(t token.Token) bool {
	return !t.IsWhitespace() && !t.IsEmpty()
}

// scan walks from i (exclusive) in direction dir until match holds.
// i may be -1 or Len() to start from either end.
func (s *Stream) scan(i, dir int, match func(token.Token) bool) int {
	if i < -1 || i > len(s.toks) {
		panic(&StructuralError{Op: "scan", Index: i, Msg: "out of range"})
	}
	for j := i + dir; j >= 0 && j < len(s.toks); j += dir {
		if match(s.toks[j]) {
			return j
		}
	}
	return -1
}
