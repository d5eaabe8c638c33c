package token

import "strings"

// Token is a single lexical unit: a kind and the exact source text it covers.
type Token struct {
	Kind    Kind
	Content string
}

// New returns a token of the given kind and content.
func New(kind Kind, content string) Token {
	return Token{Kind: kind, Content: content}
}

// IsKind reports whether the token has any of the given kinds.
func (t Token) IsKind(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// IsWhitespace reports whether the token is a whitespace run.
func (t Token) IsWhitespace() bool {
	return t.Kind == Whitespace
}

// IsComment reports whether the token is a comment or doc comment.
func (t Token) IsComment() bool {
	return t.Kind == Comment || t.Kind == DocComment
}

// IsEmpty reports whether the token was cleared.
func (t Token) IsEmpty() bool {
	return t.Kind == Removed
}

// IsMeaningful reports whether navigation helpers stop on this token.
// Whitespace, comments and cleared tokens are transparent.
func (t Token) IsMeaningful() bool {
	switch t.Kind {
	case Whitespace, Comment, DocComment, Removed:
		return false
	default:
		return true
	}
}

// Equals reports whether the token has the given kind and content.
func (t Token) Equals(kind Kind, content string) bool {
	return t.Kind == kind && t.Content == content
}

// EqualsFold is Equals with case-insensitive content comparison.
func (t Token) EqualsFold(kind Kind, content string) bool {
	return t.Kind == kind && strings.EqualFold(t.Content, content)
}

// Override replaces kind and content in one step.
func (t *Token) Override(kind Kind, content string) {
	t.Kind = kind
	t.Content = content
}

// Clear turns the token into a zero-width placeholder.
func (t *Token) Clear() {
	t.Kind = Removed
	t.Content = ""
}

// String renders the token for debugging.
func (t Token) String() string {
	return t.Kind.String() + "(" + t.Content + ")"
}
