package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKeyword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ident string
		want  Kind
	}{
		{"and", KwAnd},
		{"AND", KwAnd},
		{"Function", KwFunction},
		{"require_once", KwRequireOnce},
		{"foo", String},
		{"assertEquals", String},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, LookupKeyword(tt.ident))
		})
	}
}

func TestToken_OverrideAndClear(t *testing.T) {
	t.Parallel()

	tok := New(KwAnd, "and")
	tok.Override(BooleanAnd, "&&")
	assert.True(t, tok.Equals(BooleanAnd, "&&"))
	assert.True(t, tok.IsMeaningful())

	tok.Clear()
	assert.True(t, tok.IsEmpty())
	assert.Empty(t, tok.Content)
	assert.False(t, tok.IsMeaningful())
}

func TestToken_Predicates(t *testing.T) {
	t.Parallel()

	assert.True(t, New(Whitespace, " ").IsWhitespace())
	assert.True(t, New(Comment, "// x").IsComment())
	assert.True(t, New(DocComment, "/** x */").IsComment())
	assert.False(t, New(DocComment, "/** x */").IsMeaningful())
	assert.True(t, New(Semicolon, ";").IsKind(Comma, Semicolon))
	assert.True(t, New(KwArray, "ARRAY").EqualsFold(KwArray, "array"))
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Whitespace", Whitespace.String())
	assert.Equal(t, "Kw(and)", KwAnd.String())
	assert.True(t, KwAnd.IsKeyword())
	assert.False(t, Semicolon.IsKeyword())
	assert.True(t, TypeColon.Valid())
	assert.False(t, Invalid.Valid())
}
