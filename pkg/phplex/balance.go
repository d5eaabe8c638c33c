package phplex

import "github.com/yaklabco/gocsfix/pkg/token"

//nolint:gochecknoglobals // static lookup table
var closers = map[token.Kind]token.Kind{
	token.OpenParen:   token.CloseParen,
	token.OpenBracket: token.CloseBracket,
	token.OpenBrace:   token.CloseBrace,
}

// checkBalance rejects token sequences whose brackets do not pair up.
func checkBalance(src string, toks []token.Token) error {
	type open struct {
		kind token.Kind
		off  int
	}

	var (
		stack []open
		off   int
	)
	for _, tok := range toks {
		switch tok.Kind {
		case token.OpenParen, token.OpenBracket, token.OpenBrace:
			stack = append(stack, open{kind: tok.Kind, off: off})
		case token.CloseParen, token.CloseBracket, token.CloseBrace:
			if len(stack) == 0 {
				return newError(src, off, "unmatched "+tok.Content)
			}
			top := stack[len(stack)-1]
			if closers[top.kind] != tok.Kind {
				return newError(src, off, "mismatched "+tok.Content)
			}
			stack = stack[:len(stack)-1]
		}
		off += len(tok.Content)
	}
	if len(stack) > 0 {
		return newError(src, stack[len(stack)-1].off, "unclosed bracket")
	}
	return nil
}
