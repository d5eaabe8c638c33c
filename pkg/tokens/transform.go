package tokens

import "github.com/yaklabco/gocsfix/pkg/token"

// transform reclassifies tokens whose meaning depends on their neighbours.
// It runs once per tokenization, before the kind index is built.
func transform(toks []token.Token) {
	transformNames(toks)
	transformSquareBraces(toks)
	transformTypeColons(toks)
}

func prevMeaningful(toks []token.Token, i int) int {
	for j := i - 1; j >= 0; j-- {
		if toks[j].IsMeaningful() {
			return j
		}
	}
	return -1
}

// transformNames turns keywords used as names into plain identifiers:
// $a->list, Foo::class, function print(), App\Class\Helper and the
// named argument in foo(class: 1).
func transformNames(toks []token.Token) {
	for i, tok := range toks {
		if !tok.Kind.IsKeyword() {
			continue
		}
		if isNameSegment(toks, i) || isNamedArgument(toks, i) {
			toks[i].Kind = token.String
			continue
		}
		p := prevMeaningful(toks, i)
		if p < 0 {
			continue
		}
		if toks[p].Kind == token.Ampersand {
			if pp := prevMeaningful(toks, p); pp >= 0 && toks[pp].Kind == token.KwFunction {
				p = pp
			}
		}
		switch toks[p].Kind {
		case token.ObjectOperator, token.NullsafeObjectOperator, token.DoubleColon, token.KwFunction, token.KwConst:
			toks[i].Kind = token.String
		}
	}
}

// isNameSegment reports whether the keyword at i is glued to a namespace
// separator. Qualified names never contain whitespace, so only direct
// neighbours count: "new \Foo" keeps its keyword, "App\New" does not.
func isNameSegment(toks []token.Token, i int) bool {
	return (i > 0 && toks[i-1].Kind == token.NsSeparator) ||
		(i+1 < len(toks) && toks[i+1].Kind == token.NsSeparator)
}

// isNamedArgument reports whether the keyword at i labels a named argument.
func isNamedArgument(toks []token.Token, i int) bool {
	p := prevMeaningful(toks, i)
	if p < 0 || (toks[p].Kind != token.OpenParen && toks[p].Kind != token.Comma) {
		return false
	}
	n := nextMeaningful(toks, i)
	return n >= 0 && toks[n].Kind == token.Colon
}

func nextMeaningful(toks []token.Token, i int) int {
	for j := i + 1; j < len(toks); j++ {
		if toks[j].IsMeaningful() {
			return j
		}
	}
	return -1
}

// transformSquareBraces marks "[" ... "]" pairs that form array literals.
// A "[" directly after something that can be indexed stays an index bracket.
func transformSquareBraces(toks []token.Token) {
	var stack []int // index of "[" or -1-index for index brackets
	for i, tok := range toks {
		switch tok.Kind {
		case token.OpenBracket:
			if tok.Content == "[" && !isIndexable(toks, prevMeaningful(toks, i)) {
				toks[i].Kind = token.ArraySquareBraceOpen
				stack = append(stack, i)
				continue
			}
			stack = append(stack, -1-i)
		case token.CloseBracket:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top >= 0 {
				toks[i].Kind = token.ArraySquareBraceClose
			}
		}
	}
}

func isIndexable(toks []token.Token, p int) bool {
	if p < 0 {
		return false
	}
	switch toks[p].Kind {
	case token.Variable, token.String, token.CloseParen, token.CloseBracket,
		token.ArraySquareBraceClose, token.CloseBrace, token.ConstantString, token.Heredoc:
		return true
	default:
		return false
	}
}

// transformTypeColons marks the ":" that introduces a function return type.
func transformTypeColons(toks []token.Token) {
	parens := matchParens(toks)
	for i, tok := range toks {
		if tok.Kind != token.Colon {
			continue
		}
		p := prevMeaningful(toks, i)
		if p < 0 || toks[p].Kind != token.CloseParen {
			continue
		}
		if open, ok := parens[p]; ok && isFunctionParams(toks, parens, open) {
			toks[i].Kind = token.TypeColon
		}
	}
}

// isFunctionParams reports whether the "(" at open starts the parameter list
// of a function, closure or arrow function, or the use clause of a closure.
func isFunctionParams(toks []token.Token, parens map[int]int, open int) bool {
	p := prevMeaningful(toks, open)
	if p < 0 {
		return false
	}
	switch toks[p].Kind {
	case token.KwFunction, token.KwFn:
		return true
	case token.String:
		p = prevMeaningful(toks, p)
	case token.KwUse:
		closeIdx := prevMeaningful(toks, p)
		if closeIdx < 0 || toks[closeIdx].Kind != token.CloseParen {
			return false
		}
		if inner, ok := parens[closeIdx]; ok {
			return isFunctionParams(toks, parens, inner)
		}
		return false
	}
	if p >= 0 && toks[p].Kind == token.Ampersand {
		p = prevMeaningful(toks, p)
	}
	return p >= 0 && (toks[p].Kind == token.KwFunction || toks[p].Kind == token.KwFn)
}

// matchParens maps every ")" to its "(".
func matchParens(toks []token.Token) map[int]int {
	out := make(map[int]int)
	var stack []int
	for i, tok := range toks {
		switch tok.Kind {
		case token.OpenParen:
			stack = append(stack, i)
		case token.CloseParen:
			if n := len(stack); n > 0 {
				out[i] = stack[n-1]
				stack = stack[:n-1]
			}
		}
	}
	return out
}
