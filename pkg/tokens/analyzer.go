package tokens

import "github.com/yaklabco/gocsfix/pkg/token"

// ElementKind classifies a class member.
type ElementKind uint8

const (
	// ElementProperty is a property declaration; Index points at the variable.
	ElementProperty ElementKind = iota + 1
	// ElementMethod is a method; Index points at the "function" keyword.
	ElementMethod
	// ElementConst is a class constant; Index points at the "const" keyword.
	ElementConst
)

func (k ElementKind) String() string {
	switch k {
	case ElementProperty:
		return "property"
	case ElementMethod:
		return "method"
	case ElementConst:
		return "const"
	default:
		return "unknown"
	}
}

// ClassElement is one member found by Analyzer.ClassyElements.
type ClassElement struct {
	Kind  ElementKind
	Index int
}

// Analyzer answers structural questions about a stream. It holds no state
// besides the stream, so results are always current.
type Analyzer struct {
	s *Stream
}

// NewAnalyzer returns an analyzer over s.
func NewAnalyzer(s *Stream) Analyzer {
	return Analyzer{s: s}
}

// IsArray reports whether the token at i starts an array literal: the
// "array" keyword followed by "(", or a short-array "[".
func (a Analyzer) IsArray(i int) bool {
	tok := a.s.At(i)
	switch tok.Kind {
	case token.ArraySquareBraceOpen:
		return true
	case token.KwArray:
		next := a.s.NextMeaningful(i)
		return next >= 0 && a.s.At(next).Kind == token.OpenParen
	default:
		return false
	}
}

// ArrayBounds returns the opening and closing delimiter indices of the array
// starting at i. It panics if IsArray(i) is false.
func (a Analyzer) ArrayBounds(i int) (open, end int) {
	if !a.IsArray(i) {
		panic(&StructuralError{Op: "array bounds", Index: i, Msg: "not an array"})
	}
	if a.s.At(i).Kind == token.ArraySquareBraceOpen {
		return i, a.s.FindBlockEnd(BlockArraySquareBrace, i)
	}
	open = a.s.NextMeaningful(i)
	return open, a.s.FindBlockEnd(BlockParenthesis, open)
}

// IsMultiline reports whether the block starting at i spans more than one
// line. i may be an array start (keyword or "[") or any block opener.
func (a Analyzer) IsMultiline(i int) bool {
	var open, end int
	if a.IsArray(i) {
		open, end = a.ArrayBounds(i)
	} else {
		bt, opener, ok := BlockTypeOf(a.s.At(i))
		if !ok || !opener {
			panic(&StructuralError{Op: "is multiline", Index: i, Msg: "not a block opener"})
		}
		open, end = i, a.s.FindBlockEnd(bt, i)
	}
	return a.s.LineBreakBetween(open, end)
}

// Classes returns the indices of class, interface and trait keywords that
// declare a body.
func (a Analyzer) Classes() []int {
	var out []int
	for _, i := range a.s.FindKind(token.KwClass, token.KwInterface, token.KwTrait) {
		if a.classBodyOpen(i) >= 0 {
			out = append(out, i)
		}
	}
	return out
}

// ClassBody returns the braces enclosing the body of the class declared at i.
func (a Analyzer) ClassBody(i int) (open, end int) {
	open = a.classBodyOpen(i)
	if open < 0 {
		panic(&StructuralError{Op: "class body", Index: i, Msg: "no body"})
	}
	return open, a.s.FindBlockEnd(BlockCurlyBrace, open)
}

// classBodyOpen returns the "{" that ends the header of the declaration at
// i, or -1 when i does not start one. A header is a name, or the
// constructor arguments of an anonymous class, followed by optional
// extends and implements lists.
func (a Analyzer) classBodyOpen(i int) int {
	j := a.s.NextMeaningful(i)
	if j < 0 {
		return -1
	}
	switch a.s.At(j).Kind {
	case token.String:
		j = a.s.NextMeaningful(j)
	case token.OpenParen, token.OpenBrace:
		p := a.s.PrevMeaningful(i)
		if a.s.At(i).Kind != token.KwClass || p < 0 || a.s.At(p).Kind != token.KwNew {
			return -1
		}
		if a.s.At(j).Kind == token.OpenParen {
			j = a.s.NextMeaningful(a.s.FindBlockEnd(BlockParenthesis, j))
		}
	default:
		return -1
	}
	for ; j >= 0; j = a.s.NextMeaningful(j) {
		switch a.s.At(j).Kind {
		case token.OpenBrace:
			return j
		case token.KwExtends, token.KwImplements, token.String, token.NsSeparator, token.Comma:
		default:
			return -1
		}
	}
	return -1
}

// ClassyElements lists the members declared directly between the braces at
// start and end. Method bodies, nested blocks and trait use statements are
// skipped.
func (a Analyzer) ClassyElements(start, end int) []ClassElement {
	var out []ClassElement
	for i := start + 1; i < end; i++ {
		tok := a.s.At(i)
		switch tok.Kind {
		case token.KwFunction:
			out = append(out, ClassElement{Kind: ElementMethod, Index: i})
			i = a.skipMethod(i, end)
		case token.KwConst:
			out = append(out, ClassElement{Kind: ElementConst, Index: i})
			i = a.skipStatement(i, end)
		case token.Variable:
			out = append(out, ClassElement{Kind: ElementProperty, Index: i})
		case token.KwUse:
			i = a.skipUse(i, end)
		case token.KwCase:
			i = a.skipStatement(i, end)
		case token.OpenParen, token.OpenBrace, token.ArraySquareBraceOpen, token.OpenBracket:
			i = a.skipBlock(i)
		}
	}
	return out
}

// skipMethod returns the index of the method's closing brace or semicolon.
func (a Analyzer) skipMethod(i, end int) int {
	for j := i + 1; j < end; j++ {
		switch a.s.At(j).Kind {
		case token.OpenBrace:
			return a.s.FindBlockEnd(BlockCurlyBrace, j)
		case token.Semicolon:
			return j
		case token.OpenParen, token.ArraySquareBraceOpen, token.OpenBracket:
			j = a.skipBlock(j)
		}
	}
	return end
}

// skipStatement returns the index of the terminating semicolon, skipping
// nested blocks.
func (a Analyzer) skipStatement(i, end int) int {
	for j := i + 1; j < end; j++ {
		switch a.s.At(j).Kind {
		case token.Semicolon:
			return j
		case token.OpenParen, token.OpenBrace, token.ArraySquareBraceOpen, token.OpenBracket:
			j = a.skipBlock(j)
		}
	}
	return end
}

// skipUse handles both "use A;" and "use A { b as c; }".
func (a Analyzer) skipUse(i, end int) int {
	for j := i + 1; j < end; j++ {
		switch a.s.At(j).Kind {
		case token.Semicolon:
			return j
		case token.OpenBrace:
			return a.s.FindBlockEnd(BlockCurlyBrace, j)
		}
	}
	return end
}

func (a Analyzer) skipBlock(i int) int {
	bt, _, _ := BlockTypeOf(a.s.At(i))
	return a.s.FindBlockEnd(bt, i)
}
