// Package phplex splits PHP source into tokens.
//
// The lexer is deliberately shallow: it recognizes tags, trivia, literals,
// identifiers, keywords and operators, and checks that brackets balance.
// Every byte of the input ends up in exactly one token, so concatenating the
// token contents reproduces the source.
package phplex

import (
	"strings"

	"github.com/yaklabco/gocsfix/pkg/token"
)

// Lexer holds the scanning state for one source text.
type Lexer struct {
	src   string
	off   int
	opts  Options
	inPHP bool
	toks  []token.Token
}

// Tokenize splits src into tokens.
func Tokenize(src string, opts Options) ([]token.Token, error) {
	lx := &Lexer{src: src, opts: opts}
	if err := lx.run(); err != nil {
		return nil, err
	}
	if err := checkBalance(src, lx.toks); err != nil {
		return nil, err
	}
	return lx.toks, nil
}

func (lx *Lexer) run() error {
	for !lx.eof() {
		if !lx.inPHP {
			lx.scanInlineHTML()
			continue
		}
		if err := lx.scanPHP(); err != nil {
			return err
		}
	}
	return nil
}

func (lx *Lexer) eof() bool {
	return lx.off >= len(lx.src)
}

func (lx *Lexer) peek(n int) byte {
	if lx.off+n >= len(lx.src) {
		return 0
	}
	return lx.src[lx.off+n]
}

func (lx *Lexer) hasPrefix(p string) bool {
	return strings.HasPrefix(lx.src[lx.off:], p)
}

func (lx *Lexer) emit(kind token.Kind, start int) {
	lx.toks = append(lx.toks, token.New(kind, lx.src[start:lx.off]))
}

func (lx *Lexer) fail(off int, msg string) error {
	return newError(lx.src, off, msg)
}

// scanInlineHTML consumes text up to the next open tag and the tag itself.
func (lx *Lexer) scanInlineHTML() {
	start := lx.off
	for !lx.eof() {
		if lx.peek(0) == '<' && lx.peek(1) == '?' {
			if n, kind := lx.openTagAt(); n > 0 {
				if lx.off > start {
					lx.emit(token.InlineHTML, start)
				}
				tagStart := lx.off
				lx.off += n
				lx.emit(kind, tagStart)
				lx.inPHP = true
				return
			}
		}
		lx.off++
	}
	lx.emit(token.InlineHTML, start)
}

// openTagAt returns the length and kind of an open tag at the cursor, or 0.
func (lx *Lexer) openTagAt() (int, token.Kind) {
	rest := lx.src[lx.off:]
	switch {
	case strings.HasPrefix(rest, "<?="):
		return 3, token.OpenTagWithEcho
	case len(rest) >= 5 && strings.EqualFold(rest[:5], "<?php"):
		if len(rest) == 5 {
			return 5, token.OpenTag
		}
		switch rest[5] {
		case ' ', '\t', '\n':
			return 6, token.OpenTag
		case '\r':
			if len(rest) > 6 && rest[6] == '\n' {
				return 7, token.OpenTag
			}
			return 6, token.OpenTag
		}
	}
	if lx.opts.ShortOpenTag {
		return 2, token.OpenTag
	}
	return 0, token.Invalid
}

func (lx *Lexer) scanPHP() error {
	start := lx.off
	ch := lx.peek(0)

	switch {
	case ch == '?' && lx.peek(1) == '>':
		lx.off += 2
		if lx.hasPrefix("\r\n") {
			lx.off += 2
		} else if lx.peek(0) == '\n' {
			lx.off++
		}
		lx.emit(token.CloseTag, start)
		lx.inPHP = false
		return nil
	case isSpace(ch):
		for !lx.eof() && isSpace(lx.peek(0)) {
			lx.off++
		}
		lx.emit(token.Whitespace, start)
		return nil
	case ch == '#' && lx.peek(1) == '[':
		lx.off += 2
		lx.emit(token.OpenBracket, start)
		return nil
	case ch == '#' || (ch == '/' && lx.peek(1) == '/'):
		lx.scanLineComment()
		return nil
	case ch == '/' && lx.peek(1) == '*':
		return lx.scanBlockComment()
	case ch == '$' && isIdentStart(lx.peek(1)):
		lx.off++
		lx.scanIdentBytes()
		lx.emit(token.Variable, start)
		return nil
	case isIdentStart(ch):
		lx.scanIdentBytes()
		word := lx.src[start:lx.off]
		lx.toks = append(lx.toks, token.New(token.LookupKeyword(word), word))
		if strings.EqualFold(word, haltCompiler) {
			return lx.scanHaltCompiler()
		}
		return nil
	case isDigit(ch) || (ch == '.' && isDigit(lx.peek(1))):
		lx.scanNumber()
		return nil
	case ch == '\'' || ch == '"' || ch == '`':
		return lx.scanQuoted(ch)
	case ch == '<' && lx.hasPrefix("<<<"):
		return lx.scanHeredoc()
	case ch == '\\':
		lx.off++
		lx.emit(token.NsSeparator, start)
		return nil
	}

	return lx.scanOperator()
}

const haltCompiler = "__halt_compiler"

// scanHaltCompiler handles the rest of a "__halt_compiler();" statement.
// Once "(", ")" and ";" or a close tag follow, everything after is raw data
// and becomes one InlineHTML token. Any other token ends the special case
// and lexing goes on as usual.
func (lx *Lexer) scanHaltCompiler() error {
	want := []token.Kind{token.OpenParen, token.CloseParen}
	for !lx.eof() {
		n := len(lx.toks)
		if err := lx.scanPHP(); err != nil {
			return err
		}
		if len(lx.toks) == n {
			return nil
		}
		kind := lx.toks[len(lx.toks)-1].Kind
		switch {
		case kind == token.Whitespace || kind == token.Comment || kind == token.DocComment:
			continue
		case len(want) > 0:
			if kind != want[0] {
				return nil
			}
			want = want[1:]
			continue
		case kind != token.Semicolon && kind != token.CloseTag:
			return nil
		}

		if !lx.eof() {
			start := lx.off
			lx.off = len(lx.src)
			lx.emit(token.InlineHTML, start)
		}
		return nil
	}
	return nil
}

func (lx *Lexer) scanIdentBytes() {
	for !lx.eof() && isIdentContinue(lx.peek(0)) {
		lx.off++
	}
}

// scanLineComment stops before a line break or a close tag.
func (lx *Lexer) scanLineComment() {
	start := lx.off
	for !lx.eof() {
		ch := lx.peek(0)
		if ch == '\n' || ch == '\r' || (ch == '?' && lx.peek(1) == '>') {
			break
		}
		lx.off++
	}
	lx.emit(token.Comment, start)
}

func (lx *Lexer) scanBlockComment() error {
	start := lx.off
	end := strings.Index(lx.src[start+2:], "*/")
	if end < 0 {
		return lx.fail(start, "unterminated comment")
	}
	lx.off = start + 2 + end + 2

	kind := token.Comment
	body := lx.src[start:lx.off]
	if len(body) > 4 && body[2] == '*' && isSpace(body[3]) {
		kind = token.DocComment
	}
	lx.emit(kind, start)
	return nil
}

func (lx *Lexer) scanNumber() {
	start := lx.off
	if lx.peek(0) == '0' && (lx.peek(1)|0x20 == 'x' || lx.peek(1)|0x20 == 'b' || lx.peek(1)|0x20 == 'o') {
		lx.off += 2
		for !lx.eof() && (isHex(lx.peek(0)) || lx.peek(0) == '_') {
			lx.off++
		}
		lx.emit(token.Number, start)
		return
	}
	lx.digits()
	if lx.peek(0) == '.' && isDigit(lx.peek(1)) {
		lx.off++
		lx.digits()
	}
	if lx.peek(0)|0x20 == 'e' {
		n := 1
		if lx.peek(1) == '+' || lx.peek(1) == '-' {
			n = 2
		}
		if isDigit(lx.peek(n)) {
			lx.off += n
			lx.digits()
		}
	}
	lx.emit(token.Number, start)
}

func (lx *Lexer) digits() {
	for !lx.eof() && (isDigit(lx.peek(0)) || (lx.peek(0) == '_' && isDigit(lx.peek(1)))) {
		lx.off++
	}
}

// scanQuoted consumes a quoted literal. Interpolated strings stay one token,
// including string literals nested inside {$...} and ${...} expressions.
func (lx *Lexer) scanQuoted(quote byte) error {
	start := lx.off
	lx.off++
	if !lx.scanStringBody(quote) {
		return lx.fail(start, "unterminated string literal")
	}
	lx.emit(token.ConstantString, start)
	return nil
}

// scanStringBody consumes up to and including the closing quote. It reports
// false when the input ends first.
func (lx *Lexer) scanStringBody(quote byte) bool {
	for !lx.eof() {
		ch := lx.peek(0)
		switch {
		case ch == '\\':
			lx.off += 2
		case quote != '\'' && lx.atInterpolation():
			if !lx.skipInterpolation() {
				return false
			}
		default:
			lx.off++
			if ch == quote {
				return true
			}
		}
	}
	return false
}

func (lx *Lexer) atInterpolation() bool {
	return (lx.peek(0) == '{' && lx.peek(1) == '$') || (lx.peek(0) == '$' && lx.peek(1) == '{')
}

// skipInterpolation consumes a {$...} or ${...} expression up to its
// matching brace. Quoted literals inside the expression are skipped whole.
func (lx *Lexer) skipInterpolation() bool {
	if lx.peek(0) == '$' {
		lx.off++
	}
	lx.off++
	depth := 1
	for !lx.eof() {
		ch := lx.peek(0)
		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				lx.off++
				return true
			}
		case '\'', '"', '`':
			lx.off++
			if !lx.scanStringBody(ch) {
				return false
			}
			continue
		}
		lx.off++
	}
	return false
}

func (lx *Lexer) scanHeredoc() error {
	start := lx.off
	lx.off += 3
	for lx.peek(0) == ' ' || lx.peek(0) == '\t' {
		lx.off++
	}
	quote := byte(0)
	if lx.peek(0) == '\'' || lx.peek(0) == '"' {
		quote = lx.peek(0)
		lx.off++
	}
	labelStart := lx.off
	lx.scanIdentBytes()
	label := lx.src[labelStart:lx.off]
	if label == "" {
		// "<<<" without a label is not a heredoc; fall back to operators.
		lx.off = start
		return lx.scanOperator()
	}
	if quote != 0 {
		if lx.peek(0) != quote {
			return lx.fail(start, "malformed heredoc label")
		}
		lx.off++
	}
	nl := strings.IndexByte(lx.src[lx.off:], '\n')
	if nl < 0 {
		return lx.fail(start, "unterminated heredoc")
	}
	lx.off += nl + 1

	interpolate := quote != '\''
	for !lx.eof() {
		line := lx.src[lx.off:]
		if lineEnd := strings.IndexByte(line, '\n'); lineEnd >= 0 {
			line = line[:lineEnd]
		}
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, label) {
			rest := trimmed[len(label):]
			if rest == "" || !isIdentContinue(rest[0]) {
				lx.off += len(line) - len(trimmed) + len(label)
				lx.emit(token.Heredoc, start)
				return nil
			}
		}
		if !lx.skipHeredocLine(interpolate) {
			break
		}
	}
	return lx.fail(start, "unterminated heredoc")
}

// skipHeredocLine consumes the rest of a heredoc body line and its line
// break. An interpolation may span several lines. It reports false when the
// input ends first.
func (lx *Lexer) skipHeredocLine(interpolate bool) bool {
	for !lx.eof() {
		ch := lx.peek(0)
		switch {
		case ch == '\n':
			lx.off++
			return true
		case interpolate && ch == '\\' && lx.peek(1) != '\n':
			lx.off += 2
		case interpolate && lx.atInterpolation():
			if !lx.skipInterpolation() {
				return false
			}
		default:
			lx.off++
		}
	}
	return false
}

//nolint:gochecknoglobals // static operator table, longest first
var operators = []string{
	"<<=", ">>=", "**=", "...", "<=>", "===", "!==", "??=", "?->",
	"&&", "||", "->", "=>", "::", "==", "!=", "<>", "<=", ">=", "++", "--",
	"+=", "-=", "*=", "/=", ".=", "%=", "&=", "|=", "^=", "<<", ">>", "??", "**",
}

//nolint:gochecknoglobals // static lookup table
var operatorKinds = map[string]token.Kind{
	"&&":  token.BooleanAnd,
	"||":  token.BooleanOr,
	"->":  token.ObjectOperator,
	"?->": token.NullsafeObjectOperator,
	"::":  token.DoubleColon,
	"=>":  token.DoubleArrow,
	"...": token.Ellipsis,
	"(":   token.OpenParen,
	")":   token.CloseParen,
	"[":   token.OpenBracket,
	"]":   token.CloseBracket,
	"{":   token.OpenBrace,
	"}":   token.CloseBrace,
	",":   token.Comma,
	";":   token.Semicolon,
	":":   token.Colon,
	"?":   token.Question,
	"=":   token.Assign,
	"&":   token.Ampersand,
}

func (lx *Lexer) scanOperator() error {
	start := lx.off
	for _, op := range operators {
		if lx.hasPrefix(op) {
			lx.off += len(op)
			lx.emit(operatorKind(op), start)
			return nil
		}
	}

	ch := lx.peek(0)
	if !strings.ContainsRune("()[]{},;:?=&+-*/%.!<>|^~@$", rune(ch)) {
		return lx.fail(start, "unexpected character "+quoteByte(ch))
	}
	lx.off++
	lx.emit(operatorKind(string(ch)), start)
	return nil
}

func operatorKind(op string) token.Kind {
	if k, ok := operatorKinds[op]; ok {
		return k
	}
	return token.Operator
}
