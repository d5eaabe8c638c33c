// Package token defines the lexical units that flow through the fixer engine.
package token

import "strings"

// Kind is the category of a PHP source token.
type Kind uint16

const (
	// Invalid is the zero Kind and never produced by the lexer.
	Invalid Kind = iota
	// Removed marks a cleared token: zero width, skipped by navigation.
	Removed

	// InlineHTML is text outside of PHP tags.
	InlineHTML
	// OpenTag is "<?php" (or "<?" in short-tag mode) plus one trailing whitespace character.
	OpenTag
	// OpenTagWithEcho is "<?=".
	OpenTagWithEcho
	// CloseTag is "?>" plus one trailing newline.
	CloseTag
	// Whitespace is a run of spaces, tabs and line breaks.
	Whitespace
	// Comment is a "//", "#" or "/* */" comment.
	Comment
	// DocComment is a "/** */" comment.
	DocComment

	// Variable is "$name".
	Variable
	// String is a bare identifier (T_STRING).
	String
	// ConstantString is a quoted string literal.
	ConstantString
	// Heredoc is a complete heredoc or nowdoc literal.
	Heredoc
	// Number is an integer or float literal.
	Number
	// NsSeparator is "\".
	NsSeparator

	keywordStart
	// KwAbstract is the "abstract" keyword.
	KwAbstract
	// KwAnd is the "and" keyword.
	KwAnd
	// KwArray is the "array" keyword.
	KwArray
	// KwAs is the "as" keyword.
	KwAs
	// KwBreak is the "break" keyword.
	KwBreak
	// KwCase is the "case" keyword.
	KwCase
	// KwCatch is the "catch" keyword.
	KwCatch
	// KwClass is the "class" keyword.
	KwClass
	// KwClone is the "clone" keyword.
	KwClone
	// KwConst is the "const" keyword.
	KwConst
	// KwContinue is the "continue" keyword.
	KwContinue
	// KwDeclare is the "declare" keyword.
	KwDeclare
	// KwDefault is the "default" keyword.
	KwDefault
	// KwDo is the "do" keyword.
	KwDo
	// KwEcho is the "echo" keyword.
	KwEcho
	// KwElse is the "else" keyword.
	KwElse
	// KwElseif is the "elseif" keyword.
	KwElseif
	// KwExtends is the "extends" keyword.
	KwExtends
	// KwFinal is the "final" keyword.
	KwFinal
	// KwFinally is the "finally" keyword.
	KwFinally
	// KwFn is the "fn" keyword.
	KwFn
	// KwFor is the "for" keyword.
	KwFor
	// KwForeach is the "foreach" keyword.
	KwForeach
	// KwFunction is the "function" keyword.
	KwFunction
	// KwGlobal is the "global" keyword.
	KwGlobal
	// KwIf is the "if" keyword.
	KwIf
	// KwImplements is the "implements" keyword.
	KwImplements
	// KwInclude is the "include" keyword.
	KwInclude
	// KwIncludeOnce is the "include_once" keyword.
	KwIncludeOnce
	// KwInstanceof is the "instanceof" keyword.
	KwInstanceof
	// KwInterface is the "interface" keyword.
	KwInterface
	// KwList is the "list" keyword.
	KwList
	// KwNamespace is the "namespace" keyword.
	KwNamespace
	// KwNew is the "new" keyword.
	KwNew
	// KwOr is the "or" keyword.
	KwOr
	// KwPrint is the "print" keyword.
	KwPrint
	// KwPrivate is the "private" keyword.
	KwPrivate
	// KwProtected is the "protected" keyword.
	KwProtected
	// KwPublic is the "public" keyword.
	KwPublic
	// KwRequire is the "require" keyword.
	KwRequire
	// KwRequireOnce is the "require_once" keyword.
	KwRequireOnce
	// KwReturn is the "return" keyword.
	KwReturn
	// KwStatic is the "static" keyword.
	KwStatic
	// KwSwitch is the "switch" keyword.
	KwSwitch
	// KwThrow is the "throw" keyword.
	KwThrow
	// KwTrait is the "trait" keyword.
	KwTrait
	// KwTry is the "try" keyword.
	KwTry
	// KwUse is the "use" keyword.
	KwUse
	// KwVar is the "var" keyword.
	KwVar
	// KwWhile is the "while" keyword.
	KwWhile
	// KwXor is the "xor" keyword.
	KwXor
	// KwYield is the "yield" keyword.
	KwYield
	keywordEnd

	// BooleanAnd is "&&".
	BooleanAnd
	// BooleanOr is "||".
	BooleanOr
	// ObjectOperator is "->".
	ObjectOperator
	// NullsafeObjectOperator is "?->".
	NullsafeObjectOperator
	// DoubleColon is "::".
	DoubleColon
	// DoubleArrow is "=>".
	DoubleArrow
	// Ellipsis is "...".
	Ellipsis
	// Operator is any other operator; the content tells which.
	Operator

	// OpenParen is "(".
	OpenParen
	// CloseParen is ")".
	CloseParen
	// OpenBracket is "[" used for index access.
	OpenBracket
	// CloseBracket is "]" closing an index access.
	CloseBracket
	// OpenBrace is "{".
	OpenBrace
	// CloseBrace is "}".
	CloseBrace
	// Comma is ",".
	Comma
	// Semicolon is ";".
	Semicolon
	// Colon is ":".
	Colon
	// Question is "?".
	Question
	// Assign is "=".
	Assign
	// Ampersand is "&".
	Ampersand

	// ArraySquareBraceOpen is "[" opening a short array literal.
	ArraySquareBraceOpen
	// ArraySquareBraceClose is "]" closing a short array literal.
	ArraySquareBraceClose
	// TypeColon is ":" introducing a return type.
	TypeColon

	kindCount
)

//nolint:gochecknoglobals // static lookup table
var kindNames = map[Kind]string{
	Invalid:                "Invalid",
	Removed:                "Removed",
	InlineHTML:             "InlineHTML",
	OpenTag:                "OpenTag",
	OpenTagWithEcho:        "OpenTagWithEcho",
	CloseTag:               "CloseTag",
	Whitespace:             "Whitespace",
	Comment:                "Comment",
	DocComment:             "DocComment",
	Variable:               "Variable",
	String:                 "String",
	ConstantString:         "ConstantString",
	Heredoc:                "Heredoc",
	Number:                 "Number",
	NsSeparator:            "NsSeparator",
	BooleanAnd:             "BooleanAnd",
	BooleanOr:              "BooleanOr",
	ObjectOperator:         "ObjectOperator",
	NullsafeObjectOperator: "NullsafeObjectOperator",
	DoubleColon:            "DoubleColon",
	DoubleArrow:            "DoubleArrow",
	Ellipsis:               "Ellipsis",
	Operator:               "Operator",
	OpenParen:              "OpenParen",
	CloseParen:             "CloseParen",
	OpenBracket:            "OpenBracket",
	CloseBracket:           "CloseBracket",
	OpenBrace:              "OpenBrace",
	CloseBrace:             "CloseBrace",
	Comma:                  "Comma",
	Semicolon:              "Semicolon",
	Colon:                  "Colon",
	Question:               "Question",
	Assign:                 "Assign",
	Ampersand:              "Ampersand",
	ArraySquareBraceOpen:   "ArraySquareBraceOpen",
	ArraySquareBraceClose:  "ArraySquareBraceClose",
	TypeColon:              "TypeColon",
}

//nolint:gochecknoglobals // static lookup table
var keywords = map[string]Kind{
	"abstract":     KwAbstract,
	"and":          KwAnd,
	"array":        KwArray,
	"as":           KwAs,
	"break":        KwBreak,
	"case":         KwCase,
	"catch":        KwCatch,
	"class":        KwClass,
	"clone":        KwClone,
	"const":        KwConst,
	"continue":     KwContinue,
	"declare":      KwDeclare,
	"default":      KwDefault,
	"do":           KwDo,
	"echo":         KwEcho,
	"else":         KwElse,
	"elseif":       KwElseif,
	"extends":      KwExtends,
	"final":        KwFinal,
	"finally":      KwFinally,
	"fn":           KwFn,
	"for":          KwFor,
	"foreach":      KwForeach,
	"function":     KwFunction,
	"global":       KwGlobal,
	"if":           KwIf,
	"implements":   KwImplements,
	"include":      KwInclude,
	"include_once": KwIncludeOnce,
	"instanceof":   KwInstanceof,
	"interface":    KwInterface,
	"list":         KwList,
	"namespace":    KwNamespace,
	"new":          KwNew,
	"or":           KwOr,
	"print":        KwPrint,
	"private":      KwPrivate,
	"protected":    KwProtected,
	"public":       KwPublic,
	"require":      KwRequire,
	"require_once": KwRequireOnce,
	"return":       KwReturn,
	"static":       KwStatic,
	"switch":       KwSwitch,
	"throw":        KwThrow,
	"trait":        KwTrait,
	"try":          KwTry,
	"use":          KwUse,
	"var":          KwVar,
	"while":        KwWhile,
	"xor":          KwXor,
	"yield":        KwYield,
}

// LookupKeyword returns the keyword kind for ident, matched case-insensitively,
// or String when ident is not a keyword.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[strings.ToLower(ident)]; ok {
		return k
	}
	return String
}

// IsKeyword reports whether k is a keyword kind.
func (k Kind) IsKeyword() bool {
	return k > keywordStart && k < keywordEnd
}

// Valid reports whether k is a kind the lexer or a transformer can produce.
func (k Kind) Valid() bool {
	return k > Invalid && k < kindCount && k != keywordStart && k != keywordEnd
}

// String returns the kind name; keywords render as "Kw(<word>)".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if k.IsKeyword() {
		for word, kw := range keywords {
			if kw == k {
				return "Kw(" + word + ")"
			}
		}
	}
	return "Kind(?)"
}

// Count is the number of distinct kinds, for sizing per-kind tables.
const Count = int(kindCount)
