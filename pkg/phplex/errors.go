package phplex

import (
	"errors"
	"fmt"
)

// ErrTokenize is the sentinel matched by every tokenization failure.
var ErrTokenize = errors.New("tokenization failed")

// Error reports input the lexer cannot turn into a balanced token sequence.
type Error struct {
	// Offset is the byte offset where the problem was detected.
	Offset int
	// Line and Column are 1-based.
	Line   int
	Column int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Unwrap lets errors.Is match ErrTokenize.
func (e *Error) Unwrap() error {
	return ErrTokenize
}

func newError(src string, off int, msg string) *Error {
	line, col := 1, 1
	for i := 0; i < off && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return &Error{Offset: off, Line: line, Column: col, Msg: msg}
}
