package tokens

import "github.com/yaklabco/gocsfix/pkg/token"

// BlockType names a pair of matching delimiters.
type BlockType uint8

const (
	// BlockParenthesis is "(" ... ")".
	BlockParenthesis BlockType = iota
	// BlockCurlyBrace is "{" ... "}".
	BlockCurlyBrace
	// BlockArraySquareBrace is a short array literal "[" ... "]".
	BlockArraySquareBrace
	// BlockIndexSquareBrace is an index access or attribute "[" ... "]".
	BlockIndexSquareBrace
)

type blockDelims struct {
	open, close token.Kind
}

//nolint:gochecknoglobals // static lookup table
var blockTable = [...]blockDelims{
	BlockParenthesis:      {token.OpenParen, token.CloseParen},
	BlockCurlyBrace:       {token.OpenBrace, token.CloseBrace},
	BlockArraySquareBrace: {token.ArraySquareBraceOpen, token.ArraySquareBraceClose},
	BlockIndexSquareBrace: {token.OpenBracket, token.CloseBracket},
}

func (b BlockType) String() string {
	switch b {
	case BlockParenthesis:
		return "parenthesis"
	case BlockCurlyBrace:
		return "curly brace"
	case BlockArraySquareBrace:
		return "array square brace"
	case BlockIndexSquareBrace:
		return "index square brace"
	default:
		return "unknown block"
	}
}

func isBlockKind(k token.Kind) bool {
	for _, d := range blockTable {
		if k == d.open || k == d.close {
			return true
		}
	}
	return false
}

// BlockTypeOf returns the block type a token opens or closes, and whether it
// opens one.
func BlockTypeOf(t token.Token) (bt BlockType, opener, ok bool) {
	for i, d := range blockTable {
		switch t.Kind {
		case d.open:
			return BlockType(i), true, true
		case d.close:
			return BlockType(i), false, true
		}
	}
	return 0, false, false
}

// FindBlockEnd returns the index of the closer matching the opener at open.
// It panics with a *StructuralError if the token at open is not an opener
// of bt.
func (s *Stream) FindBlockEnd(bt BlockType, open int) int {
	s.mustIndex(open)
	if s.toks[open].Kind != blockTable[bt].open {
		panic(&StructuralError{Op: "find block end", Index: open, Msg: "token does not open a " + bt.String()})
	}
	end, ok := s.blockMap()[open]
	if !ok {
		panic(&StructuralError{Op: "find block end", Index: open, Msg: "unbalanced " + bt.String()})
	}
	return end
}

// FindBlockStart returns the index of the opener matching the closer at end.
func (s *Stream) FindBlockStart(bt BlockType, end int) int {
	s.mustIndex(end)
	if s.toks[end].Kind != blockTable[bt].close {
		panic(&StructuralError{Op: "find block start", Index: end, Msg: "token does not close a " + bt.String()})
	}
	for open, closeIdx := range s.blockMap() {
		if closeIdx == end {
			return open
		}
	}
	panic(&StructuralError{Op: "find block start", Index: end, Msg: "unbalanced " + bt.String()})
}

// blockMap pairs every opener with its closer. Depth is counted per block
// type, so the kinds of one type never affect matching of another.
func (s *Stream) blockMap() map[int]int {
	if s.blocks != nil {
		return s.blocks
	}
	blocks := make(map[int]int)
	var stacks [len(blockTable)][]int
	for i, tok := range s.toks {
		bt, opener, ok := BlockTypeOf(tok)
		if !ok {
			continue
		}
		if opener {
			stacks[bt] = append(stacks[bt], i)
			continue
		}
		if n := len(stacks[bt]); n > 0 {
			blocks[stacks[bt][n-1]] = i
			stacks[bt] = stacks[bt][:n-1]
		}
	}
	s.blocks = blocks
	return blocks
}
