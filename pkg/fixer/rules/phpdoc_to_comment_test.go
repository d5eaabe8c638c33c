package rules

import (
	"testing"

	"github.com/yaklabco/gocsfix/pkg/fixer"
)

func TestPhpdocToCommentFixer(t *testing.T) {
	t.Parallel()

	runCases(t, func() fixer.Fixer { return NewPhpdocToCommentFixer() }, nil, []fixCase{
		{
			name:     "bare statement",
			expected: "<?php\n/* Foo */\necho 1;\n",
			input:    "<?php\n/** Foo */\necho 1;\n",
		},
		{
			name:     "multi-line docblock",
			expected: "<?php\n/*\n * Foo\n */\necho 1;\n",
			input:    "<?php\n/**\n * Foo\n */\necho 1;\n",
		},
		{
			name:     "class",
			expected: "<?php\n/** Foo */\nclass A {}\n",
		},
		{
			name:     "final class and function",
			expected: "<?php\n/** Foo */\nfinal class A {}\n/** Bar */\nfunction b() {}\n",
		},
		{
			name:     "class members",
			expected: "<?php\nclass A\n{\n    /** @var int */\n    private $a;\n    /** Ctor. */\n    public function __construct() {}\n}\n",
		},
		{
			name:     "documented assignment",
			expected: "<?php\n/** @var int $a */\n$a = 1;\n",
		},
		{
			name:     "assignment documenting another variable",
			expected: "<?php\n/* @var int $b */\n$a = 1;\n",
			input:    "<?php\n/** @var int $b */\n$a = 1;\n",
		},
		{
			name:     "foreach value",
			expected: "<?php\n/** @var Foo $value */\nforeach ($list as $value) {}\n",
		},
		{
			name:     "foreach key",
			expected: "<?php\n/** @var string $key */\nforeach ($list as $key => $value) {}\n",
		},
		{
			name:     "foreach undocumented",
			expected: "<?php\n/* nope */\nforeach ($list as $k => $v) {}\n",
			input:    "<?php\n/** nope */\nforeach ($list as $k => $v) {}\n",
		},
		{
			name:     "list",
			expected: "<?php\n/** @var int $b */\nlist($a, $b) = f();\n",
		},
		{
			name:     "end of block",
			expected: "<?php\nfunction f() {\n    /** trailing */\n}\n",
		},
		{
			name:     "end of file",
			expected: "<?php\n/** last */\n",
		},
	})
}
