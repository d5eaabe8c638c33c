package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocsfix/pkg/fixer"
)

func newReturnTypeDeclaration() fixer.Fixer { return NewReturnTypeDeclarationFixer() }

func TestReturnTypeDeclarationFixer(t *testing.T) {
	t.Parallel()

	runCases(t, newReturnTypeDeclaration, nil, []fixCase{
		{
			name:     "adds space after",
			expected: "<?php\nfunction foo(int $a): string {};\n",
			input:    "<?php\nfunction foo(int $a):string {};\n",
		},
		{
			name:     "removes space before",
			expected: "<?php\nfunction foo(int $a): string {};\n",
			input:    "<?php\nfunction foo(int $a)  :   string {};\n",
		},
		{
			name:     "closure with use clause",
			expected: "<?php\n$f = function () use ($a): int {};\n",
			input:    "<?php\n$f = function () use ($a):int {};\n",
		},
		{
			name:     "nullable type",
			expected: "<?php\nfunction foo(): ?int {}\n",
			input:    "<?php\nfunction foo() : ?int {}\n",
		},
		{
			name:     "ternary is not a return type",
			expected: "<?php\n$a = $b ? $c:$d;\n",
		},
	})
}

func TestReturnTypeDeclarationFixer_SpaceBeforeOne(t *testing.T) {
	t.Parallel()

	runCases(t, newReturnTypeDeclaration, map[string]any{"space_before": "one"}, []fixCase{
		{
			name:     "inserts both spaces",
			expected: "<?php\nfunction foo(int $a) : string {};\n",
			input:    "<?php\nfunction foo(int $a):string {};\n",
		},
		{
			name:     "collapses wide spacing",
			expected: "<?php\nfunction foo(int $a) : string {};\n",
			input:    "<?php\nfunction foo(int $a)  :   string {};\n",
		},
		{
			name:     "interface method",
			expected: "<?php\ninterface I\n{\n    public function a() : void;\n}\n",
			input:    "<?php\ninterface I\n{\n    public function a(): void;\n}\n",
		},
	})
}

func TestReturnTypeDeclarationFixer_InvalidOption(t *testing.T) {
	t.Parallel()

	err := NewReturnTypeDeclarationFixer().Configure(map[string]any{"space_before": "two"})
	require.ErrorIs(t, err, fixer.ErrInvalidConfiguration)
}
