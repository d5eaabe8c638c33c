package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocsfix/pkg/fixer"
	"github.com/yaklabco/gocsfix/pkg/phplex"
	"github.com/yaklabco/gocsfix/pkg/tokens"
)

// applyOnce runs f over src the way the orchestrator does for one fixer
// and returns the resulting code.
func applyOnce(t *testing.T, f fixer.Fixer, src string) string {
	t.Helper()

	s, err := tokens.FromText(src, phplex.DefaultOptions())
	require.NoError(t, err)

	if !f.IsCandidate(s) {
		return src
	}
	require.NoError(t, f.Fix(&fixer.FileContext{Path: "test.php"}, s))
	if s.NeedsRetokenize() {
		require.NoError(t, s.Retokenize())
	} else {
		s.ClearEmpty()
	}
	return s.GenerateCode()
}

// doTest checks that f turns input into expected, and that a second run
// changes nothing. An empty input means expected must be left as is.
func doTest(t *testing.T, f fixer.Fixer, expected, input string) {
	t.Helper()

	if input == "" {
		input = expected
	}
	got := applyOnce(t, f, input)
	assert.Equal(t, expected, got)
	assert.Equal(t, got, applyOnce(t, f, got), "second run must not change the code")
}

type fixCase struct {
	name     string
	expected string
	input    string
}

func runCases(t *testing.T, newFixer func() fixer.Fixer, options map[string]any, cases []fixCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixer()
			if options != nil {
				c, ok := f.(fixer.Configurable)
				require.True(t, ok)
				require.NoError(t, c.Configure(options))
			}
			doTest(t, f, tc.expected, tc.input)
		})
	}
}
