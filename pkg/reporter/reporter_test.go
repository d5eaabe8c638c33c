package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocsfix/pkg/diff"
	"github.com/yaklabco/gocsfix/pkg/fixer"
	"github.com/yaklabco/gocsfix/pkg/phplex"
	"github.com/yaklabco/gocsfix/pkg/reporter"
	"github.com/yaklabco/gocsfix/pkg/runner"
)

const workDir = "/work"

func changedOutcome(name string, written bool, fixers ...string) runner.FileOutcome {
	path := workDir + "/" + name
	before := []byte("<?php\n$a = [1, 2,];\n")
	after := []byte("<?php\n$a = [1, 2];\n")
	return runner.FileOutcome{
		Path: path,
		Result: &fixer.PipelineResult{
			FileResult: &fixer.FileResult{
				Path:     path,
				Original: before,
				Fixed:    after,
				Run:      &fixer.RunResult{Passes: 2, Converged: true, Applied: fixers},
			},
			Path:     path,
			Modified: true,
			Written:  written,
			Diff:     diff.Compute(path, before, after),
		},
	}
}

func cleanOutcome(name string) runner.FileOutcome {
	path := workDir + "/" + name
	return runner.FileOutcome{
		Path: path,
		Result: &fixer.PipelineResult{
			FileResult: &fixer.FileResult{Path: path, Run: &fixer.RunResult{Passes: 1, Converged: true}},
			Path:       path,
		},
	}
}

func failedOutcome(name string) runner.FileOutcome {
	return runner.FileOutcome{
		Path:  workDir + "/" + name,
		Error: fmt.Errorf("%s: %w", name, &phplex.Error{Line: 1, Column: 7, Msg: "unterminated comment"}),
	}
}

func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			changedOutcome("a.php", true, "no_trailing_comma_in_singleline_array"),
			cleanOutcome("b.php"),
			failedOutcome("c.php"),
		},
		Stats: runner.Stats{
			FilesDiscovered: 3,
			FilesProcessed:  2,
			FilesChanged:    1,
			FilesWritten:    1,
			FilesErrored:    1,
			TokenizeErrors:  1,
			FixerCounts:     map[string]int{"no_trailing_comma_in_singleline_array": 1},
		},
	}
}

func report(t *testing.T, opts reporter.Options, result *runner.Result) (string, int) {
	t.Helper()
	var buf bytes.Buffer
	opts.Writer = &buf
	opts.Color = "never"
	opts.WorkingDir = workDir

	rep, err := reporter.New(opts)
	require.NoError(t, err)
	n, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	return buf.String(), n
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{input: "", want: reporter.FormatText},
		{input: "text", want: reporter.FormatText},
		{input: "json", want: reporter.FormatJSON},
		{input: "diff", want: reporter.FormatDiff},
		{input: "summary", want: reporter.FormatSummary},
		{input: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		got, err := reporter.ParseFormat(tt.input)
		if tt.wantErr {
			require.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
		assert.True(t, got.IsValid())
	}
	assert.False(t, reporter.Format("xml").IsValid())
}

func TestNew_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Format: "xml", Writer: &bytes.Buffer{}})
	require.Error(t, err)
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	out, n := report(t, reporter.Options{Format: reporter.FormatText, ShowSummary: true}, sampleResult())
	assert.Equal(t, 1, n)

	assert.Contains(t, out, "   1) a.php\n")
	assert.NotContains(t, out, "b.php")
	assert.Contains(t, out, "c.php: error: c.php: line 1, column 7: unterminated comment\n")
	assert.Contains(t, out, "Fixed 1 of 3 files, 1 failed\n")
	assert.NotContains(t, out, "@@")
}

func TestTextReporter_VerboseWithDiff(t *testing.T) {
	t.Parallel()

	out, _ := report(t, reporter.Options{Format: reporter.FormatText, Verbose: true, ShowDiff: true}, sampleResult())

	assert.Contains(t, out, "   1) a.php (no_trailing_comma_in_singleline_array)\n")
	assert.Contains(t, out, "      --- a/a.php\n")
	assert.Contains(t, out, "      -$a = [1, 2,];\n      +$a = [1, 2];\n")
	assert.Contains(t, out, "b.php: ok\n")
	assert.NotContains(t, out, "Fixed")
}

func TestTextReporter_Empty(t *testing.T) {
	t.Parallel()

	out, n := report(t, reporter.Options{Format: reporter.FormatText, ShowSummary: true}, &runner.Result{})
	assert.Equal(t, 0, n)
	assert.Equal(t, "No files to fix.\n", out)
}

func TestDiffReporter(t *testing.T) {
	t.Parallel()

	out, n := report(t, reporter.Options{Format: reporter.FormatDiff, ShowSummary: true}, sampleResult())
	assert.Equal(t, 1, n)

	want := "diff --git a/a.php b/a.php\n" +
		"--- a/a.php\n" +
		"+++ b/a.php\n" +
		"@@ -1,2 +1,2 @@\n" +
		" <?php\n" +
		"-$a = [1, 2,];\n" +
		"+$a = [1, 2];\n"
	assert.Contains(t, out, want)
	assert.Contains(t, out, "# c.php: error:")
	assert.True(t, strings.HasSuffix(out, "# 1 file changed, 1 insertion(+), 1 deletion(-)\n"), out)
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	out, n := report(t, reporter.Options{Format: reporter.FormatJSON, DryRun: true}, sampleResult())
	assert.Equal(t, 1, n)

	var decoded reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, reporter.ReportVersion, decoded.Version)
	assert.True(t, decoded.DryRun)
	require.Len(t, decoded.Files, 2)

	changed := decoded.Files[0]
	assert.Equal(t, "a.php", changed.Path)
	assert.Equal(t, []string{"no_trailing_comma_in_singleline_array"}, changed.AppliedFixers)
	assert.Equal(t, 2, changed.Passes)
	assert.True(t, changed.Written)
	assert.Contains(t, changed.Diff, "+$a = [1, 2];")

	failed := decoded.Files[1]
	assert.Equal(t, "c.php", failed.Path)
	assert.Equal(t, "tokenize", failed.ErrorKind)

	assert.Equal(t, 3, decoded.Summary.FilesChecked)
	assert.Equal(t, 1, decoded.Summary.FilesErrored)
	assert.Equal(t, 1, decoded.Summary.FixerCounts["no_trailing_comma_in_singleline_array"])
}

func TestJSONReporter_ErrorKinds(t *testing.T) {
	t.Parallel()

	result := &runner.Result{Files: []runner.FileOutcome{
		{Path: "/work/x.php", Error: &fixer.NonConvergenceError{Path: "x.php", Passes: 10}},
		{Path: "/work/y.php", Error: &fixer.FailureError{Fixer: "f", Path: "y.php", Err: errors.New("boom")}},
		{Path: "/work/z.php", Error: errors.New("other")},
	}}

	out, _ := report(t, reporter.Options{Format: reporter.FormatJSON, Compact: true}, result)
	var decoded reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	var kinds []string
	for _, f := range decoded.Files {
		kinds = append(kinds, f.ErrorKind)
	}
	assert.Equal(t, []string{"not_converged", "fixer_failure", "internal"}, kinds)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestSummaryReporter(t *testing.T) {
	t.Parallel()

	out, n := report(t, reporter.Options{Format: reporter.FormatSummary}, sampleResult())
	assert.Equal(t, 1, n)
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "no_trailing_comma_in_singleline_array")

	out, n = report(t, reporter.Options{Format: reporter.FormatSummary}, nil)
	assert.Equal(t, 0, n)
	assert.Contains(t, out, "All files are clean")
}
