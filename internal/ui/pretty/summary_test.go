package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gocsfix/internal/ui/pretty"
	"github.com/yaklabco/gocsfix/pkg/runner"
)

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name   string
		stats  runner.Stats
		dryRun bool
		want   string
	}{
		{
			name:  "clean",
			stats: runner.Stats{FilesDiscovered: 1, FilesProcessed: 1},
			want:  "No changes needed (1 file checked)\n",
		},
		{
			name:  "fixed",
			stats: runner.Stats{FilesDiscovered: 12, FilesProcessed: 11, FilesChanged: 3, FilesCached: 5, FilesErrored: 1},
			want:  "Fixed 3 of 12 files, 5 cached, 1 failed\n",
		},
		{
			name:   "dry run",
			stats:  runner.Stats{FilesDiscovered: 2, FilesProcessed: 2, FilesChanged: 1, FilesSkipped: 1},
			dryRun: true,
			want:   "1 of 2 files need fixing, 1 skipped\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats, tt.dryRun))
		})
	}
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered: 10,
		FilesProcessed:  9,
		FilesChanged:    3,
		FilesErrored:    1,
		TokenizeErrors:  1,
		FixerCounts:     map[string]int{"no_closing_tag": 1, "visibility_required": 3, "logical_operators": 1},
	}

	out := styles.FormatSummary(stats, false)
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Files checked:      10")
	assert.Contains(t, out, "Files fixed:        3")
	assert.Contains(t, out, "Files failed:       1")
	assert.Contains(t, out, "Tokenize errors:")
	assert.NotContains(t, out, "Not converged")
	assert.Contains(t, out, "Some files could not be fixed")

	// Highest count first, ties by name.
	iVis := indexOf(out, "visibility_required")
	iLog := indexOf(out, "logical_operators")
	iTag := indexOf(out, "no_closing_tag")
	assert.Less(t, iVis, iLog)
	assert.Less(t, iLog, iTag)
}

func TestFormatSummary_Clean(t *testing.T) {
	t.Parallel()

	out := pretty.NewStyles(false).FormatSummary(runner.Stats{FilesDiscovered: 4}, true)
	assert.Contains(t, out, "Files to fix:       0")
	assert.Contains(t, out, "All files are clean")
	assert.NotContains(t, out, "Fixers applied")
}
