package reporter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/gocsfix/internal/ui/pretty"
	"github.com/yaklabco/gocsfix/pkg/diff"
	"github.com/yaklabco/gocsfix/pkg/runner"
)

// DiffReporter writes unified diffs that can be fed to patch or git apply.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Report implements Reporter. File errors go to the same writer prefixed
// with "#", which patch tools skip as garbage.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	if result == nil {
		return 0, nil
	}

	var filesWithDiffs, additions, deletions int

	for _, file := range result.Files {
		if file.Error != nil {
			if _, err := fmt.Fprintf(r.out, "# %s: error: %v\n", r.opts.displayPath(file.Path), file.Error); err != nil {
				return filesWithDiffs, err
			}
			continue
		}
		if !file.Changed() || file.Result.Diff.Empty() {
			continue
		}

		filesWithDiffs++
		additions += file.Result.Diff.Added
		deletions += file.Result.Diff.Removed
		if err := r.writeDiff(file.Result.Diff); err != nil {
			return filesWithDiffs, err
		}
	}

	if filesWithDiffs > 0 && r.opts.ShowSummary {
		if _, err := fmt.Fprintln(r.out, r.summary(filesWithDiffs, additions, deletions)); err != nil {
			return filesWithDiffs, err
		}
	}

	return filesWithDiffs, nil
}

func (r *DiffReporter) writeDiff(d *diff.Diff) error {
	display := *d
	display.Path = r.opts.displayPath(d.Path)

	header := fmt.Sprintf("diff --git a/%s b/%s", display.Path, display.Path)
	_, err := fmt.Fprint(r.out, r.styles.DiffHeader.Render(header)+"\n"+r.styles.FormatDiff(&display))
	return err
}

// summary mirrors git's "--stat" footer.
func (r *DiffReporter) summary(files, additions, deletions int) string {
	parts := []string{fmt.Sprintf("# %d %s changed", files, pluralize(files, "file", "files"))}
	if additions > 0 {
		parts = append(parts, r.styles.DiffAdd.Render(fmt.Sprintf("%d %s(+)", additions, pluralize(additions, "insertion", "insertions"))))
	}
	if deletions > 0 {
		parts = append(parts, r.styles.DiffRemove.Render(fmt.Sprintf("%d %s(-)", deletions, pluralize(deletions, "deletion", "deletions"))))
	}
	return strings.Join(parts, ", ")
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
