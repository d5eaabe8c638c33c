package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/gocsfix/internal/ui/pretty"
	"github.com/yaklabco/gocsfix/pkg/diff"
	"github.com/yaklabco/gocsfix/pkg/runner"
)

// TextReporter lists changed and failed files as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to fix."))
		}
		return 0, nil
	}

	var changed, index int
	for _, file := range result.Files {
		path := r.styles.FilePath.Render(r.opts.displayPath(file.Path))

		switch {
		case file.Error != nil:
			fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)))

		case file.Changed():
			changed++
			index++
			fmt.Fprintf(r.bw, "%4d) %s", index, path)
			if r.opts.Verbose {
				fmt.Fprintf(r.bw, " %s", r.fixerList(file.Result.AppliedFixers()))
			}
			fmt.Fprintln(r.bw)
			if r.opts.ShowDiff {
				r.writeDiff(file.Result.Diff)
			}

		case file.Result != nil && file.Result.Skipped:
			fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Warning.Render(file.Result.Summary()))

		case r.opts.Verbose && file.Result != nil:
			fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Dim.Render(file.Result.Summary()))
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, "\n"+r.styles.FormatSummaryOneLine(result.Stats, r.opts.DryRun))
	}

	return changed, nil
}

func (r *TextReporter) fixerList(names []string) string {
	styled := make([]string, len(names))
	for i, name := range names {
		styled[i] = r.styles.FixerName.Render(name)
	}
	return "(" + strings.Join(styled, ", ") + ")"
}

func (r *TextReporter) writeDiff(d *diff.Diff) {
	if d.Empty() {
		return
	}
	display := *d
	display.Path = r.opts.displayPath(d.Path)
	for _, line := range strings.SplitAfter(r.styles.FormatDiff(&display), "\n") {
		if line != "" {
			fmt.Fprint(r.bw, "      "+line)
		}
	}
}
