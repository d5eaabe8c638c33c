package reporter

import (
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/gocsfix/internal/ui/pretty"
	"github.com/yaklabco/gocsfix/pkg/runner"
)

// SummaryReporter prints only aggregate statistics and per-fixer counts.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	if result == nil {
		result = &runner.Result{}
	}
	if _, err := fmt.Fprint(r.out, r.styles.FormatSummary(result.Stats, r.opts.DryRun)); err != nil {
		return 0, err
	}
	return result.Stats.FilesChanged, nil
}
