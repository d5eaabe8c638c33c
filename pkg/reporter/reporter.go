// Package reporter writes the outcome of a fix run as text, JSON, unified
// diffs or a summary.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/gocsfix/pkg/runner"
)

// Reporter formats and writes fix results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of changed files and any write error.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatSummary:
		return NewSummaryReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
