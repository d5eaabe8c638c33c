package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"

	"github.com/yaklabco/gocsfix/pkg/fixer"
	"github.com/yaklabco/gocsfix/pkg/runner"
)

// ReportVersion is the schema version of the JSON report.
const ReportVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	DryRun  bool             `json:"dryRun"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results. Clean files are
// omitted unless Verbose is set.
type JSONFileResult struct {
	Path          string   `json:"path"`
	AppliedFixers []string `json:"appliedFixers,omitempty"`
	Passes        int      `json:"passes,omitempty"`
	Diff          string   `json:"diff,omitempty"`
	Written       bool     `json:"written,omitempty"`
	Cached        bool     `json:"cached,omitempty"`
	Skipped       string   `json:"skipped,omitempty"`
	Error         string   `json:"error,omitempty"`
	ErrorKind     string   `json:"errorKind,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked int            `json:"filesChecked"`
	FilesChanged int            `json:"filesChanged"`
	FilesWritten int            `json:"filesWritten"`
	FilesCached  int            `json:"filesCached"`
	FilesSkipped int            `json:"filesSkipped"`
	FilesErrored int            `json:"filesErrored"`
	FixerCounts  map[string]int `json:"fixerCounts"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.FilesChanged, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: ReportVersion,
		DryRun:  r.opts.DryRun,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{FixerCounts: make(map[string]int)},
	}
	if result == nil {
		return output
	}

	stats := result.Stats
	output.Summary.FilesChecked = stats.FilesDiscovered
	output.Summary.FilesChanged = stats.FilesChanged
	output.Summary.FilesWritten = stats.FilesWritten
	output.Summary.FilesCached = stats.FilesCached
	output.Summary.FilesSkipped = stats.FilesSkipped
	output.Summary.FilesErrored = stats.FilesErrored
	maps.Copy(output.Summary.FixerCounts, stats.FixerCounts)

	for _, file := range result.Files {
		entry := JSONFileResult{Path: r.opts.displayPath(file.Path)}

		if file.Error != nil {
			entry.Error = file.Error.Error()
			entry.ErrorKind = errorKind(file.Error)
			output.Files = append(output.Files, entry)
			continue
		}

		res := file.Result
		if res == nil || (!res.Modified && !res.Skipped && !r.opts.Verbose) {
			continue
		}

		entry.AppliedFixers = res.AppliedFixers()
		entry.Written = res.Written
		entry.Cached = res.Cached
		entry.Skipped = res.SkipReason
		if res.FileResult != nil && res.Run != nil {
			entry.Passes = res.Run.Passes
		}
		if !res.Diff.Empty() {
			display := *res.Diff
			display.Path = entry.Path
			entry.Diff = display.String()
		}
		output.Files = append(output.Files, entry)
	}

	return output
}

// errorKind names the failure category of a per-file error.
func errorKind(err error) string {
	switch {
	case fixer.IsTokenizeError(err):
		return "tokenize"
	case errors.Is(err, fixer.ErrNotConverged):
		return "not_converged"
	case errors.Is(err, fixer.ErrFixerFailure):
		return "fixer_failure"
	case errors.Is(err, fixer.ErrFileNotFound), errors.Is(err, fixer.ErrPermissionDenied):
		return "io"
	default:
		return "internal"
	}
}
