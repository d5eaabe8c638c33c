package runner

import (
	"errors"

	"github.com/yaklabco/gocsfix/pkg/fixer"
)

// FileOutcome wraps a PipelineResult with its path.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the pipeline result for this file. It may be set
	// together with Error when fixing failed after tokenization.
	Result *fixer.PipelineResult

	// Error is set if the file could not be processed.
	Error error
}

// Changed reports whether the fixers changed this file.
func (o FileOutcome) Changed() bool {
	return o.Error == nil && o.Result != nil && o.Result.Modified
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files processed without error.
	FilesProcessed int

	// FilesCached is the number of files the cache showed as already fixed.
	FilesCached int

	// FilesChanged is the number of files the fixers changed.
	FilesChanged int

	// FilesWritten is the number of files written back to disk.
	FilesWritten int

	// FilesSkipped is the number of files skipped after a concurrent edit.
	FilesSkipped int

	// FilesErrored is the number of files that could not be fixed.
	FilesErrored int

	// TokenizeErrors, FixerFailures and NotConverged break down FilesErrored.
	TokenizeErrors int
	FixerFailures  int
	NotConverged   int

	// FixerCounts maps a fixer name to the number of files it changed.
	FixerCounts map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// HasChanges reports whether any file was (or in dry-run would be) changed.
func (r *Result) HasChanges() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesChanged > 0
}

// HasErrors reports whether any file failed.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// Changed returns the outcomes of changed files.
func (r *Result) Changed() []FileOutcome {
	var out []FileOutcome
	for _, o := range r.Files {
		if o.Changed() {
			out = append(out, o)
		}
	}
	return out
}

func newStats() Stats {
	return Stats{FixerCounts: make(map[string]int)}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		switch {
		case fixer.IsTokenizeError(outcome.Error):
			r.Stats.TokenizeErrors++
		case errors.Is(outcome.Error, fixer.ErrNotConverged):
			r.Stats.NotConverged++
		case errors.Is(outcome.Error, fixer.ErrFixerFailure):
			r.Stats.FixerFailures++
		}
		return
	}

	if outcome.Result == nil {
		return
	}
	res := outcome.Result

	r.Stats.FilesProcessed++
	if res.Cached {
		r.Stats.FilesCached++
	}
	if res.Skipped {
		r.Stats.FilesSkipped++
	}
	if res.Written {
		r.Stats.FilesWritten++
	}
	if res.Modified {
		r.Stats.FilesChanged++
		for _, name := range res.AppliedFixers() {
			r.Stats.FixerCounts[name]++
		}
	}
}
