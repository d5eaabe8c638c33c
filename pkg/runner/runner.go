package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/gocsfix/internal/logging"
	"github.com/yaklabco/gocsfix/pkg/fixer"
)

// Runner fixes many files through a fixer.Pipeline.
type Runner struct {
	// Pipeline handles per-file processing with safety guarantees.
	Pipeline *fixer.Pipeline
}

// New creates a new Runner with the given pipeline.
func New(pipeline *fixer.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run discovers files under opts.Paths and processes them concurrently.
// Per-file errors are recorded in the outcomes and never stop the batch.
// Outcomes are ordered by path regardless of completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	return r.RunFiles(ctx, files, opts)
}

// RunFiles processes an already discovered, sorted list of files.
func (r *Runner) RunFiles(ctx context.Context, files []string, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))
	logger.Debug("fixing files", logging.FieldFilesDiscovered, len(files), logging.FieldJobs, jobs)

	pipelineOpts := fixer.PipelineOptionsFromConfig(opts.Config)

	outcomes := make([]FileOutcome, len(files))
	done := make([]bool, len(files))

	var group errgroup.Group
	group.SetLimit(jobs)
	for i, path := range files {
		if ctx.Err() != nil {
			break
		}
		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			outcomes[i] = r.processFile(ctx, path, pipelineOpts)
			done[i] = true
			return nil
		})
	}
	_ = group.Wait()

	for i, outcome := range outcomes {
		if done[i] {
			result.accumulate(outcome)
		}
	}

	logger.Debug("fixing done",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesChanged, result.Stats.FilesChanged,
		logging.FieldFilesErrored, result.Stats.FilesErrored)

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) processFile(ctx context.Context, path string, opts fixer.PipelineOptions) FileOutcome {
	outcome := FileOutcome{Path: path}
	ctx = logging.WithFile(ctx, path)

	pr, err := r.Pipeline.ProcessFile(ctx, path, opts)
	outcome.Result = pr
	if err != nil {
		outcome.Error = err
		logging.FromContext(ctx).Debug("file failed", logging.FieldError, err)
		return outcome
	}

	logging.FromContext(ctx).Debug("file processed",
		logging.FieldCached, pr.Cached,
		logging.FieldChanged, pr.Modified,
		logging.FieldFixers, pr.AppliedFixers())
	return outcome
}
