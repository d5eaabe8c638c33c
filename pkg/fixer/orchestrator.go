package fixer

import (
	"context"
	"fmt"
	"slices"

	"github.com/yaklabco/gocsfix/internal/logging"
	"github.com/yaklabco/gocsfix/pkg/config"
	"github.com/yaklabco/gocsfix/pkg/tokens"
)

// RunResult is the change log of one orchestrator run.
type RunResult struct {
	// Passes is the number of passes executed.
	Passes int

	// Converged is true when the last pass changed nothing.
	Converged bool

	// Applied lists fixers that changed the stream, in order of first change.
	Applied []string

	// PassLog lists, per pass, the fixers that changed the stream.
	PassLog [][]string
}

// Changed reports whether any fixer changed the stream.
func (r *RunResult) Changed() bool {
	return len(r.Applied) > 0
}

// Orchestrator runs an ordered fixer list over a stream until a fixed point.
type Orchestrator struct {
	// MaxPasses caps the loop; values below config.MinMaxPasses use
	// config.DefaultMaxPasses.
	MaxPasses int
}

// NewOrchestrator returns an orchestrator with the given pass cap.
func NewOrchestrator(maxPasses int) *Orchestrator {
	return &Orchestrator{MaxPasses: maxPasses}
}

func (o *Orchestrator) maxPasses() int {
	if o == nil || o.MaxPasses < config.MinMaxPasses {
		return config.DefaultMaxPasses
	}
	return o.MaxPasses
}

// Run applies fixers to s. Fixers are sorted by priority (highest first,
// ties by name) and each is skipped when IsCandidate is false. After a
// changing fixer the stream is compacted and, if needed, re-tokenized, so
// the next fixer sees a consistent stream.
//
// A pass that changes nothing ends the run. If every allowed pass changed
// something, Run returns the result together with a *NonConvergenceError.
// A fixer error or panic aborts the run with a *FailureError.
func (o *Orchestrator) Run(ctx context.Context, fc *FileContext, s *tokens.Stream, fixers []Fixer) (*RunResult, error) {
	ordered := slices.Clone(fixers)
	SortFixers(ordered)

	logger := logging.FromContext(ctx)
	result := &RunResult{}
	seen := make(map[string]bool)
	limit := o.maxPasses()

	for pass := 1; pass <= limit; pass++ {
		var changedBy []string

		for _, f := range ordered {
			select {
			case <-ctx.Done():
				return result, fmt.Errorf("fixing cancelled: %w", ctx.Err())
			default:
			}

			if !f.IsCandidate(s) {
				continue
			}

			s.ClearChanged()
			if err := runFixer(f, fc, s); err != nil {
				logger.Debug("fixer failed", logging.FieldFixer, f.Name(), logging.FieldError, err)
				return result, &FailureError{Fixer: f.Name(), Path: fc.Path, Err: err}
			}
			if !s.IsChanged() {
				continue
			}

			if err := settle(s); err != nil {
				return result, &FailureError{Fixer: f.Name(), Path: fc.Path, Err: fmt.Errorf("produced unparsable code: %w", err)}
			}
			changedBy = append(changedBy, f.Name())
			if !seen[f.Name()] {
				seen[f.Name()] = true
				result.Applied = append(result.Applied, f.Name())
			}
		}

		result.Passes = pass
		result.PassLog = append(result.PassLog, changedBy)
		logger.Debug("fix pass", logging.FieldPass, pass, logging.FieldFixers, changedBy)

		if len(changedBy) == 0 {
			result.Converged = true
			return result, nil
		}
	}

	return result, &NonConvergenceError{
		Path:     fc.Path,
		Passes:   result.Passes,
		LastPass: result.PassLog[len(result.PassLog)-1],
	}
}

// runFixer calls Fix and turns a panic into an error.
func runFixer(f Fixer, fc *FileContext, s *tokens.Stream) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("panic: %w", e)
				return
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return f.Fix(fc, s)
}

// settle compacts cleared tokens and re-lexes when a mutation may have
// changed token boundaries.
func settle(s *tokens.Stream) error {
	if s.NeedsRetokenize() {
		return s.Retokenize()
	}
	s.ClearEmpty()
	return nil
}
