package fixer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/yaklabco/gocsfix/pkg/cache"
	"github.com/yaklabco/gocsfix/pkg/config"
	"github.com/yaklabco/gocsfix/pkg/diff"
	"github.com/yaklabco/gocsfix/pkg/fsutil"
	"github.com/yaklabco/gocsfix/pkg/phplex"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// PipelineResult is the outcome of processing one file.
type PipelineResult struct {
	// FileResult is nil when the file was served from the cache.
	*FileResult

	// Path is the file path that was processed.
	Path string

	// OriginalInfo is the file state before processing.
	OriginalInfo *fsutil.FileInfo

	// Modified is true when the fixers changed the content.
	Modified bool

	// Diff is set whenever the content changed.
	Diff *diff.Diff

	// Cached is true when the cache showed the file needs no fixing.
	Cached bool

	// Skipped is true if the file was left alone, e.g. after a concurrent edit.
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupCreated is true if a backup was created for this file.
	BackupCreated bool

	// Written is true if the file was written to disk.
	Written bool
}

// Summary returns a short human-readable status.
func (pr *PipelineResult) Summary() string {
	switch {
	case pr.Skipped:
		return "skipped: " + pr.SkipReason
	case pr.Written && pr.BackupCreated:
		return "fixed (backup created)"
	case pr.Written:
		return "fixed"
	case pr.Modified:
		return "changes pending"
	case pr.Cached:
		return "ok (cached)"
	default:
		return "ok"
	}
}

// AppliedFixers lists the fixers that changed the file, in order of first change.
func (pr *PipelineResult) AppliedFixers() []string {
	if pr.FileResult == nil || pr.Run == nil {
		return nil
	}
	return pr.Run.Applied
}

// PipelineOptions controls how results are committed.
type PipelineOptions struct {
	// DryRun generates diffs without writing files.
	DryRun bool

	// Backup configures backup behavior.
	Backup fsutil.BackupConfig
}

// PipelineOptionsFromConfig derives PipelineOptions from cfg.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return PipelineOptions{
		DryRun: cfg.DryRun,
		Backup: fsutil.BackupConfig{
			Enabled: cfg.Backups.Enabled && !cfg.NoBackups,
			Mode:    fsutil.BackupMode(cfg.Backups.Mode),
		},
	}
}

// Pipeline processes files safely: it never writes a file that failed to
// fix, never overwrites a file edited behind its back, and always replaces
// files atomically.
type Pipeline struct {
	Engine *Engine

	// Cache is optional; nil disables caching.
	Cache *cache.Cache
}

// NewPipeline creates a pipeline around engine with an optional cache.
func NewPipeline(engine *Engine, c *cache.Cache) *Pipeline {
	return &Pipeline{Engine: engine, Cache: c}
}

// ProcessFile runs the full pipeline for one file:
//  1. Read and hash the file.
//  2. Return early when the cache says the content is already fixed.
//  3. Fix the content.
//  4. Produce a diff; in dry-run mode stop here.
//  5. Check for concurrent modifications.
//  6. Create a backup if enabled.
//  7. Write the fixed content atomically and record it in the cache.
//
// Tokenize errors, fixer failures and non-convergence are returned with the
// partial result; the file is left untouched and dropped from the cache.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, opts PipelineOptions) (*PipelineResult, error) {
	result := &PipelineResult{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}
	result.OriginalInfo = info
	hash := info.HashHex()

	if p.Cache != nil && p.Cache.Fresh(path, hash) {
		result.Cached = true
		return result, nil
	}

	fr, err := p.Engine.FixContent(ctx, path, content)
	result.FileResult = fr
	if err != nil {
		if p.Cache != nil {
			p.Cache.Forget(path)
		}
		return result, err
	}

	if !fr.Changed() {
		if p.Cache != nil {
			p.Cache.Store(path, hash)
		}
		return result, nil
	}
	result.Modified = true
	result.Diff = diff.Compute(path, fr.Original, fr.Fixed)

	if opts.DryRun {
		return result, nil
	}

	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
	if err != nil {
		return nil, fmt.Errorf("create backup: %w", err)
	}
	result.BackupCreated = created

	if err := fsutil.WriteAtomic(ctx, path, fr.Fixed, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	if p.Cache != nil {
		p.Cache.Store(path, fsutil.HashContent(fr.Fixed))
	}
	return result, nil
}

// ProcessContent fixes in-memory content without file I/O or caching.
func (p *Pipeline) ProcessContent(ctx context.Context, path string, content []byte) (*PipelineResult, error) {
	result := &PipelineResult{Path: path}

	fr, err := p.Engine.FixContent(ctx, path, content)
	result.FileResult = fr
	if err != nil {
		return result, err
	}
	if fr.Changed() {
		result.Modified = true
		result.Diff = diff.Compute(path, fr.Original, fr.Fixed)
	}
	return result, nil
}

func categorizeError(err error) error {
	switch {
	case errors.Is(err, fsutil.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fsutil.ErrPermissionDenied), errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}

// IsTokenizeError reports whether err came from the tokenizer.
func IsTokenizeError(err error) bool {
	return errors.Is(err, phplex.ErrTokenize)
}
