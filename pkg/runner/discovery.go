package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// filter decides which files discovery keeps.
type filter struct {
	workDir    string
	extensions []string
	sniff      bool
	include    *matcher
	exclude    *matcher
}

func newFilter(workDir string, opts Options) (*filter, error) {
	include, err := compileGlobs(opts.IncludeGlobs)
	if err != nil {
		return nil, err
	}
	exclude, err := compileGlobs(opts.ExcludeGlobs)
	if err != nil {
		return nil, err
	}
	return &filter{
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		sniff:      opts.DetectExtensionless,
		include:    include,
		exclude:    exclude,
	}, nil
}

func (f *filter) rel(path string) string {
	rel, err := filepath.Rel(f.workDir, path)
	if err != nil {
		return path
	}
	return rel
}

func (f *filter) excludedDir(path string) bool {
	return f.exclude.match(f.rel(path))
}

func (f *filter) matchesFile(path string) bool {
	rel := f.rel(path)
	if f.exclude.match(rel) {
		return false
	}
	if !f.include.empty() && !f.include.match(rel) {
		return false
	}
	if hasMatchingExtension(path, f.extensions) {
		return true
	}
	return f.sniff && isPHPScript(path)
}

// Discover finds PHP files matching opts under the given working directory.
// It returns a deterministically sorted list of absolute file paths.
// Files named explicitly are kept even when their extension is unknown.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	flt, err := newFilter(workDir, opts)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			if !flt.exclude.match(flt.rel(absPath)) {
				add(absPath)
			}
			continue
		}

		discovered, err := walkDirectory(ctx, absPath, flt, opts.FollowSymlinks)
		if err != nil {
			return nil, err
		}
		for _, f := range discovered {
			add(f)
		}
	}

	slices.Sort(files)
	return files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walkDirectory recursively walks a directory and returns matching PHP files.
// Hidden files and directories are skipped.
func walkDirectory(ctx context.Context, root string, flt *filter, followSymlinks bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if path != root && flt.excludedDir(path) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil //nolint:nilerr // broken symlinks are skipped
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // unreadable symlink targets are skipped
			}
			if info.IsDir() {
				if !followSymlinks || flt.excludedDir(path) {
					return nil
				}
				// Walk the target: WalkDir does not descend through a symlinked root.
				sub, err := walkDirectory(ctx, realPath, flt, followSymlinks)
				if err != nil {
					return err
				}
				files = append(files, sub...)
				return nil
			}
		}

		if flt.matchesFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

func hasMatchingExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
