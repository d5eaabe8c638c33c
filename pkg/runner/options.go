// Package runner discovers PHP files and fixes them in parallel.
package runner

import "github.com/yaklabco/gocsfix/pkg/config"

// Options controls multi-file fixing behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// treated as PHP. Defaults to DefaultExtensions().
	Extensions []string

	// DetectExtensionless sniffs files without an extension (shebang and
	// content) and includes the ones detected as PHP.
	DetectExtensionless bool

	// IncludeGlobs restrict discovery to matching paths, relative to WorkingDir.
	// Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs skip matching files or directories. Config ignore
	// patterns and CLI excludes are merged here.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the default set of PHP file extensions.
func DefaultExtensions() []string {
	return []string{".php", ".phtml", ".inc"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
