package reporter

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// DryRun words the output as pending changes instead of applied ones.
	DryRun bool

	// ShowDiff prints the diff of every changed file (text format).
	ShowDiff bool

	// Verbose lists the fixers applied to each file and reports clean files.
	Verbose bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Compact disables JSON indentation.
	Compact bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowSummary: true,
	}
}

// displayPath makes path relative to WorkingDir when it lies below it.
func (o Options) displayPath(path string) string {
	if o.WorkingDir == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(o.WorkingDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
