// Package fixer provides the fixer contract, option handling, the registry,
// and the orchestration that runs fixers over token streams until they reach
// a fixed point.
package fixer

import "github.com/yaklabco/gocsfix/pkg/tokens"

// FileContext describes the file being fixed.
type FileContext struct {
	// Path is the file path, used for messages only.
	Path string
}

// CodeSample is an input used to illustrate a fixer.
type CodeSample struct {
	Code string

	// Options configures the fixer for this sample (nil means defaults).
	Options map[string]any
}

// Definition documents a fixer for humans.
type Definition struct {
	// Summary is a one-line description.
	Summary string

	// Description is optional longer Markdown text.
	Description string

	// RiskyDescription explains how the fixer may change behavior.
	RiskyDescription string

	Samples []CodeSample
}

// Fixer rewrites a token stream for one concern.
type Fixer interface {
	// Name is the unique identifier used in configuration (e.g. "no_closing_tag").
	Name() string

	// Description returns a one-line summary.
	Description() string

	// Definition returns the full documentation.
	Definition() Definition

	// Priority orders fixers: higher runs earlier.
	Priority() int

	// IsRisky reports whether the fixer may change program behavior.
	IsRisky() bool

	// DefaultEnabled reports whether the fixer runs without configuration.
	DefaultEnabled() bool

	// IsCandidate is a cheap necessary condition for Fix to change anything.
	// It typically consults the stream's kind index.
	IsCandidate(s *tokens.Stream) bool

	// Fix rewrites the stream in place. Running it twice in a row must leave
	// the stream unchanged the second time.
	Fix(fc *FileContext, s *tokens.Stream) error
}

// Configurable is implemented by fixers that accept options.
type Configurable interface {
	Fixer

	// Options returns the option definitions.
	Options() *OptionSet

	// Configure validates raw and replaces any previous configuration. A nil
	// map selects the defaults.
	Configure(raw map[string]any) error
}
