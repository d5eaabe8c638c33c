package fixer

import (
	"errors"
	"fmt"
)

// Sentinel errors for categorization via errors.Is.
var (
	// ErrInvalidConfiguration matches every *ConfigurationError.
	ErrInvalidConfiguration = errors.New("invalid fixer configuration")

	// ErrFixerFailure matches every *FailureError.
	ErrFixerFailure = errors.New("fixer failed")

	// ErrNotConverged matches every *NonConvergenceError.
	ErrNotConverged = errors.New("fixers did not converge")

	// ErrUnknownFixer is returned when configuration names a fixer that is
	// not registered.
	ErrUnknownFixer = errors.New("unknown fixer")
)

// ConfigurationError reports options a fixer rejected. It is raised before
// any fixing starts.
type ConfigurationError struct {
	Fixer  string
	Option string
	Msg    string
}

func (e *ConfigurationError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("[%s] %s", e.Fixer, e.Msg)
	}
	return fmt.Sprintf("[%s] option %q: %s", e.Fixer, e.Option, e.Msg)
}

// Unwrap lets errors.Is match ErrInvalidConfiguration.
func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// FailureError reports a fixer that returned an error or panicked while
// rewriting a file. The file's output must be discarded.
type FailureError struct {
	Fixer string
	Path  string
	Err   error
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("fixer %s failed on %s: %v", e.Fixer, e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the cause.
func (e *FailureError) Unwrap() []error {
	return []error{ErrFixerFailure, e.Err}
}

// NonConvergenceError reports a file that still changed on the last allowed
// pass.
type NonConvergenceError struct {
	Path   string
	Passes int
	// LastPass lists the fixers that changed the stream on the final pass.
	LastPass []string
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("%s: still changing after %d passes (last pass: %v)", e.Path, e.Passes, e.LastPass)
}

// Unwrap lets errors.Is match ErrNotConverged.
func (e *NonConvergenceError) Unwrap() error {
	return ErrNotConverged
}
