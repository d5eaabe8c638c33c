package cli

import (
	"errors"
	"fmt"

	"github.com/yaklabco/gocsfix/internal/configloader"
	"github.com/yaklabco/gocsfix/pkg/fixer"
	"github.com/yaklabco/gocsfix/pkg/runner"
)

// Exit codes for gocsfix. The run outcome codes are bit flags and combine,
// so a dry run that found changes and hit a tokenize error exits with 12.
const (
	// ExitSuccess indicates nothing needed fixing or every fix was applied.
	ExitSuccess = 0

	// ExitTokenizeError indicates some files could not be tokenized.
	ExitTokenizeError = 4

	// ExitChangesFound indicates a dry run found files that need fixing.
	ExitChangesFound = 8

	// ExitConfigError indicates an invalid configuration file or flag.
	ExitConfigError = 16

	// ExitFixerConfigError indicates a fixer rejected its options.
	ExitFixerConfigError = 32

	// ExitInternalError indicates a fixer failure, non-convergence or an
	// unexpected error.
	ExitInternalError = 64
)

// ErrIssuesFound signals a non-zero exit code that was already reported.
var ErrIssuesFound = errors.New("issues found")

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromResult combines the outcome flags of a run.
func ExitCodeFromResult(result *runner.Result, dryRun bool) int {
	if result == nil {
		return ExitSuccess
	}

	code := ExitSuccess
	stats := result.Stats
	if stats.TokenizeErrors > 0 {
		code |= ExitTokenizeError
	}
	if dryRun && stats.FilesChanged > 0 {
		code |= ExitChangesFound
	}
	if stats.FixerFailures > 0 || stats.NotConverged > 0 || len(result.Errors) > 0 {
		code |= ExitInternalError
	}
	if stats.FilesErrored > stats.TokenizeErrors+stats.FixerFailures+stats.NotConverged {
		code |= ExitInternalError
	}
	return code
}

// ExitCodeFromError maps a command error to an exit code.
func ExitCodeFromError(err error) int {
	var exitErr *ExitError
	var validationErr *configloader.ValidationError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, fixer.ErrInvalidConfiguration):
		return ExitFixerConfigError
	case errors.As(err, &validationErr), errors.Is(err, fixer.ErrUnknownFixer):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}

// configExit wraps a configuration failure with its exit code.
func configExit(err error) error {
	code := ExitCodeFromError(err)
	if code == ExitInternalError {
		code = ExitConfigError
	}
	return &ExitError{Code: code, Err: err}
}
