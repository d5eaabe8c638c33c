// Package main is the entry point for the gocsfix CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gocsfix/internal/cli"
	"github.com/yaklabco/gocsfix/internal/logging"

	// Import fixers to register them via init().
	_ "github.com/yaklabco/gocsfix/pkg/fixer/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err == nil {
		return cli.ExitSuccess
	}

	// ErrIssuesFound only carries the exit code; the report already said why.
	if !errors.Is(err, cli.ErrIssuesFound) {
		logging.Default().Error("command failed", logging.FieldError, err)
	}
	return cli.ExitCodeFromError(err)
}
