// Package cli provides the Cobra command structure for gocsfix.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocsfix/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gocsfix command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "gocsfix",
		Short: "A PHP coding standards fixer",
		Long: `gocsfix rewrites PHP source files to follow coding standards.

Each fixer handles one concern and works on the token stream of the file.
Fixers run in priority order and are repeated until the file stops
changing. Files are only written when every fixer succeeded, and risky
fixers that may change program behavior must be allowed explicitly.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "path to config file")
	rootCmd.PersistentFlags().StringP("chdir", "C", "", "run as if started in this directory")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newFixCommand(info))
	rootCmd.AddCommand(newListFixersCommand())
	rootCmd.AddCommand(newDescribeCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// workingDir returns the --chdir value, or the process working directory.
func workingDir(cmd *cobra.Command) (string, error) {
	dir, err := cmd.Flags().GetString("chdir")
	if err == nil && dir != "" {
		return dir, nil
	}
	return os.Getwd()
}

func colorMode(cmd *cobra.Command) string {
	mode, err := cmd.Flags().GetString("color")
	if err != nil || mode == "" {
		return "auto"
	}
	return mode
}
