package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocsfix/internal/configloader"
	"github.com/yaklabco/gocsfix/internal/logging"
	"github.com/yaklabco/gocsfix/pkg/config"
	"github.com/yaklabco/gocsfix/pkg/fixer"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gocsfix configuration file",
		Long: `Create a new .gocsfix.yml configuration file in the current directory
with sensible defaults. The file can be customized to enable or disable
fixers, allow risky fixers, and set fixer options.

Examples:
  gocsfix init                       Create minimal .gocsfix.yml
  gocsfix init --full                Create full config with every fixer listed
  gocsfix init --format toml         Create .gocsfix.toml instead
  gocsfix init --output custom.yml   Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			workDir, err := workingDir(cmd)
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			return runInit(workDir, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with every fixer listed")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml or toml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .gocsfix.yml or .gocsfix.toml)")

	return cmd
}

func runInit(workDir string, flags *initFlags) error {
	logger := logging.NewInteractive()

	if flags.format != "yaml" && flags.format != "toml" {
		return &ExitError{Code: ExitConfigError, Err: fmt.Errorf("invalid format %q: must be yaml or toml", flags.format)}
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".gocsfix.yml"
		if flags.format == "toml" {
			outputPath = ".gocsfix.toml"
		}
	}
	if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(workDir, outputPath)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:   flags.full,
		Format: flags.format,
	}, registryFixerInfo(fixer.DefaultRegistry))
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := configloader.WriteConfigFile(outputPath, content, flags.force); err != nil {
		if errors.Is(err, configloader.ErrConfigExists) {
			return fmt.Errorf("%w; use --force to overwrite", err)
		}
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	if flags.full {
		logger.Info("full template lists every fixer with its default options")
	}
	logger.Info("run 'gocsfix list-fixers' to see all available fixers")

	return nil
}

// registryFixerInfo adapts the registry to the template generator.
func registryFixerInfo(registry *fixer.Registry) config.FixerInfoProvider {
	return func() []config.FixerInfo {
		fixers := registry.Fixers()
		infos := make([]config.FixerInfo, 0, len(fixers))
		for _, f := range fixers {
			info := config.FixerInfo{
				Name:           f.Name(),
				Summary:        f.Description(),
				Risky:          f.IsRisky(),
				DefaultEnabled: f.DefaultEnabled(),
			}
			if c, ok := f.(fixer.Configurable); ok {
				info.Options = c.Options().Defaults()
			}
			infos = append(infos, info)
		}
		return infos
	}
}
