package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocsfix/internal/configloader"
	"github.com/yaklabco/gocsfix/internal/logging"
	"github.com/yaklabco/gocsfix/pkg/cache"
	"github.com/yaklabco/gocsfix/pkg/config"
	"github.com/yaklabco/gocsfix/pkg/fixer"
	_ "github.com/yaklabco/gocsfix/pkg/fixer/rules" // Register built-in fixers
	"github.com/yaklabco/gocsfix/pkg/reporter"
	"github.com/yaklabco/gocsfix/pkg/runner"
)

type fixFlags struct {
	format       string
	ignore       []string
	enable       []string
	disable      []string
	showDiff     bool
	verbose      bool
	noCache      bool
	cacheFile    string
	shortOpenTag bool
	compact      bool
}

func newFixCommand(info BuildInfo) *cobra.Command {
	var cfg config.Config
	flags := &fixFlags{}

	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Fix PHP files",
		Long:  fixLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, args, info, &cfg, flags)
		},
	}

	addFixFlags(cmd, &cfg, flags)

	return cmd
}

const fixLongDescription = `Fix PHP files in place.

By default, fixes all .php, .phtml and .inc files below the current
directory. Specify paths to fix specific files or directories.

Exit codes are bit flags: 4 when some files failed to tokenize, 8 when a
dry run found files to fix, 16 for configuration errors, 32 for invalid
fixer options and 64 for fixer failures or internal errors.

Examples:
  gocsfix fix                          # Fix the current directory
  gocsfix fix src/                     # Fix the src directory
  gocsfix fix --dry-run --diff         # Show what would change
  gocsfix fix --enable logical_operators --allow-risky
  gocsfix fix --format json            # Output as JSON for CI`

func runFix(cmd *cobra.Command, args []string, info BuildInfo, cliCfg *config.Config, flags *fixFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	// Only values explicitly provided on the command line are set here.
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(flags.format)
	}
	cliCfg.Ignore = flags.ignore
	cliCfg.EnableRules = flags.enable
	cliCfg.DisableRules = flags.disable
	cliCfg.Tokenizer.ShortOpenTag = flags.shortOpenTag
	cliCfg.Cache.Path = flags.cacheFile

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}
	workDir, err := workingDir(cmd)
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
		DisableCache: flags.noCache,
		Registry:     fixer.DefaultRegistry,
	})
	if err != nil {
		return configExit(errors.Join(errors.New("failed to load configuration"), err))
	}
	cfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	engine, err := fixer.NewEngine(fixer.DefaultRegistry, cfg)
	if err != nil {
		return configExit(err)
	}
	resolution := engine.Resolution()
	if len(resolution.SkippedRisky) > 0 {
		logger.Warn("risky fixers skipped; pass --allow-risky to run them",
			logging.FieldFixers, resolution.SkippedRisky)
	}

	logger.Debug("configuration resolved",
		logging.FieldFixers, resolution.Names(),
		logging.FieldRisky, cfg.RiskyAllowed,
		logging.FieldMaxPasses, cfg.EffectiveMaxPasses(),
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldSignature, engine.Signature(),
	)

	verdicts := openCache(cfg, workDir, info, engine)
	logger.Debug("fixing", logging.FieldWorkingDir, workDir, logging.FieldPaths, args)
	pipeline := fixer.NewPipeline(engine, verdicts)

	result, err := runner.New(pipeline).Run(ctx, runner.Options{
		Paths:               args,
		WorkingDir:          workDir,
		Extensions:          runner.DefaultExtensions(),
		DetectExtensionless: true,
		ExcludeGlobs:        cfg.Ignore,
		Jobs:                cfg.Jobs,
		Config:              cfg,
	})
	if err != nil {
		return &ExitError{Code: ExitInternalError, Err: errors.Join(errors.New("fix run failed"), err)}
	}

	if verdicts != nil {
		if err := verdicts.Save(ctx); err != nil {
			logger.Warn("could not save cache", logging.FieldCache, verdicts.Path(), logging.FieldError, err)
		}
	}

	format := reporter.FormatText
	if cfg.Format != "" {
		format, err = reporter.ParseFormat(string(cfg.Format))
		if err != nil {
			return configExit(err)
		}
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode(cmd),
		DryRun:      cfg.DryRun,
		ShowDiff:    flags.showDiff,
		Verbose:     flags.verbose,
		ShowSummary: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return &ExitError{Code: ExitInternalError, Err: fmt.Errorf("report results: %w", err)}
	}

	if code := ExitCodeFromResult(result, cfg.DryRun); code != ExitSuccess {
		return &ExitError{Code: code, Err: ErrIssuesFound}
	}
	return nil
}

// openCache loads the verdict cache, or returns nil when caching is off.
// The signature covers the binary version so an upgrade invalidates it.
func openCache(cfg *config.Config, workDir string, info BuildInfo, engine *fixer.Engine) *cache.Cache {
	if !cfg.Cache.Enabled {
		return nil
	}
	logger := logging.Default()

	path := cfg.Cache.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}
	signature := cacheSignature(info.Version, engine.Signature())

	verdicts, err := cache.Load(path, signature)
	if err == nil {
		logger.Debug("cache loaded", logging.FieldCache, path, logging.FieldEntries, verdicts.Len())
		return verdicts
	}

	logger.Warn("ignoring unreadable cache", logging.FieldCache, path, logging.FieldError, err)
	verdicts, err = cache.New(path, signature)
	if err != nil {
		logger.Warn("cache disabled", logging.FieldError, err)
		return nil
	}
	return verdicts
}

func cacheSignature(version, engineSignature string) string {
	return version + ":" + engineSignature
}

func addFixFlags(cmd *cobra.Command, cfg *config.Config, flags *fixFlags) {
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "report files that need fixing without writing them")
	cmd.Flags().BoolVar(&flags.showDiff, "diff", false, "show a diff of each change (text format)")
	cmd.Flags().BoolVar(&cfg.RiskyAllowed, "allow-risky", false, "allow fixers that may change behavior")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "fixers to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "fixers to disable")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff, summary")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().IntVar(&cfg.MaxPasses, "max-passes", 0, "upper bound on fix passes per file (0 = config or default)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "do not read or write the cache")
	cmd.Flags().StringVar(&flags.cacheFile, "cache-file", "", "cache file location")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when fixing")
	cmd.Flags().BoolVar(&flags.shortOpenTag, "short-open-tag", false, "treat a bare <? as an open tag")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "list applied fixers and clean files")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "compact JSON output")
}
