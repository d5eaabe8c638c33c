package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocsfix/internal/ui/pretty"
	"github.com/yaklabco/gocsfix/pkg/config"
	"github.com/yaklabco/gocsfix/pkg/diff"
	"github.com/yaklabco/gocsfix/pkg/fixer"
	"github.com/yaklabco/gocsfix/pkg/phplex"
	"github.com/yaklabco/gocsfix/pkg/tokens"
)

func newDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <fixer>",
		Short: "Describe a fixer with its options and samples",
		Long: `Show the documentation of a fixer: its summary, whether it is risky,
the options it accepts, and a diff of what it does to each code sample.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := fixer.DefaultRegistry.New(args[0])
			if !ok {
				return &ExitError{
					Code: ExitConfigError,
					Err:  fmt.Errorf("%w: %q", fixer.ErrUnknownFixer, args[0]),
				}
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			out := cmd.OutOrStdout()
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), out))
			var buf bytes.Buffer
			if err := writeDescription(ctx, &buf, styles, fixer.DefaultRegistry, f); err != nil {
				return err
			}
			_, err := out.Write(buf.Bytes())
			return err
		},
	}
}

func writeDescription(ctx context.Context, w io.Writer, styles *pretty.Styles, registry *fixer.Registry, f fixer.Fixer) error {
	info := describeFixer(registry, f)
	def := f.Definition()

	fmt.Fprintln(w, styles.Heading.Render(info.Name))
	fmt.Fprintf(w, "%s\n\n", def.Summary)

	if info.Risky {
		fmt.Fprintln(w, styles.Risky.Render("Fixer is risky."))
		if def.RiskyDescription != "" {
			fmt.Fprintln(w, def.RiskyDescription)
		}
		fmt.Fprintln(w)
	}
	if !info.DefaultEnabled {
		fmt.Fprintf(w, "%s\n\n", styles.Dim.Render("Disabled by default."))
	}
	if len(info.Aliases) > 0 {
		fmt.Fprintf(w, "%s %s\n\n", styles.Dim.Render("Also known as:"), strings.Join(info.Aliases, ", "))
	}

	if def.Description != "" {
		fmt.Fprintln(w, styles.RenderMarkdown([]byte(def.Description)))
	}

	if len(info.Options) > 0 {
		fmt.Fprintln(w, styles.Bold.Render("Options:"))
		for _, opt := range info.Options {
			fmt.Fprintf(w, "  - %s (%s): %s", styles.Option.Render(opt.Name), opt.Type, opt.Description)
			if len(opt.AllowedValues) > 0 {
				fmt.Fprintf(w, " Allowed: %s.", strings.Join(opt.AllowedValues, ", "))
			}
			if opt.Required {
				fmt.Fprint(w, " Required.")
			} else {
				fmt.Fprintf(w, " Default: %v.", opt.Default)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}

	for i, sample := range def.Samples {
		d, err := runSample(ctx, registry, f.Name(), sample)
		if err != nil {
			return fmt.Errorf("sample %d: %w", i+1, err)
		}
		title := fmt.Sprintf("Example #%d", i+1)
		if len(sample.Options) > 0 {
			title += fmt.Sprintf(" (options: %v)", sample.Options)
		}
		fmt.Fprintln(w, styles.Bold.Render(title+":"))
		if d.Empty() {
			fmt.Fprintln(w, styles.Dim.Render("   (no changes)"))
		} else {
			fmt.Fprint(w, styles.FormatDiff(d))
		}
		fmt.Fprintln(w)
	}

	return nil
}

// runSample applies a fresh instance of the named fixer, alone, to a sample.
func runSample(ctx context.Context, registry *fixer.Registry, name string, sample fixer.CodeSample) (*diff.Diff, error) {
	f, ok := registry.New(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", fixer.ErrUnknownFixer, name)
	}
	if c, ok := f.(fixer.Configurable); ok {
		if err := c.Configure(sample.Options); err != nil {
			return nil, err
		}
	}

	stream, err := tokens.FromText(sample.Code, phplex.DefaultOptions())
	if err != nil {
		return nil, err
	}
	orchestrator := fixer.NewOrchestrator(config.DefaultMaxPasses)
	if _, err := orchestrator.Run(ctx, &fixer.FileContext{Path: name}, stream, []fixer.Fixer{f}); err != nil {
		return nil, err
	}
	return diff.Compute("sample.php", []byte(sample.Code), []byte(stream.GenerateCode())), nil
}
