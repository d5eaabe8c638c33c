package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocsfix/internal/ui/pretty"
	"github.com/yaklabco/gocsfix/pkg/fixer"
)

const formatJSON = "json"

// fixerInfo represents a fixer in JSON output.
type fixerInfo struct {
	Name           string       `json:"name"`
	Summary        string       `json:"summary"`
	Priority       int          `json:"priority"`
	Risky          bool         `json:"risky"`
	DefaultEnabled bool         `json:"defaultEnabled"`
	Aliases        []string     `json:"aliases,omitempty"`
	Options        []optionInfo `json:"options,omitempty"`
}

type optionInfo struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Description   string   `json:"description"`
	Default       any      `json:"default,omitempty"`
	Required      bool     `json:"required,omitempty"`
	AllowedValues []string `json:"allowedValues,omitempty"`
}

func newListFixersCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list-fixers",
		Short: "List available fixers",
		Long: `List all available fixers with their priority, whether they are risky,
whether they run by default, and a one-line summary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fixers := fixer.DefaultRegistry.Fixers()
			out := cmd.OutOrStdout()

			switch format {
			case formatJSON:
				return outputFixersJSON(out, fixer.DefaultRegistry, fixers)
			case "", "text":
			default:
				return &ExitError{Code: ExitConfigError, Err: fmt.Errorf("invalid format %q: must be text or json", format)}
			}

			rows := make([]pretty.FixerRow, 0, len(fixers))
			for _, f := range fixers {
				rows = append(rows, pretty.FixerRow{
					Name:     f.Name(),
					Priority: f.Priority(),
					Risky:    f.IsRisky(),
					Enabled:  f.DefaultEnabled(),
					Summary:  f.Description(),
				})
			}

			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), out))
			_, err := fmt.Fprint(out, styles.FormatFixerTable(rows, pretty.TerminalWidth(out)))
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

func describeFixer(registry *fixer.Registry, f fixer.Fixer) fixerInfo {
	info := fixerInfo{
		Name:           f.Name(),
		Summary:        f.Description(),
		Priority:       f.Priority(),
		Risky:          f.IsRisky(),
		DefaultEnabled: f.DefaultEnabled(),
		Aliases:        registry.AliasesOf(f.Name()),
	}
	if c, ok := f.(fixer.Configurable); ok {
		for _, opt := range c.Options().Options() {
			info.Options = append(info.Options, optionInfo{
				Name:          opt.Name,
				Type:          opt.Type.String(),
				Description:   opt.Description,
				Default:       opt.Default,
				Required:      opt.Default == nil,
				AllowedValues: opt.AllowedValues,
			})
		}
	}
	return info
}

// outputFixersJSON writes fixers as a JSON array.
func outputFixersJSON(w io.Writer, registry *fixer.Registry, fixers []fixer.Fixer) error {
	infos := make([]fixerInfo, 0, len(fixers))
	for _, f := range fixers {
		infos = append(infos, describeFixer(registry, f))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding fixers: %w", err)
	}
	return nil
}
