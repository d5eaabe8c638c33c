package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gocsfix/internal/ui/pretty"
)

// HelpFormatter renders Cobra help with the same styles as the rest of
// the output: headings bold, commands and flags colored, types dimmed.
type HelpFormatter struct {
	styles *pretty.Styles
}

// NewHelpFormatter creates a help formatter for the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{styles: pretty.NewStyles(pretty.IsColorEnabled(colorMode, writer))}
}

func (h *HelpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"heading":    h.styles.Heading.Render,
		"command":    h.styles.Bold.Render,
		"subcommand": h.styles.FixerName.Render,
		"dim":        h.styles.Dim.Render,
		"flags":      h.flagUsages,
		"rpad":       rpad,
		"join":       strings.Join,
		"trimRight":  trimTrailingWhitespaces,
	}
}

const usageTemplate = `{{ heading "Usage:" }}
  {{if .Runnable}}{{ command .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ command .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ heading "Aliases:" }}
  {{ dim (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{if or .Runnable .HasSubCommands}}{{ command .CommandPath }}

{{end}}{{with (or .Long .Short)}}{{ trimRight . }}

{{end}}` + usageTemplate

// flagUsages styles pflag's usage block line by line.
func (h *HelpFormatter) flagUsages(flags interface{ FlagUsages() string }) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.flagLine(line)
	}
	return strings.Join(lines, "\n")
}

// flagLine styles "  -f, --flag type   description": the flag names are
// colored and the type placeholder dimmed.
func (h *HelpFormatter) flagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	split := strings.Index(trimmed, "   ")
	if split < 0 {
		return line
	}
	spec, desc := trimmed[:split], strings.TrimLeft(trimmed[split:], " ")
	pad := len(trimmed) - len(spec) - len(desc)

	fields := strings.Fields(spec)
	for i, field := range fields {
		if strings.HasPrefix(field, "-") {
			name, comma := strings.CutSuffix(field, ",")
			fields[i] = h.styles.Option.Render(name)
			if comma {
				fields[i] += ","
			}
		} else {
			fields[i] = h.styles.Dim.Render(field)
		}
	}
	return indent + strings.Join(fields, " ") + strings.Repeat(" ", pad) + desc
}

// ApplyToCommand installs the styled templates on cmd; subcommands inherit them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := h.funcs()

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		tmpl, err := template.New("usage").Funcs(funcs).Parse(usageTemplate)
		if err != nil {
			return fmt.Errorf("parse usage template: %w", err)
		}
		return tmpl.Execute(command.OutOrStdout(), command)
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		tmpl, err := template.New("help").Funcs(funcs).Parse(helpTemplate)
		if err != nil {
			command.PrintErrln(err)
			return
		}
		if err := tmpl.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
