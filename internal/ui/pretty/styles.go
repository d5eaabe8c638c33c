// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// defaultTermWidth is used when the writer is not a terminal.
const defaultTermWidth = 100

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Status styles
	Error   lipgloss.Style
	Warning lipgloss.Style

	// File and fixer components
	FilePath  lipgloss.Style
	FixerName lipgloss.Style
	Risky     lipgloss.Style
	Option    lipgloss.Style
	Code      lipgloss.Style
	Heading   lipgloss.Style

	// Diff styles
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Table styles
	TableHeader lipgloss.Style
	TableBorder lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		FilePath:  lipgloss.NewStyle().Bold(true),
		FixerName: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Risky:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Option:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Code:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Heading:   lipgloss.NewStyle().Bold(true).Underline(true),

		DiffHeader:  verbatim().Bold(true),
		DiffHunk:    verbatim().Foreground(lipgloss.Color("14")),
		DiffAdd:     verbatim().Foreground(lipgloss.Color("10")),
		DiffRemove:  verbatim().Foreground(lipgloss.Color("9")),
		DiffContext: verbatim().Foreground(lipgloss.Color("8")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableBorder: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:        plain,
		Warning:      plain,
		FilePath:     plain,
		FixerName:    plain,
		Risky:        plain,
		Option:       plain,
		Code:         plain,
		Heading:      plain,
		DiffHeader:   verbatim(),
		DiffHunk:     verbatim(),
		DiffAdd:      verbatim(),
		DiffRemove:   verbatim(),
		DiffContext:  verbatim(),
		SummaryTitle: plain,
		SummaryValue: plain,
		Success:      plain,
		Failure:      plain,
		TableHeader:  plain,
		TableBorder:  plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// verbatim returns a style that keeps tabs, so diffs show source as is.
func verbatim() lipgloss.Style {
	return lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TerminalWidth returns the width of writer when it is a terminal, or a
// default width otherwise.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
