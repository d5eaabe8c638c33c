package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gocsfix/pkg/diff"
)

// FormatDiff renders a unified diff with one style per line kind.
func (s *Styles) FormatDiff(d *diff.Diff) string {
	if d.Empty() {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	builder.WriteString(s.DiffHeader.Render("--- a/"+path) + "\n")
	builder.WriteString(s.DiffHeader.Render("+++ b/"+path) + "\n")
	for _, h := range d.Hunks {
		builder.WriteString(s.DiffHunk.Render(fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldLines, h.NewStart, h.NewLines)))
		builder.WriteString("\n")
		for _, l := range h.Lines {
			switch l.Kind {
			case diff.Added:
				builder.WriteString(s.DiffAdd.Render("+" + l.Text))
			case diff.Removed:
				builder.WriteString(s.DiffRemove.Render("-" + l.Text))
			default:
				builder.WriteString(s.DiffContext.Render(" " + l.Text))
			}
			builder.WriteString("\n")
			if l.NoNewline {
				builder.WriteString(s.Dim.Render(`\ No newline at end of file`) + "\n")
			}
		}
	}
	return builder.String()
}
