package pretty

import (
	"fmt"
	"strconv"
	"strings"
)

// Table layout constants.
const (
	tablePadding    = 2
	minSummaryWidth = 20
	ellipsis        = "..."
	heavySeparator  = "="
)

// FixerRow is one line of the fixer listing.
type FixerRow struct {
	Name     string
	Priority int
	Risky    bool
	Enabled  bool
	Summary  string
}

// FormatFixerTable renders fixers as an aligned table no wider than width.
// The summary column is truncated to fit.
func (s *Styles) FormatFixerTable(rows []FixerRow, width int) string {
	if len(rows) == 0 {
		return ""
	}
	if width <= 0 {
		width = defaultTermWidth
	}

	nameW, prioW := len("NAME"), len("PRIORITY")
	flagW := len("DEFAULT")
	for _, r := range rows {
		nameW = max(nameW, len(r.Name))
		prioW = max(prioW, len(strconv.Itoa(r.Priority)))
	}
	fixed := nameW + prioW + 2*flagW + 4*tablePadding
	summaryW := max(minSummaryWidth, width-fixed)

	var builder strings.Builder
	header := fmt.Sprintf("%-*s  %*s  %-*s  %-*s  %s",
		nameW, "NAME", prioW, "PRIORITY", flagW, "RISKY", flagW, "DEFAULT", "SUMMARY")
	builder.WriteString(s.TableHeader.Render(header) + "\n")
	builder.WriteString(s.TableBorder.Render(strings.Repeat(heavySeparator, min(width, fixed+summaryW))) + "\n")

	for _, r := range rows {
		risky, enabled := "", "yes"
		if r.Risky {
			risky = "yes"
		}
		if !r.Enabled {
			enabled = "no"
		}
		builder.WriteString(s.FixerName.Render(fmt.Sprintf("%-*s", nameW, r.Name)))
		builder.WriteString(fmt.Sprintf("  %*d  ", prioW, r.Priority))
		builder.WriteString(s.Risky.Render(fmt.Sprintf("%-*s", flagW, risky)))
		builder.WriteString(fmt.Sprintf("  %-*s  ", flagW, enabled))
		builder.WriteString(truncate(r.Summary, summaryW))
		builder.WriteString("\n")
	}
	return builder.String()
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= len(ellipsis) {
		return s[:width]
	}
	return s[:width-len(ellipsis)] + ellipsis
}
