package pretty

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/gocsfix/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "Fixed 3 of 12 files, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, dryRun bool) string {
	var parts []string

	switch {
	case stats.FilesChanged == 0:
		parts = append(parts, s.Success.Render("No changes needed")+
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles))))
	case dryRun:
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d of %d %s need fixing",
			stats.FilesChanged, stats.FilesDiscovered, plural(stats.FilesDiscovered, wordFile, wordFiles))))
	default:
		parts = append(parts, s.Success.Render(fmt.Sprintf("Fixed %d of %d %s",
			stats.FilesChanged, stats.FilesDiscovered, plural(stats.FilesDiscovered, wordFile, wordFiles))))
	}

	if stats.FilesCached > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d cached", stats.FilesCached)))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats, dryRun bool) string {
	var builder strings.Builder

	row := func(label string, value string) {
		builder.WriteString(fmt.Sprintf("  %-20s%s\n", label+":", value))
	}

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row("Files checked", s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)))
	if stats.FilesCached > 0 {
		row("From cache", s.SummaryValue.Render(strconv.Itoa(stats.FilesCached)))
	}
	changedLabel := "Files fixed"
	if dryRun {
		changedLabel = "Files to fix"
	}
	row(changedLabel, s.Success.Render(strconv.Itoa(stats.FilesChanged)))
	if stats.FilesSkipped > 0 {
		row("Files skipped", s.Warning.Render(strconv.Itoa(stats.FilesSkipped)))
	}

	if stats.FilesErrored > 0 {
		row("Files failed", s.Failure.Render(strconv.Itoa(stats.FilesErrored)))
		if stats.TokenizeErrors > 0 {
			row("  Tokenize errors", s.Error.Render(strconv.Itoa(stats.TokenizeErrors)))
		}
		if stats.FixerFailures > 0 {
			row("  Fixer failures", s.Error.Render(strconv.Itoa(stats.FixerFailures)))
		}
		if stats.NotConverged > 0 {
			row("  Not converged", s.Error.Render(strconv.Itoa(stats.NotConverged)))
		}
	}

	if len(stats.FixerCounts) > 0 {
		builder.WriteString("\n")
		builder.WriteString(s.SummaryTitle.Render("Fixers applied"))
		builder.WriteString("\n")
		for _, name := range sortedByCount(stats.FixerCounts) {
			builder.WriteString(fmt.Sprintf("  %s %s\n",
				s.FixerName.Render(fmt.Sprintf("%-40s", name)),
				s.SummaryValue.Render(strconv.Itoa(stats.FixerCounts[name]))))
		}
	}

	builder.WriteString("\n")
	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Some files could not be fixed"))
	case dryRun && stats.FilesChanged > 0:
		builder.WriteString(s.Warning.Render("Files need fixing"))
	default:
		builder.WriteString(s.Success.Render("All files are clean"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// sortedByCount orders fixer names by count descending, then by name.
func sortedByCount(counts map[string]int) []string {
	names := slices.Collect(maps.Keys(counts))
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(counts[b], counts[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return names
}
