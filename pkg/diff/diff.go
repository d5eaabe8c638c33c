// Package diff renders line-based unified diffs of fixed files.
package diff

import (
	"fmt"
	"strings"
)

// contextLines is the number of unchanged lines shown around a change.
const contextLines = 3

// LineKind tells whether a diff line is kept, added or removed.
type LineKind uint8

const (
	Context LineKind = iota
	Added
	Removed
)

func (k LineKind) prefix() byte {
	switch k {
	case Added:
		return '+'
	case Removed:
		return '-'
	default:
		return ' '
	}
}

// Line is one line of a hunk.
type Line struct {
	Kind LineKind
	Text string
	// NoNewline marks the last line of a file that lacks a trailing newline.
	NoNewline bool
}

// Hunk is a contiguous region of change with surrounding context.
// Start positions are 1-based.
type Hunk struct {
	OldStart, OldLines int
	NewStart, NewLines int
	Lines              []Line
}

// Diff is the unified diff of one file.
type Diff struct {
	Path    string
	Hunks   []Hunk
	Added   int
	Removed int
}

type srcLine struct {
	text      string
	noNewline bool
}

func split(content []byte) []srcLine {
	if len(content) == 0 {
		return nil
	}
	parts := strings.SplitAfter(string(content), "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	out := make([]srcLine, len(parts))
	for i, p := range parts {
		if strings.HasSuffix(p, "\n") {
			out[i] = srcLine{text: p[:len(p)-1]}
		} else {
			out[i] = srcLine{text: p, noNewline: true}
		}
	}
	return out
}

// Compute returns the diff from before to after, or nil when they are equal.
func Compute(path string, before, after []byte) *Diff {
	if string(before) == string(after) {
		return nil
	}
	a, b := split(before), split(after)
	ops := script(a, b)

	d := &Diff{Path: path}
	for _, op := range ops {
		switch op.kind {
		case Added:
			d.Added++
		case Removed:
			d.Removed++
		}
	}
	d.Hunks = hunks(ops)
	return d
}

type op struct {
	kind       LineKind
	line       srcLine
	oldN, newN int // 0-based positions before this op
}

// maxTableCells bounds the LCS table. Changed regions larger than this are
// rendered as a whole-region replacement instead.
const maxTableCells = 1 << 22

// script builds an edit script from the longest common subsequence. Common
// prefix and suffix are peeled off first so typical fixer output, which
// touches few lines, keeps the table small.
func script(a, b []srcLine) []op {
	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(a)-prefix && suffix < len(b)-prefix && a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}

	var ops []op
	oldN, newN := 0, 0
	emit := func(kind LineKind, l srcLine) {
		ops = append(ops, op{kind: kind, line: l, oldN: oldN, newN: newN})
		if kind != Added {
			oldN++
		}
		if kind != Removed {
			newN++
		}
	}

	for _, l := range a[:prefix] {
		emit(Context, l)
	}
	ma, mb := a[prefix:len(a)-suffix], b[prefix:len(b)-suffix]
	if (len(ma)+1)*(len(mb)+1) > maxTableCells {
		for _, l := range ma {
			emit(Removed, l)
		}
		for _, l := range mb {
			emit(Added, l)
		}
	} else {
		middle(ma, mb, emit)
	}
	for _, l := range a[len(a)-suffix:] {
		emit(Context, l)
	}
	return reorder(ops)
}

// middle walks the LCS table of the changed region, kept in one flat slice
// of (n+1)*(m+1) cells.
func middle(ma, mb []srcLine, emit func(LineKind, srcLine)) {
	n, m := len(ma), len(mb)
	w := m + 1
	lcs := make([]int32, (n+1)*w)
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if ma[i] == mb[j] {
				lcs[i*w+j] = lcs[(i+1)*w+j+1] + 1
			} else {
				lcs[i*w+j] = max(lcs[(i+1)*w+j], lcs[i*w+j+1])
			}
		}
	}

	i, j := 0, 0
	for i < n || j < m {
		switch {
		case i < n && j < m && ma[i] == mb[j]:
			emit(Context, ma[i])
			i++
			j++
		case j < m && (i == n || lcs[i*w+j+1] >= lcs[(i+1)*w+j]):
			emit(Added, mb[j])
			j++
		default:
			emit(Removed, ma[i])
			i++
		}
	}
}

// reorder moves removals ahead of additions inside each run of changes,
// matching the layout of conventional diff tools.
func reorder(ops []op) []op {
	for start := 0; start < len(ops); {
		if ops[start].kind == Context {
			start++
			continue
		}
		end := start
		for end < len(ops) && ops[end].kind != Context {
			end++
		}
		var removed, added []op
		for _, o := range ops[start:end] {
			if o.kind == Removed {
				removed = append(removed, o)
			} else {
				added = append(added, o)
			}
		}
		copy(ops[start:], append(removed, added...))
		start = end
	}
	return ops
}

func hunks(ops []op) []Hunk {
	var out []Hunk
	for i := 0; i < len(ops); {
		if ops[i].kind == Context {
			i++
			continue
		}
		start := max(i-contextLines, 0)
		end := i
		for end < len(ops) {
			if ops[end].kind != Context {
				end++
				continue
			}
			run := end
			for run < len(ops) && ops[run].kind == Context {
				run++
			}
			if run == len(ops) || run-end > 2*contextLines {
				end = min(end+contextLines, len(ops))
				break
			}
			end = run
		}

		h := Hunk{OldStart: ops[start].oldN + 1, NewStart: ops[start].newN + 1}
		for _, o := range ops[start:end] {
			h.Lines = append(h.Lines, Line{Kind: o.kind, Text: o.line.text, NoNewline: o.line.noNewline})
			if o.kind != Added {
				h.OldLines++
			}
			if o.kind != Removed {
				h.NewLines++
			}
		}
		if h.OldLines == 0 {
			h.OldStart--
		}
		if h.NewLines == 0 {
			h.NewStart--
		}
		out = append(out, h)
		i = end
	}
	return out
}

// Empty reports whether the diff has no hunks.
func (d *Diff) Empty() bool {
	return d == nil || len(d.Hunks) == 0
}

// String renders the diff in unified format with file headers.
func (d *Diff) String() string {
	if d.Empty() {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n+++ b/%s\n", path, path)
	for _, h := range d.Hunks {
		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldLines, h.NewStart, h.NewLines)
		for _, l := range h.Lines {
			sb.WriteByte(l.Kind.prefix())
			sb.WriteString(l.Text)
			sb.WriteByte('\n')
			if l.NoNewline {
				sb.WriteString("\\ No newline at end of file\n")
			}
		}
	}
	return sb.String()
}
