package pretty

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// RenderMarkdown renders fixer documentation written in Markdown as styled
// terminal text. Only the block and inline elements used in fixer docs are
// styled; anything else falls back to its plain text.
func (s *Styles) RenderMarkdown(src []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	r := &mdRenderer{styles: s, src: src}
	r.blocks(doc, "")
	return strings.TrimRight(r.out.String(), "\n") + "\n"
}

type mdRenderer struct {
	styles *Styles
	src    []byte
	out    strings.Builder
}

func (r *mdRenderer) blocks(parent ast.Node, indent string) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		r.block(n, indent)
	}
}

func (r *mdRenderer) block(n ast.Node, indent string) {
	switch node := n.(type) {
	case *ast.Heading:
		r.line(indent, r.styles.Heading.Render(r.inlines(node)))
		r.out.WriteString("\n")
	case *ast.Paragraph, *ast.TextBlock:
		for _, l := range strings.Split(r.inlines(node), "\n") {
			r.line(indent, l)
		}
		if _, ok := node.(*ast.Paragraph); ok {
			r.out.WriteString("\n")
		}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := node.Lines()
		for i := range lines.Len() {
			seg := lines.At(i)
			r.line(indent+"    ", r.styles.Code.Render(strings.TrimRight(string(seg.Value(r.src)), "\n")))
		}
		r.out.WriteString("\n")
	case *ast.List:
		num := node.Start
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			marker := "- "
			if node.IsOrdered() {
				marker = strconv.Itoa(num) + ". "
				num++
			}
			r.out.WriteString(indent + marker)
			r.listItem(item, indent+strings.Repeat(" ", len(marker)))
		}
		r.out.WriteString("\n")
	case *ast.Blockquote:
		r.blocks(node, indent+"> ")
	case *ast.ThematicBreak:
		r.line(indent, r.styles.Dim.Render("---"))
		r.out.WriteString("\n")
	default:
		r.blocks(node, indent)
	}
}

// listItem writes an item whose marker is already on the line.
func (r *mdRenderer) listItem(item ast.Node, indent string) {
	first := true
	for n := item.FirstChild(); n != nil; n = n.NextSibling() {
		if first {
			switch n.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				lines := strings.Split(r.inlines(n), "\n")
				r.out.WriteString(lines[0] + "\n")
				for _, l := range lines[1:] {
					r.line(indent, l)
				}
				first = false
				continue
			}
			r.out.WriteString("\n")
			first = false
		}
		r.block(n, indent)
	}
	if first {
		r.out.WriteString("\n")
	}
}

func (r *mdRenderer) line(indent, s string) {
	r.out.WriteString(indent + s + "\n")
}

func (r *mdRenderer) inlines(parent ast.Node) string {
	var sb strings.Builder
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		sb.WriteString(r.inline(n))
	}
	return sb.String()
}

func (r *mdRenderer) inline(n ast.Node) string {
	switch node := n.(type) {
	case *ast.Text:
		s := string(node.Segment.Value(r.src))
		switch {
		case node.HardLineBreak():
			s += "\n"
		case node.SoftLineBreak():
			s += " "
		}
		return s
	case *ast.String:
		return string(node.Value)
	case *ast.CodeSpan:
		return r.styles.Code.Render(r.inlines(node))
	case *ast.Emphasis:
		return r.styles.Bold.Render(r.inlines(node))
	case *ast.AutoLink:
		return string(node.URL(r.src))
	case *ast.Link:
		label := r.inlines(node)
		if url := string(node.Destination); url != "" && url != label {
			return label + " (" + url + ")"
		}
		return label
	default:
		return r.inlines(node)
	}
}
