package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikogura/folio/pkg/view"
)

//nolint:gochecknoglobals // Lookup table
var blockTags = map[string]bool{
	"p": true, "li": true, "ul": true, "ol": true, "div": true,
	"h1": true, "h2": true, "h3": true, "header": true, "section": true,
	"blockquote": true,
}

// flattener walks a section view and lays it out as styled terminal lines.
type flattener struct {
	styles Styles
	width  int
	lines  []string
	run    strings.Builder
}

// Flatten renders node as wrapped, styled lines no wider than width.
func Flatten(node *view.Node, styles Styles, width int) (lines []string) {
	if node == nil {
		return lines
	}
	if width < 10 {
		width = 10
	}

	f := &flattener{styles: styles, width: width}
	f.walk(node, styles.Text, nil)
	f.flush()

	lines = f.lines
	// Drop trailing blank lines.
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (f *flattener) walk(n *view.Node, style lipgloss.Style, parent *view.Node) {
	if !n.IsElement() {
		f.text(n.Text, style)
		return
	}

	switch {
	case n.Tag == "svg" || n.Tag == "img" || n.Tag == "script":
		return
	case n.HasClass("sr-only"):
		return
	case n.HasClass("badge"):
		f.run.WriteString(f.styles.Badge.Render(strings.TrimSpace(n.TextContent())))
		f.run.WriteString(" ")
		return
	case n.Tag == "ul" && n.Find(func(c *view.Node) bool { return c.HasClass("badge") }) != nil:
		f.flush()
		for _, badge := range n.FindAll(func(c *view.Node) bool { return c.HasClass("badge") }) {
			f.walk(badge, style, n)
		}
		f.flush()
		return
	}

	style = f.styleFor(n, style)

	block := blockTags[n.Tag]
	if block {
		f.flush()
	}

	for _, child := range n.Children {
		f.walk(child, style, n)
	}

	if n.Tag == "a" {
		if target, _ := n.Attr("target"); target == "_blank" {
			f.run.WriteString(f.styles.Accent.Render(" ↗"))
		}
	}

	if block {
		f.flush()
	}

	// Entries of a section list are separated by a blank line.
	if n.Tag == "li" && parent != nil && parent.HasClass("group/list") {
		f.lines = append(f.lines, "")
	}
}

func (f *flattener) styleFor(n *view.Node, inherited lipgloss.Style) (style lipgloss.Style) {
	style = inherited
	switch n.Tag {
	case "h1", "h2", "h3", "strong", "b":
		style = f.styles.Heading
	case "header":
		style = f.styles.Label
	case "a":
		style = f.styles.Link
	case "em", "i":
		style = inherited.Italic(true)
	}
	return style
}

func (f *flattener) text(s string, style lipgloss.Style) {
	collapsed := strings.Join(strings.Fields(s), " ")
	if collapsed == "" {
		return
	}
	if strings.HasPrefix(s, " ") || strings.HasPrefix(s, "\n") {
		collapsed = " " + collapsed
	}
	if strings.HasSuffix(s, " ") || strings.HasSuffix(s, "\n") {
		collapsed += " "
	}
	f.run.WriteString(style.Render(collapsed))
}

// flush wraps the pending run into lines.
func (f *flattener) flush() {
	if f.run.Len() == 0 {
		return
	}
	text := strings.TrimSpace(f.run.String())
	f.run.Reset()
	if text == "" {
		return
	}

	wrapped := lipgloss.NewStyle().Width(f.width).Render(text)
	for _, line := range strings.Split(wrapped, "\n") {
		f.lines = append(f.lines, strings.TrimRight(line, " "))
	}
}
