package preview

import (
	"strings"

	"github.com/nikogura/folio/pkg/page"
)

// block is the line range of one section in the scrolled content.
type block struct {
	id    string
	title string
	start int
	end   int
}

// layout is the flattened content pane.
type layout struct {
	lines  []string
	blocks []block
}

// buildLayout flattens every renderable section in order. Sections without
// a renderer are skipped.
func buildLayout(c *page.Composer, styles Styles, width int) (l layout) {
	p := c.Portfolio

	for _, s := range c.Renderable() {
		body := c.Registry.Render(s, p.Theme)
		if body == nil {
			continue
		}

		start := len(l.lines)
		if p.Config.Display.ShowSectionHeaders {
			l.lines = append(l.lines, styles.Primary.Bold(true).Render(strings.ToUpper(s.Title)), "")
		}
		l.lines = append(l.lines, Flatten(body, styles, width)...)
		l.blocks = append(l.blocks, block{id: s.ID, title: s.Title, start: start, end: len(l.lines)})

		// Gap between sections.
		l.lines = append(l.lines, "", "")
	}

	l.lines = append(l.lines, styles.Muted.Render("Design inspired by Brittany Chiang."))
	return l
}

func (l layout) block(id string) (b block, found bool) {
	for _, candidate := range l.blocks {
		if candidate.id == id {
			b = candidate
			found = true
			return b, found
		}
	}
	return b, found
}

func (l layout) content() (s string) {
	s = strings.Join(l.lines, "\n")
	return s
}
