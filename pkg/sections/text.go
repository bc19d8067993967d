package sections

import (
	"bytes"

	"github.com/nikogura/folio/pkg/content"
	"github.com/nikogura/folio/pkg/view"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

//nolint:gochecknoglobals // Shared converter, safe for concurrent use
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Linkify,
		extension.Strikethrough,
		highlighting.NewHighlighting(
			highlighting.WithStyle("dracula"),
		),
	),
)

func renderText(body content.Text, theme content.Theme) (node *view.Node) {
	node = view.El("div", nil)
	for _, p := range body.Paragraphs {
		node.Append(view.El("p", view.Class("mb-4"), view.Text(p)))
	}
	return node
}

// renderMarkdownText converts each paragraph with goldmark. Raw HTML in the
// source is not passed through. A paragraph that fails to convert falls back
// to plain text.
func renderMarkdownText(body content.Text, theme content.Theme) (node *view.Node) {
	node = view.El("div", nil)
	for _, p := range body.Paragraphs {
		node.Append(markdownParagraph(p))
	}
	return node
}

// markdownParagraph converts one source paragraph. A single goldmark
// paragraph is unwrapped into ours; anything else becomes a div holding the
// blocks side by side, each paragraph keeping the text spacing.
func markdownParagraph(source string) (node *view.Node) {
	node = view.El("p", view.Class("mb-4"), view.Text(source))

	var buf bytes.Buffer
	err := markdown.Convert([]byte(source), &buf)
	if err != nil {
		return node
	}

	parsed, err := view.Parse(buf.String())
	if err != nil {
		return node
	}

	var blocks []*view.Node
	for _, n := range parsed {
		if n.IsElement() {
			blocks = append(blocks, n)
		}
	}

	switch {
	case len(blocks) == 0:
		return node
	case len(blocks) == 1 && blocks[0].Tag == "p":
		node = view.El("p", view.Class("mb-4"), blocks[0].Children...)
		return node
	}

	node = view.El("div", nil)
	for _, b := range blocks {
		if b.Tag == "p" {
			b = view.El("p", view.Class("mb-4"), b.Children...)
		}
		node.Append(b)
	}
	return node
}
