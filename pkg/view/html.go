package view

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes n as HTML.
func Render(w io.Writer, n *Node) (err error) {
	if n == nil {
		return err
	}

	err = html.Render(w, toHTML(n))
	if err != nil {
		err = errors.Wrap(err, "failed to render html")
		return err
	}

	return err
}

// RenderString renders n to a string.
func RenderString(n *Node) (out string, err error) {
	var buf bytes.Buffer
	err = Render(&buf, n)
	out = buf.String()
	return out, err
}

// RenderDocument writes a complete document with doctype.
func RenderDocument(w io.Writer, root *Node) (err error) {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(toHTML(root))

	err = html.Render(w, doc)
	if err != nil {
		err = errors.Wrap(err, "failed to render document")
		return err
	}

	return err
}

func toHTML(n *Node) (out *html.Node) {
	if !n.IsElement() {
		out = &html.Node{Type: html.TextNode, Data: n.Text}
		return out
	}

	out = &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	for _, a := range n.Attrs {
		out.Attr = append(out.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	for _, child := range n.Children {
		out.AppendChild(toHTML(child))
	}
	return out
}

// Parse parses an HTML fragment in body context into nodes. It is the
// inverse of Render for the element, attribute and text subset.
func Parse(fragment string) (nodes []*Node, err error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}

	var parsed []*html.Node
	parsed, err = html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		err = errors.Wrap(err, "failed to parse html fragment")
		return nodes, err
	}

	for _, p := range parsed {
		if node := fromHTML(p); node != nil {
			nodes = append(nodes, node)
		}
	}

	return nodes, err
}

func fromHTML(h *html.Node) (n *Node) {
	switch h.Type {
	case html.TextNode:
		n = Text(h.Data)
	case html.ElementNode:
		n = &Node{Tag: h.Data}
		for _, a := range h.Attr {
			n.Attrs = append(n.Attrs, Attr{Key: a.Key, Val: a.Val})
		}
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			n.Append(fromHTML(c))
		}
	}
	return n
}
