// Package view holds the visual node tree produced by section renderers
// and composers, and renders it to HTML.
package view

import (
	"strings"
)

// Attr is one element attribute.
type Attr struct {
	Key string
	Val string
}

// Node is an element or, when Tag is empty, a text run.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Node
}

// El builds an element node. Nil children are dropped so optional parts can
// be passed inline.
func El(tag string, attrs []Attr, children ...*Node) (node *Node) {
	node = &Node{Tag: tag, Attrs: attrs}
	node.Append(children...)
	return node
}

// Text builds a text node.
func Text(s string) (node *Node) {
	node = &Node{Text: s}
	return node
}

// Attrs builds an attribute list from key/value pairs. Pairs with an empty
// value are dropped; a trailing odd key is ignored.
func Attrs(kv ...string) (attrs []Attr) {
	attrs = make([]Attr, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			continue
		}
		attrs = append(attrs, Attr{Key: kv[i], Val: kv[i+1]})
	}
	return attrs
}

// Class is shorthand for a single class attribute.
func Class(class string) (attrs []Attr) {
	attrs = Attrs("class", class)
	return attrs
}

// Append adds non-nil children.
func (n *Node) Append(children ...*Node) {
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
}

// IsElement reports whether n is an element.
func (n *Node) IsElement() (ok bool) {
	ok = n.Tag != ""
	return ok
}

// Attr returns the value of key.
func (n *Node) Attr(key string) (val string, found bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			val = a.Val
			found = true
			return val, found
		}
	}
	return val, found
}

// HasClass reports whether the class attribute contains class.
func (n *Node) HasClass(class string) (ok bool) {
	classes, found := n.Attr("class")
	if !found {
		return ok
	}
	for _, c := range strings.Fields(classes) {
		if c == class {
			ok = true
			return ok
		}
	}
	return ok
}

// Walk visits n and its descendants depth first, stopping a branch when fn
// returns false.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// FindAll returns every node under n (inclusive) matching pred.
func (n *Node) FindAll(pred func(*Node) bool) (found []*Node) {
	n.Walk(func(node *Node) bool {
		if pred(node) {
			found = append(found, node)
		}
		return true
	})
	return found
}

// Find returns the first node under n (inclusive) matching pred.
func (n *Node) Find(pred func(*Node) bool) (found *Node) {
	all := n.FindAll(pred)
	if len(all) > 0 {
		found = all[0]
	}
	return found
}

// ByTag matches elements with the given tag.
func ByTag(tag string) (pred func(*Node) bool) {
	pred = func(n *Node) bool { return n.Tag == tag }
	return pred
}

// ByAttr matches elements carrying key=val.
func ByAttr(key, val string) (pred func(*Node) bool) {
	pred = func(n *Node) bool {
		v, ok := n.Attr(key)
		return ok && v == val
	}
	return pred
}

// TextContent concatenates the text of n and its descendants.
func (n *Node) TextContent() (text string) {
	var b strings.Builder
	n.Walk(func(node *Node) bool {
		b.WriteString(node.Text)
		return true
	})
	text = b.String()
	return text
}
