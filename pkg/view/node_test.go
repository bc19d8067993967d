package view

import (
	"bytes"
	"strings"
	"testing"
)

func TestElDropsNilChildren(t *testing.T) {
	var missing *Node
	n := El("div", nil, Text("a"), missing, El("span", nil))

	if len(n.Children) != 2 {
		t.Errorf("Expected 2 children, got %d", len(n.Children))
	}
}

func TestAttrsDropsEmptyValues(t *testing.T) {
	attrs := Attrs("href", "https://x", "title", "", "odd")

	if len(attrs) != 1 || attrs[0].Key != "href" {
		t.Errorf("Unexpected attrs: %+v", attrs)
	}
}

func TestRenderEscapes(t *testing.T) {
	n := El("p", Attrs("class", "a b", "title", `"quoted"`), Text("<script>alert(1)</script> & more"))

	out, err := RenderString(n)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := `<p class="a b" title="&#34;quoted&#34;">&lt;script&gt;alert(1)&lt;/script&gt; &amp; more</p>`
	if out != want {
		t.Errorf("Expected %s, got %s", want, out)
	}
}

func TestRenderNil(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, nil)
	if err != nil {
		t.Errorf("Expected no error rendering nil, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected empty output, got %q", buf.String())
	}
}

func TestRenderDocument(t *testing.T) {
	var buf bytes.Buffer

	err := RenderDocument(&buf, El("html", Attrs("lang", "en"), El("body", nil, Text("hi"))))
	if err != nil {
		t.Fatalf("RenderDocument failed: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "<!DOCTYPE html>") {
		t.Errorf("Expected doctype prefix, got %q", buf.String())
	}
}

func TestParseRoundTrip(t *testing.T) {
	nodes, err := Parse(`<p>Hello <em>world</em></p><p class="x">second</p>`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(nodes) != 2 {
		t.Fatalf("Expected 2 nodes, got %d", len(nodes))
	}

	if got := nodes[0].TextContent(); got != "Hello world" {
		t.Errorf("Expected 'Hello world', got %q", got)
	}

	if !nodes[1].HasClass("x") {
		t.Error("Expected class x on second paragraph")
	}
}

func TestFind(t *testing.T) {
	tree := El("div", nil,
		El("ul", Attrs("aria-label", "Technologies used"),
			El("li", nil, Text("Go")),
			El("li", nil, Text("SQL")),
		),
	)

	items := tree.FindAll(ByTag("li"))
	if len(items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(items))
	}

	list := tree.Find(ByAttr("aria-label", "Technologies used"))
	if list == nil || list.TextContent() != "GoSQL" {
		t.Errorf("Expected technologies list, got %+v", list)
	}

	if tree.Find(ByTag("img")) != nil {
		t.Error("Expected no img")
	}
}
