// Package sections maps typed content sections to their visual structure.
//
// Each section tag has one RenderFunc registered in a Registry. Rendering a
// section whose tag has no handler yields nil: unknown types are skipped,
// never reported.
package sections

import (
	"github.com/nikogura/folio/pkg/content"
	"github.com/nikogura/folio/pkg/view"
)

// RenderFunc produces the view of one section. It must not mutate its inputs.
type RenderFunc func(section content.Section, theme content.Theme) *view.Node

// Options adjust the built-in renderers.
type Options struct {
	// Markdown renders text paragraphs as inline markdown.
	Markdown bool
}

// Registry maps section tags to render functions.
type Registry struct {
	handlers map[content.Type]RenderFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() (registry *Registry) {
	registry = &Registry{handlers: make(map[content.Type]RenderFunc)}
	return registry
}

// Default returns a registry with the built-in section types registered.
func Default(opts Options) (registry *Registry) {
	registry = NewRegistry()

	text := Handle(renderText)
	if opts.Markdown {
		text = Handle(renderMarkdownText)
	}

	registry.Register(content.TypeText, text)
	registry.Register(content.TypeExperience, Handle(renderExperience))
	registry.Register(content.TypeProject, Handle(renderProjects))
	registry.Register(content.TypeArticle, Handle(renderArticles))
	registry.Register(content.TypeCertification, Handle(renderCertifications))
	return registry
}

// Register binds fn to tag, replacing any previous handler.
func (r *Registry) Register(tag content.Type, fn RenderFunc) {
	r.handlers[tag] = fn
}

// Has reports whether tag has a handler.
func (r *Registry) Has(tag content.Type) (ok bool) {
	_, ok = r.handlers[tag]
	return ok
}

// Render dispatches on the section tag. Unknown tags render nil.
func (r *Registry) Render(section content.Section, theme content.Theme) (node *view.Node) {
	fn, ok := r.handlers[section.Type]
	if !ok {
		return node
	}
	node = fn(section, theme)
	return node
}

// Handle adapts a function over one payload variant to a RenderFunc. A
// section whose body is missing or of another variant renders as the
// variant's zero value, which is an empty container.
func Handle[B content.Body](fn func(body B, theme content.Theme) *view.Node) (render RenderFunc) {
	render = func(section content.Section, theme content.Theme) *view.Node {
		body, _ := section.Body.(B)
		return fn(body, theme)
	}
	return render
}
