package interact

import "github.com/nikogura/folio/pkg/config"

// Event is a navigation trigger whose default action can be suppressed.
type Event interface {
	PreventDefault()
}

// ScrollOptions mirror the scrollIntoView arguments.
type ScrollOptions struct {
	Behavior string
	Block    string
}

// Element is a scroll target.
type Element interface {
	ScrollIntoView(opts ScrollOptions)
}

// Document resolves anchor ids to elements.
type Document interface {
	ElementByID(id string) (Element, bool)
}

// Navigator handles in-page anchor navigation.
type Navigator struct {
	doc     Document
	enabled bool
	opts    ScrollOptions
}

// NewNavigator builds a navigator over doc using the smooth scroll settings.
func NewNavigator(doc Document, cfg config.SmoothScrollConfig) (nav *Navigator) {
	nav = &Navigator{
		doc:     doc,
		enabled: cfg.Enabled,
		opts: ScrollOptions{
			Behavior: cfg.Behavior,
			Block:    cfg.Block,
		},
	}
	return nav
}

// OnNavigate always suppresses the default jump. When enabled and the
// target exists it scrolls the target into view. A missing target is
// ignored. When disabled no scroll is issued at all.
func (n *Navigator) OnNavigate(event Event, targetID string) {
	if event != nil {
		event.PreventDefault()
	}

	if !n.enabled || n.doc == nil {
		return
	}

	el, ok := n.doc.ElementByID(targetID)
	if !ok || el == nil {
		return
	}

	el.ScrollIntoView(n.opts)
}
