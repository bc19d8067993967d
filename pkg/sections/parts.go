package sections

import (
	"github.com/nikogura/folio/pkg/content"
	"github.com/nikogura/folio/pkg/view"
)

const arrowPath = "M5.22 14.78a.75.75 0 001.06 0l7.22-7.22v5.69a.75.75 0 001.5 0v-7.5a.75.75 0 00-.75-.75h-7.5a.75.75 0 000 1.5h5.69l-7.22 7.22a.75.75 0 000 1.06z"

const (
	cardClass    = "group relative grid gap-4 pb-1 transition-all sm:grid-cols-8 sm:gap-8 md:gap-4 lg:hover:!opacity-100 lg:group-hover/list:opacity-50"
	overlayClass = "absolute -inset-x-4 -inset-y-4 z-0 hidden rounded-md transition motion-reduce:transition-none lg:-inset-x-6 lg:block"
	thumbClass   = "rounded border-2 border-slate-200/10 transition group-hover:border-slate-200/30 sm:order-1 sm:col-span-2 sm:translate-y-1"
	badgeClass   = "badge flex items-center rounded-full px-3 py-1 text-xs font-medium leading-5"
	buttonLink   = "inline-flex items-center gap-1 rounded border border-slate-600/60 px-2.5 py-1 text-xs font-medium text-slate-200 hover:border-slate-400/80 hover:text-teal-300 focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-teal-300/70 transition-colors"
)

// ArrowIcon is the "opens elsewhere" glyph shown after external link text.
func ArrowIcon(class string) (icon *view.Node) {
	icon = view.El("svg", view.Attrs(
		"xmlns", "http://www.w3.org/2000/svg",
		"viewBox", "0 0 20 20",
		"fill", "currentColor",
		"class", class,
		"aria-hidden", "true",
	),
		view.El("path", view.Attrs("fill-rule", "evenodd", "d", arrowPath, "clip-rule", "evenodd")),
	)
	return icon
}

// Badge renders a pill label for a technology or tag.
func Badge(theme content.Theme, label string) (badge *view.Node) {
	badge = view.El("div", view.Class(theme.Class(badgeClass, "colors.accentBg", "colors.accent")), view.Text(label))
	return badge
}

// badgeList renders labels as an unordered badge list. Returns nil when
// there are no labels and optional is set.
func badgeList(theme content.Theme, ariaLabel string, labels []string, optional bool) (list *view.Node) {
	if optional && len(labels) == 0 {
		return list
	}

	list = view.El("ul", view.Attrs(
		"class", theme.Class("spacing.contentGap", "flex flex-wrap"),
		"aria-label", ariaLabel,
	))
	for _, label := range labels {
		list.Append(view.El("li", view.Class("mr-1.5 mt-2"), Badge(theme, label)))
	}
	return list
}

// bulletList renders secondary lines. Returns nil when lines is empty.
func bulletList(theme content.Theme, lines []string) (list *view.Node) {
	if len(lines) == 0 {
		return list
	}

	list = view.El("ul", view.Class(theme.Class("spacing.contentGap", "text-xs", "colors.text")))
	for _, line := range lines {
		list.Append(view.El("li", view.Class("mb-1"), view.Text("• "+line)))
	}
	return list
}

// ExternalLink renders a bordered link button that opens in a new tab.
func ExternalLink(href, label, ariaLabel string) (link *view.Node) {
	if ariaLabel == "" {
		ariaLabel = label + " (opens in a new tab)"
	}
	link = view.El("a", view.Attrs(
		"href", href,
		"target", "_blank",
		"rel", "noreferrer noopener",
		"class", buttonLink,
		"aria-label", ariaLabel,
	),
		view.El("span", nil, view.Text(label)),
		ArrowIcon("h-3.5 w-3.5"),
	)
	return link
}

// headingLink wraps heading text in an external link, or returns a plain
// span when href is empty.
func headingLink(theme content.Theme, href, ariaLabel string, text ...*view.Node) (node *view.Node) {
	if href == "" {
		node = view.El("span", view.Class("text-base"), text...)
		return node
	}

	inner := view.El("span", nil, text...)
	inner.Append(ArrowIcon("inline-block h-4 w-4 shrink-0 transition-transform group-hover/link:-translate-y-1 group-hover/link:translate-x-1 motion-reduce:transition-none ml-1 translate-y-px"))

	node = view.El("a", view.Attrs(
		"class", theme.Class("inline-flex items-baseline font-medium leading-tight", "colors.textPrimary", "hover:"+theme.Token("colors.accent"), "group/link text-base"),
		"href", href,
		"target", "_blank",
		"rel", "noreferrer noopener",
		"aria-label", ariaLabel+" (opens in a new tab)",
	),
		view.El("span", view.Class("absolute -inset-x-4 -inset-y-2.5 hidden rounded md:-inset-x-6 md:-inset-y-4 lg:block")),
		inner,
	)
	return node
}

// thumbnail renders an optional item image. Returns nil without src.
func thumbnail(src, alt, height string) (node *view.Node) {
	if src == "" {
		return node
	}
	node = view.El("div", view.Class("z-10 sm:order-1 sm:col-span-2"),
		view.El("img", view.Attrs(
			"alt", alt,
			"loading", "lazy",
			"width", "200",
			"height", height,
			"decoding", "async",
			"class", thumbClass,
			"src", src,
		)),
	)
	return node
}

// card renders the shared list entry shell: hover overlay, optional aside
// (period header or thumbnail) and the body column.
func card(theme content.Theme, aside *view.Node, bodyClass string, body ...*view.Node) (item *view.Node) {
	item = view.El("li", view.Class(theme.Token("spacing.itemGap")),
		view.El("div", view.Class(cardClass),
			view.El("div", view.Class(theme.Class(overlayClass, "colors.hoverOverlay"))),
			aside,
			view.El("div", view.Class(bodyClass), body...),
		),
	)
	return item
}

// bodyColumn is the body class next to an optional thumbnail.
func bodyColumn(hasImage bool) (class string) {
	class = "z-10 sm:order-2 sm:col-span-8"
	if hasImage {
		class = "z-10 sm:order-2 sm:col-span-6"
	}
	return class
}

// paragraph renders an optional line. Returns nil for empty text.
func paragraph(class, text string) (node *view.Node) {
	if text == "" {
		return node
	}
	node = view.El("p", view.Class(class), view.Text(text))
	return node
}
