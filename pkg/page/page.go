// Package page composes the full portfolio document: spotlight layer,
// profile sidebar with navigation, rendered sections and footer.
package page

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nikogura/folio/pkg/config"
	"github.com/nikogura/folio/pkg/content"
	"github.com/nikogura/folio/pkg/interact"
	"github.com/nikogura/folio/pkg/sections"
	"github.com/nikogura/folio/pkg/view"
)

// ScriptName is the file name of the client script next to index.html.
const ScriptName = "folio.js"

const (
	tailwindCDN   = "https://cdn.tailwindcss.com"
	creditURL     = "https://brittanychiang.com"
	creditName    = "Brittany Chiang"
	headerClass   = "lg:sticky lg:top-0 lg:flex lg:max-h-screen lg:w-1/2 lg:flex-col lg:justify-between lg:py-24"
	stickyHeading = "sticky top-0 z-20 -mx-6 mb-8 w-[calc(100%+3rem)] bg-slate-900/75 px-6 py-5 backdrop-blur md:-mx-12 md:w-[calc(100%+6rem)] md:px-12 lg:mx-auto lg:w-full lg:px-0 lg:py-5 lg:mb-10"
	copyIconA     = "M7.5 4.5a3 3 0 013-3h4a3 3 0 013 3v6a3 3 0 01-3 3h-4a3 3 0 01-3-3v-6z"
	copyIconB     = "M3 8a3 3 0 013-3h1.5v1.5H6a1.5 1.5 0 00-1.5 1.5v6A1.5 1.5 0 006 15.5h4A1.5 1.5 0 0011.5 14v-1.5H13V14a3 3 0 01-3 3H6a3 3 0 01-3-3V8z"
)

// State is the interaction state folded into a render pass.
type State struct {
	Active  string
	Pointer interact.Position
	Copied  bool
}

// NavEntry is one in-page navigation link.
type NavEntry struct {
	ID    string
	Title string
}

// Composer assembles pages from a portfolio and a section registry.
type Composer struct {
	Portfolio content.Portfolio
	Registry  *sections.Registry
}

// NewComposer builds a composer using the default registry configured from
// the portfolio display settings.
func NewComposer(portfolio content.Portfolio) (c *Composer) {
	c = &Composer{
		Portfolio: portfolio,
		Registry:  sections.Default(sections.Options{Markdown: portfolio.Config.Display.Markdown}),
	}
	return c
}

// Renderable returns the sections that produce a view, in order. Sections
// without a renderer, or whose renderer returns nil, are left out so that
// navigation only links to anchors present in the page.
func (c *Composer) Renderable() (out []content.Section) {
	for _, s := range c.Portfolio.Sections {
		if !c.Registry.Has(s.Type) {
			continue
		}
		if c.Registry.Render(s, c.Portfolio.Theme) == nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Nav returns the navigation entries for the renderable sections.
func (c *Composer) Nav() (entries []NavEntry) {
	for _, s := range c.Renderable() {
		entries = append(entries, NavEntry{ID: s.ID, Title: s.Title})
	}
	return entries
}

// AnchorIDs lists renderable section ids in document order.
func (c *Composer) AnchorIDs() (ids []string) {
	for _, s := range c.Renderable() {
		ids = append(ids, s.ID)
	}
	return ids
}

// Document builds the <html> tree.
func (c *Composer) Document(state State) (doc *view.Node) {
	p := c.Portfolio
	theme := p.Theme

	body := view.El("body", c.dataAttrs(theme),
		c.Spotlight(state.Pointer),
		view.El("div", view.Class(theme.Class("mx-auto min-h-screen", p.Config.Layout.MaxWidth, "px-6 py-12 font-sans md:px-12 md:py-20 lg:px-24 lg:py-0")),
			view.El("div", view.Class("lg:flex lg:justify-between lg:gap-4"),
				c.Sidebar(state),
				c.Main(),
			),
		),
		view.El("script", view.Attrs("src", ScriptName, "defer", "defer")),
	)

	doc = view.El("html", view.Attrs("lang", "en", "class", "scroll-smooth"),
		c.head(),
		body,
	)
	return doc
}

// Write renders the document with doctype to w.
func (c *Composer) Write(w io.Writer, state State) (err error) {
	err = view.RenderDocument(w, c.Document(state))
	return err
}

func (c *Composer) head() (head *view.Node) {
	meta := c.Portfolio.Metadata

	title := meta.Name
	if meta.Title != "" {
		title = meta.Name + " | " + meta.Title
	}

	head = view.El("head", nil,
		view.El("meta", view.Attrs("charset", "utf-8")),
		view.El("meta", view.Attrs("name", "viewport", "content", "width=device-width, initial-scale=1")),
		view.El("meta", view.Attrs("name", "description", "content", meta.Tagline)),
		view.El("title", nil, view.Text(title)),
		view.El("script", view.Attrs("src", tailwindCDN)),
	)
	return head
}

// dataAttrs exposes the page behavior settings to the client script.
func (c *Composer) dataAttrs(theme content.Theme) (attrs []view.Attr) {
	site := c.Portfolio.Config

	thresholds := make([]string, 0, len(site.Observer.Thresholds))
	for _, t := range site.Observer.Thresholds {
		thresholds = append(thresholds, strconv.FormatFloat(t, 'f', -1, 64))
	}

	activeIndicator, activeText := navClasses(theme, true)
	inactiveIndicator, inactiveText := navClasses(theme, false)

	attrs = view.Attrs(
		"class", theme.Class("colors.background", "leading-relaxed", "colors.text", "antialiased selection:bg-teal-300 selection:text-teal-900"),
		"data-spotlight", strconv.FormatBool(site.Spotlight.Enabled),
		"data-spotlight-color", site.Spotlight.Color,
		"data-spotlight-size", site.Spotlight.Size,
		"data-smooth-scroll", strconv.FormatBool(site.SmoothScroll.Enabled),
		"data-scroll-behavior", site.SmoothScroll.Behavior,
		"data-scroll-block", site.SmoothScroll.Block,
		"data-observer", strconv.FormatBool(site.Observer.Enabled),
		"data-observer-thresholds", strings.Join(thresholds, ","),
		"data-observer-root-margin", site.Observer.RootMargin,
		"data-active-indicator", activeIndicator,
		"data-inactive-indicator", inactiveIndicator,
		"data-active-text", activeText,
		"data-inactive-text", inactiveText,
		"data-copied-window", strconv.FormatInt(interact.CopiedWindow.Milliseconds(), 10),
	)
	return attrs
}

// Gradient is the spotlight background for a pointer position.
func Gradient(spotlight config.SpotlightConfig, pos interact.Position) (css string) {
	css = fmt.Sprintf("radial-gradient(%s at %dpx %dpx, %s, transparent 80%%)", spotlight.Size, pos.X, pos.Y, spotlight.Color)
	return css
}

// Spotlight renders the pointer-following gradient layer, or nil when the
// effect is disabled.
func (c *Composer) Spotlight(pos interact.Position) (layer *view.Node) {
	spotlight := c.Portfolio.Config.Spotlight
	if !spotlight.Enabled {
		return layer
	}

	layer = view.El("div", view.Attrs(
		"id", "spotlight",
		"class", "pointer-events-none fixed inset-0 z-30 transition duration-300 lg:absolute",
		"style", "background: "+Gradient(spotlight, pos),
	))
	return layer
}

// Sidebar renders the profile header with navigation and social links.
func (c *Composer) Sidebar(state State) (header *view.Node) {
	p := c.Portfolio
	theme := p.Theme
	meta := p.Metadata

	// The name jumps to the first section.
	home := "#"
	if nav := c.Nav(); len(nav) > 0 {
		home = "#" + nav[0].ID
	}

	profile := view.El("div", nil,
		view.El("h1", view.Class(theme.Class("typography.heading", "colors.textPrimary")),
			view.El("a", view.Attrs(
				"href", home,
				"data-nav", strings.TrimPrefix(home, "#"),
				"class", theme.Class("hover:"+theme.Token("colors.accent"), "transition-colors cursor-pointer"),
			), view.Text(meta.Name)),
		),
		optional(meta.Title, view.El("h2", view.Class(theme.Class("mt-3", "typography.subheading", "colors.textPrimary")), view.Text(meta.Title))),
		optional(meta.Tagline, view.El("p", view.Class("mt-4 max-w-xs leading-normal"), view.Text(meta.Tagline))),
		c.contactRow(state.Copied),
		c.resumeLink(),
		c.Navigation(state.Active),
	)

	var social *view.Node
	if p.Config.Display.ShowSocialLinks {
		social = socialList(theme, meta.Social)
	}

	header = view.El("header", view.Class(headerClass), profile, social)
	return header
}

func (c *Composer) contactRow(copied bool) (row *view.Node) {
	theme := c.Portfolio.Theme
	email := c.Portfolio.Metadata.ContactEmail()
	if email == "" {
		return row
	}

	indicator := view.El("span", view.Attrs(
		"class", theme.Class("text-xs", "colors.accent"),
		"aria-live", "polite",
		"data-copied", "true",
	), view.Text("Copied!"))
	if !copied {
		indicator.Attrs = append(indicator.Attrs, view.Attr{Key: "hidden", Val: "hidden"})
	}

	row = view.El("div", view.Class("mt-4 flex flex-wrap items-center gap-3"),
		view.El("button", view.Attrs(
			"type", "button",
			"class", theme.Class("inline-flex items-center gap-2 rounded border border-slate-600/60 py-1.5 px-3 text-sm", "colors.textPrimary", "hover:border-slate-400/80 transition-colors"),
			"data-copy", email,
			"aria-label", "Copy email "+email,
			"title", "Click to copy",
		),
			view.El("span", view.Class("font-semibold"), view.Text(email)),
			view.El("svg", view.Attrs("xmlns", "http://www.w3.org/2000/svg", "viewBox", "0 0 20 20", "fill", "currentColor", "class", "h-4 w-4", "aria-hidden", "true"),
				view.El("path", view.Attrs("d", copyIconA)),
				view.El("path", view.Attrs("d", copyIconB)),
			),
		),
		indicator,
	)
	return row
}

func (c *Composer) resumeLink() (link *view.Node) {
	theme := c.Portfolio.Theme
	resume := c.Portfolio.Metadata.Resume
	if resume == "" {
		return link
	}

	link = view.El("div", view.Class("mt-4"),
		view.El("a", view.Attrs(
			"href", resume,
			"download", "resume.pdf",
			"class", theme.Class("inline-flex items-center gap-2 rounded border border-slate-600/60 px-3 py-1.5 text-sm font-medium", "colors.textPrimary", "hover:border-slate-400/80 transition-colors cursor-pointer"),
			"aria-label", "Download resume PDF",
		), view.Text("Download Resume")),
	)
	return link
}

// Navigation renders the in-page jump links with active highlighting.
func (c *Composer) Navigation(active string) (nav *view.Node) {
	theme := c.Portfolio.Theme

	list := view.El("ul", view.Class("mt-16 w-max"))
	for _, entry := range c.Nav() {
		indicator, text := navClasses(theme, entry.ID == active)

		link := view.El("a", view.Attrs(
			"class", "group flex items-center py-3",
			"href", "#"+entry.ID,
			"data-nav", entry.ID,
		),
			view.El("span", view.Class(indicator)),
			view.El("span", view.Class(text), view.Text(entry.Title)),
		)
		if entry.ID == active {
			link.Attrs = append(link.Attrs, view.Attr{Key: "aria-current", Val: "true"})
		}

		list.Append(view.El("li", nil, link))
	}

	nav = view.El("nav", view.Attrs("class", "nav hidden lg:block mt-16", "aria-label", "In-page jump links"), list)
	return nav
}

// navClasses returns the indicator and label classes of a nav link. The
// client script swaps between the active and inactive sets.
func navClasses(theme content.Theme, active bool) (indicator, text string) {
	if active {
		indicator = theme.Class("nav-indicator mr-4 h-px transition-all duration-300", "w-16", "colors.lineActive")
		text = theme.Class("nav-text", "typography.label", "transition-colors duration-300", "colors.textPrimary")
		return indicator, text
	}
	indicator = theme.Class("nav-indicator mr-4 h-px transition-all duration-300", "w-8", "colors.line", "group-hover:w-16")
	text = theme.Class("nav-text", "typography.label", "transition-colors duration-300", "colors.textMuted")
	return indicator, text
}

// Main renders every renderable section and the footer.
func (c *Composer) Main() (area *view.Node) {
	p := c.Portfolio
	theme := p.Theme

	area = view.El("main", view.Attrs("id", "content", "class", "pt-24 lg:w-1/2 lg:py-24"))
	for _, s := range c.Renderable() {
		area.Append(c.Section(s))
	}

	area.Append(view.El("footer", view.Class("mt-24 pt-8 border-t border-slate-700/50"),
		view.El("p", view.Class(theme.Class("text-xs", "colors.textMuted")),
			view.Text("Design inspired by "),
			view.El("a", view.Attrs(
				"class", theme.Class("font-medium", "colors.textPrimary", "hover:"+theme.Token("colors.accent"), "transition-colors"),
				"href", creditURL,
				"target", "_blank",
				"rel", "noreferrer noopener",
			), view.Text(creditName)),
			view.Text("."),
		),
	))
	return area
}

// Section wraps one rendered section in its anchor. Returns nil for
// sections without a renderer.
func (c *Composer) Section(s content.Section) (node *view.Node) {
	theme := c.Portfolio.Theme

	body := c.Registry.Render(s, theme)
	if body == nil {
		return node
	}

	var heading *view.Node
	if c.Portfolio.Config.Display.ShowSectionHeaders {
		heading = view.El("div", view.Class(stickyHeading),
			view.El("h2", view.Class(theme.Class("typography.label", "colors.textPrimary")), view.Text(s.Title)),
		)
	}

	node = view.El("section", view.Attrs(
		"id", s.ID,
		"class", theme.Class("spacing.sectionGap", "scroll-mt-16 lg:scroll-mt-24"),
		"aria-label", s.Title,
	), heading, body)
	return node
}

func optional(value string, node *view.Node) (out *view.Node) {
	if value != "" {
		out = node
	}
	return out
}
