package sections

import (
	"github.com/nikogura/folio/pkg/content"
	"github.com/nikogura/folio/pkg/view"
)

func renderProjects(body content.ProjectList, theme content.Theme) (node *view.Node) {
	node = view.El("ul", view.Class("group/list"))
	for _, project := range body.Items {
		node.Append(projectItem(project, theme))
	}
	return node
}

func projectItem(project content.Project, theme content.Theme) (item *view.Node) {
	links := project.ProjectLinks()

	// The heading links to the first listed URL, when there is one.
	var href string
	if len(links) > 0 {
		href = links[0].URL
	}

	heading := view.El("h3", view.Class(theme.Class("font-medium leading-snug", "colors.textPrimary")),
		headingLink(theme, href, project.Title, view.Text(project.Title)),
	)

	var linkRow *view.Node
	if len(links) > 0 {
		linkRow = view.El("div", view.Class("mt-3 flex flex-wrap gap-2"))
		for _, link := range links {
			linkRow.Append(ExternalLink(link.URL, link.Label, ""))
		}
	}

	item = card(theme, thumbnail(project.Image, project.Title, "48"), bodyColumn(project.Image != ""),
		heading,
		paragraph(theme.Class("spacing.contentGap", "text-sm leading-normal"), project.Description),
		bulletList(theme, project.Highlights),
		linkRow,
		badgeList(theme, "Technologies used:", project.TechStack, true),
	)
	return item
}
