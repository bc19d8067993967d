package sections

import (
	"github.com/nikogura/folio/pkg/content"
	"github.com/nikogura/folio/pkg/view"
)

func renderArticles(body content.ArticleList, theme content.Theme) (node *view.Node) {
	node = view.El("ul", view.Class("group/list"))
	for _, article := range body.Items {
		node.Append(articleItem(article, theme))
	}
	return node
}

func articleItem(article content.Article, theme content.Theme) (item *view.Node) {
	var date *view.Node
	if article.Date != "" {
		date = view.El("p", view.Attrs(
			"class", theme.Class("z-10 mb-2 mt-1", "typography.label", "colors.textMuted"),
			"aria-label", article.Date,
		), view.Text(article.Date))
	}

	heading := view.El("h3", view.Class(theme.Class("font-medium leading-snug", "colors.textPrimary")),
		headingLink(theme, article.URL, article.Title, view.Text(article.Title)),
	)

	item = card(theme, thumbnail(article.Image, article.Title, "120"), bodyColumn(article.Image != ""),
		date,
		heading,
		paragraph(theme.Class("spacing.contentGap", "text-sm leading-normal"), article.Summary),
		badgeList(theme, "Tags", article.Tags, true),
	)
	return item
}
