package sections

import (
	"github.com/nikogura/folio/pkg/content"
	"github.com/nikogura/folio/pkg/view"
)

func renderExperience(body content.ExperienceList, theme content.Theme) (node *view.Node) {
	node = view.El("ol", view.Class("group/list"))
	for _, exp := range body.Items {
		node.Append(experienceItem(exp, theme))
	}
	return node
}

func experienceItem(exp content.Experience, theme content.Theme) (item *view.Node) {
	period := view.El("header", view.Attrs(
		"class", theme.Class("z-10 mb-2 mt-1 sm:col-span-2", "typography.label", "colors.textMuted"),
		"aria-label", exp.Period,
	), view.Text(exp.Period))

	title := view.El("div", nil, view.Text(exp.Title))
	if exp.Company != "" {
		title.Append(view.Text(" · "), view.El("span", view.Class("inline-block"), view.Text(exp.Company)))
	}

	label := exp.Title
	if exp.Company != "" {
		label = exp.Title + " at " + exp.Company
	}

	heading := view.El("h3", view.Class(theme.Class("font-medium leading-snug", "colors.textPrimary")),
		headingLink(theme, exp.CompanyURL, label, title),
	)

	item = card(theme, period, "z-10 sm:col-span-6",
		heading,
		paragraph(theme.Class("spacing.contentGap", "text-sm leading-normal"), exp.Description),
		bulletList(theme, exp.Achievements),
		badgeList(theme, "Technologies used", exp.Technologies, true),
	)
	return item
}
