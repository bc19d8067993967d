package sections

import (
	"github.com/nikogura/folio/pkg/content"
	"github.com/nikogura/folio/pkg/view"
)

func renderCertifications(body content.CertificationList, theme content.Theme) (node *view.Node) {
	node = view.El("ul", view.Class("group/list"))
	for _, cert := range body.Items {
		node.Append(certificationItem(cert, theme))
	}
	return node
}

func certificationItem(cert content.Certification, theme content.Theme) (item *view.Node) {
	var date *view.Node
	if cert.Date != "" {
		date = view.El("header", view.Attrs(
			"class", theme.Class("z-10 mb-2 mt-1 sm:col-span-2", "typography.label", "colors.textMuted"),
			"aria-label", cert.Date,
		), view.Text(cert.Date))
	}

	name := view.El("div", nil, view.Text(cert.Name))
	if cert.Issuer != "" {
		name.Append(view.Text(" · "), view.El("span", view.Class("inline-block"), view.Text(cert.Issuer)))
	}

	heading := view.El("h3", view.Class(theme.Class("font-medium leading-snug", "colors.textPrimary")),
		headingLink(theme, cert.CredentialURL, cert.Name, name),
	)

	var credential *view.Node
	if cert.CredentialID != "" {
		credential = paragraph(theme.Class("spacing.contentGap", "text-xs", "colors.textMuted"), "Credential ID: "+cert.CredentialID)
	}

	item = card(theme, date, "z-10 sm:col-span-6",
		heading,
		paragraph(theme.Class("spacing.contentGap", "text-sm leading-normal"), cert.Description),
		credential,
		badgeList(theme, "Skills", cert.Skills, true),
	)
	return item
}
