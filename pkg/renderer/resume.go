package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gosimple/slug"
	"github.com/maruel/natural"
	"github.com/nikogura/folio/pkg/content"
)

// ResumeFilenames returns the markdown and PDF base names for a person,
// e.g. "jane-doe-resume.md".
func ResumeFilenames(name string) (markdownName, pdfName string) {
	base := slug.Make(name)
	if base == "" {
		base = "portfolio"
	}
	base += "-resume"
	markdownName = base + ".md"
	pdfName = base + ".pdf"
	return markdownName, pdfName
}

// ResumeMarkdown renders a markdown resume from the portfolio: header,
// summary from text sections, then experience, projects, articles and
// certifications in document order. Unknown sections are left out.
func ResumeMarkdown(p content.Portfolio) (md string) {
	var b strings.Builder
	meta := p.Metadata

	fmt.Fprintf(&b, "# %s\n\n", meta.Name)

	var contact []string
	if meta.Title != "" {
		contact = append(contact, meta.Title)
	}
	if email := meta.ContactEmail(); email != "" {
		contact = append(contact, fmt.Sprintf("[%s](mailto:%s)", email, email))
	}
	for _, key := range sortedKeys(meta.Social) {
		contact = append(contact, fmt.Sprintf("[%s](%s)", key, meta.Social[key]))
	}
	if len(contact) > 0 {
		b.WriteString(strings.Join(contact, " | "))
		b.WriteString("\n\n")
	}

	if meta.Tagline != "" {
		fmt.Fprintf(&b, "*%s*\n\n", meta.Tagline)
	}

	for _, section := range p.Sections {
		switch body := section.Body.(type) {
		case content.Text:
			writeText(&b, section.Title, body)
		case content.ExperienceList:
			writeExperience(&b, section.Title, body)
		case content.ProjectList:
			writeProjects(&b, section.Title, body)
		case content.ArticleList:
			writeArticles(&b, section.Title, body)
		case content.CertificationList:
			writeCertifications(&b, section.Title, body)
		}
	}

	md = strings.TrimRight(b.String(), "\n") + "\n"
	return md
}

func writeText(b *strings.Builder, title string, body content.Text) {
	if len(body.Paragraphs) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, p := range body.Paragraphs {
		fmt.Fprintf(b, "%s\n\n", p)
	}
}

func writeExperience(b *strings.Builder, title string, body content.ExperienceList) {
	if len(body.Items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, exp := range body.Items {
		company := exp.Company
		if company != "" && exp.CompanyURL != "" {
			company = fmt.Sprintf("[%s](%s)", company, exp.CompanyURL)
		}

		var parts []string
		if company != "" {
			parts = append(parts, "**"+company+"**")
		}
		parts = append(parts, "*"+exp.Title+"*")
		if exp.Period != "" {
			parts = append(parts, exp.Period)
		}
		b.WriteString(strings.Join(parts, " | "))
		b.WriteString("\n\n")

		if exp.Description != "" {
			fmt.Fprintf(b, "%s\n\n", exp.Description)
		}
		writeBullets(b, exp.Achievements)
		writeTags(b, "Technologies", exp.Technologies)
	}
}

func writeProjects(b *strings.Builder, title string, body content.ProjectList) {
	if len(body.Items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, project := range body.Items {
		name := project.Title
		if links := project.ProjectLinks(); len(links) > 0 {
			name = fmt.Sprintf("[%s](%s)", project.Title, links[0].URL)
		}
		line := "**" + name + "**"
		if project.Description != "" {
			line += " - " + project.Description
		}
		fmt.Fprintf(b, "%s\n\n", line)
		writeBullets(b, project.Highlights)
		writeTags(b, "Stack", project.TechStack)
	}
}

func writeArticles(b *strings.Builder, title string, body content.ArticleList) {
	if len(body.Items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, article := range body.Items {
		name := article.Title
		if article.URL != "" {
			name = fmt.Sprintf("[%s](%s)", article.Title, article.URL)
		}
		line := "- " + name
		if article.Date != "" {
			line += " (" + article.Date + ")"
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

func writeCertifications(b *strings.Builder, title string, body content.CertificationList) {
	if len(body.Items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, cert := range body.Items {
		name := cert.Name
		if cert.CredentialURL != "" {
			name = fmt.Sprintf("[%s](%s)", cert.Name, cert.CredentialURL)
		}
		parts := []string{"**" + name + "**"}
		if cert.Issuer != "" {
			parts = append(parts, cert.Issuer)
		}
		if cert.Date != "" {
			parts = append(parts, cert.Date)
		}
		b.WriteString("- " + strings.Join(parts, " | ") + "\n")
	}
	b.WriteString("\n")
}

func writeBullets(b *strings.Builder, lines []string) {
	if len(lines) == 0 {
		return
	}
	for _, line := range lines {
		fmt.Fprintf(b, "- %s\n", line)
	}
	b.WriteString("\n")
}

func writeTags(b *strings.Builder, label string, tags []string) {
	if len(tags) == 0 {
		return
	}
	fmt.Fprintf(b, "*%s:* %s\n\n", label, strings.Join(tags, ", "))
}

func sortedKeys(m map[string]string) (keys []string) {
	for k, v := range m {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Sort(natural.StringSlice(keys))
	return keys
}
