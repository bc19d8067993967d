package content

import "github.com/nikogura/folio/pkg/config"

// Type is the tag selecting how a section renders.
type Type string

// Known section tags.
const (
	TypeText          Type = "text"
	TypeExperience    Type = "experience"
	TypeProject       Type = "project"
	TypeArticle       Type = "article"
	TypeCertification Type = "certification"
)

// Portfolio is the complete content document.
type Portfolio struct {
	Metadata Metadata    `yaml:"metadata"`
	Theme    Theme       `yaml:"theme"`
	Sections []Section   `yaml:"sections"`
	Config   config.Site `yaml:"config"`
}

// Metadata represents personal information shown in the sidebar.
type Metadata struct {
	Name    string            `yaml:"name"`
	Title   string            `yaml:"title"`
	Tagline string            `yaml:"tagline"`
	Email   string            `yaml:"email"`
	Contact Contact           `yaml:"contact"`
	Social  map[string]string `yaml:"social"`
	Resume  string            `yaml:"resume"`
}

// Contact holds contact details. Email here is used when Metadata.Email is empty.
type Contact struct {
	Email string `yaml:"email"`
}

// Section is one titled content block of the page.
type Section struct {
	ID    string
	Type  Type
	Title string
	// Body is nil for unknown types.
	Body Body
}

// Body is the typed payload of a section. The set of implementations is closed.
type Body interface {
	sectionType() Type
}

// Text is the payload of a text section.
type Text struct {
	Paragraphs []string
}

// ExperienceList is the payload of an experience section.
type ExperienceList struct {
	Items []Experience
}

// ProjectList is the payload of a project section.
type ProjectList struct {
	Items []Project
}

// ArticleList is the payload of an article section.
type ArticleList struct {
	Items []Article
}

// CertificationList is the payload of a certification section.
type CertificationList struct {
	Items []Certification
}

func (Text) sectionType() Type { return TypeText }
func (ExperienceList) sectionType() Type { return TypeExperience }
func (ProjectList) sectionType() Type { return TypeProject }
func (ArticleList) sectionType() Type { return TypeArticle }
func (CertificationList) sectionType() Type { return TypeCertification }

// Experience represents a single job.
type Experience struct {
	Period       string   `yaml:"period"`
	Title        string   `yaml:"title"`
	Company      string   `yaml:"company"`
	CompanyURL   string   `yaml:"companyUrl"`
	Description  string   `yaml:"description"`
	Achievements []string `yaml:"achievements"`
	Technologies []string `yaml:"technologies"`
}

// Link is a labelled external URL.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Project represents a portfolio project.
type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Highlights  []string `yaml:"highlights"`
	TechStack   []string `yaml:"techStack"`
	Links       []Link   `yaml:"links"`
	GithubURL   string   `yaml:"githubUrl"`
	Image       string   `yaml:"image"`
}

// ProjectLinks returns the project's links, mapping the legacy single
// githubUrl to one "GitHub" link when no links are listed.
func (p Project) ProjectLinks() (links []Link) {
	if len(p.Links) > 0 {
		links = p.Links
		return links
	}
	if p.GithubURL != "" {
		links = []Link{{Label: "GitHub", URL: p.GithubURL}}
	}
	return links
}

// Article represents a blog post or publication.
type Article struct {
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Date    string   `yaml:"date"`
	URL     string   `yaml:"url"`
	Tags    []string `yaml:"tags"`
	Image   string   `yaml:"image"`
}

// Certification represents a professional certification.
type Certification struct {
	Name          string   `yaml:"name"`
	Issuer        string   `yaml:"issuer"`
	Date          string   `yaml:"date"`
	Description   string   `yaml:"description"`
	CredentialID  string   `yaml:"credentialId"`
	CredentialURL string   `yaml:"credentialUrl"`
	Skills        []string `yaml:"skills"`
}
