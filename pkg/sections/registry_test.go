package sections

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nikogura/folio/pkg/content"
	"github.com/nikogura/folio/pkg/view"
)

func render(t *testing.T, registry *Registry, section content.Section) (out string) {
	t.Helper()

	out, err := view.RenderString(registry.Render(section, content.DefaultTheme()))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return out
}

func TestRenderUnknownType(t *testing.T) {
	registry := Default(Options{})

	tests := []struct {
		name    string
		section content.Section
	}{
		{name: "bogus tag", section: content.Section{ID: "x", Type: "bogus"}},
		{name: "empty tag", section: content.Section{ID: "y"}},
		{name: "bogus tag with body", section: content.Section{ID: "z", Type: "bogus", Body: content.Text{Paragraphs: []string{"no"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := registry.Render(tt.section, content.DefaultTheme())
			if node != nil {
				t.Errorf("Expected nil for unknown type, got %+v", node)
			}
		})
	}
}

func TestRenderEmptyPayloads(t *testing.T) {
	registry := Default(Options{})

	// Every known type renders an empty container for an empty or missing payload.
	for _, tag := range []content.Type{
		content.TypeText,
		content.TypeExperience,
		content.TypeProject,
		content.TypeArticle,
		content.TypeCertification,
	} {
		t.Run(string(tag), func(t *testing.T) {
			node := registry.Render(content.Section{ID: "s", Type: tag}, content.DefaultTheme())
			if node == nil {
				t.Fatal("Expected a container, got nil")
			}
			if len(node.Children) != 0 {
				t.Errorf("Expected empty container, got %d children", len(node.Children))
			}
		})
	}
}

func TestScenarioAboutAndBogus(t *testing.T) {
	doc := `
metadata:
  name: Test
sections:
  - id: about
    type: text
    title: About
    content: ["Hi"]
  - id: x
    type: bogus
    title: Mystery
`
	portfolio, err := content.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	registry := Default(Options{})

	var out strings.Builder
	for _, section := range portfolio.Sections {
		html := render(t, registry, section)
		out.WriteString(html)
		if section.ID == "x" && html != "" {
			t.Errorf("Expected nothing for bogus section, got %q", html)
		}
	}

	if !strings.Contains(out.String(), "<p class=\"mb-4\">Hi</p>") {
		t.Errorf("Expected about paragraph, got %q", out.String())
	}
	if strings.Contains(out.String(), "Mystery") {
		t.Error("Expected no output for bogus section")
	}
}

func TestExperienceOptionalFields(t *testing.T) {
	registry := Default(Options{})

	minimal := content.Section{ID: "jobs", Type: content.TypeExperience, Body: content.ExperienceList{Items: []content.Experience{
		{Period: "2020", Title: "Engineer"},
	}}}

	node := registry.Render(minimal, content.DefaultTheme())

	if node.Find(view.ByTag("a")) != nil {
		t.Error("Expected no link without companyUrl")
	}
	if node.Find(view.ByAttr("aria-label", "Technologies used")) != nil {
		t.Error("Expected no technologies list without technologies")
	}
	if len(node.FindAll(view.ByTag("ul"))) != 0 {
		t.Error("Expected no achievement list without achievements")
	}

	full := content.Section{ID: "jobs", Type: content.TypeExperience, Body: content.ExperienceList{Items: []content.Experience{
		{
			Period:       "2020",
			Title:        "Engineer",
			Company:      "Acme",
			CompanyURL:   "https://acme.example",
			Achievements: []string{"Shipped"},
			Technologies: []string{"Go", "SQL"},
		},
	}}}

	node = registry.Render(full, content.DefaultTheme())

	link := node.Find(view.ByTag("a"))
	if link == nil {
		t.Fatal("Expected company link")
	}
	if href, _ := link.Attr("href"); href != "https://acme.example" {
		t.Errorf("Expected company href, got %q", href)
	}

	badges := node.FindAll(func(n *view.Node) bool { return n.HasClass("badge") })
	if len(badges) != 2 {
		t.Errorf("Expected 2 badges, got %d", len(badges))
	}

	if !strings.Contains(node.TextContent(), "Shipped") {
		t.Error("Expected achievement text")
	}
}

func TestProjectLinks(t *testing.T) {
	registry := Default(Options{})

	tests := []struct {
		name    string
		project content.Project
		want    []string
	}{
		{
			name:    "no links",
			project: content.Project{Title: "Quiet"},
		},
		{
			name:    "legacy githubUrl",
			project: content.Project{Title: "Tool", GithubURL: "https://github.com/x/tool"},
			want:    []string{"GitHub"},
		},
		{
			name: "links win over githubUrl",
			project: content.Project{
				Title:     "Both",
				GithubURL: "https://github.com/x/both",
				Links:     []content.Link{{Label: "Docs", URL: "https://docs.example"}, {Label: "Source", URL: "https://src.example"}},
			},
			want: []string{"Docs", "Source"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section := content.Section{ID: "p", Type: content.TypeProject, Body: content.ProjectList{Items: []content.Project{tt.project}}}
			node := registry.Render(section, content.DefaultTheme())

			buttons := node.FindAll(func(n *view.Node) bool {
				return n.Tag == "a" && n.HasClass("rounded")
			})
			if len(buttons) != len(tt.want) {
				t.Fatalf("Expected %d link buttons, got %d", len(tt.want), len(buttons))
			}
			for i, label := range tt.want {
				if got := buttons[i].TextContent(); got != label {
					t.Errorf("Expected link %d to be %q, got %q", i, label, got)
				}
			}

			if len(tt.want) == 0 && node.Find(view.ByTag("a")) != nil {
				t.Error("Expected no anchor for project without links")
			}
			if node.Find(view.ByTag("img")) != nil {
				t.Error("Expected no image for project without image")
			}
		})
	}
}

func TestArticleOptionalFields(t *testing.T) {
	registry := Default(Options{})

	section := content.Section{ID: "w", Type: content.TypeArticle, Body: content.ArticleList{Items: []content.Article{
		{Title: "Untitled draft"},
		{Title: "Published", URL: "https://blog.example/p", Date: "2024", Tags: []string{"go"}, Image: "/img/p.png"},
	}}}

	node := registry.Render(section, content.DefaultTheme())

	items := node.FindAll(view.ByTag("li"))
	// Two article items plus one badge item.
	if len(items) != 3 {
		t.Fatalf("Expected 3 li elements, got %d", len(items))
	}

	draft := node.Children[0]
	if draft.Find(view.ByTag("a")) != nil {
		t.Error("Expected no link wrapper without url")
	}
	if draft.Find(view.ByTag("img")) != nil {
		t.Error("Expected no image without image")
	}

	published := node.Children[1]
	if published.Find(view.ByTag("a")) == nil {
		t.Error("Expected link wrapper with url")
	}
	if published.Find(view.ByTag("img")) == nil {
		t.Error("Expected image")
	}
}

func TestCertification(t *testing.T) {
	registry := Default(Options{})

	section := content.Section{ID: "c", Type: content.TypeCertification, Body: content.CertificationList{Items: []content.Certification{
		{Name: "CKA", Issuer: "CNCF", CredentialID: "ABC-123", Skills: []string{"Kubernetes"}},
	}}}

	node := registry.Render(section, content.DefaultTheme())
	text := node.TextContent()

	for _, want := range []string{"CKA", "CNCF", "Credential ID: ABC-123", "Kubernetes"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in %q", want, text)
		}
	}
	if node.Find(view.ByTag("a")) != nil {
		t.Error("Expected no link without credentialUrl")
	}
}

func TestRegisterCustomHandler(t *testing.T) {
	registry := Default(Options{})

	if registry.Has("quote") {
		t.Fatal("Expected quote to be unregistered")
	}

	registry.Register("quote", func(section content.Section, theme content.Theme) *view.Node {
		return view.El("blockquote", nil, view.Text(section.Title))
	})

	out := render(t, registry, content.Section{ID: "q", Type: "quote", Title: "Ship it"})
	if out != "<blockquote>Ship it</blockquote>" {
		t.Errorf("Unexpected output: %s", out)
	}
}

func TestThemeTokensApplied(t *testing.T) {
	registry := Default(Options{})

	theme := content.DefaultTheme()
	theme["colors.accent"] = "text-pink-300"

	section := content.Section{ID: "p", Type: content.TypeProject, Body: content.ProjectList{Items: []content.Project{
		{Title: "Tool", TechStack: []string{"Go"}},
	}}}

	node := registry.Render(section, theme)
	badge := node.Find(func(n *view.Node) bool { return n.HasClass("badge") })
	if badge == nil {
		t.Fatal("Expected a badge")
	}
	if !badge.HasClass("text-pink-300") {
		t.Errorf("Expected accent token on badge, got %+v", badge.Attrs)
	}
}

func TestMarkdownText(t *testing.T) {
	section := content.Section{ID: "about", Type: content.TypeText, Body: content.Text{Paragraphs: []string{
		"Building **reliable** systems at [Acme](https://acme.example).",
	}}}

	plain := render(t, Default(Options{}), section)
	if !strings.Contains(plain, "**reliable**") {
		t.Errorf("Expected literal markdown without the option, got %s", plain)
	}

	rich := Default(Options{Markdown: true}).Render(section, content.DefaultTheme())
	if rich.Find(view.ByTag("strong")) == nil {
		t.Error("Expected strong element")
	}
	link := rich.Find(view.ByTag("a"))
	if link == nil {
		t.Fatal("Expected link element")
	}
	if href, _ := link.Attr("href"); href != "https://acme.example" {
		t.Errorf("Expected link href, got %q", href)
	}
	if len(rich.FindAll(view.ByTag("p"))) != 1 {
		t.Error("Expected goldmark paragraph to be unwrapped")
	}
}

func TestMarkdownBlocks(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		paragraphs []string
		listItems  int
	}{
		{name: "single paragraph", source: "just *one*", paragraphs: []string{"just one"}},
		{name: "two paragraphs", source: "first\n\nsecond", paragraphs: []string{"first", "second"}},
		{name: "list", source: "- one\n- two", listItems: 2},
		{name: "paragraph and list", source: "intro\n\n- one\n- two", paragraphs: []string{"intro"}, listItems: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section := content.Section{ID: "about", Type: content.TypeText, Body: content.Text{Paragraphs: []string{tt.source}}}
			rich := Default(Options{Markdown: true}).Render(section, content.DefaultTheme())

			var got []string
			for _, p := range rich.FindAll(view.ByTag("p")) {
				if !p.HasClass("mb-4") {
					t.Errorf("Expected mb-4 on paragraph %q", p.TextContent())
				}
				if p.Find(view.ByTag("ul")) != nil || p.Find(view.ByTag("pre")) != nil {
					t.Errorf("Expected no block element inside paragraph %q", p.TextContent())
				}
				got = append(got, p.TextContent())
			}
			if diff := cmp.Diff(tt.paragraphs, got); diff != "" {
				t.Errorf("Paragraph mismatch (-want +got):\n%s", diff)
			}

			if items := len(rich.FindAll(view.ByTag("li"))); items != tt.listItems {
				t.Errorf("Expected %d list items, got %d", tt.listItems, items)
			}
		})
	}
}

func TestMarkdownCodeBlockHighlighted(t *testing.T) {
	section := content.Section{ID: "about", Type: content.TypeText, Body: content.Text{Paragraphs: []string{
		"```go\nfmt.Println(\"hi\")\n```",
	}}}

	rich := Default(Options{Markdown: true}).Render(section, content.DefaultTheme())

	pre := rich.Find(view.ByTag("pre"))
	if pre == nil {
		t.Fatal("Expected pre element for fenced code")
	}
	if style, _ := pre.Attr("style"); style == "" {
		t.Error("Expected inline highlight style on pre")
	}
	if !strings.Contains(pre.TextContent(), "fmt.Println") {
		t.Errorf("Expected code text, got %q", pre.TextContent())
	}
}

func TestRenderDoesNotMutateSection(t *testing.T) {
	items := []content.Project{{Title: "Tool", GithubURL: "https://github.com/x/tool"}}
	section := content.Section{ID: "p", Type: content.TypeProject, Body: content.ProjectList{Items: items}}

	_ = Default(Options{}).Render(section, content.DefaultTheme())

	if len(items[0].Links) != 0 {
		t.Error("Expected project links to stay empty")
	}
}
