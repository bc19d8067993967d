package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikogura/folio/pkg/content"
)

// Tailwind palette entries the stock themes use.
//
//nolint:gochecknoglobals // Static palette
var palette = map[string]string{
	"slate-100": "#f1f5f9",
	"slate-200": "#e2e8f0",
	"slate-300": "#cbd5e1",
	"slate-400": "#94a3b8",
	"slate-500": "#64748b",
	"slate-600": "#475569",
	"slate-700": "#334155",
	"slate-800": "#1e293b",
	"slate-900": "#0f172a",
	"teal-200":  "#99f6e4",
	"teal-300":  "#5eead4",
	"teal-400":  "#2dd4bf",
	"sky-300":   "#7dd3fc",
	"blue-300":  "#93c5fd",
	"pink-300":  "#f9a8d4",
	"amber-300": "#fcd34d",
	"white":     "#ffffff",
}

// Styles are the terminal renditions of the theme tokens.
type Styles struct {
	Name      lipgloss.Style
	Title     lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Primary   lipgloss.Style
	Accent    lipgloss.Style
	Label     lipgloss.Style
	Heading   lipgloss.Style
	Badge     lipgloss.Style
	Link      lipgloss.Style
	Line      lipgloss.Style
	Active    lipgloss.Style
	Help      lipgloss.Style
	Spotlight lipgloss.Color
}

// NewStyles maps theme tokens to terminal colors. Tokens without a known
// color keep the stock slate/teal look.
func NewStyles(theme content.Theme, spotlight string) (s Styles) {
	text := themeColor(theme, "colors.text", "#94a3b8")
	primary := themeColor(theme, "colors.textPrimary", "#e2e8f0")
	muted := themeColor(theme, "colors.textMuted", "#64748b")
	accent := themeColor(theme, "colors.accent", "#5eead4")
	line := themeColor(theme, "colors.line", "#475569")
	lineActive := themeColor(theme, "colors.lineActive", "#e2e8f0")

	s = Styles{
		Name:      lipgloss.NewStyle().Bold(true).Foreground(primary),
		Title:     lipgloss.NewStyle().Foreground(primary),
		Text:      lipgloss.NewStyle().Foreground(text),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Primary:   lipgloss.NewStyle().Foreground(primary),
		Accent:    lipgloss.NewStyle().Foreground(accent),
		Label:     lipgloss.NewStyle().Bold(true).Foreground(muted),
		Heading:   lipgloss.NewStyle().Bold(true).Foreground(primary),
		Badge:     lipgloss.NewStyle().Foreground(accent).Background(lipgloss.Color("#123a3a")).Padding(0, 1),
		Link:      lipgloss.NewStyle().Foreground(accent).Underline(true),
		Line:      lipgloss.NewStyle().Foreground(line),
		Active:    lipgloss.NewStyle().Bold(true).Foreground(lineActive),
		Help:      lipgloss.NewStyle().Foreground(muted).Italic(true),
		Spotlight: spotlightColor(spotlight),
	}
	return s
}

// themeColor resolves the first Tailwind color class in a token value.
func themeColor(theme content.Theme, token, fallback string) (color lipgloss.Color) {
	color = lipgloss.Color(fallback)
	for _, class := range strings.Fields(theme.Token(token)) {
		// Skip variants such as hover: or lg:.
		if strings.Contains(class, ":") {
			continue
		}
		for _, prefix := range []string{"text-", "bg-"} {
			name := strings.TrimPrefix(class, prefix)
			if name == class {
				continue
			}
			name, _, _ = strings.Cut(name, "/")
			if hex, ok := palette[name]; ok {
				color = lipgloss.Color(hex)
				return color
			}
		}
	}
	return color
}

// spotlightColor turns a CSS rgba() color into an opaque terminal
// background by blending it over the page background.
func spotlightColor(css string) (color lipgloss.Color) {
	color = lipgloss.Color("#172554")

	var r, g, b int
	var a float64
	_, err := fmt.Sscanf(strings.ReplaceAll(css, " ", ""), "rgba(%d,%d,%d,%f)", &r, &g, &b, &a)
	if err != nil {
		return color
	}

	// Page background is slate-900; boost alpha so the row stays visible.
	alpha := a * 3
	if alpha > 1 {
		alpha = 1
	}
	blend := func(fg, bg int) int {
		return int(float64(fg)*alpha + float64(bg)*(1-alpha))
	}
	color = lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", blend(r, 0x0f), blend(g, 0x17), blend(b, 0x2a)))
	return color
}
