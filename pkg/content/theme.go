package content

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme maps semantic token names such as "colors.textPrimary" to
// presentation values. Renderers only look tokens up.
type Theme map[string]string

// DefaultTheme returns the stock slate/teal token set.
func DefaultTheme() (theme Theme) {
	theme = Theme{
		"colors.background":     "bg-slate-900",
		"colors.text":           "text-slate-400",
		"colors.textPrimary":    "text-slate-200",
		"colors.textMuted":      "text-slate-500",
		"colors.accent":         "text-teal-300",
		"colors.accentBg":       "bg-teal-400/10",
		"colors.line":           "bg-slate-600",
		"colors.lineActive":     "bg-slate-200",
		"colors.hoverOverlay":   "lg:group-hover:bg-slate-800/50",
		"spacing.sectionGap":    "lg:mb-36 md:mb-24 mb-16",
		"spacing.itemGap":       "mb-12",
		"spacing.contentGap":    "mt-2",
		"typography.heading":    "text-4xl font-bold tracking-tight sm:text-5xl",
		"typography.subheading": "text-lg font-medium tracking-tight sm:text-xl",
		"typography.label":      "text-xs font-bold uppercase tracking-widest",
	}
	return theme
}

// Token returns the value for name, or "" when unset.
func (t Theme) Token(name string) (value string) {
	value = t[name]
	return value
}

// Class joins the values of the named tokens with literal classes.
// Names containing a dot are looked up; anything else is used verbatim.
func (t Theme) Class(parts ...string) (class string) {
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		value := part
		if strings.Contains(part, ".") && !strings.Contains(part, " ") {
			if token, ok := t[part]; ok {
				value = token
			}
		}
		if value != "" {
			values = append(values, value)
		}
	}
	class = strings.Join(values, " ")
	return class
}

// merged returns a copy of base overlaid with t.
func (t Theme) merged(base Theme) (out Theme) {
	out = make(Theme, len(base)+len(t))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range t {
		out[k] = v
	}
	return out
}

// UnmarshalYAML flattens nested token groups into dotted names.
func (t *Theme) UnmarshalYAML(value *yaml.Node) (err error) {
	var nested map[string]interface{}
	err = value.Decode(&nested)
	if err != nil {
		return err
	}

	flat := make(Theme)
	flatten("", nested, flat)
	*t = flat
	return err
}

func flatten(prefix string, in map[string]interface{}, out Theme) {
	for key, value := range in {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]interface{}:
			flatten(name, v, out)
		case string:
			out[name] = v
		}
	}
}
