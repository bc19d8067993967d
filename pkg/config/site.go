package config

// Scroll behaviors accepted by SmoothScrollConfig.Behavior.
const (
	BehaviorSmooth  = "smooth"
	BehaviorInstant = "instant"
	BehaviorAuto    = "auto"
)

// Site enumerates the page behavior toggles. Each flag gates exactly the
// behavior it names.
type Site struct {
	Spotlight    SpotlightConfig    `yaml:"spotlight" json:"spotlight"`
	SmoothScroll SmoothScrollConfig `yaml:"smoothScroll" json:"smoothScroll"`
	Observer     ObserverConfig     `yaml:"observer" json:"observer"`
	Layout       LayoutConfig       `yaml:"layout" json:"layout"`
	Display      DisplayConfig      `yaml:"display" json:"display"`
}

// SpotlightConfig controls the pointer-following gradient layer.
type SpotlightConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Color   string `yaml:"color" json:"color"`
	Size    string `yaml:"size" json:"size"`
}

// SmoothScrollConfig controls in-page navigation scrolling.
type SmoothScrollConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Behavior string `yaml:"behavior" json:"behavior"`
	Block    string `yaml:"block" json:"block"`
}

// ObserverConfig controls active section detection.
type ObserverConfig struct {
	Enabled    bool      `yaml:"enabled" json:"enabled"`
	Thresholds []float64 `yaml:"thresholds" json:"thresholds"`
	RootMargin string    `yaml:"rootMargin" json:"rootMargin"`
}

// LayoutConfig holds page layout tokens.
type LayoutConfig struct {
	MaxWidth string `yaml:"maxWidth" json:"maxWidth"`
}

// DisplayConfig shows or hides page elements.
type DisplayConfig struct {
	ShowSocialLinks    bool `yaml:"showSocialLinks" json:"showSocialLinks"`
	ShowSectionHeaders bool `yaml:"showSectionHeaders" json:"showSectionHeaders"`
	Markdown           bool `yaml:"markdown" json:"markdown"`
}

// DefaultSite returns the stock page behavior: every effect on.
func DefaultSite() (site Site) {
	site = Site{
		Spotlight: SpotlightConfig{
			Enabled: true,
			Color:   "rgba(29, 78, 216, 0.15)",
			Size:    "600px",
		},
		SmoothScroll: SmoothScrollConfig{
			Enabled:  true,
			Behavior: BehaviorSmooth,
			Block:    "start",
		},
		Observer: ObserverConfig{
			Enabled:    true,
			Thresholds: []float64{0, 0.25, 0.5, 0.75, 1},
			RootMargin: "-10% 0px -50% 0px",
		},
		Layout: LayoutConfig{
			MaxWidth: "max-w-screen-xl",
		},
		Display: DisplayConfig{
			ShowSocialLinks:    true,
			ShowSectionHeaders: true,
		},
	}
	return site
}
