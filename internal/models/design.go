package models

// ThemeMode selects the fixed background/text tone table used at render time.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// CTAStyle controls how call-to-action buttons are filled.
type CTAStyle string

const (
	CTAGradient CTAStyle = "gradient"
	CTASolid    CTAStyle = "solid"
)

// FallbackColors is the hard-coded brand pair substituted when a design
// config carries no usable colors. A marketing page must always render
// something presentable.
var FallbackColors = []string{"#ea580c", "#f59e0b"}

// DefaultFont is the font name used when none is configured.
const DefaultFont = "Inter"

type FontConfig struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// DesignConfig is the persisted theme input for one landing page: 1-2 brand
// colors plus a handful of flags. The full palette is derived from it at
// render time and never stored.
type DesignConfig struct {
	Colors          []string     `json:"colors"`
	Theme           ThemeMode    `json:"theme"`
	CTAStyle        CTAStyle     `json:"ctaStyle"`
	Fonts           FontConfig   `json:"fonts"`
	EnabledSections []SectionKey `json:"enabledSections,omitempty"`
}

// Normalized returns a copy with defaults applied: theme light, CTA style
// gradient, system font, and the fallback brand pair when colors is empty.
func (d DesignConfig) Normalized() DesignConfig {
	out := d

	if len(out.Colors) == 0 {
		out.Colors = append([]string{}, FallbackColors...)
	}
	if len(out.Colors) > 2 {
		out.Colors = out.Colors[:2]
	}

	if out.Theme != ThemeDark {
		out.Theme = ThemeLight
	}
	if out.CTAStyle != CTASolid {
		out.CTAStyle = CTAGradient
	}
	if out.Fonts.Heading == "" {
		out.Fonts.Heading = DefaultFont
	}
	if out.Fonts.Body == "" {
		out.Fonts.Body = DefaultFont
	}

	return out
}

// SectionSequence returns the section keys in display order. When
// EnabledSections is set it is authoritative (force-show/hide plus ordering);
// otherwise the canonical order applies. Unknown keys are dropped.
func (d DesignConfig) SectionSequence() []SectionKey {
	if len(d.EnabledSections) == 0 {
		return SectionOrder
	}

	out := make([]SectionKey, 0, len(d.EnabledSections))
	for _, key := range d.EnabledSections {
		if IsKnownSection(key) {
			out = append(out, key)
		}
	}
	return out
}
