// Package theme derives the full render-time color palette from the
// minimal brand input a user supplies (1-2 hex colors and a light/dark
// flag). The derivation is a pure projection: it is computed once per
// render, threaded through every section, and never persisted.
package theme

import (
	"github.com/lumaacademy/atelier/internal/models"
)

// lightnessStep is the fixed lightness adjustment used for the Dark/Light
// variants of the brand colors. Lightness shifts keep the variants legible
// as solid fills and text colors, which alpha blending would not.
const lightnessStep = 0.20

// Tertiary is a fixed accent for warnings, ratings and quotes. It is not
// derived from the brand colors so it keeps contrast against both the
// light and dark background tables.
const Tertiary = "#f59e0b"

// Palette is the complete semantic color set the renderer consumes. Every
// field is a valid CSS color string.
type Palette struct {
	Primary        string `json:"primary"`
	PrimaryDark    string `json:"primaryDark"`
	PrimaryLight   string `json:"primaryLight"`
	Secondary      string `json:"secondary"`
	SecondaryDark  string `json:"secondaryDark"`
	SecondaryLight string `json:"secondaryLight"`
	Tertiary       string `json:"tertiary"`
	LightBg        string `json:"lightBg"`
	DarkBg         string `json:"darkBg"`
	MediumDarkBg   string `json:"mediumDarkBg"`
	BodyText       string `json:"bodyText"`
	SubtitleText   string `json:"subtitleText"`
	MutedText      string `json:"mutedText"`
	AccentLight    string `json:"accentLight"`
	Background     string `json:"background"`
}

// tones are the fixed background/text colors keyed by theme mode. They are
// deliberately independent of the brand colors so text contrast never
// depends on what the user picked.
type tones struct {
	lightBg      string
	darkBg       string
	mediumDarkBg string
	bodyText     string
	subtitleText string
	mutedText    string
	accentLight  string
	background   string
}

var toneTable = map[models.ThemeMode]tones{
	models.ThemeLight: {
		lightBg:      "#f8fafc",
		darkBg:       "#0f172a",
		mediumDarkBg: "#1e293b",
		bodyText:     "#334155",
		subtitleText: "#64748b",
		mutedText:    "#94a3b8",
		accentLight:  "#f1f5f9",
		background:   "#ffffff",
	},
	models.ThemeDark: {
		lightBg:      "#1e293b",
		darkBg:       "#020617",
		mediumDarkBg: "#0f172a",
		bodyText:     "#e2e8f0",
		subtitleText: "#94a3b8",
		mutedText:    "#64748b",
		accentLight:  "#1e293b",
		background:   "#0f172a",
	},
}

// Derive expands 1-2 brand colors plus a mode into the full palette.
// The function is total: invalid hex input degrades to the fallback brand
// pair and an unknown mode degrades to light. Same input, same output.
func Derive(colors []string, mode models.ThemeMode) Palette {
	primaryStr, primary := brandColor(colors, 0)

	var secondaryStr string
	var secondary rgb
	if len(colors) > 1 {
		secondaryStr, secondary = brandColor(colors, 1)
	} else {
		secondary = complement(primary)
		secondaryStr = secondary.hex()
	}

	t, ok := toneTable[mode]
	if !ok {
		t = toneTable[models.ThemeLight]
	}

	return Palette{
		Primary:        primaryStr,
		PrimaryDark:    shiftLightness(primary, -lightnessStep).hex(),
		PrimaryLight:   shiftLightness(primary, lightnessStep).hex(),
		Secondary:      secondaryStr,
		SecondaryDark:  shiftLightness(secondary, -lightnessStep).hex(),
		SecondaryLight: shiftLightness(secondary, lightnessStep).hex(),
		Tertiary:       Tertiary,
		LightBg:        t.lightBg,
		DarkBg:         t.darkBg,
		MediumDarkBg:   t.mediumDarkBg,
		BodyText:       t.bodyText,
		SubtitleText:   t.subtitleText,
		MutedText:      t.mutedText,
		AccentLight:    t.accentLight,
		Background:     t.background,
	}
}

// FromDesign derives the palette for a design config, applying the
// config's own normalization first.
func FromDesign(design models.DesignConfig) Palette {
	normalized := design.Normalized()
	return Derive(normalized.Colors, normalized.Theme)
}

// brandColor parses the color at index i, substituting the fallback pair
// entry for missing or invalid input. The returned string is the caller's
// original value when it parsed, so valid user input round-trips verbatim.
func brandColor(colors []string, i int) (string, rgb) {
	if i < len(colors) {
		if c, err := parseHex(colors[i]); err == nil {
			return colors[i], c
		}
	}

	fallback := models.FallbackColors[i%len(models.FallbackColors)]
	c, _ := parseHex(fallback)
	return fallback, c
}
