package theme

import (
	"fmt"
	"strings"

	"github.com/lumaacademy/atelier/internal/models"
)

// CSSVariables renders the palette and fonts as a :root custom-property
// block. Section templates reference only these variables, so no section
// ever invents its own color logic.
func CSSVariables(p Palette, fonts models.FontConfig) string {
	var b strings.Builder

	b.WriteString(":root {\n")
	writeVar(&b, "color-primary", p.Primary)
	writeVar(&b, "color-primary-dark", p.PrimaryDark)
	writeVar(&b, "color-primary-light", p.PrimaryLight)
	writeVar(&b, "color-secondary", p.Secondary)
	writeVar(&b, "color-secondary-dark", p.SecondaryDark)
	writeVar(&b, "color-secondary-light", p.SecondaryLight)
	writeVar(&b, "color-tertiary", p.Tertiary)
	writeVar(&b, "color-light-bg", p.LightBg)
	writeVar(&b, "color-dark-bg", p.DarkBg)
	writeVar(&b, "color-medium-dark-bg", p.MediumDarkBg)
	writeVar(&b, "color-body-text", p.BodyText)
	writeVar(&b, "color-subtitle-text", p.SubtitleText)
	writeVar(&b, "color-muted-text", p.MutedText)
	writeVar(&b, "color-accent-light", p.AccentLight)
	writeVar(&b, "color-background", p.Background)
	writeVar(&b, "font-heading", fontStack(fonts.Heading))
	writeVar(&b, "font-body", fontStack(fonts.Body))
	b.WriteString("}\n")

	return b.String()
}

// CTAFill returns the CSS background for call-to-action buttons according
// to the configured style.
func CTAFill(p Palette, style models.CTAStyle) string {
	if style == models.CTASolid {
		return p.Primary
	}
	return fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", p.Primary, p.Secondary)
}

func writeVar(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "\t--%s: %s;\n", name, value)
}

func fontStack(name string) string {
	if name == "" {
		name = models.DefaultFont
	}
	return fmt.Sprintf("%q, -apple-system, BlinkMacSystemFont, \"Segoe UI\", sans-serif", name)
}
