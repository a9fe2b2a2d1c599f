// Package render turns a resolved landing page document plus its derived
// palette into a self-contained HTML page. Sections render independently:
// a missing section produces no output and a failing section is dropped
// without blanking the rest of the page.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/yuin/goldmark"

	"github.com/lumaacademy/atelier/internal/content"
	"github.com/lumaacademy/atelier/internal/models"
	"github.com/lumaacademy/atelier/internal/theme"
)

// Renderer renders landing pages. It is stateless per request and safe for
// concurrent use once constructed.
type Renderer struct {
	logger    arbor.ILogger
	markdown  goldmark.Markdown
	templates *template.Template
}

// NewRenderer parses the section templates and prepares the markdown
// converter.
func NewRenderer(logger arbor.ILogger) (*Renderer, error) {
	templates := template.New("landing")

	for name, text := range sectionTemplates {
		if _, err := templates.New(name).Parse(text); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
	}
	if _, err := templates.New("layout").Parse(layoutTemplate); err != nil {
		return nil, fmt.Errorf("failed to parse layout template: %w", err)
	}

	return &Renderer{
		logger:    logger,
		markdown:  goldmark.New(),
		templates: templates,
	}, nil
}

// pageData is the layout template input.
type pageData struct {
	Title    string
	CSSVars  template.CSS
	CTAFill  template.CSS
	Sections []template.HTML
}

// RenderPage renders the document with the given design config. course may
// be nil; the page then renders without the price suffix and without the
// course-based hero fallback. The embedded theme override of the document,
// when present, wins over the stored design config.
func (r *Renderer) RenderPage(doc *content.Document, design models.DesignConfig, course *models.Course) (string, error) {
	if doc == nil {
		doc = content.Resolve(nil)
	}

	effective := effectiveDesign(design, doc.ThemeOverride())
	palette := theme.FromDesign(effective)

	data := pageData{
		Title:    pageTitle(doc, course),
		CSSVars:  template.CSS(theme.CSSVariables(palette, effective.Fonts)),
		CTAFill:  template.CSS(theme.CTAFill(palette, effective.CTAStyle)),
		Sections: r.renderSections(doc, effective, course),
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", fmt.Errorf("failed to render page layout: %w", err)
	}
	return buf.String(), nil
}

// renderSections walks the display order and renders each present section.
func (r *Renderer) renderSections(doc *content.Document, design models.DesignConfig, course *models.Course) []template.HTML {
	var out []template.HTML

	for _, key := range design.SectionSequence() {
		html, ok := r.renderSection(doc, key, course)
		if !ok {
			continue
		}
		out = append(out, html)
	}

	return out
}

// renderSection builds the view model for one section and executes its
// template. Failures are section-local: log and skip.
func (r *Renderer) renderSection(doc *content.Document, key models.SectionKey, course *models.Course) (template.HTML, bool) {
	view, ok := r.sectionView(doc, key, course)
	if !ok {
		return "", false
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, string(key), view); err != nil {
		r.logger.Warn().
			Err(err).
			Str("section", string(key)).
			Msg("Section render failed, skipping section")
		return "", false
	}
	return template.HTML(buf.String()), true
}

// sectionView maps a section key to its template data. The bool is false
// when the section should not be rendered at all.
func (r *Renderer) sectionView(doc *content.Document, key models.SectionKey, course *models.Course) (any, bool) {
	switch key {
	case models.SectionHero:
		return r.heroView(doc, course)
	case models.SectionProblem:
		return r.problemView(doc)
	case models.SectionMethod:
		return r.methodView(doc)
	case models.SectionTransformation:
		return r.transformationView(doc)
	case models.SectionProgram:
		return r.programView(doc)
	case models.SectionTrainer:
		return r.trainerView(doc)
	case models.SectionTestimonials:
		return r.testimonialsView(doc)
	case models.SectionFAQ:
		return r.faqView(doc)
	case models.SectionFinalCTA:
		return r.finalCTAView(doc, course)
	default:
		return nil, false
	}
}

// ctaLabel interpolates the live course price into a CTA label:
// "{cta_text} - {price}€". Without a course the label stands alone.
func ctaLabel(text string, course *models.Course) string {
	if text == "" {
		text = "Enroll now"
	}
	if course == nil {
		return text
	}
	return fmt.Sprintf("%s - %s€", text, course.DisplayPrice())
}

// renderMarkdown converts markdown body text to HTML. On conversion
// failure the raw text is HTML-escaped and used as-is.
func (r *Renderer) renderMarkdown(text string) template.HTML {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(text), &buf); err != nil {
		r.logger.Warn().Err(err).Msg("Markdown conversion failed, using escaped text")
		return template.HTML("<p>" + template.HTMLEscapeString(text) + "</p>")
	}
	return template.HTML(buf.String())
}

func pageTitle(doc *content.Document, course *models.Course) string {
	if hero, ok := doc.Hero(); ok && !hero.Headline.IsZero() {
		return hero.Headline.String()
	}
	if course != nil && course.Title != "" {
		return course.Title
	}
	return "Landing page"
}

// effectiveDesign overlays the document's embedded theme override on the
// stored design config.
func effectiveDesign(design models.DesignConfig, override *models.DesignConfig) models.DesignConfig {
	if override == nil {
		return design.Normalized()
	}

	merged := design
	if len(override.Colors) > 0 {
		merged.Colors = override.Colors
	}
	if override.Theme != "" {
		merged.Theme = override.Theme
	}
	if override.CTAStyle != "" {
		merged.CTAStyle = override.CTAStyle
	}
	if override.Fonts.Heading != "" {
		merged.Fonts.Heading = override.Fonts.Heading
	}
	if override.Fonts.Body != "" {
		merged.Fonts.Body = override.Fonts.Body
	}
	return merged.Normalized()
}
