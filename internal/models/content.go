package models

import (
	"encoding/json"
)

// SectionKey identifies one named, independently renderable block of a
// landing page. The set is fixed; unknown keys in stored documents are
// preserved on write but never rendered.
type SectionKey string

const (
	SectionHero           SectionKey = "hero"
	SectionProblem        SectionKey = "problem"
	SectionMethod         SectionKey = "method"
	SectionTransformation SectionKey = "transformation"
	SectionProgram        SectionKey = "program"
	SectionTrainer        SectionKey = "trainer"
	SectionTestimonials   SectionKey = "testimonials"
	SectionFAQ            SectionKey = "faq"
	SectionFinalCTA       SectionKey = "final_cta"
)

// SectionOrder is the canonical display order when the design config does
// not supply its own via enabled_sections.
var SectionOrder = []SectionKey{
	SectionHero,
	SectionProblem,
	SectionMethod,
	SectionTransformation,
	SectionProgram,
	SectionTrainer,
	SectionTestimonials,
	SectionFAQ,
	SectionFinalCTA,
}

var knownSections = func() map[SectionKey]bool {
	m := make(map[SectionKey]bool, len(SectionOrder))
	for _, k := range SectionOrder {
		m[k] = true
	}
	return m
}()

// IsKnownSection reports whether key is part of the fixed section enum.
func IsKnownSection(key SectionKey) bool {
	return knownSections[key]
}

// RichText is a text value that may be stored either as a plain string
// (legacy documents) or as a locale-keyed object (current documents,
// e.g. {"en": "Headline"}). Rendering always collapses it to one string.
type RichText struct {
	value   string
	byLang  map[string]string
	present bool
}

// UnmarshalJSON accepts both string and object shapes.
func (t *RichText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.value = s
		t.byLang = nil
		t.present = true
		return nil
	}

	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		// Tolerate any other shape as absent rather than failing the section
		t.present = false
		return nil
	}
	t.byLang = m
	t.present = true
	return nil
}

// MarshalJSON writes back the shape the value was read in.
func (t RichText) MarshalJSON() ([]byte, error) {
	if t.byLang != nil {
		return json.Marshal(t.byLang)
	}
	return json.Marshal(t.value)
}

// String collapses the value to display text, preferring "en" for
// locale-keyed values and falling back to any non-empty entry.
func (t RichText) String() string {
	if t.byLang != nil {
		if v, ok := t.byLang["en"]; ok && v != "" {
			return v
		}
		for _, v := range t.byLang {
			if v != "" {
				return v
			}
		}
		return ""
	}
	return t.value
}

// IsZero reports whether the value was absent or empty.
func (t RichText) IsZero() bool {
	return !t.present || t.String() == ""
}

// HeroSection is the page opener. Headline and subheadline fall back to the
// parent course's title and description at render time.
type HeroSection struct {
	Badge       RichText `json:"badge,omitempty"`
	Headline    RichText `json:"headline"`
	Subheadline RichText `json:"subheadline,omitempty"`
	HeroImage   string   `json:"hero_image,omitempty"`
	CTAText     RichText `json:"cta_text"`
	CTASubtext  RichText `json:"cta_subtext,omitempty"`
}

// ProblemSection presents pain points and, optionally, risks of inaction.
type ProblemSection struct {
	Title         RichText   `json:"title"`
	AgitationText RichText   `json:"agitation_text,omitempty"`
	PainPoints    []RichText `json:"pain_points"`
	Risks         []RichText `json:"risks,omitempty"`
}

// Pillar is one element of the method section. Number falls back to the
// 1-based list index when absent.
type Pillar struct {
	Title       RichText `json:"title"`
	Description RichText `json:"description"`
	IconURL     string   `json:"icon_url,omitempty"`
	Number      int      `json:"number,omitempty"`
}

type MethodSection struct {
	Title       RichText `json:"title"`
	Description RichText `json:"description,omitempty"`
	Pillars     []Pillar `json:"pillars"`
}

type TransformationCard struct {
	Title       RichText `json:"title"`
	Description RichText `json:"description"`
}

type TransformationSection struct {
	Title     RichText            `json:"title"`
	LeftCard  *TransformationCard `json:"left_card,omitempty"`
	RightCard *TransformationCard `json:"right_card,omitempty"`
}

// ProgramModule describes one course module. The lesson count badge is only
// shown when LessonsCount is positive.
type ProgramModule struct {
	Title        RichText `json:"title"`
	Description  RichText `json:"description"`
	LessonsCount int      `json:"lessons_count,omitempty"`
}

type ProgramSection struct {
	Title   RichText        `json:"title,omitempty"`
	Modules []ProgramModule `json:"modules"`
}

type TrainerSection struct {
	Tagline      RichText   `json:"tagline,omitempty"`
	Title        RichText   `json:"title"`
	BioHighlight RichText   `json:"bio_highlight"`
	Credentials  []RichText `json:"credentials,omitempty"`
	Quote        RichText   `json:"quote,omitempty"`
}

// Testimonial rating defaults to 5 when absent; missing data must not
// visually penalize a displayed testimonial.
type Testimonial struct {
	Name   string   `json:"name"`
	Role   string   `json:"role,omitempty"`
	Text   RichText `json:"text"`
	Rating *int     `json:"rating,omitempty"`
	Avatar string   `json:"avatar,omitempty"`
}

// Stars returns the star count to render, clamped to 1..5.
func (t Testimonial) Stars() int {
	if t.Rating == nil {
		return 5
	}
	r := *t.Rating
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}

type FAQItem struct {
	Question RichText `json:"question"`
	Answer   RichText `json:"answer"`
}

type FinalCTASection struct {
	UrgencyBadge RichText `json:"urgency_badge,omitempty"`
	Title        RichText `json:"title"`
	Subtitle     RichText `json:"subtitle,omitempty"`
	CTAText      RichText `json:"cta_text"`
	Guarantee    RichText `json:"guarantee,omitempty"`
}
