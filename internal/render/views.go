package render

import (
	"html/template"

	"github.com/lumaacademy/atelier/internal/content"
	"github.com/lumaacademy/atelier/internal/models"
)

// View models for the section templates. Each builder returns ok=false when
// the section has nothing worth rendering.

type heroView struct {
	Badge       string
	Headline    string
	Subheadline string
	HeroImage   string
	CTALabel    string
	CTASubtext  string
}

// heroView builds the hero. It is the only section with a fallback: when
// the headline or subheadline is missing, the parent course's title and
// description stand in. With neither hero data nor a course, no hero renders.
func (r *Renderer) heroView(doc *content.Document, course *models.Course) (any, bool) {
	hero, hasHero := doc.Hero()
	if !hasHero && course == nil {
		return nil, false
	}

	view := heroView{
		Badge:       hero.Badge.String(),
		Headline:    hero.Headline.String(),
		Subheadline: hero.Subheadline.String(),
		HeroImage:   hero.HeroImage,
		CTALabel:    ctaLabel(hero.CTAText.String(), course),
		CTASubtext:  hero.CTASubtext.String(),
	}

	if course != nil {
		if view.Headline == "" {
			view.Headline = course.Title
		}
		if view.Subheadline == "" {
			view.Subheadline = course.Description
		}
	}

	if view.Headline == "" {
		return nil, false
	}
	return view, true
}

type problemView struct {
	Title      string
	Agitation  template.HTML
	PainPoints []string
	Risks      []string
}

func (r *Renderer) problemView(doc *content.Document) (any, bool) {
	problem, ok := doc.Problem()
	if !ok {
		return nil, false
	}

	view := problemView{
		Title:      problem.Title.String(),
		Agitation:  r.renderMarkdown(problem.AgitationText.String()),
		PainPoints: richStrings(problem.PainPoints),
		Risks:      richStrings(problem.Risks),
	}
	if view.Title == "" && len(view.PainPoints) == 0 {
		return nil, false
	}
	return view, true
}

type pillarView struct {
	Number      int
	Title       string
	Description string
	IconURL     string
}

type methodView struct {
	Title       string
	Description string
	Pillars     []pillarView
}

func (r *Renderer) methodView(doc *content.Document) (any, bool) {
	method, ok := doc.Method()
	if !ok {
		return nil, false
	}

	view := methodView{
		Title:       method.Title.String(),
		Description: method.Description.String(),
	}
	for i, p := range method.Pillars {
		number := p.Number
		if number <= 0 {
			number = i + 1
		}
		view.Pillars = append(view.Pillars, pillarView{
			Number:      number,
			Title:       p.Title.String(),
			Description: p.Description.String(),
			IconURL:     p.IconURL,
		})
	}
	if view.Title == "" && len(view.Pillars) == 0 {
		return nil, false
	}
	return view, true
}

type transformationCardView struct {
	Title       string
	Description string
}

type transformationView struct {
	Title string
	Left  *transformationCardView
	Right *transformationCardView
}

func (r *Renderer) transformationView(doc *content.Document) (any, bool) {
	section, ok := doc.Transformation()
	if !ok {
		return nil, false
	}

	view := transformationView{Title: section.Title.String()}
	if section.LeftCard != nil {
		view.Left = &transformationCardView{
			Title:       section.LeftCard.Title.String(),
			Description: section.LeftCard.Description.String(),
		}
	}
	if section.RightCard != nil {
		view.Right = &transformationCardView{
			Title:       section.RightCard.Title.String(),
			Description: section.RightCard.Description.String(),
		}
	}
	if view.Left == nil && view.Right == nil {
		return nil, false
	}
	return view, true
}

type moduleView struct {
	Index        int
	Title        string
	Description  string
	LessonsCount int
}

type programView struct {
	Title   string
	Modules []moduleView
}

func (r *Renderer) programView(doc *content.Document) (any, bool) {
	program, ok := doc.Program()
	if !ok || len(program.Modules) == 0 {
		return nil, false
	}

	view := programView{Title: program.Title.String()}
	for i, m := range program.Modules {
		view.Modules = append(view.Modules, moduleView{
			Index:        i + 1,
			Title:        m.Title.String(),
			Description:  m.Description.String(),
			LessonsCount: m.LessonsCount,
		})
	}
	return view, true
}

type trainerView struct {
	Tagline     string
	Title       string
	Bio         template.HTML
	Credentials []string
	Quote       string
}

func (r *Renderer) trainerView(doc *content.Document) (any, bool) {
	trainer, ok := doc.Trainer()
	if !ok {
		return nil, false
	}

	view := trainerView{
		Tagline:     trainer.Tagline.String(),
		Title:       trainer.Title.String(),
		Bio:         r.renderMarkdown(trainer.BioHighlight.String()),
		Credentials: richStrings(trainer.Credentials),
		Quote:       trainer.Quote.String(),
	}
	if view.Title == "" && view.Bio == "" {
		return nil, false
	}
	return view, true
}

type testimonialView struct {
	Name   string
	Role   string
	Text   string
	Stars  []int
	Avatar string
}

type testimonialsView struct {
	Items []testimonialView
}

func (r *Renderer) testimonialsView(doc *content.Document) (any, bool) {
	items, ok := doc.Testimonials()
	if !ok {
		return nil, false
	}

	view := testimonialsView{}
	for _, t := range items {
		view.Items = append(view.Items, testimonialView{
			Name:   t.Name,
			Role:   t.Role,
			Text:   t.Text.String(),
			Stars:  make([]int, t.Stars()),
			Avatar: t.Avatar,
		})
	}
	return view, true
}

type faqItemView struct {
	Question string
	Answer   string
}

type faqView struct {
	Items []faqItemView
}

func (r *Renderer) faqView(doc *content.Document) (any, bool) {
	items, ok := doc.FAQ()
	if !ok {
		return nil, false
	}

	view := faqView{}
	for _, item := range items {
		q := item.Question.String()
		if q == "" {
			continue
		}
		view.Items = append(view.Items, faqItemView{
			Question: q,
			Answer:   item.Answer.String(),
		})
	}
	if len(view.Items) == 0 {
		return nil, false
	}
	return view, true
}

type finalCTAView struct {
	UrgencyBadge string
	Title        string
	Subtitle     string
	CTALabel     string
	Guarantee    string
}

func (r *Renderer) finalCTAView(doc *content.Document, course *models.Course) (any, bool) {
	cta, ok := doc.FinalCTA()
	if !ok {
		return nil, false
	}

	view := finalCTAView{
		UrgencyBadge: cta.UrgencyBadge.String(),
		Title:        cta.Title.String(),
		Subtitle:     cta.Subtitle.String(),
		CTALabel:     ctaLabel(cta.CTAText.String(), course),
		Guarantee:    cta.Guarantee.String(),
	}
	if view.Title == "" {
		return nil, false
	}
	return view, true
}

func richStrings(values []models.RichText) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s := v.String(); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
