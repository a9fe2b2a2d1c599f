package content

import (
	"github.com/lumaacademy/atelier/internal/models"
)

// Typed section accessors. Each decodes one section from the resolved
// content map; the bool is false when the section is absent or unusable.
// List-bearing sections decode entry by entry so one malformed item drops
// that item, not the whole section.

func (d *Document) Hero() (models.HeroSection, bool) {
	var hero models.HeroSection
	raw, ok := d.Section(models.SectionHero)
	if !ok || reencode(raw, &hero) != nil {
		return models.HeroSection{}, false
	}
	return hero, true
}

func (d *Document) Problem() (models.ProblemSection, bool) {
	raw, ok := d.Section(models.SectionProblem)
	if !ok {
		return models.ProblemSection{}, false
	}
	m, ok := sectionMap(raw)
	if !ok {
		return models.ProblemSection{}, false
	}

	var problem models.ProblemSection
	reencode(m["title"], &problem.Title)
	reencode(m["agitation_text"], &problem.AgitationText)
	problem.PainPoints = decodeEntries[models.RichText](m["pain_points"])
	problem.Risks = decodeEntries[models.RichText](m["risks"])
	return problem, true
}

func (d *Document) Method() (models.MethodSection, bool) {
	raw, ok := d.Section(models.SectionMethod)
	if !ok {
		return models.MethodSection{}, false
	}
	m, ok := sectionMap(raw)
	if !ok {
		return models.MethodSection{}, false
	}

	var method models.MethodSection
	reencode(m["title"], &method.Title)
	reencode(m["description"], &method.Description)
	method.Pillars = decodeEntries[models.Pillar](m["pillars"])
	return method, true
}

func (d *Document) Transformation() (models.TransformationSection, bool) {
	var section models.TransformationSection
	raw, ok := d.Section(models.SectionTransformation)
	if !ok || reencode(raw, &section) != nil {
		return models.TransformationSection{}, false
	}
	return section, true
}

func (d *Document) Program() (models.ProgramSection, bool) {
	raw, ok := d.Section(models.SectionProgram)
	if !ok {
		return models.ProgramSection{}, false
	}
	m, ok := sectionMap(raw)
	if !ok {
		return models.ProgramSection{}, false
	}

	var program models.ProgramSection
	reencode(m["title"], &program.Title)
	program.Modules = decodeEntries[models.ProgramModule](m["modules"])
	return program, true
}

func (d *Document) Trainer() (models.TrainerSection, bool) {
	var trainer models.TrainerSection
	raw, ok := d.Section(models.SectionTrainer)
	if !ok || reencode(raw, &trainer) != nil {
		return models.TrainerSection{}, false
	}
	return trainer, true
}

func (d *Document) Testimonials() ([]models.Testimonial, bool) {
	raw, ok := d.Section(models.SectionTestimonials)
	if !ok {
		return nil, false
	}
	items := decodeEntries[models.Testimonial](raw)
	if len(items) == 0 {
		return nil, false
	}
	return items, true
}

func (d *Document) FAQ() ([]models.FAQItem, bool) {
	raw, ok := d.Section(models.SectionFAQ)
	if !ok {
		return nil, false
	}
	items := decodeEntries[models.FAQItem](raw)
	if len(items) == 0 {
		return nil, false
	}
	return items, true
}

func (d *Document) FinalCTA() (models.FinalCTASection, bool) {
	var cta models.FinalCTASection
	raw, ok := d.Section(models.SectionFinalCTA)
	if !ok || reencode(raw, &cta) != nil {
		return models.FinalCTASection{}, false
	}
	return cta, true
}

// decodeEntries decodes a stored list entry by entry, skipping entries
// that do not fit the target shape.
func decodeEntries[T any](raw any) []T {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	out := make([]T, 0, len(list))
	for _, entry := range list {
		var item T
		if err := reencode(entry, &item); err != nil {
			continue
		}
		out = append(out, item)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
