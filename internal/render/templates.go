package render

import "github.com/lumaacademy/atelier/internal/models"

// Templates are compiled in rather than shipped as files so the binary
// stays self-contained.

const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
{{.CSSVars}}
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: var(--font-body); color: var(--color-body-text); background: var(--color-background); line-height: 1.6; }
h1, h2, h3 { font-family: var(--font-heading); line-height: 1.2; }
section { padding: 64px 24px; }
.container { max-width: 1080px; margin: 0 auto; }
.badge { display: inline-block; padding: 4px 14px; border-radius: 999px; background: var(--color-accent-light); color: var(--color-primary); font-size: 0.85rem; font-weight: 600; }
.cta-button { display: inline-block; padding: 14px 32px; border-radius: 8px; color: #ffffff; font-weight: 700; text-decoration: none; background: {{.CTAFill}}; }
.cta-subtext { margin-top: 10px; font-size: 0.85rem; color: var(--color-muted-text); }
.hero { background: var(--color-light-bg); text-align: center; padding: 96px 24px; }
.hero h1 { font-size: 2.6rem; margin: 16px 0; }
.hero .subheadline { font-size: 1.2rem; color: var(--color-subtitle-text); max-width: 640px; margin: 0 auto 28px; }
.hero img { max-width: 100%; border-radius: 12px; margin-top: 40px; }
.problem { background: var(--color-medium-dark-bg); color: #ffffff; }
.problem h2 { color: #ffffff; margin-bottom: 16px; }
.problem .columns { display: grid; grid-template-columns: repeat(auto-fit, minmax(280px, 1fr)); gap: 32px; margin-top: 32px; }
.problem ul { list-style: none; }
.problem li { padding: 8px 0 8px 28px; position: relative; }
.problem li::before { content: "\2717"; position: absolute; left: 0; color: var(--color-secondary); }
.method .pillars { display: grid; grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); gap: 24px; margin-top: 32px; }
.pillar { background: var(--color-light-bg); border-radius: 12px; padding: 28px; }
.pillar .number { width: 40px; height: 40px; border-radius: 50%; background: var(--color-primary); color: #ffffff; display: flex; align-items: center; justify-content: center; font-weight: 700; margin-bottom: 16px; }
.transformation { background: var(--color-accent-light); }
.transformation .cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(280px, 1fr)); gap: 24px; margin-top: 32px; }
.transformation .card { border-radius: 12px; padding: 28px; background: var(--color-background); }
.transformation .card.after { border: 2px solid var(--color-primary); }
.program .module { display: flex; gap: 20px; padding: 20px 0; border-bottom: 1px solid var(--color-accent-light); }
.program .module-index { color: var(--color-primary); font-weight: 700; font-size: 1.4rem; min-width: 40px; }
.lessons-badge { display: inline-block; margin-left: 10px; padding: 2px 10px; border-radius: 999px; background: var(--color-accent-light); color: var(--color-subtitle-text); font-size: 0.75rem; }
.trainer { background: var(--color-dark-bg); color: #ffffff; }
.trainer h2 { color: #ffffff; }
.trainer .tagline { color: var(--color-secondary); font-weight: 600; text-transform: uppercase; letter-spacing: 0.08em; font-size: 0.85rem; }
.trainer blockquote { border-left: 3px solid var(--color-primary); padding-left: 16px; margin-top: 24px; font-style: italic; }
.trainer ul { list-style: none; margin-top: 16px; }
.trainer li { padding: 6px 0 6px 26px; position: relative; }
.trainer li::before { content: "\2713"; position: absolute; left: 0; color: var(--color-tertiary); }
.testimonials .grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(280px, 1fr)); gap: 24px; margin-top: 32px; }
.testimonial { background: var(--color-light-bg); border-radius: 12px; padding: 24px; }
.stars { color: var(--color-tertiary); margin-bottom: 12px; }
.testimonial .author { margin-top: 16px; display: flex; align-items: center; gap: 12px; }
.testimonial .author img { width: 44px; height: 44px; border-radius: 50%; object-fit: cover; }
.testimonial .role { color: var(--color-muted-text); font-size: 0.85rem; }
.faq details { border-bottom: 1px solid var(--color-accent-light); padding: 16px 0; }
.faq summary { cursor: pointer; font-weight: 600; }
.faq details p { margin-top: 12px; color: var(--color-subtitle-text); }
.final-cta { background: var(--color-dark-bg); color: #ffffff; text-align: center; padding: 96px 24px; }
.final-cta h2 { color: #ffffff; font-size: 2.2rem; margin: 16px 0; }
.final-cta .subtitle { color: var(--color-subtitle-text); max-width: 560px; margin: 0 auto 28px; }
.final-cta .guarantee { margin-top: 20px; font-size: 0.85rem; color: var(--color-muted-text); }
</style>
</head>
<body>
{{range .Sections}}{{.}}
{{end}}</body>
</html>
`

const heroTemplate = `<section class="hero">
<div class="container">
{{if .Badge}}<span class="badge">{{.Badge}}</span>{{end}}
<h1>{{.Headline}}</h1>
{{if .Subheadline}}<p class="subheadline">{{.Subheadline}}</p>{{end}}
<a class="cta-button" href="#final-cta">{{.CTALabel}}</a>
{{if .CTASubtext}}<p class="cta-subtext">{{.CTASubtext}}</p>{{end}}
{{if .HeroImage}}<img src="{{.HeroImage}}" alt="">{{end}}
</div>
</section>`

const problemTemplate = `<section class="problem">
<div class="container">
{{if .Title}}<h2>{{.Title}}</h2>{{end}}
{{if .Agitation}}<div class="agitation">{{.Agitation}}</div>{{end}}
<div class="columns">
{{if .PainPoints}}<ul>
{{range .PainPoints}}<li>{{.}}</li>
{{end}}</ul>{{end}}
{{if .Risks}}<ul>
{{range .Risks}}<li>{{.}}</li>
{{end}}</ul>{{end}}
</div>
</div>
</section>`

const methodTemplate = `<section class="method">
<div class="container">
{{if .Title}}<h2>{{.Title}}</h2>{{end}}
{{if .Description}}<p>{{.Description}}</p>{{end}}
<div class="pillars">
{{range .Pillars}}<div class="pillar">
{{if .IconURL}}<img src="{{.IconURL}}" alt="" width="40" height="40">{{else}}<div class="number">{{.Number}}</div>{{end}}
<h3>{{.Title}}</h3>
<p>{{.Description}}</p>
</div>
{{end}}</div>
</div>
</section>`

const transformationTemplate = `<section class="transformation">
<div class="container">
{{if .Title}}<h2>{{.Title}}</h2>{{end}}
<div class="cards">
{{if .Left}}<div class="card before">
<h3>{{.Left.Title}}</h3>
<p>{{.Left.Description}}</p>
</div>{{end}}
{{if .Right}}<div class="card after">
<h3>{{.Right.Title}}</h3>
<p>{{.Right.Description}}</p>
</div>{{end}}
</div>
</div>
</section>`

const programTemplate = `<section class="program">
<div class="container">
{{if .Title}}<h2>{{.Title}}</h2>{{end}}
{{range .Modules}}<div class="module">
<div class="module-index">{{.Index}}</div>
<div>
<h3>{{.Title}}{{if gt .LessonsCount 0}}<span class="lessons-badge">{{.LessonsCount}} lessons</span>{{end}}</h3>
<p>{{.Description}}</p>
</div>
</div>
{{end}}</div>
</section>`

const trainerTemplate = `<section class="trainer">
<div class="container">
{{if .Tagline}}<p class="tagline">{{.Tagline}}</p>{{end}}
{{if .Title}}<h2>{{.Title}}</h2>{{end}}
{{if .Bio}}<div class="bio">{{.Bio}}</div>{{end}}
{{if .Credentials}}<ul>
{{range .Credentials}}<li>{{.}}</li>
{{end}}</ul>{{end}}
{{if .Quote}}<blockquote>{{.Quote}}</blockquote>{{end}}
</div>
</section>`

const testimonialsTemplate = `<section class="testimonials">
<div class="container">
<div class="grid">
{{range .Items}}<div class="testimonial">
<div class="stars">{{range .Stars}}&#9733;{{end}}</div>
<p>{{.Text}}</p>
<div class="author">
{{if .Avatar}}<img src="{{.Avatar}}" alt="">{{end}}
<div>
<strong>{{.Name}}</strong>
{{if .Role}}<div class="role">{{.Role}}</div>{{end}}
</div>
</div>
</div>
{{end}}</div>
</div>
</section>`

const faqTemplate = `<section class="faq">
<div class="container">
{{range .Items}}<details name="faq">
<summary>{{.Question}}</summary>
<p>{{.Answer}}</p>
</details>
{{end}}</div>
</section>`

const finalCTATemplate = `<section class="final-cta" id="final-cta">
<div class="container">
{{if .UrgencyBadge}}<span class="badge">{{.UrgencyBadge}}</span>{{end}}
<h2>{{.Title}}</h2>
{{if .Subtitle}}<p class="subtitle">{{.Subtitle}}</p>{{end}}
<a class="cta-button" href="#">{{.CTALabel}}</a>
{{if .Guarantee}}<p class="guarantee">{{.Guarantee}}</p>{{end}}
</div>
</section>`

var sectionTemplates = map[string]string{
	string(models.SectionHero):           heroTemplate,
	string(models.SectionProblem):        problemTemplate,
	string(models.SectionMethod):         methodTemplate,
	string(models.SectionTransformation): transformationTemplate,
	string(models.SectionProgram):        programTemplate,
	string(models.SectionTrainer):        trainerTemplate,
	string(models.SectionTestimonials):   testimonialsTemplate,
	string(models.SectionFAQ):            faqTemplate,
	string(models.SectionFinalCTA):       finalCTATemplate,
}
