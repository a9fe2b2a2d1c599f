package agent

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lumaacademy/atelier/internal/models"
)

// systemPromptTemplate instructs the model to answer with a strict JSON
// envelope so suggestions can be machine-applied. The current page document
// and design config are embedded so rewrites stay consistent with what the
// visitor actually sees.
const systemPromptTemplate = `You are a conversion copywriting assistant for course landing pages.

You help the page owner improve their copy. When the user asks for a change,
respond with a concrete rewrite of the affected section. When they ask a
question, just answer it.

Respond ONLY with a JSON object, no other text:

{
  "message": "<your reply to the user>",
  "suggestion": {
    "section": "<section key>",
    "field": "<optional: single field name when changing one field only>",
    "new_value": <the full replacement value for the section or field>
  }
}

Omit "suggestion" entirely when you are not proposing a change.

Rules:
- "section" must be one of: %s
- "new_value" must be the COMPLETE replacement for the section (or field),
  not a partial patch. Anything you leave out will be deleted.
- Text values use the shape {"en": "..."} matching the existing content.
- Keep the owner's voice and factual claims. Never invent prices,
  guarantees, or testimonials.

Current page content:
%s

Current design config:
%s`

// buildSystemPrompt renders the system prompt with the live page state.
func buildSystemPrompt(pageContent map[string]any, design models.DesignConfig) string {
	sections := make([]string, len(models.SectionOrder))
	for i, key := range models.SectionOrder {
		sections[i] = string(key)
	}

	contentJSON, err := json.MarshalIndent(pageContent, "", "  ")
	if err != nil {
		contentJSON = []byte("{}")
	}
	designJSON, err := json.MarshalIndent(design, "", "  ")
	if err != nil {
		designJSON = []byte("{}")
	}

	return fmt.Sprintf(systemPromptTemplate,
		strings.Join(sections, ", "),
		string(contentJSON),
		string(designJSON),
	)
}
