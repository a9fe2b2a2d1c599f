package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumaacademy/atelier/internal/models"
)

func TestParseReply_PlainJSON(t *testing.T) {
	raw := `{"message":"Tightened the headline.","suggestion":{"section":"hero","new_value":{"headline":{"en":"Ship Go in six weeks"}}}}`

	reply := parseReply(raw)

	assert.Equal(t, "Tightened the headline.", reply.Message)
	require.NotNil(t, reply.Suggestion)
	assert.Equal(t, models.SectionHero, reply.Suggestion.Section)
	assert.Empty(t, reply.Suggestion.Field)
}

func TestParseReply_CodeFencedJSON(t *testing.T) {
	raw := "```json\n{\"message\":\"Here you go.\",\"suggestion\":{\"section\":\"faq\",\"new_value\":[{\"question\":{\"en\":\"Q\"},\"answer\":{\"en\":\"A\"}}]}}\n```"

	reply := parseReply(raw)

	assert.Equal(t, "Here you go.", reply.Message)
	require.NotNil(t, reply.Suggestion)
	assert.Equal(t, models.SectionFAQ, reply.Suggestion.Section)
}

func TestParseReply_JSONEmbeddedInProse(t *testing.T) {
	raw := `Sure! Here is my proposal:
{"message":"Sharper problem framing.","suggestion":{"section":"problem","new_value":{"title":{"en":"Still stuck?"}}}}
Let me know what you think.`

	reply := parseReply(raw)

	assert.Equal(t, "Sharper problem framing.", reply.Message)
	require.NotNil(t, reply.Suggestion)
	assert.Equal(t, models.SectionProblem, reply.Suggestion.Section)
}

func TestParseReply_NonJSONDegradesToPlainMessage(t *testing.T) {
	raw := "I can't propose anything concrete without more context."

	reply := parseReply(raw)

	assert.Equal(t, raw, reply.Message)
	assert.Nil(t, reply.Suggestion)
}

func TestParseReply_UnknownSectionDropsSuggestion(t *testing.T) {
	raw := `{"message":"Added a payment plan.","suggestion":{"section":"payment","new_value":{"plan":"monthly"}}}`

	reply := parseReply(raw)

	assert.Equal(t, "Added a payment plan.", reply.Message)
	assert.Nil(t, reply.Suggestion)
}

func TestParseReply_MissingNewValueDropsSuggestion(t *testing.T) {
	raw := `{"message":"Thinking about the hero.","suggestion":{"section":"hero"}}`

	reply := parseReply(raw)

	assert.Equal(t, "Thinking about the hero.", reply.Message)
	assert.Nil(t, reply.Suggestion)
}

func TestParseReply_EmptyMessageFallsBackToRaw(t *testing.T) {
	raw := `{"suggestion":{"section":"hero","new_value":{"headline":{"en":"H"}}}}`

	reply := parseReply(raw)

	assert.Equal(t, raw, reply.Message)
	require.NotNil(t, reply.Suggestion)
}

func TestParseReply_FieldLevelSuggestion(t *testing.T) {
	raw := `{"message":"Just the headline.","suggestion":{"section":"hero","field":"headline","new_value":{"en":"Better headline"}}}`

	reply := parseReply(raw)

	require.NotNil(t, reply.Suggestion)
	assert.Equal(t, "headline", reply.Suggestion.Field)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
}

func TestExtractJSONObject(t *testing.T) {
	obj, ok := extractJSONObject(`prefix {"a":{"b":"}"}} suffix`)
	require.True(t, ok)
	assert.Equal(t, `{"a":{"b":"}"}}`, obj)

	_, ok = extractJSONObject("no braces here")
	assert.False(t, ok)

	_, ok = extractJSONObject(`{"unclosed":`)
	assert.False(t, ok)
}
