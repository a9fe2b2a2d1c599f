package agent

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lumaacademy/atelier/internal/models"
)

var validate = validator.New()

// agentReply is the JSON envelope the model is instructed to answer with.
type agentReply struct {
	Message    string             `json:"message"`
	Suggestion *models.Suggestion `json:"suggestion,omitempty"`
}

// parseReply extracts the reply envelope from raw model output. Models
// occasionally wrap JSON in markdown code fences or leading prose; both are
// tolerated. A reply that is not JSON at all is degraded to a plain message.
// An envelope with an invalid suggestion keeps the message and drops the
// suggestion.
func parseReply(raw string) agentReply {
	text := stripCodeFences(raw)

	var reply agentReply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		// Try to find an embedded JSON object before giving up
		if extracted, ok := extractJSONObject(text); ok {
			if err := json.Unmarshal([]byte(extracted), &reply); err == nil {
				return sanitize(reply, raw)
			}
		}
		return agentReply{Message: strings.TrimSpace(raw)}
	}

	return sanitize(reply, raw)
}

// sanitize validates the parsed envelope. A malformed suggestion must not
// surface as a pending proposal, so it is dropped rather than erroring the
// whole turn.
func sanitize(reply agentReply, raw string) agentReply {
	if reply.Message == "" {
		reply.Message = strings.TrimSpace(raw)
	}

	if reply.Suggestion != nil {
		if !validSuggestion(reply.Suggestion) {
			reply.Suggestion = nil
		}
	}
	return reply
}

func validSuggestion(s *models.Suggestion) bool {
	if err := validate.Struct(s); err != nil {
		return false
	}
	return models.IsKnownSection(s.Section)
}

// stripCodeFences removes a surrounding markdown code fence when present.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// extractJSONObject returns the first balanced top-level JSON object in text.
func extractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
