package llm

import (
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/lumaacademy/atelier/internal/common"
	"github.com/lumaacademy/atelier/internal/interfaces"
)

// NewLLMService creates the appropriate LLM service implementation based on
// the configured provider.
func NewLLMService(cfg *common.Config, logger arbor.ILogger) (interfaces.LLMService, error) {
	logger.Info().Str("provider", cfg.LLM.Provider).Msg("Initializing LLM service")

	switch cfg.LLM.Provider {
	case "claude":
		return NewClaudeService(&cfg.Claude, logger)

	case "gemini":
		return NewGeminiService(&cfg.Gemini, logger)

	case "disabled":
		return NewDisabledService(logger), nil

	default:
		return nil, fmt.Errorf("invalid llm provider '%s': must be 'claude', 'gemini' or 'disabled'", cfg.LLM.Provider)
	}
}
