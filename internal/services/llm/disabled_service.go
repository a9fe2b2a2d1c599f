package llm

import (
	"context"
	"errors"

	"github.com/ternarybob/arbor"

	"github.com/lumaacademy/atelier/internal/interfaces"
)

// ErrProviderDisabled is returned by every completion attempt when no LLM
// provider is configured.
var ErrProviderDisabled = errors.New("llm provider is disabled: configure claude or gemini to enable chat")

// DisabledService implements the LLMService interface when no provider is
// configured. Completions always fail with a configuration error so chat
// endpoints can surface the state instead of pretending to work.
type DisabledService struct {
	logger arbor.ILogger
}

// NewDisabledService creates the no-provider LLM service.
func NewDisabledService(logger arbor.ILogger) *DisabledService {
	logger.Warn().Msg("LLM provider disabled, chat endpoints will report a configuration error")
	return &DisabledService{logger: logger}
}

func (s *DisabledService) Chat(ctx context.Context, messages []interfaces.Message) (string, error) {
	return "", ErrProviderDisabled
}

func (s *DisabledService) HealthCheck(ctx context.Context) error {
	return ErrProviderDisabled
}

func (s *DisabledService) GetMode() interfaces.LLMMode {
	return interfaces.LLMModeDisabled
}

func (s *DisabledService) Close() error {
	return nil
}
