package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumaacademy/atelier/internal/common"
	"github.com/lumaacademy/atelier/internal/interfaces"
)

func TestConvertMessagesToClaude(t *testing.T) {
	messages := []interfaces.Message{
		{Role: "system", Content: "You are a copywriter."},
		{Role: "user", Content: "Improve the hero."},
		{Role: "assistant", Content: "Here is a draft."},
		{Role: "user", Content: "Shorter."},
	}

	converted, system, err := convertMessagesToClaude(messages)
	require.NoError(t, err)

	assert.Equal(t, "You are a copywriter.", system)
	// System turns are extracted, the rest keep their order
	assert.Len(t, converted, 3)
}

func TestConvertMessagesToClaude_Empty(t *testing.T) {
	_, _, err := convertMessagesToClaude(nil)
	assert.Error(t, err)
}

func TestConvertMessagesToClaude_RequiresUserTurn(t *testing.T) {
	_, _, err := convertMessagesToClaude([]interfaces.Message{
		{Role: "system", Content: "system only"},
		{Role: "assistant", Content: "hello"},
	})
	assert.Error(t, err)
}

func TestConvertMessagesToClaude_FirstSystemWins(t *testing.T) {
	_, system, err := convertMessagesToClaude([]interfaces.Message{
		{Role: "system", Content: "first"},
		{Role: "system", Content: "second"},
		{Role: "user", Content: "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "first", system)
}

func TestNewClaudeService_RequiresAPIKey(t *testing.T) {
	_, err := NewClaudeService(&common.ClaudeConfig{}, common.GetLogger())
	assert.Error(t, err)
}

func TestNewClaudeService_Defaults(t *testing.T) {
	service, err := NewClaudeService(&common.ClaudeConfig{APIKey: "sk-ant-test"}, common.GetLogger())
	require.NoError(t, err)
	defer service.Close()

	assert.Equal(t, interfaces.LLMModeCloud, service.GetMode())
}

func TestNewGeminiService_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiService(&common.GeminiConfig{}, common.GetLogger())
	assert.Error(t, err)
}

func TestConvertMessagesToGemini(t *testing.T) {
	messages := []interfaces.Message{
		{Role: "system", Content: "You are a copywriter."},
		{Role: "user", Content: "Improve the hero."},
		{Role: "assistant", Content: "Here is a draft."},
	}

	contents, system, err := convertMessagesToGemini(messages)
	require.NoError(t, err)

	assert.Equal(t, "You are a copywriter.", system)
	assert.Len(t, contents, 2)
}

func TestNewLLMService_UnknownProvider(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.LLM.Provider = "openai"

	_, err := NewLLMService(cfg, common.GetLogger())
	assert.Error(t, err)
}

func TestNewLLMService_DisabledProvider(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.LLM.Provider = "disabled"

	service, err := NewLLMService(cfg, common.GetLogger())
	require.NoError(t, err)
	assert.Equal(t, interfaces.LLMModeDisabled, service.GetMode())

	_, err = service.Chat(context.Background(), []interfaces.Message{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, ErrProviderDisabled)
	assert.ErrorIs(t, service.HealthCheck(context.Background()), ErrProviderDisabled)
}
