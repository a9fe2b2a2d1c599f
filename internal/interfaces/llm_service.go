package interfaces

import (
	"context"
)

// LLMMode represents the operational mode of the LLM service
type LLMMode string

const (
	// LLMModeCloud indicates the service uses a cloud-based LLM API
	LLMModeCloud LLMMode = "cloud"

	// LLMModeDisabled indicates no provider is configured; chat endpoints
	// respond with a configuration error instead of completions
	LLMModeDisabled LLMMode = "disabled"
)

// Message represents a single message in a chat conversation
type Message struct {
	// Role identifies the message sender: "user", "assistant", or "system"
	Role string

	// Content contains the text content of the message
	Content string
}

// LLMService defines the interface for chat completions used by the
// copywriting agent. Implementations wrap a specific provider SDK.
type LLMService interface {
	// Chat generates a completion for the given conversation. The system
	// prompt travels as the first message with role "system".
	Chat(ctx context.Context, messages []Message) (string, error)

	// HealthCheck verifies the provider is reachable and credentials work
	HealthCheck(ctx context.Context) error

	// GetMode returns the operational mode of the service
	GetMode() LLMMode

	// Close releases any resources held by the service
	Close() error
}
