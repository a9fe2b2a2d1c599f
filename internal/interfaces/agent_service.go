package interfaces

import (
	"context"

	"github.com/lumaacademy/atelier/internal/models"
)

// AgentService runs the copywriting chat for one landing page and owns the
// suggestion lifecycle: propose, then exactly one of apply, discard, or
// supersede.
type AgentService interface {
	// Propose sends a user turn to the model and persists both sides of the
	// exchange. The returned assistant message carries a suggestion in state
	// "proposed" when the model offered one.
	Propose(ctx context.Context, pageID string, userText string) (*models.ChatMessage, error)

	// Apply writes the suggestion of the given message into the page
	// document and marks the message applied. A message without a pending
	// suggestion is rejected.
	Apply(ctx context.Context, pageID string, messageID string) (*models.ChatMessage, error)

	// Discard marks the suggestion rejected. The page document is untouched.
	Discard(ctx context.Context, pageID string, messageID string) (*models.ChatMessage, error)

	// SupersedePending marks every pending suggestion targeting the given
	// section as superseded. Called when the section is edited manually.
	SupersedePending(ctx context.Context, pageID string, section models.SectionKey) error

	// History returns the page's conversation, oldest first.
	History(ctx context.Context, pageID string) ([]*models.ChatMessage, error)
}
