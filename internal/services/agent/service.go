package agent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/lumaacademy/atelier/internal/common"
	"github.com/lumaacademy/atelier/internal/content"
	"github.com/lumaacademy/atelier/internal/interfaces"
	"github.com/lumaacademy/atelier/internal/models"
)

// timeoutReply is shown in the conversation when the model does not answer
// in time. Slow providers must not surface as broken chat turns.
const timeoutReply = "I wasn't able to come up with a suggestion in time. Please try again."

// Service runs the copywriting chat and owns the suggestion lifecycle.
type Service struct {
	llmService interfaces.LLMService
	pages      interfaces.PageStorage
	chats      interfaces.ChatStorage
	events     interfaces.EventService
	logger     arbor.ILogger
	maxHistory int

	// Per-page rate limiters so one busy editor can't starve the rest.
	limiterMu sync.Mutex
	limiters  map[string]*rate.Limiter
	interval  time.Duration
	burst     int
}

// NewService creates the agent service.
func NewService(
	llmService interfaces.LLMService,
	pages interfaces.PageStorage,
	chats interfaces.ChatStorage,
	events interfaces.EventService,
	cfg *common.AgentConfig,
	logger arbor.ILogger,
) (*Service, error) {
	interval, err := time.ParseDuration(cfg.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid agent rate limit '%s': %w", cfg.RateLimit, err)
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	maxHistory := cfg.MaxHistory
	if maxHistory <= 0 {
		maxHistory = 20
	}

	return &Service{
		llmService: llmService,
		pages:      pages,
		chats:      chats,
		events:     events,
		logger:     logger,
		maxHistory: maxHistory,
		limiters:   map[string]*rate.Limiter{},
		interval:   interval,
		burst:      burst,
	}, nil
}

// ErrRateLimited is returned when a page's chat is being driven faster than
// the configured interval allows.
var ErrRateLimited = errors.New("too many agent requests for this page, slow down")

// Propose sends a user turn to the model and persists both sides of the
// exchange. The assistant reply carries a suggestion in state "proposed"
// when the model offered one.
func (s *Service) Propose(ctx context.Context, pageID string, userText string) (*models.ChatMessage, error) {
	if userText == "" {
		return nil, fmt.Errorf("message text is required")
	}

	page, err := s.pages.Get(ctx, pageID)
	if err != nil {
		return nil, err
	}

	if !s.limiter(pageID).Allow() {
		return nil, ErrRateLimited
	}

	userMessage := &models.ChatMessage{
		ID:      common.NewMessageID(),
		PageID:  pageID,
		Role:    "user",
		Content: userText,
	}
	if err := s.chats.SaveMessage(ctx, userMessage); err != nil {
		return nil, fmt.Errorf("failed to save user message: %w", err)
	}

	response, err := s.llmService.Chat(ctx, s.buildConversation(ctx, page, userText))
	if err != nil {
		s.logger.Warn().Err(err).Str("page_id", pageID).Msg("Agent completion failed")
		// Timeouts and provider errors surface as a chat turn, not a broken
		// request.
		return s.saveAssistantMessage(ctx, pageID, agentReply{Message: timeoutReply})
	}

	reply := parseReply(response)
	if reply.Suggestion != nil {
		s.attachOldValue(page, reply.Suggestion)
	}

	return s.saveAssistantMessage(ctx, pageID, reply)
}

// Apply writes the suggestion of the given message into the page document
// and marks the message applied. The content write replaces the target
// section (or field) wholesale and must be acknowledged before the state
// transition is recorded; either failure leaves the message proposed so
// the user can retry. A retry after a failed state write replays the
// section replacement, which is idempotent.
func (s *Service) Apply(ctx context.Context, pageID string, messageID string) (*models.ChatMessage, error) {
	message, err := s.pendingMessage(ctx, pageID, messageID)
	if err != nil {
		return nil, err
	}

	suggestion := message.Suggestion
	if suggestion.Field != "" {
		err = s.pages.ApplyField(ctx, pageID, suggestion.Section, suggestion.Field, suggestion.NewValue)
	} else {
		err = s.pages.ApplySection(ctx, pageID, suggestion.Section, suggestion.NewValue)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to apply suggestion: %w", err)
	}

	message.State = models.SuggestionApplied
	if err := s.chats.SaveMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to update suggestion state: %w", err)
	}

	s.publishSuggestionChanged(ctx, pageID, message)
	return message, nil
}

// Discard marks the suggestion rejected. The page document is untouched.
func (s *Service) Discard(ctx context.Context, pageID string, messageID string) (*models.ChatMessage, error) {
	message, err := s.pendingMessage(ctx, pageID, messageID)
	if err != nil {
		return nil, err
	}

	message.State = models.SuggestionDiscarded
	if err := s.chats.SaveMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to update suggestion state: %w", err)
	}

	s.publishSuggestionChanged(ctx, pageID, message)
	return message, nil
}

// SupersedePending marks every pending suggestion targeting the given
// section as superseded. Called when the section is edited manually, so a
// stale proposal can no longer be applied over the manual edit.
func (s *Service) SupersedePending(ctx context.Context, pageID string, section models.SectionKey) error {
	pending, err := s.chats.GetPendingByPage(ctx, pageID)
	if err != nil {
		return err
	}

	for _, message := range pending {
		if message.Suggestion.Section != section {
			continue
		}
		message.State = models.SuggestionSuperseded
		if err := s.chats.SaveMessage(ctx, message); err != nil {
			return fmt.Errorf("failed to supersede suggestion %s: %w", message.ID, err)
		}
		s.publishSuggestionChanged(ctx, pageID, message)
	}
	return nil
}

// History returns the page's conversation, oldest first.
func (s *Service) History(ctx context.Context, pageID string) ([]*models.ChatMessage, error) {
	return s.chats.GetMessagesByPage(ctx, pageID)
}

// pendingMessage loads a message and verifies it belongs to the page and
// still carries an undecided suggestion. Terminal states reject further
// transitions so a double apply or a discard-after-apply cannot happen.
func (s *Service) pendingMessage(ctx context.Context, pageID string, messageID string) (*models.ChatMessage, error) {
	message, err := s.chats.GetMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if message.PageID != pageID {
		return nil, fmt.Errorf("message %s does not belong to page %s", messageID, pageID)
	}
	if message.Suggestion == nil {
		return nil, fmt.Errorf("message %s carries no suggestion", messageID)
	}
	if message.State.IsTerminal() {
		return nil, fmt.Errorf("suggestion already %s", message.State)
	}
	return message, nil
}

// buildConversation assembles the model input: system prompt with live page
// state, recent history, then the new user turn.
func (s *Service) buildConversation(ctx context.Context, page *models.LandingPage, userText string) []interfaces.Message {
	messages := []interfaces.Message{
		{Role: "system", Content: buildSystemPrompt(page.Content, page.Design)},
	}

	history, err := s.chats.GetMessagesByPage(ctx, page.ID)
	if err != nil {
		s.logger.Warn().Err(err).Str("page_id", page.ID).Msg("Failed to load chat history, continuing without it")
		history = nil
	}
	if len(history) > s.maxHistory {
		history = history[len(history)-s.maxHistory:]
	}
	for _, m := range history {
		messages = append(messages, interfaces.Message{Role: m.Role, Content: m.Content})
	}

	return append(messages, interfaces.Message{Role: "user", Content: userText})
}

// attachOldValue records the current value of the targeted section or field
// so the UI can show a before/after diff.
func (s *Service) attachOldValue(page *models.LandingPage, suggestion *models.Suggestion) {
	doc := content.Resolve(page.Content)
	raw, ok := doc.Section(suggestion.Section)
	if !ok {
		return
	}
	if suggestion.Field == "" {
		suggestion.OldValue = raw
		return
	}
	if m, isMap := raw.(map[string]any); isMap {
		suggestion.OldValue = m[suggestion.Field]
	}
}

func (s *Service) saveAssistantMessage(ctx context.Context, pageID string, reply agentReply) (*models.ChatMessage, error) {
	message := &models.ChatMessage{
		ID:         common.NewMessageID(),
		PageID:     pageID,
		Role:       "assistant",
		Content:    reply.Message,
		Suggestion: reply.Suggestion,
	}
	if reply.Suggestion != nil {
		message.State = models.SuggestionProposed
	}

	if err := s.chats.SaveMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to save assistant message: %w", err)
	}
	return message, nil
}

func (s *Service) limiter(pageID string) *rate.Limiter {
	s.limiterMu.Lock()
	defer s.limiterMu.Unlock()

	limiter, ok := s.limiters[pageID]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(s.interval), s.burst)
		s.limiters[pageID] = limiter
	}
	return limiter
}

func (s *Service) publishSuggestionChanged(ctx context.Context, pageID string, message *models.ChatMessage) {
	if s.events == nil {
		return
	}
	err := s.events.Publish(ctx, interfaces.Event{
		Type: interfaces.EventSuggestionChanged,
		Payload: map[string]any{
			"page_id":    pageID,
			"message_id": message.ID,
			"state":      message.State,
		},
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to publish suggestion event")
	}
}
