package badger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/lumaacademy/atelier/internal/interfaces"
	"github.com/lumaacademy/atelier/internal/models"
)

// ChatStorage implements the ChatStorage interface for Badger
type ChatStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewChatStorage creates a new ChatStorage instance
func NewChatStorage(db *BadgerDB, logger arbor.ILogger) interfaces.ChatStorage {
	return &ChatStorage{
		db:     db,
		logger: logger,
	}
}

func (s *ChatStorage) SaveMessage(ctx context.Context, message *models.ChatMessage) error {
	if message.ID == "" {
		return fmt.Errorf("message ID is required")
	}
	if message.PageID == "" {
		return fmt.Errorf("message page ID is required")
	}

	now := time.Now()
	if message.CreatedAt.IsZero() {
		message.CreatedAt = now
	}
	message.UpdatedAt = now

	if err := s.db.Store().Upsert(message.ID, message); err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}
	return nil
}

func (s *ChatStorage) GetMessage(ctx context.Context, id string) (*models.ChatMessage, error) {
	var message models.ChatMessage
	if err := s.db.Store().Get(id, &message); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("chat message not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get chat message: %w", err)
	}
	return &message, nil
}

func (s *ChatStorage) GetMessagesByPage(ctx context.Context, pageID string) ([]*models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := s.db.Store().Find(&messages, badgerhold.Where("PageID").Eq(pageID).Index("PageID"))
	if err != nil {
		return nil, fmt.Errorf("failed to find chat messages: %w", err)
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	result := make([]*models.ChatMessage, len(messages))
	for i := range messages {
		result[i] = &messages[i]
	}
	return result, nil
}

func (s *ChatStorage) GetPendingByPage(ctx context.Context, pageID string) ([]*models.ChatMessage, error) {
	messages, err := s.GetMessagesByPage(ctx, pageID)
	if err != nil {
		return nil, err
	}

	var pending []*models.ChatMessage
	for _, m := range messages {
		if m.HasPendingSuggestion() {
			pending = append(pending, m)
		}
	}
	return pending, nil
}

func (s *ChatStorage) DeleteMessagesByPage(ctx context.Context, pageID string) error {
	err := s.db.Store().DeleteMatching(&models.ChatMessage{}, badgerhold.Where("PageID").Eq(pageID).Index("PageID"))
	if err != nil {
		return fmt.Errorf("failed to delete chat messages: %w", err)
	}
	return nil
}
