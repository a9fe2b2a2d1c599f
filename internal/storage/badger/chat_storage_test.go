package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumaacademy/atelier/internal/common"
	"github.com/lumaacademy/atelier/internal/models"
)

func newTestChatStorage(t *testing.T) *ChatStorage {
	t.Helper()
	return NewChatStorage(newTestDB(t), common.GetLogger()).(*ChatStorage)
}

func chatMessage(id, pageID, role string, createdAt time.Time) *models.ChatMessage {
	return &models.ChatMessage{
		ID:        id,
		PageID:    pageID,
		Role:      role,
		Content:   "message " + id,
		CreatedAt: createdAt,
	}
}

func TestChatStorage_SaveAndGet(t *testing.T) {
	storage := newTestChatStorage(t)
	ctx := context.Background()

	msg := chatMessage("m1", "page-1", "user", time.Time{})
	require.NoError(t, storage.SaveMessage(ctx, msg))
	assert.False(t, msg.CreatedAt.IsZero())

	loaded, err := storage.GetMessage(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "message m1", loaded.Content)

	_, err = storage.GetMessage(ctx, "missing")
	assert.Error(t, err)
}

func TestChatStorage_SaveRequiresIDs(t *testing.T) {
	storage := newTestChatStorage(t)
	ctx := context.Background()

	assert.Error(t, storage.SaveMessage(ctx, &models.ChatMessage{PageID: "p"}))
	assert.Error(t, storage.SaveMessage(ctx, &models.ChatMessage{ID: "m"}))
}

func TestChatStorage_GetMessagesByPageOrderedOldestFirst(t *testing.T) {
	storage := newTestChatStorage(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	require.NoError(t, storage.SaveMessage(ctx, chatMessage("m2", "page-1", "assistant", base.Add(2*time.Minute))))
	require.NoError(t, storage.SaveMessage(ctx, chatMessage("m1", "page-1", "user", base.Add(time.Minute))))
	require.NoError(t, storage.SaveMessage(ctx, chatMessage("m3", "page-1", "user", base.Add(3*time.Minute))))
	require.NoError(t, storage.SaveMessage(ctx, chatMessage("other", "page-2", "user", base)))

	messages, err := storage.GetMessagesByPage(ctx, "page-1")
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "m1", messages[0].ID)
	assert.Equal(t, "m2", messages[1].ID)
	assert.Equal(t, "m3", messages[2].ID)
}

func TestChatStorage_GetPendingByPage(t *testing.T) {
	storage := newTestChatStorage(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	pending := chatMessage("m1", "page-1", "assistant", base)
	pending.Suggestion = &models.Suggestion{Section: models.SectionHero, NewValue: map[string]any{"headline": "H"}}
	pending.State = models.SuggestionProposed
	require.NoError(t, storage.SaveMessage(ctx, pending))

	decided := chatMessage("m2", "page-1", "assistant", base.Add(time.Minute))
	decided.Suggestion = &models.Suggestion{Section: models.SectionFAQ, NewValue: []any{}}
	decided.State = models.SuggestionApplied
	require.NoError(t, storage.SaveMessage(ctx, decided))

	plain := chatMessage("m3", "page-1", "user", base.Add(2*time.Minute))
	require.NoError(t, storage.SaveMessage(ctx, plain))

	got, err := storage.GetPendingByPage(ctx, "page-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "m1", got[0].ID)
}

func TestChatStorage_DeleteMessagesByPage(t *testing.T) {
	storage := newTestChatStorage(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, storage.SaveMessage(ctx, chatMessage("m1", "page-1", "user", now)))
	require.NoError(t, storage.SaveMessage(ctx, chatMessage("m2", "page-1", "assistant", now)))
	require.NoError(t, storage.SaveMessage(ctx, chatMessage("m3", "page-2", "user", now)))

	require.NoError(t, storage.DeleteMessagesByPage(ctx, "page-1"))

	gone, err := storage.GetMessagesByPage(ctx, "page-1")
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := storage.GetMessagesByPage(ctx, "page-2")
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestCourseStorage_CRUD(t *testing.T) {
	storage := NewCourseStorage(newTestDB(t), common.GetLogger()).(*CourseStorage)
	ctx := context.Background()

	course := &models.Course{ID: "c1", Title: "Practical Go", Price: 299}
	require.NoError(t, storage.Save(ctx, course))

	loaded, err := storage.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Practical Go", loaded.Title)

	courses, err := storage.List(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 1)

	require.NoError(t, storage.Delete(ctx, "c1"))
	_, err = storage.Get(ctx, "c1")
	assert.Error(t, err)

	assert.Error(t, storage.Save(ctx, &models.Course{Title: "no id"}))
}
