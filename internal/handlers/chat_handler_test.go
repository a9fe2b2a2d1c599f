package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumaacademy/atelier/internal/common"
	"github.com/lumaacademy/atelier/internal/interfaces"
	"github.com/lumaacademy/atelier/internal/models"
	"github.com/lumaacademy/atelier/internal/services/agent"
)

func TestProposeHandler(t *testing.T) {
	agentService := &mockAgentService{
		proposeFunc: func(ctx context.Context, pageID string, userText string) (*models.ChatMessage, error) {
			return &models.ChatMessage{
				ID:      "m1",
				PageID:  pageID,
				Role:    "assistant",
				Content: "How about this?",
				State:   models.SuggestionProposed,
				Suggestion: &models.Suggestion{
					Section:  models.SectionHero,
					NewValue: map[string]any{"headline": map[string]any{"en": "New"}},
				},
			}, nil
		},
	}
	handler := NewChatHandler(agentService, &mockLLMService{}, common.GetLogger())

	req := httptest.NewRequest("POST", "/api/pages/page-1/chat", strings.NewReader(`{"message":"improve the hero"}`))
	rec := httptest.NewRecorder()
	handler.ProposeHandler(rec, req, "page-1")

	assert.Equal(t, http.StatusOK, rec.Code)

	var msg models.ChatMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Equal(t, "assistant", msg.Role)
	require.NotNil(t, msg.Suggestion)
	assert.Equal(t, models.SuggestionProposed, msg.State)
}

func TestProposeHandler_EmptyMessage(t *testing.T) {
	handler := NewChatHandler(&mockAgentService{}, &mockLLMService{}, common.GetLogger())

	req := httptest.NewRequest("POST", "/api/pages/page-1/chat", strings.NewReader(`{"message":""}`))
	rec := httptest.NewRecorder()
	handler.ProposeHandler(rec, req, "page-1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProposeHandler_DisabledProvider(t *testing.T) {
	agentService := &mockAgentService{
		proposeFunc: func(ctx context.Context, pageID string, userText string) (*models.ChatMessage, error) {
			t.Fatal("agent must not be called when the provider is disabled")
			return nil, nil
		},
	}
	handler := NewChatHandler(agentService, &mockLLMService{mode: interfaces.LLMModeDisabled}, common.GetLogger())

	req := httptest.NewRequest("POST", "/api/pages/page-1/chat", strings.NewReader(`{"message":"improve the hero"}`))
	rec := httptest.NewRecorder()
	handler.ProposeHandler(rec, req, "page-1")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "no LLM provider is configured")
}

func TestProposeHandler_RateLimited(t *testing.T) {
	agentService := &mockAgentService{
		proposeFunc: func(ctx context.Context, pageID string, userText string) (*models.ChatMessage, error) {
			return nil, agent.ErrRateLimited
		},
	}
	handler := NewChatHandler(agentService, &mockLLMService{}, common.GetLogger())

	req := httptest.NewRequest("POST", "/api/pages/page-1/chat", strings.NewReader(`{"message":"again"}`))
	rec := httptest.NewRecorder()
	handler.ProposeHandler(rec, req, "page-1")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestApplyHandler_ConflictOnTerminalState(t *testing.T) {
	agentService := &mockAgentService{
		applyFunc: func(ctx context.Context, pageID string, messageID string) (*models.ChatMessage, error) {
			return nil, fmt.Errorf("suggestion already applied")
		},
	}
	handler := NewChatHandler(agentService, &mockLLMService{}, common.GetLogger())

	req := httptest.NewRequest("POST", "/api/pages/page-1/chat/m1/apply", nil)
	rec := httptest.NewRecorder()
	handler.ApplyHandler(rec, req, "page-1", "m1")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already applied")
}

func TestApplyHandler_Success(t *testing.T) {
	agentService := &mockAgentService{
		applyFunc: func(ctx context.Context, pageID string, messageID string) (*models.ChatMessage, error) {
			return &models.ChatMessage{ID: messageID, PageID: pageID, State: models.SuggestionApplied}, nil
		},
	}
	handler := NewChatHandler(agentService, &mockLLMService{}, common.GetLogger())

	req := httptest.NewRequest("POST", "/api/pages/page-1/chat/m1/apply", nil)
	rec := httptest.NewRecorder()
	handler.ApplyHandler(rec, req, "page-1", "m1")

	assert.Equal(t, http.StatusOK, rec.Code)

	var msg models.ChatMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Equal(t, models.SuggestionApplied, msg.State)
}

func TestHistoryHandler(t *testing.T) {
	agentService := &mockAgentService{
		historyFunc: func(ctx context.Context, pageID string) ([]*models.ChatMessage, error) {
			return []*models.ChatMessage{
				{ID: "m1", PageID: pageID, Role: "user"},
				{ID: "m2", PageID: pageID, Role: "assistant"},
			}, nil
		},
	}
	handler := NewChatHandler(agentService, &mockLLMService{}, common.GetLogger())

	req := httptest.NewRequest("GET", "/api/pages/page-1/chat", nil)
	rec := httptest.NewRecorder()
	handler.HistoryHandler(rec, req, "page-1")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Messages []*models.ChatMessage `json:"messages"`
		Count    int                   `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}

func TestChatHealthHandler(t *testing.T) {
	handler := NewChatHandler(&mockAgentService{}, &mockLLMService{}, common.GetLogger())

	req := httptest.NewRequest("GET", "/api/chat/health", nil)
	rec := httptest.NewRecorder()
	handler.HealthHandler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	handler = NewChatHandler(&mockAgentService{}, &mockLLMService{healthErr: errors.New("no key")}, common.GetLogger())
	rec = httptest.NewRecorder()
	handler.HealthHandler(rec, httptest.NewRequest("GET", "/api/chat/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
