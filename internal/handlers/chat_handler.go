package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/lumaacademy/atelier/internal/interfaces"
	"github.com/lumaacademy/atelier/internal/services/agent"
)

// ChatHandler exposes the per-page copywriting assistant.
type ChatHandler struct {
	agent      interfaces.AgentService
	llmService interfaces.LLMService
	logger     arbor.ILogger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(
	agentService interfaces.AgentService,
	llmService interfaces.LLMService,
	logger arbor.ILogger,
) *ChatHandler {
	return &ChatHandler{
		agent:      agentService,
		llmService: llmService,
		logger:     logger,
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

// ProposeHandler handles POST /api/pages/{id}/chat
func (h *ChatHandler) ProposeHandler(w http.ResponseWriter, r *http.Request, pageID string) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Message == "" {
		WriteError(w, http.StatusBadRequest, "Message field is required")
		return
	}
	if h.llmService.GetMode() == interfaces.LLMModeDisabled {
		WriteError(w, http.StatusServiceUnavailable, "Chat is disabled: no LLM provider is configured")
		return
	}

	h.logger.Debug().
		Str("page_id", pageID).
		Int("message_length", len(req.Message)).
		Msg("Processing chat request")

	message, err := h.agent.Propose(r.Context(), pageID, req.Message)
	if err != nil {
		if errors.Is(err, agent.ErrRateLimited) {
			WriteError(w, http.StatusTooManyRequests, err.Error())
			return
		}
		h.logger.Error().Err(err).Str("page_id", pageID).Msg("Chat propose failed")
		WriteError(w, http.StatusInternalServerError, "Failed to generate response")
		return
	}

	WriteJSON(w, http.StatusOK, message)
}

// HistoryHandler handles GET /api/pages/{id}/chat
func (h *ChatHandler) HistoryHandler(w http.ResponseWriter, r *http.Request, pageID string) {
	messages, err := h.agent.History(r.Context(), pageID)
	if err != nil {
		h.logger.Error().Err(err).Str("page_id", pageID).Msg("Failed to load chat history")
		WriteError(w, http.StatusInternalServerError, "Failed to load chat history")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"messages": messages,
		"count":    len(messages),
	})
}

// ApplyHandler handles POST /api/pages/{id}/chat/{messageID}/apply
func (h *ChatHandler) ApplyHandler(w http.ResponseWriter, r *http.Request, pageID string, messageID string) {
	message, err := h.agent.Apply(r.Context(), pageID, messageID)
	if err != nil {
		h.logger.Warn().Err(err).Str("page_id", pageID).Str("message_id", messageID).Msg("Suggestion apply failed")
		WriteError(w, http.StatusConflict, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, message)
}

// DiscardHandler handles POST /api/pages/{id}/chat/{messageID}/discard
func (h *ChatHandler) DiscardHandler(w http.ResponseWriter, r *http.Request, pageID string, messageID string) {
	message, err := h.agent.Discard(r.Context(), pageID, messageID)
	if err != nil {
		h.logger.Warn().Err(err).Str("page_id", pageID).Str("message_id", messageID).Msg("Suggestion discard failed")
		WriteError(w, http.StatusConflict, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, message)
}

// HealthHandler handles GET /api/chat/health
func (h *ChatHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	err := h.llmService.HealthCheck(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("LLM health check failed")
		WriteJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"healthy": false,
			"mode":    h.llmService.GetMode(),
			"error":   err.Error(),
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"healthy": true,
		"mode":    h.llmService.GetMode(),
	})
}
