package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/lumaacademy/atelier/internal/interfaces"
	"github.com/lumaacademy/atelier/internal/models"
)

// ContentHandler owns manual section edits. Every write goes through the
// same whole-section replacement path the agent uses, and supersedes any
// pending suggestion for the touched section.
type ContentHandler struct {
	pages  interfaces.PageStorage
	agent  interfaces.AgentService
	events interfaces.EventService
	logger arbor.ILogger
}

// NewContentHandler creates a new content handler
func NewContentHandler(
	pages interfaces.PageStorage,
	agent interfaces.AgentService,
	events interfaces.EventService,
	logger arbor.ILogger,
) *ContentHandler {
	return &ContentHandler{
		pages:  pages,
		agent:  agent,
		events: events,
		logger: logger,
	}
}

// UpdateSectionHandler handles PUT /api/pages/{id}/sections/{key}
func (h *ContentHandler) UpdateSectionHandler(w http.ResponseWriter, r *http.Request, pageID string, key string) {
	section := models.SectionKey(key)
	if !models.IsKnownSection(section) {
		WriteError(w, http.StatusBadRequest, "Unknown section: "+key)
		return
	}

	var value any
	if err := json.NewDecoder(r.Body).Decode(&value); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.pages.ApplySection(r.Context(), pageID, section, value); err != nil {
		h.logger.Error().Err(err).Str("page_id", pageID).Str("section", key).Msg("Section update failed")
		WriteError(w, http.StatusInternalServerError, "Failed to update section")
		return
	}

	h.supersede(r, pageID, section)
	h.publishUpdate(r, pageID, key)
	WriteSuccess(w, "Section updated")
}

// UpdateFieldHandler handles PUT /api/pages/{id}/sections/{key}/fields/{field}
func (h *ContentHandler) UpdateFieldHandler(w http.ResponseWriter, r *http.Request, pageID string, key string, field string) {
	section := models.SectionKey(key)
	if !models.IsKnownSection(section) {
		WriteError(w, http.StatusBadRequest, "Unknown section: "+key)
		return
	}
	if field == "" {
		WriteError(w, http.StatusBadRequest, "Field name is required")
		return
	}

	var value any
	if err := json.NewDecoder(r.Body).Decode(&value); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.pages.ApplyField(r.Context(), pageID, section, field, value); err != nil {
		h.logger.Error().Err(err).Str("page_id", pageID).Str("section", key).Str("field", field).Msg("Field update failed")
		WriteError(w, http.StatusInternalServerError, "Failed to update field")
		return
	}

	h.supersede(r, pageID, section)
	h.publishUpdate(r, pageID, key)
	WriteSuccess(w, "Field updated")
}

// DeleteSectionHandler handles DELETE /api/pages/{id}/sections/{key}
func (h *ContentHandler) DeleteSectionHandler(w http.ResponseWriter, r *http.Request, pageID string, key string) {
	section := models.SectionKey(key)
	if !models.IsKnownSection(section) {
		WriteError(w, http.StatusBadRequest, "Unknown section: "+key)
		return
	}

	if err := h.pages.DeleteSection(r.Context(), pageID, section); err != nil {
		h.logger.Error().Err(err).Str("page_id", pageID).Str("section", key).Msg("Section delete failed")
		WriteError(w, http.StatusInternalServerError, "Failed to delete section")
		return
	}

	h.supersede(r, pageID, section)
	h.publishUpdate(r, pageID, key)
	WriteSuccess(w, "Section removed")
}

// supersede marks pending agent suggestions for the section as stale.
func (h *ContentHandler) supersede(r *http.Request, pageID string, section models.SectionKey) {
	if h.agent == nil {
		return
	}
	if err := h.agent.SupersedePending(r.Context(), pageID, section); err != nil {
		h.logger.Warn().Err(err).Str("page_id", pageID).Str("section", string(section)).Msg("Failed to supersede pending suggestions")
	}
}

func (h *ContentHandler) publishUpdate(r *http.Request, pageID string, section string) {
	if h.events == nil {
		return
	}
	h.events.Publish(r.Context(), interfaces.Event{
		Type: interfaces.EventPageUpdated,
		Payload: map[string]any{
			"page_id": pageID,
			"section": section,
		},
	})
}
