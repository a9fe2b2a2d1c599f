package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/lumaacademy/atelier/internal/interfaces"
	"github.com/lumaacademy/atelier/internal/models"
	"github.com/lumaacademy/atelier/internal/theme"
)

// DesignHandler owns the design config API and the derived palette endpoint.
type DesignHandler struct {
	pages   interfaces.PageStorage
	presets []theme.Preset
	events  interfaces.EventService
	logger  arbor.ILogger
}

// NewDesignHandler creates a new design handler
func NewDesignHandler(
	pages interfaces.PageStorage,
	presets []theme.Preset,
	events interfaces.EventService,
	logger arbor.ILogger,
) *DesignHandler {
	return &DesignHandler{
		pages:   pages,
		presets: presets,
		events:  events,
		logger:  logger,
	}
}

// GetDesignHandler handles GET /api/pages/{id}/design
func (h *DesignHandler) GetDesignHandler(w http.ResponseWriter, r *http.Request, pageID string) {
	page, err := h.pages.Get(r.Context(), pageID)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Page not found")
		return
	}
	WriteJSON(w, http.StatusOK, page.Design.Normalized())
}

// UpdateDesignHandler handles PUT /api/pages/{id}/design
func (h *DesignHandler) UpdateDesignHandler(w http.ResponseWriter, r *http.Request, pageID string) {
	var design models.DesignConfig
	if err := json.NewDecoder(r.Body).Decode(&design); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.pages.UpdateDesign(r.Context(), pageID, design); err != nil {
		h.logger.Error().Err(err).Str("page_id", pageID).Msg("Design update failed")
		WriteError(w, http.StatusInternalServerError, "Failed to update design")
		return
	}

	if h.events != nil {
		h.events.Publish(r.Context(), interfaces.Event{
			Type:    interfaces.EventDesignUpdated,
			Payload: map[string]any{"page_id": pageID},
		})
	}
	WriteJSON(w, http.StatusOK, design.Normalized())
}

// GetPaletteHandler handles GET /api/pages/{id}/palette. It returns the
// full derived palette the public page will render with, so the editor can
// show an exact preview without duplicating the derivation client-side.
func (h *DesignHandler) GetPaletteHandler(w http.ResponseWriter, r *http.Request, pageID string) {
	page, err := h.pages.Get(r.Context(), pageID)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Page not found")
		return
	}

	design := page.Design.Normalized()
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"design":  design,
		"palette": theme.FromDesign(design),
	})
}

// PreviewPaletteHandler handles POST /api/palette. It derives a palette from
// a design config without persisting anything, for live editor previews.
func (h *DesignHandler) PreviewPaletteHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var design models.DesignConfig
	if err := json.NewDecoder(r.Body).Decode(&design); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	WriteJSON(w, http.StatusOK, theme.FromDesign(design.Normalized()))
}

// ListPresetsHandler handles GET /api/presets
func (h *DesignHandler) ListPresetsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"presets": h.presets,
		"count":   len(h.presets),
	})
}
