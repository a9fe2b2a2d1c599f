package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/lumaacademy/atelier/internal/common"
	"github.com/lumaacademy/atelier/internal/content"
	"github.com/lumaacademy/atelier/internal/interfaces"
	"github.com/lumaacademy/atelier/internal/models"
	"github.com/lumaacademy/atelier/internal/render"
	"github.com/lumaacademy/atelier/internal/services/stats"
)

// PageHandler serves the public landing pages and the page management API.
type PageHandler struct {
	pages    interfaces.PageStorage
	courses  interfaces.CourseStorage
	renderer *render.Renderer
	stats    *stats.Service
	events   interfaces.EventService
	logger   arbor.ILogger
}

// NewPageHandler creates a new page handler
func NewPageHandler(
	pages interfaces.PageStorage,
	courses interfaces.CourseStorage,
	renderer *render.Renderer,
	statsService *stats.Service,
	events interfaces.EventService,
	logger arbor.ILogger,
) *PageHandler {
	return &PageHandler{
		pages:    pages,
		courses:  courses,
		renderer: renderer,
		stats:    statsService,
		events:   events,
		logger:   logger,
	}
}

// ServePublicPage handles GET /p/{slug}. Draft pages are only reachable
// with ?preview=1; preview hits are not counted.
func (h *PageHandler) ServePublicPage(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	slug := strings.TrimPrefix(r.URL.Path, "/p/")
	if slug == "" || strings.Contains(slug, "/") {
		http.NotFound(w, r)
		return
	}

	page, err := h.pages.GetBySlug(r.Context(), slug)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	preview := r.URL.Query().Get("preview") == "1"
	if !page.IsPublished() && !preview {
		http.NotFound(w, r)
		return
	}

	html, err := h.renderPage(r, page)
	if err != nil {
		h.logger.Error().Err(err).Str("page_id", page.ID).Msg("Page render failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if !preview && h.stats != nil {
		h.stats.RecordView(page.ID)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// ConvertHandler handles POST /p/{slug}/convert, the CTA click beacon.
func (h *PageHandler) ConvertHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	slug := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/p/"), "/convert")
	page, err := h.pages.GetBySlug(r.Context(), slug)
	if err != nil || !page.IsPublished() {
		http.NotFound(w, r)
		return
	}

	if h.stats != nil {
		h.stats.RecordConversion(page.ID)
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListHandler handles GET /api/pages
func (h *PageHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	var (
		pages []*models.LandingPage
		err   error
	)
	if courseID := r.URL.Query().Get("course_id"); courseID != "" {
		pages, err = h.pages.GetByCourse(r.Context(), courseID)
	} else {
		pages, err = h.pages.List(r.Context())
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list pages")
		WriteError(w, http.StatusInternalServerError, "Failed to list pages")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"pages": pages,
		"count": len(pages),
	})
}

type createPageRequest struct {
	CourseID string              `json:"course_id"`
	Slug     string              `json:"slug"`
	Content  map[string]any      `json:"content,omitempty"`
	Design   models.DesignConfig `json:"design_config,omitempty"`
}

// CreateHandler handles POST /api/pages
func (h *PageHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req createPageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CourseID == "" || req.Slug == "" {
		WriteError(w, http.StatusBadRequest, "course_id and slug are required")
		return
	}

	if _, err := h.courses.Get(r.Context(), req.CourseID); err != nil {
		WriteError(w, http.StatusBadRequest, "Unknown course: "+req.CourseID)
		return
	}
	if existing, err := h.pages.GetBySlug(r.Context(), req.Slug); err == nil && existing != nil {
		WriteError(w, http.StatusConflict, "Slug already in use: "+req.Slug)
		return
	}

	page := &models.LandingPage{
		ID:       common.NewPageID(),
		CourseID: req.CourseID,
		Slug:     req.Slug,
		Status:   models.PageStatusDraft,
		Content:  req.Content,
		Design:   req.Design.Normalized(),
	}
	if page.Content == nil {
		page.Content = map[string]any{}
	}

	if err := h.pages.Save(r.Context(), page); err != nil {
		h.logger.Error().Err(err).Msg("Failed to create page")
		WriteError(w, http.StatusInternalServerError, "Failed to create page")
		return
	}

	h.logger.Info().Str("page_id", page.ID).Str("slug", page.Slug).Msg("Page created")
	WriteJSON(w, http.StatusCreated, page)
}

// GetHandler handles GET /api/pages/{id}
func (h *PageHandler) GetHandler(w http.ResponseWriter, r *http.Request, pageID string) {
	page, err := h.pages.Get(r.Context(), pageID)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Page not found")
		return
	}
	WriteJSON(w, http.StatusOK, page)
}

type updatePageRequest struct {
	Slug    *string        `json:"slug,omitempty"`
	Content map[string]any `json:"content,omitempty"`
}

// UpdateHandler handles PUT /api/pages/{id}
func (h *PageHandler) UpdateHandler(w http.ResponseWriter, r *http.Request, pageID string) {
	var req updatePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	page, err := h.pages.Get(r.Context(), pageID)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Page not found")
		return
	}

	if req.Slug != nil && *req.Slug != "" {
		page.Slug = *req.Slug
	}
	if req.Content != nil {
		page.Content = req.Content
	}

	if err := h.pages.Save(r.Context(), page); err != nil {
		h.logger.Error().Err(err).Str("page_id", pageID).Msg("Failed to update page")
		WriteError(w, http.StatusInternalServerError, "Failed to update page")
		return
	}

	h.publishPageUpdated(r, page)
	WriteJSON(w, http.StatusOK, page)
}

// DeleteHandler handles DELETE /api/pages/{id}
func (h *PageHandler) DeleteHandler(w http.ResponseWriter, r *http.Request, pageID string) {
	if err := h.pages.Delete(r.Context(), pageID); err != nil {
		h.logger.Error().Err(err).Str("page_id", pageID).Msg("Failed to delete page")
		WriteError(w, http.StatusInternalServerError, "Failed to delete page")
		return
	}
	WriteSuccess(w, "Page deleted")
}

// PublishHandler handles POST /api/pages/{id}/publish and /unpublish
func (h *PageHandler) PublishHandler(w http.ResponseWriter, r *http.Request, pageID string, publish bool) {
	page, err := h.pages.Get(r.Context(), pageID)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Page not found")
		return
	}

	if publish {
		page.Status = models.PageStatusPublished
		if page.PublishedAt == nil {
			now := time.Now()
			page.PublishedAt = &now
		}
	} else {
		page.Status = models.PageStatusDraft
	}

	if err := h.pages.Save(r.Context(), page); err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to update page status")
		return
	}

	h.logger.Info().Str("page_id", pageID).Str("status", string(page.Status)).Msg("Page status changed")
	h.publishPageUpdated(r, page)
	WriteJSON(w, http.StatusOK, page)
}

// RenderHandler handles GET /api/pages/{id}/render, the editor preview.
func (h *PageHandler) RenderHandler(w http.ResponseWriter, r *http.Request, pageID string) {
	page, err := h.pages.Get(r.Context(), pageID)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Page not found")
		return
	}

	html, err := h.renderPage(r, page)
	if err != nil {
		h.logger.Error().Err(err).Str("page_id", pageID).Msg("Preview render failed")
		WriteError(w, http.StatusInternalServerError, "Render failed")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// FormatHandler handles GET /api/pages/{id}/format. It reports which
// historical storage shape the document is in, which the editor uses to
// decide whether to offer a migration.
func (h *PageHandler) FormatHandler(w http.ResponseWriter, r *http.Request, pageID string) {
	page, err := h.pages.Get(r.Context(), pageID)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Page not found")
		return
	}

	doc := content.Resolve(page.Content)
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"format":    doc.Format,
		"flattened": doc.Flattened,
		"has_theme": len(doc.Theme) > 0,
	})
}

func (h *PageHandler) renderPage(r *http.Request, page *models.LandingPage) (string, error) {
	doc := content.Resolve(page.Content)

	// A missing course is not fatal: the page renders without price labels.
	course, err := h.courses.Get(r.Context(), page.CourseID)
	if err != nil {
		h.logger.Warn().Str("page_id", page.ID).Str("course_id", page.CourseID).Msg("Course lookup failed, rendering without course data")
		course = nil
	}

	return h.renderer.RenderPage(doc, page.Design, course)
}

func (h *PageHandler) publishPageUpdated(r *http.Request, page *models.LandingPage) {
	if h.events == nil {
		return
	}
	h.events.Publish(r.Context(), interfaces.Event{
		Type: interfaces.EventPageUpdated,
		Payload: map[string]any{
			"page_id": page.ID,
			"slug":    page.Slug,
		},
	})
}
