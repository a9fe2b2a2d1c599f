package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/lumaacademy/atelier/internal/common"
	"github.com/lumaacademy/atelier/internal/interfaces"
	"github.com/lumaacademy/atelier/internal/models"
)

// CourseHandler manages the course records landing pages hang off.
type CourseHandler struct {
	courses interfaces.CourseStorage
	logger  arbor.ILogger
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(courses interfaces.CourseStorage, logger arbor.ILogger) *CourseHandler {
	return &CourseHandler{
		courses: courses,
		logger:  logger,
	}
}

// ListHandler handles GET /api/courses
func (h *CourseHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	courses, err := h.courses.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list courses")
		WriteError(w, http.StatusInternalServerError, "Failed to list courses")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"courses": courses,
		"count":   len(courses),
	})
}

type courseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// CreateHandler handles POST /api/courses
func (h *CourseHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var req courseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" {
		WriteError(w, http.StatusBadRequest, "Title is required")
		return
	}
	if req.Price < 0 {
		WriteError(w, http.StatusBadRequest, "Price cannot be negative")
		return
	}

	course := &models.Course{
		ID:          common.NewCourseID(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := h.courses.Save(r.Context(), course); err != nil {
		h.logger.Error().Err(err).Msg("Failed to create course")
		WriteError(w, http.StatusInternalServerError, "Failed to create course")
		return
	}

	h.logger.Info().Str("course_id", course.ID).Str("title", course.Title).Msg("Course created")
	WriteJSON(w, http.StatusCreated, course)
}

// GetHandler handles GET /api/courses/{id}
func (h *CourseHandler) GetHandler(w http.ResponseWriter, r *http.Request, courseID string) {
	course, err := h.courses.Get(r.Context(), courseID)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Course not found")
		return
	}
	WriteJSON(w, http.StatusOK, course)
}

// UpdateHandler handles PUT /api/courses/{id}
func (h *CourseHandler) UpdateHandler(w http.ResponseWriter, r *http.Request, courseID string) {
	var req courseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	course, err := h.courses.Get(r.Context(), courseID)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Course not found")
		return
	}

	if req.Title != "" {
		course.Title = req.Title
	}
	if req.Description != "" {
		course.Description = req.Description
	}
	if req.Price >= 0 {
		course.Price = req.Price
	}

	if err := h.courses.Save(r.Context(), course); err != nil {
		h.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to update course")
		WriteError(w, http.StatusInternalServerError, "Failed to update course")
		return
	}
	WriteJSON(w, http.StatusOK, course)
}

// DeleteHandler handles DELETE /api/courses/{id}
func (h *CourseHandler) DeleteHandler(w http.ResponseWriter, r *http.Request, courseID string) {
	if err := h.courses.Delete(r.Context(), courseID); err != nil {
		h.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to delete course")
		WriteError(w, http.StatusInternalServerError, "Failed to delete course")
		return
	}
	WriteSuccess(w, "Course deleted")
}
