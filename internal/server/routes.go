package server

import (
	"net/http"
	"strings"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Public landing pages
	mux.HandleFunc("/p/", s.handlePublicRoutes)

	// WebSocket route
	mux.HandleFunc("/ws", s.app.WSHandler.HandleWebSocket)

	// API routes - Pages
	mux.HandleFunc("/api/pages", s.handlePagesRoute)  // GET (list), POST (create)
	mux.HandleFunc("/api/pages/", s.handlePageRoutes) // /{id} and subpaths

	// API routes - Courses
	mux.HandleFunc("/api/courses", s.handleCoursesRoute)
	mux.HandleFunc("/api/courses/", s.handleCourseRoutes)

	// API routes - Design
	mux.HandleFunc("/api/palette", s.app.DesignHandler.PreviewPaletteHandler) // POST - derive without persisting
	mux.HandleFunc("/api/presets", s.app.DesignHandler.ListPresetsHandler)    // GET - named color presets

	// API routes - Chat
	mux.HandleFunc("/api/chat/health", s.app.ChatHandler.HealthHandler)

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}

// handlePublicRoutes serves /p/{slug} and the /p/{slug}/convert beacon
func (s *Server) handlePublicRoutes(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, "/convert") {
		s.app.PageHandler.ConvertHandler(w, r)
		return
	}
	s.app.PageHandler.ServePublicPage(w, r)
}

func (s *Server) handlePagesRoute(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.app.PageHandler.ListHandler(w, r)
	case http.MethodPost:
		s.app.PageHandler.CreateHandler(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handlePageRoutes routes /api/pages/{id} and its subpaths
func (s *Server) handlePageRoutes(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/pages/"), "/")
	pageID := parts[0]
	if pageID == "" {
		http.Error(w, "Page ID required", http.StatusBadRequest)
		return
	}

	// /api/pages/{id}
	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			s.app.PageHandler.GetHandler(w, r, pageID)
		case http.MethodPut:
			s.app.PageHandler.UpdateHandler(w, r, pageID)
		case http.MethodDelete:
			s.app.PageHandler.DeleteHandler(w, r, pageID)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	switch parts[1] {
	case "publish":
		if r.Method == http.MethodPost {
			s.app.PageHandler.PublishHandler(w, r, pageID, true)
			return
		}
	case "unpublish":
		if r.Method == http.MethodPost {
			s.app.PageHandler.PublishHandler(w, r, pageID, false)
			return
		}
	case "render":
		if r.Method == http.MethodGet {
			s.app.PageHandler.RenderHandler(w, r, pageID)
			return
		}
	case "format":
		if r.Method == http.MethodGet {
			s.app.PageHandler.FormatHandler(w, r, pageID)
			return
		}
	case "design":
		switch r.Method {
		case http.MethodGet:
			s.app.DesignHandler.GetDesignHandler(w, r, pageID)
			return
		case http.MethodPut:
			s.app.DesignHandler.UpdateDesignHandler(w, r, pageID)
			return
		}
	case "palette":
		if r.Method == http.MethodGet {
			s.app.DesignHandler.GetPaletteHandler(w, r, pageID)
			return
		}
	case "sections":
		s.handleSectionRoutes(w, r, pageID, parts[2:])
		return
	case "chat":
		s.handleChatRoutes(w, r, pageID, parts[2:])
		return
	}

	http.Error(w, "Not found", http.StatusNotFound)
}

// handleSectionRoutes routes /api/pages/{id}/sections/{key} and
// /api/pages/{id}/sections/{key}/fields/{field}
func (s *Server) handleSectionRoutes(w http.ResponseWriter, r *http.Request, pageID string, parts []string) {
	if len(parts) == 0 || parts[0] == "" {
		http.Error(w, "Section key required", http.StatusBadRequest)
		return
	}
	key := parts[0]

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodPut:
			s.app.ContentHandler.UpdateSectionHandler(w, r, pageID, key)
		case http.MethodDelete:
			s.app.ContentHandler.DeleteSectionHandler(w, r, pageID, key)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	if len(parts) == 3 && parts[1] == "fields" && r.Method == http.MethodPut {
		s.app.ContentHandler.UpdateFieldHandler(w, r, pageID, key, parts[2])
		return
	}

	http.Error(w, "Not found", http.StatusNotFound)
}

// handleChatRoutes routes /api/pages/{id}/chat and suggestion decisions
func (s *Server) handleChatRoutes(w http.ResponseWriter, r *http.Request, pageID string, parts []string) {
	if len(parts) == 0 || parts[0] == "" {
		switch r.Method {
		case http.MethodGet:
			s.app.ChatHandler.HistoryHandler(w, r, pageID)
		case http.MethodPost:
			s.app.ChatHandler.ProposeHandler(w, r, pageID)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	if len(parts) == 2 && r.Method == http.MethodPost {
		messageID := parts[0]
		switch parts[1] {
		case "apply":
			s.app.ChatHandler.ApplyHandler(w, r, pageID, messageID)
			return
		case "discard":
			s.app.ChatHandler.DiscardHandler(w, r, pageID, messageID)
			return
		}
	}

	http.Error(w, "Not found", http.StatusNotFound)
}

func (s *Server) handleCoursesRoute(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.app.CourseHandler.ListHandler(w, r)
	case http.MethodPost:
		s.app.CourseHandler.CreateHandler(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCourseRoutes(w http.ResponseWriter, r *http.Request) {
	courseID := strings.TrimPrefix(r.URL.Path, "/api/courses/")
	if courseID == "" || strings.Contains(courseID, "/") {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.app.CourseHandler.GetHandler(w, r, courseID)
	case http.MethodPut:
		s.app.CourseHandler.UpdateHandler(w, r, courseID)
	case http.MethodDelete:
		s.app.CourseHandler.DeleteHandler(w, r, courseID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
