package interfaces

import (
	"context"

	"github.com/lumaacademy/atelier/internal/models"
)

// PageStorage - interface for landing page persistence
type PageStorage interface {
	// CRUD operations
	Save(ctx context.Context, page *models.LandingPage) error
	Get(ctx context.Context, id string) (*models.LandingPage, error)
	GetBySlug(ctx context.Context, slug string) (*models.LandingPage, error)
	GetByCourse(ctx context.Context, courseID string) ([]*models.LandingPage, error)
	List(ctx context.Context) ([]*models.LandingPage, error)
	Delete(ctx context.Context, id string) error

	// Section mutations. Both are single read-modify-write operations on
	// the stored document: unrelated sections and unknown keys pass through
	// untouched.
	ApplySection(ctx context.Context, pageID string, section models.SectionKey, value any) error
	ApplyField(ctx context.Context, pageID string, section models.SectionKey, field string, value any) error
	DeleteSection(ctx context.Context, pageID string, section models.SectionKey) error

	// Design config
	UpdateDesign(ctx context.Context, pageID string, design models.DesignConfig) error

	// Counters. The stats flush applies buffered view/conversion counts in
	// one write per page.
	AddCounts(ctx context.Context, pageID string, views int64, conversions int64) error
}

// CourseStorage - interface for course record persistence
type CourseStorage interface {
	Save(ctx context.Context, course *models.Course) error
	Get(ctx context.Context, id string) (*models.Course, error)
	List(ctx context.Context) ([]*models.Course, error)
	Delete(ctx context.Context, id string) error
}

// ChatStorage - interface for per-page chat history and suggestion state
type ChatStorage interface {
	SaveMessage(ctx context.Context, message *models.ChatMessage) error
	GetMessage(ctx context.Context, id string) (*models.ChatMessage, error)
	GetMessagesByPage(ctx context.Context, pageID string) ([]*models.ChatMessage, error)
	GetPendingByPage(ctx context.Context, pageID string) ([]*models.ChatMessage, error)
	DeleteMessagesByPage(ctx context.Context, pageID string) error
}

// StorageManager provides access to all storage implementations
type StorageManager interface {
	PageStorage() PageStorage
	CourseStorage() CourseStorage
	ChatStorage() ChatStorage
	Close() error
}
