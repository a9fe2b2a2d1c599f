package badger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/lumaacademy/atelier/internal/content"
	"github.com/lumaacademy/atelier/internal/interfaces"
	"github.com/lumaacademy/atelier/internal/models"
)

// PageStorage implements the PageStorage interface for Badger
type PageStorage struct {
	db     *BadgerDB
	logger arbor.ILogger

	// Serializes read-modify-write mutations so concurrent section applies
	// cannot clobber each other's document.
	mu sync.Mutex
}

// NewPageStorage creates a new PageStorage instance
func NewPageStorage(db *BadgerDB, logger arbor.ILogger) interfaces.PageStorage {
	return &PageStorage{
		db:     db,
		logger: logger,
	}
}

func (s *PageStorage) Save(ctx context.Context, page *models.LandingPage) error {
	if page.ID == "" {
		return fmt.Errorf("page ID is required")
	}
	if page.CourseID == "" {
		return fmt.Errorf("page course ID is required")
	}

	now := time.Now()
	if page.CreatedAt.IsZero() {
		page.CreatedAt = now
	}
	page.UpdatedAt = now

	if page.Status == "" {
		page.Status = models.PageStatusDraft
	}
	if page.IsPublished() && page.PublishedAt == nil {
		page.PublishedAt = &now
	}

	if err := s.db.Store().Upsert(page.ID, page); err != nil {
		return fmt.Errorf("failed to save page: %w", err)
	}
	return nil
}

func (s *PageStorage) Get(ctx context.Context, id string) (*models.LandingPage, error) {
	var page models.LandingPage
	if err := s.db.Store().Get(id, &page); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("page not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	return &page, nil
}

func (s *PageStorage) GetBySlug(ctx context.Context, slug string) (*models.LandingPage, error) {
	var pages []models.LandingPage
	err := s.db.Store().Find(&pages, badgerhold.Where("Slug").Eq(slug).Index("Slug"))
	if err != nil {
		return nil, fmt.Errorf("failed to find page by slug: %w", err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("page not found: %s", slug)
	}
	return &pages[0], nil
}

func (s *PageStorage) GetByCourse(ctx context.Context, courseID string) ([]*models.LandingPage, error) {
	var pages []models.LandingPage
	err := s.db.Store().Find(&pages, badgerhold.Where("CourseID").Eq(courseID).Index("CourseID"))
	if err != nil {
		return nil, fmt.Errorf("failed to find pages by course: %w", err)
	}
	result := make([]*models.LandingPage, len(pages))
	for i := range pages {
		result[i] = &pages[i]
	}
	return result, nil
}

func (s *PageStorage) List(ctx context.Context) ([]*models.LandingPage, error) {
	var pages []models.LandingPage
	if err := s.db.Store().Find(&pages, nil); err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	result := make([]*models.LandingPage, len(pages))
	for i := range pages {
		result[i] = &pages[i]
	}
	return result, nil
}

func (s *PageStorage) Delete(ctx context.Context, id string) error {
	if err := s.db.Store().Delete(id, &models.LandingPage{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete page: %w", err)
	}
	return nil
}

// ApplySection replaces one section of the stored document in a single
// read-modify-write. The write lands in the document's active content
// location so nested-shape documents stay nested; every other key of the
// document passes through untouched.
func (s *PageStorage) ApplySection(ctx context.Context, pageID string, section models.SectionKey, value any) error {
	return s.mutateContent(ctx, pageID, func(target map[string]any) {
		target[string(section)] = value
	})
}

// ApplyField replaces a single field inside one section. A section that is
// absent or not an object is created fresh around the field.
func (s *PageStorage) ApplyField(ctx context.Context, pageID string, section models.SectionKey, field string, value any) error {
	return s.mutateContent(ctx, pageID, func(target map[string]any) {
		existing, ok := target[string(section)].(map[string]any)
		if !ok {
			existing = map[string]any{}
		}
		existing[field] = value
		target[string(section)] = existing
	})
}

// DeleteSection removes a section from both historical content locations,
// so a flattened delete cannot resurface a stale nested copy.
func (s *PageStorage) DeleteSection(ctx context.Context, pageID string, section models.SectionKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, err := s.Get(ctx, pageID)
	if err != nil {
		return err
	}
	if page.Content == nil {
		return nil
	}

	delete(page.Content, string(section))
	if nested, ok := page.Content["content"].(map[string]any); ok {
		delete(nested, string(section))
	}

	return s.Save(ctx, page)
}

func (s *PageStorage) UpdateDesign(ctx context.Context, pageID string, design models.DesignConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, err := s.Get(ctx, pageID)
	if err != nil {
		return err
	}
	page.Design = design.Normalized()
	return s.Save(ctx, page)
}

// AddCounts applies a batch of buffered view/conversion counts in one write.
func (s *PageStorage) AddCounts(ctx context.Context, pageID string, views int64, conversions int64) error {
	if views == 0 && conversions == 0 {
		return nil
	}
	return s.incrementCounter(ctx, pageID, func(page *models.LandingPage) {
		page.ViewCount += views
		page.ConversionCount += conversions
	})
}

// mutateContent runs fn against the document's active section map under the
// mutation lock and persists the result.
func (s *PageStorage) mutateContent(ctx context.Context, pageID string, fn func(target map[string]any)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, err := s.Get(ctx, pageID)
	if err != nil {
		return err
	}
	if page.Content == nil {
		page.Content = map[string]any{}
	}

	doc := content.Resolve(page.Content)
	target := page.Content
	if !doc.Flattened {
		// Nested shape: sections live under the "content" key.
		nested, ok := page.Content["content"].(map[string]any)
		if !ok {
			nested = map[string]any{}
			page.Content["content"] = nested
		}
		target = nested
	}

	fn(target)

	return s.Save(ctx, page)
}

func (s *PageStorage) incrementCounter(ctx context.Context, pageID string, fn func(page *models.LandingPage)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, err := s.Get(ctx, pageID)
	if err != nil {
		return err
	}
	fn(page)
	return s.Save(ctx, page)
}
