package handlers

import (
	"context"
	"fmt"

	"github.com/lumaacademy/atelier/internal/interfaces"
	"github.com/lumaacademy/atelier/internal/models"
)

// mockPageStorage implements interfaces.PageStorage with overridable funcs
type mockPageStorage struct {
	getFunc           func(ctx context.Context, id string) (*models.LandingPage, error)
	getBySlugFunc     func(ctx context.Context, slug string) (*models.LandingPage, error)
	getByCourseFunc   func(ctx context.Context, courseID string) ([]*models.LandingPage, error)
	listFunc          func(ctx context.Context) ([]*models.LandingPage, error)
	saveFunc          func(ctx context.Context, page *models.LandingPage) error
	applySectionFunc  func(ctx context.Context, pageID string, section models.SectionKey, value any) error
	applyFieldFunc    func(ctx context.Context, pageID string, section models.SectionKey, field string, value any) error
	deleteSectionFunc func(ctx context.Context, pageID string, section models.SectionKey) error
	updateDesignFunc  func(ctx context.Context, pageID string, design models.DesignConfig) error
}

func (m *mockPageStorage) Save(ctx context.Context, page *models.LandingPage) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, page)
	}
	return nil
}

func (m *mockPageStorage) Get(ctx context.Context, id string) (*models.LandingPage, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, fmt.Errorf("page not found: %s", id)
}

func (m *mockPageStorage) GetBySlug(ctx context.Context, slug string) (*models.LandingPage, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, fmt.Errorf("page not found: %s", slug)
}

func (m *mockPageStorage) GetByCourse(ctx context.Context, courseID string) ([]*models.LandingPage, error) {
	if m.getByCourseFunc != nil {
		return m.getByCourseFunc(ctx, courseID)
	}
	return nil, nil
}

func (m *mockPageStorage) List(ctx context.Context) ([]*models.LandingPage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockPageStorage) Delete(ctx context.Context, id string) error { return nil }

func (m *mockPageStorage) ApplySection(ctx context.Context, pageID string, section models.SectionKey, value any) error {
	if m.applySectionFunc != nil {
		return m.applySectionFunc(ctx, pageID, section, value)
	}
	return nil
}

func (m *mockPageStorage) ApplyField(ctx context.Context, pageID string, section models.SectionKey, field string, value any) error {
	if m.applyFieldFunc != nil {
		return m.applyFieldFunc(ctx, pageID, section, field, value)
	}
	return nil
}

func (m *mockPageStorage) DeleteSection(ctx context.Context, pageID string, section models.SectionKey) error {
	if m.deleteSectionFunc != nil {
		return m.deleteSectionFunc(ctx, pageID, section)
	}
	return nil
}

func (m *mockPageStorage) UpdateDesign(ctx context.Context, pageID string, design models.DesignConfig) error {
	if m.updateDesignFunc != nil {
		return m.updateDesignFunc(ctx, pageID, design)
	}
	return nil
}

func (m *mockPageStorage) AddCounts(ctx context.Context, pageID string, views int64, conversions int64) error {
	return nil
}

// mockCourseStorage implements interfaces.CourseStorage
type mockCourseStorage struct {
	getFunc func(ctx context.Context, id string) (*models.Course, error)
}

func (m *mockCourseStorage) Save(ctx context.Context, course *models.Course) error { return nil }

func (m *mockCourseStorage) Get(ctx context.Context, id string) (*models.Course, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, fmt.Errorf("course not found: %s", id)
}

func (m *mockCourseStorage) List(ctx context.Context) ([]*models.Course, error) { return nil, nil }
func (m *mockCourseStorage) Delete(ctx context.Context, id string) error        { return nil }

// mockAgentService implements interfaces.AgentService
type mockAgentService struct {
	proposeFunc   func(ctx context.Context, pageID string, userText string) (*models.ChatMessage, error)
	applyFunc     func(ctx context.Context, pageID string, messageID string) (*models.ChatMessage, error)
	discardFunc   func(ctx context.Context, pageID string, messageID string) (*models.ChatMessage, error)
	supersedeFunc func(ctx context.Context, pageID string, section models.SectionKey) error
	historyFunc   func(ctx context.Context, pageID string) ([]*models.ChatMessage, error)
}

func (m *mockAgentService) Propose(ctx context.Context, pageID string, userText string) (*models.ChatMessage, error) {
	if m.proposeFunc != nil {
		return m.proposeFunc(ctx, pageID, userText)
	}
	return &models.ChatMessage{ID: "m1", PageID: pageID, Role: "assistant"}, nil
}

func (m *mockAgentService) Apply(ctx context.Context, pageID string, messageID string) (*models.ChatMessage, error) {
	if m.applyFunc != nil {
		return m.applyFunc(ctx, pageID, messageID)
	}
	return nil, fmt.Errorf("not pending")
}

func (m *mockAgentService) Discard(ctx context.Context, pageID string, messageID string) (*models.ChatMessage, error) {
	if m.discardFunc != nil {
		return m.discardFunc(ctx, pageID, messageID)
	}
	return nil, fmt.Errorf("not pending")
}

func (m *mockAgentService) SupersedePending(ctx context.Context, pageID string, section models.SectionKey) error {
	if m.supersedeFunc != nil {
		return m.supersedeFunc(ctx, pageID, section)
	}
	return nil
}

func (m *mockAgentService) History(ctx context.Context, pageID string) ([]*models.ChatMessage, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, pageID)
	}
	return nil, nil
}

// mockLLMService implements interfaces.LLMService
type mockLLMService struct {
	healthErr error
	mode      interfaces.LLMMode
}

func (m *mockLLMService) Chat(ctx context.Context, messages []interfaces.Message) (string, error) {
	return "", nil
}
func (m *mockLLMService) HealthCheck(ctx context.Context) error { return m.healthErr }
func (m *mockLLMService) GetMode() interfaces.LLMMode {
	if m.mode != "" {
		return m.mode
	}
	return interfaces.LLMModeCloud
}
func (m *mockLLMService) Close() error { return nil }
