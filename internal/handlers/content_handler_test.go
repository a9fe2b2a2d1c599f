package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumaacademy/atelier/internal/common"
	"github.com/lumaacademy/atelier/internal/models"
)

func TestUpdateSectionHandler(t *testing.T) {
	var gotSection models.SectionKey
	var gotValue any
	pages := &mockPageStorage{
		applySectionFunc: func(ctx context.Context, pageID string, section models.SectionKey, value any) error {
			gotSection = section
			gotValue = value
			return nil
		},
	}
	var superseded models.SectionKey
	agent := &mockAgentService{
		supersedeFunc: func(ctx context.Context, pageID string, section models.SectionKey) error {
			superseded = section
			return nil
		},
	}
	handler := NewContentHandler(pages, agent, nil, common.GetLogger())

	body := `{"headline":{"en":"New headline"}}`
	req := httptest.NewRequest("PUT", "/api/pages/page-1/sections/hero", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.UpdateSectionHandler(rec, req, "page-1", "hero")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.SectionHero, gotSection)
	value, ok := gotValue.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, value, "headline")
	assert.Equal(t, models.SectionHero, superseded)
}

func TestUpdateSectionHandler_UnknownSection(t *testing.T) {
	applied := false
	pages := &mockPageStorage{
		applySectionFunc: func(ctx context.Context, pageID string, section models.SectionKey, value any) error {
			applied = true
			return nil
		},
	}
	handler := NewContentHandler(pages, &mockAgentService{}, nil, common.GetLogger())

	req := httptest.NewRequest("PUT", "/api/pages/page-1/sections/payment", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.UpdateSectionHandler(rec, req, "page-1", "payment")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, applied)
}

func TestUpdateSectionHandler_InvalidBody(t *testing.T) {
	handler := NewContentHandler(&mockPageStorage{}, &mockAgentService{}, nil, common.GetLogger())

	req := httptest.NewRequest("PUT", "/api/pages/page-1/sections/hero", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()
	handler.UpdateSectionHandler(rec, req, "page-1", "hero")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateFieldHandler(t *testing.T) {
	var gotField string
	pages := &mockPageStorage{
		applyFieldFunc: func(ctx context.Context, pageID string, section models.SectionKey, field string, value any) error {
			gotField = field
			return nil
		},
	}
	handler := NewContentHandler(pages, &mockAgentService{}, nil, common.GetLogger())

	req := httptest.NewRequest("PUT", "/api/pages/page-1/sections/hero/fields/headline", strings.NewReader(`{"en":"H"}`))
	rec := httptest.NewRecorder()
	handler.UpdateFieldHandler(rec, req, "page-1", "hero", "headline")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "headline", gotField)
}

func TestUpdateFieldHandler_EmptyField(t *testing.T) {
	handler := NewContentHandler(&mockPageStorage{}, &mockAgentService{}, nil, common.GetLogger())

	req := httptest.NewRequest("PUT", "/api/pages/page-1/sections/hero/fields/", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.UpdateFieldHandler(rec, req, "page-1", "hero", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteSectionHandler(t *testing.T) {
	var deleted models.SectionKey
	pages := &mockPageStorage{
		deleteSectionFunc: func(ctx context.Context, pageID string, section models.SectionKey) error {
			deleted = section
			return nil
		},
	}
	var superseded models.SectionKey
	agent := &mockAgentService{
		supersedeFunc: func(ctx context.Context, pageID string, section models.SectionKey) error {
			superseded = section
			return nil
		},
	}
	handler := NewContentHandler(pages, agent, nil, common.GetLogger())

	req := httptest.NewRequest("DELETE", "/api/pages/page-1/sections/faq", nil)
	rec := httptest.NewRecorder()
	handler.DeleteSectionHandler(rec, req, "page-1", "faq")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.SectionFAQ, deleted)
	assert.Equal(t, models.SectionFAQ, superseded)
}
