package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumaacademy/atelier/internal/common"
	"github.com/lumaacademy/atelier/internal/models"
	"github.com/lumaacademy/atelier/internal/theme"
)

func designTestPages(page *models.LandingPage) *mockPageStorage {
	return &mockPageStorage{
		getFunc: func(ctx context.Context, id string) (*models.LandingPage, error) {
			return page, nil
		},
	}
}

func TestGetDesignHandler_ReturnsNormalizedConfig(t *testing.T) {
	page := &models.LandingPage{
		ID:       "page-1",
		CourseID: "course-1",
		Design:   models.DesignConfig{Colors: []string{"#0369a1"}},
	}
	handler := NewDesignHandler(designTestPages(page), nil, nil, common.GetLogger())

	req := httptest.NewRequest("GET", "/api/pages/page-1/design", nil)
	rec := httptest.NewRecorder()
	handler.GetDesignHandler(rec, req, "page-1")

	assert.Equal(t, http.StatusOK, rec.Code)

	var design models.DesignConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &design))
	assert.Equal(t, []string{"#0369a1"}, design.Colors)
	assert.Equal(t, models.ThemeLight, design.Theme)
	assert.Equal(t, models.CTAGradient, design.CTAStyle)
}

func TestUpdateDesignHandler(t *testing.T) {
	var saved models.DesignConfig
	pages := &mockPageStorage{
		updateDesignFunc: func(ctx context.Context, pageID string, design models.DesignConfig) error {
			saved = design
			return nil
		},
	}
	handler := NewDesignHandler(pages, nil, nil, common.GetLogger())

	body := `{"colors":["#15803d"],"theme":"dark"}`
	req := httptest.NewRequest("PUT", "/api/pages/page-1/design", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.UpdateDesignHandler(rec, req, "page-1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"#15803d"}, saved.Colors)
	assert.Equal(t, models.ThemeDark, saved.Theme)
}

func TestGetPaletteHandler(t *testing.T) {
	page := &models.LandingPage{
		ID:       "page-1",
		CourseID: "course-1",
		Design:   models.DesignConfig{Colors: []string{"#ea580c"}, Theme: models.ThemeDark},
	}
	handler := NewDesignHandler(designTestPages(page), nil, nil, common.GetLogger())

	req := httptest.NewRequest("GET", "/api/pages/page-1/palette", nil)
	rec := httptest.NewRecorder()
	handler.GetPaletteHandler(rec, req, "page-1")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Palette theme.Palette `json:"palette"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "#ea580c", resp.Palette.Primary)
	assert.Equal(t, "#020617", resp.Palette.DarkBg)
}

func TestPreviewPaletteHandler(t *testing.T) {
	handler := NewDesignHandler(&mockPageStorage{}, nil, nil, common.GetLogger())

	body := `{"colors":["#0369a1"]}`
	req := httptest.NewRequest("POST", "/api/palette", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.PreviewPaletteHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var palette theme.Palette
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &palette))
	assert.Equal(t, "#0369a1", palette.Primary)
	assert.NotEmpty(t, palette.Secondary)
}

func TestPreviewPaletteHandler_GetRejected(t *testing.T) {
	handler := NewDesignHandler(&mockPageStorage{}, nil, nil, common.GetLogger())

	req := httptest.NewRequest("GET", "/api/palette", nil)
	rec := httptest.NewRecorder()
	handler.PreviewPaletteHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestListPresetsHandler(t *testing.T) {
	presets, err := theme.LoadPresets("")
	require.NoError(t, err)
	handler := NewDesignHandler(&mockPageStorage{}, presets, nil, common.GetLogger())

	req := httptest.NewRequest("GET", "/api/presets", nil)
	rec := httptest.NewRecorder()
	handler.ListPresetsHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Presets []theme.Preset `json:"presets"`
		Count   int            `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, len(presets), resp.Count)
	assert.Equal(t, "Ember", resp.Presets[0].Name)
}
