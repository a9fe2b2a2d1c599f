package stats

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumaacademy/atelier/internal/common"
	"github.com/lumaacademy/atelier/internal/models"
)

// countingPages records AddCounts calls; all other PageStorage methods are
// unused by the stats service.
type countingPages struct {
	mu    sync.Mutex
	views map[string]int64
	convs map[string]int64
	calls int
}

func newCountingPages() *countingPages {
	return &countingPages{views: map[string]int64{}, convs: map[string]int64{}}
}

func (p *countingPages) AddCounts(ctx context.Context, pageID string, views int64, conversions int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.views[pageID] += views
	p.convs[pageID] += conversions
	return nil
}

func (p *countingPages) Save(ctx context.Context, page *models.LandingPage) error { return nil }
func (p *countingPages) Get(ctx context.Context, id string) (*models.LandingPage, error) {
	return nil, nil
}
func (p *countingPages) GetBySlug(ctx context.Context, slug string) (*models.LandingPage, error) {
	return nil, nil
}
func (p *countingPages) GetByCourse(ctx context.Context, courseID string) ([]*models.LandingPage, error) {
	return nil, nil
}
func (p *countingPages) List(ctx context.Context) ([]*models.LandingPage, error) { return nil, nil }
func (p *countingPages) Delete(ctx context.Context, id string) error             { return nil }
func (p *countingPages) ApplySection(ctx context.Context, pageID string, section models.SectionKey, value any) error {
	return nil
}
func (p *countingPages) ApplyField(ctx context.Context, pageID string, section models.SectionKey, field string, value any) error {
	return nil
}
func (p *countingPages) DeleteSection(ctx context.Context, pageID string, section models.SectionKey) error {
	return nil
}
func (p *countingPages) UpdateDesign(ctx context.Context, pageID string, design models.DesignConfig) error {
	return nil
}

func TestFlush_AggregatesBufferedCounts(t *testing.T) {
	pages := newCountingPages()
	service := NewService(pages, &common.StatsConfig{Enabled: true}, common.GetLogger())

	service.RecordView("page-1")
	service.RecordView("page-1")
	service.RecordView("page-2")
	service.RecordConversion("page-1")

	service.flush()

	assert.Equal(t, int64(2), pages.views["page-1"])
	assert.Equal(t, int64(1), pages.views["page-2"])
	assert.Equal(t, int64(1), pages.convs["page-1"])
	assert.Equal(t, 2, pages.calls)
}

func TestFlush_EmptyBufferWritesNothing(t *testing.T) {
	pages := newCountingPages()
	service := NewService(pages, &common.StatsConfig{Enabled: true}, common.GetLogger())

	service.flush()
	assert.Zero(t, pages.calls)
}

func TestFlush_ClearsBuffer(t *testing.T) {
	pages := newCountingPages()
	service := NewService(pages, &common.StatsConfig{Enabled: true}, common.GetLogger())

	service.RecordView("page-1")
	service.flush()
	service.flush()

	assert.Equal(t, 1, pages.calls)
	assert.Equal(t, int64(1), pages.views["page-1"])
}

func TestStartStop(t *testing.T) {
	pages := newCountingPages()
	service := NewService(pages, &common.StatsConfig{Enabled: true, Schedule: "*/5 * * * *"}, common.GetLogger())

	require.NoError(t, service.Start())
	service.RecordConversion("page-1")
	service.Stop()

	// Stop flushes whatever is still buffered.
	assert.Equal(t, int64(1), pages.convs["page-1"])
}

func TestStart_DisabledDoesNotSchedule(t *testing.T) {
	service := NewService(newCountingPages(), &common.StatsConfig{Enabled: false}, common.GetLogger())
	require.NoError(t, service.Start())
	service.Stop()
}

func TestStart_InvalidScheduleErrors(t *testing.T) {
	service := NewService(newCountingPages(), &common.StatsConfig{Enabled: true, Schedule: "not a schedule"}, common.GetLogger())
	assert.Error(t, service.Start())
}
