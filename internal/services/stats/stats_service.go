// Package stats buffers page view and conversion counts in memory and
// flushes them to storage on a cron schedule, so a traffic spike on a
// published page does not turn into one storage write per visitor.
package stats

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"github.com/lumaacademy/atelier/internal/common"
	"github.com/lumaacademy/atelier/internal/interfaces"
)

type counters struct {
	views       int64
	conversions int64
}

// Service accumulates per-page counters and periodically persists them.
type Service struct {
	pages  interfaces.PageStorage
	logger arbor.ILogger
	cron   *cron.Cron
	config *common.StatsConfig

	mu      sync.Mutex
	pending map[string]*counters
}

// NewService creates the stats service. Start must be called to begin the
// flush schedule.
func NewService(pages interfaces.PageStorage, config *common.StatsConfig, logger arbor.ILogger) *Service {
	return &Service{
		pages:   pages,
		logger:  logger,
		cron:    cron.New(),
		config:  config,
		pending: map[string]*counters{},
	}
}

// Start begins the flush schedule.
func (s *Service) Start() error {
	if !s.config.Enabled {
		s.logger.Info().Msg("Stats rollup disabled")
		return nil
	}

	schedule := s.config.Schedule
	if schedule == "" {
		schedule = "*/1 * * * *" // Default: every 1 minute
	}

	if _, err := s.cron.AddFunc(schedule, s.flush); err != nil {
		return fmt.Errorf("invalid stats schedule '%s': %w", schedule, err)
	}

	s.cron.Start()
	s.logger.Info().Str("schedule", schedule).Msg("Stats rollup started")
	return nil
}

// RecordView counts one page view.
func (s *Service) RecordView(pageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter(pageID).views++
}

// RecordConversion counts one CTA conversion.
func (s *Service) RecordConversion(pageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter(pageID).conversions++
}

// Stop flushes outstanding counters and halts the schedule.
func (s *Service) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.flush()
}

// flush persists and clears the buffered counters.
func (s *Service) flush() {
	s.mu.Lock()
	pending := s.pending
	s.pending = map[string]*counters{}
	s.mu.Unlock()

	if len(pending) == 0 {
		return
	}

	ctx := context.Background()
	for pageID, c := range pending {
		if err := s.pages.AddCounts(ctx, pageID, c.views, c.conversions); err != nil {
			s.logger.Warn().Err(err).Str("page_id", pageID).Msg("Failed to flush page counters")
		}
	}

	s.logger.Debug().Int("pages", len(pending)).Msg("Stats counters flushed")
}

func (s *Service) counter(pageID string) *counters {
	c, ok := s.pending[pageID]
	if !ok {
		c = &counters{}
		s.pending[pageID] = c
	}
	return c
}
