// Package refresh periodically re-scrapes ETF listing pages and swaps
// the catalog service's scraped cache. A failed refresh keeps the
// previous snapshot.
package refresh

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/indago/internal/common"
	"github.com/ternarybob/indago/internal/interfaces"
	"github.com/ternarybob/indago/internal/models"
)

const (
	defaultSchedule = "0 */6 * * *"
	refreshTimeout  = 2 * time.Minute
)

// ETFScraper provides the scrape targets and their extraction.
type ETFScraper interface {
	Scrape(ctx context.Context, target common.ScrapeTarget) ([]models.Investment, error)
	EnabledTargets() []common.ScrapeTarget
}

// CatalogSink receives fresh scraped snapshots.
type CatalogSink interface {
	SetScrapedETFs(records []models.Investment)
}

// Service schedules catalog refreshes.
type Service struct {
	config   common.RefreshConfig
	scraper  ETFScraper
	catalogs CatalogSink
	events   interfaces.EventService
	cron     *cron.Cron
	logger   arbor.ILogger
	running  bool
}

// NewService creates a refresh service. events may be nil.
func NewService(
	config common.RefreshConfig,
	scraper ETFScraper,
	catalogs CatalogSink,
	events interfaces.EventService,
	logger arbor.ILogger,
) *Service {
	return &Service{
		config:   config,
		scraper:  scraper,
		catalogs: catalogs,
		events:   events,
		cron:     cron.New(),
		logger:   logger,
	}
}

// Start schedules periodic refreshes. A disabled configuration is a
// quiet no-op.
func (s *Service) Start() error {
	if !s.config.Enabled {
		s.logger.Debug().Msg("Catalog refresh disabled")
		return nil
	}
	if s.running {
		return fmt.Errorf("refresh scheduler already running")
	}

	schedule := s.config.Schedule
	if schedule == "" {
		schedule = defaultSchedule
	}

	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return fmt.Errorf("failed to schedule catalog refresh: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info().
		Str("schedule", schedule).
		Msg("Catalog refresh scheduled")

	return nil
}

// Stop halts the scheduler.
func (s *Service) Stop() {
	if !s.running {
		return
	}
	s.cron.Stop()
	s.running = false
	s.logger.Info().Msg("Catalog refresh stopped")
}

func (s *Service) run() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := s.RefreshNow(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Catalog refresh failed")
	}
}

// RefreshNow scrapes every enabled ETF target and replaces the catalog
// cache with whatever they produced. When every target fails the cache
// is left untouched and an error is returned.
func (s *Service) RefreshNow(ctx context.Context) error {
	var candidates []common.ScrapeTarget
	for _, target := range s.scraper.EnabledTargets() {
		if models.Kind(target.Kind) == models.KindETF {
			candidates = append(candidates, target)
		}
	}
	if len(candidates) == 0 {
		s.logger.Debug().Msg("No ETF scrape targets configured")
		return nil
	}

	var etfs []models.Investment
	var scrapedTargets []string
	for _, target := range candidates {
		records, err := s.scraper.Scrape(ctx, target)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("target", target.Name).
				Msg("Refresh scrape failed, keeping previous snapshot")
			continue
		}
		etfs = append(etfs, records...)
		scrapedTargets = append(scrapedTargets, target.Name)
	}

	if len(scrapedTargets) == 0 {
		return fmt.Errorf("all %d ETF targets failed", len(candidates))
	}

	s.catalogs.SetScrapedETFs(etfs)

	s.logger.Info().
		Int("count", len(etfs)).
		Strs("targets", scrapedTargets).
		Msg("Catalog refreshed")

	if s.events != nil {
		event := interfaces.Event{
			Type: interfaces.EventCatalogRefreshed,
			Payload: map[string]interface{}{
				"count":   len(etfs),
				"targets": scrapedTargets,
			},
		}
		if err := s.events.Publish(ctx, event); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to publish catalog refresh event")
		}
	}

	return nil
}
