// Package catalogs serves the hand-curated investment tables and the
// scrape-backed ETF cache. Catalogs are one source among several in
// aggregated searches; they answer instantly and never fail.
package catalogs

import (
	"strings"
	"sync"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/indago/internal/models"
)

// Service answers term searches against the curated tables.
type Service struct {
	mu          sync.RWMutex
	scrapedETFs []models.Investment
	logger      arbor.ILogger
}

// NewService creates a catalog service.
func NewService(logger arbor.ILogger) *Service {
	return &Service{
		logger: logger,
	}
}

// SearchSuperOptions returns curated super-fund options matching term.
func (s *Service) SearchSuperOptions(term string, limit int) []models.Investment {
	return match(superOptions, term, limit)
}

// SearchETFs returns ASX ETFs matching term. The curated table answers
// first; the scraped cache supplements it when warm.
func (s *Service) SearchETFs(term string, limit int) []models.Investment {
	s.mu.RLock()
	scraped := s.scrapedETFs
	s.mu.RUnlock()

	merged := make([]models.Investment, 0, len(asxETFs)+len(scraped))
	merged = append(merged, asxETFs...)
	merged = append(merged, scraped...)

	return match(merged, term, limit)
}

// SetScrapedETFs replaces the scraped ETF cache with a fresh snapshot.
// Callers keep the previous snapshot by not calling this on scrape failure.
func (s *Service) SetScrapedETFs(records []models.Investment) {
	s.mu.Lock()
	s.scrapedETFs = records
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info().
			Int("count", len(records)).
			Msg("Scraped ETF cache replaced")
	}
}

// ScrapedETFCount returns the size of the scraped ETF cache.
func (s *Service) ScrapedETFCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.scrapedETFs)
}

// match filters records by case-insensitive substring against name and
// identifier. An empty term matches everything; limit 0 means unlimited.
func match(records []models.Investment, term string, limit int) []models.Investment {
	needle := strings.ToLower(strings.TrimSpace(term))
	result := make([]models.Investment, 0, len(records))

	for _, record := range records {
		if needle != "" &&
			!strings.Contains(strings.ToLower(record.Name), needle) &&
			!strings.Contains(strings.ToLower(record.APIR), needle) {
			continue
		}
		result = append(result, record)
		if limit > 0 && len(result) >= limit {
			break
		}
	}

	return result
}
