// Package scrape extracts investment records from public listing pages.
// Each configured target names a page and the CSS selectors that locate
// its rows; extracted records feed the catalog cache and aggregated
// searches as a supplementary source.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/indago/internal/common"
	"github.com/ternarybob/indago/internal/models"
)

const defaultMaxBodySize = 5 * 1024 * 1024

// Service fetches and parses scrape targets.
type Service struct {
	config     common.ScrapeConfig
	httpClient *http.Client
	renderer   *Renderer
	logger     arbor.ILogger
}

// NewService creates a scrape service. A renderer is only constructed
// when rendering is enabled in configuration.
func NewService(config common.ScrapeConfig, logger arbor.ILogger) *Service {
	s := &Service{
		config: config,
		httpClient: &http.Client{
			Timeout: config.RequestTimeout.Duration,
		},
		logger: logger,
	}

	if config.RenderEnabled {
		s.renderer = NewRenderer(config, logger)
	}

	return s
}

// EnabledTargets returns the targets currently eligible for scraping.
func (s *Service) EnabledTargets() []common.ScrapeTarget {
	targets := make([]common.ScrapeTarget, 0, len(s.config.Targets))
	for _, target := range s.config.Targets {
		if target.Enabled {
			targets = append(targets, target)
		}
	}
	return targets
}

// Scrape fetches one target and extracts its records. An empty page
// yields an empty slice, not an error.
func (s *Service) Scrape(ctx context.Context, target common.ScrapeTarget) ([]models.Investment, error) {
	html, err := s.fetch(ctx, target)
	if err != nil {
		return nil, err
	}

	records, err := s.parse(html, target)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("target", target.Name).
		Int("count", len(records)).
		Msg("Scrape target parsed")

	return records, nil
}

// Markdown fetches one target and converts the page to markdown. Used
// by the scrape test endpoint to inspect what a target actually serves.
func (s *Service) Markdown(ctx context.Context, target common.ScrapeTarget) (string, error) {
	html, err := s.fetch(ctx, target)
	if err != nil {
		return "", err
	}

	converter := md.NewConverter(target.URL, true, nil)
	markdown, err := converter.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert %s to markdown: %w", target.Name, err)
	}

	return markdown, nil
}

// fetch retrieves the target page, rendering it in a browser when the
// target requires JavaScript.
func (s *Service) fetch(ctx context.Context, target common.ScrapeTarget) (string, error) {
	if target.Render {
		if s.renderer == nil {
			return "", fmt.Errorf("target %s requires rendering but rendering is disabled", target.Name)
		}
		return s.renderer.Render(ctx, target.URL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for %s: %w", target.Name, err)
	}
	req.Header.Set("User-Agent", s.config.UserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", target.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("target %s returned status %d", target.Name, resp.StatusCode)
	}

	maxBody := int64(s.config.MaxBodySize)
	if maxBody <= 0 {
		maxBody = defaultMaxBodySize
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return "", fmt.Errorf("failed to read %s response: %w", target.Name, err)
	}

	return string(body), nil
}

// parse extracts records from page HTML using the target's selectors.
func (s *Service) parse(html string, target common.ScrapeTarget) ([]models.Investment, error) {
	if target.RowSelector == "" {
		return nil, fmt.Errorf("target %s has no row selector", target.Name)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s HTML: %w", target.Name, err)
	}

	var records []models.Investment
	doc.Find(target.RowSelector).Each(func(i int, row *goquery.Selection) {
		var code string
		if target.CodeSelector != "" {
			code = common.ParseTickerCode(row.Find(target.CodeSelector).First().Text())
		}

		name := strings.TrimSpace(row.Find(target.NameSelector).First().Text())
		name = strings.Join(strings.Fields(name), " ")
		if name == "" {
			return
		}

		records = append(records, models.Investment{
			APIR:     code,
			Name:     name,
			Country:  "Australia",
			Currency: "AUD",
			Exchange: target.Exchange,
			Kind:     models.Kind(target.Kind),
			Status:   models.StatusScraped,
		})
	})

	return records, nil
}
