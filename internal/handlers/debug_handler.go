package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/indago/internal/common"
	"github.com/ternarybob/indago/internal/interfaces"
	"github.com/ternarybob/indago/internal/models"
)

// markdownScraper is the slice of the scrape service the debug endpoints use.
type markdownScraper interface {
	EnabledTargets() []common.ScrapeTarget
	Markdown(ctx context.Context, target common.ScrapeTarget) (string, error)
}

// DebugHandler exposes raw collaborator output for troubleshooting.
// Responses bypass normalization so field names can be inspected as the
// upstream sends them.
type DebugHandler struct {
	provider interfaces.SecurityProvider
	scraper  markdownScraper
	config   *common.Config
	logger   arbor.ILogger
}

// NewDebugHandler creates a debug handler. scraper may be nil when
// scraping is disabled.
func NewDebugHandler(provider interfaces.SecurityProvider, scraper markdownScraper, config *common.Config, logger arbor.ILogger) *DebugHandler {
	return &DebugHandler{
		provider: provider,
		scraper:  scraper,
		config:   config,
		logger:   logger,
	}
}

// TestSearchHandler handles GET /api/test/search?term=&kind= requests.
// Returns the provider's rows exactly as received, before normalization.
func (h *DebugHandler) TestSearchHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	term := strings.TrimSpace(r.URL.Query().Get("term"))
	if term == "" {
		WriteError(w, http.StatusBadRequest, "Search term is required")
		return
	}

	kind := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("kind")))
	if kind == "" {
		kind = "fund"
	}

	pageSize := GetPageSize(r, h.config.Search.DefaultPageSize, h.config.Search.MaxPageSize)

	var (
		rows  []models.RawRecord
		total int
		err   error
	)

	switch kind {
	case "fund", "funds":
		kind = "fund"
		rows, total, err = h.provider.SearchFunds(r.Context(), term, h.config.Provider.Country, pageSize)
	case "stock", "stocks":
		kind = "stock"
		rows, total, err = h.provider.SearchStocks(r.Context(), term, h.config.Provider.Exchange, pageSize)
	default:
		WriteError(w, http.StatusBadRequest, "Kind must be fund or stock")
		return
	}

	if err != nil {
		if h.logger != nil {
			h.logger.Error().
				Err(err).
				Str("term", term).
				Str("kind", kind).
				Msg("Provider request failed")
		}
		WriteError(w, http.StatusInternalServerError, "Provider request failed")
		return
	}

	if rows == nil {
		rows = []models.RawRecord{}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"kind":        kind,
		"term":        term,
		"count":       len(rows),
		"total_found": total,
		"records":     rows,
	})
}

// TestScrapeHandler handles GET /api/test/scrape?target= requests.
// Scrapes a single configured target and returns the page as markdown.
func (h *DebugHandler) TestScrapeHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	if h.scraper == nil {
		WriteError(w, http.StatusServiceUnavailable, "Scraping is disabled")
		return
	}

	targets := h.scraper.EnabledTargets()

	name := strings.TrimSpace(r.URL.Query().Get("target"))
	if name == "" {
		names := make([]string, 0, len(targets))
		for _, target := range targets {
			names = append(names, target.Name)
		}
		WriteError(w, http.StatusBadRequest, "Scrape target is required (available: "+strings.Join(names, ", ")+")")
		return
	}

	var target *common.ScrapeTarget
	for i := range targets {
		if strings.EqualFold(targets[i].Name, name) {
			target = &targets[i]
			break
		}
	}
	if target == nil {
		WriteError(w, http.StatusNotFound, "Unknown scrape target: "+name)
		return
	}

	markdown, err := h.scraper.Markdown(r.Context(), *target)
	if err != nil {
		if h.logger != nil {
			h.logger.Error().
				Err(err).
				Str("target", target.Name).
				Str("url", target.URL).
				Msg("Scrape failed")
		}
		WriteError(w, http.StatusInternalServerError, "Scrape failed")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"target":   target.Name,
		"url":      target.URL,
		"markdown": markdown,
		"length":   len(markdown),
	})
}
