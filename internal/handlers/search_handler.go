// -----------------------------------------------------------------------
// Last Modified: Friday, 21st November 2025 9:15:00 am
// Modified By: Bob McAllan
// -----------------------------------------------------------------------

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

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	searchService interfaces.SearchService
	defaults      common.SearchConfig
	logger        arbor.ILogger
}

// NewSearchHandler creates a new search handler with dependencies
func NewSearchHandler(searchService interfaces.SearchService, defaults common.SearchConfig, logger arbor.ILogger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		defaults:      defaults,
		logger:        logger,
	}
}

// FundsHandler handles GET /api/search/funds?term=&pageSize=&country= requests
func (h *SearchHandler) FundsHandler(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "funds", h.searchService.SearchFunds)
}

// StocksHandler handles GET /api/search/stocks?term=&pageSize=&exchange= requests
func (h *SearchHandler) StocksHandler(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "stocks", h.searchService.SearchStocks)
}

// CombinedHandler handles GET /api/search/combined?term=&pageSize=&country= requests
func (h *SearchHandler) CombinedHandler(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "combined", h.searchService.SearchCombined)
}

// AustraliaHandler handles GET /api/search/australia?term=&pageSize=&type= requests
func (h *SearchHandler) AustraliaHandler(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "australia", h.searchService.SearchAustralia)
}

type searchFunc func(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error)

// serve runs the shared request flow: method check, parameter parsing,
// search execution, envelope shaping.
func (h *SearchHandler) serve(w http.ResponseWriter, r *http.Request, endpoint string, search searchFunc) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	opts, ok := h.optionsFromRequest(w, r)
	if !ok {
		return
	}

	if h.logger != nil {
		h.logger.Info().
			Str("endpoint", endpoint).
			Str("term", opts.Term).
			Int("page_size", opts.PageSize).
			Msg("Search request received")
	}

	result, err := search(r.Context(), opts)
	if err != nil {
		if h.logger != nil {
			h.logger.Error().
				Err(err).
				Str("endpoint", endpoint).
				Str("term", opts.Term).
				Msg("Failed to execute search")
		}
		WriteError(w, http.StatusInternalServerError, "Failed to execute search")
		return
	}

	if h.logger != nil {
		h.logger.Debug().
			Str("endpoint", endpoint).
			Str("term", opts.Term).
			Int("results", len(result.Records)).
			Int("total_found", result.TotalFound).
			Msg("Search completed")
	}

	WriteSearchResult(w, result)
}

// optionsFromRequest parses the shared query parameters. A missing term is
// a client error; the response is written here and ok is false.
func (h *SearchHandler) optionsFromRequest(w http.ResponseWriter, r *http.Request) (interfaces.SearchOptions, bool) {
	term := strings.TrimSpace(r.URL.Query().Get("term"))
	if term == "" {
		WriteError(w, http.StatusBadRequest, "Search term is required")
		return interfaces.SearchOptions{}, false
	}

	defaultSize := h.defaults.DefaultPageSize
	if defaultSize <= 0 {
		defaultSize = 20
	}
	maxSize := h.defaults.MaxPageSize
	if maxSize <= 0 {
		maxSize = 100
	}

	opts := interfaces.SearchOptions{
		Term:     term,
		PageSize: GetPageSize(r, defaultSize, maxSize),
		Country:  strings.TrimSpace(r.URL.Query().Get("country")),
		Exchange: strings.TrimSpace(r.URL.Query().Get("exchange")),
		Type:     strings.TrimSpace(r.URL.Query().Get("type")),
	}

	return opts, true
}
