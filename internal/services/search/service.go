// Package search answers investment searches by orchestrating the
// screener provider, curated catalogs, scrape targets, and the optional
// symbol-search collaborator. Source failures degrade to an empty
// contribution and are logged; they never surface as request errors.
package search

import (
	"context"
	"strings"

	"github.com/ternarybob/arbor"
	"golang.org/x/sync/errgroup"

	"github.com/ternarybob/indago/internal/common"
	"github.com/ternarybob/indago/internal/eodhd"
	"github.com/ternarybob/indago/internal/interfaces"
	"github.com/ternarybob/indago/internal/models"
	"github.com/ternarybob/indago/internal/services/aggregate"
	"github.com/ternarybob/indago/internal/services/dedupe"
	"github.com/ternarybob/indago/internal/services/normalize"
	"github.com/ternarybob/indago/internal/services/relevance"
)

// CatalogSource answers instant searches from curated and cached tables.
type CatalogSource interface {
	SearchSuperOptions(term string, limit int) []models.Investment
	SearchETFs(term string, limit int) []models.Investment
}

// SymbolSource looks up listed symbols at the optional credentialed
// provider. Nil when no credential is configured.
type SymbolSource interface {
	SearchSymbols(ctx context.Context, query string, limit int) ([]eodhd.SearchResult, error)
}

// Scraper extracts records from configured listing pages. Nil when
// scraping is disabled.
type Scraper interface {
	Scrape(ctx context.Context, target common.ScrapeTarget) ([]models.Investment, error)
	EnabledTargets() []common.ScrapeTarget
}

// Service implements interfaces.SearchService.
type Service struct {
	config     *common.Config
	provider   interfaces.SecurityProvider
	symbols    SymbolSource
	catalogs   CatalogSource
	scraper    Scraper
	aggregator *aggregate.Service
	classifier *relevance.Classifier
	logger     arbor.ILogger
}

// NewService creates the search service. symbols and scraper may be nil
// when their collaborators are disabled.
func NewService(
	config *common.Config,
	provider interfaces.SecurityProvider,
	symbols SymbolSource,
	catalogs CatalogSource,
	scraper Scraper,
	aggregator *aggregate.Service,
	classifier *relevance.Classifier,
	logger arbor.ILogger,
) *Service {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &Service{
		config:     config,
		provider:   provider,
		symbols:    symbols,
		catalogs:   catalogs,
		scraper:    scraper,
		aggregator: aggregator,
		classifier: classifier,
		logger:     logger,
	}
}

// SearchFunds screens managed funds matching the term.
func (s *Service) SearchFunds(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error) {
	pageSize := s.resolvePageSize(opts.PageSize)
	country := opts.Country
	if country == "" {
		country = s.config.Provider.Country
	}

	rows, total, err := s.provider.SearchFunds(ctx, opts.Term, country, pageSize)
	if err != nil {
		s.logger.Warn().Err(err).Str("term", opts.Term).Msg("Fund screener call failed")
		return emptyResult(), nil
	}

	records := normalize.Records(s.logger, rows, normalize.Options{
		Kind:     models.KindFund,
		Currency: s.config.Provider.Currency,
		Status:   models.StatusMorningstar,
	})
	records = identified(records)
	records = dedupe.ByName(records)
	records = limit(records, pageSize)

	s.logger.Info().
		Str("term", opts.Term).
		Str("country", country).
		Int("count", len(records)).
		Int("total_found", total).
		Msg("Fund search completed")

	return &models.SearchResult{Records: records, TotalFound: total}, nil
}

// SearchStocks screens listed equities matching the term.
func (s *Service) SearchStocks(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error) {
	pageSize := s.resolvePageSize(opts.PageSize)
	exchange := opts.Exchange
	if exchange == "" {
		exchange = s.config.Provider.Exchange
	}

	rows, total, err := s.provider.SearchStocks(ctx, opts.Term, exchange, pageSize)
	if err != nil {
		s.logger.Warn().Err(err).Str("term", opts.Term).Msg("Stock screener call failed")
		return emptyResult(), nil
	}

	records := normalize.Records(s.logger, rows, normalize.Options{
		Kind:     models.KindStock,
		Exchange: exchange,
		Status:   models.StatusMorningstar,
	})
	records = identified(records)
	records = dedupe.ByName(records)
	records = limit(records, pageSize)

	s.logger.Info().
		Str("term", opts.Term).
		Str("exchange", exchange).
		Int("count", len(records)).
		Int("total_found", total).
		Msg("Stock search completed")

	return &models.SearchResult{Records: records, TotalFound: total}, nil
}

// SearchCombined screens funds and stocks concurrently. Funds lead the
// result; stocks fill the remaining page slots.
func (s *Service) SearchCombined(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error) {
	pageSize := s.resolvePageSize(opts.PageSize)

	var funds, stocks *models.SearchResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		funds, err = s.SearchFunds(gctx, opts)
		return err
	})
	g.Go(func() error {
		var err error
		stocks, err = s.SearchStocks(gctx, opts)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]models.Investment, 0, len(funds.Records)+len(stocks.Records))
	merged = append(merged, funds.Records...)
	merged = append(merged, stocks.Records...)

	// Name alone is too coarse across universes: a listed trust and its
	// unlisted twin share a name but are distinct holdings.
	merged = dedupe.ByNameAndIdentifier(merged)
	records := limit(merged, pageSize)

	return &models.SearchResult{
		Records:    records,
		TotalFound: funds.TotalFound + stocks.TotalFound,
	}, nil
}

// SearchAustralia fans out across every configured source, keeps the
// records classified as Australian investments, and reports per-source
// outcomes.
func (s *Service) SearchAustralia(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error) {
	pageSize := s.resolvePageSize(opts.PageSize)
	tasks := s.australiaTasks(opts, pageSize)

	merged, report := s.aggregator.Run(ctx, opts.Term, tasks)

	records := s.classifier.Filter(merged)
	records = dedupe.ByName(records)
	totalFound := len(records)
	records = limit(records, pageSize)

	s.logger.Info().
		Str("job_id", report.JobID).
		Str("term", opts.Term).
		Str("type", opts.Type).
		Int("count", len(records)).
		Int("total_found", totalFound).
		Msg("Australia search completed")

	return &models.SearchResult{
		Records:    records,
		TotalFound: totalFound,
		Report:     report,
	}, nil
}

// australiaTasks assembles the fan-out source list, narrowed by the
// requested type.
func (s *Service) australiaTasks(opts interfaces.SearchOptions, pageSize int) []aggregate.Task {
	searchType := normalizeType(opts.Type)
	if searchType == "" {
		s.logger.Warn().
			Str("type", opts.Type).
			Msg("Unknown search type, searching all sources")
	}

	var tasks []aggregate.Task

	if includeKind(searchType, models.KindFund) {
		tasks = append(tasks, aggregate.Task{
			Name: "morningstar-funds",
			Run: func(ctx context.Context) ([]models.Investment, error) {
				country := opts.Country
				if country == "" {
					country = s.config.Provider.Country
				}
				rows, _, err := s.provider.SearchFunds(ctx, opts.Term, country, pageSize)
				if err != nil {
					return nil, err
				}
				return normalize.Records(s.logger, rows, normalize.Options{
					Kind:     models.KindFund,
					Currency: s.config.Provider.Currency,
					Status:   models.StatusMorningstar,
				}), nil
			},
		})
	}

	if includeKind(searchType, models.KindStock) {
		tasks = append(tasks, aggregate.Task{
			Name: "morningstar-stocks",
			Run: func(ctx context.Context) ([]models.Investment, error) {
				exchange := opts.Exchange
				if exchange == "" {
					exchange = s.config.Provider.Exchange
				}
				rows, _, err := s.provider.SearchStocks(ctx, opts.Term, exchange, pageSize)
				if err != nil {
					return nil, err
				}
				return normalize.Records(s.logger, rows, normalize.Options{
					Kind:     models.KindStock,
					Exchange: exchange,
					Status:   models.StatusMorningstar,
				}), nil
			},
		})

		if s.symbols != nil {
			tasks = append(tasks, aggregate.Task{
				Name: "eodhd-symbols",
				Run: func(ctx context.Context) ([]models.Investment, error) {
					results, err := s.symbols.SearchSymbols(ctx, opts.Term, pageSize)
					if err != nil {
						return nil, err
					}
					return normalize.Records(s.logger, symbolRecords(results), normalize.Options{
						Kind:   models.KindStock,
						Status: models.StatusEODHD,
					}), nil
				},
			})
		}
	}

	if includeKind(searchType, models.KindSuperOption) {
		tasks = append(tasks, aggregate.Task{
			Name: "catalog-super",
			Run: func(ctx context.Context) ([]models.Investment, error) {
				return s.catalogs.SearchSuperOptions(opts.Term, 0), nil
			},
		})
	}

	if includeKind(searchType, models.KindETF) {
		tasks = append(tasks, aggregate.Task{
			Name: "catalog-etfs",
			Run: func(ctx context.Context) ([]models.Investment, error) {
				return s.catalogs.SearchETFs(opts.Term, 0), nil
			},
		})
	}

	if s.scraper != nil {
		for _, target := range s.scraper.EnabledTargets() {
			if !includeKind(searchType, models.Kind(target.Kind)) {
				continue
			}
			tasks = append(tasks, aggregate.Task{
				Name: "scrape-" + target.Name,
				Run: func(ctx context.Context) ([]models.Investment, error) {
					records, err := s.scraper.Scrape(ctx, target)
					if err != nil {
						return nil, err
					}
					return matchTerm(records, opts.Term), nil
				},
			})
		}
	}

	return tasks
}

func (s *Service) resolvePageSize(requested int) int {
	pageSize := requested
	if pageSize <= 0 {
		pageSize = s.config.Search.DefaultPageSize
	}
	if max := s.config.Search.MaxPageSize; max > 0 && pageSize > max {
		pageSize = max
	}
	return pageSize
}

// normalizeType canonicalizes the type parameter; unknown values map to
// "" (all sources).
func normalizeType(searchType string) string {
	switch strings.ToLower(strings.TrimSpace(searchType)) {
	case "fund", "funds":
		return "funds"
	case "stock", "stocks":
		return "stocks"
	case "etf", "etfs":
		return "etfs"
	case "super", "super_option", "super_options":
		return "super"
	case "", "all":
		return "all"
	default:
		return ""
	}
}

// includeKind reports whether an aggregated search of the given type
// draws on sources producing the given record kind.
func includeKind(searchType string, kind models.Kind) bool {
	switch searchType {
	case "funds":
		return kind == models.KindFund
	case "stocks":
		return kind == models.KindStock
	case "etfs":
		return kind == models.KindETF
	case "super":
		return kind == models.KindSuperOption
	default:
		return true
	}
}

// symbolRecords converts symbol-search hits into raw records so the
// normalizer handles every source uniformly.
func symbolRecords(results []eodhd.SearchResult) []models.RawRecord {
	records := make([]models.RawRecord, 0, len(results))
	for _, result := range results {
		records = append(records, models.RawRecord{
			"Ticker":   result.Code,
			"Name":     result.Name,
			"Country":  result.Country,
			"Currency": result.Currency,
			"Exchange": result.Exchange,
			"ISIN":     result.ISIN,
		})
	}
	return records
}

// matchTerm filters scraped records by case-insensitive substring
// against name and identifier. An empty term matches everything.
func matchTerm(records []models.Investment, term string) []models.Investment {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return records
	}

	matched := make([]models.Investment, 0, len(records))
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.Name), needle) ||
			strings.Contains(strings.ToLower(record.APIR), needle) {
			matched = append(matched, record)
		}
	}
	return matched
}

func identified(records []models.Investment) []models.Investment {
	kept := make([]models.Investment, 0, len(records))
	for _, record := range records {
		if record.Identified() {
			kept = append(kept, record)
		}
	}
	return kept
}

func limit(records []models.Investment, max int) []models.Investment {
	if max > 0 && len(records) > max {
		return records[:max]
	}
	return records
}

func emptyResult() *models.SearchResult {
	return &models.SearchResult{Records: []models.Investment{}}
}
