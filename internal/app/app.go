// -----------------------------------------------------------------------
// Last Modified: Friday, 21st November 2025 9:15:00 am
// Modified By: Bob McAllan
// -----------------------------------------------------------------------

package app

import (
	"fmt"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/indago/internal/common"
	"github.com/ternarybob/indago/internal/eodhd"
	"github.com/ternarybob/indago/internal/handlers"
	"github.com/ternarybob/indago/internal/interfaces"
	"github.com/ternarybob/indago/internal/morningstar"
	"github.com/ternarybob/indago/internal/services/aggregate"
	"github.com/ternarybob/indago/internal/services/catalogs"
	"github.com/ternarybob/indago/internal/services/events"
	"github.com/ternarybob/indago/internal/services/refresh"
	"github.com/ternarybob/indago/internal/services/relevance"
	"github.com/ternarybob/indago/internal/services/scrape"
	"github.com/ternarybob/indago/internal/services/search"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Event-driven services
	EventService interfaces.EventService

	// Search collaborators. SymbolSource is nil without a credential;
	// ScrapeService is nil when scraping is disabled.
	Provider       interfaces.SecurityProvider
	SymbolSource   *eodhd.Client
	CatalogService *catalogs.Service
	ScrapeService  *scrape.Service
	Aggregator     *aggregate.Service
	Classifier     *relevance.Classifier
	SearchService  interfaces.SearchService
	RefreshService *refresh.Service

	// HTTP handlers
	APIHandler    *handlers.APIHandler
	SearchHandler *handlers.SearchHandler
	DebugHandler  *handlers.DebugHandler
	WSHandler     *handlers.WebSocketHandler
}

// New initializes the application with all dependencies
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	// Event bus first; services publish into it and the WebSocket
	// handler streams it out
	app.EventService = events.NewService(app.Logger)
	app.WSHandler = handlers.NewWebSocketHandler(app.EventService, app.Logger)

	// Initialize services
	if err := app.initServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	// Initialize handlers
	if err := app.initHandlers(); err != nil {
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	// Attach event subscribers
	if err := events.SubscribeLoggerToAllEvents(app.EventService, app.Logger); err != nil {
		app.Logger.Warn().Err(err).Msg("Failed to subscribe event logger")
	}
	app.WSHandler.SubscribeToSearchEvents()

	// Start the catalog refresh scheduler. Refresh re-scrapes listing
	// pages, so it only runs when scraping is available.
	if app.ScrapeService != nil {
		if err := app.RefreshService.Start(); err != nil {
			return nil, fmt.Errorf("failed to start catalog refresh: %w", err)
		}
	} else if app.Config.Refresh.Enabled {
		app.Logger.Warn().Msg("Catalog refresh requires scraping - scheduler not started")
	}

	// Log initialization summary
	logger.Info().
		Bool("eodhd_enabled", app.SymbolSource != nil).
		Bool("scrape_enabled", app.ScrapeService != nil).
		Bool("refresh_enabled", app.Config.Refresh.Enabled && app.ScrapeService != nil).
		Msg("Application initialization complete")

	return app, nil
}

// initServices initializes the search collaborators
func (a *App) initServices() error {
	// Morningstar screener client
	providerOpts := []morningstar.ClientOption{
		morningstar.WithLogger(a.Logger),
	}
	if a.Config.Provider.BaseURL != "" {
		providerOpts = append(providerOpts, morningstar.WithBaseURL(a.Config.Provider.BaseURL))
	}
	if a.Config.Provider.ScreenerID != "" {
		providerOpts = append(providerOpts, morningstar.WithScreenerID(a.Config.Provider.ScreenerID))
	}
	if a.Config.Provider.Currency != "" {
		providerOpts = append(providerOpts, morningstar.WithCurrency(a.Config.Provider.Currency))
	}
	if a.Config.Provider.Region != "" {
		providerOpts = append(providerOpts, morningstar.WithRegion(a.Config.Provider.Region))
	}
	if a.Config.Provider.Universe != "" {
		providerOpts = append(providerOpts, morningstar.WithUniverse(a.Config.Provider.Universe))
	}
	if a.Config.Provider.RateLimit > 0 {
		providerOpts = append(providerOpts, morningstar.WithRateLimit(a.Config.Provider.RateLimit))
	}
	if a.Config.Provider.RequestTimeout.Duration > 0 {
		providerOpts = append(providerOpts, morningstar.WithHTTPClient(&http.Client{
			Timeout: a.Config.Provider.RequestTimeout.Duration,
		}))
	}
	a.Provider = morningstar.NewClient(providerOpts...)
	a.Logger.Debug().
		Str("base_url", a.Config.Provider.BaseURL).
		Str("country", a.Config.Provider.Country).
		Str("exchange", a.Config.Provider.Exchange).
		Msg("Screener provider initialized")

	// Optional EODHD symbol source - absent credential disables it
	if a.Config.EODHDEnabled() {
		symbolOpts := []eodhd.ClientOption{
			eodhd.WithLogger(a.Logger),
		}
		if a.Config.EODHD.BaseURL != "" {
			symbolOpts = append(symbolOpts, eodhd.WithBaseURL(a.Config.EODHD.BaseURL))
		}
		if a.Config.EODHD.RateLimit > 0 {
			symbolOpts = append(symbolOpts, eodhd.WithRateLimit(a.Config.EODHD.RateLimit))
		}
		a.SymbolSource = eodhd.NewClient(a.Config.EODHD.APIKey, symbolOpts...)
		a.Logger.Info().Msg("EODHD symbol source enabled")
	} else {
		a.Logger.Debug().Msg("EODHD symbol source disabled - no API key configured")
	}

	// Static catalogs (super options, ASX ETFs)
	a.CatalogService = catalogs.NewService(a.Logger)

	// Optional scraper
	if a.Config.Scrape.Enabled {
		a.ScrapeService = scrape.NewService(a.Config.Scrape, a.Logger)
		a.Logger.Debug().
			Int("targets", len(a.ScrapeService.EnabledTargets())).
			Msg("Scrape service initialized")
	} else {
		a.Logger.Debug().Msg("Scraping disabled")
	}

	// Relevance classifier; a configured rule file replaces the built-in rules
	rules := relevance.DefaultRuleSet()
	if a.Config.Relevance.RulesFile != "" {
		loaded, err := relevance.LoadRuleSet(a.Config.Relevance.RulesFile)
		if err != nil {
			return fmt.Errorf("failed to load relevance rules from %s: %w", a.Config.Relevance.RulesFile, err)
		}
		rules = loaded
		a.Logger.Info().
			Str("rules_file", a.Config.Relevance.RulesFile).
			Msg("Custom relevance rules loaded")
	}
	a.Classifier = relevance.NewClassifier(rules)

	// Fan-out aggregator
	a.Aggregator = aggregate.NewService(a.Config.Search, a.EventService, a.Logger)

	// Search service. Optional collaborators stay nil interfaces when
	// disabled so the service can skip them.
	var symbols search.SymbolSource
	if a.SymbolSource != nil {
		symbols = a.SymbolSource
	}
	var scraper search.Scraper
	if a.ScrapeService != nil {
		scraper = a.ScrapeService
	}
	a.SearchService = search.NewService(
		a.Config,
		a.Provider,
		symbols,
		a.CatalogService,
		scraper,
		a.Aggregator,
		a.Classifier,
		a.Logger,
	)

	// Catalog refresh scheduler
	var etfScraper refresh.ETFScraper
	if a.ScrapeService != nil {
		etfScraper = a.ScrapeService
	}
	a.RefreshService = refresh.NewService(
		a.Config.Refresh,
		etfScraper,
		a.CatalogService,
		a.EventService,
		a.Logger,
	)

	return nil
}

// initHandlers initializes the HTTP handlers
func (a *App) initHandlers() error {
	a.APIHandler = handlers.NewAPIHandler()
	a.SearchHandler = handlers.NewSearchHandler(a.SearchService, a.Config.Search, a.Logger)

	if a.ScrapeService != nil {
		a.DebugHandler = handlers.NewDebugHandler(a.Provider, a.ScrapeService, a.Config, a.Logger)
	} else {
		a.DebugHandler = handlers.NewDebugHandler(a.Provider, nil, a.Config, a.Logger)
	}

	a.Logger.Debug().Msg("HTTP handlers initialized")
	return nil
}

// Close closes all application resources
func (a *App) Close() error {
	// Stop the refresh scheduler
	if a.RefreshService != nil {
		a.RefreshService.Stop()
	}

	// Disconnect diagnostics clients
	if a.WSHandler != nil {
		a.WSHandler.Close()
	}

	// Close the event bus last so shutdown events still reach subscribers
	if a.EventService != nil {
		if err := a.EventService.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close event service")
		}
	}

	a.Logger.Info().Msg("Application resources closed")
	return nil
}
