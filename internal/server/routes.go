// -----------------------------------------------------------------------
// Last Modified: Friday, 21st November 2025 9:15:00 am
// Modified By: Bob McAllan
// -----------------------------------------------------------------------

package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Search API routes
	mux.HandleFunc("/api/search/funds", s.app.SearchHandler.FundsHandler)
	mux.HandleFunc("/api/search/stocks", s.app.SearchHandler.StocksHandler)
	mux.HandleFunc("/api/search/combined", s.app.SearchHandler.CombinedHandler)
	mux.HandleFunc("/api/search/australia", s.app.SearchHandler.AustraliaHandler)

	// Debug routes - raw collaborator output for troubleshooting
	mux.HandleFunc("/api/test/search", s.app.DebugHandler.TestSearchHandler)
	mux.HandleFunc("/api/test/scrape", s.app.DebugHandler.TestScrapeHandler)

	// System routes
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// WebSocket diagnostics stream
	mux.HandleFunc("/ws", s.app.WSHandler.HandleWebSocket)

	// Catch-all for undefined API routes - must come after specific routes
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	// Capability doc at root; unknown non-API paths fall through to 404 here
	mux.HandleFunc("/", s.app.APIHandler.RootHandler)

	return mux
}
