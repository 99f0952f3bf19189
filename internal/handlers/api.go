package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/indago/internal/common"
)

type APIHandler struct {
	logger arbor.ILogger
}

func NewAPIHandler() *APIHandler {
	return &APIHandler{
		logger: common.GetLogger(),
	}
}

// VersionHandler returns version information
func (h *APIHandler) VersionHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"version":    common.GetVersion(),
		"build":      common.GetBuild(),
		"git_commit": common.GetGitCommit(),
	})
}

// HealthHandler returns health check status
func (h *APIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "indago is running",
	})
}

// RootHandler documents the API surface. Any path other than "/" that falls
// through to the root pattern is a 404.
func (h *APIHandler) RootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.NotFoundHandler(w, r)
		return
	}

	if !RequireMethod(w, r, "GET") {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"service":     "indago",
		"description": "Australian investment search API",
		"version":     common.GetVersion(),
		"endpoints": []map[string]string{
			{"path": "/api/search/funds", "params": "term, pageSize, country", "description": "Managed fund search"},
			{"path": "/api/search/stocks", "params": "term, pageSize, exchange", "description": "Listed equity search"},
			{"path": "/api/search/combined", "params": "term, pageSize, country", "description": "Funds and stocks together, funds first"},
			{"path": "/api/search/australia", "params": "term, pageSize, type", "description": "All sources, Australian investments only"},
			{"path": "/api/health", "params": "", "description": "Liveness check"},
			{"path": "/api/version", "params": "", "description": "Version and build information"},
			{"path": "/api/test/search", "params": "term, kind", "description": "Raw provider records before normalization"},
			{"path": "/api/test/scrape", "params": "target", "description": "Scrape one target and return the markdown dump"},
			{"path": "/ws", "params": "", "description": "WebSocket diagnostics event stream"},
		},
	})
}

// NotFoundHandler handles 404 errors with JSON response
func (h *APIHandler) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusNotFound, map[string]interface{}{
		"success": false,
		"error":   "The requested endpoint does not exist",
		"path":    r.URL.Path,
	})
}
