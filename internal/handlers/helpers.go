package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ternarybob/indago/internal/models"
)

// RequireMethod validates that the HTTP request uses the specified method.
// Returns true if the method matches, false otherwise (and writes error response).
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes a standard error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, models.ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// WriteSearchResult shapes a service-layer search result into the success
// envelope. Aggregated results carry the per-source report.
func WriteSearchResult(w http.ResponseWriter, result *models.SearchResult) error {
	response := models.SearchResponse{
		Success:    true,
		Results:    result.Records,
		Count:      len(result.Records),
		TotalFound: result.TotalFound,
	}
	if response.Results == nil {
		response.Results = []models.Investment{}
	}
	if result.Report != nil {
		response.Sources = result.Report.Sources
	}
	return WriteJSON(w, http.StatusOK, response)
}

// GetPageSize extracts the pageSize query parameter.
// Returns the default when absent or invalid; values above max are clamped.
func GetPageSize(r *http.Request, defaultSize, maxSize int) int {
	pageSize := defaultSize

	if sizeStr := r.URL.Query().Get("pageSize"); sizeStr != "" {
		if parsed, err := strconv.Atoi(sizeStr); err == nil && parsed > 0 {
			pageSize = parsed
		}
	}

	if pageSize > maxSize {
		pageSize = maxSize
	}

	return pageSize
}
