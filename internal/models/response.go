package models

// SearchResponse is the envelope returned by every search endpoint.
type SearchResponse struct {
	Success    bool         `json:"success"`
	Results    []Investment `json:"results"`
	Count      int          `json:"count"`       // records in this response
	TotalFound int          `json:"total_found"` // records the sources reported before paging

	// Sources is populated for aggregated searches only.
	Sources []SourceOutcome `json:"sources,omitempty"`
}

// ErrorResponse is the envelope returned for request and server errors.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SearchResult is the service-layer outcome of a search, before HTTP shaping.
type SearchResult struct {
	Records    []Investment
	TotalFound int
	Report     *SearchReport // nil for single-source searches
}

// SearchReport summarizes a fan-out search run across multiple sources.
// Failed sources are reported here and in logs; they never fail the search.
type SearchReport struct {
	JobID     string          `json:"job_id"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
	Sources   []SourceOutcome `json:"sources"`
}

// SourceOutcome records one source's contribution to an aggregated search.
type SourceOutcome struct {
	Source     string `json:"source"`
	Count      int    `json:"count"`
	DurationMS int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}
