package interfaces

import (
	"context"

	"github.com/ternarybob/indago/internal/models"
)

// SearchOptions configures search behavior
type SearchOptions struct {
	// Term is the user-supplied search term (required)
	Term string

	// PageSize caps the number of results returned
	PageSize int

	// Country overrides the configured fund-search country (e.g., "au")
	Country string

	// Exchange overrides the configured stock-search exchange (e.g., "XASX")
	Exchange string

	// Type filters aggregated searches by record kind
	// ("all", "fund", "stock", "etf", "super_option")
	Type string
}

// SearchService answers investment searches against the configured sources.
// Implementations degrade on source failure: a failed source contributes
// nothing and is reported in the result, it never fails the search.
type SearchService interface {
	// SearchFunds screens managed funds matching the term
	SearchFunds(ctx context.Context, opts SearchOptions) (*models.SearchResult, error)

	// SearchStocks screens listed equities matching the term
	SearchStocks(ctx context.Context, opts SearchOptions) (*models.SearchResult, error)

	// SearchCombined screens funds and stocks together, funds first
	SearchCombined(ctx context.Context, opts SearchOptions) (*models.SearchResult, error)

	// SearchAustralia fans out across every configured source and keeps
	// records classified as Australian investments
	SearchAustralia(ctx context.Context, opts SearchOptions) (*models.SearchResult, error)
}
