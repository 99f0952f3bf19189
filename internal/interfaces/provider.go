package interfaces

import (
	"context"

	"github.com/ternarybob/indago/internal/models"
)

// SecurityProvider screens securities at an upstream market-data API.
// Rows come back untyped because field names vary across screener
// universes; the normalizer maps them onto models.Investment.
type SecurityProvider interface {
	// SearchFunds screens managed funds matching term within a country
	// universe. Returns the matching rows and the total the provider
	// reported before paging.
	SearchFunds(ctx context.Context, term, country string, pageSize int) ([]models.RawRecord, int, error)

	// SearchStocks screens listed equities matching term on an exchange.
	SearchStocks(ctx context.Context, term, exchange string, pageSize int) ([]models.RawRecord, int, error)
}
