// Package morningstar provides a client for the Morningstar security
// screener API. This package centralizes all screener interactions for
// the application.
package morningstar

import (
	"fmt"
	"time"

	"github.com/ternarybob/indago/internal/models"
)

// fundFields are the security data points requested for fund searches.
var fundFields = []string{
	"Name",
	"fundShareClassId",
	"GBRReturnM3",
	"GBRReturnM12",
	"GBRReturnM36",
	"GBRReturnM60",
	"GBRReturnM120",
	"ongoingCharge",
	"globalAssetClassId",
	"LargestSector",
}

// stockFields are the security data points requested for stock searches.
// Stocks report sector under SectorName and carry no ongoing charge.
var stockFields = []string{
	"Name",
	"fundShareClassId",
	"GBRReturnM3",
	"GBRReturnM12",
	"GBRReturnM36",
	"GBRReturnM60",
	"GBRReturnM120",
	"SectorName",
}

// screenerResponse is the wire shape of a screener page.
type screenerResponse struct {
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"pageSize"`
	Rows     []models.RawRecord `json:"rows"`
}

// APIError represents an error from the Morningstar screener API.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Morningstar API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// RateLimitError represents a rate limit error.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("Morningstar rate limit exceeded, retry after %v", e.RetryAfter)
}
