package morningstar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/ternarybob/indago/internal/models"
)

const (
	// DefaultBaseURL is the base URL for the Morningstar screener API.
	DefaultBaseURL = "https://lt.morningstar.com/api/rest.svc"

	// DefaultScreenerID is the public screener instance id.
	DefaultScreenerID = "klr5zyak8x"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the default rate limit (requests per second).
	DefaultRateLimit = 5

	// DefaultCurrency is the currency id sent with fund searches.
	DefaultCurrency = "AUD"
)

// The screener rejects requests without a browser user agent.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// fundUniverses maps lower-cased country codes to fund screener universes.
// Unknown countries fall back to the generic FO<CODE>$$ALL form, which the
// screener answers with zero rows rather than an error.
var fundUniverses = map[string]string{
	"au": "FOAUS$$ALL",
	"nz": "FONZL$$ALL",
	"gb": "FOGBR$$ALL",
	"uk": "FOGBR$$ALL",
	"us": "FOUSA$$ALL",
	"ca": "FOCAN$$ALL",
	"sg": "FOSGP$$ALL",
	"hk": "FOHKG$$ALL",
}

// Client is a Morningstar screener API client.
type Client struct {
	baseURL    string
	screenerID string
	currency   string
	region     string
	universe   string
	userAgent  string
	httpClient *http.Client
	logger     arbor.ILogger
	limiter    *rate.Limiter
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithScreenerID sets a custom screener instance id.
func WithScreenerID(screenerID string) ClientOption {
	return func(c *Client) {
		c.screenerID = screenerID
	}
}

// WithCurrency sets the currency id sent with fund searches.
func WithCurrency(currency string) ClientOption {
	return func(c *Client) {
		c.currency = currency
	}
}

// WithRegion sets a provider-defined region parameter, passed through
// verbatim on every request.
func WithRegion(region string) ClientOption {
	return func(c *Client) {
		c.region = region
	}
}

// WithUniverse sets a provider-defined universe id that replaces the
// country-derived fund universe, passed through verbatim.
func WithUniverse(universe string) ClientOption {
	return func(c *Client) {
		c.universe = universe
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets a custom rate limit.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// NewClient creates a new Morningstar screener client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		screenerID: DefaultScreenerID,
		currency:   DefaultCurrency,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// get performs a GET request against the screener endpoint.
func (c *Client) get(ctx context.Context, params url.Values, result interface{}) error {
	// Wait for rate limiter
	if err := c.limiter.Wait(ctx); err != nil {
		return &RateLimitError{RetryAfter: time.Second}
	}

	path := "/" + c.screenerID + "/security/screener"
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	if c.logger != nil {
		c.logger.Debug().
			Str("url", c.baseURL+path).
			Str("term", params.Get("term")).
			Msg("Morningstar screener request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter := time.Second
		if header := resp.Header.Get("Retry-After"); header != "" {
			if seconds, err := strconv.Atoi(header); err == nil {
				retryAfter = time.Duration(seconds) * time.Second
			}
		}
		return &RateLimitError{RetryAfter: retryAfter}
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// baseParams returns the query parameters shared by every screener request.
func (c *Client) baseParams(term string, pageSize int) url.Values {
	params := url.Values{}
	params.Set("page", "1")
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("sortOrder", "Name asc")
	params.Set("outputType", "json")
	params.Set("version", "1")
	params.Set("languageId", "en-GB")
	params.Set("term", term)
	if c.region != "" {
		params.Set("region", c.region)
	}
	return params
}

// SearchFunds screens managed funds matching term within a country universe.
// Returns the matching rows and the total the screener reported before paging.
func (c *Client) SearchFunds(ctx context.Context, term, country string, pageSize int) ([]models.RawRecord, int, error) {
	params := c.baseParams(term, pageSize)
	params.Set("currencyId", c.currency)
	params.Set("universeIds", c.fundUniverse(country))
	params.Set("securityDataPoints", strings.Join(fundFields, "|"))

	var result screenerResponse
	if err := c.get(ctx, params, &result); err != nil {
		return nil, 0, err
	}

	return result.Rows, result.Total, nil
}

// SearchStocks screens listed equities matching term on an exchange.
func (c *Client) SearchStocks(ctx context.Context, term, exchange string, pageSize int) ([]models.RawRecord, int, error) {
	params := c.baseParams(term, pageSize)
	params.Set("universeIds", stockUniverse(exchange))
	params.Set("securityDataPoints", strings.Join(stockFields, "|"))

	var result screenerResponse
	if err := c.get(ctx, params, &result); err != nil {
		return nil, 0, err
	}

	return result.Rows, result.Total, nil
}

// fundUniverse resolves the fund universe id for a country code.
// A configured universe override always wins.
func (c *Client) fundUniverse(country string) string {
	if c.universe != "" {
		return c.universe
	}
	if universe, ok := fundUniverses[strings.ToLower(strings.TrimSpace(country))]; ok {
		return universe
	}
	return "FO" + strings.ToUpper(strings.TrimSpace(country)) + "$$ALL"
}

// stockUniverse resolves the equity universe id for an exchange code.
func stockUniverse(exchange string) string {
	return "E0EXG$" + strings.ToUpper(strings.TrimSpace(exchange))
}
