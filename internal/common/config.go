package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Duration wraps time.Duration so config files can carry values like
// "30s" or "2m". go-toml decodes strings through TextUnmarshaler.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment" validate:"omitempty,oneof=development production"`
	Server      ServerConfig    `toml:"server"`
	Logging     LoggingConfig   `toml:"logging"`
	Provider    ProviderConfig  `toml:"provider"`
	EODHD       EODHDConfig     `toml:"eodhd"`
	Search      SearchConfig    `toml:"search"`
	Relevance   RelevanceConfig `toml:"relevance"`
	Scrape      ScrapeConfig    `toml:"scrape"`
	Refresh     RefreshConfig   `toml:"refresh"`
}

type ServerConfig struct {
	Port int    `toml:"port" validate:"min=1,max=65535"`
	Host string `toml:"host"`
}

type LoggingConfig struct {
	Level  string   `toml:"level" validate:"oneof=debug info warn error"`
	Format string   `toml:"format" validate:"oneof=text json"`
	Output []string `toml:"output"` // "stdout", "file"
}

// ProviderConfig configures the Morningstar security screener adapter.
// Region and Universe are provider-specific tuning knobs passed through
// verbatim when set; they override the country/exchange derived universe.
type ProviderConfig struct {
	BaseURL        string   `toml:"base_url" validate:"required,url"`
	ScreenerID     string   `toml:"screener_id" validate:"required"`
	Country        string   `toml:"country"`  // default country for fund searches (e.g. "au")
	Currency       string   `toml:"currency"` // currency id sent with fund searches
	Exchange       string   `toml:"exchange"` // default exchange for stock searches (e.g. "XASX")
	Region         string   `toml:"region"`
	Universe       string   `toml:"universe"`
	RateLimit      int      `toml:"rate_limit" validate:"min=1"` // requests per second
	RequestTimeout Duration `toml:"request_timeout"`
}

// EODHDConfig configures the optional EODHD symbol-search collaborator.
// An empty APIKey disables the collaborator entirely.
type EODHDConfig struct {
	APIKey    string `toml:"api_key"`
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit" validate:"min=1"`
}

type SearchConfig struct {
	DefaultPageSize int      `toml:"default_page_size" validate:"min=1"`
	MaxPageSize     int      `toml:"max_page_size" validate:"min=1"`
	Workers         int      `toml:"workers" validate:"min=1"` // fan-out worker pool size
	Timeout         Duration `toml:"timeout"`                  // blanket timeout for aggregated searches
}

// RelevanceConfig points at an optional rule file (TOML or YAML) that
// replaces the built-in Australian relevance rules.
type RelevanceConfig struct {
	RulesFile string `toml:"rules_file"`
}

type ScrapeConfig struct {
	Enabled        bool           `toml:"enabled"`
	UserAgent      string         `toml:"user_agent"`
	RequestTimeout Duration       `toml:"request_timeout"`
	MaxBodySize    int            `toml:"max_body_size"`
	RenderEnabled  bool           `toml:"render_enabled"` // allow chromedp rendering for targets that need it
	RenderWaitTime Duration       `toml:"render_wait_time"`
	Targets        []ScrapeTarget `toml:"targets" validate:"dive"`
}

// ScrapeTarget describes one public website to extract records from.
// Selectors are CSS selectors; Kind tags the extracted records.
type ScrapeTarget struct {
	Name         string `toml:"name" validate:"required"`
	URL          string `toml:"url" validate:"required,url"`
	RowSelector  string `toml:"row_selector"`
	CodeSelector string `toml:"code_selector"`
	NameSelector string `toml:"name_selector"`
	Kind         string `toml:"kind" validate:"oneof=fund stock etf super_option"`
	Exchange     string `toml:"exchange"` // stamped on extracted records when set
	Render       bool   `toml:"render"`   // page requires JavaScript rendering
	Enabled      bool   `toml:"enabled"`
}

type RefreshConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"` // cron schedule format
}

// NewDefaultConfig creates a configuration with default values.
// Technical parameters are hardcoded here for production stability.
// Only user-facing settings should be exposed in indago.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 5000,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: []string{"stdout", "file"},
		},
		Provider: ProviderConfig{
			BaseURL:        "https://lt.morningstar.com/api/rest.svc",
			ScreenerID:     "klr5zyak8x",
			Country:        "au",
			Currency:       "AUD",
			Exchange:       "XASX",
			RateLimit:      5,
			RequestTimeout: Duration{Duration: 30 * time.Second},
		},
		EODHD: EODHDConfig{
			APIKey:    "", // absent key disables the collaborator
			BaseURL:   "https://eodhd.com/api",
			RateLimit: 10,
		},
		Search: SearchConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
			Workers:         4,
			Timeout:         Duration{Duration: 20 * time.Second},
		},
		Relevance: RelevanceConfig{
			RulesFile: "",
		},
		Scrape: ScrapeConfig{
			Enabled:        true,
			UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			RequestTimeout: Duration{Duration: 20 * time.Second},
			MaxBodySize:    5 * 1024 * 1024, // 5MB
			RenderEnabled:  false,
			RenderWaitTime: Duration{Duration: 3 * time.Second},
			Targets: []ScrapeTarget{
				{
					Name:         "asx-etfs",
					URL:          "https://www.marketindex.com.au/asx-etfs",
					RowSelector:  "table tbody tr",
					CodeSelector: "td:nth-child(1)",
					NameSelector: "td:nth-child(2)",
					Kind:         "etf",
					Exchange:     "ASX",
					Enabled:      true,
				},
				{
					Name:         "super-funds",
					URL:          "https://www.superguide.com.au/super-funds-guide/list-of-super-funds",
					RowSelector:  "article table tbody tr",
					CodeSelector: "",
					NameSelector: "td:nth-child(1)",
					Kind:         "super_option",
					Enabled:      true,
				},
				{
					// The mFund directory is a JavaScript application; rendering
					// must be enabled for this target to return rows.
					Name:         "asx-mfunds",
					URL:          "https://www.asx.com.au/markets/trade-our-cash-market/asx-investment-products-directory/mfunds",
					RowSelector:  "table tbody tr",
					CodeSelector: "td:nth-child(1)",
					NameSelector: "td:nth-child(2)",
					Kind:         "fund",
					Render:       true,
					Enabled:      false,
				},
			},
		},
		Refresh: RefreshConfig{
			Enabled:  false,
			Schedule: "0 */6 * * *", // every 6 hours
		},
	}
}

// LoadFromFile loads configuration with priority: default -> file -> env -> CLI
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// default -> file1 -> file2 -> ... -> env -> CLI. Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	// Start with defaults
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier files)
	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	// Load .env into the process environment before applying overrides (optional file)
	_ = godotenv.Load()

	// Resolve {env:NAME} references so secrets can stay out of config files
	if err := ReplaceInStruct(config, EnvMap(), GetLogger()); err != nil {
		return nil, fmt.Errorf("failed to resolve environment references: %w", err)
	}

	// Apply environment variables (overrides all file configs)
	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	// Environment configuration (highest priority: INDAGO_ENV, fallback: GO_ENV)
	if env := os.Getenv("INDAGO_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration (PORT is honored for platform compatibility)
	if port := os.Getenv("INDAGO_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	} else if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("INDAGO_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	// Logging configuration
	if level := os.Getenv("INDAGO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("INDAGO_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
	if output := os.Getenv("INDAGO_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	// Provider configuration
	if baseURL := os.Getenv("INDAGO_PROVIDER_BASE_URL"); baseURL != "" {
		config.Provider.BaseURL = baseURL
	}
	if screenerID := os.Getenv("INDAGO_PROVIDER_SCREENER_ID"); screenerID != "" {
		config.Provider.ScreenerID = screenerID
	}
	if country := os.Getenv("INDAGO_PROVIDER_COUNTRY"); country != "" {
		config.Provider.Country = country
	}
	if currency := os.Getenv("INDAGO_PROVIDER_CURRENCY"); currency != "" {
		config.Provider.Currency = currency
	}
	if exchange := os.Getenv("INDAGO_PROVIDER_EXCHANGE"); exchange != "" {
		config.Provider.Exchange = exchange
	}
	if region := os.Getenv("INDAGO_PROVIDER_REGION"); region != "" {
		config.Provider.Region = region
	}
	if universe := os.Getenv("INDAGO_PROVIDER_UNIVERSE"); universe != "" {
		config.Provider.Universe = universe
	}
	if rateLimit := os.Getenv("INDAGO_PROVIDER_RATE_LIMIT"); rateLimit != "" {
		if rl, err := strconv.Atoi(rateLimit); err == nil {
			config.Provider.RateLimit = rl
		}
	}
	if requestTimeout := os.Getenv("INDAGO_PROVIDER_REQUEST_TIMEOUT"); requestTimeout != "" {
		if rt, err := time.ParseDuration(requestTimeout); err == nil {
			config.Provider.RequestTimeout = Duration{Duration: rt}
		}
	}

	// EODHD configuration (INDAGO_ prefix takes priority over the bare key)
	if apiKey := os.Getenv("EODHD_API_KEY"); apiKey != "" {
		config.EODHD.APIKey = apiKey
	}
	if apiKey := os.Getenv("INDAGO_EODHD_API_KEY"); apiKey != "" {
		config.EODHD.APIKey = apiKey
	}
	if baseURL := os.Getenv("INDAGO_EODHD_BASE_URL"); baseURL != "" {
		config.EODHD.BaseURL = baseURL
	}
	if rateLimit := os.Getenv("INDAGO_EODHD_RATE_LIMIT"); rateLimit != "" {
		if rl, err := strconv.Atoi(rateLimit); err == nil {
			config.EODHD.RateLimit = rl
		}
	}

	// Search configuration
	if pageSize := os.Getenv("INDAGO_SEARCH_DEFAULT_PAGE_SIZE"); pageSize != "" {
		if ps, err := strconv.Atoi(pageSize); err == nil {
			config.Search.DefaultPageSize = ps
		}
	}
	if maxPageSize := os.Getenv("INDAGO_SEARCH_MAX_PAGE_SIZE"); maxPageSize != "" {
		if mps, err := strconv.Atoi(maxPageSize); err == nil {
			config.Search.MaxPageSize = mps
		}
	}
	if workers := os.Getenv("INDAGO_SEARCH_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil {
			config.Search.Workers = w
		}
	}
	if timeout := os.Getenv("INDAGO_SEARCH_TIMEOUT"); timeout != "" {
		if t, err := time.ParseDuration(timeout); err == nil {
			config.Search.Timeout = Duration{Duration: t}
		}
	}

	// Relevance configuration
	if rulesFile := os.Getenv("INDAGO_RELEVANCE_RULES_FILE"); rulesFile != "" {
		config.Relevance.RulesFile = rulesFile
	}

	// Scrape configuration
	if enabled := os.Getenv("INDAGO_SCRAPE_ENABLED"); enabled != "" {
		if e, err := strconv.ParseBool(enabled); err == nil {
			config.Scrape.Enabled = e
		}
	}
	if userAgent := os.Getenv("INDAGO_SCRAPE_USER_AGENT"); userAgent != "" {
		config.Scrape.UserAgent = userAgent
	}
	if requestTimeout := os.Getenv("INDAGO_SCRAPE_REQUEST_TIMEOUT"); requestTimeout != "" {
		if rt, err := time.ParseDuration(requestTimeout); err == nil {
			config.Scrape.RequestTimeout = Duration{Duration: rt}
		}
	}
	if renderEnabled := os.Getenv("INDAGO_SCRAPE_RENDER_ENABLED"); renderEnabled != "" {
		if re, err := strconv.ParseBool(renderEnabled); err == nil {
			config.Scrape.RenderEnabled = re
		}
	}

	// Refresh configuration
	if enabled := os.Getenv("INDAGO_REFRESH_ENABLED"); enabled != "" {
		if e, err := strconv.ParseBool(enabled); err == nil {
			config.Refresh.Enabled = e
		}
	}
	if schedule := os.Getenv("INDAGO_REFRESH_SCHEDULE"); schedule != "" {
		config.Refresh.Schedule = schedule
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config
func ApplyFlagOverrides(config *Config, port int, host string) {
	// Command-line flags have highest priority
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks the resolved configuration for values that would
// prevent the service from operating.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.Search.MaxPageSize < c.Search.DefaultPageSize {
		return fmt.Errorf("invalid configuration: max_page_size %d is below default_page_size %d",
			c.Search.MaxPageSize, c.Search.DefaultPageSize)
	}
	if c.Search.Timeout.Duration <= 0 {
		return fmt.Errorf("invalid configuration: search timeout must be positive")
	}
	if c.Provider.RequestTimeout.Duration <= 0 {
		return fmt.Errorf("invalid configuration: provider request timeout must be positive")
	}

	return nil
}

// EODHDEnabled reports whether the optional EODHD collaborator is configured.
// An unresolved {env:NAME} reference counts as absent.
func (c *Config) EODHDEnabled() bool {
	key := strings.TrimSpace(c.EODHD.APIKey)
	return key != "" && !envRefPattern.MatchString(key)
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
