package models

// Kind identifies the class of investment product a record describes.
type Kind string

const (
	KindFund        Kind = "fund"
	KindStock       Kind = "stock"
	KindETF         Kind = "etf"
	KindSuperOption Kind = "super_option"
)

// Status labels record where an investment record came from.
const (
	StatusMorningstar = "Morningstar Data"
	StatusCurated     = "Curated Data"
	StatusScraped     = "Scraped Data"
	StatusEODHD       = "EODHD Data"
)

// Investment represents a normalized investment record from any source.
// Return and cost fields are pointers so missing provider data serializes
// as null rather than zero, which consumers treat as a real figure.
type Investment struct {
	// Identity
	APIR string `json:"apir"` // APIR code for funds, ticker for listed products
	Name string `json:"name"`

	// Performance (percent, annualized past one year)
	ThreeMonths *float64 `json:"threeMonths"`
	OneYear     *float64 `json:"oneYear"`
	ThreeYears  *float64 `json:"threeYears"`
	FiveYears   *float64 `json:"fiveYears"`
	TenYears    *float64 `json:"tenYears"`

	// Cost
	TCR *float64 `json:"tcr"` // total cost ratio; always null for stocks

	// Classification
	AssetClass string `json:"assetClass"`
	Sector     string `json:"sector"`
	Country    string `json:"country"`
	Currency   string `json:"currency"`
	Exchange   string `json:"exchange"`
	Kind       Kind   `json:"kind"`

	// Provenance
	Status string `json:"status"`
}

// Identified reports whether the record carries both an identifier and a name.
// Records failing this check are dropped from fund and stock search results.
func (i *Investment) Identified() bool {
	return i.APIR != "" && i.Name != ""
}

// Float returns a pointer to v. Used when building records with literal
// return figures.
func Float(v float64) *float64 {
	return &v
}
