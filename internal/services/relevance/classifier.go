package relevance

import (
	"strings"

	"github.com/ternarybob/indago/internal/common"
	"github.com/ternarybob/indago/internal/models"
)

// Classifier applies a RuleSet to normalized records. Matching is
// case-insensitive throughout; the rule set is normalized once at
// construction.
type Classifier struct {
	rules RuleSet

	suffix       string
	institutions []string
	exchanges    map[string]struct{}
	currency     string
	jurisdiction string
	keywords     []string

	placeholderPrefixes []string
	sentinelSubstrings  []string
}

// NewClassifier creates a classifier for the given rule set.
func NewClassifier(rules RuleSet) *Classifier {
	c := &Classifier{
		rules:        rules,
		suffix:       strings.ToUpper(rules.IdentifierSuffix),
		currency:     strings.ToUpper(rules.Currency),
		jurisdiction: strings.ToLower(rules.Jurisdiction),
		exchanges:    make(map[string]struct{}, len(rules.Exchanges)),
	}

	for _, institution := range rules.Institutions {
		c.institutions = append(c.institutions, strings.ToUpper(institution))
	}
	for _, exchange := range rules.Exchanges {
		c.exchanges[strings.ToUpper(exchange)] = struct{}{}
	}
	for _, keyword := range rules.NameKeywords {
		c.keywords = append(c.keywords, strings.ToLower(keyword))
	}
	for _, prefix := range rules.Reject.PlaceholderPrefixes {
		c.placeholderPrefixes = append(c.placeholderPrefixes, strings.ToUpper(prefix))
	}
	for _, sentinel := range rules.Reject.SentinelSubstrings {
		c.sentinelSubstrings = append(c.sentinelSubstrings, strings.ToUpper(sentinel))
	}

	return c
}

// Rules returns the rule set this classifier was built from.
func (c *Classifier) Rules() RuleSet {
	return c.rules
}

// IsRelevant reports whether the record belongs to the configured
// jurisdiction. The rejection rules veto first: a record whose
// identifier matches them is excluded even when another signal, such
// as its country, would accept it. After that any single acceptance
// rule is sufficient.
func (c *Classifier) IsRelevant(record *models.Investment) bool {
	parsed := common.ParseAPIR(record.APIR)
	identifier := parsed.Raw

	if c.rejected(identifier) {
		return false
	}

	// Jurisdiction-suffixed identifier of plausible length
	if strings.HasSuffix(identifier, c.suffix) && len(identifier) >= c.rules.MinIdentifierLength {
		return true
	}

	// Recognized issuer abbreviation on a suffixed product code
	if parsed.HasCountrySuffix(c.suffix) {
		for _, institution := range c.institutions {
			if strings.Contains(identifier, institution) {
				return true
			}
		}
	}

	// Exchange allow-list
	if _, ok := c.exchanges[strings.ToUpper(strings.TrimSpace(record.Exchange))]; ok {
		return true
	}

	// Country names the jurisdiction
	if c.jurisdiction != "" && strings.Contains(strings.ToLower(record.Country), c.jurisdiction) {
		return true
	}

	// Home currency paired with an indicative name
	if c.currency != "" && strings.ToUpper(strings.TrimSpace(record.Currency)) == c.currency {
		name := strings.ToLower(record.Name)
		for _, keyword := range c.keywords {
			if strings.Contains(name, keyword) {
				return true
			}
		}
	}

	return false
}

// Filter returns the records classified as relevant, preserving order.
func (c *Classifier) Filter(records []models.Investment) []models.Investment {
	result := make([]models.Investment, 0, len(records))
	for i := range records {
		if c.IsRelevant(&records[i]) {
			result = append(result, records[i])
		}
	}
	return result
}

// rejected applies the veto rules to an already-normalized identifier.
// Records without identifiers are never vetoed; the remaining acceptance
// rules judge them on country, currency and exchange alone.
func (c *Classifier) rejected(identifier string) bool {
	if !c.rules.Reject.Enabled || identifier == "" {
		return false
	}

	for _, prefix := range c.placeholderPrefixes {
		if strings.HasPrefix(identifier, prefix) {
			return true
		}
	}

	for _, sentinel := range c.sentinelSubstrings {
		if strings.Contains(identifier, sentinel) {
			return true
		}
	}

	if max := c.rules.Reject.MaxIdentifierLength; max > 0 && len(identifier) > max {
		return true
	}

	if filler := c.rules.Reject.FillerCharacters; filler != "" && fillerOnly(identifier, filler) {
		return true
	}

	return false
}

func fillerOnly(identifier, filler string) bool {
	for _, r := range identifier {
		if !strings.ContainsRune(filler, r) {
			return false
		}
	}
	return identifier != ""
}
