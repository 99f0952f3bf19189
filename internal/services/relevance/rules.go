// Package relevance classifies normalized records against a configurable
// jurisdiction rule set. Rules are data, not code: the classifier is a
// generic disjunctive evaluator and the rule set ships as defaults that
// operators can replace with a TOML or YAML file.
package relevance

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// RuleSet describes what makes a record relevant to a jurisdiction.
// A record is relevant when ANY acceptance rule holds, unless the
// rejection rules veto it first.
type RuleSet struct {
	// Jurisdiction is the country name matched against record countries.
	Jurisdiction string `toml:"jurisdiction" yaml:"jurisdiction" validate:"required"`

	// IdentifierSuffix marks jurisdiction-registered product codes.
	IdentifierSuffix string `toml:"identifier_suffix" yaml:"identifier_suffix" validate:"required"`

	// MinIdentifierLength is the shortest identifier the suffix rule accepts.
	MinIdentifierLength int `toml:"min_identifier_length" yaml:"min_identifier_length" validate:"min=1"`

	// Institutions are issuer abbreviations recognized inside identifiers.
	Institutions []string `toml:"institutions" yaml:"institutions"`

	// Exchanges is the exchange-code allow-list.
	Exchanges []string `toml:"exchanges" yaml:"exchanges"`

	// Currency paired with a name keyword is accepted as a weak signal.
	Currency     string   `toml:"currency" yaml:"currency"`
	NameKeywords []string `toml:"name_keywords" yaml:"name_keywords"`

	// Reject vetoes records before any acceptance rule runs.
	Reject RejectRules `toml:"reject" yaml:"reject"`
}

// RejectRules veto implausible identifiers: provider placeholders,
// sentinel values and filler-only codes.
type RejectRules struct {
	Enabled             bool     `toml:"enabled" yaml:"enabled"`
	PlaceholderPrefixes []string `toml:"placeholder_prefixes" yaml:"placeholder_prefixes"`
	SentinelSubstrings  []string `toml:"sentinel_substrings" yaml:"sentinel_substrings"`
	MaxIdentifierLength int      `toml:"max_identifier_length" yaml:"max_identifier_length"`
	FillerCharacters    string   `toml:"filler_characters" yaml:"filler_characters"`
}

// DefaultRuleSet returns the built-in Australian rule set.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Jurisdiction:        "Australia",
		IdentifierSuffix:    "AU",
		MinIdentifierLength: 8,
		Institutions:        []string{"AMP", "BT", "CFS", "MLC", "PER", "VAN", "ETL", "IOF"},
		Exchanges:           []string{"ASX", "XASX", "CXA", "NSX", "AU"},
		Currency:            "AUD",
		NameKeywords:        []string{"australia", "australian", "asx"},
		Reject: RejectRules{
			Enabled:             true,
			PlaceholderPrefixes: []string{"F00000", "0P0000"},
			SentinelSubstrings:  []string{"XXXX"},
			MaxIdentifierLength: 12,
			FillerCharacters:    "0X",
		},
	}
}

// LoadRuleSet reads a rule file and overlays it on the defaults, so a
// partial file only replaces the fields it names. Format follows the
// file extension: .toml, .yaml or .yml.
func LoadRuleSet(path string) (RuleSet, error) {
	rules := DefaultRuleSet()

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &rules); err != nil {
			return rules, fmt.Errorf("failed to parse rules file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &rules); err != nil {
			return rules, fmt.Errorf("failed to parse rules file %s: %w", path, err)
		}
	default:
		return rules, fmt.Errorf("unsupported rules file format: %s", path)
	}

	if err := rules.Validate(); err != nil {
		return rules, err
	}

	return rules, nil
}

// Validate checks the rule set for values the classifier cannot work with.
func (r RuleSet) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid rule set: %w", err)
	}

	if r.Reject.Enabled && r.Reject.MaxIdentifierLength > 0 && r.Reject.MaxIdentifierLength < r.MinIdentifierLength {
		return fmt.Errorf("invalid rule set: max identifier length %d is below min identifier length %d",
			r.Reject.MaxIdentifierLength, r.MinIdentifierLength)
	}

	return nil
}
