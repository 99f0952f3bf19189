package relevance

import (
	"testing"

	"github.com/ternarybob/indago/internal/models"
)

func TestClassifier_IsRelevant(t *testing.T) {
	classifier := NewClassifier(DefaultRuleSet())

	tests := []struct {
		name   string
		record models.Investment
		want   bool
	}{
		{
			name:   "suffixed identifier of plausible length",
			record: models.Investment{APIR: "ABC1234AU"},
			want:   true,
		},
		{
			name:   "suffixed identifier too short",
			record: models.Investment{APIR: "VANAU"},
			want:   false,
		},
		{
			name:   "recognized institution on suffixed code",
			record: models.Investment{APIR: "MLC0260AU"},
			want:   true,
		},
		{
			name:   "lowercase identifier is normalized",
			record: models.Investment{APIR: "van0002au"},
			want:   true,
		},
		{
			name:   "exchange allow-list",
			record: models.Investment{APIR: "VAS", Exchange: "ASX"},
			want:   true,
		},
		{
			name:   "eodhd exchange code",
			record: models.Investment{APIR: "VAS", Exchange: "AU"},
			want:   true,
		},
		{
			name:   "foreign exchange",
			record: models.Investment{APIR: "AAPL", Exchange: "NASDAQ"},
			want:   false,
		},
		{
			name:   "country names the jurisdiction",
			record: models.Investment{Country: "Australia"},
			want:   true,
		},
		{
			name:   "country substring match is case-insensitive",
			record: models.Investment{Country: "AUSTRALIA AND NZ"},
			want:   true,
		},
		{
			name:   "home currency with indicative name",
			record: models.Investment{Name: "Betashares Australian ETF", Currency: "AUD"},
			want:   true,
		},
		{
			name:   "home currency without indicative name",
			record: models.Investment{Name: "Global Growth Fund", Currency: "AUD"},
			want:   false,
		},
		{
			name:   "nothing matches",
			record: models.Investment{APIR: "IE00B4L5Y983", Name: "iShares Core MSCI World", Country: "Ireland", Currency: "USD"},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.IsRelevant(&tt.record); got != tt.want {
				t.Errorf("IsRelevant(%+v) = %v, want %v", tt.record, got, tt.want)
			}
		})
	}
}

func TestClassifier_RejectionVeto(t *testing.T) {
	classifier := NewClassifier(DefaultRuleSet())

	tests := []struct {
		name   string
		record models.Investment
		want   bool
	}{
		{
			name:   "placeholder prefix",
			record: models.Investment{APIR: "F00000123"},
			want:   false,
		},
		{
			name:   "placeholder prefix beats suffix rule",
			record: models.Investment{APIR: "F000001AU"},
			want:   false,
		},
		{
			name:   "morningstar placeholder",
			record: models.Investment{APIR: "0P0000ABAU"},
			want:   false,
		},
		{
			name:   "sentinel substring",
			record: models.Investment{APIR: "ABXXXX12AU"},
			want:   false,
		},
		{
			name:   "identifier too long",
			record: models.Investment{APIR: "ABC1234567890AU"},
			want:   false,
		},
		{
			name:   "filler-only identifier",
			record: models.Investment{APIR: "0X00X0"},
			want:   false,
		},
		{
			name:   "veto does not apply without identifier",
			record: models.Investment{Country: "Australia"},
			want:   true,
		},
		{
			name:   "placeholder identifier beats country rule",
			record: models.Investment{APIR: "F00000OX8L", Country: "Australia"},
			want:   false,
		},
		{
			name:   "twelve characters is still plausible",
			record: models.Investment{APIR: "AU000000VAS3", Exchange: "ASX"},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.IsRelevant(&tt.record); got != tt.want {
				t.Errorf("IsRelevant(%+v) = %v, want %v", tt.record, got, tt.want)
			}
		})
	}
}

func TestClassifier_RejectionDisabled(t *testing.T) {
	rules := DefaultRuleSet()
	rules.Reject.Enabled = false
	classifier := NewClassifier(rules)

	// Suffix rule accepts what the veto would have caught
	record := models.Investment{APIR: "F000001AU"}
	if !classifier.IsRelevant(&record) {
		t.Error("IsRelevant() = false with rejection disabled, want true via suffix rule")
	}
}

func TestClassifier_CustomRuleSet(t *testing.T) {
	rules := RuleSet{
		Jurisdiction:        "New Zealand",
		IdentifierSuffix:    "NZ",
		MinIdentifierLength: 6,
		Exchanges:           []string{"NZX"},
		Currency:            "NZD",
		NameKeywords:        []string{"kiwi"},
	}
	classifier := NewClassifier(rules)

	relevant := models.Investment{APIR: "ABC12NZ"}
	if !classifier.IsRelevant(&relevant) {
		t.Error("custom suffix rule did not accept ABC12NZ")
	}

	australian := models.Investment{APIR: "VAN0002AU", Country: "Australia"}
	if classifier.IsRelevant(&australian) {
		t.Error("custom rule set accepted an Australian record")
	}
}

func TestClassifier_Filter(t *testing.T) {
	classifier := NewClassifier(DefaultRuleSet())

	records := []models.Investment{
		{APIR: "VAN0002AU", Name: "Vanguard Growth"},
		{APIR: "AAPL", Name: "Apple Inc", Exchange: "NASDAQ"},
		{APIR: "VAS", Name: "Vanguard Australian Shares", Exchange: "ASX"},
		{APIR: "F00000123", Name: "Placeholder"},
	}

	filtered := classifier.Filter(records)

	if len(filtered) != 2 {
		t.Fatalf("len(filtered) = %d, want 2", len(filtered))
	}
	if filtered[0].APIR != "VAN0002AU" || filtered[1].APIR != "VAS" {
		t.Errorf("filtered order = %q, %q; want VAN0002AU, VAS", filtered[0].APIR, filtered[1].APIR)
	}
}
