// Package common provides shared utilities across the application.
package common

import (
	"strings"
	"unicode"
)

// APIRCode represents a parsed APIR product code as used by Australian
// managed funds and super options.
// Format: issuer prefix, numeric sequence, two-letter country suffix
// (e.g., "VAN0002AU", "AMP0447AU").
type APIRCode struct {
	// Institution is the issuer prefix (e.g., "VAN", "AMP")
	Institution string
	// Suffix is the two-letter country suffix (e.g., "AU")
	Suffix string
	// Raw is the original identifier string
	Raw string
}

// MinAPIRLength is the shortest identifier treated as a full APIR code.
// Shorter strings are exchange tickers or partial codes.
const MinAPIRLength = 8

// apirInstitutionLength is the length of the issuer prefix in an APIR code.
const apirInstitutionLength = 3

// apirSuffixLength is the length of the country suffix in an APIR code.
const apirSuffixLength = 2

// ParseAPIR parses an APIR-style product code.
// Supports formats:
//   - "VAN0002AU" -> Institution="VAN", Suffix="AU"
//   - "van0002au" -> normalized to uppercase
//   - "VAS" -> Institution="", Suffix="" (too short to be an APIR code)
//
// The suffix is only extracted when the identifier is at least
// MinAPIRLength characters and ends in two letters.
func ParseAPIR(code string) APIRCode {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return APIRCode{}
	}

	parsed := APIRCode{Raw: code}
	if len(code) < MinAPIRLength {
		return parsed
	}

	suffix := code[len(code)-apirSuffixLength:]
	if !isAlpha(suffix) {
		return parsed
	}
	parsed.Suffix = suffix

	prefix := code[:apirInstitutionLength]
	if isAlpha(prefix) {
		parsed.Institution = prefix
	}

	return parsed
}

// Valid reports whether the identifier parsed as a full APIR code.
func (a APIRCode) Valid() bool {
	return a.Suffix != ""
}

// String returns the normalized identifier string.
func (a APIRCode) String() string {
	return a.Raw
}

// HasCountrySuffix reports whether the identifier carries the given
// country suffix (e.g., "AU"). Comparison is case-insensitive.
func (a APIRCode) HasCountrySuffix(suffix string) bool {
	return a.Suffix != "" && strings.EqualFold(a.Suffix, suffix)
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// ParseTickerCode cleans a scraped or user-supplied ticker code.
// Supports formats:
//   - "ASX:VAS" -> "VAS" (colon separator)
//   - "ASX.VAS" -> "VAS" (dot separator, known exchange prefix only)
//   - "vas" -> "VAS" (normalized to uppercase)
func ParseTickerCode(raw string) string {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return ""
	}

	if idx := strings.Index(raw, ":"); idx > 0 {
		return strings.TrimSpace(raw[idx+1:])
	}

	// Only strip a dot prefix when it names a known exchange, so codes
	// containing dots survive intact.
	if idx := strings.Index(raw, "."); idx > 0 {
		if _, ok := knownExchanges[raw[:idx]]; ok {
			return strings.TrimSpace(raw[idx+1:])
		}
	}

	return raw
}

// knownExchanges lists exchange prefixes recognized by ParseTickerCode.
var knownExchanges = map[string]struct{}{
	"ASX":  {},
	"XASX": {},
	"CXA":  {},
	"NSX":  {},
}
