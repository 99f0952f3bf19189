// Package dedupe removes duplicate records from merged search results.
// Duplicates are dropped whole, never merged: the first record seen wins,
// so source ordering decides which copy survives.
package dedupe

import (
	"strings"

	"github.com/ternarybob/indago/internal/models"
)

// ByName keeps the first record seen for each name. Names are compared
// lower-cased and trimmed. Order-preserving and idempotent.
func ByName(records []models.Investment) []models.Investment {
	seen := make(map[string]struct{}, len(records))
	result := make([]models.Investment, 0, len(records))

	for _, record := range records {
		key := nameKey(record.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, record)
	}

	return result
}

// ByNameAndIdentifier keys on name and identifier together, so distinct
// share classes sharing a marketing name survive.
func ByNameAndIdentifier(records []models.Investment) []models.Investment {
	seen := make(map[string]struct{}, len(records))
	result := make([]models.Investment, 0, len(records))

	for _, record := range records {
		key := nameKey(record.Name) + "\x00" + strings.ToUpper(strings.TrimSpace(record.APIR))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, record)
	}

	return result
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
