// Package normalize maps raw provider rows onto the normalized investment
// record shape shared by every search source.
package normalize

import (
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/indago/internal/models"
)

// Options carries per-query context applied to every record in a batch.
type Options struct {
	// Kind tags the records; stocks never carry a cost ratio.
	Kind models.Kind

	// Locale defaults used when a record carries no value of its own.
	Country  string
	Currency string
	Exchange string

	// Status is the provenance label stamped on each record.
	Status string
}

// Record maps one raw provider row onto a normalized investment record.
// Pure function: missing fields degrade to empty strings or nulls, they
// never error.
func Record(raw models.RawRecord, opts Options) models.Investment {
	record := models.Investment{
		APIR:        raw.FirstString(identifierKeys...),
		Name:        raw.FirstString(nameKeys...),
		ThreeMonths: raw.FirstFloat(threeMonthsKeys...),
		OneYear:     raw.FirstFloat(oneYearKeys...),
		ThreeYears:  raw.FirstFloat(threeYearsKeys...),
		FiveYears:   raw.FirstFloat(fiveYearsKeys...),
		TenYears:    raw.FirstFloat(tenYearsKeys...),
		AssetClass:  raw.FirstString(assetClassKeys...),
		Sector:      raw.FirstString(sectorKeys...),
		Country:     raw.FirstString(countryKeys...),
		Currency:    raw.FirstString(currencyKeys...),
		Exchange:    raw.FirstString(exchangeKeys...),
		Kind:        opts.Kind,
		Status:      opts.Status,
	}

	// Stocks have no ongoing charge; the cost ratio stays null even when
	// a provider row carries one.
	if opts.Kind != models.KindStock {
		record.TCR = raw.FirstFloat(costKeys...)
	}

	if record.AssetClass == "" {
		record.AssetClass = "Unknown"
	}
	if record.Country == "" {
		record.Country = opts.Country
	}
	if record.Currency == "" {
		record.Currency = opts.Currency
	}
	if record.Exchange == "" {
		record.Exchange = opts.Exchange
	}

	return record
}

// Records normalizes a batch of raw rows. A row whose normalization
// panics is logged and skipped; it never fails the batch.
func Records(logger arbor.ILogger, raws []models.RawRecord, opts Options) []models.Investment {
	return records(logger, raws, opts, Record)
}

func records(logger arbor.ILogger, raws []models.RawRecord, opts Options, normalizeFn func(models.RawRecord, Options) models.Investment) []models.Investment {
	result := make([]models.Investment, 0, len(raws))
	for i, raw := range raws {
		record, ok := guard(logger, i, raw, opts, normalizeFn)
		if ok {
			result = append(result, record)
		}
	}
	return result
}

func guard(logger arbor.ILogger, index int, raw models.RawRecord, opts Options, normalizeFn func(models.RawRecord, Options) models.Investment) (record models.Investment, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if logger != nil {
				logger.Warn().
					Int("index", index).
					Str("panic", fmt.Sprintf("%v", r)).
					Msg("Skipping record that failed normalization")
			}
			ok = false
		}
	}()

	return normalizeFn(raw, opts), true
}
