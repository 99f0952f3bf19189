// -----------------------------------------------------------------------
// Last Modified: Friday, 21st November 2025 9:15:00 am
// Modified By: Bob McAllan
// -----------------------------------------------------------------------

package common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/indago/internal/app"
	appcommon "github.com/ternarybob/indago/internal/common"
	"github.com/ternarybob/indago/internal/server"
)

// TestEnvironment is a fully wired in-process service instance backed by
// a stub screener upstream.
type TestEnvironment struct {
	Server   *httptest.Server // the service under test
	Upstream *httptest.Server // stub screener the provider client talks to
	App      *app.App
	Config   *appcommon.Config
}

// SetupTestEnvironment starts the application against a stub screener.
// Scraping, refresh, and the EODHD collaborator are disabled so tests
// exercise the provider path deterministically.
func SetupTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(stubScreener))

	cfg := appcommon.NewDefaultConfig()
	cfg.Provider.BaseURL = upstream.URL
	cfg.EODHD.APIKey = ""
	cfg.Scrape.Enabled = false
	cfg.Refresh.Enabled = false
	cfg.Logging.Level = "error"

	logger := arbor.NewLogger()

	application, err := app.New(cfg, logger)
	if err != nil {
		upstream.Close()
		t.Fatalf("Failed to initialize application: %v", err)
	}

	srv := server.New(application)
	ts := httptest.NewServer(srv.Handler())

	env := &TestEnvironment{
		Server:   ts,
		Upstream: upstream,
		App:      application,
		Config:   cfg,
	}

	t.Cleanup(func() {
		ts.Close()
		application.Close()
		upstream.Close()
	})

	return env
}

// stubScreener serves canned screener pages. Fund and stock requests are
// distinguished by the universeIds parameter the client sends.
func stubScreener(w http.ResponseWriter, r *http.Request) {
	universe := r.URL.Query().Get("universeIds")
	term := strings.ToLower(r.URL.Query().Get("term"))

	var rows []map[string]interface{}
	if strings.HasPrefix(universe, "E0EXG$") {
		rows = stubStockRows(term)
	} else {
		rows = stubFundRows(term)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"total":    len(rows),
		"page":     1,
		"pageSize": 20,
		"rows":     rows,
	})
}

func stubFundRows(term string) []map[string]interface{} {
	all := []map[string]interface{}{
		{
			"Name":               "Vanguard Growth Index Fund",
			"fundShareClassId":   "F00000OX8L",
			"GBRReturnM3":        2.1,
			"GBRReturnM12":       12.5,
			"GBRReturnM36":       8.2,
			"ongoingCharge":      0.29,
			"LargestSector":      "Technology",
			"globalAssetClassId": "Equity",
		},
		{
			"Name":               "Australian Ethical Growth Fund",
			"fundShareClassId":   "F000014ZJ0",
			"GBRReturnM12":       9.8,
			"ongoingCharge":      0.95,
			"LargestSector":      "Healthcare",
			"globalAssetClassId": "Equity",
		},
	}
	return filterRows(all, term)
}

func stubStockRows(term string) []map[string]interface{} {
	all := []map[string]interface{}{
		{
			"Name":             "BHP Group Ltd",
			"fundShareClassId": "0P000008KX",
			"GBRReturnM12":     15.3,
			"SectorName":       "Basic Materials",
		},
		{
			"Name":             "Commonwealth Bank of Australia",
			"fundShareClassId": "0P000009QD",
			"GBRReturnM12":     11.1,
			"SectorName":       "Financial Services",
		},
	}
	return filterRows(all, term)
}

func filterRows(rows []map[string]interface{}, term string) []map[string]interface{} {
	if term == "" {
		return rows
	}
	matched := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		name, _ := row["Name"].(string)
		if strings.Contains(strings.ToLower(name), term) {
			matched = append(matched, row)
		}
	}
	return matched
}
