package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/indago/internal/common"
	"github.com/ternarybob/indago/internal/models"
)

const listingPage = `<!DOCTYPE html>
<html>
<body>
<h1>ASX Listed ETFs</h1>
<table id="etf-list">
  <thead>
    <tr><th>Code</th><th>Name</th></tr>
  </thead>
  <tbody>
    <tr><td class="code">ASX:VAS</td><td class="name">Vanguard Australian Shares Index ETF</td></tr>
    <tr><td class="code">VGS</td><td class="name">Vanguard MSCI Index International Shares ETF</td></tr>
    <tr><td class="code">IVV</td><td class="name">  iShares   S&amp;P 500 ETF  </td></tr>
    <tr><td class="code">XYZ</td><td class="name"></td></tr>
  </tbody>
</table>
</body>
</html>`

func testConfig(targets ...common.ScrapeTarget) common.ScrapeConfig {
	return common.ScrapeConfig{
		Enabled:        true,
		UserAgent:      "test-agent/1.0",
		RequestTimeout: common.Duration{Duration: 5 * time.Second},
		Targets:        targets,
	}
}

func TestService_Scrape(t *testing.T) {
	var gotUserAgent, gotAcceptLanguage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAcceptLanguage = r.Header.Get("Accept-Language")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(listingPage))
	}))
	defer server.Close()

	target := common.ScrapeTarget{
		Name:         "asx-etfs",
		URL:          server.URL,
		RowSelector:  "table#etf-list tbody tr",
		CodeSelector: "td.code",
		NameSelector: "td.name",
		Kind:         "etf",
		Exchange:     "ASX",
		Enabled:      true,
	}

	service := NewService(testConfig(target), arbor.NewLogger())

	records, err := service.Scrape(context.Background(), target)
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Scrape() returned %d records, want 3 (empty-name row skipped)", len(records))
	}

	first := records[0]
	if first.APIR != "VAS" {
		t.Errorf("first record APIR = %q, want %q (exchange prefix stripped)", first.APIR, "VAS")
	}
	if first.Name != "Vanguard Australian Shares Index ETF" {
		t.Errorf("first record Name = %q", first.Name)
	}
	if first.Kind != models.KindETF {
		t.Errorf("first record Kind = %q, want %q", first.Kind, models.KindETF)
	}
	if first.Exchange != "ASX" {
		t.Errorf("first record Exchange = %q, want %q", first.Exchange, "ASX")
	}
	if first.Country != "Australia" || first.Currency != "AUD" {
		t.Errorf("first record locale = %q/%q, want Australia/AUD", first.Country, first.Currency)
	}
	if first.Status != models.StatusScraped {
		t.Errorf("first record Status = %q, want %q", first.Status, models.StatusScraped)
	}

	if records[2].Name != "iShares S&P 500 ETF" {
		t.Errorf("whitespace not collapsed: Name = %q", records[2].Name)
	}

	if gotUserAgent != "test-agent/1.0" {
		t.Errorf("User-Agent = %q, want %q", gotUserAgent, "test-agent/1.0")
	}
	if gotAcceptLanguage == "" {
		t.Error("Accept-Language header not sent")
	}
}

func TestService_Scrape_NoCodeSelector(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listingPage))
	}))
	defer server.Close()

	target := common.ScrapeTarget{
		Name:         "names-only",
		URL:          server.URL,
		RowSelector:  "table#etf-list tbody tr",
		NameSelector: "td.name",
		Kind:         "fund",
		Enabled:      true,
	}

	service := NewService(testConfig(target), arbor.NewLogger())

	records, err := service.Scrape(context.Background(), target)
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}

	for _, record := range records {
		if record.APIR != "" {
			t.Errorf("record %q has APIR %q, want empty without code selector", record.Name, record.APIR)
		}
	}
}

func TestService_Scrape_MissingRowSelector(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listingPage))
	}))
	defer server.Close()

	target := common.ScrapeTarget{
		Name:         "broken",
		URL:          server.URL,
		NameSelector: "td.name",
		Kind:         "etf",
		Enabled:      true,
	}

	service := NewService(testConfig(target), arbor.NewLogger())

	if _, err := service.Scrape(context.Background(), target); err == nil {
		t.Fatal("Scrape() with no row selector expected error, got nil")
	}
}

func TestService_Scrape_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	target := common.ScrapeTarget{
		Name:        "down",
		URL:         server.URL,
		RowSelector: "tr",
		Kind:        "etf",
		Enabled:     true,
	}

	service := NewService(testConfig(target), arbor.NewLogger())

	_, err := service.Scrape(context.Background(), target)
	if err == nil {
		t.Fatal("Scrape() against 503 expected error, got nil")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("error %q does not mention status code", err)
	}
}

func TestService_Scrape_RenderDisabled(t *testing.T) {
	target := common.ScrapeTarget{
		Name:        "js-page",
		URL:         "http://example.invalid/list",
		RowSelector: "tr",
		Kind:        "etf",
		Render:      true,
		Enabled:     true,
	}

	config := testConfig(target)
	config.RenderEnabled = false

	service := NewService(config, arbor.NewLogger())

	_, err := service.Scrape(context.Background(), target)
	if err == nil {
		t.Fatal("Scrape() of render target with rendering disabled expected error, got nil")
	}
	if !strings.Contains(err.Error(), "rendering is disabled") {
		t.Errorf("error %q does not explain disabled rendering", err)
	}
}

func TestService_Scrape_EmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><table id=\"etf-list\"><tbody></tbody></table></body></html>"))
	}))
	defer server.Close()

	target := common.ScrapeTarget{
		Name:         "empty",
		URL:          server.URL,
		RowSelector:  "table#etf-list tbody tr",
		NameSelector: "td.name",
		Kind:         "etf",
		Enabled:      true,
	}

	service := NewService(testConfig(target), arbor.NewLogger())

	records, err := service.Scrape(context.Background(), target)
	if err != nil {
		t.Fatalf("Scrape() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Scrape() of empty table returned %d records, want 0", len(records))
	}
}

func TestService_Markdown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(listingPage))
	}))
	defer server.Close()

	target := common.ScrapeTarget{
		Name:    "asx-etfs",
		URL:     server.URL,
		Kind:    "etf",
		Enabled: true,
	}

	service := NewService(testConfig(target), arbor.NewLogger())

	markdown, err := service.Markdown(context.Background(), target)
	if err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}
	if !strings.Contains(markdown, "ASX Listed ETFs") {
		t.Errorf("markdown missing page heading: %q", markdown)
	}
	if !strings.Contains(markdown, "Vanguard Australian Shares Index ETF") {
		t.Errorf("markdown missing table content: %q", markdown)
	}
}

func TestService_EnabledTargets(t *testing.T) {
	config := testConfig(
		common.ScrapeTarget{Name: "on", URL: "http://example.com/a", Kind: "etf", Enabled: true},
		common.ScrapeTarget{Name: "off", URL: "http://example.com/b", Kind: "etf", Enabled: false},
		common.ScrapeTarget{Name: "also-on", URL: "http://example.com/c", Kind: "fund", Enabled: true},
	)

	service := NewService(config, arbor.NewLogger())

	targets := service.EnabledTargets()
	if len(targets) != 2 {
		t.Fatalf("EnabledTargets() returned %d targets, want 2", len(targets))
	}
	if targets[0].Name != "on" || targets[1].Name != "also-on" {
		t.Errorf("EnabledTargets() = %q, %q", targets[0].Name, targets[1].Name)
	}
}
