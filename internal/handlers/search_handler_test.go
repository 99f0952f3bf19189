package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ternarybob/indago/internal/common"
	"github.com/ternarybob/indago/internal/interfaces"
	"github.com/ternarybob/indago/internal/models"
)

// mockSearchService implements interfaces.SearchService for testing
type mockSearchService struct {
	searchFundsFunc     func(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error)
	searchStocksFunc    func(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error)
	searchCombinedFunc  func(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error)
	searchAustraliaFunc func(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error)
}

func (m *mockSearchService) SearchFunds(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error) {
	if m.searchFundsFunc != nil {
		return m.searchFundsFunc(ctx, opts)
	}
	return &models.SearchResult{}, nil
}

func (m *mockSearchService) SearchStocks(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error) {
	if m.searchStocksFunc != nil {
		return m.searchStocksFunc(ctx, opts)
	}
	return &models.SearchResult{}, nil
}

func (m *mockSearchService) SearchCombined(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error) {
	if m.searchCombinedFunc != nil {
		return m.searchCombinedFunc(ctx, opts)
	}
	return &models.SearchResult{}, nil
}

func (m *mockSearchService) SearchAustralia(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error) {
	if m.searchAustraliaFunc != nil {
		return m.searchAustraliaFunc(ctx, opts)
	}
	return &models.SearchResult{}, nil
}

// Helper function to create test investments
func createTestInvestment(apir, name string, kind models.Kind) models.Investment {
	return models.Investment{
		APIR:    apir,
		Name:    name,
		Kind:    kind,
		Country: "Australia",
	}
}

func testSearchConfig() common.SearchConfig {
	return common.SearchConfig{
		DefaultPageSize: 20,
		MaxPageSize:     100,
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return body
}

func TestFundsHandler_Success(t *testing.T) {
	mockService := &mockSearchService{
		searchFundsFunc: func(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error) {
			return &models.SearchResult{
				Records: []models.Investment{
					createTestInvestment("VAN0021AU", "Vanguard Growth Index Fund", models.KindFund),
					createTestInvestment("ETL0016AU", "Partners Group Global Value Fund", models.KindFund),
				},
				TotalFound: 37,
			}, nil
		},
	}

	handler := NewSearchHandler(mockService, testSearchConfig(), nil)
	req := httptest.NewRequest("GET", "/api/search/funds?term=growth", nil)
	rec := httptest.NewRecorder()

	handler.FundsHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	body := decodeBody(t, rec)

	if body["success"] != true {
		t.Errorf("Expected success true, got %v", body["success"])
	}
	if int(body["count"].(float64)) != 2 {
		t.Errorf("Expected count 2, got %v", body["count"])
	}
	if int(body["total_found"].(float64)) != 37 {
		t.Errorf("Expected total_found 37, got %v", body["total_found"])
	}

	results := body["results"].([]interface{})
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	first := results[0].(map[string]interface{})
	if first["apir"] != "VAN0021AU" {
		t.Errorf("Expected apir VAN0021AU, got %v", first["apir"])
	}
	if first["name"] != "Vanguard Growth Index Fund" {
		t.Errorf("Expected fund name, got %v", first["name"])
	}

	if _, present := body["sources"]; present {
		t.Error("Single-source search should not include sources report")
	}
}

func TestSearchHandler_MissingTerm(t *testing.T) {
	handler := NewSearchHandler(&mockSearchService{}, testSearchConfig(), nil)

	endpoints := []struct {
		name  string
		path  string
		serve http.HandlerFunc
	}{
		{"funds", "/api/search/funds", handler.FundsHandler},
		{"stocks", "/api/search/stocks", handler.StocksHandler},
		{"combined", "/api/search/combined", handler.CombinedHandler},
		{"australia", "/api/search/australia", handler.AustraliaHandler},
	}

	for _, ep := range endpoints {
		t.Run(ep.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", ep.path, nil)
			rec := httptest.NewRecorder()

			ep.serve(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rec.Code)
			}

			body := decodeBody(t, rec)
			if body["success"] != false {
				t.Errorf("Expected success false, got %v", body["success"])
			}
			if body["error"] != "Search term is required" {
				t.Errorf("Expected fixed error message, got %v", body["error"])
			}
		})
	}
}

func TestSearchHandler_WhitespaceTerm(t *testing.T) {
	handler := NewSearchHandler(&mockSearchService{}, testSearchConfig(), nil)

	req := httptest.NewRequest("GET", "/api/search/funds?term=%20%20", nil)
	rec := httptest.NewRecorder()

	handler.FundsHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for whitespace term, got %d", rec.Code)
	}
}

func TestSearchHandler_MethodNotAllowed(t *testing.T) {
	handler := NewSearchHandler(&mockSearchService{}, testSearchConfig(), nil)

	req := httptest.NewRequest("POST", "/api/search/funds?term=growth", nil)
	rec := httptest.NewRecorder()

	handler.FundsHandler(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["success"] != false {
		t.Errorf("Expected success false, got %v", body["success"])
	}
}

func TestSearchHandler_PageSizeDefaults(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"absent uses default", "term=growth", 20},
		{"explicit value", "term=growth&pageSize=5", 5},
		{"above max is clamped", "term=growth&pageSize=500", 100},
		{"invalid uses default", "term=growth&pageSize=abc", 20},
		{"zero uses default", "term=growth&pageSize=0", 20},
		{"negative uses default", "term=growth&pageSize=-3", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured interfaces.SearchOptions
			mockService := &mockSearchService{
				searchFundsFunc: func(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error) {
					captured = opts
					return &models.SearchResult{}, nil
				},
			}

			handler := NewSearchHandler(mockService, testSearchConfig(), nil)
			req := httptest.NewRequest("GET", "/api/search/funds?"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.FundsHandler(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d", rec.Code)
			}
			if captured.PageSize != tt.expected {
				t.Errorf("Expected page size %d, got %d", tt.expected, captured.PageSize)
			}
		})
	}
}

func TestSearchHandler_ParamsPassedThrough(t *testing.T) {
	var captured interfaces.SearchOptions
	mockService := &mockSearchService{
		searchStocksFunc: func(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error) {
			captured = opts
			return &models.SearchResult{}, nil
		},
	}

	handler := NewSearchHandler(mockService, testSearchConfig(), nil)
	req := httptest.NewRequest("GET", "/api/search/stocks?term=bank&exchange=XNYS&country=us&type=stock", nil)
	rec := httptest.NewRecorder()

	handler.StocksHandler(rec, req)

	if captured.Term != "bank" {
		t.Errorf("Expected term bank, got %q", captured.Term)
	}
	if captured.Exchange != "XNYS" {
		t.Errorf("Expected exchange XNYS, got %q", captured.Exchange)
	}
	if captured.Country != "us" {
		t.Errorf("Expected country us, got %q", captured.Country)
	}
	if captured.Type != "stock" {
		t.Errorf("Expected type stock, got %q", captured.Type)
	}
}

func TestSearchHandler_ServiceError(t *testing.T) {
	mockService := &mockSearchService{
		searchCombinedFunc: func(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error) {
			return nil, context.DeadlineExceeded
		},
	}

	handler := NewSearchHandler(mockService, testSearchConfig(), nil)
	req := httptest.NewRequest("GET", "/api/search/combined?term=growth", nil)
	rec := httptest.NewRecorder()

	handler.CombinedHandler(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["success"] != false {
		t.Errorf("Expected success false, got %v", body["success"])
	}
	if body["error"] != "Failed to execute search" {
		t.Errorf("Expected generic error message, got %v", body["error"])
	}
}

func TestAustraliaHandler_SourcesReport(t *testing.T) {
	mockService := &mockSearchService{
		searchAustraliaFunc: func(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error) {
			return &models.SearchResult{
				Records: []models.Investment{
					createTestInvestment("VAS", "Vanguard Australian Shares Index ETF", models.KindETF),
				},
				TotalFound: 1,
				Report: &models.SearchReport{
					JobID:     "search_test",
					Succeeded: 2,
					Failed:    1,
					Sources: []models.SourceOutcome{
						{Source: "funds", Count: 0, DurationMS: 120},
						{Source: "etfs", Count: 1, DurationMS: 3},
						{Source: "stocks", Count: 0, DurationMS: 800, Error: "request timed out"},
					},
				},
			}, nil
		},
	}

	handler := NewSearchHandler(mockService, testSearchConfig(), nil)
	req := httptest.NewRequest("GET", "/api/search/australia?term=vanguard", nil)
	rec := httptest.NewRecorder()

	handler.AustraliaHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	sources, ok := body["sources"].([]interface{})
	if !ok {
		t.Fatalf("Expected sources report, got %T", body["sources"])
	}
	if len(sources) != 3 {
		t.Fatalf("Expected 3 source outcomes, got %d", len(sources))
	}

	failed := sources[2].(map[string]interface{})
	if failed["source"] != "stocks" {
		t.Errorf("Expected stocks outcome last, got %v", failed["source"])
	}
	if failed["error"] != "request timed out" {
		t.Errorf("Expected error message in outcome, got %v", failed["error"])
	}
}

func TestSearchHandler_EmptyResultsMarshalsAsArray(t *testing.T) {
	mockService := &mockSearchService{
		searchFundsFunc: func(ctx context.Context, opts interfaces.SearchOptions) (*models.SearchResult, error) {
			return &models.SearchResult{Records: nil, TotalFound: 0}, nil
		},
	}

	handler := NewSearchHandler(mockService, testSearchConfig(), nil)
	req := httptest.NewRequest("GET", "/api/search/funds?term=zzz", nil)
	rec := httptest.NewRecorder()

	handler.FundsHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"results":[]`) {
		t.Errorf("Expected empty results array, got %s", rec.Body.String())
	}
}
