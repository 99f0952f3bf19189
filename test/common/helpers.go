package common

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

// HTTPTestHelper provides helper methods for HTTP testing
type HTTPTestHelper struct {
	BaseURL string
	Client  *http.Client
	T       *testing.T
}

// NewHTTPTestHelper creates a helper bound to the environment's server
func (e *TestEnvironment) NewHTTPTestHelper(t *testing.T) *HTTPTestHelper {
	return &HTTPTestHelper{
		BaseURL: e.Server.URL,
		Client:  &http.Client{Timeout: 30 * time.Second},
		T:       t,
	}
}

// GET makes a GET request and returns the response
func (h *HTTPTestHelper) GET(path string) (*http.Response, error) {
	url := h.BaseURL + path
	h.T.Logf("GET %s", url)
	return h.Client.Get(url)
}

// ParseJSONResponse decodes the response body into target and closes the body
func (h *HTTPTestHelper) ParseJSONResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// AssertStatusCode fails the test if the response status differs
func (h *HTTPTestHelper) AssertStatusCode(resp *http.Response, expected int) {
	h.T.Helper()
	if resp.StatusCode != expected {
		h.T.Errorf("Expected status %d, got %d", expected, resp.StatusCode)
	}
}
