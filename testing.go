package hxtable

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
)

// TestResult holds the response of a simulated table request.
type TestResult struct {
	HTML       string
	StatusCode int
	Headers    http.Header
}

// TestAction simulates an HTMX request against h.
//
//	result, err := hxtable.TestAction(h, "/table/hover", "POST", map[string]string{"p": ref})
//	if !result.IsOK() {
//	    t.Fatal("expected success")
//	}
func TestAction(h http.Handler, actionURL, method string, formData map[string]string) (*TestResult, error) {
	form := url.Values{}
	for k, v := range formData {
		form.Set(k, v)
	}

	req := httptest.NewRequest(method, actionURL, strings.NewReader(form.Encode()))
	if len(formData) > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("HX-Request", "true")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}, nil
}

// TestGet simulates a GET request against h.
func TestGet(h http.Handler, url string) (*TestResult, error) {
	return TestAction(h, url, http.MethodGet, nil)
}

// TestHover simulates the pointer entering or leaving the row with the
// given ID: both post the same toggle.
func TestHover[T any](h *Handler[T], rowID string) (*TestResult, error) {
	ref, err := h.RowRef(rowID)
	if err != nil {
		return nil, err
	}
	return TestAction(h, h.Prefix()+"/hover", http.MethodPost, map[string]string{"p": ref})
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLCount counts non-overlapping occurrences of substr in the HTML.
func (r *TestResult) HTMLCount(substr string) int {
	return strings.Count(r.HTML, substr)
}

// IsOK checks if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// GetHeader returns the value of a header.
func (r *TestResult) GetHeader(key string) string {
	return r.Headers.Get(key)
}
