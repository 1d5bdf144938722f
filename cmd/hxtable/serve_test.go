package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testConfig() Config {
	return Config{
		Addr:    ":0",
		Key:     "serve-test-key",
		Prefix:  "/table",
		Log:     LogConfig{Level: "error", Format: "text"},
		Metrics: MetricsConfig{Enabled: true},
	}
}

func TestServerIndexRendersPeople(t *testing.T) {
	e, err := newServer(testConfig())
	if err != nil {
		t.Fatalf("newServer() error = %v", err)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{"tanner", "derek", "joe"} {
		if !strings.Contains(body, `data-row-id="`+name+`"`) {
			t.Errorf("page missing row %q", name)
		}
	}
	if strings.Contains(body, "<button") {
		t.Error("no action button should render before any hover")
	}
	if !strings.Contains(body, "htmx.org") {
		t.Error("page should load htmx")
	}
}

func TestServerMetricsEndpoint(t *testing.T) {
	e, err := newServer(testConfig())
	if err != nil {
		t.Fatalf("newServer() error = %v", err)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestServerMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false
	e, err := newServer(cfg)
	if err != nil {
		t.Fatalf("newServer() error = %v", err)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestNewServerRejectsBadLogConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Log.Format = "xml"
	if _, err := newServer(cfg); err == nil {
		t.Fatal("expected error for bad log format")
	}
}

func TestVersionShort(t *testing.T) {
	cmd := versionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--short"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out.String()) != version {
		t.Errorf("output = %q, want %q", out.String(), version)
	}
}
