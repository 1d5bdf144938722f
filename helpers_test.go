package hxtable

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsHTMX(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTMX(req) {
		t.Error("plain request reported as HTMX")
	}
	req.Header.Set("HX-Request", "true")
	if !IsHTMX(req) {
		t.Error("HTMX request not detected")
	}
}

func TestRender(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if err := Render(rec, req, Text("<b>hi</b>")); err != nil {
		t.Fatal(err)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := rec.Body.String(); got != "&lt;b&gt;hi&lt;/b&gt;" {
		t.Errorf("body = %q", got)
	}
}
