package hxtable

import (
	"io"
	"net/http"
	"testing"
)

func TestTestAction(t *testing.T) {
	var gotMethod, gotForm, gotHX string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHX = r.Header.Get("HX-Request")
		_ = r.ParseForm()
		gotForm = r.FormValue("p")
		w.Header().Set("X-Test", "yes")
		io.WriteString(w, "<p>ok</p><p>ok</p>")
	})

	result, err := TestAction(h, "/x", http.MethodPost, map[string]string{"p": "ref"})
	if err != nil {
		t.Fatal(err)
	}

	if gotMethod != http.MethodPost || gotForm != "ref" || gotHX != "true" {
		t.Errorf("request: method=%q p=%q HX-Request=%q", gotMethod, gotForm, gotHX)
	}
	if !result.IsOK() || !result.HasStatus(http.StatusOK) {
		t.Errorf("status = %d", result.StatusCode)
	}
	if !result.HTMLContains("<p>ok</p>") || result.HTMLCount("<p>") != 2 {
		t.Errorf("html = %q", result.HTML)
	}
	if result.GetHeader("X-Test") != "yes" {
		t.Error("headers not captured")
	}
}
