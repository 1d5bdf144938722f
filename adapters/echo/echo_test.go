package hxtableecho

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/hxtable"
	"github.com/pthm/hxtable/features/hovering"
)

type person struct {
	FirstName string
}

func newHandler(t *testing.T, m ...echo.MiddlewareFunc) (*echo.Echo, *hxtable.Handler[person]) {
	t.Helper()
	table := hxtable.New(hxtable.Options[person]{
		Data:     []person{{"tanner"}, {"derek"}},
		GetRowID: func(p person, _ int) string { return p.FirstName },
		Columns: []hxtable.Column[person]{
			hxtable.Accessor("firstName", "First Name", func(p person) string { return p.FirstName }),
		},
		Features: []hxtable.Feature[person]{hovering.New[person]()},
	})
	h := hxtable.NewHandler(table, hxtable.WithKey([]byte("echo-test-key")))
	e := echo.New()
	Mount(e, h, m...)
	return e, h
}

func TestMountServesTable(t *testing.T) {
	e, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/table/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "tanner") || !strings.Contains(body, "derek") {
		t.Errorf("body missing rows: %s", body)
	}
}

func TestMountRoutesHover(t *testing.T) {
	e, h := newHandler(t)

	ref, err := h.RowRef("derek")
	if err != nil {
		t.Fatalf("RowRef() error = %v", err)
	}
	form := url.Values{"p": {ref}}
	req := httptest.NewRequest(http.MethodPost, "/table/hover", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	row, _ := h.Table().Row("derek")
	if !row.GetIsHovered() {
		t.Error("derek should be hovered after the request")
	}
}

func TestMountAppliesMiddleware(t *testing.T) {
	called := false
	mw := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			called = true
			return next(c)
		}
	}
	e, _ := newHandler(t, mw)

	req := httptest.NewRequest(http.MethodGet, "/table/", nil)
	e.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRender(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>hi</p>")
		return err
	})
	if err := Render(c, comp); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := rec.Header().Get(echo.HeaderContentType); got != echo.MIMETextHTMLCharsetUTF8 {
		t.Errorf("Content-Type = %q", got)
	}
	if rec.Body.String() != "<p>hi</p>" {
		t.Errorf("body = %q", rec.Body.String())
	}
}
