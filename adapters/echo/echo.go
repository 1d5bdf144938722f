// Package hxtableecho provides Echo framework integration for hxtable handlers.
//
// Mount a table handler onto an Echo instance:
//
//	e := echo.New()
//	h := hxtable.NewHandler(table)
//	hxtableecho.Mount(e, h)
//
// Middleware passed to Mount applies to the table routes only:
//
//	hxtableecho.Mount(e, h, authMiddleware)
package hxtableecho

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Mountable is a handler that knows the URL prefix it serves under.
// *hxtable.Handler[T] satisfies it for every T.
type Mountable interface {
	http.Handler
	Prefix() string
}

// Mount routes every method under h.Prefix() to h.
func Mount(e *echo.Echo, h Mountable, m ...echo.MiddlewareFunc) {
	e.Any(h.Prefix()+"/*", echo.WrapHandler(h), m...)
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return hxtableecho.Render(c, page())
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Request().Context(), c.Response())
}
