package hxtable

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/prometheus/client_golang/prometheus"
)

// HandlerOption configures NewHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	key        []byte
	prefix     string
	sensitive  bool
	registerer prometheus.Registerer
}

// WithKey sets the key used to sign row references.
// If not provided, a random key is generated (suitable for a single process only).
func WithKey(key []byte) HandlerOption {
	return func(c *handlerConfig) {
		c.key = key
	}
}

// WithPrefix sets the URL prefix the handler serves under. Defaults to "/table".
func WithPrefix(prefix string) HandlerOption {
	return func(c *handlerConfig) {
		c.prefix = prefix
	}
}

// WithSensitive encrypts row references instead of signing them, for row
// IDs that should not be visible in the page source.
func WithSensitive() HandlerOption {
	return func(c *handlerConfig) {
		c.sensitive = true
	}
}

// WithRegisterer registers the handler's metrics with reg.
func WithRegisterer(reg prometheus.Registerer) HandlerOption {
	return func(c *handlerConfig) {
		c.registerer = reg
	}
}

// Handler serves one table over HTTP for HTMX clients:
//
//	GET  <prefix>/       renders the table
//	POST <prefix>/hover  toggles the hovered flag of the row named by the
//	                     signed reference in form value "p", then renders
//	                     that row's cells and announces the change in an
//	                     HX-Trigger header (see HoverEvent)
//
// Mutating requests must carry HX-Request: true, which HTMX sends and
// cross-origin forms cannot.
type Handler[T any] struct {
	table     *Table[T]
	encoder   *Encoder
	prefix    string
	sensitive bool
	mux       *http.ServeMux
	toggles   *prometheus.CounterVec

	// OnError is called when a request fails.
	// Customize this to handle errors appropriately for your application.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// NewHandler creates a handler for t.
// Panics if t was created without the hovering feature.
func NewHandler[T any](t *Table[T], opts ...HandlerOption) *Handler[T] {
	if t.HoveringTableAPI == nil {
		panic("hxtable: handler requires the hovering feature")
	}

	cfg := handlerConfig{prefix: "/table"}
	for _, opt := range opts {
		opt(&cfg)
	}

	key := cfg.key
	if key == nil {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("hxtable: failed to generate random key: %v", err))
		}
	}
	enc, err := NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("hxtable: failed to create encoder: %v", err))
	}

	h := &Handler[T]{
		table:     t,
		encoder:   enc,
		prefix:    strings.TrimSuffix(cfg.prefix, "/"),
		sensitive: cfg.sensitive,
		mux:       http.NewServeMux(),
		toggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hxtable",
			Name:      "row_hover_toggles_total",
			Help:      "Total number of row hover toggles, by resulting state",
		}, []string{"state"}),
	}
	if cfg.registerer != nil {
		cfg.registerer.MustRegister(h.toggles)
	}

	h.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		t.Logger().Warn("hxtable: request failed", "path", r.URL.Path, "err", err)
		switch {
		case IsNotFound(err):
			http.Error(w, "Not found", http.StatusNotFound)
		case IsDecryptionError(err), errors.Is(err, ErrInvalidFormat):
			http.Error(w, "Bad request", http.StatusBadRequest)
		default:
			http.Error(w, "Internal error", http.StatusInternalServerError)
		}
	}

	h.mux.HandleFunc("GET "+h.prefix+"/{$}", h.handleRender)
	h.mux.HandleFunc("POST "+h.prefix+"/hover", h.handleHover)
	return h
}

// Prefix returns the URL prefix the handler serves under.
func (h *Handler[T]) Prefix() string {
	return h.prefix
}

// Table returns the served table.
func (h *Handler[T]) Table() *Table[T] {
	return h.table
}

// RowRef returns the encoded reference a row posts back to the hover action.
func (h *Handler[T]) RowRef(id string) (string, error) {
	return h.encoder.Encode(rowRef{ID: id}, h.sensitive)
}

// Component renders the full table with hover wiring, for embedding in a page.
func (h *Handler[T]) Component() templ.Component {
	return RenderTable(h.table, h.rowAttrs)
}

func (h *Handler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead && !IsHTMX(r) {
		http.Error(w, "Forbidden: HTMX request required", http.StatusForbidden)
		return
	}
	h.mux.ServeHTTP(w, r)
}

func (h *Handler[T]) rowAttrs(r *Row[T]) templ.Attributes {
	ref, err := h.RowRef(r.ID)
	if err != nil {
		h.table.Logger().Error("hxtable: encode row reference", "id", r.ID, "err", err)
		return nil
	}
	return HoverAttrs(h.prefix+"/hover", ref)
}

func (h *Handler[T]) handleRender(w http.ResponseWriter, r *http.Request) {
	if err := Render(w, r, h.Component()); err != nil {
		h.table.Logger().Error("hxtable: render table", "err", err)
	}
}

func (h *Handler[T]) handleHover(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.OnError(w, r, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
		return
	}

	var ref rowRef
	if err := h.encoder.Decode(r.FormValue("p"), h.sensitive, &ref); err != nil {
		h.OnError(w, r, wrapEncodingError(err))
		return
	}

	row, ok := h.table.Row(ref.ID)
	if !ok {
		h.OnError(w, r, fmt.Errorf("%w: %q", ErrRowNotFound, ref.ID))
		return
	}

	row.ToggleHovered()
	// One read feeds the metric and the event so they agree.
	hovered := row.GetIsHovered()
	state := "unhovered"
	if hovered {
		state = "hovered"
	}
	h.toggles.WithLabelValues(state).Inc()
	h.table.Logger().Debug("hxtable: row hover toggled", "id", row.ID, "state", state)

	w.Header().Set("HX-Trigger", HoverChange{ID: row.ID, Hovered: hovered}.TriggerJSON())

	if err := Render(w, r, RenderCells(row)); err != nil {
		h.table.Logger().Error("hxtable: render row cells", "id", row.ID, "err", err)
	}
}
