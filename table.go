package hxtable

import (
	"log/slog"
	"strconv"
	"sync"
)

// Options configures a Table.
//
// Fields left at their zero value may be filled in by the registered
// features' DefaultOptions; anything the application sets wins.
type Options[T any] struct {
	// Data is the row source. One Row is created per element.
	Data []T

	// Columns are used by the renderer only.
	Columns []Column[T]

	// GetRowID derives a row's ID. Defaults to the decimal row index.
	// IDs must be unique and stable across renders.
	GetRowID func(original T, index int) string

	// Features extend the table. Names must be unique.
	Features []Feature[T]

	// InitialState seeds the state before features contribute their slices.
	InitialState State

	// Store holds the table state. Defaults to a MemoryStore seeded with
	// the resolved initial state. A supplied store is used as is.
	Store Store

	// OnRowHoveringChange receives hover map updates from SetHoveredRows.
	OnRowHoveringChange func(Updater[HoverMap])

	// OnRowSelectionChange receives selection updates from SetRowSelection.
	OnRowSelectionChange func(Updater[RowSelectionState])

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Row is one row of the table's row model.
//
// Feature capabilities are embedded and attached during New.
type Row[T any] struct {
	HoveringRowAPI
	SelectionRowAPI

	ID       string
	Index    int
	Original T

	table *Table[T]
}

// Table returns the table that owns the row.
func (r *Row[T]) Table() *Table[T] {
	return r.table
}

// Table is a headless table: a row model plus state, extended by features.
//
// Example:
//
//	t := hxtable.New(hxtable.Options[Person]{
//	    Data:     people,
//	    Features: []hxtable.Feature[Person]{hovering.New[Person]()},
//	})
//	t.Rows()[0].ToggleHovered()
//	hovered := t.GetHoveredRows()
type Table[T any] struct {
	HoveringTableAPI[T]
	SelectionTableAPI[T]

	opts     Options[T]
	store    Store
	logger   *slog.Logger
	rows     []*Row[T]
	rowsByID map[string]*Row[T]

	mu         sync.Mutex
	batchDepth int
	pending    []Updater[State]
}

// New creates a table and runs every feature's hooks.
// Panics if a feature is nil or two features share a name.
func New[T any](opts Options[T]) *Table[T] {
	registerFeatures(opts.Features)

	t := &Table[T]{logger: opts.Logger}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	if opts.GetRowID == nil {
		opts.GetRowID = func(_ T, index int) string { return strconv.Itoa(index) }
	}

	// Features see the table while defaults are resolved, so default
	// handlers can close over it.
	t.opts = opts
	for _, f := range opts.Features {
		opts = mergeOptions(opts, f.DefaultOptions(t))
	}
	t.opts = opts

	initial := opts.InitialState
	for _, f := range opts.Features {
		initial = f.InitialState(initial)
	}

	t.store = opts.Store
	if t.store == nil {
		t.store = NewMemoryStore(initial)
	}

	for _, f := range opts.Features {
		f.CreateTable(t)
	}

	t.buildRows()
	return t
}

func (t *Table[T]) buildRows() {
	t.rows = make([]*Row[T], 0, len(t.opts.Data))
	t.rowsByID = make(map[string]*Row[T], len(t.opts.Data))
	for i, original := range t.opts.Data {
		id := t.opts.GetRowID(original, i)
		if _, dup := t.rowsByID[id]; dup {
			t.logger.Warn("hxtable: duplicate row id, keeping first", "id", id, "index", i)
			continue
		}
		r := &Row[T]{ID: id, Index: i, Original: original, table: t}
		for _, f := range t.opts.Features {
			f.CreateRow(r, t)
		}
		t.rows = append(t.rows, r)
		t.rowsByID[id] = r
	}
}

// State returns the current state.
func (t *Table[T]) State() State {
	return t.store.Get()
}

// SetState submits an update. Inside Batch the update is queued; otherwise
// it is applied to the store immediately.
func (t *Table[T]) SetState(u Updater[State]) {
	if u == nil {
		return
	}
	t.mu.Lock()
	if t.batchDepth > 0 {
		t.pending = append(t.pending, u)
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()
	t.store.Update(u)
}

// Batch queues every SetState call made while fn runs and applies them
// afterwards as a single store update, in submission order, each against
// the result of the previous one. Reads inside fn see the state as it was
// before the batch. Batches nest; only the outermost one flushes.
func (t *Table[T]) Batch(fn func()) {
	t.mu.Lock()
	t.batchDepth++
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.batchDepth--
		var pending []Updater[State]
		if t.batchDepth == 0 {
			pending, t.pending = t.pending, nil
		}
		t.mu.Unlock()

		if len(pending) == 0 {
			return
		}
		t.logger.Debug("hxtable: flushing batch", "updates", len(pending))
		t.store.Update(func(s State) State {
			for _, u := range pending {
				s = u(s)
			}
			return s
		})
	}()

	fn()
}

// Row looks up a row by ID.
func (t *Table[T]) Row(id string) (*Row[T], bool) {
	r, ok := t.rowsByID[id]
	return r, ok
}

// Rows returns the row model in data order.
func (t *Table[T]) Rows() []*Row[T] {
	return t.rows
}

// Options returns the resolved options.
func (t *Table[T]) Options() Options[T] {
	return t.opts
}

// Store returns the table's state store.
func (t *Table[T]) Store() Store {
	return t.store
}

// Logger returns the table's logger.
func (t *Table[T]) Logger() *slog.Logger {
	return t.logger
}
