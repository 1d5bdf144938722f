// Package selection adds per-row selected state to an hxtable.Table.
package selection

import (
	"sort"

	"github.com/pthm/hxtable"
)

// Name is the feature's registration name and state slice name.
const Name = "rowSelection"

// Feature implements hxtable.Feature for row selection.
type Feature[T any] struct{}

// New returns the selection feature.
func New[T any]() *Feature[T] {
	return &Feature[T]{}
}

func (f *Feature[T]) Name() string { return Name }

// DefaultOptions routes SetRowSelection through the table's own state
// setter unless the application supplies OnRowSelectionChange.
func (f *Feature[T]) DefaultOptions(t *hxtable.Table[T]) hxtable.Options[T] {
	return hxtable.Options[T]{
		OnRowSelectionChange: hxtable.MakeStateUpdater(t, hxtable.RowSelectionSlice),
	}
}

// InitialState contributes an empty selection map unless the application
// supplied one.
func (f *Feature[T]) InitialState(s hxtable.State) hxtable.State {
	if s.RowSelection == nil {
		s.RowSelection = hxtable.RowSelectionState{}
	}
	return s
}

func (f *Feature[T]) CreateTable(t *hxtable.Table[T]) {
	t.SelectionTableAPI = &tableAPI[T]{table: t}
}

func (f *Feature[T]) CreateRow(r *hxtable.Row[T], t *hxtable.Table[T]) {
	r.SelectionRowAPI = &rowAPI[T]{row: r, table: t}
}

type rowAPI[T any] struct {
	row   *hxtable.Row[T]
	table *hxtable.Table[T]
}

func (a *rowAPI[T]) GetIsSelected() bool {
	return a.table.State().RowSelection[a.row.ID]
}

func (a *rowAPI[T]) ToggleSelected() {
	id := a.row.ID
	a.table.SetState(func(prev hxtable.State) hxtable.State {
		next := make(hxtable.RowSelectionState, len(prev.RowSelection)+1)
		for k, v := range prev.RowSelection {
			next[k] = v
		}
		if prev.RowSelection[id] {
			delete(next, id)
		} else {
			next[id] = true
		}
		return hxtable.RowSelectionSlice.With(prev, next)
	})
}

type tableAPI[T any] struct {
	table *hxtable.Table[T]
}

func (a *tableAPI[T]) GetSelectedRows() []*hxtable.Row[T] {
	var rows []*hxtable.Row[T]
	for id, on := range a.table.State().RowSelection {
		if r, ok := a.table.Row(id); ok && on {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Index < rows[j].Index })
	return rows
}

// SetRowSelection hands u to OnRowSelectionChange. With no handler the
// update is dropped and logged.
func (a *tableAPI[T]) SetRowSelection(u hxtable.Updater[hxtable.RowSelectionState]) {
	onChange := a.table.Options().OnRowSelectionChange
	if onChange == nil {
		a.table.Logger().Warn("selection: no OnRowSelectionChange handler, update dropped")
		return
	}
	onChange(u)
}
