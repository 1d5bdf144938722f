// Package hovering adds per-row hovered state to an hxtable.Table.
//
// Register the feature when creating the table:
//
//	t := hxtable.New(hxtable.Options[Person]{
//	    Data:     people,
//	    Features: []hxtable.Feature[Person]{hovering.New[Person]()},
//	})
//
// Rows then answer GetIsHovered and ToggleHovered, and the table answers
// GetHoveredRows and SetHoveredRows. The state lives in
// hxtable.State.RowHovering; rows without an entry are not hovered.
package hovering

import (
	"sort"

	"github.com/pthm/hxtable"
)

// Name is the feature's registration name and state slice name.
const Name = "rowHovering"

// Feature implements hxtable.Feature for row hovering.
type Feature[T any] struct{}

// New returns the hovering feature.
func New[T any]() *Feature[T] {
	return &Feature[T]{}
}

func (f *Feature[T]) Name() string { return Name }

// DefaultOptions routes SetHoveredRows through the table's own state setter
// unless the application supplies OnRowHoveringChange.
func (f *Feature[T]) DefaultOptions(t *hxtable.Table[T]) hxtable.Options[T] {
	return hxtable.Options[T]{
		OnRowHoveringChange: hxtable.MakeStateUpdater(t, hxtable.RowHoveringSlice),
	}
}

// InitialState contributes an empty hover map. A map supplied by the
// application replaces it whole.
func (f *Feature[T]) InitialState(s hxtable.State) hxtable.State {
	if s.RowHovering == nil {
		s.RowHovering = hxtable.HoverMap{}
	}
	return s
}

func (f *Feature[T]) CreateTable(t *hxtable.Table[T]) {
	t.HoveringTableAPI = &tableAPI[T]{table: t}
}

func (f *Feature[T]) CreateRow(r *hxtable.Row[T], t *hxtable.Table[T]) {
	r.HoveringRowAPI = &rowAPI[T]{row: r, table: t}
}

type rowAPI[T any] struct {
	row   *hxtable.Row[T]
	table *hxtable.Table[T]
}

func (a *rowAPI[T]) GetIsHovered() bool {
	return a.table.State().RowHovering[a.row.ID]
}

// ToggleHovered is a derived update so that toggles queued behind other
// updates flip the latest value, not the one seen at call time.
func (a *rowAPI[T]) ToggleHovered() {
	id := a.row.ID
	a.table.SetState(func(prev hxtable.State) hxtable.State {
		next := make(hxtable.HoverMap, len(prev.RowHovering)+1)
		for k, v := range prev.RowHovering {
			next[k] = v
		}
		next[id] = !prev.RowHovering[id]
		return hxtable.RowHoveringSlice.With(prev, next)
	})
}

type tableAPI[T any] struct {
	table *hxtable.Table[T]
}

// GetHoveredRows returns hovered rows in row-model order. IDs that no
// longer resolve to a row are skipped.
func (a *tableAPI[T]) GetHoveredRows() []*hxtable.Row[T] {
	hovered := a.table.State().RowHovering
	rows := make([]*hxtable.Row[T], 0, len(hovered))
	for id, on := range hovered {
		if !on {
			continue
		}
		r, ok := a.table.Row(id)
		if !ok {
			a.table.Logger().Debug("hovering: hovered id has no row", "id", id)
			continue
		}
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Index < rows[j].Index })
	return rows
}

// SetHoveredRows hands u to OnRowHoveringChange. With no handler the
// update is dropped and logged.
func (a *tableAPI[T]) SetHoveredRows(u hxtable.Updater[hxtable.HoverMap]) {
	onChange := a.table.Options().OnRowHoveringChange
	if onChange == nil {
		a.table.Logger().Warn("hovering: no OnRowHoveringChange handler, update dropped")
		return
	}
	onChange(u)
}
