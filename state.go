package hxtable

import "maps"

// HoverMap maps a row ID to its hovered flag.
//
// A missing key means the row is not hovered, so the map only needs entries
// for rows that have been touched. A nil HoverMap is treated as empty.
type HoverMap map[string]bool

// RowSelectionState maps a row ID to its selected flag. Same conventions as
// HoverMap.
type RowSelectionState map[string]bool

// State is the full table state. Each feature owns exactly one field; an
// update to one field must copy every other field unchanged.
type State struct {
	RowHovering  HoverMap
	RowSelection RowSelectionState
}

// Clone returns a copy of the state whose maps can be mutated without
// affecting s.
func (s State) Clone() State {
	return State{
		RowHovering:  maps.Clone(s.RowHovering),
		RowSelection: maps.Clone(s.RowSelection),
	}
}

// Updater derives a new value from the previous one.
//
// Updaters are the only way state changes. A direct replacement is an
// Updater that ignores its input (see Value). Because the host applies an
// updater against whatever the latest value is at apply time, two updates
// submitted back to back never overwrite each other with a stale snapshot.
type Updater[V any] func(prev V) V

// Value returns an Updater that replaces the previous value with v.
func Value[V any](v V) Updater[V] {
	return func(V) V { return v }
}

// Slice names one field of State and how to read and write it.
//
// With must return a copy of the given State with only this field replaced.
type Slice[V any] struct {
	Name string
	Get  func(State) V
	With func(State, V) State
}

// RowHoveringSlice addresses State.RowHovering.
var RowHoveringSlice = Slice[HoverMap]{
	Name: "rowHovering",
	Get:  func(s State) HoverMap { return s.RowHovering },
	With: func(s State, v HoverMap) State {
		s.RowHovering = v
		return s
	},
}

// RowSelectionSlice addresses State.RowSelection.
var RowSelectionSlice = Slice[RowSelectionState]{
	Name: "rowSelection",
	Get:  func(s State) RowSelectionState { return s.RowSelection },
	With: func(s State, v RowSelectionState) State {
		s.RowSelection = v
		return s
	},
}

// MakeStateUpdater returns a change handler that applies an Updater for one
// slice through the table's generic state setter. Features use it as the
// default for their On<Slice>Change option.
func MakeStateUpdater[T, V any](t *Table[T], slice Slice[V]) func(Updater[V]) {
	return func(u Updater[V]) {
		if u == nil {
			return
		}
		t.logger.Debug("hxtable: slice update", "slice", slice.Name)
		t.SetState(func(prev State) State {
			return slice.With(prev, u(slice.Get(prev)))
		})
	}
}
