package hxtable

// Feature extends a Table with a state slice and the operations over it.
//
// The table calls the hooks in this order during New:
//  1. DefaultOptions, once per feature; fields the application left unset
//     are filled from the result.
//  2. InitialState, once per feature, threading the state through each
//     feature in registration order.
//  3. CreateTable, once per feature.
//  4. CreateRow, once per feature for every row.
//
// Features attach their operations by assigning the capability fields that
// Table and Row embed (HoveringTableAPI, HoveringRowAPI, ...). Calling a
// capability whose feature was never registered panics with a nil
// dereference, the same as calling a nil func.
type Feature[T any] interface {
	Name() string
	DefaultOptions(t *Table[T]) Options[T]
	InitialState(s State) State
	CreateTable(t *Table[T])
	CreateRow(r *Row[T], t *Table[T])
}

// FeatureBase provides no-op hooks. Embed it and override only the hooks a
// feature needs.
type FeatureBase[T any] struct{}

func (FeatureBase[T]) DefaultOptions(*Table[T]) Options[T] { return Options[T]{} }
func (FeatureBase[T]) InitialState(s State) State          { return s }
func (FeatureBase[T]) CreateTable(*Table[T])               {}
func (FeatureBase[T]) CreateRow(*Row[T], *Table[T])        {}

// HoveringRowAPI is the row capability attached by the hovering feature.
type HoveringRowAPI interface {
	// GetIsHovered reports whether the row is hovered in the current state.
	GetIsHovered() bool
	// ToggleHovered flips the row's hovered flag.
	ToggleHovered()
}

// HoveringTableAPI is the table capability attached by the hovering feature.
type HoveringTableAPI[T any] interface {
	// GetHoveredRows returns the rows currently flagged as hovered.
	GetHoveredRows() []*Row[T]
	// SetHoveredRows replaces the hover map through the configured
	// OnRowHoveringChange handler.
	SetHoveredRows(u Updater[HoverMap])
}

// SelectionRowAPI is the row capability attached by the selection feature.
type SelectionRowAPI interface {
	GetIsSelected() bool
	ToggleSelected()
}

// SelectionTableAPI is the table capability attached by the selection feature.
type SelectionTableAPI[T any] interface {
	GetSelectedRows() []*Row[T]
	SetRowSelection(u Updater[RowSelectionState])
}
