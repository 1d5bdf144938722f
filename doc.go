// Package hxtable is a small headless table whose state is extended by
// features, plus an HTMX serving surface for it.
//
// # Tables and features
//
// A Table is built from Options: the row data, a row ID function, and the
// features that extend it. Each feature owns one field of State and attaches
// its operations to the table and its rows through the capability
// interfaces Table and Row embed:
//
//	t := hxtable.New(hxtable.Options[Person]{
//	    Data:     people,
//	    GetRowID: func(p Person, _ int) string { return p.ID },
//	    Features: []hxtable.Feature[Person]{hovering.New[Person]()},
//	})
//
//	row, _ := t.Row("tanner")
//	row.ToggleHovered()
//	row.GetIsHovered() // true
//
// Features are validated when the table is created: a nil feature or two
// features with the same name panic in New, not on first use.
//
// # State updates
//
// State changes only through Updater functions applied to the latest state.
// A direct replacement is Value(v). Every feature update copies the sibling
// fields of State unchanged, so hovering never clobbers selection and vice
// versa. Batch defers updates and applies them in order as one store
// update; derived updates inside a batch still compose correctly.
//
// The state cell is a Store. The default MemoryStore is owned by the table;
// pass Options.Store to share or observe state.
//
// # Serving
//
// Handler serves a table to HTMX clients. Every rendered <tr> posts a signed
// reference of itself on mouseenter and mouseleave; the handler toggles that
// row's hovered flag and replaces that row's cells. The <tr> itself is never
// swapped, so the pointer stays inside the same element. Columns render through
// templ components, so a cell can depend on row.GetIsHovered():
//
//	hxtable.Display("actions", "Actions", func(r *hxtable.Row[Person]) templ.Component {
//	    if !r.GetIsHovered() {
//	        return nil
//	    }
//	    return actionButton(r.Original)
//	})
package hxtable
