package hxtable

import (
	"encoding/json"

	"github.com/a-h/templ"
)

// HoverTrigger fires a row's hover action on both enter and leave, so each
// crossing of the row boundary toggles its hovered flag once.
const HoverTrigger = "mouseenter, mouseleave"

// hoverSwap replaces the row's cells but keeps the <tr> itself. Replacing
// the element under the pointer would fire a fresh mouseenter on the
// replacement and toggle the row back.
const hoverSwap = "innerHTML"

// HoverAttrs builds the HTMX attributes that wire a <tr> to the hover
// action at path. encoded is the row's signed reference.
//
// hx-sync queues toggles per row so a fast enter/leave pair is applied
// in order.
func HoverAttrs(path, encoded string) templ.Attributes {
	attrs := templ.Attributes{
		"hx-post":    path,
		"hx-trigger": HoverTrigger,
		"hx-target":  "this",
		"hx-swap":    hoverSwap,
		"hx-sync":    "this:queue all",
	}
	if encoded != "" {
		data, _ := json.Marshal(map[string]string{"p": encoded})
		attrs["hx-vals"] = string(data)
	}
	return attrs
}
