package hxtable

import "encoding/json"

// HoverEvent is the HX-Trigger event sent after every hover toggle, so
// other parts of the page can react without polling the table.
//
//	<div hx-get="/details" hx-trigger="hxtable:hover from:body">
const HoverEvent = "hxtable:hover"

// HoverChange is the payload of HoverEvent.
type HoverChange struct {
	ID      string `json:"id"`
	Hovered bool   `json:"hovered"`
}

// TriggerJSON returns the JSON payload for the HX-Trigger header.
func (c HoverChange) TriggerJSON() string {
	data, _ := json.Marshal(map[string]HoverChange{HoverEvent: c})
	return string(data)
}
