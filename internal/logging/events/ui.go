package events

import "github.com/fermata-io/menunav/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) DropdownOpen(menuID string, items int) {
	logging.Trace("ui.dropdown.open", map[string]interface{}{"menu": menuID, "items": items})
}

func (UITracer) DropdownClose(menuID string) {
	logging.Trace("ui.dropdown.close", map[string]interface{}{"menu": menuID})
}

func (UITracer) DropdownCursor(menuID string, cursor int) {
	logging.Trace("ui.dropdown.cursor", map[string]interface{}{"menu": menuID, "cursor": cursor})
}

func (UITracer) PaletteOpen() {
	logging.Trace("ui.palette.open", nil)
}

func (UITracer) PaletteClose(reason string) {
	logging.Trace("ui.palette.close", map[string]interface{}{"reason": reason})
}

func (UITracer) PromptOpen(action string) {
	logging.Trace("ui.prompt.open", map[string]interface{}{"action": action})
}

func (UITracer) PromptSubmit(action, value string) {
	logging.Trace("ui.prompt.submit", map[string]interface{}{"action": action, "value": value})
}

func (UITracer) PromptCancel(action string) {
	logging.Trace("ui.prompt.cancel", map[string]interface{}{"action": action})
}

type FilterTracer struct{}

var Filter = FilterTracer{}

func (FilterTracer) Changed(query string, matches int) {
	logging.Trace("filter.changed", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.cleared", nil)
}
