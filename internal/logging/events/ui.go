package events

import "github.com/atomicstack/header-menu/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) MenuOpen(rootID string, items int) {
	logging.Trace("menu.open", map[string]interface{}{"root": rootID, "items": items})
}

func (UITracer) MenuClose(rootID string) {
	logging.Trace("menu.close", map[string]interface{}{"root": rootID})
}

func (UITracer) MenuCursor(level string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"level": level, "cursor": cursor})
}

func (UITracer) Resize(width, height int, screen string) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height, "screen": screen})
}

func (UITracer) Rebuild(reason string) {
	logging.Trace("ui.rebuild", map[string]interface{}{"reason": reason})
}

func (FilterTracer) Cleared(level string) {
	logging.Trace("filter.clear", map[string]interface{}{"level": level})
}

func (FilterTracer) Changed(level, filter string) {
	logging.Trace("filter.change", map[string]interface{}{"level": level, "filter": filter})
}
