package events

import "github.com/atomicstack/header-menu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Render(format string, screen string) {
	logging.Trace("app.render", map[string]interface{}{"format": format, "screen": screen})
}
