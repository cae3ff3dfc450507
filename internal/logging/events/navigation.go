package events

import "github.com/atomicstack/header-menu/internal/logging"

type NavigationTracer struct{}

var Navigation = NavigationTracer{}

func (NavigationTracer) Queue(id string) {
	logging.Trace("navigation.queue", map[string]interface{}{"id": id})
}

func (NavigationTracer) Skip(id string) {
	logging.Trace("navigation.skip", map[string]interface{}{"id": id})
}

func (NavigationTracer) Dispatch(id string, sinks int) {
	logging.Trace("navigation.dispatch", map[string]interface{}{"id": id, "sinks": sinks})
}
