package events

import (
	"time"

	"github.com/atomicstack/header-menu/internal/logging"
)

type ServerTracer struct{}

var Server = ServerTracer{}

func (ServerTracer) Start(addr string) {
	logging.Trace("server.start", map[string]interface{}{"addr": addr})
}

func (ServerTracer) Request(method, path, requestID string, status int, duration time.Duration) {
	logging.Trace("server.request", map[string]interface{}{
		"method":     method,
		"path":       path,
		"request_id": requestID,
		"status":     status,
		"duration":   duration.String(),
	})
}

func (ServerTracer) Navigate(eventID, target string) {
	logging.Trace("server.navigate", map[string]interface{}{"event": eventID, "target": target})
}
