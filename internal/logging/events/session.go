package events

import "github.com/atomicstack/header-menu/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Load(path string, signedIn bool) {
	logging.Trace("session.load", map[string]interface{}{"path": path, "signedIn": signedIn})
}

func (SessionTracer) LoadError(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("session.load.error", map[string]interface{}{"path": path, "error": err.Error()})
}

func (SessionTracer) Changed(path string) {
	logging.Trace("session.changed", map[string]interface{}{"path": path})
}
