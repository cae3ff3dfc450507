package dispatcher

import (
	"github.com/atomicstack/header-menu/internal/backend"
	"github.com/atomicstack/header-menu/internal/session"
	"github.com/atomicstack/header-menu/internal/state"
)

type Result struct {
	SessionUpdated bool
	Failed         bool
}

type Dispatcher struct {
	sessions state.SessionStore
}

func New(s state.SessionStore) *Dispatcher {
	return &Dispatcher{sessions: s}
}

// Handle applies a backend event to the stores.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		d.sessions.SetErr(evt.Err)
		res.Failed = true
		return res
	}
	switch evt.Kind {
	case backend.KindSession:
		if snapshot, ok := evt.Data.(session.State); ok {
			d.sessions.SetSnapshot(snapshot)
			res.SessionUpdated = true
		}
	}
	return res
}
