package backend

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/header-menu/internal/logging/events"
	"github.com/atomicstack/header-menu/internal/session"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindSession Kind = iota
)

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Watcher polls the session snapshot file at a fixed interval and publishes
// an event whenever the file changes.
type Watcher struct {
	path     string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that checks path every interval.
func NewWatcher(path string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startSessionPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current fetch
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

// fileStamp identifies one version of the snapshot file.
type fileStamp struct {
	modTime time.Time
	size    int64
}

func (w *Watcher) startSessionPoller() {
	throttle := newThrottle(250 * time.Millisecond)
	var (
		last    fileStamp
		lastErr string
		seen    bool
	)
	w.wg.Add(1)
	go w.poll(KindSession, func(ctx context.Context) (interface{}, bool, error) {
		if !throttle.wait(ctx) {
			return nil, false, nil
		}
		info, err := os.Stat(w.path)
		if err != nil {
			changed := !seen || lastErr != err.Error()
			seen, lastErr = true, err.Error()
			return nil, changed, err
		}
		stamp := fileStamp{modTime: info.ModTime(), size: info.Size()}
		if seen && lastErr == "" && stamp == last {
			return nil, false, nil
		}
		st, err := session.Load(w.path)
		if err != nil {
			changed := lastErr != err.Error()
			seen, lastErr = true, err.Error()
			return nil, changed, err
		}
		if seen {
			events.Session.Changed(w.path)
		}
		seen, last, lastErr = true, stamp, ""
		return st, true, nil
	})
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, bool, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, changed, err := fetch(w.ctx)
		if !changed {
			return true
		}
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
