// Package navigation carries click intents from the header to whoever
// performs routing. The header only reports which entry id was chosen.
package navigation

import (
	"strings"
	"sync"

	"github.com/atomicstack/header-menu/internal/logging/events"
)

// Navigator receives the id of a clicked entry.
type Navigator interface {
	Navigate(id string)
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(id string)

func (f NavigatorFunc) Navigate(id string) {
	f(id)
}

// Bus fans a navigation intent out to its sinks and remembers the most
// recent targets.
type Bus struct {
	mu      sync.Mutex
	sinks   []Navigator
	history []string
	limit   int
}

const defaultHistoryLimit = 32

// New initialises a bus that forwards to sinks.
func New(sinks ...Navigator) *Bus {
	filtered := make([]Navigator, 0, len(sinks))
	for _, sink := range sinks {
		if sink != nil {
			filtered = append(filtered, sink)
		}
	}
	return &Bus{sinks: filtered, limit: defaultHistoryLimit}
}

// Navigate records id and forwards it. Blank ids are ignored.
func (b *Bus) Navigate(id string) {
	events.Navigation.Queue(id)
	if strings.TrimSpace(id) == "" {
		events.Navigation.Skip(id)
		return
	}
	b.mu.Lock()
	b.history = append(b.history, id)
	if len(b.history) > b.limit {
		b.history = b.history[len(b.history)-b.limit:]
	}
	sinks := append([]Navigator(nil), b.sinks...)
	b.mu.Unlock()

	for _, sink := range sinks {
		sink.Navigate(id)
	}
	events.Navigation.Dispatch(id, len(sinks))
}

// Last returns the most recent target, or "".
func (b *Bus) Last() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.history) == 0 {
		return ""
	}
	return b.history[len(b.history)-1]
}

// History returns a copy of recent targets, oldest first.
func (b *Bus) History() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.history...)
}
