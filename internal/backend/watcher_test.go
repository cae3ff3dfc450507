package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/header-menu/internal/session"
)

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt := <-w.Events():
		return evt
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
	return Event{}
}

func TestWatcherEmitsInitialSnapshotAndChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := os.WriteFile(path, []byte("isSignedIn: false\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w := NewWatcher(path, 20*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	evt := nextEvent(t, w)
	if evt.Err != nil || evt.Kind != KindSession {
		t.Fatalf("unexpected first event %+v", evt)
	}
	if st := evt.Data.(session.State); st.SignedIn() {
		t.Fatalf("expected signed-out snapshot")
	}

	// a different size guarantees a new stamp even on coarse mtime filesystems
	if err := os.WriteFile(path, []byte("isSignedIn: true\nsettings:\n  Page: mail\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	evt = nextEvent(t, w)
	if evt.Err != nil {
		t.Fatalf("unexpected error %v", evt.Err)
	}
	if st := evt.Data.(session.State); !st.SignedIn() || st.Page() != "mail" {
		t.Fatalf("expected updated snapshot, got %+v", st)
	}
}

func TestWatcherReportsMissingFileOnce(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "missing.yaml"), 10*time.Millisecond)
	evt := nextEvent(t, w)
	if evt.Err == nil {
		t.Fatalf("expected error for missing file")
	}
	select {
	case extra, ok := <-w.Events():
		if ok {
			t.Fatalf("expected a single error event, got %+v", extra)
		}
	case <-time.After(100 * time.Millisecond):
	}
	w.Stop()
	w.Wait()
}
