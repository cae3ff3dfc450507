package state

import (
	"testing"

	"github.com/atomicstack/header-menu/internal/layout"
)

func entries(ids ...string) []layout.RenderEntry {
	out := make([]layout.RenderEntry, len(ids))
	for i, id := range ids {
		out[i] = layout.RenderEntry{ID: id, Label: id}
	}
	return out
}

func TestLevelMoveClamps(t *testing.T) {
	l := NewLevel("history", "History", entries("a", "b", "c"))
	if l.Move(-1) {
		t.Fatalf("expected no movement above the first entry")
	}
	if !l.Move(5) || l.Cursor != 2 {
		t.Fatalf("expected cursor clamped to 2, got %d", l.Cursor)
	}
	if !l.MoveHome() || l.Cursor != 0 {
		t.Fatalf("expected home to reach 0, got %d", l.Cursor)
	}
	if !l.MoveEnd() || l.Cursor != 2 {
		t.Fatalf("expected end to reach 2, got %d", l.Cursor)
	}
}

func TestLevelSelectedOnEmpty(t *testing.T) {
	l := NewLevel("empty", "", nil)
	if _, ok := l.Selected(); ok {
		t.Fatalf("expected no selection")
	}
	if l.Move(1) {
		t.Fatalf("expected no movement on empty level")
	}
}

func TestUpdateItemsKeepsSelection(t *testing.T) {
	l := NewLevel("x", "", entries("a", "b", "c"))
	l.Move(2)
	l.UpdateItems(entries("c", "a"))
	if item, _ := l.Selected(); item.ID != "c" {
		t.Fatalf("expected cursor to follow c, got %s", item.ID)
	}
	l.UpdateItems(entries("z"))
	if l.Cursor != 0 {
		t.Fatalf("expected cursor clamped when selection vanishes, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisible(t *testing.T) {
	l := NewLevel("x", "", entries("a", "b", "c", "d", "e"))
	l.Move(4)
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}
	visible, offset := l.Visible(2)
	if offset != 3 || len(visible) != 2 || visible[1].ID != "e" {
		t.Fatalf("unexpected window %v at %d", visible, offset)
	}
	l.MoveHome()
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset, got %d", l.ViewportOffset)
	}
	if all, off := l.Visible(0); len(all) != 5 || off != 0 {
		t.Fatalf("expected unbounded view to show everything")
	}
}
