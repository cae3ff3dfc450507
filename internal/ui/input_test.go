package ui

import (
	"testing"

	"github.com/atomicstack/header-menu/internal/layout"
	"github.com/atomicstack/header-menu/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

func openHistory(t *testing.T) (*Model, *Harness) {
	t.Helper()
	m := newTestModel(t, layout.ScreenDesktop, session.State{})
	h := NewHarness(m)
	h.Press(tea.KeyRight, tea.KeyRight, tea.KeyRight, tea.KeyEnter)
	if lvl := m.currentLevel(); lvl == nil || lvl.ID != "history" {
		t.Fatalf("expected history dropdown, got %+v", lvl)
	}
	return m, h
}

func TestTypingFiltersDropdown(t *testing.T) {
	m, h := openHistory(t)
	h.Type("scan")
	lvl := m.currentLevel()
	if lvl.Filter != "scan" {
		t.Fatalf("expected filter to track input, got %q", lvl.Filter)
	}
	if len(lvl.Items) != 1 || lvl.Items[0].ID != "createScanForm" {
		t.Fatalf("expected only the SCAN form entry, got %+v", lvl.Items)
	}
	h.Press(tea.KeyEnter)
	if got := m.Navigation().Last(); got != "createScanForm" {
		t.Fatalf("expected filtered selection to navigate, got %q", got)
	}
	if m.filter.Value() != "" || m.filter.Focused() {
		t.Fatalf("expected filter prompt to reset once the dropdown closes")
	}
}

func TestBackspaceWidensFilter(t *testing.T) {
	m, h := openHistory(t)
	h.Type("scanx")
	if n := len(m.currentLevel().Items); n != 0 {
		t.Fatalf("expected no matches, got %d", n)
	}
	h.Press(tea.KeyBackspace)
	lvl := m.currentLevel()
	if lvl.Filter != "scan" || len(lvl.Items) != 1 {
		t.Fatalf("expected backspace to restore the match, got %q/%d", lvl.Filter, len(lvl.Items))
	}
}

func TestEscapeClearsFilterFirst(t *testing.T) {
	m, h := openHistory(t)
	h.Press(tea.KeyDown, tea.KeyDown)
	h.Type("zzz")
	h.Press(tea.KeyEsc)
	lvl := m.currentLevel()
	if lvl == nil {
		t.Fatalf("expected the dropdown to stay open")
	}
	if lvl.Filter != "" || len(lvl.Items) != 5 {
		t.Fatalf("expected full list after clearing, got %q/%d", lvl.Filter, len(lvl.Items))
	}
	if lvl.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", lvl.Cursor)
	}
	if m.filter.Value() != "" {
		t.Fatalf("expected prompt to clear, got %q", m.filter.Value())
	}
}

func TestFilterIgnoredWithoutDropdown(t *testing.T) {
	m := newTestModel(t, layout.ScreenDesktop, session.State{})
	if cmd := m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}); cmd != nil {
		t.Fatalf("expected no command")
	}
	if m.filter.Value() != "" {
		t.Fatalf("expected filter untouched, got %q", m.filter.Value())
	}
}
