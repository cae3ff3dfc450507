package state

import "github.com/atomicstack/header-menu/internal/layout"

// Level is one open dropdown: the entries it was opened with, the filtered
// view of them, and the cursor within that view.
type Level struct {
	ID             string
	Title          string
	Items          []layout.RenderEntry
	Full           []layout.RenderEntry
	Filter         string
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level with the cursor on the first entry.
func NewLevel(id, title string, items []layout.RenderEntry) *Level {
	l := &Level{ID: id, Title: title, LastCursor: -1}
	l.UpdateItems(items)
	return l
}

// CloneEntries produces a shallow copy of the provided entries.
func CloneEntries(items []layout.RenderEntry) []layout.RenderEntry {
	dup := make([]layout.RenderEntry, len(items))
	copy(dup, items)
	return dup
}

// Selected returns the entry under the cursor.
func (l *Level) Selected() (layout.RenderEntry, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return layout.RenderEntry{}, false
	}
	return l.Items[l.Cursor], true
}

// IndexOf returns the index of the entry with id in the filtered view.
func (l *Level) IndexOf(id string) int {
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// UpdateItems swaps in a new entry list, keeping the cursor on the same id
// when it is still present.
func (l *Level) UpdateItems(items []layout.RenderEntry) {
	var keep string
	if current, ok := l.Selected(); ok {
		keep = current.ID
	}
	l.Full = CloneEntries(items)
	l.applyFilter()
	if keep != "" {
		if idx := l.IndexOf(keep); idx >= 0 {
			l.Cursor = idx
		}
	}
}

// Move shifts the cursor by delta, clamping to the list.
func (l *Level) Move(delta int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	next := l.Cursor + delta
	if next < 0 {
		next = 0
	}
	if next > len(l.Items)-1 {
		next = len(l.Items) - 1
	}
	moved := next != l.Cursor
	l.Cursor = next
	return moved
}

// MoveHome moves the cursor to the first entry.
func (l *Level) MoveHome() bool {
	return l.Move(-len(l.Items))
}

// MoveEnd moves the cursor to the last entry.
func (l *Level) MoveEnd() bool {
	return l.Move(len(l.Items))
}

// EnsureCursorVisible scrolls the viewport so that maxVisible rows include
// the cursor.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 || maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if l.Cursor >= l.ViewportOffset+maxVisible {
		l.ViewportOffset = l.Cursor - maxVisible + 1
	}
	maxOffset := len(l.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
}

// Visible returns the slice of entries inside the viewport and the index of
// the first one.
func (l *Level) Visible(maxVisible int) ([]layout.RenderEntry, int) {
	if maxVisible <= 0 || len(l.Items) <= maxVisible {
		return l.Items, 0
	}
	l.EnsureCursorVisible(maxVisible)
	return l.Items[l.ViewportOffset : l.ViewportOffset+maxVisible], l.ViewportOffset
}
