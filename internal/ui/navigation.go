package ui

import (
	"github.com/atomicstack/header-menu/internal/format/tree"
	"github.com/atomicstack/header-menu/internal/layout"
	"github.com/atomicstack/header-menu/internal/logging/events"
	uistate "github.com/atomicstack/header-menu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const toggleLevelID = "menu-toggle"

// barEntries returns the focusable bar entries, skipping separators.
func (m *Model) barEntries() []layout.RenderEntry {
	out := make([]layout.RenderEntry, 0, len(m.header.Model))
	for _, entry := range m.header.Model {
		if entry.Separator {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// levelID names the dropdown an entry opens. The hamburger toggles carry
// no id of their own.
func levelID(entry layout.RenderEntry) string {
	if entry.ID == "" && len(entry.Panel) > 0 {
		return toggleLevelID
	}
	return entry.ID
}

func indexOfLevel(entries []layout.RenderEntry, id string) int {
	for i, entry := range entries {
		if levelID(entry) == id {
			return i
		}
	}
	return -1
}

func children(entry layout.RenderEntry) []layout.RenderEntry {
	if len(entry.Items) > 0 {
		return entry.Items
	}
	return entry.Panel
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

func (m *Model) selectedBarEntry() (layout.RenderEntry, bool) {
	entries := m.barEntries()
	if m.bar < 0 || m.bar >= len(entries) {
		return layout.RenderEntry{}, false
	}
	return entries[m.bar], true
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.currentLevel() != nil {
		return m.handleDropdownKey(keyMsg)
	}
	return m.handleBarKey(keyMsg)
}

func (m *Model) handleBarKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h", "shift+tab":
		m.moveBar(-1)
	case "right", "l", "tab":
		m.moveBar(1)
	case "home":
		m.moveBar(-len(m.header.Model))
	case "end":
		m.moveBar(len(m.header.Model))
	case "enter", "down", " ":
		return m.activateBar()
	case "esc", "q":
		return tea.Quit
	}
	return nil
}

func (m *Model) handleDropdownKey(msg tea.KeyMsg) tea.Cmd {
	current := m.currentLevel()
	switch msg.String() {
	case "up":
		m.moveCursor(current, -1)
	case "down":
		m.moveCursor(current, 1)
	case "pgup":
		m.moveCursor(current, -m.maxVisibleItems())
	case "pgdown":
		m.moveCursor(current, m.maxVisibleItems())
	case "home":
		current.MoveHome()
		current.EnsureCursorVisible(m.maxVisibleItems())
	case "end":
		current.MoveEnd()
		current.EnsureCursorVisible(m.maxVisibleItems())
	case "left":
		if len(m.stack) > 1 {
			m.popLevel()
			return nil
		}
		m.closeAll()
		m.moveBar(-1)
		return m.reopen()
	case "right":
		if item, ok := current.Selected(); ok && item.HasChildren() {
			m.clearFilter(current)
			m.pushLevel(item)
			return nil
		}
		m.closeAll()
		m.moveBar(1)
		return m.reopen()
	case "enter":
		return m.activateItem()
	case "esc":
		if current.Filter != "" {
			m.clearFilter(current)
			return nil
		}
		m.popLevel()
	default:
		return m.handleFilterInput(msg)
	}
	return nil
}

func (m *Model) moveBar(delta int) {
	entries := m.barEntries()
	if len(entries) == 0 {
		m.bar = 0
		return
	}
	next := m.bar + delta
	if next < 0 {
		next = 0
	}
	if next > len(entries)-1 {
		next = len(entries) - 1
	}
	m.bar = next
	events.UI.MenuCursor("bar", m.bar)
}

func (m *Model) moveCursor(lvl *level, delta int) {
	if lvl.Move(delta) {
		events.UI.MenuCursor(lvl.ID, lvl.Cursor)
	}
	lvl.EnsureCursorVisible(m.maxVisibleItems())
}

// reopen opens the dropdown of the newly focused bar entry when it has one,
// so sideways movement keeps a menu open the way a menubar does.
func (m *Model) reopen() tea.Cmd {
	entry, ok := m.selectedBarEntry()
	if !ok || !entry.HasChildren() {
		return nil
	}
	m.pushLevel(entry)
	return nil
}

// activateBar opens the focused entry's dropdown or fires its command.
func (m *Model) activateBar() tea.Cmd {
	entry, ok := m.selectedBarEntry()
	if !ok {
		return nil
	}
	if entry.HasChildren() {
		m.pushLevel(entry)
		return nil
	}
	return m.execute(entry)
}

func (m *Model) activateItem() tea.Cmd {
	current := m.currentLevel()
	item, ok := current.Selected()
	if !ok {
		return nil
	}
	if item.HasChildren() {
		m.clearFilter(current)
		m.pushLevel(item)
		return nil
	}
	cmd := m.execute(item)
	m.closeAll()
	return cmd
}

func (m *Model) pushLevel(entry layout.RenderEntry) {
	items := children(entry)
	lvl := uistate.NewLevel(levelID(entry), tree.Label(entry), items)
	m.stack = append(m.stack, lvl)
	m.openFilter()
	lvl.EnsureCursorVisible(m.maxVisibleItems())
	events.UI.MenuOpen(lvl.ID, len(items))
}

func (m *Model) popLevel() {
	current := m.currentLevel()
	if current == nil {
		return
	}
	m.stack = m.stack[:len(m.stack)-1]
	events.UI.MenuClose(current.ID)
	if len(m.stack) == 0 {
		m.closeFilter()
		return
	}
	m.filter.SetValue(m.currentLevel().Filter)
}

func (m *Model) closeAll() {
	for len(m.stack) > 0 {
		m.popLevel()
	}
}

// execute fires an entry's click command. Entries without a command are
// parents and never reach here from the bar.
func (m *Model) execute(entry layout.RenderEntry) tea.Cmd {
	if entry.Command == nil {
		return nil
	}
	m.errMsg = ""
	return navigateCmd(entry.Command)
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return 0
	}
	// bar, title, filter and status lines
	reserved := 4
	if m.showFooter {
		reserved++
	}
	if visible := m.height - reserved; visible > 0 {
		return visible
	}
	return 1
}
