package ui

import (
	"github.com/atomicstack/header-menu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) openFilter() {
	m.filter.Reset()
	m.filter.Focus()
}

func (m *Model) closeFilter() {
	m.filter.Reset()
	m.filter.Blur()
}

func (m *Model) clearFilter(lvl *level) {
	if lvl == nil || lvl.Filter == "" {
		return
	}
	lvl.SetFilter("")
	m.filter.Reset()
	lvl.EnsureCursorVisible(m.maxVisibleItems())
	events.Filter.Cleared(lvl.ID)
}

// handleFilterInput feeds keys the dropdown does not claim to the filter
// prompt and narrows the open level to match.
func (m *Model) handleFilterInput(msg tea.KeyMsg) tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	value := m.filter.Value()
	if value == current.Filter {
		return cmd
	}
	current.SetFilter(value)
	current.EnsureCursorVisible(m.maxVisibleItems())
	if value == "" {
		events.Filter.Cleared(current.ID)
	} else {
		events.Filter.Changed(current.ID, value)
	}
	return cmd
}
